package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) GetStatus(ctx *fiber.Ctx) (err error) {
	id, err := parsePokemonId(ctx.Params("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	status, err := h.usecase.GetStatus(ctx.UserContext(), id)
	if err != nil {
		return errors.Wrap(err, "error during GetStatus")
	}
	return errors.WithStack(ctx.JSON(common.NewHttpResult[entity.ChainStatus](*status)))
}
