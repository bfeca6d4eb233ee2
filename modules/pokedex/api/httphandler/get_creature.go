package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) GetCreature(ctx *fiber.Ctx) (err error) {
	id, err := parsePokemonId(ctx.Params("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	creature, err := h.usecase.GetCreature(ctx.UserContext(), id)
	if err != nil {
		return errors.Wrap(err, "error during GetCreature")
	}
	return errors.WithStack(ctx.JSON(common.NewHttpResult[entity.Creature](*creature)))
}
