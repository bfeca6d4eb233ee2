package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gaze-network/pokedex-nft/pkg/evm"
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) GetToken(ctx *fiber.Ctx) (err error) {
	tokenId, err := evm.ParseUint256(ctx.Params("tokenId"))
	if err != nil {
		return errs.WithPublicMessage(errors.WithStack(err), "invalid 'tokenId'")
	}

	token, err := h.usecase.GetToken(ctx.UserContext(), tokenId)
	if err != nil {
		return errors.Wrap(err, "error during GetToken")
	}
	return errors.WithStack(ctx.JSON(common.NewHttpResult[entity.TokenInfo](*token)))
}
