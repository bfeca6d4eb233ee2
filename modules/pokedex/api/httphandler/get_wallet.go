package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) GetWallet(ctx *fiber.Ctx) (err error) {
	wallet, err := parseWallet(ctx.Params("wallet"))
	if err != nil {
		return errors.WithStack(err)
	}

	summary, err := h.usecase.GetWallet(ctx.UserContext(), wallet)
	if err != nil {
		return errors.Wrap(err, "error during GetWallet")
	}
	return errors.WithStack(ctx.JSON(common.NewHttpResult[entity.WalletSummary](*summary)))
}
