package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/usecase"
	"github.com/gofiber/fiber/v2"
)

type getClaimsByWalletRequest struct {
	Limit int32 `query:"limit"`
}

func (r getClaimsByWalletRequest) Validate() error {
	if r.Limit < 0 || r.Limit > usecase.DefaultHistoryLimit {
		return errs.NewPublicError("'limit' must be between 0 and 100")
	}
	return nil
}

type getClaimsByWalletResult struct {
	List []entity.ClaimRecord `json:"list"`
}

func (h *HttpHandler) GetClaimsByWallet(ctx *fiber.Ctx) (err error) {
	var req getClaimsByWalletRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}
	wallet, err := parseWallet(ctx.Params("wallet"))
	if err != nil {
		return errors.WithStack(err)
	}

	records, err := h.usecase.GetClaimHistory(ctx.UserContext(), wallet, req.Limit)
	if err != nil {
		return errors.Wrap(err, "error during GetClaimHistory")
	}
	if records == nil {
		records = []entity.ClaimRecord{}
	}
	return errors.WithStack(ctx.JSON(common.NewHttpResult(getClaimsByWalletResult{List: records})))
}
