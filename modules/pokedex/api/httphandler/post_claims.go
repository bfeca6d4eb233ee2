package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gofiber/fiber/v2"
)

type postClaimsRequest struct {
	Ids []int64 `json:"ids"`
}

type postClaimsResult struct {
	List []entity.ClaimOutcome `json:"list"`
}

// PostClaims runs the claim pipeline for every id with the server wallet. The request blocks until
// every claim is confirmed or failed.
func (h *HttpHandler) PostClaims(ctx *fiber.Ctx) (err error) {
	var req postClaimsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := validateIds(req.Ids, maxClaimSize); err != nil {
		return errors.WithStack(err)
	}

	outcomes := h.usecase.ClaimMany(ctx.UserContext(), h.signer, req.Ids)
	return errors.WithStack(ctx.JSON(common.NewHttpResult(postClaimsResult{List: outcomes})))
}
