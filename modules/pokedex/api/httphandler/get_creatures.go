package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gofiber/fiber/v2"
)

const defaultPageSize = 20

type getCreaturesRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

func (r *getCreaturesRequest) ParseDefault() {
	if r.Limit == 0 {
		r.Limit = defaultPageSize
	}
}

func (r getCreaturesRequest) Validate() error {
	var errList []error
	if r.Limit < 1 || r.Limit > maxBatchSize {
		errList = append(errList, errors.Newf("'limit' must be between 1 and %d", maxBatchSize))
	}
	if r.Offset < 0 {
		errList = append(errList, errors.New("'offset' must be non-negative"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

func (h *HttpHandler) GetCreatures(ctx *fiber.Ctx) (err error) {
	var req getCreaturesRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	req.ParseDefault()
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	page, err := h.usecase.ListCreatures(ctx.UserContext(), req.Limit, req.Offset)
	if err != nil {
		return errors.Wrap(err, "error during ListCreatures")
	}
	return errors.WithStack(ctx.JSON(common.NewHttpResult[entity.CreaturePage](*page)))
}
