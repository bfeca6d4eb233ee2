package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getCreaturesBatchRequest struct {
	Ids []int64 `json:"ids"`
}

type creatureResult struct {
	Id       int64            `json:"id"`
	Creature *entity.Creature `json:"creature,omitempty"`
	Error    *string          `json:"error,omitempty"`
}

type getCreaturesBatchResult struct {
	List []creatureResult `json:"list"`
}

func (h *HttpHandler) GetCreaturesBatch(ctx *fiber.Ctx) (err error) {
	var req getCreaturesBatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := validateIds(req.Ids, maxBatchSize); err != nil {
		return errors.WithStack(err)
	}

	results := h.usecase.GetCreatures(ctx.UserContext(), req.Ids)
	list := lo.Map(results, func(result entity.BatchResult, _ int) creatureResult {
		if result.Err != nil {
			return creatureResult{Id: result.Id, Error: lo.ToPtr(result.Err.Error())}
		}
		return creatureResult{Id: result.Id, Creature: result.Creature}
	})
	return errors.WithStack(ctx.JSON(common.NewHttpResult(getCreaturesBatchResult{List: list})))
}
