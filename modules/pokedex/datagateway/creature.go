package datagateway

import (
	"context"

	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
)

type CreatureDataGateway interface {
	FetchCreature(ctx context.Context, id int64) (*entity.Creature, error)
	FetchCreatureBatch(ctx context.Context, ids []int64) []entity.BatchResult
	ListCreatureIds(ctx context.Context, limit, offset int) (ids []int64, total int, err error)
}
