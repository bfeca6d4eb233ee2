package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
)

func (u *Usecase) GetCreature(ctx context.Context, id int64) (*entity.Creature, error) {
	creature, err := u.creatureDg.FetchCreature(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch creature")
	}
	return creature, nil
}

// GetCreatures fetches ids concurrently. Results are aligned with ids and fail independently.
func (u *Usecase) GetCreatures(ctx context.Context, ids []int64) []entity.BatchResult {
	return u.creatureDg.FetchCreatureBatch(ctx, ids)
}

// ListCreatures returns one catalog page. Entries that could not be fetched are reported in Failed.
func (u *Usecase) ListCreatures(ctx context.Context, limit, offset int) (*entity.CreaturePage, error) {
	ids, total, err := u.creatureDg.ListCreatureIds(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list creatures")
	}

	page := &entity.CreaturePage{
		Items:   make([]entity.Creature, 0, len(ids)),
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+len(ids) < total,
	}
	for _, result := range u.creatureDg.FetchCreatureBatch(ctx, ids) {
		if result.Err != nil {
			page.Failed = append(page.Failed, entity.BatchError{Id: result.Id, Error: result.Err.Error()})
			continue
		}
		page.Items = append(page.Items, *result.Creature)
	}
	return page, nil
}
