package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"github.com/gaze-network/pokedex-nft/pkg/logger/slogx"
)

const DefaultHistoryLimit = 100

func (u *Usecase) HasClaimHistory() bool {
	return u.historyDg != nil
}

// recordClaim persists outcome. Failures are logged and never change the outcome.
func (u *Usecase) recordClaim(ctx context.Context, wallet common.Address, outcome entity.ClaimOutcome) {
	if u.historyDg == nil {
		return
	}
	if _, err := u.historyDg.CreateClaimRecord(context.WithoutCancel(ctx), entity.NewClaimRecord(wallet, outcome)); err != nil {
		logger.WarnContext(ctx, "Failed to record claim", slogx.Error(err), slogx.Int64("pokemonId", outcome.PokemonId))
	}
}

func (u *Usecase) GetClaimHistory(ctx context.Context, wallet common.Address, limit int32) ([]entity.ClaimRecord, error) {
	if u.historyDg == nil {
		return nil, errors.Wrap(errs.Unsupported, "claim history is not configured")
	}
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}
	records, err := u.historyDg.GetClaimRecordsByWallet(ctx, wallet, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get claim records")
	}
	return records, nil
}

func (u *Usecase) GetClaimHistoryByPokemon(ctx context.Context, pokemonId int64, limit int32) ([]entity.ClaimRecord, error) {
	if u.historyDg == nil {
		return nil, errors.Wrap(errs.Unsupported, "claim history is not configured")
	}
	if err := validatePokemonId(pokemonId); err != nil {
		return nil, errors.WithStack(err)
	}
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}
	records, err := u.historyDg.GetClaimRecordsByPokemonId(ctx, pokemonId, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get claim records")
	}
	return records, nil
}
