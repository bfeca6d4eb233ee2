package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/repository/postgres/gen"
)

func (r *Repository) CreateClaimRecord(ctx context.Context, record entity.ClaimRecord) (*entity.ClaimRecord, error) {
	params, err := mapClaimRecordTypeToParams(record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to map claim record to params")
	}
	model, err := r.queries.CreateClaimRecord(ctx, params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create claim record, pokemon: %d, wallet: %s", record.PokemonId, record.Wallet)
	}
	created, err := mapClaimRecordModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to map claim record model to type")
	}
	return &created, nil
}

func (r *Repository) GetClaimRecordsByWallet(ctx context.Context, wallet common.Address, limit int32) ([]entity.ClaimRecord, error) {
	models, err := r.queries.GetClaimRecordsByWallet(ctx, gen.GetClaimRecordsByWalletParams{
		Wallet: walletKey(wallet),
		Limit:  limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get claim records by wallet")
	}
	records, err := mapClaimRecordModelsToTypes(models)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return records, nil
}

func (r *Repository) GetClaimRecordsByPokemonId(ctx context.Context, pokemonId int64, limit int32) ([]entity.ClaimRecord, error) {
	models, err := r.queries.GetClaimRecordsByPokemonId(ctx, gen.GetClaimRecordsByPokemonIdParams{
		PokemonID: pokemonId,
		Limit:     limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get claim records by pokemon id")
	}
	records, err := mapClaimRecordModelsToTypes(models)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return records, nil
}
