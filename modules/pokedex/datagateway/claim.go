package datagateway

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
)

type ClaimHistoryDataGateway interface {
	CreateClaimRecord(ctx context.Context, record entity.ClaimRecord) (*entity.ClaimRecord, error)
	GetClaimRecordsByWallet(ctx context.Context, wallet common.Address, limit int32) ([]entity.ClaimRecord, error)
	GetClaimRecordsByPokemonId(ctx context.Context, pokemonId int64, limit int32) ([]entity.ClaimRecord, error)
}
