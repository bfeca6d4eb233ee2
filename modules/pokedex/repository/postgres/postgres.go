package postgres

import (
	"github.com/gaze-network/pokedex-nft/internal/postgres"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/datagateway"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/repository/postgres/gen"
)

var _ datagateway.ClaimHistoryDataGateway = (*Repository)(nil)

type Repository struct {
	db      postgres.DB
	queries *gen.Queries
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{
		db:      db,
		queries: gen.New(db),
	}
}
