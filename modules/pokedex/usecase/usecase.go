package usecase

import (
	"time"

	"github.com/gaze-network/pokedex-nft/internal/subscription"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/datagateway"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
)

const DefaultClaimDelay = time.Second

type PipelineConfig struct {
	// ClaimDelay separates two consecutive items of ClaimMany.
	ClaimDelay time.Duration

	// StageTimeouts bounds individual stages. A missing or zero entry means the caller's context alone applies.
	StageTimeouts map[entity.Stage]time.Duration
}

type Usecase struct {
	creatureDg datagateway.CreatureDataGateway
	nftDg      datagateway.PokemonNFTDataGateway
	historyDg  datagateway.ClaimHistoryDataGateway
	balances   datagateway.NativeBalanceReader
	progress   *subscription.Subscription[entity.StageEvent]
	pipeline   PipelineConfig
}

type Option func(u *Usecase)

// WithClaimHistory records every claim attempt. Recording is best effort.
func WithClaimHistory(historyDg datagateway.ClaimHistoryDataGateway) Option {
	return func(u *Usecase) { u.historyDg = historyDg }
}

// WithNativeBalances enables native balances in wallet summaries.
func WithNativeBalances(balances datagateway.NativeBalanceReader) Option {
	return func(u *Usecase) { u.balances = balances }
}

// WithProgress publishes every pipeline transition to progress.
func WithProgress(progress *subscription.Subscription[entity.StageEvent]) Option {
	return func(u *Usecase) { u.progress = progress }
}

func WithPipelineConfig(config PipelineConfig) Option {
	return func(u *Usecase) { u.pipeline = config }
}

func New(creatureDg datagateway.CreatureDataGateway, nftDg datagateway.PokemonNFTDataGateway, opts ...Option) *Usecase {
	u := &Usecase{
		creatureDg: creatureDg,
		nftDg:      nftDg,
		pipeline:   PipelineConfig{ClaimDelay: DefaultClaimDelay},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}
