package pokedex

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/internal/config"
	"github.com/gaze-network/pokedex-nft/internal/postgres"
	"github.com/gaze-network/pokedex-nft/internal/redis"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/api/httphandler"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/contract"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/datagateway"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/pokeapi"
	pokedexpostgres "github.com/gaze-network/pokedex-nft/modules/pokedex/repository/postgres"
	pokedexredis "github.com/gaze-network/pokedex-nft/modules/pokedex/repository/redis"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/usecase"
	"github.com/gaze-network/pokedex-nft/pkg/evm"
	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"github.com/gaze-network/pokedex-nft/pkg/logger/slogx"
	"github.com/gaze-network/pokedex-nft/pkg/wallet"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
)

// Module holds the wired data gateways of the pokedex. Optional parts are nil when not configured.
type Module struct {
	creatureDg datagateway.CreatureDataGateway
	nftDg      datagateway.PokemonNFTDataGateway
	historyDg  datagateway.ClaimHistoryDataGateway
	balances   datagateway.NativeBalanceReader
	wallet     *wallet.Connection
	pipeline   usecase.PipelineConfig

	cleanupFuncs []func(context.Context) error
}

func New(injector do.Injector) (*Module, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	ethClient, err := do.Invoke[*ethclient.Client](injector)
	if err != nil {
		return nil, errors.Wrap(err, "can't connect to Ethereum node")
	}

	m := &Module{
		balances: ethClient,
		pipeline: PipelineConfig(conf.Pipeline),
	}

	// Creature catalog
	pokeapiClient, err := pokeapi.New(pokeapi.Config{
		BaseURL:          conf.PokeAPI.BaseURL,
		Debug:            conf.PokeAPI.Debug,
		Timeout:          conf.PokeAPI.Timeout,
		BatchConcurrency: conf.PokeAPI.BatchConcurrency,
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't create PokeAPI client")
	}
	m.creatureDg = pokeapiClient
	if conf.Redis.Enabled() {
		client, err := redis.New(ctx, conf.Redis)
		if err != nil {
			return nil, errors.Wrap(err, "can't connect to Redis")
		}
		m.cleanupFuncs = append(m.cleanupFuncs, func(context.Context) error {
			return errors.WithStack(client.Close())
		})
		cache, err := pokedexredis.NewCreatureCache(pokeapiClient, client, conf.Redis.CacheTTL)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		m.creatureDg = cache
		logger.InfoContext(ctx, "Creature cache enabled", slogx.String("addr", conf.Redis.Addr))
	}

	// Contract
	if conf.Contract.Address == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "contract address is required")
	}
	address, err := evm.ParseAddress(conf.Contract.Address)
	if err != nil {
		return nil, errors.Wrap(err, "invalid contract address")
	}
	nft, err := contract.New(address, ethClient)
	if err != nil {
		return nil, errors.Wrap(err, "can't bind PokemonNFT contract")
	}
	m.nftDg = nft

	// Claim history
	if conf.Postgres.Enabled() {
		pg, err := postgres.NewPool(ctx, conf.Postgres)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "Invalid Postgres configuration for claim history")
			}
			return nil, errors.Wrap(err, "can't create Postgres connection pool")
		}
		m.cleanupFuncs = append(m.cleanupFuncs, func(context.Context) error {
			pg.Close()
			return nil
		})
		m.historyDg = pokedexpostgres.NewRepository(pg)
	}

	// Signer
	if conf.Wallet.Configured() {
		conn, err := ConnectWallet(ctx, conf.Wallet, conf.Network.ChainID())
		if err != nil {
			return nil, errors.WithStack(err)
		}
		m.wallet = conn
		m.cleanupFuncs = append(m.cleanupFuncs, func(context.Context) error {
			conn.Disconnect()
			return nil
		})
		address, _ := conn.Address()
		logger.InfoContext(ctx, "Wallet connected", slogx.String("provider", conn.ProviderName()), slogx.Stringer("address", address))
	}

	return m, nil
}

// PipelineConfig converts the configured pipeline settings.
func PipelineConfig(conf config.Pipeline) usecase.PipelineConfig {
	return usecase.PipelineConfig{
		ClaimDelay: conf.ClaimDelay,
		StageTimeouts: map[entity.Stage]time.Duration{
			entity.StageFetching:          conf.StageTimeouts.Fetching,
			entity.StageCheckingStatus:    conf.StageTimeouts.CheckingStatus,
			entity.StageCheckingUserClaim: conf.StageTimeouts.CheckingUserClaim,
			entity.StageSubmitting:        conf.StageTimeouts.Submitting,
			entity.StageConfirming:        conf.StageTimeouts.Confirming,
			entity.StageVerifying:         conf.StageTimeouts.Verifying,
		},
	}
}

// Usecase builds a usecase over the module's gateways. opts are applied after the module's own.
func (m *Module) Usecase(opts ...usecase.Option) *usecase.Usecase {
	base := []usecase.Option{
		usecase.WithPipelineConfig(m.pipeline),
		usecase.WithNativeBalances(m.balances),
	}
	if m.historyDg != nil {
		base = append(base, usecase.WithClaimHistory(m.historyDg))
	}
	return usecase.New(m.creatureDg, m.nftDg, append(base, opts...)...)
}

// Wallet returns the connected signer, or errs.Disconnected when no wallet is configured.
func (m *Module) Wallet() (*wallet.Connection, error) {
	if m.wallet == nil {
		return nil, errors.Wrap(errs.Disconnected, "no wallet configured, set wallet.private_key or wallet.keystore_path")
	}
	return m.wallet, nil
}

// Mount registers the HTTP API. Claim routes are only mounted with a connected wallet.
func (m *Module) Mount(router fiber.Router) error {
	var signer usecase.Signer
	if m.wallet != nil {
		signer = m.wallet
	}
	handler := httphandler.New(m.Usecase(), signer)
	if err := handler.Mount(router); err != nil {
		return errors.Wrap(err, "can't mount Pokedex API")
	}
	return nil
}

// Shutdown releases connections in reverse order of creation.
func (m *Module) Shutdown(ctx context.Context) error {
	var errList []error
	for i := len(m.cleanupFuncs) - 1; i >= 0; i-- {
		if err := m.cleanupFuncs[i](ctx); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.WithStack(errors.Join(errList...))
}
