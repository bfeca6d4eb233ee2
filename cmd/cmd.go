package cmd

import (
	"context"
	"log/slog"

	"github.com/gaze-network/pokedex-nft/internal/config"
	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"github.com/gaze-network/pokedex-nft/pkg/logger/slogx"
	"github.com/spf13/cobra"
)

var configFile string

func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pokedex",
		Long:          `Browse the Pokedex catalog and claim creatures as PokemonNFT tokens`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Initialize configuration
			conf := config.Load(configFile, cmd.Flags())

			// Initialize logger
			if err := logger.Init(conf.Logger); err != nil {
				logger.Panic("Failed to initialize logger", slogx.Error(err), slog.Any("config", conf.Logger))
			}
		},
	}

	// Add global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file, E.g. `./config.yaml`")
	flags.String("network", "sepolia", "network to connect to, E.g. `mainnet`, `sepolia` or `localhost`")
	flags.String("rpc-url", "", "Ethereum JSON-RPC endpoint, E.g. `http://127.0.0.1:8545`")
	flags.String("contract", "", "PokemonNFT contract address")

	// Bind flags to configuration
	config.BindFlag("network", "network")
	config.BindFlag("ethereum_node.rpc_url", "rpc-url")
	config.BindFlag("contract.address", "contract")

	cmd.AddCommand(
		NewRunCommand(),
		NewClaimCommand(),
		NewStatusCommand(),
		NewListCommand(),
		NewNFTCommand(),
		NewGenerateKeypairCommand(),
		NewMigrateCommand(),
		NewVersionCommand(),
	)
	return cmd
}

func Execute(ctx context.Context) {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		logger.FatalContext(ctx, "Failed to execute command", slogx.Error(err))
	}
}
