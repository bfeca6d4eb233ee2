package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/internal/config"
	"github.com/gaze-network/pokedex-nft/modules/pokedex"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gaze-network/pokedex-nft/pkg/evm"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

type statusCmdOptions struct {
	Wallet string
}

type statusOutput struct {
	Creature   *entity.Creature    `json:"creature"`
	Status     *entity.ChainStatus `json:"status"`
	HasClaimed *bool               `json:"hasClaimed,omitempty"`
}

func NewStatusCommand() *cobra.Command {
	opts := &statusCmdOptions{}

	cmd := &cobra.Command{
		Use:   "status <pokemon-id>",
		Short: "Show a Pokemon and its on-chain claim status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return statusHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Wallet, "wallet", "", "Also check whether this wallet has claimed the Pokemon")

	return cmd
}

func statusHandler(opts *statusCmdOptions, cmd *cobra.Command, args []string) error {
	ids, err := parsePokemonIds(args)
	if err != nil {
		return errors.WithStack(err)
	}
	id := ids[0]

	ctx := cmd.Context()
	conf := config.Load(configFile, cmd.Flags())
	injector := newInjector(ctx, conf)
	defer shutdownInjector(ctx, injector)

	module, err := do.Invoke[*pokedex.Module](injector)
	if err != nil {
		return errors.Wrap(err, "can't init pokedex module")
	}
	uc := module.Usecase()

	creature, err := uc.GetCreature(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}
	status, err := uc.GetStatus(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}
	output := statusOutput{
		Creature: creature,
		Status:   status,
	}

	if opts.Wallet != "" {
		wallet, err := evm.ParseAddress(opts.Wallet)
		if err != nil {
			return errors.WithStack(err)
		}
		hasClaimed, err := uc.HasClaimed(ctx, wallet, id)
		if err != nil {
			return errors.WithStack(err)
		}
		output.HasClaimed = &hasClaimed
	}

	return printJSON(cmd.OutOrStdout(), output)
}
