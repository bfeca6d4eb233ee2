package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/internal/config"
	"github.com/gaze-network/pokedex-nft/modules/pokedex"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

type listCmdOptions struct {
	Limit  int
	Offset int
}

func NewListCommand() *cobra.Command {
	opts := &listCmdOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a page of the Pokedex catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.Limit, "limit", 20, "Number of creatures per page")
	flags.IntVar(&opts.Offset, "offset", 0, "Number of creatures to skip")

	return cmd
}

func listHandler(opts *listCmdOptions, cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	conf := config.Load(configFile, cmd.Flags())
	injector := newInjector(ctx, conf)
	defer shutdownInjector(ctx, injector)

	module, err := do.Invoke[*pokedex.Module](injector)
	if err != nil {
		return errors.Wrap(err, "can't init pokedex module")
	}

	page, err := module.Usecase().ListCreatures(ctx, opts.Limit, opts.Offset)
	if err != nil {
		return errors.WithStack(err)
	}
	return printJSON(cmd.OutOrStdout(), page)
}
