package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/internal/config"
	"github.com/gaze-network/pokedex-nft/internal/subscription"
	"github.com/gaze-network/pokedex-nft/modules/pokedex"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/usecase"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

type claimCmdOptions struct {
	Quiet bool
}

func NewClaimCommand() *cobra.Command {
	opts := &claimCmdOptions{}

	cmd := &cobra.Command{
		Use:   "claim <pokemon-id>...",
		Short: "Claim one or more Pokemon as PokemonNFT tokens with the configured wallet",
		Long:  "Claim runs the full claim pipeline for a single id. With several ids, the claims run one after another separated by pipeline.claim_delay.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return claimHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "Do not print pipeline progress")

	return cmd
}

func parsePokemonIds(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			return nil, errors.Wrapf(errs.InvalidArgument, "invalid pokemon id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func printProgress(w io.Writer, events <-chan entity.StageEvent, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case event := <-events:
			switch event.Stage {
			case entity.StageFailed:
				fmt.Fprintf(w, "#%d %s at %s: %v\n", event.PokemonId, event.Stage, event.FailedAt, event.Err)
			default:
				fmt.Fprintf(w, "#%d %s\n", event.PokemonId, event.Stage)
			}
		}
	}
}

func claimHandler(opts *claimCmdOptions, cmd *cobra.Command, args []string) error {
	ids, err := parsePokemonIds(args)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx := cmd.Context()
	conf := config.Load(configFile, cmd.Flags())
	injector := newInjector(ctx, conf)
	defer shutdownInjector(ctx, injector)

	module, err := do.Invoke[*pokedex.Module](injector)
	if err != nil {
		return errors.Wrap(err, "can't init pokedex module")
	}
	signer, err := module.Wallet()
	if err != nil {
		return errors.WithStack(err)
	}

	var ucOpts []usecase.Option
	flushProgress := func() {}
	if !opts.Quiet {
		events := make(chan entity.StageEvent)
		progress := subscription.New(events)
		defer progress.Unsubscribe()
		printed := make(chan struct{})
		go func() {
			defer close(printed)
			printProgress(cmd.ErrOrStderr(), events, progress.Done())
		}()
		flushProgress = func() {
			progress.Close()
			<-printed
		}
		ucOpts = append(ucOpts, usecase.WithProgress(progress))
	}
	uc := module.Usecase(ucOpts...)

	if len(ids) == 1 {
		result, err := uc.RunPipeline(ctx, signer, ids[0])
		flushProgress()
		if err != nil {
			var pipelineErr *usecase.PipelineError
			if errors.As(err, &pipelineErr) && pipelineErr.Outcome != nil {
				_ = printJSON(cmd.OutOrStdout(), pipelineErr.Outcome)
			}
			return errors.WithStack(err)
		}
		return printJSON(cmd.OutOrStdout(), result)
	}

	outcomes := uc.ClaimMany(ctx, signer, ids)
	flushProgress()
	return printJSON(cmd.OutOrStdout(), outcomes)
}
