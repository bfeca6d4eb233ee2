package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gaze-network/pokedex-nft/internal/config"
	"github.com/gaze-network/pokedex-nft/modules/pokedex"
	"github.com/gaze-network/pokedex-nft/pkg/evm"
	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"github.com/gaze-network/pokedex-nft/pkg/logger/slogx"
	"github.com/samber/do/v2"
)

// newInjector provides the configuration, the Ethereum client and the pokedex module.
// Everything is lazy, commands only connect to what they use.
func newInjector(ctx context.Context, conf config.Config) do.Injector {
	injector := do.New()
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)

	// Initialize Ethereum client
	do.Provide(injector, func(i do.Injector) (*ethclient.Client, error) {
		conf := do.MustInvoke[config.Config](i)

		start := time.Now()
		logger.InfoContext(ctx, "Connecting to Ethereum node...", slogx.String("rpc", conf.EthereumNode.RPCURL))
		client, err := evm.Dial(ctx, conf.EthereumNode.RPCURL, conf.Network)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		logger.InfoContext(ctx, "Connected to Ethereum node", slogx.Duration("latency", time.Since(start)))
		return client, nil
	})

	do.Provide(injector, pokedex.New)
	return injector
}

func shutdownInjector(ctx context.Context, injector do.Injector) {
	if err := injector.ShutdownWithContext(ctx); err != nil {
		logger.WarnContext(ctx, "Failed to release resources", slogx.Error(err))
	}
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode output")
	}
	_, err = fmt.Fprintln(w, string(data))
	return errors.WithStack(err)
}
