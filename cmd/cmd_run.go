package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/internal/config"
	"github.com/gaze-network/pokedex-nft/modules/pokedex"
	"github.com/gaze-network/pokedex-nft/pkg/automaxprocs"
	"github.com/gaze-network/pokedex-nft/pkg/errorhandler"
	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"github.com/gaze-network/pokedex-nft/pkg/logger/slogx"
	"github.com/gaze-network/pokedex-nft/pkg/middleware/requestcontext"
	"github.com/gaze-network/pokedex-nft/pkg/middleware/requestlogger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 60 * time.Second
)

func NewRunCommand() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start the Pokedex API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := automaxprocs.Init(); err != nil {
				logger.Error("Failed to set GOMAXPROCS", slogx.Error(err))
			}
			return runHandler(cmd, args)
		},
	}

	flags := runCmd.Flags()
	flags.Int("port", 0, "HTTP server port")
	config.BindFlag("http_server.port", "port")

	return runCmd
}

func newHTTPServer(conf config.Config) (*fiber.App, error) {
	withClientIP, err := requestcontext.WithClientIP(conf.HTTPServer.RequestIP)
	if err != nil {
		return nil, errors.Wrap(err, "invalid request ip configuration")
	}

	app := fiber.New(fiber.Config{
		AppName:               "Pokedex NFT",
		ErrorHandler:          errorhandler.NewHTTPErrorHandler(),
		DisableStartupMessage: true,
	})
	app.
		Use(favicon.New()).
		Use(cors.New()).
		Use(requestid.New()).
		Use(requestcontext.New(
			requestcontext.WithRequestId(),
			withClientIP,
		)).
		Use(requestlogger.New(conf.HTTPServer.Logger)).
		Use(fiberrecover.New(fiberrecover.Config{
			EnableStackTrace: true,
			StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
				buf := make([]byte, 1024) // bufLen = 1024
				buf = buf[:runtime.Stack(buf, false)]
				logger.ErrorContext(c.UserContext(), "Something went wrong, panic in http handler", errors.Newf("panic: %v", e), slog.String("stacktrace", string(buf)))
			},
		})).
		Use(compress.New(compress.Config{
			Level: compress.LevelDefault,
		}))

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return errors.WithStack(c.SendStatus(http.StatusOK))
	})

	return app, nil
}

func runHandler(cmd *cobra.Command, _ []string) error {
	conf := config.Load(configFile, cmd.Flags())

	// Initialize application process context
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx, slogx.Stringer("network", conf.Network))

	injector := newInjector(ctx, conf)
	do.Provide(injector, func(i do.Injector) (*fiber.App, error) {
		return newHTTPServer(do.MustInvoke[config.Config](i))
	})

	module, err := do.Invoke[*pokedex.Module](injector)
	if err != nil {
		return errors.Wrap(err, "can't init pokedex module")
	}
	httpServer := do.MustInvoke[*fiber.App](injector)
	if err := module.Mount(httpServer); err != nil {
		return errors.WithStack(err)
	}
	logger.InfoContext(ctx, "Mounted HTTP handler")

	// Run API server
	go func() {
		// stop main process if API stopped
		defer stop()

		logger.InfoContext(ctx, "Started HTTP server", slog.Int("port", conf.HTTPServer.Port))
		if err := httpServer.Listen(fmt.Sprintf(":%d", conf.HTTPServer.Port)); err != nil {
			logger.PanicContext(ctx, "Something went wrong, error during running HTTP server", slogx.Error(err))
		}
	}()

	logger.InfoContext(ctx, "Pokedex started")

	// Wait for interrupt signal to gracefully stop the server
	<-ctx.Done()

	// Force shutdown if timeout exceeded or got signal again
	go func() {
		defer os.Exit(1)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		select {
		case <-ctx.Done():
			logger.FatalContext(ctx, "Received exit signal again. Force shutdown...")
		case <-time.After(shutdownTimeout + 15*time.Second):
			logger.FatalContext(ctx, "Shutdown timeout exceeded. Force shutdown...")
		}
	}()

	// Gracefully shutdown HTTP server and modules
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.ShutdownWithContext(shutdownCtx); err != nil {
		logger.ErrorContext(shutdownCtx, "Failed while gracefully shutting down HTTP server", err)
	}
	shutdownInjector(shutdownCtx, injector)

	return nil
}
