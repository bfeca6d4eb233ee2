package automaxprocs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"go.uber.org/automaxprocs/maxprocs"
)

// Init sets GOMAXPROCS to the container CPU quota, unless GOMAXPROCS is set explicitly.
func Init() error {
	prev := runtime.GOMAXPROCS(0)
	log := logger.With(
		slog.String("package", "automaxprocs"),
		slog.Int("prev_maxprocs", prev),
	)

	printf := func(format string, v ...any) {
		var attrs []slog.Attr
		// maxprocs passes the new value as the only argument
		if val, ok := utils.Optional(v); ok {
			if _, exists := os.LookupEnv("GOMAXPROCS"); exists {
				val = runtime.GOMAXPROCS(0)
			}
			if n, ok := val.(int); ok {
				attrs = append(attrs, slog.Int("set_maxprocs", n))
			}
		}
		log.LogAttrs(context.Background(), slog.LevelInfo, fmt.Sprintf(format, v...), attrs...)
	}

	if _, err := maxprocs.Set(maxprocs.Logger(printf), maxprocs.Min(1)); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
