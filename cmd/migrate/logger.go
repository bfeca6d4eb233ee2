package migrate

import (
	"fmt"
	"strings"

	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"github.com/golang-migrate/migrate/v4"
)

var _ migrate.Logger = (*migrateLogger)(nil)

// migrateLogger forwards golang-migrate progress to the application logger.
type migrateLogger struct {
	verbose bool
}

func (l *migrateLogger) Printf(format string, v ...interface{}) {
	logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), "package", "migrate")
}

func (l *migrateLogger) Verbose() bool {
	return l.verbose
}
