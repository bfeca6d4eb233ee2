package postgres

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	pgxslog "github.com/mcosta74/pgx-slog"
)

const (
	DefaultMaxConns = 8
	DefaultMinConns = 0
	DefaultLogLevel = tracelog.LogLevelError
)

type Config struct {
	Host     string `mapstructure:"host"`     // Default is 127.0.0.1
	Port     string `mapstructure:"port"`     // Default is 5432
	User     string `mapstructure:"user"`     // Default is empty
	Password string `mapstructure:"password"` // Default is empty
	DBName   string `mapstructure:"db_name"`  // Default is postgres
	SSLMode  string `mapstructure:"ssl_mode"` // Default is prefer
	URL      string `mapstructure:"url"`      // If URL is provided, other fields are ignored

	MaxConns int32 `mapstructure:"max_conns"`
	MinConns int32 `mapstructure:"min_conns"`

	Debug bool `mapstructure:"debug"`
}

// Enabled reports whether any connection setting is present. Claim history is optional.
func (conf Config) Enabled() bool {
	return conf.URL != "" || conf.Host != ""
}

// NewPool creates a new connection pool to the database
func NewPool(ctx context.Context, conf Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(conf.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse config to create a new connection pool")
	}
	poolConfig.MaxConns = utils.Default(conf.MaxConns, DefaultMaxConns)
	poolConfig.MinConns = utils.Default(conf.MinConns, DefaultMinConns)
	poolConfig.ConnConfig.Tracer = conf.QueryTracer()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create a new connection pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "failed to connect to the database")
	}
	return pool, nil
}

// String returns the connection string in DSN format, or URL verbatim when set.
func (conf Config) String() string {
	if conf.URL != "" {
		return conf.URL
	}
	parts := []string{
		"host=" + utils.Default(conf.Host, "127.0.0.1"),
		"dbname=" + utils.Default(conf.DBName, "postgres"),
		"port=" + utils.Default(conf.Port, "5432"),
		"sslmode=" + utils.Default(conf.SSLMode, "prefer"),
	}
	if conf.User != "" {
		parts = append(parts, "user="+conf.User)
	}
	if conf.Password != "" {
		parts = append(parts, "password="+conf.Password)
	}
	return strings.Join(parts, " ")
}

// MigrateURL returns a postgres:// URL usable by golang-migrate.
func (conf Config) MigrateURL() string {
	if conf.URL != "" {
		return conf.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     fmt.Sprintf("%s:%s", utils.Default(conf.Host, "127.0.0.1"), utils.Default(conf.Port, "5432")),
		Path:     "/" + utils.Default(conf.DBName, "postgres"),
		RawQuery: "sslmode=" + utils.Default(conf.SSLMode, "prefer"),
	}
	if conf.User != "" {
		u.User = url.UserPassword(conf.User, conf.Password)
	}
	return u.String()
}

func (conf Config) QueryTracer() pgx.QueryTracer {
	loglevel := DefaultLogLevel
	if conf.Debug {
		loglevel = tracelog.LogLevelTrace
	}
	return &tracelog.TraceLog{
		Logger:   pgxslog.NewLogger(logger.With("package", "postgres")),
		LogLevel: loglevel,
	}
}
