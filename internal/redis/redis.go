package redis

import (
	"context"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultCacheTTL = 24 * time.Hour
	DefaultPoolSize = 10
)

type Config struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	PoolSize int           `mapstructure:"pool_size"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	Disabled bool          `mapstructure:"disabled"`
}

// Enabled reports whether the cache should be wired.
func (c Config) Enabled() bool {
	return !c.Disabled && c.Addr != ""
}

// Client is the subset of the go-redis client used by the repositories.
type Client interface {
	redis.UniversalClient
}

// New creates a client and verifies the server answers PING.
func New(ctx context.Context, conf Config) (Client, error) {
	if conf.Addr == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "redis address is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
		PoolSize: utils.Default(conf.PoolSize, DefaultPoolSize),
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "failed to ping redis at %s", conf.Addr)
	}
	return client, nil
}
