package config

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/internal/postgres"
	"github.com/gaze-network/pokedex-nft/internal/redis"
	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"github.com/gaze-network/pokedex-nft/pkg/middleware/requestcontext"
	"github.com/gaze-network/pokedex-nft/pkg/middleware/requestlogger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configOnce sync.Once
	flagKeys   = map[string]string{}
	config     = &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		Network: common.NetworkSepolia,
		EthereumNode: EthereumNodeClient{
			RPCURL: "http://127.0.0.1:8545",
		},
		PokeAPI: PokeAPI{
			BaseURL:          "https://pokeapi.co/api/v2/",
			Timeout:          10 * time.Second,
			BatchConcurrency: 8,
		},
		Pipeline: Pipeline{
			ClaimDelay: time.Second,
		},
		HTTPServer: HTTPServerConfig{
			Port: 8080,
		},
		Redis: redis.Config{
			CacheTTL: redis.DefaultCacheTTL,
		},
	}
)

type Config struct {
	Logger       logger.Config      `mapstructure:"logger"`
	Network      common.Network     `mapstructure:"network"`
	EthereumNode EthereumNodeClient `mapstructure:"ethereum_node"`
	Contract     Contract           `mapstructure:"contract"`
	Wallet       Wallet             `mapstructure:"wallet"`
	PokeAPI      PokeAPI            `mapstructure:"pokeapi"`
	Pipeline     Pipeline           `mapstructure:"pipeline"`
	HTTPServer   HTTPServerConfig   `mapstructure:"http_server"`
	Postgres     postgres.Config    `mapstructure:"postgres"`
	Redis        redis.Config       `mapstructure:"redis"`
}

type EthereumNodeClient struct {
	RPCURL string `mapstructure:"rpc_url"`
}

type Contract struct {
	Address string `mapstructure:"address"`
}

type Wallet struct {
	// Provider is the connector name the signer is exposed under, e.g. "metamask".
	Provider         string `mapstructure:"provider"`
	PrivateKey       string `mapstructure:"private_key"`
	KeystorePath     string `mapstructure:"keystore_path"`
	KeystorePassword string `mapstructure:"keystore_password"`
}

// Configured reports whether any signer source is set.
func (w Wallet) Configured() bool {
	return w.PrivateKey != "" || w.KeystorePath != ""
}

type PokeAPI struct {
	BaseURL          string        `mapstructure:"base_url"`
	Debug            bool          `mapstructure:"debug"`
	Timeout          time.Duration `mapstructure:"timeout"`
	BatchConcurrency int           `mapstructure:"batch_concurrency"`
}

type Pipeline struct {
	ClaimDelay    time.Duration `mapstructure:"claim_delay"`
	StageTimeouts StageTimeouts `mapstructure:"stage_timeouts"`
}

// StageTimeouts bounds each pipeline stage. Zero means no limit besides the caller's context.
type StageTimeouts struct {
	Fetching          time.Duration `mapstructure:"fetching"`
	CheckingStatus    time.Duration `mapstructure:"checking_status"`
	CheckingUserClaim time.Duration `mapstructure:"checking_user_claim"`
	Submitting        time.Duration `mapstructure:"submitting"`
	Confirming        time.Duration `mapstructure:"confirming"`
	Verifying         time.Duration `mapstructure:"verifying"`
}

type HTTPServerConfig struct {
	Port      int                               `mapstructure:"port"`
	Logger    requestlogger.Config              `mapstructure:"logger"`
	RequestIP requestcontext.WithClientIPConfig `mapstructure:"request_ip"`
}

// BindFlag makes the flag named flagName override the config key, e.g. "rpc-url" -> "ethereum_node.rpc_url".
// Flags that are not bound override the key equal to their name.
func BindFlag(key string, flagName string) {
	flagKeys[flagName] = key
}

// Parse reads configFile (or ./config.yaml when empty), environment variables and bound flags.
// A missing config file is not an error.
func Parse(configFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath("./")
		v.SetConfigName("config")
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// only explicitly set flags override, unset flag defaults must not shadow the file
	var bindErr error
	if flags != nil {
		flags.Visit(func(f *pflag.Flag) {
			key, ok := flagKeys[f.Name]
			if !ok {
				key = f.Name
			}
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = errors.Wrapf(err, "failed to bind flag %q", f.Name)
			}
		})
	}
	if bindErr != nil {
		return Config{}, bindErr
	}

	if err := v.ReadInConfig(); err != nil {
		var errNotfound viper.ConfigFileNotFoundError
		if !errors.As(err, &errNotfound) {
			return Config{}, errors.Wrap(err, "invalid config file")
		}
		logger.Warn("config file not found, use default value", slog.String("package", "config"))
	}

	cfg := *config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal config")
	}
	if !cfg.Network.IsSupported() {
		return Config{}, errors.Wrapf(errs.Unsupported, "unsupported network %q", cfg.Network)
	}
	return cfg, nil
}

// Load parses the configuration once and caches it for the rest of the process.
func Load(configFile string, flags *pflag.FlagSet) Config {
	ctx := logger.WithContext(context.Background(), slog.String("package", "config"))
	configOnce.Do(func() {
		cfg, err := Parse(configFile, flags)
		if err != nil {
			logger.PanicContext(ctx, "failed to load config", slog.Any("error", err))
		}
		*config = cfg
		logger.InfoContext(ctx, "loaded config successfully", slog.String("network", cfg.Network.String()))
	})
	return *config
}
