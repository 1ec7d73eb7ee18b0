package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benz9527/xtree/xlog"
)

// configName is the config file name without extension.
const configName = ".xsort"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for xsort settings.
const envPrefix = "XSORT"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

const (
	defaultMaxLine         = "16MiB"
	defaultLogLevel        = "warn"
	defaultLogFormat       = "text"
	defaultMetricsInterval = 10 * time.Second
)

var (
	ErrInvalidWorkers         = errors.New("workers must be positive")
	ErrInvalidMaxLine         = errors.New("max line size must be positive")
	ErrInvalidMetricsInterval = errors.New("metrics interval must be positive")
)

type Config struct {
	Reverse bool          `mapstructure:"reverse"`
	Output  string        `mapstructure:"output"`
	Fold    bool          `mapstructure:"fold"`
	Workers int           `mapstructure:"workers"`
	MaxLine string        `mapstructure:"max_line"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

func (cfg *Config) Validate() error {
	if cfg.Workers <= 0 {
		return ErrInvalidWorkers
	}
	if _, err := cfg.MaxLineBytes(); err != nil {
		return err
	}
	if _, err := xlog.ParseLogLevel(cfg.Log.Level); err != nil {
		return err
	}
	if _, err := xlog.ParseEncoder(cfg.Log.Format); err != nil {
		return err
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Interval <= 0 {
		return ErrInvalidMetricsInterval
	}
	return nil
}

// MaxLineBytes parses the humanized size, like 64KiB or 16MB.
func (cfg *Config) MaxLineBytes() (int, error) {
	size, err := humanize.ParseBytes(cfg.MaxLine)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMaxLine, err)
	}
	if size == 0 || size > 1<<30 {
		return 0, ErrInvalidMaxLine
	}
	return int(size), nil
}

// The flag names of the config keys. The flags override the file and the env.
var flagKeys = map[string]string{
	"reverse":          "reverse",
	"output":           "output",
	"fold":             "fold",
	"workers":          "workers",
	"max_line":         "max-line",
	"log.level":        "log-level",
	"log.format":       "log-format",
	"metrics.enabled":  "metrics",
	"metrics.interval": "metrics-interval",
}

// LoadConfig loads configuration from flags, env vars, file, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string, cmd *cobra.Command) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if cmd != nil {
		for key, name := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := viperCfg.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("reverse", false)
	viperCfg.SetDefault("output", "")
	viperCfg.SetDefault("fold", true)
	viperCfg.SetDefault("workers", runtime.GOMAXPROCS(0))
	viperCfg.SetDefault("max_line", defaultMaxLine)

	viperCfg.SetDefault("log.level", defaultLogLevel)
	viperCfg.SetDefault("log.format", defaultLogFormat)

	viperCfg.SetDefault("metrics.enabled", false)
	viperCfg.SetDefault("metrics.interval", defaultMetricsInterval)
}
