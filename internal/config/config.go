// Package config loads server settings from an optional yaml file.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/nsaralegui/clavero/internal/logger"
)

// Backend names accepted in the "backend" setting.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendGCS    = "gcs"
)

type Config struct {
	Listen        string        `mapstructure:"listen"`
	Backend       string        `mapstructure:"backend"`
	DataDir       string        `mapstructure:"data_dir"`
	Bucket        string        `mapstructure:"bucket"`
	Prefix        string        `mapstructure:"prefix"`
	CacheSize     int           `mapstructure:"cache_size"`
	ReadTimeoutMs int           `mapstructure:"read_timeout_ms"`
	Log           logger.Config `mapstructure:"log"`
}

func Default() Config {
	return Config{
		Listen:        ":5000",
		Backend:       BackendFile,
		DataDir:       "./data",
		ReadTimeoutMs: 5000,
		Log:           logger.DefaultConfig(),
	}
}

// Load reads path (yaml) over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return cfg, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendMemory, BackendBadger:
	case BackendGCS:
		if c.Bucket == "" {
			return fmt.Errorf("backend %q requires a bucket", c.Backend)
		}
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	return nil
}

func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutMs) * time.Millisecond
}
