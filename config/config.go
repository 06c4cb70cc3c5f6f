// Package config loads the settings of the command line tool from TINFO_*
// environment variables.
package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/tinfo/logging"
)

const Prefix = "TINFO"

type (
	// The sections are embedded so that their variables keep the bare
	// TINFO_ prefix.
	Config struct {
		LogConfig
		LookupConfig
	}
	LogConfig struct {
		Level       string `envconfig:"LOG_LEVEL" default:"warn"`
		Development bool   `envconfig:"LOG_DEV" default:"false"`
	}
	LookupConfig struct {
		// RootPrefix is prepended to every directory searched.
		RootPrefix  string `envconfig:"ROOT" default:""`
		StrictMagic bool   `envconfig:"STRICT" default:"false"`
	}
)

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, errors.Wrap(err, "config.Load error")
	}
	return &cfg, nil
}

func Default() *Config {
	return &Config{
		LogConfig: LogConfig{
			Level:       "warn",
			Development: false,
		},
	}
}

func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

func (c LogConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if c.Development {
		cfg = logging.DevelopmentConfig()
	}
	if c.Level != "" {
		cfg.Level = c.Level
	}
	return cfg
}
