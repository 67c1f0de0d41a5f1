// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to the environment variables that override
// settings, e.g. NUSSINOV_SERVER_ADDR for server.addr.
const EnvPrefix = "NUSSINOV"

// FoldConfig are settings for folding sequences
type FoldConfig struct {
	// the minimum number of unpaired bases in a hairpin loop
	MinLoop int `mapstructure:"min-loop"`

	// how many records of a FASTA file are folded at once. GOMAXPROCS if < 1
	Workers int `mapstructure:"workers"`

	// output format of the fold command, json or yaml
	Format string `mapstructure:"format"`
}

// ServerConfig are settings for the HTTP server
type ServerConfig struct {
	// address to listen on
	Addr string `mapstructure:"addr"`

	// the longest sequence that will be folded. 0 for no limit
	MaxLength int `mapstructure:"max-length"`

	// value of the Access-Control-Allow-Origin header, empty to leave it off
	CORSOrigin string `mapstructure:"cors-origin"`

	// gin mode: debug, release or test
	Mode string `mapstructure:"mode"`
}

// LogConfig are settings for the logger
type LogConfig struct {
	// debug, info, warn or error
	Level string `mapstructure:"level"`

	// text or json
	Format string `mapstructure:"format"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment
// and those available from the command line
type Config struct {
	// Fold settings
	Fold FoldConfig `mapstructure:"fold"`

	// Server settings
	Server ServerConfig `mapstructure:"server"`

	// Log settings
	Log LogConfig `mapstructure:"log"`
}

// SetDefaults registers every setting's default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("fold.min-loop", 0)
	v.SetDefault("fold.workers", 0)
	v.SetDefault("fold.format", "json")

	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.max-length", 0)
	v.SetDefault("server.cors-origin", "*")
	v.SetDefault("server.mode", "release")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load builds a Config from v. If settingsFile isn't empty, it's read first
// and its values override the defaults. Environment variables override both,
// and flags bound to v override everything.
func Load(v *viper.Viper, settingsFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settingsFile, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// New returns a new Config struct populated by the global Viper instance,
// which the cobra commands bind their flags to.
func New() (*Config, error) {
	return Load(viper.GetViper(), viper.GetString("settings"))
}

// Validate checks settings that can't be caught by their types.
func (c *Config) Validate() error {
	var errs []error

	if c.Fold.MinLoop < 0 {
		errs = append(errs, fmt.Errorf("fold.min-loop must be a non-negative integer, got %d", c.Fold.MinLoop))
	}
	if c.Fold.Format != "json" && c.Fold.Format != "yaml" {
		errs = append(errs, fmt.Errorf("fold.format must be json or yaml, got %q", c.Fold.Format))
	}
	switch c.Server.Mode {
	case "", "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode))
	}
	if c.Server.MaxLength < 0 {
		errs = append(errs, fmt.Errorf("server.max-length must be a non-negative integer, got %d", c.Server.MaxLength))
	}

	return errors.Join(errs...)
}
