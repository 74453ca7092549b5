// Package demo wires the mpmc queue into a small worker-pool harness
// used by cmd/mpmcdemo. It is not part of the library's public API.
package demo

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the settings for one demo run. It is populated from
// CLI flags, environment variables (MPMCDEMO_*), and an optional TOML
// config file, in that precedence order, following the
// viper.New()/AutomaticEnv() pattern used for service configuration
// elsewhere in the retrieval pack.
type Config struct {
	Capacity  uint64 `mapstructure:"capacity"`
	Producers int    `mapstructure:"producers"`
	Consumers int    `mapstructure:"consumers"`
	Messages  int    `mapstructure:"messages"`
	LogLevel  string `mapstructure:"log-level"`
}

// DefaultConfig returns the baseline settings used when no flag,
// environment variable, or config file overrides them.
func DefaultConfig() Config {
	return Config{
		Capacity:  64,
		Producers: 4,
		Consumers: 2,
		Messages:  1000,
		LogLevel:  "info",
	}
}

// LoadConfig builds a Config from v, which the caller has already
// bound to CLI flags and/or a config file. v.AutomaticEnv should
// already be enabled by the caller so that MPMCDEMO_-prefixed
// environment variables take effect.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("demo: failed to unmarshal configuration: %w", err)
	}
	if cfg.Capacity < 1 {
		return Config{}, fmt.Errorf("demo: capacity must be at least 1, got %d", cfg.Capacity)
	}
	if cfg.Producers < 1 {
		return Config{}, fmt.Errorf("demo: producers must be at least 1, got %d", cfg.Producers)
	}
	if cfg.Consumers < 1 {
		return Config{}, fmt.Errorf("demo: consumers must be at least 1, got %d", cfg.Consumers)
	}
	if cfg.Messages < 1 {
		return Config{}, fmt.Errorf("demo: messages must be at least 1, got %d", cfg.Messages)
	}
	return cfg, nil
}
