// Package config loads the server configuration from the environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Environments understood by the logger setup.
const (
	EnvLocal = "local"
	EnvDev   = "development"
	EnvProd  = "production"
)

// EnvPrefix is prepended to every environment variable, e.g. REMOTEPOINT_ENV.
const EnvPrefix = "REMOTEPOINT"

// Config holds the server settings.
//
// Fields:
// - Env: The current environment (local, development, production).
// - RadiusKm: Sphere radius used for distances.
// - Workers: Goroutines used by a single search.
// - CacheSize, CacheTTL: Bounds of the search result cache.
// - SearchRate, SearchBurst: Throttle for the search tools, in calls per second.
// - MetricsAddr: Listen address of the monitoring server; empty disables it.
type Config struct {
	Env         string        `mapstructure:"env"`
	RadiusKm    float64       `mapstructure:"radius_km"`
	Workers     int           `mapstructure:"workers"`
	CacheSize   int           `mapstructure:"cache_size"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
	SearchRate  float64       `mapstructure:"search_rate"`
	SearchBurst int           `mapstructure:"search_burst"`
	MetricsAddr string        `mapstructure:"metrics_addr"`
}

// Load reads the configuration. path may name a YAML, JSON or TOML file; an
// empty path reads the environment only. Environment variables override the
// file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", EnvProd)
	v.SetDefault("radius_km", 6371.0)
	v.SetDefault("workers", runtime.GOMAXPROCS(0))
	v.SetDefault("cache_size", 256)
	v.SetDefault("cache_ttl", "10m")
	v.SetDefault("search_rate", 2.0)
	v.SetDefault("search_burst", 4)
	v.SetDefault("metrics_addr", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}
	return cfg
}

// Validate checks value ranges that the types alone do not.
func (c *Config) Validate() error {
	var errs []error
	if c.RadiusKm <= 0 {
		errs = append(errs, fmt.Errorf("radius_km must be positive, got %v", c.RadiusKm))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if c.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("cache_ttl must not be negative, got %s", c.CacheTTL))
	}
	return errors.Join(errs...)
}
