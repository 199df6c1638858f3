// Package config loads the admin tool configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the admin tool.
type Config struct {
	Redis     RedisConfig     `yaml:"redis"`
	Log       LogConfig       `yaml:"log"`
	Bestiary  BestiaryConfig  `yaml:"bestiary"`
	Recompute RecomputeConfig `yaml:"recompute"`
}

// RedisConfig holds connection parameters for the Redis store. URL wins
// over Endpoint when both are set.
type RedisConfig struct {
	Endpoint     string `yaml:"endpoint"`
	URL          string `yaml:"url"`
	PoolSize     int    `yaml:"pool_size"`
	MinIdleConns int    `yaml:"min_idle_conns"`
}

// LogConfig controls the structured log output.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// BestiaryConfig holds parameters for the external bestiary source.
type BestiaryConfig struct {
	BaseURL     string `yaml:"base_url"`
	HTTPTimeout int    `yaml:"http_timeout"` // seconds
	CacheTTL    int    `yaml:"cache_ttl"`    // seconds
}

// RecomputeConfig tunes the full-store derivation sweep.
type RecomputeConfig struct {
	Concurrency int `yaml:"concurrency"`
}

// Default returns a Config with sensible defaults for local use.
func Default() Config {
	return Config{
		Redis: RedisConfig{
			Endpoint: "localhost:6379",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Bestiary: BestiaryConfig{
			HTTPTimeout: 30,
			CacheTTL:    86400,
		},
		Recompute: RecomputeConfig{
			Concurrency: 4,
		},
	}
}

// Load loads config from a YAML file. If the file doesn't exist, returns
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
