package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// AI strategy names
const (
	AIStrategyHeuristic = "heuristic"
	AIStrategyRandom    = "random"
)

// Config is the server's environment-driven configuration
type Config struct {
	HTTPAddr string `env:"FASTLANE_HTTP_ADDR" envDefault:":8080"`
	LogLevel string `env:"FASTLANE_LOG_LEVEL" envDefault:"info"`

	// StorageType selects the save backend: memory, redis or sqlite
	StorageType  string        `env:"FASTLANE_STORAGE_TYPE" envDefault:"memory"`
	SaveSlot     string        `env:"FASTLANE_SAVE_SLOT" envDefault:"default"`
	RedisURL     string        `env:"FASTLANE_REDIS_URL" envDefault:"redis://localhost:6379"`
	RedisSaveTTL time.Duration `env:"FASTLANE_REDIS_SAVE_TTL" envDefault:"720h"`
	SQLitePath   string        `env:"FASTLANE_SQLITE_PATH" envDefault:"fastlane.db"`

	// CatalogPath overrides the built-in location, job, course and item tables
	CatalogPath string        `env:"FASTLANE_CATALOG_PATH"`
	AIDelay     time.Duration `env:"FASTLANE_AI_DELAY" envDefault:"600ms"`
	// AIStrategy picks how the computer seat decides: heuristic or random
	AIStrategy string `env:"FASTLANE_AI_STRATEGY" envDefault:"heuristic"`
}

// ParseEnv loads configuration from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the tags cannot express
func (c Config) Validate() error {
	switch c.StorageType {
	case StorageTypeMemory, StorageTypeRedis, StorageTypeSQLite:
	default:
		return fmt.Errorf("invalid storage type %q: must be memory, redis or sqlite", c.StorageType)
	}
	switch c.AIStrategy {
	case AIStrategyHeuristic, AIStrategyRandom:
	default:
		return fmt.Errorf("invalid ai strategy %q: must be heuristic or random", c.AIStrategy)
	}
	if c.AIDelay < 0 {
		return fmt.Errorf("ai delay must not be negative, got %s", c.AIDelay)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
