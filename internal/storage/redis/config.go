package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// Slot names the save; each slot holds one game
	Slot string

	// SaveTTL expires an untouched save; zero keeps it forever
	SaveTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		Slot:         "default",
		SaveTTL:      30 * 24 * time.Hour,
	}
}
