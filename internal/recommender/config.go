// internal/recommender/config.go
package recommender

import "time"

// Config holds the pipeline tunables.
type Config struct {
	MaxItems     int
	FetchTimeout time.Duration
}

// DefaultConfig matches the product behavior: at most eight recommendations.
func DefaultConfig() *Config {
	return &Config{
		MaxItems:     8,
		FetchTimeout: 5 * time.Second,
	}
}
