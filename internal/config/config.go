// Package config defines service configuration and how it is loaded.
//
// Conventions:
// - New() returns a Config holding every default.
// - Load layers a YAML file and environment variables over the defaults.
// - Validation errors wrap ErrInvalidConfig.
package config

import (
	"fmt"
	"runtime"
	"strings"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CatalogDir holds newest.json, mostplayed.json, bestgames.json and
	// bestonmobile.json. Empty means the embedded sample catalogs.
	CatalogDir string `koanf:"catalog_dir"`

	// DefaultPageSize applies when a request carries no page size.
	DefaultPageSize int `koanf:"default_page_size"`

	// MaxPageSize caps the page_size query parameter.
	MaxPageSize int `koanf:"max_page_size"`

	// SimilarLimit is the number of similar games attached to a lookup.
	SimilarLimit int `koanf:"similar_limit"`

	// RecentCapacity bounds the recently played list.
	RecentCapacity int `koanf:"recent_capacity"`

	// RecentPath persists the recently played list. Empty keeps it in memory.
	RecentPath string `koanf:"recent_path"`

	// QueueSize bounds the in-memory play event queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of play event workers.
	WorkerCount int `koanf:"worker_count"`

	// PopularityMode is hashed (stable per game id) or random (seeded).
	PopularityMode string `koanf:"popularity_mode"`

	// PopularitySeed seeds the random popularity mode.
	PopularitySeed int64 `koanf:"popularity_seed"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		Addr:            ":9080",
		DefaultPageSize: 24,
		MaxPageSize:     100,
		SimilarLimit:    6,
		RecentCapacity:  12,
		QueueSize:       1024,
		WorkerCount:     runtime.NumCPU(),
		PopularityMode:  "hashed",
		PopularitySeed:  42,
	}
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DefaultPageSize < 1:
		return fmt.Errorf("%w: default_page_size must be positive, got %d", ErrInvalidConfig, c.DefaultPageSize)
	case c.MaxPageSize < c.DefaultPageSize:
		return fmt.Errorf("%w: max_page_size %d is below default_page_size %d", ErrInvalidConfig, c.MaxPageSize, c.DefaultPageSize)
	case c.SimilarLimit < 1:
		return fmt.Errorf("%w: similar_limit must be positive, got %d", ErrInvalidConfig, c.SimilarLimit)
	case c.RecentCapacity < 1:
		return fmt.Errorf("%w: recent_capacity must be positive, got %d", ErrInvalidConfig, c.RecentCapacity)
	case c.QueueSize < 1:
		return fmt.Errorf("%w: queue_size must be positive, got %d", ErrInvalidConfig, c.QueueSize)
	case c.WorkerCount < 1:
		return fmt.Errorf("%w: worker_count must be positive, got %d", ErrInvalidConfig, c.WorkerCount)
	}

	switch strings.ToLower(c.PopularityMode) {
	case "hashed", "random":
	default:
		return fmt.Errorf("%w: popularity_mode must be hashed or random, got %q", ErrInvalidConfig, c.PopularityMode)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
