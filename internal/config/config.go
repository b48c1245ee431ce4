// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers file and environment on top.
// - External errors must be wrapped via this package's error helpers.
package config

import "runtime"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// CatalogPath overrides the embedded sample catalog with a JSON file.
	CatalogPath string `koanf:"catalog_path"`

	// TopCandidates caps each category's ranked candidate list. It bounds
	// the search space at the cost of possibly excluding a product past
	// the cap.
	TopCandidates int `koanf:"top_candidates"`

	// SearchWorkers sets the parallelism of the combination search's
	// subset scan.
	SearchWorkers int `koanf:"search_workers"`

	// AllowedOrigins lists origins permitted by the CORS middleware.
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":8000",
		TopCandidates:  10,
		SearchWorkers:  runtime.NumCPU(),
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}
