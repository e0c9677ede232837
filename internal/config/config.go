// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults for a run when no config file or flags override them.
const (
	DefaultQueryCount      = 10
	DefaultResultsPerQuery = 5
	DefaultOutputDir       = "./ai-agent-output"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Search inputs
	Role     string `json:"role,omitempty"`     // Job title to search for
	Location string `json:"location,omitempty"` // Country or city to focus on
	Language string `json:"language,omitempty"` // Language for generated queries

	// Limits
	QueryCount      int `json:"query_count,omitempty"`       // Number of search queries to generate
	ResultsPerQuery int `json:"results_per_query,omitempty"` // Top-N search results kept per query

	// Behavior
	OutputDir      string `json:"output_dir,omitempty"`      // Directory for checkpoint artifacts
	SearchProvider string `json:"search_provider,omitempty"` // "tavily" (default) or "google"
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed debug information
	DatabaseURL    string `json:"database_url,omitempty"`    // Optional PostgreSQL URL for artifact mirroring
}

// Default returns the built-in run configuration.
func Default() Config {
	return Config{
		Role:            "AI/ML Engineer",
		Location:        "Egypt",
		Language:        "English",
		QueryCount:      DefaultQueryCount,
		ResultsPerQuery: DefaultResultsPerQuery,
		OutputDir:       DefaultOutputDir,
		SearchProvider:  "tavily",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.QueryCount < 0 {
		return fmt.Errorf("config error: 'query_count' must be non-negative")
	}
	if c.ResultsPerQuery < 0 {
		return fmt.Errorf("config error: 'results_per_query' must be non-negative")
	}
	switch c.SearchProvider {
	case "", "tavily", "google":
	default:
		return fmt.Errorf("config error: unknown search provider %q", c.SearchProvider)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.Language == "" {
		result.Language = defaults.Language
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.SearchProvider == "" {
		result.SearchProvider = defaults.SearchProvider
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.QueryCount == 0 {
		result.QueryCount = defaults.QueryCount
	}
	if result.ResultsPerQuery == 0 {
		result.ResultsPerQuery = defaults.ResultsPerQuery
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
