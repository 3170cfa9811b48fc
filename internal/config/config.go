// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Dictionaries
	Skills   string `json:"skills,omitempty"`   // Path to a custom skills database JSON
	Keywords string `json:"keywords,omitempty"` // Path to a custom job keywords JSON

	// Analysis
	JobTitle string `json:"job_title,omitempty"` // Default job title for comparison
	Seed     int64  `json:"seed,omitempty"`      // Random seed for suggestion/summary sampling
	Output   string `json:"output,omitempty"`    // Path to write the JSON report to

	// Server
	Addr            string `json:"addr,omitempty"`              // Listen address, e.g. ":8080"
	RateLimitPerMin int    `json:"rate_limit_per_min,omitempty"` // Requests per minute per client

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`   // Print detailed debug information
	JSONLogs bool `json:"json_logs,omitempty"` // Emit logs as JSON instead of console
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
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
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.RateLimitPerMin < 0 {
		return fmt.Errorf("config error: 'rate_limit_per_min' must be non-negative")
	}

	if c.Skills != "" {
		if _, err := os.Stat(c.Skills); os.IsNotExist(err) {
			return fmt.Errorf("config error: skills file not found: %s", c.Skills)
		}
	}
	if c.Keywords != "" {
		if _, err := os.Stat(c.Keywords); os.IsNotExist(err) {
			return fmt.Errorf("config error: keywords file not found: %s", c.Keywords)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Skills == "" {
		result.Skills = defaults.Skills
	}
	if result.Keywords == "" {
		result.Keywords = defaults.Keywords
	}
	if result.JobTitle == "" {
		result.JobTitle = defaults.JobTitle
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Addr == "" {
		result.Addr = defaults.Addr
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}
	if result.RateLimitPerMin == 0 {
		result.RateLimitPerMin = defaults.RateLimitPerMin
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.JSONLogs {
		result.JSONLogs = defaults.JSONLogs
	}

	return result
}
