// Package config provides configuration loading and validation for the CLI
// and API server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the job-finder configuration. It can be loaded from a
// JSON file, with credentials layered in from the environment. All fields
// are optional; missing values use defaults or must be provided via CLI
// flags.
type Config struct {
	// Search parameters
	Resume   string `json:"resume,omitempty"`   // Path to résumé file (.txt or .pdf)
	JobTitle string `json:"job_title,omitempty"` // Role to search for
	Location string `json:"location,omitempty"` // Preferred location, empty means anywhere
	NumJobs  int    `json:"num_jobs,omitempty"` // Maximum jobs to fetch per run

	// Behavior
	Mock       bool `json:"mock,omitempty"`        // Use mock job and reputation data, no external APIs
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA discussion pages (requires Chrome)
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
	Port       int  `json:"port,omitempty"`        // API server port

	// Credentials. Normally loaded from the environment, never committed
	// to a config file.
	GeminiAPIKey  string `json:"-"`
	JSearchAPIKey string `json:"-"`
	BraveAPIKey   string `json:"-"`
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

// LoadEnv fills credential fields from the environment. Values already set
// on the Config are kept.
func (c *Config) LoadEnv() {
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.JSearchAPIKey == "" {
		c.JSearchAPIKey = os.Getenv("JSEARCH_API_KEY")
	}
	if c.BraveAPIKey == "" {
		c.BraveAPIKey = os.Getenv("BRAVE_SEARCH_API_KEY")
	}
	if c.Port == 0 {
		if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			c.Port = p
		}
	}
}

// Validate checks that the configuration has valid values.
// Note: required fields are not checked here since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.NumJobs < 0 {
		return fmt.Errorf("config error: 'num_jobs' must be non-negative")
	}
	if c.NumJobs > 50 {
		return fmt.Errorf("config error: 'num_jobs' must be at most 50")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.JobTitle == "" {
		result.JobTitle = defaults.JobTitle
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.JSearchAPIKey == "" {
		result.JSearchAPIKey = defaults.JSearchAPIKey
	}
	if result.BraveAPIKey == "" {
		result.BraveAPIKey = defaults.BraveAPIKey
	}

	// Int fields: use default if zero
	if result.NumJobs == 0 {
		result.NumJobs = defaults.NumJobs
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
