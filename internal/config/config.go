// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"pack-calc/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Engine contains calculation engine tuning
	Engine EngineConfig `json:"engine"`

	// Storage contains persistence configuration
	Storage StorageConfig `json:"storage"`

	// Overrides contains knowledge-base override configuration
	Overrides OverridesConfig `json:"overrides"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// EngineConfig contains the tunable engine thresholds.
// The defaults are empirically tuned reference values; changing them
// silently changes billing output.
type EngineConfig struct {
	// ReviewThreshold flags calculations below this confidence for review
	ReviewThreshold float64 `json:"review_threshold"`

	// SimilarityThreshold is the minimum accepted fuzzy-match score
	SimilarityThreshold float64 `json:"similarity_threshold"`

	// RetrainThreshold is the approved-correction count that signals retraining
	RetrainThreshold int `json:"retrain_threshold"`
}

// StorageConfig contains persistence settings
type StorageConfig struct {
	// Backend is the repository backend (sqlite, memory)
	Backend string `json:"backend"`

	// DatabasePath is the path to the sqlite database
	DatabasePath string `json:"database_path"`
}

// OverridesConfig contains knowledge-base override settings
type OverridesConfig struct {
	// FilePath is an optional YAML file of operator item overrides
	FilePath string `json:"file_path,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (text, json)
	DefaultFormat string `json:"default_format"`

	// ShowExplanations includes per-room explanations
	ShowExplanations bool `json:"show_explanations"`

	// ShowConfidence shows confidence scores
	ShowConfidence bool `json:"show_confidence"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dbPath := filepath.Join(homeDir, ".pack-calc", "calculations.db")

	return &Config{
		Version: "1.0",
		Engine: EngineConfig{
			ReviewThreshold:     0.8,
			SimilarityThreshold: 0.75,
			RetrainThreshold:    50,
		},
		Storage: StorageConfig{
			Backend:      "sqlite",
			DatabasePath: dbPath,
		},
		Output: OutputConfig{
			DefaultFormat:    "text",
			ShowExplanations: true,
			ShowConfidence:   true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
