package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DefaultTheme    string `yaml:"default_theme"`
	DefaultSort     string `yaml:"default_sort"`
	MaxWorkers      int    `yaml:"max_workers"`
	JPEGQuality     int    `yaml:"jpeg_quality"`
	ThumbMaxPx      int    `yaml:"thumb_max_px"`
	PreviewMaxPx    int    `yaml:"preview_max_px"`
	AutosaveSeconds int    `yaml:"autosave_seconds"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		DefaultTheme:    "Modern Dark",
		DefaultSort:     "added",
		MaxWorkers:      4,
		JPEGQuality:     85,
		ThumbMaxPx:      600,
		PreviewMaxPx:    1920,
		AutosaveSeconds: 300,
		ColorTheme:      "auto",
		LogLevel:        "warn",
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.DefaultTheme == "" {
		cfg.DefaultTheme = "Modern Dark"
	}
	if !isValidSort(cfg.DefaultSort) {
		cfg.DefaultSort = "added"
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 4
	}
	if cfg.JPEGQuality <= 0 || cfg.JPEGQuality > 100 {
		cfg.JPEGQuality = 85
	}
	if cfg.ThumbMaxPx <= 0 {
		cfg.ThumbMaxPx = 600
	}
	if cfg.PreviewMaxPx <= 0 {
		cfg.PreviewMaxPx = 1920
	}
	if cfg.AutosaveSeconds <= 0 {
		cfg.AutosaveSeconds = 300
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// isValidSort checks if the default sort mode is valid
func isValidSort(sort string) bool {
	switch sort {
	case "added", "title", "year":
		return true
	}
	return false
}
