package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/opserr/internal/config/colors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFullErrorValuePath is where the operation error lives in state.
	DefaultFullErrorValuePath = "error.value"
	// DefaultPathSeparator separates state path segments.
	DefaultPathSeparator = "."
	// DefaultDisplayDurationMs is how long an error stays visible.
	DefaultDisplayDurationMs = 2000
)

// Config represents the application configuration
type Config struct {
	ErrorDisplay ErrorDisplay       `yaml:"error_display"`
	KeyMappings  KeyMappings        `yaml:"key_mappings"`
	ColorScheme  colors.ColorScheme `yaml:"theme"`
}

// ErrorDisplay configures where the operation error is stored and how long
// it stays on screen.
type ErrorDisplay struct {
	FullErrorValuePath string `yaml:"full_error_value_path" validate:"required"`
	PathSeparator      string `yaml:"path_separator" validate:"required"`
	DisplayDurationMs  int    `yaml:"display_duration_ms" validate:"gte=0"`
}

// DefaultErrorDisplay returns the default error display configuration
func DefaultErrorDisplay() ErrorDisplay {
	return ErrorDisplay{
		FullErrorValuePath: DefaultFullErrorValuePath,
		PathSeparator:      DefaultPathSeparator,
		DisplayDurationMs:  DefaultDisplayDurationMs,
	}
}

// DisplayDuration returns the display duration as a time.Duration
func (e ErrorDisplay) DisplayDuration() time.Duration {
	return time.Duration(e.DisplayDurationMs) * time.Millisecond
}

// Validate checks the error display configuration
func (e ErrorDisplay) Validate() error {
	if err := validator.New().Struct(e); err != nil {
		return fmt.Errorf("invalid error_display config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	config := &Config{
		ErrorDisplay: DefaultErrorDisplay(),
		KeyMappings:  DefaultKeyMappings(),
		ColorScheme:  *colors.Default(),
	}
	loadEnvOverrides(config)
	return config
}

// loadEnvOverrides applies OPSERR_DISPLAY_DURATION_MS if set to a valid value
func loadEnvOverrides(config *Config) {
	envVal := os.Getenv("OPSERR_DISPLAY_DURATION_MS")
	if envVal == "" {
		return
	}
	if parsed, err := strconv.Atoi(envVal); err == nil && parsed >= 0 {
		config.ErrorDisplay.DisplayDurationMs = parsed
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path
// Returns default config if the file doesn't exist
func LoadFile(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	// Fill in any missing values with defaults
	if err := config.applyDefaults(); err != nil {
		return nil, err
	}

	loadEnvOverrides(&config)

	if err := config.ErrorDisplay.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(configPath)
}

// SaveFile writes the config to configPath, creating its directory
func (c *Config) SaveFile(configPath string) error {
	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the location Load reads the config from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "opserr", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "opserr", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() error {
	if err := mergo.Merge(&c.ErrorDisplay, DefaultErrorDisplay()); err != nil {
		return fmt.Errorf("failed to apply error_display defaults: %w", err)
	}
	c.KeyMappings.applyDefaults()
	if err := c.ColorScheme.ApplyDefaults(); err != nil {
		return fmt.Errorf("failed to apply theme defaults: %w", err)
	}
	return nil
}
