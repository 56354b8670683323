package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the restyle.json configuration
type Config struct {
	// Directory watched for stylesheet sources
	StylesDir string `json:"stylesDir,omitempty"`

	// Optional theme manifest pushed alongside watched stylesheets
	Theme string `json:"theme,omitempty"`

	// Identifier of the managed style container clients apply rules into
	Container string `json:"container,omitempty"`

	// Development server configuration
	Dev *DevConfig `json:"dev,omitempty"`
}

// DevConfig contains development server configuration
type DevConfig struct {
	// Server port
	Port int `json:"port,omitempty"`

	// Server host
	Host string `json:"host,omitempty"`

	// Whether to open the browser on start
	Open bool `json:"open,omitempty"`
}

// FileName is the configuration file restyle looks for in a project.
const FileName = "restyle.json"

// Load loads configuration from restyle.json in projectPath. A missing file
// yields the defaults.
func Load(projectPath string) (*Config, error) {
	configPath := filepath.Join(projectPath, FileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	return &config, nil
}

// Save writes configuration to restyle.json in projectPath.
func Save(config *Config, projectPath string) error {
	configPath := filepath.Join(projectPath, FileName)

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		StylesDir: "styles",
		Container: "",
		Dev: &DevConfig{
			Port: 8135,
			Host: "localhost",
			Open: false,
		},
	}
}

// applyDefaults applies default values to missing configuration
func applyDefaults(config *Config) {
	defaults := DefaultConfig()

	if config.StylesDir == "" {
		config.StylesDir = defaults.StylesDir
	}

	if config.Dev == nil {
		config.Dev = defaults.Dev
	} else {
		if config.Dev.Port == 0 {
			config.Dev.Port = defaults.Dev.Port
		}
		if config.Dev.Host == "" {
			config.Dev.Host = defaults.Dev.Host
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Dev != nil && (c.Dev.Port < 0 || c.Dev.Port > 65535) {
		return fmt.Errorf("invalid dev port %d", c.Dev.Port)
	}
	return nil
}
