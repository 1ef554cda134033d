// Package config handles configuration for pw-trace-report.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults applied when a field is unset in config.yaml and on the CLI.
const (
	DefaultProjectName = "Playwright Traces"
	DefaultTracesDir   = "target/pw-traces"
	DefaultOutputDir   = "target/pw-report"
	DefaultPort        = 8080
)

// Config represents the workspace configuration (config.yaml).
type Config struct {
	// Report settings
	ProjectName string `yaml:"projectName"` // Display name in the report header
	TracesDir   string `yaml:"tracesDir"`   // Directory scanned for trace archives
	OutputDir   string `yaml:"outputDir"`   // Directory the report is written to

	// Preview server settings
	Port int `yaml:"port"`
}

// ApplyDefaults fills unset fields with default values.
func (c *Config) ApplyDefaults() {
	if c.ProjectName == "" {
		c.ProjectName = DefaultProjectName
	}
	if c.TracesDir == "" {
		c.TracesDir = DefaultTracesDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromDir looks for config.yaml or config.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	// Try config.yaml first
	configPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// Try config.yml
	configPath = filepath.Join(dir, "config.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// No config file found, return empty config
	return &Config{}, nil
}
