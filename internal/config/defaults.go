package config

import (
	"os"
	"path/filepath"
)

// FileName is the configuration file name inside the config directory.
const FileName = "config.yaml"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Templates: TemplatesConfig{
			Default: "basic-service",
		},
		Git: GitConfig{
			DefaultBranch: "",
			Depth:         1,
			Timeout:       120,
			InitRepo:      true,
			InitBranch:    "main",
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "jamgen", FileName)
}
