package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tacogips/jamgen/internal/debug"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for file-based configuration loading.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path. Keys absent from
// the file keep their default values.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid YAML syntax", err)
	}

	mergeConfig(cfg, DefaultConfig())

	debug.Debug("[config] Loaded configuration: %s", path)
	return cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	cfg, err := l.Load(path)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Type == ConfigNotFound {
			debug.Debug("[config] No configuration at %s, using defaults", path)
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	if config.Git.Depth < 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "git.depth", "depth cannot be negative")
	}
	if config.Git.Timeout < 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "git.timeout", "timeout cannot be negative")
	}
	if strings.TrimSpace(config.Templates.Default) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "templates.default", "default template cannot be empty")
	}
	if err := validateBranch(config.Git.DefaultBranch); err != nil {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "git.default_branch", err.Error())
	}
	if err := validateBranch(config.Git.InitBranch); err != nil {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "git.init_branch", err.Error())
	}
	return nil
}

// Validate validates the configuration with the default loader.
func Validate(config *Config) error {
	return NewLoader().Validate(config)
}

// validateBranch rejects names git would refuse as a branch.
func validateBranch(name string) error {
	if name == "" {
		return nil
	}
	if strings.ContainsAny(name, " ~^:?*[\\") {
		return fmt.Errorf("invalid branch name %q", name)
	}
	if strings.Contains(name, "..") || strings.HasPrefix(name, "-") || strings.HasSuffix(name, "/") {
		return fmt.Errorf("invalid branch name %q", name)
	}
	return nil
}

// mergeConfig fills fields set to empty strings in the file from defaults.
func mergeConfig(cfg, defaults *Config) {
	if cfg.Templates.Default == "" {
		cfg.Templates.Default = defaults.Templates.Default
	}
	if cfg.Git.InitBranch == "" {
		cfg.Git.InitBranch = defaults.Git.InitBranch
	}
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	return absPath, nil
}
