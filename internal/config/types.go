package config

import "time"

// Config represents the global jamgen configuration.
type Config struct {
	// Templates configures template selection.
	Templates TemplatesConfig `yaml:"templates"`
	// Git configures remote fetching and repository initialization.
	Git GitConfig `yaml:"git"`
	// Output configures terminal output.
	Output OutputConfig `yaml:"output"`
}

// TemplatesConfig represents template selection settings.
type TemplatesConfig struct {
	// Default is the bundled template used when none is given.
	Default string `yaml:"default"`
}

// GitConfig represents git settings.
type GitConfig struct {
	// DefaultBranch is checked out when a remote is given without a branch.
	// Empty means the remote HEAD.
	DefaultBranch string `yaml:"default_branch"`
	// Depth is the clone depth. 0 fetches full history.
	Depth int `yaml:"depth"`
	// Timeout bounds a remote fetch, in seconds. 0 disables the bound.
	Timeout int `yaml:"timeout"`
	// InitRepo initializes a repository in generated projects.
	InitRepo bool `yaml:"init_repo"`
	// InitBranch is the initial branch of generated repositories.
	InitBranch string `yaml:"init_branch"`
}

// FetchTimeout returns Timeout as a duration.
func (g GitConfig) FetchTimeout() time.Duration {
	return time.Duration(g.Timeout) * time.Second
}

// OutputConfig represents output settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `yaml:"color"`
}
