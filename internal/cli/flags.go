package cli

import (
	"fmt"

	"github.com/tacogips/jamgen/internal/app"
	"github.com/tacogips/jamgen/internal/config"
	"github.com/tacogips/jamgen/internal/template/provider"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagTemplate   = "template"
	FlagGit        = "git"
	FlagBranch     = "branch"
	FlagPath       = "path"
	FlagOutput     = "output"
	FlagDefaults   = "defaults"
	FlagDefine     = "define"
	FlagValuesFile = "values-file"
	FlagNoGit      = "no-git"
	FlagVerbose    = "verbose"
	FlagConfig     = "config"
	FlagNoColor    = "no-color"
	FlagQuiet      = "quiet"
	FlagDebug      = "debug"

	// Flag descriptions
	DescTemplate   = "Bundled template name or local template directory"
	DescGit        = "Git repository to fetch the template from"
	DescBranch     = "Git branch to check out (requires --git)"
	DescPath       = "Template subdirectory inside the repository (requires --git)"
	DescOutput     = "Output directory (default: ./<name>)"
	DescDefaults   = "Use placeholder defaults without prompting"
	DescDefine     = "Set a template variable (KEY=VALUE, repeatable)"
	DescValuesFile = "YAML file of template variables"
	DescNoGit      = "Do not initialize a git repository"
	DescVerbose    = "Verbose output"
	DescConfig     = "Path to config file"
	DescNoColor    = "Disable colored output"
	DescQuiet      = "Suppress non-error output"
	DescDebug      = "Enable debug logging"
)

// templateFlags holds the template selection flags of the new command.
type templateFlags struct {
	template string
	git      string
	branch   string
	path     string
}

// sourceFromFlags resolves the template source, falling back to cfg for
// anything the flags leave unset.
func sourceFromFlags(f templateFlags, cfg *config.Config) (provider.Source, error) {
	if f.git != "" && f.template != "" {
		return provider.Source{}, app.NewValidationError(
			fmt.Sprintf("--%s cannot be combined with --%s", FlagGit, FlagTemplate), nil)
	}
	if f.git == "" && (f.branch != "" || f.path != "") {
		return provider.Source{}, app.NewValidationError(
			fmt.Sprintf("--%s and --%s require --%s", FlagBranch, FlagPath, FlagGit), nil)
	}

	if f.git != "" {
		ref, err := provider.ParseRemote(f.git)
		if err != nil {
			return provider.Source{}, app.NewValidationError("invalid --"+FlagGit+" value", err)
		}
		// A branch named in the URL wins over the configured default.
		branch := f.branch
		if branch == "" && ref.Branch == "" {
			branch = cfg.Git.DefaultBranch
		}
		return provider.Source{
			GitURL: f.git,
			Git: provider.GitOptions{
				Branch: branch,
				Subdir: f.path,
				Depth:  cfg.Git.Depth,
			},
		}, nil
	}

	name := f.template
	if name == "" {
		name = cfg.Templates.Default
	}
	return provider.Source{Template: name}, nil
}

// describeSource renders a source for progress output.
func describeSource(src provider.Source) string {
	if src.GitURL == "" {
		return src.Template
	}
	s := src.GitURL
	if src.Git.Branch != "" {
		s += "@" + src.Git.Branch
	}
	if src.Git.Subdir != "" {
		s += " (" + src.Git.Subdir + ")"
	}
	return s
}
