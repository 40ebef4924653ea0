package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tacogips/jamgen/internal/debug"
	"github.com/tacogips/jamgen/internal/template/engine"
	"github.com/tacogips/jamgen/internal/template/generator"
	"github.com/tacogips/jamgen/internal/template/model"
	"github.com/tacogips/jamgen/internal/template/provider"
)

// NewOptions configures project creation.
type NewOptions struct {
	// ProjectName is the project name. When empty it is prompted for.
	ProjectName string
	// Source selects the template.
	Source provider.Source
	// OutputDir is the project directory. Defaults to ./<ProjectName>.
	OutputDir string
	// Defines are KEY=VALUE presets.
	Defines []string
	// ValuesFile is an optional YAML file of presets.
	ValuesFile string
	// Interactive enables prompting.
	Interactive bool
	// Prompter asks for missing values when Interactive is set.
	Prompter Prompter
	// InitGit initializes a git repository in the new project.
	InitGit bool
	// InitBranch is the initial branch name for InitGit.
	InitBranch string
}

// NewResult describes a created project.
type NewResult struct {
	ProjectName string
	// OutputDir is the absolute project directory.
	OutputDir string
	// TemplateName is the manifest name of the template used.
	TemplateName string
	// Generate holds generation statistics.
	Generate *generator.GenerateResult
	// GitInitialized reports whether a repository was created.
	GitInitialized bool
}

// NewProject fetches a template, collects variables and generates a project.
func NewProject(ctx context.Context, opts NewOptions) (*NewResult, error) {
	debug.DebugSection("[app] New project workflow start")
	debug.DebugValue("[app] ProjectName", opts.ProjectName)
	debug.DebugValue("[app] Template", opts.Source.Template)
	debug.DebugValue("[app] GitURL", opts.Source.GitURL)
	debug.DebugValue("[app] Interactive", opts.Interactive)

	if opts.ProjectName != "" {
		if err := ValidateProjectName(opts.ProjectName); err != nil {
			return nil, err
		}
	} else if !opts.Interactive {
		return nil, NewValidationError("project name is required when prompting is disabled", nil)
	}
	if opts.Interactive && opts.Prompter == nil {
		return nil, NewValidationError("interactive mode requires a prompter", nil)
	}

	preset, err := BuildPreset(opts.Defines, opts.ValuesFile)
	if err != nil {
		return nil, err
	}

	p, err := provider.NewProvider(opts.Source)
	if err != nil {
		return nil, NewTemplateFetchError("invalid template source", err)
	}
	tree, err := p.Fetch(ctx)
	if err != nil {
		return nil, NewTemplateFetchError("failed to fetch template", err)
	}
	defer func() {
		if err := tree.Close(); err != nil {
			debug.Debug("[app] Failed to remove template tree: %v", err)
		}
	}()

	manifest, err := model.LoadManifest(tree.Root)
	if err != nil {
		return nil, NewTemplateFetchError("failed to load template manifest", err)
	}
	debug.Debug("[app] Using template %s (%s)", manifest.Template.Name, p.Name())

	name := opts.ProjectName
	if name == "" {
		name, err = opts.Prompter.Input("Project name", "", ValidateProjectName)
		if err != nil {
			return nil, NewAppError(PromptFailed, "failed to read project name", err)
		}
		if err := ValidateProjectName(name); err != nil {
			return nil, err
		}
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = name
	}
	outputDir, err = filepath.Abs(outputDir)
	if err != nil {
		return nil, NewValidationError("failed to resolve output directory", err)
	}
	if _, err := os.Lstat(outputDir); err == nil {
		return nil, NewAppError(OutputExists, fmt.Sprintf("directory %s already exists", outputDir), nil)
	}

	bindings, err := CollectBindings(manifest, CollectOptions{
		Preset:      preset,
		ProjectName: name,
		Interactive: opts.Interactive,
		Prompter:    opts.Prompter,
	})
	if err != nil {
		return nil, err
	}

	gen, err := generator.New(engine.New()).Generate(generator.GenerateOptions{
		TemplateRoot: tree.Root,
		OutputRoot:   outputDir,
		Manifest:     manifest,
		Bindings:     bindings,
	})
	if err != nil {
		return nil, NewAppError(GenerateFailed, "failed to generate project", err)
	}

	result := &NewResult{
		ProjectName:  name,
		OutputDir:    outputDir,
		TemplateName: manifest.Template.Name,
		Generate:     gen,
	}

	if opts.InitGit {
		if err := InitRepository(outputDir, opts.InitBranch); err != nil {
			return result, err
		}
		result.GitInitialized = true
	}

	debug.Debug("[app] New project workflow complete: %s", outputDir)
	return result, nil
}
