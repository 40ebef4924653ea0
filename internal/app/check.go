package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/jamgen/internal/debug"
	"github.com/tacogips/jamgen/internal/template/engine"
	"github.com/tacogips/jamgen/internal/template/generator"
	"github.com/tacogips/jamgen/internal/template/model"
)

// Sample project name used to exercise a template without generating it.
const checkProjectName = "example-project"

// CheckTemplateOptions holds options for template validation.
type CheckTemplateOptions struct {
	// Path is the local template directory to check.
	Path string
}

// CheckResult holds the results of template validation.
type CheckResult struct {
	// TemplateName is the manifest name of the checked template.
	TemplateName string
	// FilesChecked is the number of files whose name or content was rendered.
	FilesChecked int
	// FilesWithErrors is the number of files with at least one error.
	FilesWithErrors int
	// Errors is the list of problems found.
	Errors []CheckError
}

// CheckError represents a problem in one template file.
type CheckError struct {
	// File is the template-relative path.
	File string
	// Message describes the problem.
	Message string
}

// CheckTemplate loads the manifest of a local template and renders every
// path and renderable file against sample bindings, collecting all errors
// instead of stopping at the first. Nothing is written.
func CheckTemplate(ctx context.Context, opts CheckTemplateOptions) (*CheckResult, error) {
	absPath, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, NewValidationError("failed to get absolute path", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("path not found: %s", absPath), err)
	}
	if !info.IsDir() {
		return nil, NewValidationError(fmt.Sprintf("not a template directory: %s", absPath), nil)
	}

	m, err := model.LoadManifest(absPath)
	if err != nil {
		return nil, err
	}

	bindings := sampleBindings(m)
	r := engine.New()
	result := &CheckResult{TemplateName: m.Template.Name, Errors: []CheckError{}}

	err = filepath.WalkDir(absPath, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(absPath, path)
		if err != nil || rel == "." {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() && d.Name() == ".git" {
			return filepath.SkipDir
		}
		if generator.ShouldIgnore(m, rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		marked := strings.HasSuffix(rel, generator.TemplateSuffix)
		var problems []string
		if _, err := generator.RenderPath(rel, bindings, r, marked && !d.IsDir()); err != nil {
			problems = append(problems, err.Error())
		}

		if !d.IsDir() {
			result.FilesChecked++
			content, err := os.ReadFile(path)
			if err != nil {
				problems = append(problems, err.Error())
			} else if generator.ShouldRenderContent(m, rel, content) {
				if _, err := r.Render(string(content), bindings); err != nil {
					problems = append(problems, err.Error())
				}
			}
		}

		if len(problems) > 0 {
			result.FilesWithErrors++
			for _, p := range problems {
				result.Errors = append(result.Errors, CheckError{File: rel, Message: p})
			}
		}
		return nil
	})
	if err != nil {
		return nil, NewValidationError("failed to walk template", err)
	}

	debug.Debug("[app] Checked %d files in %s, %d with errors", result.FilesChecked, absPath, result.FilesWithErrors)
	return result, nil
}

// sampleBindings binds every placeholder to its default, first choice or a
// stand-in so that rendering only fails on real template problems.
func sampleBindings(m *model.Manifest) map[string]string {
	bindings := map[string]string{
		VarProjectName: checkProjectName,
		VarCrateName:   ModuleIdentifier(checkProjectName),
	}
	for name, p := range m.Placeholders {
		switch p := p.(type) {
		case *model.StringPlaceholder:
			if def, ok := p.DefaultValue(); ok {
				bindings[name] = def
			} else if choices := p.Choices(); len(choices) > 0 {
				bindings[name] = choices[0]
			} else {
				bindings[name] = name
			}
		case *model.BoolPlaceholder:
			bindings[name] = model.FormatBool(p.Default != nil && *p.Default)
		}
	}
	return bindings
}
