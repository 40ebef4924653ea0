package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tacogips/jamgen/internal/debug"
)

// TemplateSuffix marks a file whose content is always rendered. The suffix
// is dropped from the output name.
const TemplateSuffix = ".liquid"

// RenderPath renders every component of a slash-separated template path and
// returns the output path. The template suffix is stripped from the last
// component when stripSuffix is set.
//
// An error is returned if:
// - A component fails to render
// - A rendered component is empty, is "." or "..", or contains a path separator
// - The resulting path is absolute or escapes the output root
func RenderPath(relPath string, bindings map[string]string, r Renderer, stripSuffix bool) (string, error) {
	components := strings.Split(relPath, "/")
	rendered := make([]string, 0, len(components))

	for i, component := range components {
		if component == "" {
			continue
		}

		out, err := r.RenderFilename(component, bindings)
		if err != nil {
			return "", newGeneratorError(GeneratorRenderFailed,
				fmt.Sprintf("failed to render path component %q", component),
				relPath,
				err)
		}

		if stripSuffix && i == len(components)-1 {
			out = strings.TrimSuffix(out, TemplateSuffix)
		}

		if out != component {
			debug.Debug("[generator] Rendered path component: %s -> %s", component, out)
		}

		if err := validateFilenameComponent(out, component); err != nil {
			return "", newGeneratorError(GeneratorPathError, "invalid output path", relPath, err)
		}
		rendered = append(rendered, out)
	}

	result := strings.Join(rendered, "/")
	if err := validateProcessedPath(result, relPath); err != nil {
		return "", newGeneratorError(GeneratorPathError, "invalid output path", relPath, err)
	}
	return result, nil
}

// validateFilenameComponent validates a single rendered path component.
func validateFilenameComponent(processed, original string) error {
	if processed == ".." || processed == "." {
		return fmt.Errorf("component %q is a relative path reference after rendering (original: %q)", processed, original)
	}

	if strings.Contains(processed, "/") || strings.Contains(processed, "\\") {
		return fmt.Errorf("component %q contains path separator after rendering (original: %q)", processed, original)
	}

	if strings.TrimSpace(processed) == "" {
		return fmt.Errorf("component %q rendered to an empty name", original)
	}

	return nil
}

// validateProcessedPath validates the complete rendered path.
func validateProcessedPath(processed, original string) error {
	if filepath.IsAbs(processed) {
		return fmt.Errorf("%q is an absolute path after rendering (original: %q)", processed, original)
	}

	cleaned := filepath.Clean(processed)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%q escapes the output directory (original: %q)", processed, original)
	}
	if cleaned == "." {
		return fmt.Errorf("%q resolves to the output directory itself (original: %q)", processed, original)
	}

	return nil
}
