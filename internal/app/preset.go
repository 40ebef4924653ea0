package app

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tacogips/jamgen/internal/debug"
)

// BuildPreset merges explicit KEY=VALUE defines with a YAML values file.
// Defines are applied first; values file entries then overwrite colliding
// keys. An empty valuesFile is skipped.
func BuildPreset(defines []string, valuesFile string) (map[string]string, error) {
	preset := make(map[string]string)

	for _, define := range defines {
		key, value, ok := strings.Cut(define, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, NewValidationError(fmt.Sprintf("invalid define %q: expected KEY=VALUE", define), nil)
		}
		preset[key] = value
	}

	if valuesFile == "" {
		return preset, nil
	}

	values, err := LoadValuesFile(valuesFile)
	if err != nil {
		return nil, err
	}
	for key, value := range values {
		if old, ok := preset[key]; ok && old != value {
			debug.Debug("[app] Values file overrides define %s: %q -> %q", key, old, value)
		}
		preset[key] = value
	}

	return preset, nil
}

// LoadValuesFile reads a YAML mapping of variable values. Scalars become
// strings; nested mappings and sequences are rejected.
func LoadValuesFile(path string) (map[string]string, error) {
	debug.Debug("[app] Loading values file: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewVariableLoadError(fmt.Sprintf("failed to read values file %s", path), err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewVariableLoadError(fmt.Sprintf("failed to parse values file %s", path), err)
	}

	values := make(map[string]string)
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return values, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, NewVariableLoadError(fmt.Sprintf("values file %s must contain a mapping", path), nil)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i].Value, root.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, NewVariableLoadError(
				fmt.Sprintf("values file %s: value of %q must be a string, number or boolean", path, key), nil)
		}
		if val.Tag == "!!null" {
			values[key] = ""
			continue
		}
		values[key] = val.Value
	}

	debug.DebugValue("[app] Values loaded", len(values))
	return values, nil
}
