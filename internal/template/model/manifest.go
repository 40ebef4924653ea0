package model

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/tacogips/jamgen/internal/debug"
)

type rawManifest struct {
	Template     *rawTemplate               `yaml:"template"`
	Placeholders map[string]rawPlaceholder  `yaml:"placeholders"`
	Conditional  map[string]ConditionalRule `yaml:"conditional"`
}

type rawTemplate struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Version     string   `yaml:"version"`
	Include     []string `yaml:"include"`
	Exclude     []string `yaml:"exclude"`
	Ignore      []string `yaml:"ignore"`
}

type rawPlaceholder struct {
	Type    string    `yaml:"type"`
	Prompt  string    `yaml:"prompt"`
	Default yaml.Node `yaml:"default"`
	Regex   string    `yaml:"regex"`
	Choices *[]string `yaml:"choices"`
}

// LoadManifest reads and validates jamgen.yaml from templateRoot.
func LoadManifest(templateRoot string) (*Manifest, error) {
	path := filepath.Join(templateRoot, ManifestFile)
	debug.Debug("[model] Loading manifest: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newMissingError(path, err)
		}
		return nil, newInvalidError(path, "", "failed to read manifest", err)
	}

	return ParseManifest(data, path)
}

// ParseManifest parses manifest YAML. source names the document in errors.
func ParseManifest(data []byte, source string) (*Manifest, error) {
	var raw rawManifest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, newInvalidError(source, "", "malformed YAML", err)
	}

	if raw.Template == nil {
		return nil, newInvalidError(source, "template", "missing template section", nil)
	}
	if raw.Template.Name == "" {
		return nil, newInvalidError(source, "template.name", "template name is required", nil)
	}

	m := &Manifest{
		Template: TemplateInfo{
			Name:        raw.Template.Name,
			Description: raw.Template.Description,
			Version:     raw.Template.Version,
			Include:     raw.Template.Include,
			Exclude:     raw.Template.Exclude,
			Ignore:      raw.Template.Ignore,
		},
		Placeholders: make(map[string]Placeholder, len(raw.Placeholders)),
		Conditional:  raw.Conditional,
	}

	for name, rp := range raw.Placeholders {
		p, err := buildPlaceholder(source, name, rp)
		if err != nil {
			return nil, err
		}
		m.Placeholders[name] = p
	}

	if len(m.Conditional) > 0 {
		debug.Debug("[model] Manifest %s declares %d conditional rule set(s); they are not applied", source, len(m.Conditional))
	}

	debug.Debug("[model] Manifest loaded: name=%s, placeholders=%d, include=%d, ignore=%d",
		m.Template.Name, len(m.Placeholders), len(m.Template.Include), len(m.Template.Ignore))
	return m, nil
}

func buildPlaceholder(source, name string, rp rawPlaceholder) (Placeholder, error) {
	field := "placeholders." + name

	if rp.Prompt == "" {
		return nil, newInvalidError(source, field+".prompt", "prompt is required", nil)
	}

	switch PlaceholderType(rp.Type) {
	case PlaceholderString:
		p := &StringPlaceholder{PromptText: rp.Prompt, Regex: rp.Regex}

		if hasValue(rp.Default) {
			if rp.Default.Kind != yaml.ScalarNode {
				return nil, newInvalidError(source, field+".default", "string default must be a scalar", nil)
			}
			v := rp.Default.Value
			p.Default = &v
		}

		if rp.Regex != "" {
			re, err := regexp.Compile(rp.Regex)
			if err != nil {
				return nil, newInvalidError(source, field+".regex", fmt.Sprintf("invalid regex %q", rp.Regex), err)
			}
			p.Pattern = re
		}

		if rp.Choices != nil {
			if len(*rp.Choices) == 0 {
				return nil, newInvalidError(source, field+".choices", "choices must not be empty", nil)
			}
			p.ChoiceList = *rp.Choices
		}
		return p, nil

	case PlaceholderBool:
		if rp.Regex != "" || rp.Choices != nil {
			return nil, newInvalidError(source, field, "regex and choices are only valid for string placeholders", nil)
		}

		p := &BoolPlaceholder{PromptText: rp.Prompt}
		if hasValue(rp.Default) {
			var b bool
			if err := rp.Default.Decode(&b); err != nil {
				return nil, newInvalidError(source, field+".default", "bool default must be true or false", err)
			}
			p.Default = &b
		}
		return p, nil

	case "":
		return nil, newInvalidError(source, field+".type", "type is required", nil)

	default:
		return nil, newInvalidError(source, field+".type", fmt.Sprintf("unknown placeholder type %q", rp.Type), nil)
	}
}

// hasValue reports whether a default was given and is not null.
func hasValue(n yaml.Node) bool {
	if n.Kind == 0 {
		return false
	}
	return !(n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

// PlaceholderNames returns placeholder names in sorted order.
func (m *Manifest) PlaceholderNames() []string {
	names := make([]string, 0, len(m.Placeholders))
	for name := range m.Placeholders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
