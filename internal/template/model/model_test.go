package model

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const basicManifest = `
template:
  name: basic-service
  description: A basic JAM service
  include: ["src/**", "Cargo.toml"]
  ignore: ["target", "*.secret"]
placeholders:
  greeting:
    type: string
    prompt: Greeting text
    default: hello
  service_port:
    type: string
    prompt: Port
    default: 8080
    regex: "^[0-9]+$"
  license:
    type: string
    prompt: License
    choices: [MIT, Apache-2.0]
  use_logging:
    type: bool
    prompt: Enable logging?
    default: true
  strict:
    type: bool
    prompt: Strict mode?
conditional:
  use_logging:
    include: ["src/log.rs"]
`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(basicManifest), "test.yaml")
	if err != nil {
		t.Fatalf("ParseManifest() unexpected error: %v", err)
	}

	if m.Template.Name != "basic-service" {
		t.Errorf("Template.Name = %q, want %q", m.Template.Name, "basic-service")
	}
	if !reflect.DeepEqual(m.Template.Include, []string{"src/**", "Cargo.toml"}) {
		t.Errorf("Template.Include = %v", m.Template.Include)
	}
	if !reflect.DeepEqual(m.Template.Ignore, []string{"target", "*.secret"}) {
		t.Errorf("Template.Ignore = %v", m.Template.Ignore)
	}
	if len(m.Conditional) != 1 {
		t.Errorf("len(Conditional) = %d, want 1", len(m.Conditional))
	}

	wantNames := []string{"greeting", "license", "service_port", "strict", "use_logging"}
	if got := m.PlaceholderNames(); !reflect.DeepEqual(got, wantNames) {
		t.Errorf("PlaceholderNames() = %v, want %v", got, wantNames)
	}
}

func TestPlaceholderDefaults(t *testing.T) {
	m, err := ParseManifest([]byte(basicManifest), "test.yaml")
	if err != nil {
		t.Fatalf("ParseManifest() unexpected error: %v", err)
	}

	tests := []struct {
		name       string
		wantType   PlaceholderType
		wantValue  string
		wantExists bool
	}{
		{"greeting", PlaceholderString, "hello", true},
		{"service_port", PlaceholderString, "8080", true},
		{"license", PlaceholderString, "", false},
		{"use_logging", PlaceholderBool, "true", true},
		{"strict", PlaceholderBool, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := m.Placeholders[tt.name]
			if p == nil {
				t.Fatalf("placeholder %q not found", tt.name)
			}
			if p.Type() != tt.wantType {
				t.Errorf("Type() = %s, want %s", p.Type(), tt.wantType)
			}
			got, ok := p.DefaultValue()
			if ok != tt.wantExists || got != tt.wantValue {
				t.Errorf("DefaultValue() = (%q, %v), want (%q, %v)", got, ok, tt.wantValue, tt.wantExists)
			}
		})
	}
}

func TestStringPlaceholderValidate(t *testing.T) {
	m, err := ParseManifest([]byte(basicManifest), "test.yaml")
	if err != nil {
		t.Fatalf("ParseManifest() unexpected error: %v", err)
	}

	port, ok := m.Placeholders["service_port"].(*StringPlaceholder)
	if !ok {
		t.Fatalf("service_port is %T, want *StringPlaceholder", m.Placeholders["service_port"])
	}
	if !port.Validate("9000") {
		t.Error("Validate(\"9000\") = false, want true")
	}
	if port.Validate("ninety") {
		t.Error("Validate(\"ninety\") = true, want false")
	}

	license := m.Placeholders["license"]
	if !reflect.DeepEqual(license.Choices(), []string{"MIT", "Apache-2.0"}) {
		t.Errorf("Choices() = %v", license.Choices())
	}
	if m.Placeholders["use_logging"].Choices() != nil {
		t.Error("bool placeholder should have no choices")
	}
}

func TestParseManifest_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
	}{
		{
			name:      "malformed yaml",
			input:     "template: [unclosed",
			wantField: "",
		},
		{
			name:      "missing template section",
			input:     "placeholders: {}",
			wantField: "template",
		},
		{
			name:      "missing name",
			input:     "template:\n  description: x\n",
			wantField: "template.name",
		},
		{
			name:      "unknown type",
			input:     "template:\n  name: t\nplaceholders:\n  x:\n    type: number\n    prompt: X\n",
			wantField: "placeholders.x.type",
		},
		{
			name:      "missing type",
			input:     "template:\n  name: t\nplaceholders:\n  x:\n    prompt: X\n",
			wantField: "placeholders.x.type",
		},
		{
			name:      "missing prompt",
			input:     "template:\n  name: t\nplaceholders:\n  x:\n    type: string\n",
			wantField: "placeholders.x.prompt",
		},
		{
			name:      "bad regex",
			input:     "template:\n  name: t\nplaceholders:\n  x:\n    type: string\n    prompt: X\n    regex: \"[a-\"\n",
			wantField: "placeholders.x.regex",
		},
		{
			name:      "empty choices",
			input:     "template:\n  name: t\nplaceholders:\n  x:\n    type: string\n    prompt: X\n    choices: []\n",
			wantField: "placeholders.x.choices",
		},
		{
			name:      "bool default not bool",
			input:     "template:\n  name: t\nplaceholders:\n  x:\n    type: bool\n    prompt: X\n    default: maybe\n",
			wantField: "placeholders.x.default",
		},
		{
			name:      "string default is a list",
			input:     "template:\n  name: t\nplaceholders:\n  x:\n    type: string\n    prompt: X\n    default: [a]\n",
			wantField: "placeholders.x.default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.input), "test.yaml")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var merr *ManifestError
			if !errors.As(err, &merr) {
				t.Fatalf("expected *ManifestError, got %T", err)
			}
			if merr.Type != ManifestInvalid {
				t.Errorf("Type = %s, want Invalid", merr.Type)
			}
			if merr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", merr.Field, tt.wantField)
			}
		})
	}
}

func TestLoadManifest(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadManifest(t.TempDir())
		var merr *ManifestError
		if !errors.As(err, &merr) || merr.Type != ManifestMissing {
			t.Fatalf("expected ManifestMissing error, got %v", err)
		}
	})

	t.Run("reads jamgen.yaml", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ManifestFile), []byte(basicManifest), 0644); err != nil {
			t.Fatal(err)
		}
		m, err := LoadManifest(dir)
		if err != nil {
			t.Fatalf("LoadManifest() unexpected error: %v", err)
		}
		if m.Template.Name != "basic-service" {
			t.Errorf("Template.Name = %q", m.Template.Name)
		}
	})
}
