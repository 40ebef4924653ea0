package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tacogips/jamgen/internal/template/model"
)

func TestCheckTemplate(t *testing.T) {
	manifest := `
template:
  name: checked
  ignore: ["drafts/**"]
placeholders:
  license:
    type: string
    prompt: License
    choices: [MIT, Apache-2.0]
  author:
    type: string
    prompt: Author
  tests:
    type: bool
    prompt: Tests?
`

	tests := []struct {
		name           string
		files          map[string]string
		wantChecked    int
		wantErrorFiles []string
	}{
		{
			name: "valid template",
			files: map[string]string{
				model.ManifestFile:        manifest,
				"README.md":               "{{ project_name }} by {{ author }} ({{ license }})",
				"src/{{ crate_name }}.rs": "{% if tests == \"true\" %}mod tests;{% endif %}",
				"Cargo.toml.liquid":       "name = \"{{ project_name | kebab_case }}\"",
				"drafts/broken.txt":       "{{ oops",
				"assets/logo.bin":         "\x00\x01{{ not_rendered }}",
			},
			wantChecked: 4,
		},
		{
			name: "errors are collected per file",
			files: map[string]string{
				model.ManifestFile:  manifest,
				"unclosed.txt":      "{% if author %}",
				"undefined.txt":     "{{ nope }}",
				"{{ missing }}.txt": "fine",
				"ok.txt":            "{{ author }}",
			},
			wantChecked:    4,
			wantErrorFiles: []string{"undefined.txt", "unclosed.txt", "{{ missing }}.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeTemplate(t, tt.files)

			result, err := CheckTemplate(context.Background(), CheckTemplateOptions{Path: dir})
			if err != nil {
				t.Fatalf("CheckTemplate() unexpected error: %v", err)
			}
			if result.TemplateName != "checked" {
				t.Errorf("TemplateName = %s, want checked", result.TemplateName)
			}
			if result.FilesChecked != tt.wantChecked {
				t.Errorf("FilesChecked = %d, want %d", result.FilesChecked, tt.wantChecked)
			}
			if result.FilesWithErrors != len(tt.wantErrorFiles) {
				t.Errorf("FilesWithErrors = %d, want %d (errors: %+v)", result.FilesWithErrors, len(tt.wantErrorFiles), result.Errors)
			}

			got := map[string]bool{}
			for _, e := range result.Errors {
				got[e.File] = true
			}
			for _, f := range tt.wantErrorFiles {
				if !got[f] {
					t.Errorf("expected an error for %s, got %+v", f, result.Errors)
				}
			}
		})
	}
}

func TestCheckTemplate_InvalidInput(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		_, err := CheckTemplate(context.Background(), CheckTemplateOptions{Path: filepath.Join(t.TempDir(), "nope")})
		var appErr *AppError
		if !errors.As(err, &appErr) || appErr.Type != ValidationFailed {
			t.Fatalf("expected ValidationFailed, got %v", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := CheckTemplate(context.Background(), CheckTemplateOptions{Path: path})
		var appErr *AppError
		if !errors.As(err, &appErr) || appErr.Type != ValidationFailed {
			t.Fatalf("expected ValidationFailed, got %v", err)
		}
	})

	t.Run("invalid manifest", func(t *testing.T) {
		dir := writeTemplate(t, map[string]string{model.ManifestFile: "placeholders: [1, 2]"})
		_, err := CheckTemplate(context.Background(), CheckTemplateOptions{Path: dir})
		var merr *model.ManifestError
		if !errors.As(err, &merr) || merr.Type != model.ManifestInvalid {
			t.Fatalf("expected ManifestInvalid, got %v", err)
		}
	})
}

func TestSampleBindings(t *testing.T) {
	m := mustManifest(t, `
template:
  name: t
placeholders:
  license:
    type: string
    prompt: License
    choices: [MIT, Apache-2.0]
  edition:
    type: string
    prompt: Edition
    default: "2021"
  author:
    type: string
    prompt: Author
  tests:
    type: bool
    prompt: Tests?
  docs:
    type: bool
    prompt: Docs?
    default: true
`)

	want := map[string]string{
		"project_name": "example-project",
		"crate_name":   "example_project",
		"license":      "MIT",
		"edition":      "2021",
		"author":       "author",
		"tests":        "false",
		"docs":         "true",
	}
	if got := sampleBindings(m); !reflect.DeepEqual(got, want) {
		t.Errorf("sampleBindings() = %v, want %v", got, want)
	}
}
