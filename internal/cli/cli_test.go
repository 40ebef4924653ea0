package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/tacogips/jamgen/internal/app"
	"github.com/tacogips/jamgen/internal/build"
	"github.com/tacogips/jamgen/internal/template/generator"
)

// captureOutput redirects command output into buffers for one test.
func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	savedOut, savedErr := stdout, stderr
	stdout, stderr = &out, &errOut
	t.Cleanup(func() {
		stdout, stderr = savedOut, savedErr
	})
	return &out, &errOut
}

// resetFlags restores package-level flag values once the test finishes,
// since cobra keeps them between Execute calls.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		globalNoColor, globalQuiet, globalDebug, globalConfigPath = false, false, false, ""
		newTemplate = templateFlags{}
		newOutput, newValuesFile = "", ""
		newDefaults, newNoGit, newVerbose = false, false, false
		newDefines = nil
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNewCommand_EndToEnd(t *testing.T) {
	out, _ := captureOutput(t)

	tpl := t.TempDir()
	writeFile(t, filepath.Join(tpl, "jamgen.yaml"), `
template:
  name: cli-demo
placeholders:
  greeting:
    type: string
    prompt: Greeting
    default: hi
`)
	writeFile(t, filepath.Join(tpl, "hello.txt"), "{{ greeting }}, {{ project_name | pascal_case }}!")

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, cfgPath, "git:\n  init_repo: false\n")

	dest := filepath.Join(t.TempDir(), "demo-app")
	rootCmd.SetArgs([]string{
		"new", "demo-app",
		"--config", cfgPath,
		"--template", tpl,
		"--output", dest,
		"--defaults",
		"--define", "greeting=hello",
		"--no-color",
	})
	resetFlags(t)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("new command failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dest, "hello.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "hello, DemoApp!" {
		t.Errorf("hello.txt = %q, want %q", got, "hello, DemoApp!")
	}
	if _, err := os.Stat(filepath.Join(dest, ".git")); !os.IsNotExist(err) {
		t.Errorf("git repository should not be created when init_repo is false (err=%v)", err)
	}

	for _, want := range []string{"Created demo-app from template cli-demo", "Next steps:", "cargo jam build"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestWriteSummary(t *testing.T) {
	saved := globalNoColor
	globalNoColor = true
	t.Cleanup(func() { globalNoColor = saved })

	result := &app.NewResult{
		ProjectName:  "my-service",
		OutputDir:    "/tmp/elsewhere/my-service",
		TemplateName: "basic-service",
		Generate: &generator.GenerateResult{
			FilesRendered: 3,
			FilesCopied:   2,
			Directories:   1,
			BytesWritten:  2048,
			Files:         []string{"Cargo.toml", "src/lib.rs"},
		},
		GitInitialized: true,
	}

	tests := []struct {
		name    string
		verbose bool
		want    []string
		notWant []string
	}{
		{
			name:    "default",
			want:    []string{"✓ Created my-service from template basic-service", "Rendered:    3 files", "Copied:      2 files", "2.0 kB", "repository initialized", "cargo jam build"},
			notWant: []string{"src/lib.rs"},
		},
		{
			name:    "verbose lists files",
			verbose: true,
			want:    []string{"Files:", "  src/lib.rs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writeSummary(&buf, result, tt.verbose)
			got := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("summary missing %q:\n%s", w, got)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("summary should not contain %q:\n%s", w, got)
				}
			}
		})
	}
}

func TestDisplayPath(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if got := displayPath(filepath.Join(wd, "demo")); got != "demo" {
		t.Errorf("displayPath(below wd) = %q, want %q", got, "demo")
	}
	outside := filepath.Join(filepath.Dir(wd), "sibling")
	if got := displayPath(outside); got != outside {
		t.Errorf("displayPath(outside wd) = %q, want %q", got, outside)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("explicit file must exist", func(t *testing.T) {
		if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatal("expected error for missing explicit config")
		}
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		writeFile(t, path, "git:\n  timeout: -1\n")
		if _, err := loadConfig(path); err == nil {
			t.Fatal("expected validation error")
		}
	})

	t.Run("default location may be absent", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		cfg, err := loadConfig("")
		if err != nil {
			t.Fatalf("loadConfig() unexpected error: %v", err)
		}
		if cfg.Templates.Default != "basic-service" {
			t.Errorf("Templates.Default = %s, want basic-service", cfg.Templates.Default)
		}
	})
}

func TestVersionCommand(t *testing.T) {
	t.Cleanup(func() {
		versionShort, versionFormat = false, formatText
	})

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionShort = true
	if err := runVersion(versionCmd, nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != build.Version() {
		t.Errorf("version --short = %q, want %q", got, build.Version())
	}
}

func TestWriteVersion(t *testing.T) {
	globalNoColor = true
	t.Cleanup(func() { globalNoColor = false })

	info := VersionInfo{
		Version:   "1.2.3",
		Commit:    "abc1234",
		BuildDate: "2026-10-18",
		GoVersion: "go1.25.4",
		Platform:  "linux/amd64",
		Templates: []string{"basic-service", "minimal"},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeVersion(&buf, info, formatText); err != nil {
			t.Fatal(err)
		}
		want := "jamgen 1.2.3 (abc1234, linux/amd64)\n" +
			"  Build date: 2026-10-18\n" +
			"  Go:         go1.25.4\n" +
			"  Templates:  basic-service, minimal\n"
		if buf.String() != want {
			t.Errorf("text output =\n%s\nwant\n%s", buf.String(), want)
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeVersion(&buf, info, "JSON"); err != nil {
			t.Fatal(err)
		}
		var got VersionInfo
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if got.Version != info.Version || len(got.Templates) != 2 {
			t.Errorf("decoded %+v, want %+v", got, info)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeVersion(&buf, info, formatYAML); err != nil {
			t.Fatal(err)
		}
		var got VersionInfo
		if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid YAML: %v", err)
		}
		if got.Platform != info.Platform || got.Templates[1] != "minimal" {
			t.Errorf("decoded %+v, want %+v", got, info)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if err := writeVersion(&bytes.Buffer{}, info, "xml"); err == nil {
			t.Error("expected an error for an unknown format")
		}
	})
}

func TestTemplatesCommands(t *testing.T) {
	out, errOut := captureOutput(t)
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())

	t.Run("list", func(t *testing.T) {
		out.Reset()
		rootCmd.SetArgs([]string{"templates", "--no-color"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("templates failed: %v", err)
		}
		for _, want := range []string{"basic-service", "minimal", "(default)"} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("templates output missing %q:\n%s", want, out.String())
			}
		}
	})

	t.Run("check reports errors", func(t *testing.T) {
		out.Reset()
		errOut.Reset()
		tpl := t.TempDir()
		writeFile(t, filepath.Join(tpl, "jamgen.yaml"), "template:\n  name: broken\n")
		writeFile(t, filepath.Join(tpl, "main.txt"), "{{ undefined_value }}")

		rootCmd.SetArgs([]string{"templates", "check", tpl, "--no-color"})
		if err := rootCmd.Execute(); err == nil {
			t.Fatal("expected check to fail")
		}
		if !strings.Contains(errOut.String(), "main.txt") {
			t.Errorf("warnings should name the broken file:\n%s", errOut.String())
		}
	})
}
