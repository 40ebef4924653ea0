package cli

import (
	"errors"
	"testing"

	"github.com/tacogips/jamgen/internal/app"
	"github.com/tacogips/jamgen/internal/config"
	"github.com/tacogips/jamgen/internal/template/provider"
)

func TestSourceFromFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Git.DefaultBranch = "stable"
	cfg.Git.Depth = 3

	tests := []struct {
		name  string
		flags templateFlags
		want  provider.Source
	}{
		{
			name:  "configured default template",
			flags: templateFlags{},
			want:  provider.Source{Template: "basic-service"},
		},
		{
			name:  "explicit template",
			flags: templateFlags{template: "./my-template"},
			want:  provider.Source{Template: "./my-template"},
		},
		{
			name:  "git with configured branch",
			flags: templateFlags{git: "gh:owner/repo"},
			want: provider.Source{
				GitURL: "gh:owner/repo",
				Git:    provider.GitOptions{Branch: "stable", Depth: 3},
			},
		},
		{
			name:  "git branch flag wins",
			flags: templateFlags{git: "gh:owner/repo", branch: "dev", path: "basic"},
			want: provider.Source{
				GitURL: "gh:owner/repo",
				Git:    provider.GitOptions{Branch: "dev", Subdir: "basic", Depth: 3},
			},
		},
		{
			name:  "branch in browser URL wins over config",
			flags: templateFlags{git: "https://github.com/owner/repo/tree/next/basic"},
			want: provider.Source{
				GitURL: "https://github.com/owner/repo/tree/next/basic",
				Git:    provider.GitOptions{Depth: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sourceFromFlags(tt.flags, cfg)
			if err != nil {
				t.Fatalf("sourceFromFlags() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("sourceFromFlags() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSourceFromFlags_Conflicts(t *testing.T) {
	cfg := config.DefaultConfig()

	tests := []struct {
		name  string
		flags templateFlags
	}{
		{"git and template", templateFlags{git: "gh:owner/repo", template: "minimal"}},
		{"branch without git", templateFlags{branch: "dev"}},
		{"path without git", templateFlags{path: "basic"}},
		{"browser URL without branch", templateFlags{git: "https://github.com/owner/repo/tree/"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sourceFromFlags(tt.flags, cfg)
			var appErr *app.AppError
			if !errors.As(err, &appErr) || appErr.Type != app.ValidationFailed {
				t.Fatalf("expected ValidationFailed, got %v", err)
			}
		})
	}
}

func TestDescribeSource(t *testing.T) {
	tests := []struct {
		src  provider.Source
		want string
	}{
		{provider.Source{Template: "minimal"}, "minimal"},
		{provider.Source{GitURL: "gh:o/r"}, "gh:o/r"},
		{provider.Source{GitURL: "gh:o/r", Git: provider.GitOptions{Branch: "dev", Subdir: "basic"}}, "gh:o/r@dev (basic)"},
	}

	for _, tt := range tests {
		if got := describeSource(tt.src); got != tt.want {
			t.Errorf("describeSource(%+v) = %q, want %q", tt.src, got, tt.want)
		}
	}
}
