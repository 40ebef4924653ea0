package app

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"kebab case", "my-service", false},
		{"snake case", "my_service", false},
		{"single word", "myservice", false},
		{"with digits", "my-service-123", false},
		{"empty", "", true},
		{"uppercase", "My-Service", true},
		{"leading digit", "1service", true},
		{"leading hyphen", "-service", true},
		{"space", "my service", true},
		{"reserved self", "self", true},
		{"reserved std", "std", true},
		{"reserved test", "test", true},
		{"max length", strings.Repeat("a", 64), false},
		{"too long", strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateProjectName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				var appErr *AppError
				if !errors.As(err, &appErr) || appErr.Type != ValidationFailed {
					t.Errorf("expected ValidationFailed, got %v", err)
				}
			}
		})
	}
}

func TestModuleIdentifier(t *testing.T) {
	tests := map[string]string{
		"my-service":   "my_service",
		"my_service":   "my_service",
		"a-b-c":        "a_b_c",
		"plainservice": "plainservice",
	}
	for in, want := range tests {
		if got := ModuleIdentifier(in); got != want {
			t.Errorf("ModuleIdentifier(%q) = %q, want %q", in, got, want)
		}
	}
}
