package app

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxProjectNameLength is the longest accepted project name.
const MaxProjectNameLength = 64

// ProjectNamePattern is the accepted project name syntax.
var ProjectNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

var reservedNames = map[string]bool{
	"self":  true,
	"super": true,
	"crate": true,
	"Self":  true,
	"test":  true,
	"std":   true,
	"core":  true,
	"alloc": true,
}

// ValidateProjectName checks that name can be used as a crate name.
func ValidateProjectName(name string) error {
	if name == "" {
		return NewValidationError("project name cannot be empty", nil)
	}
	if !ProjectNamePattern.MatchString(name) {
		return NewValidationError(fmt.Sprintf(
			"invalid project name %q: must start with a lowercase letter and contain only lowercase letters, numbers, underscores, and hyphens", name), nil)
	}
	if reservedNames[name] {
		return NewValidationError(fmt.Sprintf("invalid project name %q: reserved Rust identifier", name), nil)
	}
	if len(name) > MaxProjectNameLength {
		return NewValidationError(fmt.Sprintf(
			"invalid project name %q: must be %d characters or less", name, MaxProjectNameLength), nil)
	}
	return nil
}

// ModuleIdentifier derives the compiled module identifier from a project name.
func ModuleIdentifier(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
