package model

import "regexp"

// ManifestFile is the template descriptor file name at the template root.
// It is never copied into generated projects.
const ManifestFile = "jamgen.yaml"

// PlaceholderType discriminates placeholder variants in the manifest.
type PlaceholderType string

const (
	// PlaceholderString is a free-text, regex-validated or multiple-choice value.
	PlaceholderString PlaceholderType = "string"
	// PlaceholderBool is a yes/no value bound as "true" or "false".
	PlaceholderBool PlaceholderType = "bool"
)

// Manifest is the parsed jamgen.yaml of a template.
type Manifest struct {
	// Template holds metadata and file-selection rules.
	Template TemplateInfo
	// Placeholders maps variable names to their declarations.
	Placeholders map[string]Placeholder
	// Conditional holds named rule sets. They are parsed and exposed but
	// not consulted during generation.
	Conditional map[string]ConditionalRule
}

// TemplateInfo is the template section of a manifest.
type TemplateInfo struct {
	Name        string
	Description string
	Version     string
	// Include restricts content rendering to matching paths when non-empty.
	Include []string
	// Exclude is reserved and unused by the matcher.
	Exclude []string
	// Ignore lists patterns for paths that are never materialized.
	Ignore []string
}

// ConditionalRule is a named set of pattern lists.
type ConditionalRule struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
	Ignore  []string `yaml:"ignore"`
}

// Placeholder is a declared template variable. The concrete type is either
// *StringPlaceholder or *BoolPlaceholder.
type Placeholder interface {
	// Type returns the variant discriminator.
	Type() PlaceholderType
	// Prompt returns the text shown when asking for the value.
	Prompt() string
	// DefaultValue returns the declared default as a binding value.
	DefaultValue() (string, bool)
	// Choices returns the allowed values, or nil when unrestricted.
	Choices() []string

	isPlaceholder()
}

// StringPlaceholder is a string-valued placeholder.
type StringPlaceholder struct {
	PromptText string
	Default    *string
	// Regex is the validation pattern source, empty when unset.
	Regex string
	// Pattern is Regex compiled at load time.
	Pattern    *regexp.Regexp
	ChoiceList []string
}

// BoolPlaceholder is a boolean placeholder.
type BoolPlaceholder struct {
	PromptText string
	Default    *bool
}

func (p *StringPlaceholder) Type() PlaceholderType { return PlaceholderString }

func (p *StringPlaceholder) Prompt() string { return p.PromptText }

func (p *StringPlaceholder) DefaultValue() (string, bool) {
	if p.Default == nil {
		return "", false
	}
	return *p.Default, true
}

func (p *StringPlaceholder) Choices() []string { return p.ChoiceList }

// Validate reports whether value satisfies the placeholder's regex.
// Placeholders without a regex accept every value.
func (p *StringPlaceholder) Validate(value string) bool {
	if p.Pattern == nil {
		return true
	}
	return p.Pattern.MatchString(value)
}

func (p *StringPlaceholder) isPlaceholder() {}

func (p *BoolPlaceholder) Type() PlaceholderType { return PlaceholderBool }

func (p *BoolPlaceholder) Prompt() string { return p.PromptText }

func (p *BoolPlaceholder) DefaultValue() (string, bool) {
	if p.Default == nil {
		return "", false
	}
	return FormatBool(*p.Default), true
}

func (p *BoolPlaceholder) Choices() []string { return nil }

func (p *BoolPlaceholder) isPlaceholder() {}

// FormatBool renders a boolean the way bindings store it.
func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
