package engine

import (
	"strings"
	"unicode"
)

// Case conversion filters available in templates as {{ value | filter }}.
const (
	FilterPascalCase     = "pascal_case"
	FilterSnakeCase      = "snake_case"
	FilterKebabCase      = "kebab_case"
	FilterCamelCase      = "camel_case"
	FilterUpperCamelCase = "upper_camel_case"
)

// PascalCase converts s to PascalCase ("my-service" -> "MyService").
func PascalCase(s string) string { return joinWords(splitWords(s), "", capitalize) }

// SnakeCase converts s to snake_case ("MyService" -> "my_service").
// Digits stay attached to the preceding word ("my-service2" -> "my_service2").
func SnakeCase(s string) string { return joinWords(splitWords(s), "_", strings.ToLower) }

// KebabCase converts s to kebab-case ("MyService" -> "my-service").
func KebabCase(s string) string { return joinWords(splitWords(s), "-", strings.ToLower) }

// LowerCamelCase converts s to lowerCamelCase ("my-service" -> "myService").
func LowerCamelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	return strings.ToLower(words[0]) + joinWords(words[1:], "", capitalize)
}

// UpperCamelCase is an alias of PascalCase.
func UpperCamelCase(s string) string { return PascalCase(s) }

type letterMode int

const (
	modeBoundary letterMode = iota
	modeLower
	modeUpper
)

// splitWords breaks s into words on any non-alphanumeric rune, on a
// lower-to-upper transition ("myService") and before the last capital of an
// acronym that runs into a word ("HTTPServer"). Digits carry the mode of the
// letter before them, so they never start a word of their own.
func splitWords(s string) []string {
	var (
		words []string
		cur   []rune
		mode  = modeBoundary
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			mode = modeBoundary
			continue
		}

		if unicode.IsUpper(r) && len(cur) > 0 {
			switch {
			case mode == modeLower:
				flush()
			case mode == modeUpper && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flush()
			}
		}

		switch {
		case unicode.IsLower(r):
			mode = modeLower
		case unicode.IsUpper(r):
			mode = modeUpper
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func joinWords(words []string, sep string, transform func(string) string) string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = transform(w)
	}
	return strings.Join(out, sep)
}

func caseFilters() map[string]func(string) string {
	return map[string]func(string) string{
		FilterPascalCase:     PascalCase,
		FilterSnakeCase:      SnakeCase,
		FilterKebabCase:      KebabCase,
		FilterCamelCase:      LowerCamelCase,
		FilterUpperCamelCase: UpperCamelCase,
	}
}
