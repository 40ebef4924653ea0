package generator

import (
	"regexp"
	"strings"

	"github.com/tacogips/jamgen/internal/debug"
	"github.com/tacogips/jamgen/internal/template/model"
)

// MatchesPattern reports whether a slash-separated relative path matches a
// glob pattern.
//
// Patterns without "*" match the path exactly or any path below it
// ("target" matches "target/debug/app"). In wildcard patterns "**" matches
// any run of characters including "/", "*" matches any run except "/", and
// every other character is literal; the whole path must match. A pattern
// that does not compile never matches.
func MatchesPattern(pattern, path string) bool {
	if !strings.Contains(pattern, "*") {
		return path == pattern || strings.HasPrefix(path, pattern+"/")
	}

	re, err := regexp.Compile(globToRegexp(pattern))
	if err != nil {
		debug.Debug("[generator] Ignoring uncompilable pattern %q: %v", pattern, err)
		return false
	}
	return re.MatchString(path)
}

func globToRegexp(pattern string) string {
	var b strings.Builder
	b.WriteByte('^')
	for i := 0; i < len(pattern); {
		switch {
		case strings.HasPrefix(pattern[i:], "**"):
			b.WriteString(".*")
			i += 2
		case pattern[i] == '*':
			b.WriteString("[^/]*")
			i++
		default:
			j := i
			for j < len(pattern) && pattern[j] != '*' {
				j++
			}
			b.WriteString(regexp.QuoteMeta(pattern[i:j]))
			i = j
		}
	}
	b.WriteByte('$')
	return b.String()
}

// ShouldIgnore reports whether a template path is excluded from the output
// entirely: it matches an ignore pattern or is the manifest itself.
func ShouldIgnore(m *model.Manifest, path string) bool {
	if path == model.ManifestFile {
		return true
	}
	for _, pattern := range m.Template.Ignore {
		if MatchesPattern(pattern, path) {
			debug.Debug("[generator] Ignoring %s (matched pattern: %s)", path, pattern)
			return true
		}
	}
	return false
}

// ShouldRender reports whether a file's content is rendered rather than
// copied. With include patterns only matching paths render; otherwise every
// non-ignored path does.
func ShouldRender(m *model.Manifest, path string) bool {
	if len(m.Template.Include) > 0 {
		for _, pattern := range m.Template.Include {
			if MatchesPattern(pattern, path) {
				return true
			}
		}
		return false
	}
	return !ShouldIgnore(m, path)
}

// ShouldRenderContent decides render-or-copy for a template file. Files with
// the template suffix always render; other files render when ShouldRender
// selects their path and the content is not binary.
func ShouldRenderContent(m *model.Manifest, path string, content []byte) bool {
	if strings.HasSuffix(path, TemplateSuffix) {
		return true
	}
	return ShouldRender(m, path) && !IsBinaryContent(content)
}
