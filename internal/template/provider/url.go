package provider

import (
	"fmt"
	"path/filepath"
	"strings"
)

// shorthandHosts maps remote shorthand prefixes to hosts.
var shorthandHosts = []struct {
	prefix string
	host   string
}{
	{"gh:", "github.com"},
	{"github:", "github.com"},
	{"gl:", "gitlab.com"},
	{"gitlab:", "gitlab.com"},
	{"bb:", "bitbucket.org"},
	{"bitbucket:", "bitbucket.org"},
}

// RemoteRef is a parsed remote template reference.
type RemoteRef struct {
	// URL is the clone URL.
	URL string
	// Branch is the branch named by the reference, if any.
	Branch string
	// Subdir is the template directory inside the repository, if any.
	Subdir string
}

// ExpandURL expands host shorthands ("gh:owner/repo") into clone URLs
// ("https://github.com/owner/repo.git"). Other URLs are returned unchanged.
func ExpandURL(url string) string {
	url = strings.TrimSpace(url)
	for _, s := range shorthandHosts {
		if strings.HasPrefix(url, s.prefix) {
			repo := strings.TrimSuffix(strings.TrimPrefix(url, s.prefix), ".git")
			return fmt.Sprintf("https://%s/%s.git", s.host, strings.Trim(repo, "/"))
		}
	}
	return url
}

// ParseRemote parses a remote reference. Besides the shorthands accepted by
// ExpandURL it understands browser URLs of the form
// https://<host>/<owner>/<repo>/tree/<branch>/<path>.
func ParseRemote(raw string) (RemoteRef, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return RemoteRef{}, fmt.Errorf("remote URL cannot be empty")
	}

	for _, host := range []string{"https://github.com/", "https://gitlab.com/"} {
		if !strings.HasPrefix(raw, host) {
			continue
		}
		rest := strings.TrimPrefix(raw, host)
		idx := strings.Index(rest, "/tree/")
		if idx == -1 {
			break
		}
		repo := strings.TrimSuffix(rest[:idx], "/-")
		branchPath := rest[idx+len("/tree/"):]
		ref := RemoteRef{URL: host + strings.TrimSuffix(repo, ".git") + ".git"}
		if slash := strings.Index(branchPath, "/"); slash != -1 {
			ref.Branch = branchPath[:slash]
			ref.Subdir = strings.Trim(branchPath[slash+1:], "/")
		} else {
			ref.Branch = branchPath
		}
		if ref.Branch == "" {
			return RemoteRef{}, fmt.Errorf("missing branch in %q", raw)
		}
		return ref, nil
	}

	return RemoteRef{URL: ExpandURL(raw)}, nil
}

// IsLocalPath reports whether a template argument names a directory on disk
// rather than a bundled template. Bundled names never contain a separator.
func IsLocalPath(s string) bool {
	if s == "" {
		return false
	}
	if s == "." || s == ".." || filepath.IsAbs(s) {
		return true
	}
	return strings.ContainsAny(s, `/\`)
}

// cleanSubdir validates a repository-relative subdirectory.
func cleanSubdir(subdir string) (string, error) {
	subdir = strings.Trim(filepath.ToSlash(subdir), "/")
	if subdir == "" {
		return "", nil
	}
	if filepath.IsAbs(subdir) {
		return "", fmt.Errorf("subdirectory must be relative: %s", subdir)
	}
	cleaned := filepath.ToSlash(filepath.Clean(subdir))
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("subdirectory escapes the repository: %s", subdir)
	}
	return cleaned, nil
}
