// Package provider materializes template trees from bundled, local and git
// sources into scoped temporary directories.
package provider

import (
	"context"
	"os"

	"github.com/tacogips/jamgen/internal/debug"
)

// Provider abstracts template source locations (bundled catalog, local
// directory, git repository).
type Provider interface {
	// Fetch materializes the template into a temporary directory.
	// The caller must Close the returned Tree.
	Fetch(ctx context.Context) (*Tree, error)

	// Name returns the provider name (e.g., "bundled", "git").
	Name() string
}

// Tree is a fetched template tree on local disk.
type Tree struct {
	// Root is the template root holding jamgen.yaml.
	Root string

	tempDir string
}

// Close deletes the temporary directory backing the tree. It is safe to
// call more than once.
func (t *Tree) Close() error {
	if t == nil || t.tempDir == "" {
		return nil
	}
	debug.Debug("[provider] Removing template tree: %s", t.tempDir)
	err := os.RemoveAll(t.tempDir)
	t.tempDir = ""
	return err
}

// newTempDir creates a scoped directory for one fetch.
func newTempDir(provider string) (string, error) {
	return os.MkdirTemp("", "jamgen-"+provider+"-*")
}

func removeTempDir(dir string) error {
	debug.Debug("[provider] Cleaning up after failed fetch: %s", dir)
	return os.RemoveAll(dir)
}
