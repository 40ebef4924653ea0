package provider

import (
	"context"
	"os"
	"path/filepath"

	"github.com/tacogips/jamgen/internal/debug"
)

// LocalProvider copies a template directory from the local filesystem.
type LocalProvider struct {
	// Path is the template directory, absolute or relative to the working directory.
	Path string
}

// NewLocalProvider creates a new local filesystem provider.
func NewLocalProvider(path string) *LocalProvider {
	return &LocalProvider{Path: path}
}

// Name returns the provider name.
func (p *LocalProvider) Name() string {
	return "local"
}

// Fetch copies the directory into a temporary tree so generation never
// reads from a location the user may be editing.
func (p *LocalProvider) Fetch(ctx context.Context) (*Tree, error) {
	debug.Debug("[provider] Fetching local template: %s", p.Path)

	absPath, err := filepath.Abs(p.Path)
	if err != nil {
		return nil, NewInvalidURLError(p.Name(), p.Path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewNotFoundError(p.Name(), p.Path, "template directory does not exist")
		}
		return nil, NewFetchError(p.Name(), p.Path, err)
	}
	if !info.IsDir() {
		return nil, NewNotFoundError(p.Name(), p.Path, "template path is not a directory")
	}

	if err := ctx.Err(); err != nil {
		return nil, NewFetchError(p.Name(), p.Path, err)
	}

	dir, err := newTempDir(p.Name())
	if err != nil {
		return nil, NewFetchError(p.Name(), p.Path, err)
	}

	files, err := extractFS(os.DirFS(absPath), ".", dir)
	if err != nil {
		_ = removeTempDir(dir)
		return nil, NewFetchError(p.Name(), p.Path, err)
	}

	debug.Debug("[provider] Copied %d files from %s to %s", files, absPath, dir)
	return &Tree{Root: dir, tempDir: dir}, nil
}
