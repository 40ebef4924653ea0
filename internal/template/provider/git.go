package provider

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/tacogips/jamgen/internal/debug"
)

const gitDir = ".git"

// GitOptions narrows a remote clone.
type GitOptions struct {
	// Branch to clone. Empty means the remote HEAD.
	Branch string
	// Subdir is the template directory inside the repository.
	Subdir string
	// Depth limits history; zero clones everything.
	Depth int
}

// GitProvider clones a template from a git remote.
type GitProvider struct {
	// URL is the expanded clone URL.
	URL    string
	Branch string
	Subdir string
	Depth  int
}

// NewGitProvider parses raw (a clone URL, shorthand or browser URL) and
// returns a provider for it. Non-empty opts fields take precedence over
// values parsed from raw.
func NewGitProvider(raw string, opts GitOptions) (*GitProvider, error) {
	ref, err := ParseRemote(raw)
	if err != nil {
		return nil, NewInvalidURLError("git", raw, err)
	}

	p := &GitProvider{URL: ref.URL, Branch: ref.Branch, Subdir: ref.Subdir, Depth: opts.Depth}
	if opts.Branch != "" {
		p.Branch = opts.Branch
	}
	if opts.Subdir != "" {
		p.Subdir = opts.Subdir
	}

	subdir, err := cleanSubdir(p.Subdir)
	if err != nil {
		return nil, NewNotFoundError("git", raw, err.Error())
	}
	p.Subdir = subdir

	return p, nil
}

// Name returns the provider name.
func (p *GitProvider) Name() string {
	return "git"
}

// Fetch clones the repository into a temporary directory, drops its git
// metadata and narrows the tree to Subdir.
func (p *GitProvider) Fetch(ctx context.Context) (*Tree, error) {
	debug.Debug("[provider] Cloning %s (branch=%q, subdir=%q, depth=%d)", p.URL, p.Branch, p.Subdir, p.Depth)

	dir, err := newTempDir(p.Name())
	if err != nil {
		return nil, NewFetchError(p.Name(), p.URL, err)
	}

	cloneOpts := &git.CloneOptions{
		URL:   p.URL,
		Depth: p.Depth,
		Tags:  git.NoTags,
	}
	if p.Branch != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(p.Branch)
		cloneOpts.SingleBranch = true
	}

	if _, err := git.PlainCloneContext(ctx, dir, false, cloneOpts); err != nil {
		_ = removeTempDir(dir)
		debug.Debug("[provider] Clone failed: %v", err)
		if errors.Is(err, transport.ErrAuthenticationRequired) || errors.Is(err, transport.ErrAuthorizationFailed) {
			return nil, NewAuthError(p.Name(), p.URL, err)
		}
		return nil, NewFetchError(p.Name(), p.URL, err)
	}

	if err := os.RemoveAll(filepath.Join(dir, gitDir)); err != nil {
		_ = removeTempDir(dir)
		return nil, NewFetchError(p.Name(), p.URL, err)
	}

	root := dir
	if p.Subdir != "" {
		root = filepath.Join(dir, filepath.FromSlash(p.Subdir))
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			_ = removeTempDir(dir)
			return nil, NewNotFoundError(p.Name(), p.URL, "subdirectory '"+p.Subdir+"' not found in repository")
		}
	}

	debug.Debug("[provider] Clone complete: root=%s", root)
	return &Tree{Root: root, tempDir: dir}, nil
}
