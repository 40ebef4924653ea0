package app

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/tacogips/jamgen/internal/debug"
)

// DefaultInitBranch is the initial branch of generated repositories.
const DefaultInitBranch = "main"

// InitRepository turns dir into a git repository whose HEAD points at
// branch. Nothing is committed.
func InitRepository(dir, branch string) error {
	if branch == "" {
		branch = DefaultInitBranch
	}
	debug.Debug("[app] Initializing git repository: %s (branch: %s)", dir, branch)

	_, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(branch),
		},
	})
	if err != nil {
		return NewAppError(GitInitFailed, "failed to initialize git repository", err)
	}
	return nil
}
