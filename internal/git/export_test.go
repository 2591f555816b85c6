package git

import (
	"path/filepath"
	"testing"

	"go.abhg.dev/carve/internal/silog/silogtest"
)

// NewFakeRepository builds a Repository and a Worktree rooted at dir
// that run all Git commands through the given execer.
// It does not inspect the file system.
func NewFakeRepository(t testing.TB, dir string, exec execer) (*Repository, *Worktree) {
	log := silogtest.New(t)
	repo := newRepository(dir, filepath.Join(dir, ".git"), log, exec)
	wt := newWorktree(repo.gitDir, dir, repo, log, exec)
	return repo, wt
}
