package git

import (
	"context"
	"fmt"
	"strings"

	"go.abhg.dev/carve/internal/silog"
	"go.abhg.dev/carve/internal/xec"
)

// Worktree is a checkout of a Git repository at a specific path.
// Operations that require a working tree (e.g. checkout, commit, stash)
// are only available on the worktree.
type Worktree struct {
	gitDir  string // absolute path to wt's .git directory
	rootDir string // absolute path to the root directory of the worktree
	repo    *Repository

	log  *silog.Logger
	exec execer
}

func newWorktree(gitDir, rootDir string, repo *Repository, log *silog.Logger, exec execer) *Worktree {
	return &Worktree{
		gitDir:  gitDir,
		rootDir: rootDir,
		repo:    repo,
		log:     log,
		exec:    exec,
	}
}

func (w *Worktree) gitCmd(ctx context.Context, args ...string) *xec.Cmd {
	return newGitCmd(ctx, w.log, w.exec, args...).WithDir(w.rootDir)
}

// RootDir returns the absolute path to the root directory of the worktree.
func (w *Worktree) RootDir() string {
	return w.rootDir
}

// GitDir returns the absolute path to the worktree's .git directory.
// For linked worktrees this is the worktree-private directory,
// not the directory shared with the rest of the repository.
func (w *Worktree) GitDir() string {
	return w.gitDir
}

// Repository returns the Git repository that this worktree belongs to.
func (w *Worktree) Repository() *Repository {
	return w.repo
}

// OpenWorktree opens the worktree that contains the given directory,
// opening its repository in the process.
// If dir is empty, the current working directory is used.
func OpenWorktree(ctx context.Context, dir string, opts OpenOptions) (*Worktree, error) {
	repo, err := Open(ctx, dir, opts)
	if err != nil {
		return nil, err
	}
	return repo.OpenWorktree(ctx, dir)
}

// OpenWorktree opens a worktree of this repository at the given directory.
func (r *Repository) OpenWorktree(ctx context.Context, dir string) (*Worktree, error) {
	out, err := r.gitCmd(ctx, "rev-parse", "--show-toplevel", "--absolute-git-dir").
		WithDir(dir).
		OutputChomp()
	if err != nil {
		return nil, err
	}

	rootDir, gitDir, ok := strings.Cut(out, "\n")
	if !ok {
		return nil, fmt.Errorf("unexpected output from git rev-parse: %q", out)
	}
	return newWorktree(gitDir, rootDir, r, r.log, r.exec), nil
}
