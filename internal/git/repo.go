package git

import (
	"context"
	"fmt"
	"strings"

	"go.abhg.dev/carve/internal/silog"
	"go.abhg.dev/carve/internal/xec"
)

// OpenOptions configures the behavior of Open.
type OpenOptions struct {
	// Log specifies the logger to use for messages.
	Log *silog.Logger

	exec execer
}

// Open opens the repository that contains the given directory.
// If dir is empty, the current working directory is used.
func Open(ctx context.Context, dir string, opts OpenOptions) (*Repository, error) {
	if opts.exec == nil {
		opts.exec = _realExec
	}
	if opts.Log == nil {
		opts.Log = silog.Nop()
	}

	out, err := newGitCmd(ctx, opts.Log, opts.exec,
		"rev-parse",
		"--show-toplevel",
		"--absolute-git-dir",
	).WithDir(dir).OutputChomp()
	if err != nil {
		return nil, err
	}

	root, gitDir, ok := strings.Cut(out, "\n")
	if !ok {
		return nil, fmt.Errorf("unexpected output from git rev-parse: %q", out)
	}

	return newRepository(root, gitDir, opts.Log, opts.exec), nil
}

// Repository is a handle to a Git repository.
// It provides read-write access to the repository's contents.
type Repository struct {
	root   string
	gitDir string

	log  *silog.Logger
	exec execer
}

func newRepository(root, gitDir string, log *silog.Logger, exec execer) *Repository {
	return &Repository{
		root:   root,
		gitDir: gitDir,
		log:    log,
		exec:   exec,
	}
}

// GitDir returns the absolute path
// to the repository's .git directory.
func (r *Repository) GitDir() string {
	return r.gitDir
}

// gitCmd returns a Git command that will run
// with the repository's root as the working directory.
func (r *Repository) gitCmd(ctx context.Context, args ...string) *xec.Cmd {
	return newGitCmd(ctx, r.log, r.exec, args...).WithDir(r.root)
}
