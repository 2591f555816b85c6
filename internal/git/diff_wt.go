package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.abhg.dev/carve/internal/xec"
)

// FileStatusCode specifies the status of a file in a diff.
type FileStatusCode string

// List of file status codes from
// https://git-scm.com/docs/git-diff-index#Documentation/git-diff-index.txt---diff-filterACDMRTUXB82308203.
const (
	FileUnchanged   FileStatusCode = ""
	FileAdded       FileStatusCode = "A"
	FileCopied      FileStatusCode = "C"
	FileDeleted     FileStatusCode = "D"
	FileModified    FileStatusCode = "M"
	FileRenamed     FileStatusCode = "R"
	FileTypeChanged FileStatusCode = "T"
	FileUnmerged    FileStatusCode = "U"
)

// FileStatus is a single file in a diff.
type FileStatus struct {
	// Status of the file.
	Status string

	// Path to the file relative to the tree root.
	Path string
}

// DiffIndex compares the index with the given tree
// and returns the list of files that are different.
//
// The treeish argument can be any valid tree-ish reference.
func (w *Worktree) DiffIndex(ctx context.Context, treeish string) ([]FileStatus, error) {
	cmd := w.gitCmd(ctx, "diff-index", "--cached", "--name-status", treeish)

	var files []FileStatus
	for line, err := range cmd.Lines() {
		if err != nil {
			return nil, fmt.Errorf("diff-index: %w", err)
		}
		if len(line) == 0 {
			continue
		}

		status, name, ok := bytes.Cut(line, []byte{'\t'})
		if !ok {
			w.log.Warnf("invalid diff-index output: %s", line)
			continue
		}
		files = append(files, FileStatus{
			Status: string(status),
			Path:   string(name),
		})
	}

	return files, nil
}

// HasStagedChanges reports whether the index
// differs from the tree at the given tree-ish.
func (w *Worktree) HasStagedChanges(ctx context.Context, treeish string) (bool, error) {
	err := w.gitCmd(ctx, "diff-index", "--cached", "--quiet", treeish).Run()
	return interpretQuietDiff("diff-index", err)
}

// IsDirty reports whether any tracked file has staged or unstaged changes
// relative to HEAD. Untracked files are not considered;
// check for them separately with [Worktree.HasUntracked].
func (w *Worktree) IsDirty(ctx context.Context) (bool, error) {
	// Refresh the stat cache first so that touched-but-unchanged files
	// don't report as modified.
	if err := w.gitCmd(ctx, "update-index", "-q", "--refresh").Run(); err != nil {
		return false, fmt.Errorf("update-index: %w", err)
	}

	dirty, err := interpretQuietDiff("diff-files",
		w.gitCmd(ctx, "diff-files", "--quiet").Run())
	if err != nil || dirty {
		return dirty, err
	}

	return w.HasStagedChanges(ctx, "HEAD")
}

// HasUntracked reports whether the working copy
// contains any untracked, unignored files.
func (w *Worktree) HasUntracked(ctx context.Context) (bool, error) {
	out, err := w.gitCmd(ctx, "ls-files", "--others", "--exclude-standard").OutputChomp()
	if err != nil {
		return false, fmt.Errorf("ls-files: %w", err)
	}
	return out != "", nil
}

// interpretQuietDiff turns the result of a 'git diff-* --quiet' command
// into a boolean: those commands exit with code 1 when differences exist.
func interpretQuietDiff(cmd string, err error) (bool, error) {
	if err == nil {
		return false, nil
	}

	var exitErr *xec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return true, nil
	}
	return false, fmt.Errorf("%v: %w", cmd, err)
}
