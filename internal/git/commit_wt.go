package git

import (
	"context"
	"fmt"
)

// CommitRequest is a request to commit changes.
// It relies on the 'git commit' command.
type CommitRequest struct {
	// Message is the commit message.
	Message string // required

	// AllowEmpty allows a commit with no changes.
	AllowEmpty bool

	// NoVerify bypasses the pre-commit and commit-msg hooks.
	NoVerify bool
}

// Commit commits the currently staged changes with 'git commit'.
func (w *Worktree) Commit(ctx context.Context, req CommitRequest) error {
	args := []string{"commit", "-m", req.Message}
	if req.AllowEmpty {
		args = append(args, "--allow-empty")
	}
	if req.NoVerify {
		args = append(args, "--no-verify")
	}

	if err := w.gitCmd(ctx, args...).CaptureStdout().Run(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
