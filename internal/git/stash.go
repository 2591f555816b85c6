package git

import (
	"context"
	"fmt"
)

// StashPush saves the state of the working copy in a new stash entry
// and resets the working copy to HEAD.
// Untracked files are included in the entry and removed from the
// working copy.
func (w *Worktree) StashPush(ctx context.Context, message string) error {
	args := []string{"stash", "push", "--include-untracked"}
	if message != "" {
		args = append(args, "-m", message)
	}

	if err := w.gitCmd(ctx, args...).CaptureStdout().Run(); err != nil {
		return fmt.Errorf("stash push: %w", err)
	}

	return nil
}

// StashPop applies the most recent stash entry to the working directory
// and removes it from the stash reflog.
// If applying the stash conflicts, the entry is kept in the reflog.
func (w *Worktree) StashPop(ctx context.Context) error {
	if err := w.gitCmd(ctx, "stash", "pop").CaptureStdout().Run(); err != nil {
		return fmt.Errorf("stash pop: %w", err)
	}

	return nil
}
