package git

import (
	"context"
	"fmt"
)

// RevertNoCommit stages the inverse of the given commit's changes
// on top of the current HEAD without committing them.
//
// If the inverse change does not apply cleanly,
// the command fails and leaves conflict markers in the working tree.
// Use [Worktree.RevertQuit] to discard the in-progress revert.
func (w *Worktree) RevertNoCommit(ctx context.Context, commitish string) error {
	w.log.Debug("Reverting commit", "commit", commitish)

	err := w.gitCmd(ctx, "revert", "--no-commit", commitish).
		CaptureStdout().
		Run()
	if err != nil {
		return fmt.Errorf("revert: %w", err)
	}
	return nil
}

// RevertQuit forgets about an in-progress revert
// without touching the index or the working tree.
func (w *Worktree) RevertQuit(ctx context.Context) error {
	if err := w.gitCmd(ctx, "revert", "--quit").Run(); err != nil {
		return fmt.Errorf("revert --quit: %w", err)
	}
	return nil
}
