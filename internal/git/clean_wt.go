package git

import (
	"context"
	"fmt"
)

// CleanUntracked removes untracked files and directories
// from the working tree.
func (w *Worktree) CleanUntracked(ctx context.Context) error {
	if err := w.gitCmd(ctx, "clean", "-qfd").Run(); err != nil {
		return fmt.Errorf("git clean: %w", err)
	}
	return nil
}
