package git

import (
	"context"
	"fmt"
)

// CheckoutIndex overwrites all tracked files in the working tree
// with their staged contents, discarding unstaged edits.
// The index itself is left unchanged.
func (w *Worktree) CheckoutIndex(ctx context.Context) error {
	if err := w.gitCmd(ctx, "checkout-index", "-f", "-a").Run(); err != nil {
		return fmt.Errorf("checkout-index: %w", err)
	}
	return nil
}
