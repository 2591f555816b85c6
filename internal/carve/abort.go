package carve

import (
	"context"
	"errors"
	"fmt"

	"go.abhg.dev/carve/internal/git"
)

// Abort abandons the split and restores the branch to the commit
// being split. Uncommitted selections are discarded.
// An autostash created by Begin is never restored;
// the user can recover it with 'git stash pop'.
//
// Abort is safe to invoke from any reachable state,
// including after a crash or a partial earlier abort:
// it tolerates missing artifacts and always clears the session.
func (h *Handler) Abort(ctx context.Context) error {
	sess, err := h.Store.Load()
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if sess == nil {
		return ErrNotInProgress
	}

	err = h.rollback(ctx, sess.Branch, sess.Shadow)
	if cerr := h.Store.Clear(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	if err != nil {
		return err
	}

	h.Log.Infof("%v: split aborted", sess.Branch)
	if sess.Stash {
		h.Log.Info("Stashed changes were not restored; recover them with 'git stash pop'")
	}
	return nil
}

// rollback restores the repository to its pre-split state:
// it quits any in-progress revert, discards the working copy,
// returns to the branch, and deletes the shadow branch if one exists.
// Failures do not stop later cleanup steps;
// they are joined and reported together
// so that re-running converges on the clean state.
func (h *Handler) rollback(ctx context.Context, branch, shadow string) error {
	var errs []error

	if err := h.Worktree.RevertQuit(ctx); err != nil {
		h.Log.Debug("No revert to quit", "error", err)
	}

	if err := h.Worktree.Reset(ctx, "HEAD", git.ResetOptions{Mode: git.ResetHard}); err != nil {
		errs = append(errs, fmt.Errorf("discard tracked changes: %w", err))
	}

	if err := h.Worktree.CleanUntracked(ctx); err != nil {
		errs = append(errs, fmt.Errorf("remove untracked files: %w", err))
	}

	if err := h.Worktree.Checkout(ctx, branch); err != nil {
		errs = append(errs, fmt.Errorf("check out %v: %w", branch, err))
	}

	if h.Repository.BranchExists(ctx, shadow) {
		if err := h.Repository.DeleteBranch(ctx, shadow, git.BranchDeleteOptions{Force: true}); err != nil {
			errs = append(errs, fmt.Errorf("delete shadow branch %v: %w", shadow, err))
		}
	}

	return errors.Join(errs...)
}
