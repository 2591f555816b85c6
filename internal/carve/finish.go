package carve

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.abhg.dev/carve/internal/carve/state"
	"go.abhg.dev/carve/internal/git"
	"go.abhg.dev/carve/internal/must"
	"go.abhg.dev/carve/internal/sliceutil"
)

// finish rebuilds the carved slices as real commits grafted onto the
// base, force-moves the branch to the last of them, and ends the
// session. HEAD must be detached at the base with a clean working copy.
//
// Each anti-commit on the shadow branch removed one slice from
// "everything remaining", so reverting them in creation order
// re-adds the slices in the order the user carved them.
func (h *Handler) finish(ctx context.Context, sess *state.Session, base git.Hash) error {
	original, err := h.Repository.PeelToCommit(ctx, sess.Branch)
	if err != nil {
		return fmt.Errorf("resolve %v: %w", sess.Branch, err)
	}

	shadowTip, err := h.Repository.PeelToCommit(ctx, sess.Shadow)
	if err != nil {
		return fmt.Errorf("resolve shadow branch %v: %w", sess.Shadow, err)
	}

	// Anti-commits in creation order, oldest first.
	antis, err := sliceutil.CollectErr(h.Repository.ListCommits(ctx,
		git.CommitRangeFrom(shadowTip).
			ExcludeFrom(original).
			Reverse()))
	if err != nil {
		return fmt.Errorf("list shadow commits: %w", err)
	}

	// Their messages arrive newest first; align them with the commits.
	msgs, err := h.Repository.CommitMessageRange(ctx, shadowTip.String(), original.String())
	if err != nil {
		return fmt.Errorf("read slice messages: %w", err)
	}
	slices.Reverse(msgs)
	must.BeEqualf(len(msgs), len(antis), "messages for commits in %v..%v", original.Short(), shadowTip.Short())

	h.Log.Debug("Rebuilding carved slices", "count", len(antis), "base", base.Short())
	for i, anti := range antis {
		if err := h.Worktree.RevertNoCommit(ctx, anti.String()); err != nil {
			h.Log.Error("Could not rebuild a slice", "n", i+1, "error", err)
			return errors.Join(
				fmt.Errorf("%w: rebuild slice %v", ErrReplayConflict, i+1),
				h.restoreCarving(ctx, sess, base),
			)
		}

		if err := h.Worktree.Commit(ctx, git.CommitRequest{
			Message:    msgs[i].String(),
			AllowEmpty: true,
			NoVerify:   true,
		}); err != nil {
			return fmt.Errorf("commit slice %v: %w", i+1, err)
		}
	}

	rebuilt, err := h.Worktree.Head(ctx)
	if err != nil {
		return fmt.Errorf("resolve rebuilt tip: %w", err)
	}

	// The rebuilt chain must reproduce the original commit exactly.
	wantTree, err := h.Repository.PeelToTree(ctx, original.String())
	if err != nil {
		return fmt.Errorf("resolve original tree: %w", err)
	}
	gotTree, err := h.Repository.PeelToTree(ctx, rebuilt.String())
	if err != nil {
		return fmt.Errorf("resolve rebuilt tree: %w", err)
	}
	if gotTree != wantTree {
		return errors.Join(
			fmt.Errorf("rebuilt tree %v does not match the original %v", gotTree.Short(), wantTree.Short()),
			h.restoreCarving(ctx, sess, base),
		)
	}

	if err := h.Repository.SetRef(ctx, git.SetRefRequest{
		Ref:  "refs/heads/" + sess.Branch,
		Hash: rebuilt,
		// Ensure nothing else moved the branch while the split ran.
		OldHash: original,
	}); err != nil {
		return errors.Join(
			fmt.Errorf("update %v: %w", sess.Branch, err),
			h.restoreCarving(ctx, sess, base),
		)
	}

	if err := h.Worktree.Checkout(ctx, sess.Branch); err != nil {
		return fmt.Errorf("check out %v: %w", sess.Branch, err)
	}

	if err := h.Repository.DeleteBranch(ctx, sess.Shadow, git.BranchDeleteOptions{Force: true}); err != nil {
		h.Log.Warn("Could not delete the shadow branch; delete it manually",
			"branch", sess.Shadow, "error", err)
	}

	if err := h.Store.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	h.Log.Infof("%v: split %v into %v commits", sess.Branch, original.Short(), len(antis))

	if sess.Stash {
		if err := h.Worktree.StashPop(ctx); err != nil {
			h.Log.Warn("Could not restore stashed changes; recover them with 'git stash pop'", "error", err)
		} else {
			h.Log.Info("Restored stashed changes")
		}
	}

	return nil
}

// restoreCarving returns the repository to the canonical in-progress
// state: HEAD detached at the base with everything not yet carved
// staged. The session stays intact so the user can retry or abort.
func (h *Handler) restoreCarving(ctx context.Context, sess *state.Session, base git.Hash) error {
	// A conflicted revert leaves the sequencer active.
	if err := h.Worktree.RevertQuit(ctx); err != nil {
		h.Log.Debug("No revert to quit", "error", err)
	}

	if err := h.Worktree.Reset(ctx, "HEAD", git.ResetOptions{Mode: git.ResetHard}); err != nil {
		return fmt.Errorf("discard working copy: %w", err)
	}

	if err := h.stageRemaining(ctx, base, sess.Shadow); err != nil {
		return err
	}

	h.Log.Warnf("The split is still in progress; retry with '%v --continue' or abandon with '%v --abort'",
		h.Identity.Git, h.Identity.Git)
	return nil
}
