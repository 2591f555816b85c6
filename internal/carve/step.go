package carve

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"go.abhg.dev/carve/internal/carve/state"
	"go.abhg.dev/carve/internal/git"
	"go.abhg.dev/carve/internal/must"
)

// Step commits the currently staged selection as the next slice
// and re-stages what remains of the original change.
// When nothing remains, it finishes the split,
// rebuilding the carved slices as real commits on the branch.
//
// HEAD must still be at the base commit left by Begin;
// anything else is a protocol violation
// that rolls the entire split back.
func (h *Handler) Step(ctx context.Context, opts *Options) error {
	opts = cmp.Or(opts, &Options{})

	sess, err := h.Store.Load()
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if sess == nil {
		return ErrNotInProgress
	}

	parent, err := h.Repository.PeelToCommit(ctx, sess.Branch+"^")
	if err != nil {
		return fmt.Errorf("resolve parent of %v: %w", sess.Branch, err)
	}

	head, err := h.Worktree.Head(ctx)
	if err != nil {
		return fmt.Errorf("resolve HEAD: %w", err)
	}

	if head != parent {
		h.Log.Error("Found an unexpected commit. Was 'git commit' run directly?",
			"head", head.Short(), "base", parent.Short())
		h.Log.Warn("Rolling back the split", "branch", sess.Branch)

		err := fmt.Errorf("%w: HEAD is at %v, expected the base %v",
			ErrUnexpectedCommit, head.Short(), parent.Short())
		if rerr := h.rollback(ctx, sess.Branch, sess.Shadow); rerr != nil {
			err = errors.Join(err, rerr)
		}
		if cerr := h.Store.Clear(); cerr != nil {
			err = errors.Join(err, cerr)
		}
		return err
	}

	staged, err := h.Worktree.HasStagedChanges(ctx, parent.String())
	if err != nil {
		return fmt.Errorf("check staged changes: %w", err)
	}

	if !staged {
		return h.stepWithoutStaged(ctx, sess, parent)
	}

	// Reduce the working copy to exactly the staged selection.
	if err := h.Worktree.CheckoutIndex(ctx); err != nil {
		return fmt.Errorf("restore working copy from index: %w", err)
	}
	if err := h.Worktree.CleanUntracked(ctx); err != nil {
		return fmt.Errorf("remove untracked files: %w", err)
	}

	msg := opts.Message
	if msg == "" {
		subject, err := h.Repository.CommitSubject(ctx, sess.Branch)
		if err != nil {
			return fmt.Errorf("read subject of %v: %w", sess.Branch, err)
		}
		msg = fmt.Sprintf("%v (part %v)", subject, sess.Count)
	}

	if err := h.Worktree.Commit(ctx, git.CommitRequest{
		Message:  msg,
		NoVerify: opts.NoVerify,
	}); err != nil {
		return fmt.Errorf("commit slice %v: %w", sess.Count, err)
	}

	slice, err := h.Worktree.Head(ctx)
	if err != nil {
		return fmt.Errorf("resolve slice commit: %w", err)
	}

	// Hooks may have edited the message.
	// Read back what was recorded so the shadow branch
	// carries the slice's final text.
	msgs, err := h.Repository.CommitMessageRange(ctx, slice.String(), parent.String())
	if err != nil {
		return fmt.Errorf("read message of %v: %w", slice.Short(), err)
	}
	must.BeEqualf(len(msgs), 1, "commits in %v..%v", parent.Short(), slice.Short())

	h.Log.Info("Committed slice", "n", sess.Count, "commit", slice.Short(), "subject", msgs[0].Subject)

	if err := h.recordAntiCommit(ctx, sess, parent, slice, msgs[0].String()); err != nil {
		return err
	}

	sess.Count++
	if err := h.Store.Save(sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	if err := h.stageRemaining(ctx, parent, sess.Shadow); err != nil {
		return fmt.Errorf("stage remaining changes: %w", err)
	}

	dirty, err := h.Worktree.IsDirty(ctx)
	if err != nil {
		return fmt.Errorf("check remaining changes: %w", err)
	}
	if !dirty {
		return h.finish(ctx, sess, parent)
	}

	h.Log.Infof("Changes remain; carve the next slice and re-run '%v --continue'", h.Identity.Git)
	return nil
}

// stepWithoutStaged handles a continue invocation with an empty index.
// Depending on the rest of the repository state this is
// a finished split, a user error, or a discarded working copy.
func (h *Handler) stepWithoutStaged(ctx context.Context, sess *state.Session, parent git.Hash) error {
	dirty, err := h.Worktree.IsDirty(ctx)
	if err != nil {
		return fmt.Errorf("check working copy: %w", err)
	}
	if dirty {
		return fmt.Errorf("%w: stage the changes the next slice should keep, or abort", ErrNothingStaged)
	}

	// The shadow branch is authoritative for what remains:
	// an empty working copy with changes still recorded there means
	// the carving state was discarded outside the tool,
	// e.g. by a hard reset at the base.
	shadowTree, err := h.Repository.PeelToTree(ctx, sess.Shadow)
	if err != nil {
		return fmt.Errorf("resolve shadow branch %v: %w", sess.Shadow, err)
	}
	parentTree, err := h.Repository.PeelToTree(ctx, parent.String())
	if err != nil {
		return fmt.Errorf("resolve base tree: %w", err)
	}

	if shadowTree == parentTree {
		// Nothing remains; a previous invocation carved the last
		// slice but did not get to rebuild the branch.
		return h.finish(ctx, sess, parent)
	}

	h.Log.Warn("The working copy was emptied outside the tool; re-staging the remaining changes")
	if err := h.stageRemaining(ctx, parent, sess.Shadow); err != nil {
		return err
	}
	return fmt.Errorf("%w: the remaining changes were staged again", ErrNothingStaged)
}

// recordAntiCommit appends a commit to the shadow branch whose tree is
// everything of the original change not yet carved away.
// Its message is the slice's commit message,
// which finish later replays onto the rebuilt branch.
func (h *Handler) recordAntiCommit(ctx context.Context, sess *state.Session, base, slice git.Hash, msg string) error {
	if err := h.Worktree.Checkout(ctx, sess.Shadow); err != nil {
		return fmt.Errorf("check out shadow branch %v: %w", sess.Shadow, err)
	}

	if err := h.Worktree.RevertNoCommit(ctx, slice.String()); err != nil {
		h.Log.Error("Could not remove the slice from the shadow branch",
			"slice", slice.Short(), "error", err)
		return errors.Join(
			fmt.Errorf("%w: remove slice %v from %v", ErrReplayConflict, slice.Short(), sess.Shadow),
			h.restoreCarving(ctx, sess, base),
		)
	}

	if err := h.Worktree.Commit(ctx, git.CommitRequest{
		Message:    msg,
		AllowEmpty: true,
		NoVerify:   true,
	}); err != nil {
		return fmt.Errorf("record shadow commit: %w", err)
	}

	return nil
}
