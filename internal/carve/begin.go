package carve

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"time"

	"go.abhg.dev/carve/internal/carve/state"
	"go.abhg.dev/carve/internal/git"
)

// Begin starts splitting the head commit of the current branch.
//
// It records a new session, creates the shadow branch at the commit
// being split, and leaves HEAD detached at the commit's parent
// with the commit's full change staged,
// ready for the user to carve the first slice.
//
// The working copy must be clean unless Autostash is set,
// in which case uncommitted changes are stashed
// and restored when the split completes.
func (h *Handler) Begin(ctx context.Context, opts *Options) error {
	opts = cmp.Or(opts, &Options{})

	sess, err := h.Store.Load()
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if sess != nil {
		return fmt.Errorf("%w for %v", ErrAlreadyInProgress, sess.Branch)
	}

	branch, err := h.Worktree.CurrentBranch(ctx)
	if err != nil {
		return fmt.Errorf("determine current branch: %w", err)
	}

	original, err := h.Repository.PeelToCommit(ctx, branch)
	if err != nil {
		return fmt.Errorf("resolve %v: %w", branch, err)
	}

	parent, err := h.Repository.PeelToCommit(ctx, branch+"^")
	if err != nil {
		if errors.Is(err, git.ErrNotExist) {
			return fmt.Errorf("%w: cannot split the root commit %v", ErrNoParent, original.Short())
		}
		return fmt.Errorf("resolve parent of %v: %w", branch, err)
	}

	dirty, err := h.Worktree.IsDirty(ctx)
	if err != nil {
		return fmt.Errorf("check working copy: %w", err)
	}
	if !dirty {
		// Untracked files count too: a later step would
		// otherwise remove them along with unstaged edits.
		dirty, err = h.Worktree.HasUntracked(ctx)
		if err != nil {
			return fmt.Errorf("check untracked files: %w", err)
		}
	}

	var stashed bool
	if dirty {
		if !opts.Autostash {
			return fmt.Errorf("%w: commit or stash them, or re-run with --autostash", ErrDirtyWorkingCopy)
		}

		if err := h.stashChanges(ctx, branch); err != nil {
			return err
		}
		stashed = true
	}

	shadow := h.Identity.ShadowBranch(branch)
	if h.Repository.BranchExists(ctx, shadow) {
		// Leftover from a crashed session with no record.
		h.Log.Warn("Deleting stale shadow branch from an earlier run", "branch", shadow)
		if err := h.Repository.DeleteBranch(ctx, shadow, git.BranchDeleteOptions{Force: true}); err != nil {
			return errors.Join(
				fmt.Errorf("delete stale shadow branch %v: %w", shadow, err),
				h.undoBegin(ctx, branch, shadow, stashed),
			)
		}
	}

	if err := h.Repository.CreateBranch(ctx, git.CreateBranchRequest{
		Name: shadow,
		Head: original.String(),
	}); err != nil {
		return errors.Join(
			fmt.Errorf("create shadow branch %v: %w", shadow, err),
			h.undoBegin(ctx, branch, shadow, stashed),
		)
	}

	if err := h.stageRemaining(ctx, parent, shadow); err != nil {
		return errors.Join(err, h.undoBegin(ctx, branch, shadow, stashed))
	}

	dirty, err = h.Worktree.IsDirty(ctx)
	if err != nil {
		return errors.Join(
			fmt.Errorf("check staged changes: %w", err),
			h.undoBegin(ctx, branch, shadow, stashed),
		)
	}
	if !dirty {
		return errors.Join(
			fmt.Errorf("%v has no changes to split", original.Short()),
			h.undoBegin(ctx, branch, shadow, stashed),
		)
	}

	if err := h.Store.Create(&state.Session{
		Branch:    branch,
		Count:     1,
		Stash:     stashed,
		Shadow:    shadow,
		StartedAt: time.Now(),
	}); err != nil {
		if errors.Is(err, state.ErrExists) {
			err = ErrAlreadyInProgress
		}
		return errors.Join(err, h.undoBegin(ctx, branch, shadow, stashed))
	}

	h.Log.Infof("%v: splitting %v (%v)", branch, original.Short(), subjectOf(ctx, h.Repository, branch))
	h.Log.Info("The full change is staged; unstage what later slices should keep,")
	h.Log.Infof("then run '%v --continue' to commit the first slice", h.Identity.Git)
	return nil
}

// stashChanges stashes the uncommitted changes in the working copy,
// untracked files included, and resets it to a clean state.
func (h *Handler) stashChanges(ctx context.Context, branch string) error {
	msg := fmt.Sprintf("%v: autostash before splitting %v", h.Identity.Name, branch)

	if err := h.Worktree.StashPush(ctx, msg); err != nil {
		return fmt.Errorf("stash changes: %w", err)
	}

	h.Log.Info("Stashed uncommitted changes")
	return nil
}

// undoBegin unwinds a partially started split:
// it restores the branch checkout, deletes the shadow branch,
// and pops the autostash if one was just created.
func (h *Handler) undoBegin(ctx context.Context, branch, shadow string, stashed bool) error {
	err := h.rollback(ctx, branch, shadow)

	if stashed {
		if perr := h.Worktree.StashPop(ctx); perr != nil {
			h.Log.Warn("Could not restore stashed changes; recover them with 'git stash pop'", "error", perr)
		}
	}

	return err
}

// subjectOf reports the subject of a commit for log output,
// with the error reduced to a placeholder.
func subjectOf(ctx context.Context, repo GitRepository, commitish string) string {
	subject, err := repo.CommitSubject(ctx, commitish)
	if err != nil {
		return "?"
	}
	return subject
}
