package carve

import (
	"context"
	"fmt"
	"time"

	"go.abhg.dev/carve/internal/git"
)

// StatusReport describes the split session, if any.
type StatusReport struct {
	// InProgress reports whether a split session is active.
	// The remaining fields are meaningful only if it is.
	InProgress bool

	// Branch is the branch being split.
	Branch string

	// Tip is the commit being split.
	Tip git.Hash

	// TipSubject is the subject line of the commit being split.
	TipSubject string

	// Slices is the number of slices carved so far.
	Slices int

	// AtBase reports whether HEAD is still at the base commit.
	// If it is not, the next continue will roll the split back.
	AtBase bool

	// Staged lists the changes staged for the next slice.
	// Populated only when AtBase.
	Staged []git.FileStatus

	// StartedAt is the time at which the split started.
	StartedAt time.Time
}

// Status reports the state of the split session
// without mutating anything.
func (h *Handler) Status(ctx context.Context) (*StatusReport, error) {
	sess, err := h.Store.Load()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess == nil {
		return &StatusReport{}, nil
	}

	tip, err := h.Repository.PeelToCommit(ctx, sess.Branch)
	if err != nil {
		return nil, fmt.Errorf("resolve %v: %w", sess.Branch, err)
	}

	subject, err := h.Repository.CommitSubject(ctx, sess.Branch)
	if err != nil {
		return nil, fmt.Errorf("read subject of %v: %w", sess.Branch, err)
	}

	report := &StatusReport{
		InProgress: true,
		Branch:     sess.Branch,
		Tip:        tip,
		TipSubject: subject,
		Slices:     sess.Count - 1,
		StartedAt:  sess.StartedAt,
	}

	parent, err := h.Repository.PeelToCommit(ctx, sess.Branch+"^")
	if err != nil {
		return nil, fmt.Errorf("resolve parent of %v: %w", sess.Branch, err)
	}

	head, err := h.Worktree.Head(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	if head == parent {
		report.AtBase = true

		staged, err := h.Worktree.DiffIndex(ctx, parent.String())
		if err != nil {
			return nil, fmt.Errorf("list staged changes: %w", err)
		}
		report.Staged = staged
	}

	return report, nil
}
