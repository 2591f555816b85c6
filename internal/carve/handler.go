// Package carve implements the engine
// that splits one commit into an ordered sequence of smaller commits
// over several independent invocations of the tool.
//
// The engine is a persistent state machine:
// all intermediate state lives in the session record
// and on a private shadow branch,
// so that every operation runs in its own process
// and the user edits the working copy between operations.
package carve

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"go.abhg.dev/carve/internal/carve/state"
	"go.abhg.dev/carve/internal/git"
	"go.abhg.dev/carve/internal/silog"
)

//go:generate mockgen -package carve -destination mocks_test.go . GitRepository,GitWorktree,Store

// Errors reported by the split engine.
// The command surface maps these to guidance text.
var (
	// ErrNotInProgress indicates that an operation that needs
	// an active split session was invoked without one.
	ErrNotInProgress = errors.New("no split in progress")

	// ErrAlreadyInProgress indicates that a split session is
	// already active in this repository.
	ErrAlreadyInProgress = errors.New("a split is already in progress")

	// ErrNoParent indicates that the commit being split
	// is a root commit.
	ErrNoParent = errors.New("commit has no parent")

	// ErrDirtyWorkingCopy indicates that the working copy has
	// uncommitted changes and autostash was not requested.
	ErrDirtyWorkingCopy = errors.New("uncommitted changes in the working copy")

	// ErrNothingStaged indicates that continue was invoked
	// with nothing staged for the next slice.
	ErrNothingStaged = errors.New("nothing is staged")

	// ErrUnexpectedCommit indicates that HEAD moved away from the
	// base commit outside the tool, e.g. by a direct 'git commit'.
	ErrUnexpectedCommit = errors.New("unexpected commit")

	// ErrReplayConflict indicates that a slice could not be
	// replayed cleanly onto the shadow branch or the rebuilt chain.
	ErrReplayConflict = errors.New("conflict while replaying a slice")
)

// GitRepository provides treeless read/write access to the Git state.
type GitRepository interface {
	PeelToCommit(ctx context.Context, ref string) (git.Hash, error)
	PeelToTree(ctx context.Context, ref string) (git.Hash, error)
	BranchExists(ctx context.Context, branch string) bool
	CreateBranch(ctx context.Context, req git.CreateBranchRequest) error
	DeleteBranch(ctx context.Context, branch string, opts git.BranchDeleteOptions) error
	SetRef(ctx context.Context, req git.SetRefRequest) error
	CommitSubject(ctx context.Context, commitish string) (string, error)
	CommitMessageRange(ctx context.Context, start, stop string) ([]git.CommitMessage, error)
	ListCommits(ctx context.Context, commits git.CommitRange) iter.Seq2[git.Hash, error]
}

var _ GitRepository = (*git.Repository)(nil)

// GitWorktree provides worktree-specific operations.
type GitWorktree interface {
	CurrentBranch(ctx context.Context) (string, error)
	Head(ctx context.Context) (git.Hash, error)
	DetachHead(ctx context.Context, commitish string) error
	Checkout(ctx context.Context, branch string) error
	Reset(ctx context.Context, commit string, opts git.ResetOptions) error
	Commit(ctx context.Context, req git.CommitRequest) error
	IsDirty(ctx context.Context) (bool, error)
	HasUntracked(ctx context.Context) (bool, error)
	HasStagedChanges(ctx context.Context, treeish string) (bool, error)
	DiffIndex(ctx context.Context, treeish string) ([]git.FileStatus, error)
	CheckoutIndex(ctx context.Context) error
	CleanUntracked(ctx context.Context) error
	StashPush(ctx context.Context, message string) error
	StashPop(ctx context.Context) error
	RevertNoCommit(ctx context.Context, commitish string) error
	RevertQuit(ctx context.Context) error
}

var _ GitWorktree = (*git.Worktree)(nil)

// Store persists the session record between invocations.
type Store interface {
	Load() (*state.Session, error)
	Create(sess *state.Session) error
	Save(sess *state.Session) error
	Clear() error
}

var _ Store = (*state.Store)(nil)

// Handler drives the split protocol.
// It is the only component that mutates the repository.
type Handler struct {
	Log        *silog.Logger // required
	Repository GitRepository // required
	Worktree   GitWorktree   // required
	Store      Store         // required
	Identity   Identity      // required
}

// Options defines flag-controlled behavior for the split operations.
// These are exposed as flags in the CLI.
type Options struct {
	Autostash bool `config:"autostash" help:"Stash uncommitted changes before splitting."`

	NoVerify bool `help:"Bypass pre-commit and commit-msg hooks."`

	Message string `short:"m" placeholder:"MSG" help:"Use the given message for the next slice's commit."`
}

// stageRemaining places HEAD at the base commit, detached,
// with the difference between base and source staged
// and mirrored in the working copy, ready for the user to carve.
func (h *Handler) stageRemaining(ctx context.Context, base git.Hash, source string) error {
	if err := h.Worktree.DetachHead(ctx, source); err != nil {
		return fmt.Errorf("detach HEAD at %v: %w", source, err)
	}

	if err := h.Worktree.Reset(ctx, base.String(), git.ResetOptions{Mode: git.ResetSoft}); err != nil {
		return fmt.Errorf("reset to %v: %w", base, err)
	}

	return nil
}
