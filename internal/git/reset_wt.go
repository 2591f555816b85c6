package git

import (
	"context"
	"fmt"
	"strconv"
)

// ResetMode specifies the reset mode used in the form:
//
//	git reset --<mode> <commit>
//
// The default mode is ResetMixed.
type ResetMode int

const (
	// ResetModeUnset is the default reset mode.
	ResetModeUnset ResetMode = iota

	// ResetMixed resets the index to the specified commit
	// but leaves the working tree unchanged.
	ResetMixed

	// ResetHard resets the index and working tree to the specified commit.
	ResetHard

	// ResetSoft resets HEAD to the specified commit,
	// leaving the index and working tree unchanged.
	ResetSoft
)

func (m ResetMode) String() string {
	switch m {
	case ResetMixed:
		return "mixed"
	case ResetHard:
		return "hard"
	case ResetSoft:
		return "soft"
	case ResetModeUnset:
		return "unset"
	default:
		return strconv.Itoa(int(m))
	}
}

// ResetOptions configures the behavior of Reset.
type ResetOptions struct {
	Quiet bool
	Mode  ResetMode
}

// Reset resets the index and optionally the working tree
// to the specified commit.
func (w *Worktree) Reset(ctx context.Context, commit string, opts ResetOptions) error {
	args := []string{"reset"}
	if opts.Quiet {
		args = append(args, "--quiet")
	}
	switch opts.Mode {
	case ResetModeUnset:
		// use default
	case ResetMixed:
		args = append(args, "--mixed")
	case ResetHard:
		args = append(args, "--hard")
	case ResetSoft:
		args = append(args, "--soft")
	default:
		return fmt.Errorf("unknown reset mode: %d", opts.Mode)
	}
	args = append(args, commit)

	w.log.Debug("Resetting repository", "commit", commit, "mode", opts.Mode)
	if err := w.gitCmd(ctx, args...).Run(); err != nil {
		return fmt.Errorf("git reset: %w", err)
	}

	return nil
}
