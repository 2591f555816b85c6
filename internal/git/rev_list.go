package git

import (
	"context"
	"fmt"
	"iter"
)

// CommitRange specifies a range of commits for a history query.
// Build it with [CommitRangeFrom].
type CommitRange []string

// CommitRangeFrom builds a CommitRange that covers commits
// reachable from the given commitish, newest first.
func CommitRangeFrom(from Hash) CommitRange {
	return CommitRange{string(from)}
}

// ExcludeFrom excludes commits reachable from the given commitish
// from the range.
func (r CommitRange) ExcludeFrom(from Hash) CommitRange {
	return append(r, "--not", string(from))
}

// Reverse reports commits in the range oldest first.
func (r CommitRange) Reverse() CommitRange {
	return append(r, "--reverse")
}

// ListCommits returns an iterator over the hashes of commits
// in the given range.
func (r *Repository) ListCommits(ctx context.Context, commits CommitRange) iter.Seq2[Hash, error] {
	return func(yield func(Hash, error) bool) {
		args := make([]string, 0, len(commits)+1)
		args = append(args, "rev-list")
		args = append(args, commits...)

		for line, err := range r.gitCmd(ctx, args...).Lines() {
			if err != nil {
				yield(ZeroHash, fmt.Errorf("rev-list: %w", err))
				return
			}

			if !yield(Hash(line), nil) {
				return
			}
		}
	}
}
