// Package state persists the state of an in-progress split
// across invocations of the tool.
//
// The only entity is the [Session] record,
// stored as a JSON file in a directory
// under the repository's control directory.
// Presence of the record is the sole signal
// that a split is in progress.
package state

import (
	"errors"
	"fmt"
	"time"
)

// Session records an in-progress split of a single commit.
// It is created when a split starts,
// updated once per extracted slice,
// and destroyed on completion or abort.
//
// At most one session exists per repository at a time.
type Session struct {
	// Branch is the branch whose head commit is being split.
	Branch string `json:"branch"`

	// Count is the number of the next slice to be extracted,
	// starting at 1.
	Count int `json:"count"`

	// Stash reports whether uncommitted changes were stashed away
	// when the split started.
	// If true, the stash is restored when the split completes.
	Stash bool `json:"stash"`

	// Shadow is the name of the branch that records
	// what remains of the original change after each slice.
	Shadow string `json:"shadow"`

	// StartedAt is the time at which the split started.
	StartedAt time.Time `json:"startedAt"`
}

// Validate returns an error if the session record
// is missing required information.
func (s *Session) Validate() error {
	if s.Branch == "" {
		return errors.New("branch name is empty")
	}
	if s.Count < 1 {
		return fmt.Errorf("slice count must be positive, got %d", s.Count)
	}
	if s.Shadow == "" {
		return errors.New("shadow branch name is empty")
	}
	return nil
}
