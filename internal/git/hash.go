package git

import (
	"context"
	"errors"
	"log/slog"

	"go.abhg.dev/carve/internal/xec"
)

// ErrNotExist is returned when a Git object does not exist.
var ErrNotExist = errors.New("does not exist")

// Hash is a 40-character Git object ID.
type Hash string

// ZeroHash is the hash of an empty Git object.
// It is used to represent the absence of a hash.
const ZeroHash Hash = "0000000000000000000000000000000000000000"

func (h Hash) String() string {
	return string(h)
}

// LogValue reports how the hash should be logged.
func (h Hash) LogValue() slog.Value {
	return slog.StringValue(h.Short())
}

// Short reports the short form of the hash.
func (h Hash) Short() string {
	if len(h) < 7 {
		return string(h)
	}
	return string(h[:7])
}

// IsZero reports whether the hash is the zero hash.
func (h Hash) IsZero() bool {
	// We're not just comparing to ZeroHash
	// to make this also work with abbreviated hashes.
	for _, b := range h {
		if b != '0' {
			return false
		}
	}
	return true
}

// PeelToCommit reports the commit hash of the provided commit-ish.
// It returns [ErrNotExist] if the object does not exist.
func (r *Repository) PeelToCommit(ctx context.Context, ref string) (Hash, error) {
	return r.revParse(ctx, ref+"^{commit}")
}

// PeelToTree reports the tree object at the provided tree-ish.
// It returns [ErrNotExist] if the object does not exist.
func (r *Repository) PeelToTree(ctx context.Context, ref string) (Hash, error) {
	return r.revParse(ctx, ref+"^{tree}")
}

func (r *Repository) revParse(ctx context.Context, ref string) (Hash, error) {
	out, err := r.revParseCmd(ctx, ref).OutputChomp()
	if err != nil {
		return "", ErrNotExist
	}
	return Hash(out), nil
}

func (r *Repository) revParseCmd(ctx context.Context, ref string) *xec.Cmd {
	return r.gitCmd(ctx, "rev-parse",
		"--verify",         // fail if the object does not exist
		"--quiet",          // no output if object does not exist
		"--end-of-options", // prevent ref from being treated as a flag
		ref,
	)
}
