package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.abhg.dev/carve/internal/must"
	"go.abhg.dev/carve/internal/osutil"
	"go.abhg.dev/carve/internal/silog"
)

const (
	_sessionJSON = "session.json"

	// _sessionVersion is the version of the session file format
	// written by this binary.
	_sessionVersion = 1
)

var (
	// ErrExists indicates that a session record already exists.
	ErrExists = errors.New("session already exists")

	// ErrCorrupt indicates that a session record is present
	// but cannot be decoded.
	ErrCorrupt = errors.New("session record is corrupt")
)

// Store persists [Session] records in a directory
// under the repository's control directory.
// The store owns that directory:
// it creates it on first use and deletes it when cleared.
//
// Store is not safe for concurrent use.
type Store struct {
	dir string
	log *silog.Logger
}

// NewStore builds a Store that keeps its session record
// in the given directory.
// The directory does not need to exist yet.
func NewStore(dir string, log *silog.Logger) *Store {
	if log == nil {
		log = silog.Nop()
	}

	return &Store{dir: dir, log: log}
}

// Dir reports the directory holding the session record.
func (s *Store) Dir() string { return s.dir }

type sessionFile struct {
	Version int `json:"version"`

	Session
}

// Load returns the persisted session,
// or nil if no split is in progress.
//
// Returns an error wrapping [ErrCorrupt]
// if a record exists but cannot be decoded.
func (s *Store) Load() (*Session, error) {
	bs, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var file sessionFile
	if err := json.Unmarshal(bs, &file); err != nil {
		return nil, fmt.Errorf("%w: decode JSON: %w", ErrCorrupt, err)
	}

	if file.Version > _sessionVersion {
		return nil, fmt.Errorf("session file version %d is too new for this binary", file.Version)
	}

	sess := file.Session
	if err := sess.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return &sess, nil
}

// Create persists a new session record,
// failing with [ErrExists] if one is already present.
// Existence of the record marks a split as in progress,
// so Create doubles as the mutual exclusion check.
func (s *Store) Create(sess *Session) error {
	if err := sess.Validate(); err != nil {
		return fmt.Errorf("invalid session: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	f, err := os.OpenFile(s.path(), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrExists
		}
		return fmt.Errorf("create session: %w", err)
	}

	s.log.Debug("Creating session", "branch", sess.Branch, "dir", s.dir)
	if _, err := f.Write(marshalSession(sess)); err != nil {
		return errors.Join(
			fmt.Errorf("write session: %w", err),
			f.Close(),
			os.Remove(f.Name()),
		)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	return nil
}

// Save replaces the persisted session record.
// The new record is staged in a temporary file and moved into place
// so that a crash mid-write cannot destroy a valid record.
func (s *Store) Save(sess *Session) error {
	if err := sess.Validate(); err != nil {
		return fmt.Errorf("invalid session: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tmp, err := osutil.TempFilePath(s.dir, "session-*")
	if err != nil {
		return fmt.Errorf("stage session: %w", err)
	}

	if err := os.WriteFile(tmp, marshalSession(sess), 0o644); err != nil {
		return errors.Join(
			fmt.Errorf("write session: %w", err),
			os.Remove(tmp),
		)
	}

	if err := os.Rename(tmp, s.path()); err != nil {
		return errors.Join(
			fmt.Errorf("replace session: %w", err),
			os.Remove(tmp),
		)
	}

	return nil
}

// Clear deletes the session record and its directory.
// It is a no-op if there is nothing to delete.
func (s *Store) Clear() error {
	s.log.Debug("Clearing session state", "dir", s.dir)
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("remove state directory: %w", err)
	}
	return nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, _sessionJSON)
}

func marshalSession(sess *Session) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sessionFile{
		Version: _sessionVersion,
		Session: *sess,
	}); err != nil {
		// Session has no fields that can fail to serialize.
		must.Failf("encode JSON: %v", err)
	}
	return buf.Bytes()
}
