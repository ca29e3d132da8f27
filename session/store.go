package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Storage keys. The account collection is persisted as a whole blob
// under one key; the active session lives under its own key so it
// survives a restart independently. Absence of the session record
// means "not authenticated".
const (
	usersKey       = "netflix_users"
	currentUserKey = "netflix_current_user"
)

// Store persists accounts and the active session as JSON records in a
// local state directory, one file per key.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a store rooted at path on the given filesystem
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// LoadAccounts reads the persisted account collection. A missing
// record is an empty collection, not an error.
func (s *Store) LoadAccounts() ([]Account, error) {
	data, err := afero.ReadFile(s.fs, s.keyPath(usersKey))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &StorageError{Op: "read accounts", Err: err}
	}

	var accounts []Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, &StorageError{Op: "decode accounts", Err: err}
	}
	return accounts, nil
}

// SaveAccounts replaces the persisted account collection atomically
// with respect to callers of this store (whole-blob replace).
func (s *Store) SaveAccounts(accounts []Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return &StorageError{Op: "encode accounts", Err: err}
	}
	if err := s.write(usersKey, data); err != nil {
		return &StorageError{Op: "write accounts", Err: err}
	}
	return nil
}

// LoadSession reads the persisted session record. The second return
// value reports whether a record was present.
func (s *Store) LoadSession() (Session, bool, error) {
	data, err := afero.ReadFile(s.fs, s.keyPath(currentUserKey))
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, false, nil
		}
		return Session{}, false, &StorageError{Op: "read session", Err: err}
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, false, &StorageError{Op: "decode session", Err: err}
	}
	return sess, true, nil
}

// SaveSession persists the active session record
func (s *Store) SaveSession(sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return &StorageError{Op: "encode session", Err: err}
	}
	if err := s.write(currentUserKey, data); err != nil {
		return &StorageError{Op: "write session", Err: err}
	}
	return nil
}

// ClearSession removes the persisted session record. Idempotent.
func (s *Store) ClearSession() error {
	err := s.fs.Remove(s.keyPath(currentUserKey))
	if err != nil && !os.IsNotExist(err) {
		return &StorageError{Op: "clear session", Err: err}
	}
	return nil
}

func (s *Store) keyPath(key string) string {
	return filepath.Join(s.path, key)
}

func (s *Store) write(key string, data []byte) error {
	if err := s.fs.MkdirAll(s.path, 0o700); err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.keyPath(key), data, 0o600)
}
