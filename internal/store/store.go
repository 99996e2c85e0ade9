// Package store persists the browser-localStorage analogue: a small
// key-value file holding the session token, user blob and candidate id.
// Writes go through synchronously so a later invocation restores the same
// session, up to token expiry.
package store

import (
	"encoding/json"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/spf13/afero"
)

// Persisted keys, matching the original client's storage contract.
const (
	KeyToken       = "token"
	KeyUser        = "user"
	KeyCandidateID = "candidateId"
)

// Store is a file-backed string key-value store. It is safe for concurrent
// use; every mutation is flushed to disk before returning.
type Store struct {
	fs   afero.Fs
	path string

	mu     sync.Mutex
	values map[string]string
}

// Open loads the state file at path, creating an empty store when the file
// does not exist yet. A corrupt file is treated as empty rather than
// failing startup; the next write replaces it.
func Open(fs afero.Fs, path string) (*Store, error) {
	s := &Store{
		fs:     fs,
		path:   path,
		values: make(map[string]string),
	}

	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.values); err != nil {
		s.values = make(map[string]string)
	}
	return s, nil
}

// Get returns the stored value for key, or empty when absent.
func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

// Set stores key=value and persists immediately.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.persistLocked()
}

// Remove deletes the given keys and persists immediately. Missing keys are
// not an error.
func (s *Store) Remove(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.values, k)
	}
	return s.persistLocked()
}

// Token returns the persisted bearer token, or empty.
func (s *Store) Token() string {
	return s.Get(KeyToken)
}

// CandidateID returns the cached candidate id, or (0, false) when no valid
// id is cached.
func (s *Store) CandidateID() (int64, bool) {
	raw := s.Get(KeyCandidateID)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// SetCandidateID caches the candidate id.
func (s *Store) SetCandidateID(id int64) error {
	return s.Set(KeyCandidateID, strconv.FormatInt(id, 10))
}

func (s *Store) persistLocked() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	raw, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.path, raw, 0o600)
}
