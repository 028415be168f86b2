// Package cas implements the content-addressed snapshot cache.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/issueboard/internal/core/domain"
	"go.trai.ch/issueboard/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SnapshotStore = (*Store)(nil)

// Store implements ports.SnapshotStore with one JSON file per key.
type Store struct {
	dir   string
	mu    sync.RWMutex
	cache map[string]domain.Snapshot
}

// NewStore creates a Store rooted at dir. The directory is created on first write.
func NewStore(dir string) *Store {
	return &Store{
		dir:   filepath.Clean(dir),
		cache: make(map[string]domain.Snapshot),
	}
}

func (s *Store) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", zerr.With(zerr.New("invalid snapshot key"), "key", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Get returns the snapshot stored under key, or nil if there is none.
func (s *Store) Get(key string) (*domain.Snapshot, error) {
	s.mu.RLock()
	snap, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return &snap, nil
	}

	path, err := s.path(key)
	if err != nil {
		return nil, errors.Join(domain.ErrStoreReadFailed, err)
	}

	//nolint:gosec // path is derived from a validated key
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrStoreReadFailed, zerr.With(zerr.Wrap(err, "failed to read snapshot"), "path", path))
	}

	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Join(domain.ErrStoreUnmarshalFailed, zerr.With(zerr.Wrap(err, "corrupt snapshot"), "path", path))
	}

	s.mu.Lock()
	s.cache[key] = snap
	s.mu.Unlock()

	return &snap, nil
}

// Put stores the snapshot under key, replacing any previous one.
func (s *Store) Put(key string, snap domain.Snapshot) error {
	path, err := s.path(key)
	if err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrStoreMarshalFailed, zerr.Wrap(err, "failed to marshal snapshot"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrStoreCreateFailed, zerr.With(zerr.Wrap(err, "failed to create snapshot directory"), "path", s.dir))
	}

	tmp, err := os.CreateTemp(s.dir, ".snapshot-*")
	if err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, zerr.Wrap(err, "failed to create temp snapshot"))
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Join(domain.ErrStoreWriteFailed, zerr.Wrap(err, "failed to write snapshot"))
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, zerr.Wrap(err, "failed to close snapshot"))
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, zerr.Wrap(err, "failed to set snapshot permissions"))
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(zerr.Wrap(err, "failed to store snapshot"), "path", path))
	}

	s.cache[key] = snap
	return nil
}
