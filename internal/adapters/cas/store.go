// Package cas implements the invocation history store.
package cas

import (
	"cmp"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/maven3/internal/core/domain"
	"go.trai.ch/maven3/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultPath is the history file, relative to the working directory.
	DefaultPath = ".maven3/history.json"
	// MaxEntries bounds the history; the oldest invocations are dropped first.
	MaxEntries = 200
)

var _ ports.InvocationStore = (*Store)(nil)

// Store implements ports.InvocationStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.Invocation
}

// NewStore creates a new InvocationStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.Invocation),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", s.path)
	}

	return nil
}

// save must be called with s.mu held.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreWriteFailed, err.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}

	return nil
}

// Put stores the invocation, assigning an ID when it has none.
func (s *Store) Put(inv domain.Invocation) error {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[inv.ID] = inv
	s.prune()

	return s.save()
}

// List returns the stored invocations, newest first.
func (s *Store) List() ([]domain.Invocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sorted(), nil
}

// sorted must be called with s.mu held.
func (s *Store) sorted() []domain.Invocation {
	out := make([]domain.Invocation, 0, len(s.cache))
	for _, inv := range s.cache {
		out = append(out, inv)
	}
	slices.SortFunc(out, func(a, b domain.Invocation) int {
		if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// prune must be called with s.mu held.
func (s *Store) prune() {
	if len(s.cache) <= MaxEntries {
		return
	}
	for _, inv := range s.sorted()[MaxEntries:] {
		delete(s.cache, inv.ID)
	}
}
