// Package session keeps each browser's view state in memory. Nothing is
// written to disk; sessions disappear on expiry or restart.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/nurpe/festival-audit/internal/shell"
)

var ErrNotFound = errors.New("session not found")

type Store struct {
	mu    sync.Mutex
	cache *cache.Cache
}

// New creates a store whose sessions expire after ttl of inactivity.
func New(ttl, cleanupInterval time.Duration) *Store {
	return &Store{cache: cache.New(ttl, cleanupInterval)}
}

func (s *Store) Create() (uuid.UUID, shell.State) {
	id := uuid.New()
	state := shell.Initial()
	s.cache.SetDefault(id.String(), state)
	return id, state
}

func (s *Store) Get(id uuid.UUID) (shell.State, error) {
	raw, ok := s.cache.Get(id.String())
	if !ok {
		return shell.State{}, ErrNotFound
	}
	return raw.(shell.State), nil
}

// Update applies fn to the stored state and saves the result, refreshing
// the expiry. Updates to the same store are serialized.
func (s *Store) Update(id uuid.UUID, fn func(shell.State) shell.State) (shell.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.Get(id)
	if err != nil {
		return shell.State{}, err
	}
	state = fn(state)
	s.cache.SetDefault(id.String(), state)
	return state, nil
}

// Touch restarts the expiry of a live session and reports whether it
// exists. Get alone does not extend a session.
func (s *Store) Touch(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.Get(id)
	if err != nil {
		return false
	}
	s.cache.SetDefault(id.String(), state)
	return true
}

func (s *Store) Delete(id uuid.UUID) {
	s.cache.Delete(id.String())
}

func (s *Store) Len() int {
	return s.cache.ItemCount()
}
