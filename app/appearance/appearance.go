package appearance

import (
	"sync"

	"github.com/Jomy2323/dei-pms-submission/app/model"
)

// Store is the process-wide error surface. The gateway pushes transport and
// server faults here so the portal can show them outside any single screen.
// It replaces the original ad hoc singleton with an injected object.
type Store struct {
	mu      sync.Mutex
	loading bool
	errors  []model.RemoteError
}

func New() *Store {
	return &Store{}
}

func (s *Store) PushError(e model.RemoteError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, e)
}

func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Drain returns the pending errors and clears the surface.
func (s *Store) Drain() []model.RemoteError {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.errors
	s.errors = nil
	return out
}
