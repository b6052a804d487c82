package snapshot

import (
	"sync/atomic"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
)

// Store holds at most one account snapshot for the lifetime of the
// process. Reads never block and writes are whole-value reference
// swaps, so no lock is needed: a reader either sees the previous
// snapshot or the new one, never a partial write. Concurrent refreshes
// race last-writer-wins, which is acceptable for an eventually
// consistent mirror of an external system.
type Store struct {
	current atomic.Pointer[domain.Snapshot]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Read returns the current snapshot, or false if no fetch has ever
// succeeded.
func (s *Store) Read() (*domain.Snapshot, bool) {
	snap := s.current.Load()
	return snap, snap != nil
}

// Write replaces the stored snapshot unconditionally.
func (s *Store) Write(snap *domain.Snapshot) {
	s.current.Store(snap)
}
