package catalog

import (
	"sync"
	"sync/atomic"
)

// Store holds the current Catalog. Readers Load a snapshot and keep using it
// for as long as they like; writers replace the whole catalog with Swap or
// Refresh.
type Store struct {
	cur       atomic.Pointer[Catalog]
	refreshMu sync.Mutex
}

// NewStore returns a Store holding c. c may be nil.
func NewStore(c *Catalog) *Store {
	s := &Store{}
	if c != nil {
		s.cur.Store(c)
	}
	return s
}

// Load returns the current catalog. Before the first Swap it returns an
// empty catalog, never nil.
func (s *Store) Load() *Catalog {
	if c := s.cur.Load(); c != nil {
		return c
	}
	return &Catalog{}
}

// Swap installs c and returns the previous catalog (possibly nil).
func (s *Store) Swap(c *Catalog) *Catalog {
	return s.cur.Swap(c)
}

// Refresh rebuilds the catalog from dirs and installs it. Concurrent
// refreshes are serialized.
func (s *Store) Refresh(b *Builder, dirs []string) *Catalog {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	c := b.Build(dirs)
	s.cur.Store(c)
	return c
}
