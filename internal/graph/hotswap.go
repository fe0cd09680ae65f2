package graph

import (
	"sync"
)

// SyncArena is a thread-safe wrapper giving one Arena a single writer.
// Mutations take the write lock, reads share the read lock.
type SyncArena struct {
	mu    sync.RWMutex
	arena *Arena
}

func NewSyncArena(a *Arena) *SyncArena {
	if a == nil {
		a = NewArena()
	}
	return &SyncArena{arena: a}
}

// Swap replaces the wrapped arena and returns the previous one.
func (s *SyncArena) Swap(a *Arena) *Arena {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.arena
	s.arena = a
	return old
}

// NewWidget delegates to the wrapped arena.
func (s *SyncArena) NewWidget(name string) NodeID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arena.NewWidget(name)
}

// NewNumber delegates to the wrapped arena.
func (s *SyncArena) NewNumber(value int) NodeID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arena.NewNumber(value)
}

// NewGroup delegates to the wrapped arena.
func (s *SyncArena) NewGroup() NodeID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arena.NewGroup()
}

// Add delegates to the wrapped arena.
func (s *SyncArena) Add(parent, child NodeID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arena.Add(parent, child)
}

// Remove delegates to the wrapped arena.
func (s *SyncArena) Remove(parent NodeID, index int) (NodeID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arena.Remove(parent, index)
}

// Release delegates to the wrapped arena.
func (s *SyncArena) Release(id NodeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arena.Release(id)
}

// Report renders under the read lock, so the text is a consistent snapshot.
func (s *SyncArena) Report(id NodeID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.arena.Report(id)
}

// Node delegates to the wrapped arena.
func (s *SyncArena) Node(id NodeID) (Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.arena.Node(id)
}

// Len delegates to the wrapped arena.
func (s *SyncArena) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.arena.Len()
}
