package cache

import (
	"sync"

	"biomonitor/internal/models"
)

// SnapshotStore holds the per-user transient vitals snapshot: the in-progress
// measurement state before an explicit save. Snapshots are overwritten
// field-by-field as vitals are re-measured and cleared on explicit reset.
type SnapshotStore interface {
	Get(userID string) (models.SimulatedVitals, error)
	Set(userID string, vitals models.SimulatedVitals) error
	Clear(userID string) error
}

// MemorySnapshotStore keeps snapshots in process memory. Used when Redis is
// not configured, and by tests.
type MemorySnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string]models.SimulatedVitals
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{snapshots: make(map[string]models.SimulatedVitals)}
}

func (s *MemorySnapshotStore) Get(userID string) (models.SimulatedVitals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshots[userID], nil
}

func (s *MemorySnapshotStore) Set(userID string, vitals models.SimulatedVitals) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[userID] = vitals
	return nil
}

func (s *MemorySnapshotStore) Clear(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, userID)
	return nil
}
