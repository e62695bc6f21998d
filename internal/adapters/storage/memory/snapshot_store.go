package memory

import (
	"context"
	"sync"

	"pet-health/internal/domain/store"
)

// SnapshotStore guarda cada colección serializada, como lo haría un backend real,
// para que un Load posterior devuelva una copia independiente.
type SnapshotStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{blobs: make(map[string][]byte)}
}

func (s *SnapshotStore) Load(ctx context.Context, key string) (store.Snapshot, error) {
	s.mu.RLock()
	b := s.blobs[key]
	s.mu.RUnlock()

	snap, err := store.UnmarshalSnapshot(b)
	if err != nil {
		return store.Snapshot{}, err
	}
	if snap.Key == "" {
		snap.Key = key
	}
	return snap, nil
}

func (s *SnapshotStore) Save(ctx context.Context, snap store.Snapshot) error {
	b, err := store.MarshalSnapshot(snap)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.blobs[snap.Key] = b
	s.mu.Unlock()
	return nil
}
