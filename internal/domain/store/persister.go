package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pet-health/internal/domain/records"
)

const SnapshotVersion = 1

// Snapshot es una colección completa tal como se persiste: {version, key, data}.
type Snapshot struct {
	Version int                         `json:"version"`
	Key     string                      `json:"key"`
	Data    map[string][]records.Fields `json:"data"`
}

// Persister guarda y recupera colecciones completas por key.
// Load de una key inexistente devuelve un Snapshot vacío sin error.
type Persister interface {
	Load(ctx context.Context, key string) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
}

// Metrics recibe el resultado de cada operación de persistencia.
type Metrics interface {
	ObservePersist(category records.Category, op string, d time.Duration, err error)
}

type nopMetrics struct{}

func (nopMetrics) ObservePersist(records.Category, string, time.Duration, error) {}

// MarshalSnapshot es el formato compartido por los adapters que guardan bytes.
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	if s.Version == 0 {
		s.Version = SnapshotVersion
	}
	if s.Data == nil {
		s.Data = map[string][]records.Fields{}
	}
	return json.Marshal(s)
}

// UnmarshalSnapshot conserva los números como json.Number.
func UnmarshalSnapshot(b []byte) (Snapshot, error) {
	var s Snapshot
	if len(bytes.TrimSpace(b)) == 0 {
		return s, nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Version > SnapshotVersion {
		return Snapshot{}, fmt.Errorf("decode snapshot %s: unsupported version %d", s.Key, s.Version)
	}
	return s, nil
}
