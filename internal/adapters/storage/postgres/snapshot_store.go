package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-health/internal/domain/store"
)

// SnapshotStore guarda cada colección como una fila JSONB en pet_health_state.
type SnapshotStore struct {
	db *sql.DB
}

func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

func (s *SnapshotStore) Load(ctx context.Context, key string) (store.Snapshot, error) {
	key = strings.TrimSpace(key)

	var payload []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT payload
		FROM pet_health_state
		WHERE key = $1
	`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Snapshot{Version: store.SnapshotVersion, Key: key}, nil
	}
	if err != nil {
		return store.Snapshot{}, err
	}
	return store.UnmarshalSnapshot(payload)
}

func (s *SnapshotStore) Save(ctx context.Context, snap store.Snapshot) error {
	payload, err := store.MarshalSnapshot(snap)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO pet_health_state (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`, snap.Key, string(payload))
	return err
}
