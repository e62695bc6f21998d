package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pet-health/internal/domain/store"

	_ "modernc.org/sqlite"
)

// SnapshotStore guarda cada colección como una fila (key, payload) en un archivo SQLite.
type SnapshotStore struct {
	db   *sql.DB
	path string
}

func Open(path string) (*SnapshotStore, error) {
	if path == "" {
		path = "pet_health.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Un solo escritor; SQLite serializa igual.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &SnapshotStore{db: db, path: path}, nil
}

func (s *SnapshotStore) Load(ctx context.Context, key string) (store.Snapshot, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Snapshot{Version: store.SnapshotVersion, Key: key}, nil
	}
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("select state: %w", err)
	}
	return store.UnmarshalSnapshot(payload)
}

func (s *SnapshotStore) Save(ctx context.Context, snap store.Snapshot) error {
	payload, err := store.MarshalSnapshot(snap)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO state(key,payload) VALUES(?,?) ON CONFLICT(key) DO UPDATE SET payload=excluded.payload`,
		snap.Key, payload,
	); err != nil {
		return fmt.Errorf("upsert %s: %w", snap.Key, err)
	}
	return nil
}

func (s *SnapshotStore) Path() string { return s.path }

func (s *SnapshotStore) Close() error { return s.db.Close() }
