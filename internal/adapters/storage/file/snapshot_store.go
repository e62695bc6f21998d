package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pet-health/internal/domain/store"
)

// SnapshotStore guarda cada colección en <dir>/<key>.json.
// La escritura es atómica (archivo temporal + rename).
type SnapshotStore struct {
	dir string
}

func New(dir string) (*SnapshotStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("file store: directory required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("file store: create dir: %w", err)
	}
	return &SnapshotStore{dir: dir}, nil
}

func (s *SnapshotStore) path(key string) string {
	return filepath.Join(s.dir, filepath.Base(key)+".json")
}

func (s *SnapshotStore) Load(ctx context.Context, key string) (store.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return store.Snapshot{}, err
	}

	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return store.Snapshot{Version: store.SnapshotVersion, Key: key}, nil
	}
	if err != nil {
		return store.Snapshot{}, err
	}
	return store.UnmarshalSnapshot(b)
}

func (s *SnapshotStore) Save(ctx context.Context, snap store.Snapshot) (retErr error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := store.MarshalSnapshot(snap)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(snap.Key)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path(snap.Key))
}
