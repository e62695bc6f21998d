package badger

import (
	"context"
	"errors"
	"fmt"
	"os"

	"pet-health/internal/domain/store"
	"pet-health/internal/platform/logger"

	"github.com/dgraph-io/badger/v4"
)

type Config struct {
	// Directorio de datos. Requerido salvo InMemory.
	Path string

	InMemory   bool
	SyncWrites bool

	// nil = sin logs internos de badger.
	Logger logger.Logger
}

func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapta logger.Logger a la interfaz de logging de badger.
type badgerLogger struct {
	log logger.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.log.Error(fmt.Sprintf(format, args...), nil)
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.log.Warn(fmt.Sprintf(format, args...), nil)
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.log.Debug(fmt.Sprintf(format, args...), nil)
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.log.Debug(fmt.Sprintf(format, args...), nil)
}

// SnapshotStore guarda cada colección bajo su key en un KV embebido.
type SnapshotStore struct {
	db *badger.DB
}

func Open(cfg Config) (*SnapshotStore, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}

	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{log: cfg.Logger.With(map[string]any{"component": "badger"})})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &SnapshotStore{db: db}, nil
}

func (s *SnapshotStore) Load(ctx context.Context, key string) (store.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return store.Snapshot{}, err
	}

	var payload []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return store.Snapshot{Version: store.SnapshotVersion, Key: key}, nil
	}
	if err != nil {
		return store.Snapshot{}, err
	}
	return store.UnmarshalSnapshot(payload)
}

func (s *SnapshotStore) Save(ctx context.Context, snap store.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := store.MarshalSnapshot(snap)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(snap.Key), payload)
	})
}

func (s *SnapshotStore) Close() error { return s.db.Close() }
