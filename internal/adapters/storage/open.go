// Package storage elige el persister y el repositorio de mascotas según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"pet-health/internal/adapters/storage/badger"
	"pet-health/internal/adapters/storage/file"
	"pet-health/internal/adapters/storage/memory"
	"pet-health/internal/adapters/storage/postgres"
	"pet-health/internal/adapters/storage/s3"
	"pet-health/internal/adapters/storage/sqlite"
	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/store"
	"pet-health/internal/platform/config"
	"pet-health/internal/platform/logger"
)

// Backend es lo que el resto de la app necesita del almacenamiento.
type Backend struct {
	Driver    string
	Persister store.Persister
	Pets      pets.Repository
	closer    io.Closer
}

func (b *Backend) Close() error {
	if b == nil || b.closer == nil {
		return nil
	}
	return b.closer.Close()
}

// Open abre el backend. Solo postgres persiste también las mascotas;
// el resto las mantiene en memoria (se siembran desde PETS_FILE).
func Open(ctx context.Context, cfg config.Config, log logger.Logger) (*Backend, error) {
	if log == nil {
		log = logger.NewNop()
	}
	b := &Backend{Driver: cfg.StorageDriver, Pets: memory.NewPetRepo()}

	switch cfg.StorageDriver {
	case config.DriverMemory:
		b.Persister = memory.NewSnapshotStore()

	case config.DriverFile:
		fs, err := file.New(cfg.StoragePath)
		if err != nil {
			return nil, err
		}
		b.Persister = fs

	case config.DriverSQLite:
		path := cfg.StoragePath
		if filepath.Ext(path) == "" {
			path = filepath.Join(path, "pet_health.db")
		}
		ss, err := sqlite.Open(path)
		if err != nil {
			return nil, err
		}
		b.Persister, b.closer = ss, ss

	case config.DriverBadger:
		bs, err := badger.Open(badger.Config{
			Path:       cfg.StoragePath,
			SyncWrites: true,
			Logger:     log,
		})
		if err != nil {
			return nil, err
		}
		b.Persister, b.closer = bs, bs

	case config.DriverPostgres:
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		b.Persister = postgres.NewSnapshotStore(db)
		b.Pets = postgres.NewPetsRepo(db)
		b.closer = db

	case config.DriverS3:
		ss, err := s3.New(ctx, s3.Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
			Prefix:    cfg.S3Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("open s3: %w", err)
		}
		b.Persister = ss

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	log.Info("storage opened", map[string]any{"driver": cfg.StorageDriver})
	return b, nil
}
