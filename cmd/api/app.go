package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-health/internal/adapters/storage"
	"pet-health/internal/domain/healthlog"
	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/store"
	"pet-health/internal/platform/config"
	"pet-health/internal/platform/logger"
	"pet-health/internal/platform/metrics"
)

// app agrupa las dependencias compartidas por serve y dump.
type app struct {
	cfg     config.Config
	log     logger.Logger
	backend *storage.Backend
	metrics *metrics.Metrics
	store   *store.Store
	pets    *pets.Service
	health  *healthlog.Service
}

func newLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
}

// bootstrap abre el almacenamiento, carga las diez colecciones y siembra las mascotas.
func bootstrap(ctx context.Context, cfg config.Config, log logger.Logger) (*app, error) {
	backend, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	st := store.New(backend.Persister, store.Options{
		Logger:  log,
		Metrics: m,
		Timeout: cfg.StorageTimeout,
	})
	m.WatchBus(st.Bus())

	if err := st.Load(ctx); err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("load store: %w", err)
	}

	petsSvc := pets.NewService(backend.Pets)
	if path := strings.TrimSpace(cfg.PetsFile); path != "" {
		inputs, err := pets.LoadFile(path)
		if err != nil {
			_ = backend.Close()
			return nil, err
		}
		seeded, err := petsSvc.Seed(ctx, inputs)
		if err != nil {
			_ = backend.Close()
			return nil, err
		}
		log.Info("pets loaded", map[string]any{"file": path, "count": len(seeded)})
	}

	return &app{
		cfg:     cfg,
		log:     log,
		backend: backend,
		metrics: m,
		store:   st,
		pets:    petsSvc,
		health:  healthlog.NewService(st, petsSvc, log),
	}, nil
}

func (a *app) Close() error {
	var errs []error
	if err := a.backend.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
