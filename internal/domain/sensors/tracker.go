package sensors

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/store"
	"pet-health/internal/platform/logger"
)

// Observer recibe cada snapshot recalculado (p.ej. para exportarlo como métricas).
type Observer interface {
	ObserveSnapshot(Snapshot)
}

type TrackerOptions struct {
	Logger   logger.Logger
	Observer Observer
	// Zona para "hoy"; nil = time.Local.
	Location *time.Location
	// Recálculo periódico de los valores que dependen del reloj. 0 = 1 minuto.
	RefreshInterval time.Duration
}

// Tracker mantiene el último snapshot de cada mascota y lo recalcula cuando
// el store publica un cambio.
type Tracker struct {
	store    *store.Store
	pets     *pets.Service
	log      logger.Logger
	observer Observer
	loc      *time.Location
	interval time.Duration
	now      func() time.Time

	mu        sync.RWMutex
	snapshots map[string]Snapshot
}

func NewTracker(st *store.Store, petsSvc *pets.Service, opts TrackerOptions) *Tracker {
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = time.Minute
	}
	return &Tracker{
		store:     st,
		pets:      petsSvc,
		log:       opts.Logger.With(map[string]any{"component": "sensors"}),
		observer:  opts.Observer,
		loc:       opts.Location,
		interval:  opts.RefreshInterval,
		now:       time.Now,
		snapshots: make(map[string]Snapshot),
	}
}

// Compute recalcula y guarda el snapshot de petID. Mascotas no registradas solo
// se aceptan si tienen registros (o son la mascota "unknown").
func (t *Tracker) Compute(ctx context.Context, petID string) (Snapshot, error) {
	p, err := t.pets.GetByID(ctx, petID)
	switch {
	case err == nil:
	case errors.Is(err, pets.ErrNotFound):
		if petID != pets.UnknownPetID && !slices.Contains(t.store.Pets(), petID) {
			t.mu.Lock()
			delete(t.snapshots, petID)
			t.mu.Unlock()
			return Snapshot{}, err
		}
		p = pets.Pet{ID: petID, Name: t.pets.DisplayName(ctx, petID)}
	default:
		return Snapshot{}, err
	}

	snap := Compute(p, t.store.Records(petID), t.now().In(t.loc))
	snap.Revision = t.store.Bus().Revision(petID)

	t.mu.Lock()
	t.snapshots[petID] = snap
	t.mu.Unlock()

	if t.observer != nil {
		t.observer.ObserveSnapshot(snap)
	}
	return snap, nil
}

// Latest devuelve el último snapshot calculado sin recalcular.
func (t *Tracker) Latest(petID string) (Snapshot, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.snapshots[petID]
	return s, ok
}

// RefreshAll recalcula todas las mascotas registradas y las que tienen registros.
func (t *Tracker) RefreshAll(ctx context.Context) {
	ids := t.store.Pets()
	if items, err := t.pets.List(ctx); err != nil {
		t.log.Warn("list pets failed", map[string]any{"err": err})
	} else {
		for _, p := range items {
			if !slices.Contains(ids, p.ID) {
				ids = append(ids, p.ID)
			}
		}
	}

	for _, id := range ids {
		if _, err := t.Compute(ctx, id); err != nil {
			t.log.Warn("sensor refresh failed", map[string]any{"pet_id": id, "err": err})
		}
	}
}

// Run escucha el bus hasta que ctx termine. La suscripción se cierra al salir.
func (t *Tracker) Run(ctx context.Context) error {
	sub := t.store.Bus().Subscribe("")
	defer sub.Close()

	t.RefreshAll(ctx)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case c, ok := <-sub.C():
			if !ok {
				return nil
			}
			if _, err := t.Compute(ctx, c.PetID); err != nil {
				t.log.Warn("sensor update failed", map[string]any{"pet_id": c.PetID, "err": err})
			}
		case <-ticker.C:
			t.RefreshAll(ctx)
		}
	}
}
