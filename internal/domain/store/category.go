package store

import (
	"context"
	"sync"
	"time"

	"pet-health/internal/domain/records"
	"pet-health/internal/platform/logger"
)

// CategoryStore mantiene en memoria los registros de una categoría, agrupados por mascota
// y en orden de inserción. Cada mutación reescribe la colección completa.
type CategoryStore[R records.Record] struct {
	category  records.Category
	decode    func(records.Fields) (R, error)
	persister Persister
	metrics   Metrics
	log       logger.Logger
	timeout   time.Duration

	// mu se mantiene tomado durante el Save: un único escritor por categoría.
	mu   sync.RWMutex
	data map[string][]R
}

func NewCategoryStore[R records.Record](
	category records.Category,
	decode func(records.Fields) (R, error),
	persister Persister,
	opts Options,
) *CategoryStore[R] {
	opts = opts.withDefaults()
	return &CategoryStore[R]{
		category:  category,
		decode:    decode,
		persister: persister,
		metrics:   opts.Metrics,
		log:       opts.Logger.With(map[string]any{"category": string(category)}),
		timeout:   opts.Timeout,
		data:      make(map[string][]R),
	}
}

func (c *CategoryStore[R]) Category() records.Category { return c.category }

// Load reemplaza el contenido en memoria por lo persistido.
// Registros ilegibles se descartan con un warning.
func (c *CategoryStore[R]) Load(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	snap, err := c.persister.Load(ctx, c.category.StorageKey())
	c.metrics.ObservePersist(c.category, "load", time.Since(start), err)
	if err != nil {
		return &PersistenceError{Category: c.category, Op: "load", Err: err}
	}

	data := make(map[string][]R, len(snap.Data))
	skipped := 0
	for petID, items := range snap.Data {
		list := make([]R, 0, len(items))
		for _, f := range items {
			rec, err := c.decode(f)
			if err != nil {
				skipped++
				c.log.Warn("skipping malformed record", map[string]any{"pet_id": petID, "err": err})
				continue
			}
			list = append(list, rec)
		}
		data[petID] = list
	}

	c.mu.Lock()
	c.data = data
	c.mu.Unlock()

	c.log.Debug("category loaded", map[string]any{"pets": len(data), "skipped": skipped})
	return nil
}

// Append agrega al final de la lista de la mascota y persiste.
// Si el Save falla, el registro queda en memoria y se devuelve *PersistenceError.
func (c *CategoryStore[R]) Append(ctx context.Context, rec R) error {
	_, err := c.mutate(ctx, "append", func(data map[string][]R) bool {
		data[rec.Pet()] = append(data[rec.Pet()], rec)
		return true
	})
	return err
}

// Query devuelve una copia de la lista de la mascota (vacía si no hay registros).
func (c *CategoryStore[R]) Query(petID string) []R {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := c.data[petID]
	out := make([]R, len(list))
	copy(out, list)
	return out
}

// All devuelve una copia de todas las listas no vacías.
func (c *CategoryStore[R]) All() map[string][]R {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string][]R, len(c.data))
	for petID, list := range c.data {
		if len(list) == 0 {
			continue
		}
		out[petID] = append([]R(nil), list...)
	}
	return out
}

// Find busca el primer registro que cumpla match (mascotas en orden arbitrario).
func (c *CategoryStore[R]) Find(match func(R) bool) (R, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, list := range c.data {
		for _, r := range list {
			if match(r) {
				return r, true
			}
		}
	}
	var zero R
	return zero, false
}

// PetIDs lista las mascotas con al menos un registro.
func (c *CategoryStore[R]) PetIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.data))
	for petID, list := range c.data {
		if len(list) > 0 {
			out = append(out, petID)
		}
	}
	return out
}

// mutate aplica fn bajo el lock; si fn devuelve false no se persiste nada.
func (c *CategoryStore[R]) mutate(ctx context.Context, op string, fn func(map[string][]R) bool) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !fn(c.data) {
		return false, nil
	}
	return true, c.persistLocked(ctx, op)
}

func (c *CategoryStore[R]) persistLocked(ctx context.Context, op string) error {
	snap := Snapshot{
		Version: SnapshotVersion,
		Key:     c.category.StorageKey(),
		Data:    make(map[string][]records.Fields, len(c.data)),
	}
	for petID, list := range c.data {
		items := make([]records.Fields, 0, len(list))
		for _, r := range list {
			f, err := records.Encode(r)
			if err != nil {
				return &PersistenceError{Category: c.category, Op: op, Err: err}
			}
			items = append(items, f)
		}
		snap.Data[petID] = items
	}

	// La memoria ya cambió: el Save no debe cortarse porque el caller se fue.
	ctx, cancel := c.withTimeout(context.WithoutCancel(ctx))
	defer cancel()

	start := time.Now()
	err := c.persister.Save(ctx, snap)
	c.metrics.ObservePersist(c.category, op, time.Since(start), err)
	if err != nil {
		return &PersistenceError{Category: c.category, Op: op, Err: err}
	}
	return nil
}

func (c *CategoryStore[R]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}
