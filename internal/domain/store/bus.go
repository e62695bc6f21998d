package store

import (
	"sync"
	"sync/atomic"
	"time"

	"pet-health/internal/domain/records"
)

type ChangeKind string

const (
	ChangeSaved   ChangeKind = "saved"
	ChangeUpdated ChangeKind = "updated"
	ChangeMoved   ChangeKind = "moved"
	ChangeDeleted ChangeKind = "deleted"
)

// Change avisa que los registros de una mascota cambiaron; los observers vuelven a leer del store.
type Change struct {
	PetID    string           `json:"pet_id"`
	Category records.Category `json:"category"`
	Kind     ChangeKind       `json:"kind"`
	RecordID string           `json:"record_id,omitempty"`
	Revision uint64           `json:"revision"`
	At       time.Time        `json:"at"`
}

const DefaultSubscriptionBuffer = 32

// Bus es un pub/sub por mascota. Publish nunca bloquea: si el canal de un
// suscriptor está lleno, el evento se descarta (Revision sigue avanzando).
type Bus struct {
	mu        sync.Mutex
	subs      map[uint64]*Subscription
	nextID    uint64
	revisions map[string]uint64
	buffer    int

	dropped atomic.Uint64
}

func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = DefaultSubscriptionBuffer
	}
	return &Bus{
		subs:      make(map[uint64]*Subscription),
		revisions: make(map[string]uint64),
		buffer:    buffer,
	}
}

type Subscription struct {
	bus   *Bus
	id    uint64
	petID string
	ch    chan Change
	once  sync.Once
}

// Subscribe con petID vacío recibe cambios de todas las mascotas.
func (b *Bus) Subscribe(petID string) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	s := &Subscription{
		bus:   b,
		id:    b.nextID,
		petID: petID,
		ch:    make(chan Change, b.buffer),
	}
	b.subs[s.id] = s
	return s
}

func (s *Subscription) C() <-chan Change { return s.ch }

// Close es idempotente; cierra el canal.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		delete(s.bus.subs, s.id)
		s.bus.mu.Unlock()
		close(s.ch)
	})
}

// Publish completa Revision y At y entrega a los suscriptores interesados.
func (b *Bus) Publish(c Change) Change {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.revisions[c.PetID]++
	c.Revision = b.revisions[c.PetID]
	if c.At.IsZero() {
		c.At = time.Now().UTC()
	}

	for _, s := range b.subs {
		if s.petID != "" && s.petID != c.PetID {
			continue
		}
		select {
		case s.ch <- c:
		default:
			b.dropped.Add(1)
		}
	}
	return c
}

// Revision es un contador monótono por mascota, para hosts que prefieren hacer polling.
func (b *Bus) Revision(petID string) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.revisions[petID]
}

func (b *Bus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Bus) Dropped() uint64 { return b.dropped.Load() }
