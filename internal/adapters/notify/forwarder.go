// Package notify reenvía los cambios del store a destinos externos.
package notify

import (
	"context"
	"time"

	"pet-health/internal/domain/store"
	"pet-health/internal/platform/logger"
)

const DefaultSendTimeout = 5 * time.Second

// Sink recibe cada cambio. Un error se registra y no detiene el reenvío.
type Sink interface {
	Name() string
	Send(ctx context.Context, c store.Change) error
}

type Forwarder struct {
	bus     *store.Bus
	sinks   []Sink
	log     logger.Logger
	timeout time.Duration
}

func NewForwarder(bus *store.Bus, log logger.Logger, sinks ...Sink) *Forwarder {
	if log == nil {
		log = logger.NewNop()
	}
	return &Forwarder{
		bus:     bus,
		sinks:   sinks,
		log:     log.With(map[string]any{"component": "notify"}),
		timeout: DefaultSendTimeout,
	}
}

func (f *Forwarder) Len() int { return len(f.sinks) }

// Run se suscribe a todas las mascotas hasta que ctx termine.
func (f *Forwarder) Run(ctx context.Context) error {
	if len(f.sinks) == 0 {
		<-ctx.Done()
		return nil
	}

	sub := f.bus.Subscribe("")
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case c, ok := <-sub.C():
			if !ok {
				return nil
			}
			f.dispatch(ctx, c)
		}
	}
}

func (f *Forwarder) dispatch(ctx context.Context, c store.Change) {
	for _, s := range f.sinks {
		sendCtx, cancel := context.WithTimeout(ctx, f.timeout)
		err := s.Send(sendCtx, c)
		cancel()
		if err != nil {
			f.log.Warn("change not forwarded", map[string]any{
				"sink":     s.Name(),
				"pet_id":   c.PetID,
				"category": string(c.Category),
				"error":    err.Error(),
			})
		}
	}
}
