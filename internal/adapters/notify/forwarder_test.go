package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pet-health/internal/domain/records"
	"pet-health/internal/domain/store"
)

type recordingSink struct {
	mu   sync.Mutex
	got  []store.Change
	fail bool
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Send(ctx context.Context, c store.Change) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, c)
	if s.fail {
		return errors.New("boom")
	}
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.got)
}

func TestForwarder_DeliversToEverySink(t *testing.T) {
	bus := store.NewBus(0)
	failing := &recordingSink{fail: true}
	ok := &recordingSink{}
	f := NewForwarder(bus, nil, failing, ok)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.Run(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for bus.Subscribers() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("forwarder never subscribed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	bus.Publish(store.Change{PetID: "rex", Category: records.CategoryVisits, Kind: store.ChangeSaved})
	bus.Publish(store.Change{PetID: "milo", Category: records.CategoryWeight, Kind: store.ChangeSaved})

	for ok.count() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("expected 2 changes, got %d", ok.count())
		}
		time.Sleep(5 * time.Millisecond)
	}
	if failing.count() != 2 {
		t.Fatalf("failing sink should still see every change, got %d", failing.count())
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}
	if bus.Subscribers() != 0 {
		t.Fatalf("expected subscription closed")
	}
}

func TestForwarder_NoSinksWaitsForContext(t *testing.T) {
	f := NewForwarder(store.NewBus(0), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := f.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	if f.Len() != 0 {
		t.Fatalf("expected no sinks")
	}
}
