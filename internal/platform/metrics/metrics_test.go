package metrics

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pet-health/internal/domain/records"
	"pet-health/internal/domain/sensors"
	"pet-health/internal/domain/store"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObservePersist(t *testing.T) {
	m := New()

	m.ObservePersist(records.CategoryVisits, "append", 5*time.Millisecond, nil)
	m.ObservePersist(records.CategoryVisits, "append", 5*time.Millisecond, errors.New("disk full"))

	if got := testutil.ToFloat64(m.persistFailures.WithLabelValues("visits", "append")); got != 1 {
		t.Fatalf("expected 1 failure, got %v", got)
	}
	if got := testutil.CollectAndCount(m.persistDuration); got != 1 {
		t.Fatalf("expected one histogram series, got %d", got)
	}
}

func TestObserveSnapshot(t *testing.T) {
	m := New()
	hours := 1.5
	grams := 4200

	m.ObserveSnapshot(sensors.Snapshot{
		PetID:               "rex",
		VisitsToday:         3,
		PeeToday:            2,
		PoopToday:           1,
		HoursSinceLastVisit: &hours,
		CurrentWeightGrams:  &grams,
		UnconfirmedVisits:   []sensors.PendingVisit{{VisitID: "v1"}},
		Medications:         []sensors.MedicationSensor{{Name: "Apoquel", DosesToday: 2}},
	})

	checks := map[string]float64{
		"visits":      testutil.ToFloat64(m.visitsToday.WithLabelValues("rex")),
		"unconfirmed": testutil.ToFloat64(m.unconfirmed.WithLabelValues("rex")),
		"hours":       testutil.ToFloat64(m.hoursSinceVisit.WithLabelValues("rex")),
		"weight":      testutil.ToFloat64(m.weightGrams.WithLabelValues("rex")),
		"medication":  testutil.ToFloat64(m.medicationToday.WithLabelValues("rex", "Apoquel")),
	}
	want := map[string]float64{"visits": 3, "unconfirmed": 1, "hours": 1.5, "weight": 4200, "medication": 2}
	for k, v := range want {
		if checks[k] != v {
			t.Fatalf("%s: expected %v, got %v", k, v, checks[k])
		}
	}

	// Sin peso, la serie desaparece.
	m.ObserveSnapshot(sensors.Snapshot{PetID: "rex"})
	if got := testutil.CollectAndCount(m.weightGrams); got != 0 {
		t.Fatalf("expected weight series removed, got %d", got)
	}
}

func TestStoreWiringAndHandler(t *testing.T) {
	m := New()
	bus := store.NewBus(1)
	m.WatchBus(bus)

	st := store.New(memorylessPersister{}, store.Options{Metrics: m, Bus: bus})
	if err := st.SaveDrink(context.Background(), records.DrinkRecord{
		Header: records.Header{PetID: "rex", Timestamp: time.Now().UTC()},
		Amount: records.AmountNormal,
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rr.Body)
	for _, want := range []string{
		`pet_health_store_persist_duration_seconds_count{category="drinks",op="append"} 1`,
		"pet_health_bus_subscribers 0",
	} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %q in metrics output", want)
		}
	}
}

type memorylessPersister struct{}

func (memorylessPersister) Load(ctx context.Context, key string) (store.Snapshot, error) {
	return store.Snapshot{Version: store.SnapshotVersion, Key: key}, nil
}

func (memorylessPersister) Save(context.Context, store.Snapshot) error { return nil }
