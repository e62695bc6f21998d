// Package storagetest contiene la batería común que todo store.Persister debe pasar.
package storagetest

import (
	"context"
	"testing"
	"time"

	"pet-health/internal/domain/records"
	"pet-health/internal/domain/store"
)

// Run verifica: key inexistente = snapshot vacío, round-trip, upsert y
// un Store completo recargado sobre el mismo persister.
func Run(t *testing.T, p store.Persister) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		snap, err := p.Load(ctx, "pet_health_missing")
		if err != nil {
			t.Fatalf("load missing: %v", err)
		}
		if len(snap.Data) != 0 {
			t.Fatalf("expected empty data, got %v", snap.Data)
		}
	})

	t.Run("save then load", func(t *testing.T) {
		key := records.CategoryVomit.StorageKey()
		first := store.Snapshot{
			Version: store.SnapshotVersion,
			Key:     key,
			Data: map[string][]records.Fields{
				"rex": {{"pet_id": "rex", "timestamp": "2024-06-01T09:00:00Z", "vomit_type": "bile"}},
			},
		}
		if err := p.Save(ctx, first); err != nil {
			t.Fatalf("save: %v", err)
		}

		second := first
		second.Data = map[string][]records.Fields{
			"milo": {{"pet_id": "milo", "timestamp": "2024-06-02T09:00:00Z", "vomit_type": "food"}},
		}
		if err := p.Save(ctx, second); err != nil {
			t.Fatalf("overwrite: %v", err)
		}

		got, err := p.Load(ctx, key)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if got.Key != key || got.Version != store.SnapshotVersion {
			t.Fatalf("unexpected envelope %+v", got)
		}
		if _, ok := got.Data["rex"]; ok {
			t.Fatalf("expected full rewrite to drop rex")
		}
		v, err := records.DecodeVomit(got.Data["milo"][0])
		if err != nil || v.VomitType != records.VomitFood {
			t.Fatalf("expected milo food vomit, got %+v err=%v", v, err)
		}
	})

	t.Run("store reload", func(t *testing.T) {
		s := store.New(p, store.Options{})
		ts := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)
		if err := s.SaveWeight(ctx, records.WeightRecord{
			Header:      records.Header{PetID: "rex", Timestamp: ts},
			WeightGrams: 4200,
		}); err != nil {
			t.Fatalf("save weight: %v", err)
		}
		if err := s.SaveVisit(ctx, records.BathroomVisit{
			Header:  records.Header{PetID: "rex", Timestamp: ts},
			VisitID: "v-1",
			DidPee:  true,
		}); err != nil {
			t.Fatalf("save visit: %v", err)
		}

		fresh := store.New(p, store.Options{})
		if err := fresh.Load(ctx); err != nil {
			t.Fatalf("reload: %v", err)
		}
		w := fresh.Weights("rex")
		if len(w) != 1 || w[0].WeightGrams != 4200 || !w[0].Timestamp.Equal(ts) {
			t.Fatalf("expected weight after reload, got %+v", w)
		}
		v, ok := fresh.FindVisit("v-1")
		if !ok || v.Confirmed {
			t.Fatalf("expected unconfirmed visit v-1 after reload, got %+v ok=%v", v, ok)
		}
	})
}
