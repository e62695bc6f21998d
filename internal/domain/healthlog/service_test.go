package healthlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-health/internal/adapters/storage/memory"
	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/records"
	"pet-health/internal/domain/store"
)

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

type failingPersister struct{}

func (failingPersister) Load(ctx context.Context, key string) (store.Snapshot, error) {
	return store.Snapshot{Version: store.SnapshotVersion, Key: key}, nil
}

func (failingPersister) Save(ctx context.Context, snap store.Snapshot) error {
	return errors.New("disk full")
}

func newTestService(t *testing.T, p store.Persister) (*Service, *store.Store) {
	t.Helper()
	ctx := context.Background()

	petsSvc := pets.NewService(memory.NewPetRepo())
	if _, err := petsSvc.Seed(ctx, []pets.CreateInput{
		{
			ID:   "rex",
			Name: "Rex",
			Type: "dog",
			Medications: []pets.MedicationInput{
				{ID: "med-1", Name: "Apoquel", Dosage: "16", Unit: "mg", Frequency: "daily"},
			},
			LogCategories: []string{"grooming"},
		},
		{ID: "milo", Name: "Milo", Type: "cat"},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if p == nil {
		p = memory.NewSnapshotStore()
	}
	st := store.New(p, store.Options{})
	svc := NewService(st, petsSvc, nil)
	svc.now = func() time.Time { return testNow }
	return svc, st
}

func boolPtr(b bool) *bool { return &b }

func TestLogBathroomVisit_Defaults(t *testing.T) {
	svc, st := newTestService(t, nil)
	ctx := context.Background()

	poop, err := svc.LogBathroomVisit(ctx, VisitInput{PetSelector: "rex", DidPoop: true})
	if err != nil {
		t.Fatalf("log poop: %v", err)
	}
	v, ok := st.FindVisit(poop.VisitID)
	if !ok {
		t.Fatalf("visit not stored")
	}
	if len(v.PoopConsistencies) != 1 || v.PoopConsistencies[0] != records.PoopConsistencyNormal {
		t.Fatalf("expected [normal], got %v", v.PoopConsistencies)
	}
	if v.PoopColor == nil || *v.PoopColor != records.PoopColorBrown {
		t.Fatalf("expected brown, got %v", v.PoopColor)
	}
	if v.UrineAmount != nil {
		t.Fatalf("expected no urine amount, got %v", *v.UrineAmount)
	}
	if !v.Confirmed || !v.Timestamp.Equal(testNow) {
		t.Fatalf("expected confirmed visit at now, got %+v", v)
	}

	pee, err := svc.LogBathroomVisit(ctx, VisitInput{PetSelector: "Rex", DidPee: true})
	if err != nil {
		t.Fatalf("log pee: %v", err)
	}
	v, _ = st.FindVisit(pee.VisitID)
	if v.UrineAmount == nil || *v.UrineAmount != records.UrineAmountNormal {
		t.Fatalf("expected urine normal, got %v", v.UrineAmount)
	}
	if v.PoopColor != nil || len(v.PoopConsistencies) != 0 {
		t.Fatalf("expected no poop fields, got %+v", v)
	}
	if pee.PetName != "Rex" || pee.PetID != "rex" {
		t.Fatalf("unexpected result %+v", pee)
	}
}

func TestLogBathroomVisit_ExplicitValuesKept(t *testing.T) {
	svc, st := newTestService(t, nil)

	at := time.Date(2024, 6, 9, 8, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	res, err := svc.LogBathroomVisit(context.Background(), VisitInput{
		PetSelector:       "milo",
		DidPoop:           true,
		PoopConsistencies: []string{"soft", "diarrhea"},
		PoopColor:         "green",
		LoggedAt:          &at,
	})
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	v, _ := st.FindVisit(res.VisitID)
	if len(v.PoopConsistencies) != 2 || *v.PoopColor != records.PoopColorGreen {
		t.Fatalf("explicit values lost: %+v", v)
	}
	if v.Timestamp.Location() != time.UTC || !v.Timestamp.Equal(at) {
		t.Fatalf("expected UTC-normalised timestamp, got %v", v.Timestamp)
	}
}

func TestLogBathroomVisit_Validation(t *testing.T) {
	svc, st := newTestService(t, nil)
	ctx := context.Background()

	cases := []struct {
		name string
		in   VisitInput
		want error
	}{
		{"neither pee nor poop", VisitInput{PetSelector: "rex"}, ErrInvalidInput},
		{"confirmed without pet", VisitInput{DidPee: true}, ErrInvalidInput},
		{"confirmed unknown pet", VisitInput{PetSelector: "ghost", DidPee: true}, ErrNotFound},
		{"bad consistency", VisitInput{PetSelector: "rex", DidPoop: true, PoopConsistencies: []string{"liquid"}}, ErrInvalidInput},
		{"bad color", VisitInput{PetSelector: "rex", DidPoop: true, PoopColor: "purple"}, ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.LogBathroomVisit(ctx, tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if got := st.Pets(); len(got) != 0 {
		t.Fatalf("expected no state change, got pets %v", got)
	}
}

func TestLogBathroomVisit_UnknownBucket(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	noPet, err := svc.LogBathroomVisit(ctx, VisitInput{DidPee: true, Confirmed: boolPtr(false)})
	if err != nil {
		t.Fatalf("log without pet: %v", err)
	}
	ghost, err := svc.LogBathroomVisit(ctx, VisitInput{PetSelector: "ghost", Confirmed: boolPtr(false)})
	if err != nil {
		t.Fatalf("log unknown selector: %v", err)
	}
	if noPet.PetID != pets.UnknownPetID || ghost.PetID != pets.UnknownPetID {
		t.Fatalf("expected unknown bucket, got %q and %q", noPet.PetID, ghost.PetID)
	}

	unknown := svc.UnknownVisits()
	if len(unknown) != 2 {
		t.Fatalf("expected 2 unknown visits, got %d", len(unknown))
	}
	for _, v := range unknown {
		if v.Confirmed {
			t.Fatalf("unknown visit should be unconfirmed: %+v", v)
		}
	}
}

func TestConfirmThenReassign(t *testing.T) {
	svc, st := newTestService(t, nil)
	ctx := context.Background()

	a, err := svc.LogBathroomVisit(ctx, VisitInput{DidPee: true, Confirmed: boolPtr(false)})
	if err != nil {
		t.Fatalf("log: %v", err)
	}

	c, err := svc.ConfirmVisit(ctx, a.VisitID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if c.Visit == nil || !c.Visit.Confirmed || c.PetID != pets.UnknownPetID {
		t.Fatalf("unexpected confirm result %+v", c)
	}

	r, err := svc.ReassignVisit(ctx, a.VisitID, "Rex")
	if err != nil {
		t.Fatalf("reassign: %v", err)
	}
	if r.PetID != "rex" || r.PetName != "Rex" || !r.Visit.Confirmed {
		t.Fatalf("unexpected reassign result %+v", r)
	}
	if len(st.Visits(pets.UnknownPetID)) != 0 {
		t.Fatalf("unknown bucket should be empty")
	}
	if got := st.Visits("rex"); len(got) != 1 || got[0].VisitID != a.VisitID {
		t.Fatalf("expected visit under rex, got %+v", got)
	}
}

func TestReassignVisit_TargetMustResolve(t *testing.T) {
	svc, st := newTestService(t, nil)
	ctx := context.Background()

	a, _ := svc.LogBathroomVisit(ctx, VisitInput{DidPee: true, Confirmed: boolPtr(false)})

	if _, err := svc.ReassignVisit(ctx, a.VisitID, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.ReassignVisit(ctx, a.VisitID, " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if v, _ := st.FindVisit(a.VisitID); v.PetID != pets.UnknownPetID || v.Confirmed {
		t.Fatalf("visit should be untouched, got %+v", v)
	}
}

func TestVisitCorrections_NotFound(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()
	notes := "x"

	if _, err := svc.ConfirmVisit(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("confirm: expected not found, got %v", err)
	}
	if _, err := svc.ReassignVisit(ctx, "missing", "rex"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("reassign: expected not found, got %v", err)
	}
	if _, err := svc.DeleteVisit(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete: expected not found, got %v", err)
	}
	if _, err := svc.AmendVisit(ctx, "missing", AmendInput{Notes: &notes}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("amend: expected not found, got %v", err)
	}
}

func TestAmendVisit(t *testing.T) {
	svc, st := newTestService(t, nil)
	ctx := context.Background()

	a, _ := svc.LogBathroomVisit(ctx, VisitInput{PetSelector: "rex", DidPee: true, Confirmed: boolPtr(false)})

	if _, err := svc.AmendVisit(ctx, a.VisitID, AmendInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty amend, got %v", err)
	}

	poop := true
	color := "dark_brown"
	cs := []string{"hard"}
	res, err := svc.AmendVisit(ctx, a.VisitID, AmendInput{DidPoop: &poop, PoopColor: &color, PoopConsistencies: &cs})
	if err != nil {
		t.Fatalf("amend: %v", err)
	}
	v := res.Visit
	if !v.DidPoop || !v.DidPee || *v.PoopColor != records.PoopColorDarkBrown || v.PoopConsistencies[0] != records.PoopConsistencyHard {
		t.Fatalf("amend not applied: %+v", v)
	}
	if v.Confirmed {
		t.Fatalf("amend must not confirm")
	}

	bad := "purple"
	if _, err := svc.AmendVisit(ctx, a.VisitID, AmendInput{PoopColor: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid color, got %v", err)
	}
	if got, _ := st.FindVisit(a.VisitID); *got.PoopColor != records.PoopColorDarkBrown {
		t.Fatalf("invalid amend changed state: %+v", got)
	}
}

func TestDeleteVisit(t *testing.T) {
	svc, st := newTestService(t, nil)
	ctx := context.Background()

	a, _ := svc.LogBathroomVisit(ctx, VisitInput{PetSelector: "rex", DidPee: true})
	res, err := svc.DeleteVisit(ctx, a.VisitID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if res.PetID != "rex" || res.Visit != nil {
		t.Fatalf("unexpected delete result %+v", res)
	}
	if _, ok := st.FindVisit(a.VisitID); ok {
		t.Fatalf("visit still present")
	}
}

func TestLogMedication(t *testing.T) {
	svc, st := newTestService(t, nil)
	ctx := context.Background()

	if _, err := svc.LogMedication(ctx, MedicationInput{PetSelector: "rex", MedicationID: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected medication not found, got %v", err)
	}
	if _, err := svc.LogMedication(ctx, MedicationInput{PetSelector: "ghost", MedicationID: "med-1"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected pet not found, got %v", err)
	}

	res, err := svc.LogMedication(ctx, MedicationInput{PetSelector: "rex", MedicationID: "med-1"})
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if res.MedicationName != "Apoquel" || res.PetName != "Rex" || res.MedicationID != "med-1" {
		t.Fatalf("unexpected result %+v", res)
	}

	if _, err := svc.LogMedication(ctx, MedicationInput{PetSelector: "rex", MedicationID: "med-1", Dosage: "8"}); err != nil {
		t.Fatalf("log override: %v", err)
	}

	meds := st.Medications("rex")
	if len(meds) != 2 {
		t.Fatalf("expected 2 doses, got %d", len(meds))
	}
	if meds[0].Dosage != "16" || meds[0].Unit != "mg" {
		t.Fatalf("expected configured dosage, got %+v", meds[0])
	}
	if meds[1].Dosage != "8" || meds[1].Unit != "mg" {
		t.Fatalf("expected override for one dose only, got %+v", meds[1])
	}
}

func TestLogWeight_TrendDeltas(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	day0 := testNow.AddDate(0, 0, -35)
	day10 := day0.AddDate(0, 0, 10)
	day35 := day0.AddDate(0, 0, 35)

	first, err := svc.LogWeight(ctx, WeightInput{PetSelector: "rex", WeightGrams: 5000, LoggedAt: &day0})
	if err != nil {
		t.Fatalf("log day0: %v", err)
	}
	if first.Change7d != nil || first.Change30d != nil {
		t.Fatalf("single record must not yield deltas: %+v", first)
	}
	if _, err := svc.LogWeight(ctx, WeightInput{PetSelector: "rex", WeightGrams: 5300, LoggedAt: &day10}); err != nil {
		t.Fatalf("log day10: %v", err)
	}
	res, err := svc.LogWeight(ctx, WeightInput{PetSelector: "rex", WeightGrams: 5600, LoggedAt: &day35})
	if err != nil {
		t.Fatalf("log day35: %v", err)
	}
	if res.Change7d == nil || *res.Change7d != 300 {
		t.Fatalf("expected +300 for 7d, got %v", res.Change7d)
	}
	if res.Change30d == nil || *res.Change30d != 600 {
		t.Fatalf("expected +600 for 30d, got %v", res.Change30d)
	}
}

func TestLogWeight_Range(t *testing.T) {
	svc, _ := newTestService(t, nil)
	for _, g := range []int{0, 99, 50001} {
		if _, err := svc.LogWeight(context.Background(), WeightInput{PetSelector: "rex", WeightGrams: g}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("weight %d: expected invalid input, got %v", g, err)
		}
	}
}

func TestSimpleLogs_Defaults(t *testing.T) {
	svc, st := newTestService(t, nil)
	ctx := context.Background()

	if _, err := svc.LogDrink(ctx, DrinkInput{PetSelector: "milo"}); err != nil {
		t.Fatalf("drink: %v", err)
	}
	if _, err := svc.LogMeal(ctx, MealInput{PetSelector: "milo", Amount: "large", FoodType: "wet"}); err != nil {
		t.Fatalf("meal: %v", err)
	}
	if _, err := svc.LogThirst(ctx, LevelInput{PetSelector: "milo"}); err != nil {
		t.Fatalf("thirst: %v", err)
	}
	if _, err := svc.LogAppetite(ctx, LevelInput{PetSelector: "milo", Level: "lessened"}); err != nil {
		t.Fatalf("appetite: %v", err)
	}
	if _, err := svc.LogVomit(ctx, VomitInput{PetSelector: "milo"}); err != nil {
		t.Fatalf("vomit: %v", err)
	}
	res, err := svc.LogWellbeing(ctx, WellbeingInput{PetSelector: "milo", Score: "fair", Symptoms: []string{" lethargy "}})
	if err != nil {
		t.Fatalf("wellbeing: %v", err)
	}
	if res.PetName != "Milo" || res.Record.Category() != records.CategoryWellbeing {
		t.Fatalf("unexpected echo %+v", res)
	}

	r := st.Records("milo")
	if r.Drinks[0].Amount != records.AmountNormal || r.ThirstLevels[0].Level != records.LevelNormal {
		t.Fatalf("expected normal defaults, got %+v %+v", r.Drinks[0], r.ThirstLevels[0])
	}
	if r.Vomit[0].VomitType != records.VomitOther {
		t.Fatalf("expected vomit other, got %q", r.Vomit[0].VomitType)
	}
	if r.Wellbeing[0].Symptoms[0] != "lethargy" {
		t.Fatalf("expected trimmed symptom, got %v", r.Wellbeing[0].Symptoms)
	}

	if _, err := svc.LogWellbeing(ctx, WellbeingInput{PetSelector: "milo"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected score required, got %v", err)
	}
	if _, err := svc.LogDrink(ctx, DrinkInput{PetSelector: "milo", Amount: "huge"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
}

func TestLogGeneric_ConfiguredCategories(t *testing.T) {
	svc, st := newTestService(t, nil)
	ctx := context.Background()

	if _, err := svc.LogGeneric(ctx, GenericInput{PetSelector: "rex", Category: "training", Notes: "sit"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected unconfigured category rejected, got %v", err)
	}
	if _, err := svc.LogGeneric(ctx, GenericInput{PetSelector: "rex", Category: "grooming"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected notes required, got %v", err)
	}
	res, err := svc.LogGeneric(ctx, GenericInput{PetSelector: "rex", Category: "grooming", Notes: "brushed"})
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	g := res.Record.(records.GenericLog)
	if g.LogID == "" || g.Tag != "grooming" {
		t.Fatalf("unexpected generic log %+v", g)
	}

	// Sin categorías configuradas se acepta cualquiera.
	if _, err := svc.LogGeneric(ctx, GenericInput{PetSelector: "milo", Category: "vet", Notes: "checkup"}); err != nil {
		t.Fatalf("log milo: %v", err)
	}
	if len(st.GenericLogs("rex")) != 1 || len(st.GenericLogs("milo")) != 1 {
		t.Fatalf("unexpected generic logs")
	}
}

func TestPersistenceFailureSurfaces(t *testing.T) {
	svc, st := newTestService(t, failingPersister{})

	_, err := svc.LogBathroomVisit(context.Background(), VisitInput{PetSelector: "rex", DidPee: true})
	if !errors.Is(err, store.ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	// La memoria queda adelantada respecto del almacenamiento.
	if len(st.Visits("rex")) != 1 {
		t.Fatalf("expected in-memory visit after failed persist")
	}
}

func TestQueries_SortedDesc(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	for i, pet := range []string{"rex", "milo", "rex"} {
		at := testNow.Add(time.Duration(i) * time.Hour)
		if _, err := svc.LogBathroomVisit(ctx, VisitInput{PetSelector: pet, DidPee: true, LoggedAt: &at}); err != nil {
			t.Fatalf("log: %v", err)
		}
	}
	// Registro retroactivo: se inserta último pero es el más viejo.
	old := testNow.Add(-time.Hour)
	if _, err := svc.LogBathroomVisit(ctx, VisitInput{PetSelector: "rex", DidPee: true, LoggedAt: &old}); err != nil {
		t.Fatalf("log old: %v", err)
	}

	all := svc.ListVisits("")
	if len(all) != 4 {
		t.Fatalf("expected 4 visits, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Timestamp.After(all[i-1].Timestamp) {
			t.Fatalf("visits not sorted desc: %v then %v", all[i-1].Timestamp, all[i].Timestamp)
		}
	}
	if rex := svc.ListVisits("rex"); len(rex) != 3 || !rex[2].Timestamp.Equal(old) {
		t.Fatalf("unexpected rex visits %+v", rex)
	}

	dump := svc.Dump()
	if len(dump) != 2 || len(dump["rex"].Visits) != 3 {
		t.Fatalf("unexpected dump %+v", dump)
	}
}
