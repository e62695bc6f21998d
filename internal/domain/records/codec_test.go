package records

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"
)

func sampleRecords(ts time.Time) []Record {
	color := PoopColorDarkBrown
	urine := UrineAmountMoreThanUsual
	h := Header{PetID: "pet-1", Timestamp: ts}

	return []Record{
		BathroomVisit{
			Header:            h,
			VisitID:           "v-1",
			DidPee:            true,
			DidPoop:           true,
			Confirmed:         false,
			PoopConsistencies: []PoopConsistency{PoopConsistencySoft, PoopConsistencyNormal},
			PoopColor:         &color,
			UrineAmount:       &urine,
			Notes:             "after breakfast",
		},
		MedicationRecord{Header: h, MedicationName: "Apoquel", Dosage: "5.4", Unit: "mg"},
		DrinkRecord{Header: h, Amount: AmountLarge},
		MealRecord{Header: h, Amount: AmountSmall, FoodType: "wet"},
		ThirstLevelRecord{Header: h, Level: LevelIncreased},
		AppetiteLevelRecord{Header: h, Level: LevelLessened, Notes: "picky"},
		WellbeingRecord{Header: h, Score: WellbeingFair, Symptoms: []string{"lethargy"}},
		WeightRecord{Header: h, WeightGrams: 4200},
		VomitRecord{Header: h, VomitType: VomitHairball},
		GenericLog{Header: h, LogID: "l-1", Tag: "grooming", Notes: "brushed"},
	}
}

func TestCodec_RoundTripEveryCategory(t *testing.T) {
	ts := time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)
	recs := sampleRecords(ts)

	seen := map[Category]bool{}
	for _, rec := range recs {
		f, err := Encode(rec)
		if err != nil {
			t.Fatalf("encode %s: %v", rec.Category(), err)
		}

		// Pasar por JSON para simular lo que hace un persister real.
		b, err := json.Marshal(f)
		if err != nil {
			t.Fatalf("marshal %s: %v", rec.Category(), err)
		}
		var back Fields
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", rec.Category(), err)
		}

		got, err := Decode(rec.Category(), back)
		if err != nil {
			t.Fatalf("decode %s: %v", rec.Category(), err)
		}
		if !got.OccurredAt().Equal(ts) {
			t.Fatalf("%s: expected timestamp %v, got %v", rec.Category(), ts, got.OccurredAt())
		}
		// Igualar la Location para comparar el resto con DeepEqual.
		if !reflect.DeepEqual(normalize(got), normalize(rec)) {
			t.Fatalf("%s: round trip mismatch\nwant %#v\ngot  %#v", rec.Category(), rec, got)
		}
		seen[rec.Category()] = true
	}

	for _, c := range Categories() {
		if !seen[c] {
			t.Fatalf("category %s not covered by round trip", c)
		}
	}
}

func TestDecodeVisit_Defaults(t *testing.T) {
	v, err := DecodeVisit(Fields{
		"pet_id":    "pet-1",
		"timestamp": "2024-03-10T08:30:00",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.VisitID == "" {
		t.Fatalf("expected synthesized visit_id")
	}
	if !v.Confirmed {
		t.Fatalf("expected confirmed to default to true")
	}
	if v.Timestamp.Location() != time.UTC {
		t.Fatalf("expected zone-less timestamp read as UTC, got %v", v.Timestamp.Location())
	}
	if v.PoopColor != nil || v.UrineAmount != nil {
		t.Fatalf("expected nil optional enums")
	}
}

func TestDecodeVisit_LegacyVisitType(t *testing.T) {
	cases := []struct {
		kind     string
		pee, poo bool
	}{
		{"pee", true, false},
		{"poop", false, true},
		{"both", true, true},
		{"BOTH", true, true},
	}

	for _, tc := range cases {
		v, err := DecodeVisit(Fields{
			"pet_id":     "pet-1",
			"timestamp":  "2024-03-10T08:30:00+00:00",
			"visit_type": tc.kind,
			"did_pee":    false,
		})
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", tc.kind, err)
		}
		if v.DidPee != tc.pee || v.DidPoop != tc.poo {
			t.Fatalf("%s: expected pee=%v poop=%v, got pee=%v poop=%v", tc.kind, tc.pee, tc.poo, v.DidPee, v.DidPoop)
		}
	}
}

func TestDecodeVisit_MissingIDsAreUnique(t *testing.T) {
	f := Fields{"pet_id": "pet-1", "timestamp": "2024-03-10T08:30:00Z"}
	a, _ := DecodeVisit(f)
	b, _ := DecodeVisit(f)
	if a.VisitID == b.VisitID {
		t.Fatalf("expected distinct synthesized ids, got %s twice", a.VisitID)
	}

	g, err := DecodeGenericLog(Fields{"pet_id": "pet-1", "timestamp": "2024-03-10T08:30:00Z", "category": "x", "notes": "y"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if g.LogID == "" {
		t.Fatalf("expected synthesized log_id")
	}
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		cat  Category
		f    Fields
	}{
		{"missing pet", CategoryDrinks, Fields{"timestamp": "2024-03-10T08:30:00Z"}},
		{"missing timestamp", CategoryDrinks, Fields{"pet_id": "p"}},
		{"bad timestamp", CategoryDrinks, Fields{"pet_id": "p", "timestamp": "yesterday"}},
		{"missing weight", CategoryWeight, Fields{"pet_id": "p", "timestamp": "2024-03-10T08:30:00Z"}},
		{"fractional weight", CategoryWeight, Fields{"pet_id": "p", "timestamp": "2024-03-10T08:30:00Z", "weight_grams": 10.5}},
		{"missing medication", CategoryMedications, Fields{"pet_id": "p", "timestamp": "2024-03-10T08:30:00Z"}},
		{"unknown category", Category("naps"), Fields{"pet_id": "p", "timestamp": "2024-03-10T08:30:00Z"}},
	}

	for _, tc := range cases {
		if _, err := Decode(tc.cat, tc.f); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: expected ErrMalformed, got %v", tc.name, err)
		}
	}
}

func TestDecodeWeight_JSONNumber(t *testing.T) {
	w, err := DecodeWeight(Fields{
		"pet_id":       "p",
		"timestamp":    "2024-03-10T08:30:00Z",
		"weight_grams": json.Number("4350"),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if w.WeightGrams != 4350 {
		t.Fatalf("expected 4350, got %d", w.WeightGrams)
	}
}

func TestEncode_OptionalStringsAsNull(t *testing.T) {
	f, err := Encode(MedicationRecord{
		Header:         Header{PetID: "p", Timestamp: time.Now().UTC()},
		MedicationName: "Apoquel",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if f["dosage"] != nil || f["reason"] != nil {
		t.Fatalf("expected empty optional strings to encode as nil, got %#v", f)
	}
}

func normalize(r Record) Record {
	switch v := r.(type) {
	case BathroomVisit:
		v.Timestamp = v.Timestamp.UTC()
		return v
	case MedicationRecord:
		v.Timestamp = v.Timestamp.UTC()
		return v
	case DrinkRecord:
		v.Timestamp = v.Timestamp.UTC()
		return v
	case MealRecord:
		v.Timestamp = v.Timestamp.UTC()
		return v
	case ThirstLevelRecord:
		v.Timestamp = v.Timestamp.UTC()
		return v
	case AppetiteLevelRecord:
		v.Timestamp = v.Timestamp.UTC()
		return v
	case WellbeingRecord:
		v.Timestamp = v.Timestamp.UTC()
		return v
	case WeightRecord:
		v.Timestamp = v.Timestamp.UTC()
		return v
	case VomitRecord:
		v.Timestamp = v.Timestamp.UTC()
		return v
	case GenericLog:
		v.Timestamp = v.Timestamp.UTC()
		return v
	}
	return r
}
