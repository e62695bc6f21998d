package records

import (
	"reflect"
	"testing"
	"time"
)

func TestVisitPatch_ApplySparse(t *testing.T) {
	v := BathroomVisit{
		Header:    Header{PetID: "a", Timestamp: time.Now().UTC()},
		VisitID:   "v",
		DidPee:    true,
		Confirmed: false,
		Notes:     "keep",
	}

	poop := true
	color := PoopColorBlack
	cons := []PoopConsistency{PoopConsistencyHard}
	p := VisitPatch{DidPoop: &poop, PoopColor: &color, PoopConsistencies: &cons}

	if p.Apply(&v) {
		t.Fatalf("expected pet unchanged")
	}
	if !v.DidPee || !v.DidPoop {
		t.Fatalf("expected pee kept and poop set, got %+v", v)
	}
	if v.Notes != "keep" || v.Confirmed {
		t.Fatalf("expected untouched fields preserved, got %+v", v)
	}
	if v.PoopColor == nil || *v.PoopColor != PoopColorBlack {
		t.Fatalf("expected color black")
	}

	cons[0] = PoopConsistencySoft
	if v.PoopConsistencies[0] != PoopConsistencyHard {
		t.Fatalf("expected patch slice to be copied")
	}

	want := []string{"did_poop", "poop_consistencies", "poop_color"}
	if got := p.Fields(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected fields %v, got %v", want, got)
	}
}

func TestVisitPatch_ReassignConfirms(t *testing.T) {
	v := BathroomVisit{Header: Header{PetID: "unknown"}, Confirmed: false}

	if !ReassignPatch("b").Apply(&v) {
		t.Fatalf("expected pet change")
	}
	if v.PetID != "b" || !v.Confirmed {
		t.Fatalf("expected reassigned+confirmed, got %+v", v)
	}

	// Reasignar a la misma mascota no cuenta como cambio.
	if ReassignPatch("b").Apply(&v) {
		t.Fatalf("expected no pet change on same target")
	}
}

func TestVisitPatch_Empty(t *testing.T) {
	if !(VisitPatch{}).Empty() {
		t.Fatalf("expected zero patch to be empty")
	}
	if ConfirmPatch().Empty() {
		t.Fatalf("expected confirm patch to be non-empty")
	}

	v := BathroomVisit{Confirmed: true}
	VisitPatch{}.Apply(&v)
	if !v.Confirmed {
		t.Fatalf("confirmation must never be reverted")
	}
}
