package records

// VisitPatch describe una corrección parcial de una visita.
// Punteros: nil = no tocar.
type VisitPatch struct {
	PetID *string

	// Solo puede pasar de false a true.
	Confirm bool

	DidPee            *bool
	DidPoop           *bool
	PoopConsistencies *[]PoopConsistency
	PoopColor         *PoopColor
	UrineAmount       *UrineAmount
	Notes             *string
}

// ConfirmPatch marca la visita como confirmada.
func ConfirmPatch() VisitPatch {
	return VisitPatch{Confirm: true}
}

// ReassignPatch mueve la visita a otra mascota y la confirma.
func ReassignPatch(petID string) VisitPatch {
	return VisitPatch{PetID: &petID, Confirm: true}
}

// Empty indica que el patch no cambia nada.
func (p VisitPatch) Empty() bool {
	return len(p.Fields()) == 0
}

// Fields devuelve los nombres de campo (serializados) que el patch toca.
func (p VisitPatch) Fields() []string {
	out := make([]string, 0, 8)
	if p.PetID != nil {
		out = append(out, "pet_id")
	}
	if p.Confirm {
		out = append(out, "confirmed")
	}
	if p.DidPee != nil {
		out = append(out, "did_pee")
	}
	if p.DidPoop != nil {
		out = append(out, "did_poop")
	}
	if p.PoopConsistencies != nil {
		out = append(out, "poop_consistencies")
	}
	if p.PoopColor != nil {
		out = append(out, "poop_color")
	}
	if p.UrineAmount != nil {
		out = append(out, "urine_amount")
	}
	if p.Notes != nil {
		out = append(out, "notes")
	}
	return out
}

// Apply modifica v en el lugar. Devuelve true si cambió la mascota.
func (p VisitPatch) Apply(v *BathroomVisit) (petChanged bool) {
	if p.PetID != nil && *p.PetID != v.PetID {
		v.PetID = *p.PetID
		petChanged = true
	}
	if p.Confirm {
		v.Confirmed = true
	}
	if p.DidPee != nil {
		v.DidPee = *p.DidPee
	}
	if p.DidPoop != nil {
		v.DidPoop = *p.DidPoop
	}
	if p.PoopConsistencies != nil {
		v.PoopConsistencies = append([]PoopConsistency(nil), (*p.PoopConsistencies)...)
	}
	if p.PoopColor != nil {
		c := *p.PoopColor
		v.PoopColor = &c
	}
	if p.UrineAmount != nil {
		a := *p.UrineAmount
		v.UrineAmount = &a
	}
	if p.Notes != nil {
		v.Notes = *p.Notes
	}
	return petChanged
}
