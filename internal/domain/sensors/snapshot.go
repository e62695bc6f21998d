// Package sensors deriva los valores que se exponen por mascota (conteos,
// últimos eventos, tendencias de peso) a partir de los registros del store.
package sensors

import (
	"sort"
	"strings"
	"time"

	"pet-health/internal/domain/aggregates"
	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/records"
	"pet-health/internal/domain/store"
)

// ConsistencySeparator une varias consistencias de una misma visita (en el orden cargado).
const ConsistencySeparator = " → "

type PendingVisit struct {
	VisitID           string    `json:"visit_id"`
	Timestamp         time.Time `json:"timestamp"`
	DidPee            bool      `json:"did_pee"`
	DidPoop           bool      `json:"did_poop"`
	PoopConsistencies []string  `json:"poop_consistencies,omitempty"`
	PoopColor         string    `json:"poop_color,omitempty"`
	UrineAmount       string    `json:"urine_amount,omitempty"`
	Notes             string    `json:"notes,omitempty"`
}

// MedicationSensor resume las dosis de un medicamento configurado.
type MedicationSensor struct {
	MedicationID string     `json:"medication_id"`
	Name         string     `json:"medication_name"`
	Active       bool       `json:"active"`
	LastDose     *time.Time `json:"last_dose,omitempty"`
	Dosage       string     `json:"dosage,omitempty"`
	Unit         string     `json:"unit,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	DosesToday   int        `json:"doses_today"`
}

// Snapshot es el estado de todos los sensores de una mascota en un instante.
// Los punteros nil significan "sin dato".
type Snapshot struct {
	PetID      string    `json:"pet_id"`
	PetName    string    `json:"pet_name"`
	ComputedAt time.Time `json:"computed_at"`
	Revision   uint64    `json:"revision"`

	LastVisit           *time.Time     `json:"last_bathroom_visit,omitempty"`
	VisitsToday         int            `json:"daily_visit_count"`
	VisitsLast7Days     int            `json:"weekly_visit_count"`
	PeeToday            int            `json:"daily_pee_count"`
	PoopToday           int            `json:"daily_poop_count"`
	HoursSinceLastVisit *float64       `json:"hours_since_last_visit,omitempty"`
	LastPoopConsistency string         `json:"last_poop_consistency,omitempty"`
	LastPoopColor       string         `json:"last_poop_color,omitempty"`
	LastUrineAmount     string         `json:"last_urine_amount,omitempty"`
	UnconfirmedVisits   []PendingVisit `json:"unconfirmed_visits"`

	Medications []MedicationSensor `json:"medications"`

	LastDrink       *time.Time `json:"last_drink,omitempty"`
	DrinksToday     int        `json:"daily_drink_count"`
	LastDrinkAmount string     `json:"last_drink_amount,omitempty"`

	LastMeal       *time.Time `json:"last_meal,omitempty"`
	MealsToday     int        `json:"daily_meal_count"`
	LastMealAmount string     `json:"last_meal_amount,omitempty"`

	LastWellbeing  *time.Time `json:"last_wellbeing_assessment,omitempty"`
	WellbeingScore string     `json:"current_wellbeing_score,omitempty"`

	LastThirst  *time.Time `json:"last_thirst_level,omitempty"`
	ThirstLevel string     `json:"current_thirst_level,omitempty"`

	LastAppetite  *time.Time `json:"last_appetite_level,omitempty"`
	AppetiteLevel string     `json:"current_appetite_level,omitempty"`

	LastWeight         *time.Time `json:"last_weight,omitempty"`
	CurrentWeightGrams *int       `json:"current_weight,omitempty"`
	WeightChange7d     *int       `json:"weight_change_7d,omitempty"`
	WeightChange30d    *int       `json:"weight_change_30d,omitempty"`

	LastVomit       *time.Time `json:"last_vomit,omitempty"`
	LastVomitType   string     `json:"last_vomit_type,omitempty"`
	VomitsToday     int        `json:"daily_vomit_count"`
	VomitsLast7Days int        `json:"weekly_vomit_count"`
}

// Compute arma el Snapshot. "Hoy" es el día local de now (según su Location).
// Los valores "actuales" (nivel, puntaje, tipo) siguen el orden de inserción;
// los timestamps "último" usan el máximo.
func Compute(p pets.Pet, r store.PetRecords, now time.Time) Snapshot {
	s := Snapshot{
		PetID:             p.ID,
		PetName:           p.Name,
		ComputedAt:        now,
		UnconfirmedVisits: []PendingVisit{},
		Medications:       []MedicationSensor{},
	}

	computeVisits(&s, r.Visits, now)
	computeMedications(&s, p.Medications, r.Medications, now)

	s.LastDrink = latestTime(r.Drinks)
	s.DrinksToday = aggregates.CountToday(r.Drinks, now)
	if d, ok := last(r.Drinks); ok {
		s.LastDrinkAmount = string(d.Amount)
	}

	s.LastMeal = latestTime(r.Meals)
	s.MealsToday = aggregates.CountToday(r.Meals, now)
	if m, ok := last(r.Meals); ok {
		s.LastMealAmount = string(m.Amount)
	}

	s.LastWellbeing = latestTime(r.Wellbeing)
	if w, ok := last(r.Wellbeing); ok {
		s.WellbeingScore = string(w.Score)
	}

	s.LastThirst = latestTime(r.ThirstLevels)
	if t, ok := last(r.ThirstLevels); ok {
		s.ThirstLevel = string(t.Level)
	}

	s.LastAppetite = latestTime(r.AppetiteLevels)
	if a, ok := last(r.AppetiteLevels); ok {
		s.AppetiteLevel = string(a.Level)
	}

	computeWeight(&s, r.Weight)

	s.LastVomit = latestTime(r.Vomit)
	s.VomitsToday = aggregates.CountToday(r.Vomit, now)
	s.VomitsLast7Days = aggregates.CountLastNDays(r.Vomit, now, 7)
	if v, ok := last(r.Vomit); ok {
		s.LastVomitType = string(v.VomitType)
	}

	return s
}

func computeVisits(s *Snapshot, visits []records.BathroomVisit, now time.Time) {
	s.LastVisit = latestTime(visits)
	if h, ok := aggregates.HoursSinceLast(visits, now); ok {
		s.HoursSinceLastVisit = &h
	}

	today := aggregates.Since(visits, aggregates.StartOfDay(now))
	s.VisitsToday = len(today)
	for _, v := range today {
		if v.DidPee {
			s.PeeToday++
		}
		if v.DidPoop {
			s.PoopToday++
		}
	}
	s.VisitsLast7Days = aggregates.CountLastNDays(visits, now, 7)

	if v, ok := aggregates.MostRecentMatching(visits, func(v records.BathroomVisit) bool {
		return len(v.PoopConsistencies) > 0
	}); ok {
		parts := make([]string, 0, len(v.PoopConsistencies))
		for _, c := range v.PoopConsistencies {
			parts = append(parts, string(c))
		}
		s.LastPoopConsistency = strings.Join(parts, ConsistencySeparator)
	}
	if v, ok := aggregates.MostRecentMatching(visits, func(v records.BathroomVisit) bool {
		return v.PoopColor != nil
	}); ok {
		s.LastPoopColor = string(*v.PoopColor)
	}
	if v, ok := aggregates.MostRecentMatching(visits, func(v records.BathroomVisit) bool {
		return v.UrineAmount != nil
	}); ok {
		s.LastUrineAmount = string(*v.UrineAmount)
	}

	for _, v := range visits {
		if v.Confirmed {
			continue
		}
		pv := PendingVisit{
			VisitID:   v.VisitID,
			Timestamp: v.Timestamp,
			DidPee:    v.DidPee,
			DidPoop:   v.DidPoop,
			Notes:     v.Notes,
		}
		for _, c := range v.PoopConsistencies {
			pv.PoopConsistencies = append(pv.PoopConsistencies, string(c))
		}
		if v.PoopColor != nil {
			pv.PoopColor = string(*v.PoopColor)
		}
		if v.UrineAmount != nil {
			pv.UrineAmount = string(*v.UrineAmount)
		}
		s.UnconfirmedVisits = append(s.UnconfirmedVisits, pv)
	}
	// Pendientes: la más antigua primero.
	sort.SliceStable(s.UnconfirmedVisits, func(i, j int) bool {
		return s.UnconfirmedVisits[i].Timestamp.Before(s.UnconfirmedVisits[j].Timestamp)
	})
}

// computeMedications empareja dosis con medicamentos configurados por nombre.
func computeMedications(s *Snapshot, configured []pets.Medication, doses []records.MedicationRecord, now time.Time) {
	for _, m := range configured {
		var matching []records.MedicationRecord
		for _, d := range doses {
			if d.MedicationName == m.Name {
				matching = append(matching, d)
			}
		}

		ms := MedicationSensor{
			MedicationID: m.ID,
			Name:         m.Name,
			Active:       m.Active,
			DosesToday:   aggregates.CountToday(matching, now),
		}
		if d, ok := aggregates.Latest(matching); ok {
			ts := d.Timestamp
			ms.LastDose = &ts
			ms.Dosage = d.Dosage
			ms.Unit = d.Unit
			ms.Notes = d.Notes
		}
		s.Medications = append(s.Medications, ms)
	}
}

func computeWeight(s *Snapshot, weights []records.WeightRecord) {
	s.LastWeight = latestTime(weights)
	if w, ok := last(weights); ok {
		g := w.WeightGrams
		s.CurrentWeightGrams = &g
	}

	sorted := aggregates.SortByTimeDesc(weights)
	grams := func(w records.WeightRecord) int { return w.WeightGrams }
	if d, ok := aggregates.TrendDelta(sorted, 7, grams); ok {
		s.WeightChange7d = &d
	}
	if d, ok := aggregates.TrendDelta(sorted, 30, grams); ok {
		s.WeightChange30d = &d
	}
}

func latestTime[R records.Record](recs []R) *time.Time {
	r, ok := aggregates.Latest(recs)
	if !ok {
		return nil
	}
	t := r.OccurredAt()
	return &t
}

// last es el último insertado.
func last[R records.Record](recs []R) (R, bool) {
	return aggregates.MostRecentMatching(recs, func(R) bool { return true })
}
