package store

import (
	"context"
	"errors"
	"slices"
	"sort"
	"time"

	"pet-health/internal/domain/records"
	"pet-health/internal/platform/logger"
)

type Options struct {
	Logger  logger.Logger
	Metrics Metrics
	// Timeout por operación de persistencia (0 = sin límite).
	Timeout time.Duration
	Bus     *Bus
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logger.NewNop()
	}
	if o.Metrics == nil {
		o.Metrics = nopMetrics{}
	}
	if o.Bus == nil {
		o.Bus = NewBus(0)
	}
	return o
}

// Store agrupa las diez categorías y notifica por el Bus después de cada mutación.
type Store struct {
	visits      *CategoryStore[records.BathroomVisit]
	medications *CategoryStore[records.MedicationRecord]
	drinks      *CategoryStore[records.DrinkRecord]
	meals       *CategoryStore[records.MealRecord]
	thirst      *CategoryStore[records.ThirstLevelRecord]
	appetite    *CategoryStore[records.AppetiteLevelRecord]
	wellbeing   *CategoryStore[records.WellbeingRecord]
	weight      *CategoryStore[records.WeightRecord]
	vomit       *CategoryStore[records.VomitRecord]
	generic     *CategoryStore[records.GenericLog]

	bus *Bus
	log logger.Logger
}

func New(p Persister, opts Options) *Store {
	opts = opts.withDefaults()
	return &Store{
		visits:      NewCategoryStore(records.CategoryVisits, records.DecodeVisit, p, opts),
		medications: NewCategoryStore(records.CategoryMedications, records.DecodeMedication, p, opts),
		drinks:      NewCategoryStore(records.CategoryDrinks, records.DecodeDrink, p, opts),
		meals:       NewCategoryStore(records.CategoryMeals, records.DecodeMeal, p, opts),
		thirst:      NewCategoryStore(records.CategoryThirstLevels, records.DecodeThirstLevel, p, opts),
		appetite:    NewCategoryStore(records.CategoryAppetiteLevels, records.DecodeAppetiteLevel, p, opts),
		wellbeing:   NewCategoryStore(records.CategoryWellbeing, records.DecodeWellbeing, p, opts),
		weight:      NewCategoryStore(records.CategoryWeight, records.DecodeWeight, p, opts),
		vomit:       NewCategoryStore(records.CategoryVomit, records.DecodeVomit, p, opts),
		generic:     NewCategoryStore(records.CategoryGenericLogs, records.DecodeGenericLog, p, opts),
		bus:         opts.Bus,
		log:         opts.Logger,
	}
}

func (s *Store) Bus() *Bus { return s.bus }

// Load carga todas las categorías. Se detiene en el primer error.
func (s *Store) Load(ctx context.Context) error {
	loaders := []interface {
		Load(context.Context) error
	}{
		s.visits, s.medications, s.drinks, s.meals, s.thirst,
		s.appetite, s.wellbeing, s.weight, s.vomit, s.generic,
	}
	for _, l := range loaders {
		if err := l.Load(ctx); err != nil {
			return err
		}
	}
	s.log.Info("store loaded", map[string]any{"pets": len(s.Pets())})
	return nil
}

func (s *Store) SaveVisit(ctx context.Context, v records.BathroomVisit) error {
	return save(ctx, s, s.visits, v)
}

func (s *Store) SaveMedication(ctx context.Context, m records.MedicationRecord) error {
	return save(ctx, s, s.medications, m)
}

func (s *Store) SaveDrink(ctx context.Context, d records.DrinkRecord) error {
	return save(ctx, s, s.drinks, d)
}

func (s *Store) SaveMeal(ctx context.Context, m records.MealRecord) error {
	return save(ctx, s, s.meals, m)
}

func (s *Store) SaveThirstLevel(ctx context.Context, t records.ThirstLevelRecord) error {
	return save(ctx, s, s.thirst, t)
}

func (s *Store) SaveAppetiteLevel(ctx context.Context, a records.AppetiteLevelRecord) error {
	return save(ctx, s, s.appetite, a)
}

func (s *Store) SaveWellbeing(ctx context.Context, w records.WellbeingRecord) error {
	return save(ctx, s, s.wellbeing, w)
}

func (s *Store) SaveWeight(ctx context.Context, w records.WeightRecord) error {
	return save(ctx, s, s.weight, w)
}

func (s *Store) SaveVomit(ctx context.Context, v records.VomitRecord) error {
	return save(ctx, s, s.vomit, v)
}

func (s *Store) SaveGenericLog(ctx context.Context, g records.GenericLog) error {
	return save(ctx, s, s.generic, g)
}

func save[R records.Record](ctx context.Context, s *Store, cs *CategoryStore[R], rec R) error {
	err := cs.Append(ctx, rec)

	fields := map[string]any{
		"pet_id":    rec.Pet(),
		"category":  string(rec.Category()),
		"record_id": recordID(rec),
	}
	if err != nil {
		fields["err"] = err
		s.log.Error("record save failed", fields)
	} else {
		s.log.Info("record saved", fields)
	}

	// Se notifica también si el Save falló: la memoria ya cambió.
	s.notify(rec.Category(), rec.Pet(), ChangeSaved, recordID(rec))
	return err
}

func (s *Store) FindVisit(visitID string) (records.BathroomVisit, bool) {
	v, ok := s.visits.Find(func(v records.BathroomVisit) bool { return v.VisitID == visitID })
	if !ok {
		return records.BathroomVisit{}, false
	}
	return v.Clone(), true
}

// UpdateVisit aplica el patch en memoria (moviendo la visita si cambia de mascota),
// persiste una sola vez y notifica a la mascota anterior y a la nueva.
func (s *Store) UpdateVisit(ctx context.Context, visitID string, p records.VisitPatch) (records.BathroomVisit, error) {
	var (
		oldPet  string
		updated records.BathroomVisit
		moved   bool
	)

	found, err := s.visits.mutate(ctx, "update", func(data map[string][]records.BathroomVisit) bool {
		for petID, list := range data {
			i := slices.IndexFunc(list, func(v records.BathroomVisit) bool { return v.VisitID == visitID })
			if i < 0 {
				continue
			}

			v := list[i]
			oldPet = petID
			moved = p.Apply(&v)
			if moved {
				data[petID] = slices.Delete(list, i, i+1)
				data[v.PetID] = append(data[v.PetID], v)
			} else {
				list[i] = v
			}
			updated = v
			return true
		}
		return false
	})
	if !found {
		return records.BathroomVisit{}, ErrNotFound
	}

	fields := map[string]any{
		"visit_id": visitID,
		"pet_id":   updated.PetID,
		"fields":   p.Fields(),
	}
	if moved {
		fields["from_pet_id"] = oldPet
	}
	if err != nil {
		fields["err"] = err
		s.log.Error("visit update failed", fields)
	} else {
		s.log.Info("visit updated", fields)
	}

	if moved {
		s.notify(records.CategoryVisits, oldPet, ChangeMoved, visitID)
		s.notify(records.CategoryVisits, updated.PetID, ChangeMoved, visitID)
	} else {
		s.notify(records.CategoryVisits, updated.PetID, ChangeUpdated, visitID)
	}
	return updated.Clone(), err
}

func (s *Store) DeleteVisit(ctx context.Context, visitID string) error {
	var petID string

	found, err := s.visits.mutate(ctx, "delete", func(data map[string][]records.BathroomVisit) bool {
		for pid, list := range data {
			i := slices.IndexFunc(list, func(v records.BathroomVisit) bool { return v.VisitID == visitID })
			if i < 0 {
				continue
			}
			data[pid] = slices.Delete(list, i, i+1)
			petID = pid
			return true
		}
		return false
	})
	if !found {
		return ErrNotFound
	}

	fields := map[string]any{"visit_id": visitID, "pet_id": petID}
	if err != nil {
		fields["err"] = err
		s.log.Error("visit delete failed", fields)
	} else {
		s.log.Info("visit deleted", fields)
	}

	s.notify(records.CategoryVisits, petID, ChangeDeleted, visitID)
	return err
}

func (s *Store) Visits(petID string) []records.BathroomVisit {
	return s.visits.Query(petID)
}

func (s *Store) Medications(petID string) []records.MedicationRecord {
	return s.medications.Query(petID)
}

func (s *Store) Drinks(petID string) []records.DrinkRecord {
	return s.drinks.Query(petID)
}

func (s *Store) Meals(petID string) []records.MealRecord {
	return s.meals.Query(petID)
}

func (s *Store) ThirstLevels(petID string) []records.ThirstLevelRecord {
	return s.thirst.Query(petID)
}

func (s *Store) AppetiteLevels(petID string) []records.AppetiteLevelRecord {
	return s.appetite.Query(petID)
}

func (s *Store) Wellbeing(petID string) []records.WellbeingRecord {
	return s.wellbeing.Query(petID)
}

func (s *Store) Weights(petID string) []records.WeightRecord {
	return s.weight.Query(petID)
}

func (s *Store) Vomits(petID string) []records.VomitRecord {
	return s.vomit.Query(petID)
}

func (s *Store) GenericLogs(petID string) []records.GenericLog {
	return s.generic.Query(petID)
}

// AllVisits devuelve las visitas de todas las mascotas.
func (s *Store) AllVisits() map[string][]records.BathroomVisit { return s.visits.All() }

func (s *Store) AllMedications() map[string][]records.MedicationRecord {
	return s.medications.All()
}

// PetRecords reúne todas las categorías de una mascota.
type PetRecords struct {
	Visits         []records.BathroomVisit
	Medications    []records.MedicationRecord
	Drinks         []records.DrinkRecord
	Meals          []records.MealRecord
	ThirstLevels   []records.ThirstLevelRecord
	AppetiteLevels []records.AppetiteLevelRecord
	Wellbeing      []records.WellbeingRecord
	Weight         []records.WeightRecord
	Vomit          []records.VomitRecord
	GenericLogs    []records.GenericLog
}

// Each recorre todos los registros en el orden de Categories().
func (r PetRecords) Each(fn func(records.Record)) {
	for _, v := range r.Visits {
		fn(v)
	}
	for _, v := range r.Medications {
		fn(v)
	}
	for _, v := range r.Drinks {
		fn(v)
	}
	for _, v := range r.Meals {
		fn(v)
	}
	for _, v := range r.ThirstLevels {
		fn(v)
	}
	for _, v := range r.AppetiteLevels {
		fn(v)
	}
	for _, v := range r.Wellbeing {
		fn(v)
	}
	for _, v := range r.Weight {
		fn(v)
	}
	for _, v := range r.Vomit {
		fn(v)
	}
	for _, v := range r.GenericLogs {
		fn(v)
	}
}

func (s *Store) Records(petID string) PetRecords {
	return PetRecords{
		Visits:         s.visits.Query(petID),
		Medications:    s.medications.Query(petID),
		Drinks:         s.drinks.Query(petID),
		Meals:          s.meals.Query(petID),
		ThirstLevels:   s.thirst.Query(petID),
		AppetiteLevels: s.appetite.Query(petID),
		Wellbeing:      s.wellbeing.Query(petID),
		Weight:         s.weight.Query(petID),
		Vomit:          s.vomit.Query(petID),
		GenericLogs:    s.generic.Query(petID),
	}
}

// Pets lista (ordenado) todo pet_id con al menos un registro en alguna categoría.
func (s *Store) Pets() []string {
	seen := map[string]struct{}{}
	for _, ids := range [][]string{
		s.visits.PetIDs(), s.medications.PetIDs(), s.drinks.PetIDs(), s.meals.PetIDs(),
		s.thirst.PetIDs(), s.appetite.PetIDs(), s.wellbeing.PetIDs(), s.weight.PetIDs(),
		s.vomit.PetIDs(), s.generic.PetIDs(),
	} {
		for _, id := range ids {
			seen[id] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s *Store) notify(c records.Category, petID string, kind ChangeKind, recordID string) {
	s.bus.Publish(Change{PetID: petID, Category: c, Kind: kind, RecordID: recordID})
}

func recordID(r records.Record) string {
	switch v := r.(type) {
	case records.BathroomVisit:
		return v.VisitID
	case records.GenericLog:
		return v.LogID
	default:
		return ""
	}
}

// IsPersistence es un atajo para errors.Is(err, ErrPersistence).
func IsPersistence(err error) bool { return errors.Is(err, ErrPersistence) }
