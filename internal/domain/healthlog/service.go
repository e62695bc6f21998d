package healthlog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"pet-health/internal/domain/aggregates"
	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/records"
	"pet-health/internal/domain/store"
	"pet-health/internal/platform/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = store.ErrNotFound
)

type Service struct {
	store    *store.Store
	pets     *pets.Service
	log      logger.Logger
	validate *validator.Validate
	now      func() time.Time
}

func NewService(st *store.Store, petsSvc *pets.Service, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		store:    st,
		pets:     petsSvc,
		log:      log.With(map[string]any{"component": "healthlog"}),
		validate: validator.New(),
		now:      time.Now,
	}
}

func (s *Service) check(in any) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// timestamp normaliza a UTC; sin valor explícito usa el reloj del servicio.
func (s *Service) timestamp(at *time.Time) time.Time {
	if at == nil || at.IsZero() {
		return s.now().UTC()
	}
	return at.UTC()
}

// resolve traduce errores de pets a la taxonomía de este paquete.
func (s *Service) resolve(ctx context.Context, selector string) (pets.Pet, error) {
	p, err := s.pets.Resolve(ctx, selector)
	switch {
	case err == nil:
		return p, nil
	case errors.Is(err, pets.ErrNotFound):
		return pets.Pet{}, fmt.Errorf("%w: pet %q", ErrNotFound, selector)
	case errors.Is(err, pets.ErrInvalidInput):
		return pets.Pet{}, fmt.Errorf("%w: pet selector required", ErrInvalidInput)
	default:
		return pets.Pet{}, err
	}
}

// LogBathroomVisit registra una visita. Las visitas sin confirmar cuya mascota no
// se puede resolver se guardan bajo pets.UnknownPetID.
func (s *Service) LogBathroomVisit(ctx context.Context, in VisitInput) (VisitResult, error) {
	if err := s.check(in); err != nil {
		return VisitResult{}, err
	}

	confirmed := true
	if in.Confirmed != nil {
		confirmed = *in.Confirmed
	}
	if confirmed && !in.DidPee && !in.DidPoop {
		return VisitResult{}, fmt.Errorf("%w: select at least pee or poop", ErrInvalidInput)
	}

	petID := pets.UnknownPetID
	selector := strings.TrimSpace(in.PetSelector)
	switch {
	case selector == "" && confirmed:
		return VisitResult{}, fmt.Errorf("%w: pet selector required for confirmed visits", ErrInvalidInput)
	case selector != "":
		p, err := s.resolve(ctx, selector)
		switch {
		case err == nil:
			petID = p.ID
		case errors.Is(err, ErrNotFound) && !confirmed:
			s.log.Info("unresolved pet, filing visit as unknown", map[string]any{"selector": selector})
		default:
			return VisitResult{}, err
		}
	}

	v := records.BathroomVisit{
		Header:    records.Header{PetID: petID, Timestamp: s.timestamp(in.LoggedAt)},
		VisitID:   uuid.NewString(),
		DidPee:    in.DidPee,
		DidPoop:   in.DidPoop,
		Confirmed: confirmed,
		Notes:     strings.TrimSpace(in.Notes),
	}
	for _, c := range in.PoopConsistencies {
		v.PoopConsistencies = append(v.PoopConsistencies, records.PoopConsistency(c))
	}
	if len(v.PoopConsistencies) == 0 && in.DidPoop {
		v.PoopConsistencies = []records.PoopConsistency{records.PoopConsistencyNormal}
	}
	if in.PoopColor != "" {
		c := records.PoopColor(in.PoopColor)
		v.PoopColor = &c
	} else if in.DidPoop {
		c := records.PoopColorBrown
		v.PoopColor = &c
	}
	if in.UrineAmount != "" {
		a := records.UrineAmount(in.UrineAmount)
		v.UrineAmount = &a
	} else if in.DidPee {
		a := records.UrineAmountNormal
		v.UrineAmount = &a
	}

	if err := s.store.SaveVisit(ctx, v); err != nil {
		return VisitResult{}, err
	}

	return VisitResult{
		VisitID:   v.VisitID,
		Timestamp: v.Timestamp,
		PetID:     petID,
		PetName:   s.pets.DisplayName(ctx, petID),
	}, nil
}

// LogMedication registra una dosis de un medicamento configurado en la mascota.
func (s *Service) LogMedication(ctx context.Context, in MedicationInput) (MedicationResult, error) {
	if err := s.check(in); err != nil {
		return MedicationResult{}, err
	}

	p, err := s.resolve(ctx, in.PetSelector)
	if err != nil {
		return MedicationResult{}, err
	}
	med, ok := p.Medication(strings.TrimSpace(in.MedicationID))
	if !ok {
		return MedicationResult{}, fmt.Errorf("%w: medication %q", ErrNotFound, in.MedicationID)
	}

	rec := records.MedicationRecord{
		Header:         records.Header{PetID: p.ID, Timestamp: s.timestamp(in.GivenAt)},
		MedicationName: med.Name,
		Dosage:         med.Dosage,
		Unit:           med.Unit,
		Notes:          strings.TrimSpace(in.Notes),
	}
	if d := strings.TrimSpace(in.Dosage); d != "" {
		rec.Dosage = d
	}
	if u := strings.TrimSpace(in.Unit); u != "" {
		rec.Unit = u
	}

	if err := s.store.SaveMedication(ctx, rec); err != nil {
		return MedicationResult{}, err
	}

	return MedicationResult{
		MedicationID:   med.ID,
		MedicationName: med.Name,
		Timestamp:      rec.Timestamp,
		PetID:          p.ID,
		PetName:        p.Name,
	}, nil
}

func (s *Service) ConfirmVisit(ctx context.Context, visitID string) (VisitChange, error) {
	return s.updateVisit(ctx, visitID, records.ConfirmPatch())
}

// ReassignVisit mueve la visita a otra mascota y la confirma.
func (s *Service) ReassignVisit(ctx context.Context, visitID, selector string) (VisitChange, error) {
	if strings.TrimSpace(selector) == "" {
		return VisitChange{}, fmt.Errorf("%w: new pet selector required", ErrInvalidInput)
	}
	p, err := s.resolve(ctx, selector)
	if err != nil {
		return VisitChange{}, err
	}
	return s.updateVisit(ctx, visitID, records.ReassignPatch(p.ID))
}

// AmendVisit corrige campos de la visita sin tocar su estado de confirmación.
func (s *Service) AmendVisit(ctx context.Context, visitID string, in AmendInput) (VisitChange, error) {
	if err := s.check(in); err != nil {
		return VisitChange{}, err
	}

	patch := records.VisitPatch{
		DidPee:  in.DidPee,
		DidPoop: in.DidPoop,
	}
	if in.PoopConsistencies != nil {
		cs := make([]records.PoopConsistency, 0, len(*in.PoopConsistencies))
		for _, c := range *in.PoopConsistencies {
			cs = append(cs, records.PoopConsistency(c))
		}
		patch.PoopConsistencies = &cs
	}
	if in.PoopColor != nil {
		c := records.PoopColor(*in.PoopColor)
		patch.PoopColor = &c
	}
	if in.UrineAmount != nil {
		a := records.UrineAmount(*in.UrineAmount)
		patch.UrineAmount = &a
	}
	if in.Notes != nil {
		n := strings.TrimSpace(*in.Notes)
		patch.Notes = &n
	}
	if patch.Empty() {
		return VisitChange{}, fmt.Errorf("%w: nothing to amend", ErrInvalidInput)
	}

	return s.updateVisit(ctx, visitID, patch)
}

func (s *Service) updateVisit(ctx context.Context, visitID string, patch records.VisitPatch) (VisitChange, error) {
	visitID = strings.TrimSpace(visitID)
	if visitID == "" {
		return VisitChange{}, fmt.Errorf("%w: visit_id required", ErrInvalidInput)
	}

	v, err := s.store.UpdateVisit(ctx, visitID, patch)
	if errors.Is(err, store.ErrNotFound) {
		return VisitChange{}, fmt.Errorf("%w: visit %q", ErrNotFound, visitID)
	}
	if err != nil {
		return VisitChange{}, err
	}

	return VisitChange{
		VisitID: v.VisitID,
		PetID:   v.PetID,
		PetName: s.pets.DisplayName(ctx, v.PetID),
		Visit:   &v,
	}, nil
}

func (s *Service) DeleteVisit(ctx context.Context, visitID string) (VisitChange, error) {
	visitID = strings.TrimSpace(visitID)
	if visitID == "" {
		return VisitChange{}, fmt.Errorf("%w: visit_id required", ErrInvalidInput)
	}

	v, ok := s.store.FindVisit(visitID)
	if !ok {
		return VisitChange{}, fmt.Errorf("%w: visit %q", ErrNotFound, visitID)
	}
	if err := s.store.DeleteVisit(ctx, visitID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return VisitChange{}, fmt.Errorf("%w: visit %q", ErrNotFound, visitID)
		}
		return VisitChange{}, err
	}

	return VisitChange{
		VisitID: visitID,
		PetID:   v.PetID,
		PetName: s.pets.DisplayName(ctx, v.PetID),
	}, nil
}

func (s *Service) LogDrink(ctx context.Context, in DrinkInput) (LogResult, error) {
	if err := s.check(in); err != nil {
		return LogResult{}, err
	}
	p, err := s.resolve(ctx, in.PetSelector)
	if err != nil {
		return LogResult{}, err
	}

	rec := records.DrinkRecord{
		Header: records.Header{PetID: p.ID, Timestamp: s.timestamp(in.LoggedAt)},
		Amount: amountOrNormal(in.Amount),
		Notes:  strings.TrimSpace(in.Notes),
	}
	if err := s.store.SaveDrink(ctx, rec); err != nil {
		return LogResult{}, err
	}
	return LogResult{Record: rec, PetName: p.Name}, nil
}

func (s *Service) LogMeal(ctx context.Context, in MealInput) (LogResult, error) {
	if err := s.check(in); err != nil {
		return LogResult{}, err
	}
	p, err := s.resolve(ctx, in.PetSelector)
	if err != nil {
		return LogResult{}, err
	}

	rec := records.MealRecord{
		Header:   records.Header{PetID: p.ID, Timestamp: s.timestamp(in.LoggedAt)},
		Amount:   amountOrNormal(in.Amount),
		FoodType: strings.TrimSpace(in.FoodType),
		Notes:    strings.TrimSpace(in.Notes),
	}
	if err := s.store.SaveMeal(ctx, rec); err != nil {
		return LogResult{}, err
	}
	return LogResult{Record: rec, PetName: p.Name}, nil
}

func (s *Service) LogThirst(ctx context.Context, in LevelInput) (LogResult, error) {
	if err := s.check(in); err != nil {
		return LogResult{}, err
	}
	p, err := s.resolve(ctx, in.PetSelector)
	if err != nil {
		return LogResult{}, err
	}

	rec := records.ThirstLevelRecord{
		Header: records.Header{PetID: p.ID, Timestamp: s.timestamp(in.LoggedAt)},
		Level:  levelOrNormal(in.Level),
		Notes:  strings.TrimSpace(in.Notes),
	}
	if err := s.store.SaveThirstLevel(ctx, rec); err != nil {
		return LogResult{}, err
	}
	return LogResult{Record: rec, PetName: p.Name}, nil
}

func (s *Service) LogAppetite(ctx context.Context, in LevelInput) (LogResult, error) {
	if err := s.check(in); err != nil {
		return LogResult{}, err
	}
	p, err := s.resolve(ctx, in.PetSelector)
	if err != nil {
		return LogResult{}, err
	}

	rec := records.AppetiteLevelRecord{
		Header: records.Header{PetID: p.ID, Timestamp: s.timestamp(in.LoggedAt)},
		Level:  levelOrNormal(in.Level),
		Notes:  strings.TrimSpace(in.Notes),
	}
	if err := s.store.SaveAppetiteLevel(ctx, rec); err != nil {
		return LogResult{}, err
	}
	return LogResult{Record: rec, PetName: p.Name}, nil
}

func (s *Service) LogWellbeing(ctx context.Context, in WellbeingInput) (LogResult, error) {
	if err := s.check(in); err != nil {
		return LogResult{}, err
	}
	p, err := s.resolve(ctx, in.PetSelector)
	if err != nil {
		return LogResult{}, err
	}

	symptoms := make([]string, 0, len(in.Symptoms))
	for _, sy := range in.Symptoms {
		if sy = strings.TrimSpace(sy); sy != "" {
			symptoms = append(symptoms, sy)
		}
	}
	rec := records.WellbeingRecord{
		Header:   records.Header{PetID: p.ID, Timestamp: s.timestamp(in.LoggedAt)},
		Score:    records.WellbeingScore(in.Score),
		Symptoms: symptoms,
		Notes:    strings.TrimSpace(in.Notes),
	}
	if err := s.store.SaveWellbeing(ctx, rec); err != nil {
		return LogResult{}, err
	}
	return LogResult{Record: rec, PetName: p.Name}, nil
}

// LogWeight registra el peso y devuelve las variaciones a 7 y 30 días si hay
// un registro previo lo bastante antiguo.
func (s *Service) LogWeight(ctx context.Context, in WeightInput) (WeightResult, error) {
	if err := s.check(in); err != nil {
		return WeightResult{}, err
	}
	p, err := s.resolve(ctx, in.PetSelector)
	if err != nil {
		return WeightResult{}, err
	}

	rec := records.WeightRecord{
		Header:      records.Header{PetID: p.ID, Timestamp: s.timestamp(in.LoggedAt)},
		WeightGrams: in.WeightGrams,
		Notes:       strings.TrimSpace(in.Notes),
	}
	if err := s.store.SaveWeight(ctx, rec); err != nil {
		return WeightResult{}, err
	}

	out := WeightResult{LogResult: LogResult{Record: rec, PetName: p.Name}}
	sorted := aggregates.SortByTimeDesc(s.store.Weights(p.ID))
	grams := func(w records.WeightRecord) int { return w.WeightGrams }
	if d, ok := aggregates.TrendDelta(sorted, 7, grams); ok {
		out.Change7d = &d
	}
	if d, ok := aggregates.TrendDelta(sorted, 30, grams); ok {
		out.Change30d = &d
	}
	return out, nil
}

func (s *Service) LogVomit(ctx context.Context, in VomitInput) (LogResult, error) {
	if err := s.check(in); err != nil {
		return LogResult{}, err
	}
	p, err := s.resolve(ctx, in.PetSelector)
	if err != nil {
		return LogResult{}, err
	}

	vt := records.VomitType(in.VomitType)
	if vt == "" {
		vt = records.VomitOther
	}
	rec := records.VomitRecord{
		Header:    records.Header{PetID: p.ID, Timestamp: s.timestamp(in.LoggedAt)},
		VomitType: vt,
		Notes:     strings.TrimSpace(in.Notes),
	}
	if err := s.store.SaveVomit(ctx, rec); err != nil {
		return LogResult{}, err
	}
	return LogResult{Record: rec, PetName: p.Name}, nil
}

// LogGeneric registra una entrada libre. Si la mascota tiene categorías
// configuradas, la categoría debe ser una de ellas.
func (s *Service) LogGeneric(ctx context.Context, in GenericInput) (LogResult, error) {
	if err := s.check(in); err != nil {
		return LogResult{}, err
	}
	p, err := s.resolve(ctx, in.PetSelector)
	if err != nil {
		return LogResult{}, err
	}

	tag := strings.TrimSpace(in.Category)
	if len(p.LogCategories) > 0 && !slices.Contains(p.LogCategories, tag) {
		return LogResult{}, fmt.Errorf("%w: category %q not configured for %s", ErrInvalidInput, tag, p.Name)
	}
	notes := strings.TrimSpace(in.Notes)
	if notes == "" {
		return LogResult{}, fmt.Errorf("%w: notes required", ErrInvalidInput)
	}

	rec := records.GenericLog{
		Header: records.Header{PetID: p.ID, Timestamp: s.timestamp(in.LoggedAt)},
		LogID:  uuid.NewString(),
		Tag:    tag,
		Notes:  notes,
	}
	if err := s.store.SaveGenericLog(ctx, rec); err != nil {
		return LogResult{}, err
	}
	return LogResult{Record: rec, PetName: p.Name}, nil
}

func amountOrNormal(s string) records.ConsumptionAmount {
	if s == "" {
		return records.AmountNormal
	}
	return records.ConsumptionAmount(s)
}

func levelOrNormal(s string) records.LevelState {
	if s == "" {
		return records.LevelNormal
	}
	return records.LevelState(s)
}
