package pets

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type MedicationInput struct {
	ID        string
	Name      string
	Dosage    string
	Unit      string
	Frequency string
	Times     []string
	StartDate *time.Time
	Active    *bool // nil = activo
	Notes     string
}

type CreateInput struct {
	ID            string // opcional; si viene vacío se genera un UUID
	Name          string
	Type          string
	Medications   []MedicationInput
	LogCategories []string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	p, err := s.build(in)
	if err != nil {
		return Pet{}, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Upsert crea o reemplaza el perfil (carga desde archivo de configuración).
func (s *Service) Upsert(ctx context.Context, in CreateInput) (Pet, error) {
	p, err := s.build(in)
	if err != nil {
		return Pet{}, err
	}

	current, err := s.repo.GetByID(ctx, p.ID)
	switch {
	case errors.Is(err, ErrNotFound):
		if err := s.repo.Create(ctx, p); err != nil {
			return Pet{}, err
		}
	case err != nil:
		return Pet{}, err
	default:
		p.CreatedAt = current.CreatedAt
		if err := s.repo.Update(ctx, p); err != nil {
			return Pet{}, err
		}
	}
	return p, nil
}

func (s *Service) build(in CreateInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Pet{}, ErrInvalidInput
	}

	typ := PetType(strings.ToLower(strings.TrimSpace(in.Type)))
	if typ == "" {
		typ = PetTypeOther
	}
	if !typ.Valid() {
		return Pet{}, ErrInvalidInput
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}
	if id == UnknownPetID {
		return Pet{}, ErrInvalidInput
	}

	meds := make([]Medication, 0, len(in.Medications))
	for _, mi := range in.Medications {
		m, err := buildMedication(mi)
		if err != nil {
			return Pet{}, err
		}
		meds = append(meds, m)
	}

	cats := make([]string, 0, len(in.LogCategories))
	for _, c := range in.LogCategories {
		if c = strings.TrimSpace(c); c != "" {
			cats = append(cats, c)
		}
	}

	now := s.now()
	return Pet{
		ID:            id,
		Name:          name,
		Type:          typ,
		Medications:   meds,
		LogCategories: cats,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func buildMedication(in MedicationInput) (Medication, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Medication{}, ErrInvalidInput
	}

	freq := MedicationFrequency(strings.TrimSpace(in.Frequency))
	if freq == "" {
		freq = FrequencyAsNeeded
	}
	if !freq.Valid() {
		return Medication{}, ErrInvalidInput
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	return Medication{
		ID:        id,
		Name:      name,
		Dosage:    strings.TrimSpace(in.Dosage),
		Unit:      strings.TrimSpace(in.Unit),
		Frequency: freq,
		Times:     append([]string(nil), in.Times...),
		StartDate: in.StartDate,
		Active:    active,
		Notes:     strings.TrimSpace(in.Notes),
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// List devuelve las mascotas ordenadas por nombre.
func (s *Service) List(ctx context.Context) ([]Pet, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

// Resolve identifica una mascota por ID o, si no existe, por nombre (sin distinguir mayúsculas).
func (s *Service) Resolve(ctx context.Context, selector string) (Pet, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return Pet{}, ErrInvalidInput
	}

	p, err := s.repo.GetByID(ctx, selector)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Pet{}, err
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return Pet{}, err
	}
	for _, p := range items {
		if strings.EqualFold(p.Name, selector) {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

// DisplayName devuelve el nombre de la mascota, o el ID si no está registrada.
func (s *Service) DisplayName(ctx context.Context, petID string) string {
	if petID == UnknownPetID {
		return "Unknown"
	}
	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return petID
	}
	return p.Name
}
