package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"pet-health/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

// medicationRow es la forma JSONB de cada medicamento configurado.
type medicationRow struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Dosage    string     `json:"dosage,omitempty"`
	Unit      string     `json:"unit,omitempty"`
	Frequency string     `json:"frequency"`
	Times     []string   `json:"times,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	Active    bool       `json:"active"`
	Notes     string     `json:"notes,omitempty"`
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	meds, cats, err := encodePetJSON(p)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, name, type,
			medications, log_categories,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		p.ID,
		p.Name,
		string(p.Type),
		string(meds),
		string(cats),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	meds, cats, err := encodePetJSON(p)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			type = $3,
			medications = $4,
			log_categories = $5,
			updated_at = $6
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		string(p.Type),
		string(meds),
		string(cats),
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, type,
			medications, log_categories,
			created_at, updated_at
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, type,
			medications, log_categories,
			created_at, updated_at
		FROM pets
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var (
		p          pets.Pet
		typ        string
		medsRaw    []byte
		catsRaw    []byte
		medsParsed []medicationRow
	)
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&typ,
		&medsRaw,
		&catsRaw,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Type = pets.PetType(typ)

	if err := json.Unmarshal(medsRaw, &medsParsed); err != nil {
		return pets.Pet{}, err
	}
	if err := json.Unmarshal(catsRaw, &p.LogCategories); err != nil {
		return pets.Pet{}, err
	}

	p.Medications = make([]pets.Medication, 0, len(medsParsed))
	for _, m := range medsParsed {
		p.Medications = append(p.Medications, pets.Medication{
			ID:        m.ID,
			Name:      m.Name,
			Dosage:    m.Dosage,
			Unit:      m.Unit,
			Frequency: pets.MedicationFrequency(m.Frequency),
			Times:     m.Times,
			StartDate: m.StartDate,
			Active:    m.Active,
			Notes:     m.Notes,
		})
	}
	return p, nil
}

func encodePetJSON(p pets.Pet) ([]byte, []byte, error) {
	rows := make([]medicationRow, 0, len(p.Medications))
	for _, m := range p.Medications {
		rows = append(rows, medicationRow{
			ID:        m.ID,
			Name:      m.Name,
			Dosage:    m.Dosage,
			Unit:      m.Unit,
			Frequency: string(m.Frequency),
			Times:     m.Times,
			StartDate: m.StartDate,
			Active:    m.Active,
			Notes:     m.Notes,
		})
	}
	meds, err := json.Marshal(rows)
	if err != nil {
		return nil, nil, err
	}

	cats := p.LogCategories
	if cats == nil {
		cats = []string{}
	}
	catsJSON, err := json.Marshal(cats)
	if err != nil {
		return nil, nil, err
	}
	return meds, catsJSON, nil
}
