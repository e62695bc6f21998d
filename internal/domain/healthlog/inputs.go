package healthlog

import (
	"time"

	"pet-health/internal/domain/records"
)

// VisitInput registra una visita al arenero / paseo.
type VisitInput struct {
	// Vacío o desconocido solo se admite con Confirmed=false (va a la mascota "unknown").
	PetSelector string `validate:"max=200"`

	DidPee  bool
	DidPoop bool

	// nil = true
	Confirmed *bool

	PoopConsistencies []string `validate:"omitempty,dive,oneof=normal soft diarrhea hard constipated"`
	PoopColor         string   `validate:"omitempty,oneof=brown dark_brown light_brown bloody green yellow black unusual"`
	UrineAmount       string   `validate:"omitempty,oneof=normal more_than_usual less_than_usual"`
	Notes             string   `validate:"max=2000"`

	LoggedAt *time.Time
}

type MedicationInput struct {
	PetSelector  string `validate:"required,max=200"`
	MedicationID string `validate:"required"`

	GivenAt *time.Time

	// Si vienen, reemplazan los valores configurados solo para esta dosis.
	Dosage string `validate:"max=100"`
	Unit   string `validate:"max=50"`
	Notes  string `validate:"max=2000"`
}

// AmendInput es una corrección parcial; nil = no tocar.
type AmendInput struct {
	DidPee            *bool
	DidPoop           *bool
	PoopConsistencies *[]string `validate:"omitempty,dive,oneof=normal soft diarrhea hard constipated"`
	PoopColor         *string   `validate:"omitempty,oneof=brown dark_brown light_brown bloody green yellow black unusual"`
	UrineAmount       *string   `validate:"omitempty,oneof=normal more_than_usual less_than_usual"`
	Notes             *string   `validate:"omitempty,max=2000"`
}

type DrinkInput struct {
	PetSelector string `validate:"required,max=200"`
	Amount      string `validate:"omitempty,oneof=small normal large"`
	Notes       string `validate:"max=2000"`
	LoggedAt    *time.Time
}

type MealInput struct {
	PetSelector string `validate:"required,max=200"`
	Amount      string `validate:"omitempty,oneof=small normal large"`
	FoodType    string `validate:"max=200"`
	Notes       string `validate:"max=2000"`
	LoggedAt    *time.Time
}

// LevelInput sirve para sed y apetito.
type LevelInput struct {
	PetSelector string `validate:"required,max=200"`
	Level       string `validate:"omitempty,oneof=normal lessened increased"`
	Notes       string `validate:"max=2000"`
	LoggedAt    *time.Time
}

type WellbeingInput struct {
	PetSelector string   `validate:"required,max=200"`
	Score       string   `validate:"required,oneof=poor fair good excellent"`
	Symptoms    []string `validate:"omitempty,dive,required,max=200"`
	Notes       string   `validate:"max=2000"`
	LoggedAt    *time.Time
}

type WeightInput struct {
	PetSelector string `validate:"required,max=200"`
	WeightGrams int    `validate:"min=100,max=50000"`
	Notes       string `validate:"max=2000"`
	LoggedAt    *time.Time
}

type VomitInput struct {
	PetSelector string `validate:"required,max=200"`
	VomitType   string `validate:"omitempty,oneof=hairball food bile other"`
	Notes       string `validate:"max=2000"`
	LoggedAt    *time.Time
}

type GenericInput struct {
	PetSelector string `validate:"required,max=200"`
	Category    string `validate:"required,max=100"`
	Notes       string `validate:"required,max=2000"`
	LoggedAt    *time.Time
}

type VisitResult struct {
	VisitID   string
	Timestamp time.Time
	PetID     string
	PetName   string
}

type MedicationResult struct {
	MedicationID   string
	MedicationName string
	Timestamp      time.Time
	PetID          string
	PetName        string
}

// VisitChange es la respuesta de confirmar, reasignar, enmendar o borrar.
type VisitChange struct {
	VisitID string
	PetID   string
	PetName string
	Visit   *records.BathroomVisit // nil tras borrar
}

// LogResult es el eco de un registro de las categorías simples.
type LogResult struct {
	Record  records.Record
	PetName string
}

// WeightResult agrega las variaciones calculables tras registrar el peso.
type WeightResult struct {
	LogResult

	Change7d  *int
	Change30d *int
}
