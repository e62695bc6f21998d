package records

import "time"

// Header son los campos comunes a todos los registros.
type Header struct {
	PetID     string
	Timestamp time.Time
}

func (h Header) Pet() string           { return h.PetID }
func (h Header) OccurredAt() time.Time { return h.Timestamp }
func (h Header) isRecord()             {}

// Record es la unión cerrada de los diez tipos de registro.
// Solo los tipos de este paquete la implementan (isRecord no es exportado).
type Record interface {
	Category() Category
	Pet() string
	OccurredAt() time.Time
	isRecord()
}

// BathroomVisit es el único registro que admite corrección posterior
// (confirmar, reasignar, enmendar, borrar).
type BathroomVisit struct {
	Header

	VisitID string

	DidPee  bool
	DidPoop bool

	// false = visita provisional (p.ej. detectada por IA) pendiente de confirmación.
	Confirmed bool

	PoopConsistencies []PoopConsistency
	PoopColor         *PoopColor
	UrineAmount       *UrineAmount

	Notes string
}

type MedicationRecord struct {
	Header

	MedicationName string
	Dosage         string
	Unit           string
	Reason         string // no se completa al registrar dosis
	Notes          string
}

type DrinkRecord struct {
	Header

	Amount ConsumptionAmount
	Notes  string
}

type MealRecord struct {
	Header

	Amount   ConsumptionAmount
	FoodType string
	Notes    string
}

type ThirstLevelRecord struct {
	Header

	Level LevelState
	Notes string
}

type AppetiteLevelRecord struct {
	Header

	Level LevelState
	Notes string
}

type WellbeingRecord struct {
	Header

	Score    WellbeingScore
	Symptoms []string
	Notes    string
}

// WeightRecord guarda el peso en gramos (rango validado por la capa de comandos).
type WeightRecord struct {
	Header

	WeightGrams int
	Notes       string
}

type VomitRecord struct {
	Header

	VomitType VomitType
	Notes     string
}

// GenericLog es una entrada libre etiquetada con una categoría configurada por mascota.
type GenericLog struct {
	Header

	LogID string
	// Etiqueta libre (se serializa como "category").
	Tag   string
	Notes string
}

func (BathroomVisit) Category() Category       { return CategoryVisits }
func (MedicationRecord) Category() Category    { return CategoryMedications }
func (DrinkRecord) Category() Category         { return CategoryDrinks }
func (MealRecord) Category() Category          { return CategoryMeals }
func (ThirstLevelRecord) Category() Category   { return CategoryThirstLevels }
func (AppetiteLevelRecord) Category() Category { return CategoryAppetiteLevels }
func (WellbeingRecord) Category() Category     { return CategoryWellbeing }
func (WeightRecord) Category() Category        { return CategoryWeight }
func (VomitRecord) Category() Category         { return CategoryVomit }
func (GenericLog) Category() Category          { return CategoryGenericLogs }

// Clone devuelve una copia profunda de la visita (los slices no se comparten).
func (v BathroomVisit) Clone() BathroomVisit {
	out := v
	if v.PoopConsistencies != nil {
		out.PoopConsistencies = append([]PoopConsistency(nil), v.PoopConsistencies...)
	}
	if v.PoopColor != nil {
		c := *v.PoopColor
		out.PoopColor = &c
	}
	if v.UrineAmount != nil {
		a := *v.UrineAmount
		out.UrineAmount = &a
	}
	return out
}
