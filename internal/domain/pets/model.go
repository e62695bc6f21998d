package pets

import "time"

// UnknownPetID agrupa visitas provisionales cuya mascota no se pudo identificar.
const UnknownPetID = "unknown"

// PetType define los tipos de mascota soportados.
// @Enum cat, dog, other
type PetType string

const (
	PetTypeCat   PetType = "cat"
	PetTypeDog   PetType = "dog"
	PetTypeOther PetType = "other"
)

func (t PetType) Valid() bool {
	switch t {
	case PetTypeCat, PetTypeDog, PetTypeOther:
		return true
	}
	return false
}

// MedicationFrequency define la pauta configurada para un medicamento.
type MedicationFrequency string

const (
	FrequencyAsNeeded        MedicationFrequency = "as_needed"
	FrequencyDaily           MedicationFrequency = "daily"
	FrequencyTwiceDaily      MedicationFrequency = "twice_daily"
	FrequencyThreeTimesDaily MedicationFrequency = "three_times_daily"
	FrequencyEvery8Hours     MedicationFrequency = "every_8_hours"
	FrequencyEvery12Hours    MedicationFrequency = "every_12_hours"
	FrequencyWeekly          MedicationFrequency = "weekly"
)

func (f MedicationFrequency) Valid() bool {
	switch f {
	case FrequencyAsNeeded, FrequencyDaily, FrequencyTwiceDaily, FrequencyThreeTimesDaily,
		FrequencyEvery8Hours, FrequencyEvery12Hours, FrequencyWeekly:
		return true
	}
	return false
}

// Medication es un medicamento configurado para una mascota (no una dosis registrada).
type Medication struct {
	ID        string
	Name      string
	Dosage    string
	Unit      string
	Frequency MedicationFrequency
	Times     []string // HH:MM
	StartDate *time.Time
	Active    bool // inactivo sigue resolviendo para registrar dosis
	Notes     string
}

// Pet representa el perfil de una mascota registrada.
type Pet struct {
	ID   string
	Name string
	Type PetType

	Medications []Medication

	// Categorías configuradas para registros genéricos (p.ej. "grooming").
	LogCategories []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Medication busca por ID entre los medicamentos configurados.
func (p Pet) Medication(id string) (Medication, bool) {
	for _, m := range p.Medications {
		if m.ID == id {
			return m, true
		}
	}
	return Medication{}, false
}
