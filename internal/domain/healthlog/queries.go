package healthlog

import (
	"context"
	"strings"

	"pet-health/internal/domain/aggregates"
	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/records"
	"pet-health/internal/domain/store"
)

// ListVisits devuelve las visitas (de una mascota o de todas), de la más reciente a la más antigua.
func (s *Service) ListVisits(petID string) []records.BathroomVisit {
	if petID = strings.TrimSpace(petID); petID != "" {
		return aggregates.SortByTimeDesc(s.store.Visits(petID))
	}
	return aggregates.SortByTimeDesc(flatten(s.store.AllVisits()))
}

func (s *Service) ListMedications(petID string) []records.MedicationRecord {
	if petID = strings.TrimSpace(petID); petID != "" {
		return aggregates.SortByTimeDesc(s.store.Medications(petID))
	}
	return aggregates.SortByTimeDesc(flatten(s.store.AllMedications()))
}

// UnknownVisits son las visitas provisionales sin mascota asignada.
func (s *Service) UnknownVisits() []records.BathroomVisit {
	return aggregates.SortByTimeDesc(s.store.Visits(pets.UnknownPetID))
}

// PetDump devuelve todas las categorías de una mascota, cada una ordenada descendente.
func (s *Service) PetDump(petID string) store.PetRecords {
	r := s.store.Records(petID)
	return store.PetRecords{
		Visits:         aggregates.SortByTimeDesc(r.Visits),
		Medications:    aggregates.SortByTimeDesc(r.Medications),
		Drinks:         aggregates.SortByTimeDesc(r.Drinks),
		Meals:          aggregates.SortByTimeDesc(r.Meals),
		ThirstLevels:   aggregates.SortByTimeDesc(r.ThirstLevels),
		AppetiteLevels: aggregates.SortByTimeDesc(r.AppetiteLevels),
		Wellbeing:      aggregates.SortByTimeDesc(r.Wellbeing),
		Weight:         aggregates.SortByTimeDesc(r.Weight),
		Vomit:          aggregates.SortByTimeDesc(r.Vomit),
		GenericLogs:    aggregates.SortByTimeDesc(r.GenericLogs),
	}
}

// Dump arma el volcado de cada mascota con registros.
func (s *Service) Dump() map[string]store.PetRecords {
	out := map[string]store.PetRecords{}
	for _, petID := range s.store.Pets() {
		out[petID] = s.PetDump(petID)
	}
	return out
}

// Pets devuelve los perfiles configurados.
func (s *Service) Pets(ctx context.Context) ([]pets.Pet, error) {
	return s.pets.List(ctx)
}

// PetName es el nombre visible de un pet_id (o el propio id si no está registrado).
func (s *Service) PetName(ctx context.Context, petID string) string {
	return s.pets.DisplayName(ctx, petID)
}

func flatten[R records.Record](byPet map[string][]R) []R {
	var out []R
	for _, list := range byPet {
		out = append(out, list...)
	}
	return out
}
