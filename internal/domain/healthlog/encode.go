package healthlog

import (
	"pet-health/internal/domain/records"
	"pet-health/internal/domain/store"
)

// EncodeAll serializa una lista de registros con el mismo formato que se persiste.
func EncodeAll[R records.Record](recs []R) []records.Fields {
	out := make([]records.Fields, 0, len(recs))
	for _, r := range recs {
		f, err := records.Encode(r)
		if err != nil {
			continue
		}
		out = append(out, f)
	}
	return out
}

// EncodePetRecords agrupa un volcado por nombre de categoría.
func EncodePetRecords(r store.PetRecords) map[string][]records.Fields {
	return map[string][]records.Fields{
		string(records.CategoryVisits):         EncodeAll(r.Visits),
		string(records.CategoryMedications):    EncodeAll(r.Medications),
		string(records.CategoryDrinks):         EncodeAll(r.Drinks),
		string(records.CategoryMeals):          EncodeAll(r.Meals),
		string(records.CategoryThirstLevels):   EncodeAll(r.ThirstLevels),
		string(records.CategoryAppetiteLevels): EncodeAll(r.AppetiteLevels),
		string(records.CategoryWellbeing):      EncodeAll(r.Wellbeing),
		string(records.CategoryWeight):         EncodeAll(r.Weight),
		string(records.CategoryVomit):          EncodeAll(r.Vomit),
		string(records.CategoryGenericLogs):    EncodeAll(r.GenericLogs),
	}
}
