package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Fields es la forma plana clave/valor con la que se persiste un registro.
type Fields map[string]any

var ErrMalformed = errors.New("malformed record")

// Layouts aceptados al leer timestamps. Los que no traen zona se interpretan como UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Encode serializa cualquier registro a su forma persistida.
func Encode(r Record) (Fields, error) {
	switch v := r.(type) {
	case BathroomVisit:
		return encodeVisit(v), nil
	case *BathroomVisit:
		return encodeVisit(*v), nil
	case MedicationRecord:
		return withHeader(v.Header, Fields{
			"medication_name": v.MedicationName,
			"dosage":          optional(v.Dosage),
			"unit":            optional(v.Unit),
			"reason":          optional(v.Reason),
			"notes":           optional(v.Notes),
		}), nil
	case DrinkRecord:
		return withHeader(v.Header, Fields{
			"amount": string(v.Amount),
			"notes":  optional(v.Notes),
		}), nil
	case MealRecord:
		return withHeader(v.Header, Fields{
			"amount":    string(v.Amount),
			"food_type": optional(v.FoodType),
			"notes":     optional(v.Notes),
		}), nil
	case ThirstLevelRecord:
		return withHeader(v.Header, Fields{
			"level": string(v.Level),
			"notes": optional(v.Notes),
		}), nil
	case AppetiteLevelRecord:
		return withHeader(v.Header, Fields{
			"level": string(v.Level),
			"notes": optional(v.Notes),
		}), nil
	case WellbeingRecord:
		symptoms := v.Symptoms
		if symptoms == nil {
			symptoms = []string{}
		}
		return withHeader(v.Header, Fields{
			"wellbeing_score": string(v.Score),
			"symptoms":        symptoms,
			"notes":           optional(v.Notes),
		}), nil
	case WeightRecord:
		return withHeader(v.Header, Fields{
			"weight_grams": v.WeightGrams,
			"notes":        optional(v.Notes),
		}), nil
	case VomitRecord:
		return withHeader(v.Header, Fields{
			"vomit_type": string(v.VomitType),
			"notes":      optional(v.Notes),
		}), nil
	case GenericLog:
		return withHeader(v.Header, Fields{
			"log_id":   v.LogID,
			"category": v.Tag,
			"notes":    v.Notes,
		}), nil
	default:
		return nil, fmt.Errorf("%w: unsupported record type %T", ErrMalformed, r)
	}
}

// Decode reconstruye un registro de la categoría indicada.
func Decode(c Category, f Fields) (Record, error) {
	switch c {
	case CategoryVisits:
		return DecodeVisit(f)
	case CategoryMedications:
		return DecodeMedication(f)
	case CategoryDrinks:
		return DecodeDrink(f)
	case CategoryMeals:
		return DecodeMeal(f)
	case CategoryThirstLevels:
		return DecodeThirstLevel(f)
	case CategoryAppetiteLevels:
		return DecodeAppetiteLevel(f)
	case CategoryWellbeing:
		return DecodeWellbeing(f)
	case CategoryWeight:
		return DecodeWeight(f)
	case CategoryVomit:
		return DecodeVomit(f)
	case CategoryGenericLogs:
		return DecodeGenericLog(f)
	default:
		return nil, fmt.Errorf("%w: unknown category %q", ErrMalformed, c)
	}
}

func encodeVisit(v BathroomVisit) Fields {
	consistencies := make([]string, 0, len(v.PoopConsistencies))
	for _, c := range v.PoopConsistencies {
		consistencies = append(consistencies, string(c))
	}

	var color, urine any
	if v.PoopColor != nil {
		color = string(*v.PoopColor)
	}
	if v.UrineAmount != nil {
		urine = string(*v.UrineAmount)
	}

	return withHeader(v.Header, Fields{
		"visit_id":           v.VisitID,
		"did_pee":            v.DidPee,
		"did_poop":           v.DidPoop,
		"confirmed":          v.Confirmed,
		"poop_consistencies": consistencies,
		"poop_color":         color,
		"urine_amount":       urine,
		"notes":              optional(v.Notes),
	})
}

// DecodeVisit incluye el único adaptador de formato legado: visit_type (pee|poop|both).
func DecodeVisit(f Fields) (BathroomVisit, error) {
	h, err := decodeHeader(f)
	if err != nil {
		return BathroomVisit{}, err
	}

	v := BathroomVisit{
		Header:    h,
		VisitID:   idOrNew(f, "visit_id"),
		Confirmed: boolean(f, "confirmed", true),
		Notes:     str(f, "notes"),
	}

	if kind, ok := f["visit_type"]; ok {
		k := strings.ToLower(strings.TrimSpace(fmt.Sprint(kind)))
		v.DidPee = k == "pee" || k == "both"
		v.DidPoop = k == "poop" || k == "both"
	} else {
		v.DidPee = boolean(f, "did_pee", false)
		v.DidPoop = boolean(f, "did_poop", false)
	}

	for _, c := range strList(f, "poop_consistencies") {
		v.PoopConsistencies = append(v.PoopConsistencies, PoopConsistency(c))
	}
	if s := str(f, "poop_color"); s != "" {
		c := PoopColor(s)
		v.PoopColor = &c
	}
	if s := str(f, "urine_amount"); s != "" {
		a := UrineAmount(s)
		v.UrineAmount = &a
	}
	return v, nil
}

func DecodeMedication(f Fields) (MedicationRecord, error) {
	h, err := decodeHeader(f)
	if err != nil {
		return MedicationRecord{}, err
	}
	name := str(f, "medication_name")
	if name == "" {
		return MedicationRecord{}, fmt.Errorf("%w: medication_name required", ErrMalformed)
	}
	return MedicationRecord{
		Header:         h,
		MedicationName: name,
		Dosage:         str(f, "dosage"),
		Unit:           str(f, "unit"),
		Reason:         str(f, "reason"),
		Notes:          str(f, "notes"),
	}, nil
}

func DecodeDrink(f Fields) (DrinkRecord, error) {
	h, err := decodeHeader(f)
	if err != nil {
		return DrinkRecord{}, err
	}
	return DrinkRecord{
		Header: h,
		Amount: ConsumptionAmount(strOr(f, "amount", string(AmountNormal))),
		Notes:  str(f, "notes"),
	}, nil
}

func DecodeMeal(f Fields) (MealRecord, error) {
	h, err := decodeHeader(f)
	if err != nil {
		return MealRecord{}, err
	}
	return MealRecord{
		Header:   h,
		Amount:   ConsumptionAmount(strOr(f, "amount", string(AmountNormal))),
		FoodType: str(f, "food_type"),
		Notes:    str(f, "notes"),
	}, nil
}

func DecodeThirstLevel(f Fields) (ThirstLevelRecord, error) {
	h, err := decodeHeader(f)
	if err != nil {
		return ThirstLevelRecord{}, err
	}
	return ThirstLevelRecord{
		Header: h,
		Level:  LevelState(strOr(f, "level", string(LevelNormal))),
		Notes:  str(f, "notes"),
	}, nil
}

func DecodeAppetiteLevel(f Fields) (AppetiteLevelRecord, error) {
	h, err := decodeHeader(f)
	if err != nil {
		return AppetiteLevelRecord{}, err
	}
	return AppetiteLevelRecord{
		Header: h,
		Level:  LevelState(strOr(f, "level", string(LevelNormal))),
		Notes:  str(f, "notes"),
	}, nil
}

func DecodeWellbeing(f Fields) (WellbeingRecord, error) {
	h, err := decodeHeader(f)
	if err != nil {
		return WellbeingRecord{}, err
	}
	score := str(f, "wellbeing_score")
	if score == "" {
		return WellbeingRecord{}, fmt.Errorf("%w: wellbeing_score required", ErrMalformed)
	}
	symptoms := strList(f, "symptoms")
	if symptoms == nil {
		symptoms = []string{}
	}
	return WellbeingRecord{
		Header:   h,
		Score:    WellbeingScore(score),
		Symptoms: symptoms,
		Notes:    str(f, "notes"),
	}, nil
}

func DecodeWeight(f Fields) (WeightRecord, error) {
	h, err := decodeHeader(f)
	if err != nil {
		return WeightRecord{}, err
	}
	grams, err := integer(f, "weight_grams")
	if err != nil {
		return WeightRecord{}, err
	}
	return WeightRecord{
		Header:      h,
		WeightGrams: grams,
		Notes:       str(f, "notes"),
	}, nil
}

func DecodeVomit(f Fields) (VomitRecord, error) {
	h, err := decodeHeader(f)
	if err != nil {
		return VomitRecord{}, err
	}
	return VomitRecord{
		Header:    h,
		VomitType: VomitType(strOr(f, "vomit_type", string(VomitOther))),
		Notes:     str(f, "notes"),
	}, nil
}

func DecodeGenericLog(f Fields) (GenericLog, error) {
	h, err := decodeHeader(f)
	if err != nil {
		return GenericLog{}, err
	}
	return GenericLog{
		Header: h,
		LogID:  idOrNew(f, "log_id"),
		Tag:    str(f, "category"),
		Notes:  str(f, "notes"),
	}, nil
}

// ParseTimestamp acepta ISO-8601 con o sin zona; sin zona se asume UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid timestamp %q", ErrMalformed, s)
}

func withHeader(h Header, f Fields) Fields {
	f["pet_id"] = h.PetID
	f["timestamp"] = h.Timestamp.Format(time.RFC3339Nano)
	return f
}

func decodeHeader(f Fields) (Header, error) {
	petID := str(f, "pet_id")
	if petID == "" {
		return Header{}, fmt.Errorf("%w: pet_id required", ErrMalformed)
	}

	var ts time.Time
	switch v := f["timestamp"].(type) {
	case time.Time:
		ts = v
	case string:
		t, err := ParseTimestamp(v)
		if err != nil {
			return Header{}, err
		}
		ts = t
	default:
		return Header{}, fmt.Errorf("%w: timestamp required", ErrMalformed)
	}

	return Header{PetID: petID, Timestamp: ts}, nil
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func idOrNew(f Fields, key string) string {
	if id := str(f, key); id != "" {
		return id
	}
	return uuid.NewString()
}

func str(f Fields, key string) string {
	v, ok := f[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func strOr(f Fields, key, def string) string {
	if s := str(f, key); s != "" {
		return s
	}
	return def
}

func boolean(f Fields, key string, def bool) bool {
	b, ok := f[key].(bool)
	if !ok {
		return def
	}
	return b
}

func integer(f Fields, key string) (int, error) {
	switch v := f[key].(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %s must be an integer", ErrMalformed, key)
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: %s required", ErrMalformed, key)
	}
}

func strList(f Fields, key string) []string {
	switch v := f[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return nil
	}
}
