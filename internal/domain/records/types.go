package records

// Category identifica cada tipo de evento de salud; cada una tiene su propia colección persistida.
type Category string

const (
	CategoryVisits         Category = "visits"
	CategoryMedications    Category = "medications"
	CategoryDrinks         Category = "drinks"
	CategoryMeals          Category = "meals"
	CategoryThirstLevels   Category = "thirst_levels"
	CategoryAppetiteLevels Category = "appetite_levels"
	CategoryWellbeing      Category = "wellbeing"
	CategoryWeight         Category = "weight"
	CategoryVomit          Category = "vomit"
	CategoryGenericLogs    Category = "generic_logs"
)

// Categories devuelve todas las categorías en orden estable.
func Categories() []Category {
	return []Category{
		CategoryVisits,
		CategoryMedications,
		CategoryDrinks,
		CategoryMeals,
		CategoryThirstLevels,
		CategoryAppetiteLevels,
		CategoryWellbeing,
		CategoryWeight,
		CategoryVomit,
		CategoryGenericLogs,
	}
}

// StorageKey es el nombre de la colección persistida.
func (c Category) StorageKey() string {
	return "pet_health_" + string(c)
}

type PoopConsistency string

const (
	PoopConsistencyNormal      PoopConsistency = "normal"
	PoopConsistencySoft        PoopConsistency = "soft"
	PoopConsistencyDiarrhea    PoopConsistency = "diarrhea"
	PoopConsistencyHard        PoopConsistency = "hard"
	PoopConsistencyConstipated PoopConsistency = "constipated"
)

type PoopColor string

const (
	PoopColorBrown      PoopColor = "brown"
	PoopColorDarkBrown  PoopColor = "dark_brown"
	PoopColorLightBrown PoopColor = "light_brown"
	PoopColorBloody     PoopColor = "bloody"
	PoopColorGreen      PoopColor = "green"
	PoopColorYellow     PoopColor = "yellow"
	PoopColorBlack      PoopColor = "black"
	PoopColorUnusual    PoopColor = "unusual"
)

type UrineAmount string

const (
	UrineAmountNormal        UrineAmount = "normal"
	UrineAmountMoreThanUsual UrineAmount = "more_than_usual"
	UrineAmountLessThanUsual UrineAmount = "less_than_usual"
)

// ConsumptionAmount aplica a comidas y bebidas.
type ConsumptionAmount string

const (
	AmountSmall  ConsumptionAmount = "small"
	AmountNormal ConsumptionAmount = "normal"
	AmountLarge  ConsumptionAmount = "large"
)

// LevelState aplica a sed y apetito.
type LevelState string

const (
	LevelNormal    LevelState = "normal"
	LevelLessened  LevelState = "lessened"
	LevelIncreased LevelState = "increased"
)

type WellbeingScore string

const (
	WellbeingPoor      WellbeingScore = "poor"
	WellbeingFair      WellbeingScore = "fair"
	WellbeingGood      WellbeingScore = "good"
	WellbeingExcellent WellbeingScore = "excellent"
)

type VomitType string

const (
	VomitHairball VomitType = "hairball"
	VomitFood     VomitType = "food"
	VomitBile     VomitType = "bile"
	VomitOther    VomitType = "other"
)
