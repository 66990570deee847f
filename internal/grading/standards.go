package grading

// SizeStandard describes one size bracket of one fruit type.
type SizeStandard struct {
	DimensionMM      [2]int
	WeightG          WeightRange
	UnitsPerPackage  int
}

// GradeCriterion is one row of the grade ladder. Rows are checked in
// strict A then B order; C is the unconditional fallback.
type GradeCriterion struct {
	QualityScoreMin int
	MaxDefects      int
	Ripeness        []string
	Description     string
	PriceMultiplier float64
}

const defaultFruit = "Apple"

// fruitSizeStandards holds per-fruit, per-size physical standards.
// Loaded once as package data, never mutated.
var fruitSizeStandards = map[string]map[string]SizeStandard{
	"Apple": {
		"small":       {DimensionMM: [2]int{55, 65}, WeightG: WeightRange{100, 140}, UnitsPerPackage: 175},
		"medium":      {DimensionMM: [2]int{65, 75}, WeightG: WeightRange{140, 180}, UnitsPerPackage: 125},
		"large":       {DimensionMM: [2]int{75, 85}, WeightG: WeightRange{180, 220}, UnitsPerPackage: 100},
		"extra_large": {DimensionMM: [2]int{85, 100}, WeightG: WeightRange{220, 280}, UnitsPerPackage: 80},
	},
	"Banana": {
		"small":       {DimensionMM: [2]int{120, 150}, WeightG: WeightRange{80, 100}, UnitsPerPackage: 12},
		"medium":      {DimensionMM: [2]int{150, 180}, WeightG: WeightRange{100, 130}, UnitsPerPackage: 10},
		"large":       {DimensionMM: [2]int{180, 220}, WeightG: WeightRange{130, 170}, UnitsPerPackage: 8},
		"extra_large": {DimensionMM: [2]int{220, 250}, WeightG: WeightRange{170, 200}, UnitsPerPackage: 6},
	},
	"Orange": {
		"small":       {DimensionMM: [2]int{55, 65}, WeightG: WeightRange{100, 140}, UnitsPerPackage: 138},
		"medium":      {DimensionMM: [2]int{65, 75}, WeightG: WeightRange{140, 180}, UnitsPerPackage: 113},
		"large":       {DimensionMM: [2]int{75, 90}, WeightG: WeightRange{180, 250}, UnitsPerPackage: 88},
		"extra_large": {DimensionMM: [2]int{90, 110}, WeightG: WeightRange{250, 350}, UnitsPerPackage: 56},
	},
	"Mango": {
		"small":       {DimensionMM: [2]int{80, 100}, WeightG: WeightRange{180, 250}, UnitsPerPackage: 18},
		"medium":      {DimensionMM: [2]int{100, 130}, WeightG: WeightRange{250, 350}, UnitsPerPackage: 14},
		"large":       {DimensionMM: [2]int{130, 160}, WeightG: WeightRange{350, 500}, UnitsPerPackage: 10},
		"extra_large": {DimensionMM: [2]int{160, 200}, WeightG: WeightRange{500, 700}, UnitsPerPackage: 8},
	},
	"Strawberry": {
		"small":       {DimensionMM: [2]int{20, 30}, WeightG: WeightRange{8, 15}, UnitsPerPackage: 25},
		"medium":      {DimensionMM: [2]int{30, 40}, WeightG: WeightRange{15, 25}, UnitsPerPackage: 18},
		"large":       {DimensionMM: [2]int{40, 55}, WeightG: WeightRange{25, 40}, UnitsPerPackage: 12},
		"extra_large": {DimensionMM: [2]int{55, 70}, WeightG: WeightRange{40, 60}, UnitsPerPackage: 8},
	},
	"Grape": {
		"small":       {DimensionMM: [2]int{12, 16}, WeightG: WeightRange{3, 5}, UnitsPerPackage: 80},
		"medium":      {DimensionMM: [2]int{16, 20}, WeightG: WeightRange{5, 8}, UnitsPerPackage: 60},
		"large":       {DimensionMM: [2]int{20, 25}, WeightG: WeightRange{8, 12}, UnitsPerPackage: 45},
		"extra_large": {DimensionMM: [2]int{25, 32}, WeightG: WeightRange{12, 18}, UnitsPerPackage: 35},
	},
	"Watermelon": {
		"small":       {WeightG: WeightRange{2000, 4000}},
		"medium":      {WeightG: WeightRange{4000, 6000}},
		"large":       {WeightG: WeightRange{6000, 10000}},
		"extra_large": {WeightG: WeightRange{10000, 15000}},
	},
	"Pineapple": {
		"small":       {DimensionMM: [2]int{150, 180}, WeightG: WeightRange{700, 1000}},
		"medium":      {DimensionMM: [2]int{180, 220}, WeightG: WeightRange{1000, 1400}},
		"large":       {DimensionMM: [2]int{220, 280}, WeightG: WeightRange{1400, 2000}},
		"extra_large": {DimensionMM: [2]int{280, 350}, WeightG: WeightRange{2000, 2800}},
	},
	"Cherry": {
		"small":       {DimensionMM: [2]int{15, 20}, WeightG: WeightRange{4, 6}},
		"medium":      {DimensionMM: [2]int{20, 24}, WeightG: WeightRange{6, 9}},
		"large":       {DimensionMM: [2]int{24, 28}, WeightG: WeightRange{9, 12}},
		"extra_large": {DimensionMM: [2]int{28, 35}, WeightG: WeightRange{12, 16}},
	},
	"Kiwi": {
		"small":       {DimensionMM: [2]int{35, 42}, WeightG: WeightRange{50, 70}},
		"medium":      {DimensionMM: [2]int{42, 50}, WeightG: WeightRange{70, 100}},
		"large":       {DimensionMM: [2]int{50, 58}, WeightG: WeightRange{100, 130}},
		"extra_large": {DimensionMM: [2]int{58, 70}, WeightG: WeightRange{130, 170}},
	},
}

// gradeCriteria is ordered A, B, C by the callers that walk it.
var gradeCriteria = map[string]GradeCriterion{
	"A": {
		QualityScoreMin: 85,
		MaxDefects:      0,
		Ripeness:        []string{"ripe"},
		Description:     "Premium grade - Export quality",
		PriceMultiplier: 1.0,
	},
	"B": {
		QualityScoreMin: 65,
		MaxDefects:      1,
		Ripeness:        []string{"ripe", "unripe"},
		Description:     "Standard grade - Retail quality",
		PriceMultiplier: 0.80,
	},
	"C": {
		QualityScoreMin: 40,
		MaxDefects:      3,
		Ripeness:        []string{"ripe", "unripe", "overripe"},
		Description:     "Economy grade - Processing/discount",
		PriceMultiplier: 0.55,
	},
}

var ripenessBonuses = map[string]int{"ripe": 25, "unripe": 15, "overripe": 5}

var sizeBonuses = map[string]int{"extra_large": 25, "large": 20, "medium": 15, "small": 10}

// sizeMultipliers belongs to the grading engine's internal pricing
// policy. internal/integration carries its own market-facing tables.
var sizeMultipliers = map[string]float64{
	"extra_large": 1.25,
	"large":       1.10,
	"medium":      1.00,
	"small":       0.85,
}

var suitableUses = map[string]map[string][]string{
	"A": {
		"ripe":     {"premium_export", "gift_baskets", "specialty_retail", "direct_sale"},
		"unripe":   {"future_retail", "export_green"},
		"overripe": {},
	},
	"B": {
		"ripe":     {"standard_retail", "supermarkets", "local_markets"},
		"unripe":   {"ripening_rooms", "standard_retail"},
		"overripe": {"quick_sale", "discount_retail"},
	},
	"C": {
		"ripe":     {"discount_stores", "processing", "juice_production"},
		"unripe":   {"animal_feed", "composting"},
		"overripe": {"juice_production", "jam_making", "food_processing"},
	},
}

var storageRequirements = map[string]Storage{
	"Apple":      {TemperatureC: "0-4", Humidity: "90-95%", Ethylene: "producer"},
	"Banana":     {TemperatureC: "13-15", Humidity: "90-95%", Ethylene: "producer"},
	"Orange":     {TemperatureC: "3-9", Humidity: "85-90%", Ethylene: "low"},
	"Mango":      {TemperatureC: "10-13", Humidity: "85-90%", Ethylene: "producer"},
	"Strawberry": {TemperatureC: "0-1", Humidity: "90-95%", Ethylene: "sensitive"},
	"Grape":      {TemperatureC: "-1-0", Humidity: "90-95%", Ethylene: "low"},
	"Watermelon": {TemperatureC: "10-15", Humidity: "85-90%", Ethylene: "sensitive"},
	"Pineapple":  {TemperatureC: "7-10", Humidity: "85-90%", Ethylene: "low"},
	"Cherry":     {TemperatureC: "-1-0", Humidity: "90-95%", Ethylene: "low"},
	"Kiwi":       {TemperatureC: "-0.5-0", Humidity: "95-98%", Ethylene: "sensitive"},
}

var defaultStorage = Storage{TemperatureC: "2-8", Humidity: "85-95%", Ethylene: "moderate"}

// resolveFruitTable keeps the lenient-default policy explicit: unknown
// fruit types grade against the Apple standard instead of failing.
func resolveFruitTable(fruitType string) map[string]SizeStandard {
	if table, ok := fruitSizeStandards[fruitType]; ok {
		return table
	}
	return fruitSizeStandards[defaultFruit]
}

func resolveSizeStandard(fruitType, sizeCategory string) SizeStandard {
	table := resolveFruitTable(fruitType)
	if std, ok := table[sizeCategory]; ok {
		return std
	}
	return table["medium"]
}
