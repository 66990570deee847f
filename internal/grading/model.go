package grading

// SizeEstimate is the result of mapping a relative visual scale
// onto a fruit-specific size standard.
type SizeEstimate struct {
	SizeCategory     string      `json:"size_category"`
	RelativeScale    float64     `json:"relative_scale"`
	EstimatedWeightG int         `json:"estimated_weight_g"`
	WeightRangeG     WeightRange `json:"weight_range_g"`
	UnitsPerPackage  int         `json:"units_per_package,omitempty"`
	Confidence       float64     `json:"confidence"`
	MeasurementNote  string      `json:"measurement_note"`
}

type WeightRange struct {
	MinG int `json:"min_g"`
	MaxG int `json:"max_g"`
}

// WeightEstimate is a standalone weight estimation for a known size category.
type WeightEstimate struct {
	FruitType        string      `json:"fruit_type"`
	SizeCategory     string      `json:"size_category"`
	EstimatedWeightG int         `json:"estimated_weight_g"`
	WeightRangeG     WeightRange `json:"weight_range_g"`
	MarginG          int         `json:"margin_g"`
	VisualDensity    string      `json:"visual_density"`
	EstimationMethod string      `json:"estimation_method"`
}

// GradeResult combines the letter grade with the blended composite score.
type GradeResult struct {
	Grade            string       `json:"grade"`
	GradeDescription string       `json:"grade_description"`
	QualityScore     int          `json:"quality_score"`
	CompositeScore   int          `json:"composite_score"`
	Factors          GradeFactors `json:"factors"`
	PriceMultiplier  float64      `json:"price_multiplier"`
	SuitableFor      []string     `json:"suitable_for"`
	GradingStandard  string       `json:"grading_standard"`
}

type GradeFactors struct {
	QualityScore int      `json:"quality_score"`
	DefectCount  int      `json:"defect_count"`
	Defects      []string `json:"defects"`
	Ripeness     string   `json:"ripeness"`
	Size         string   `json:"size"`
}

// PricingResult is the grading engine's internal pricing breakdown.
// The market-facing tier in internal/integration uses a different
// multiplier policy on purpose.
type PricingResult struct {
	FruitType          string             `json:"fruit_type"`
	Grade              string             `json:"grade"`
	Size               string             `json:"size"`
	Quantity           int                `json:"quantity"`
	BasePricePerKg     float64            `json:"base_price_per_kg"`
	EstimatedWeightG   int                `json:"estimated_weight_per_unit_g"`
	PricePerUnit       float64            `json:"price_per_unit"`
	TotalPrice         float64            `json:"total_price"`
	Currency           string             `json:"currency"`
	MultipliersApplied MultipliersApplied `json:"multipliers_applied"`
	MarketCategory     string             `json:"market_category"`
}

type MultipliersApplied struct {
	GradeMultiplier    float64 `json:"grade_multiplier"`
	SizeMultiplier     float64 `json:"size_multiplier"`
	CombinedMultiplier float64 `json:"combined_multiplier"`
}

// PackagingRecommendation mirrors the grading standards' container counts.
type PackagingRecommendation struct {
	FruitType            string   `json:"fruit_type"`
	Grade                string   `json:"grade"`
	Size                 string   `json:"size"`
	Quantity             int      `json:"quantity"`
	PackagingType        string   `json:"packaging_type"`
	Material             string   `json:"material"`
	Labeling             string   `json:"labeling"`
	Cushioning           string   `json:"cushioning"`
	UnitsPerPackage      int      `json:"units_per_package"`
	PackagesNeeded       int      `json:"packages_needed"`
	EstimatedWeightKg    float64  `json:"estimated_total_weight_kg"`
	StorageRequirements  Storage  `json:"storage_requirements"`
	HandlingInstructions []string `json:"handling_instructions"`
}

type Storage struct {
	TemperatureC string `json:"temperature_c"`
	Humidity     string `json:"humidity"`
	Ethylene     string `json:"ethylene"`
}

// ItemAttributes is the caller-supplied attribute bag for batch grading.
// Size may arrive either as a discrete category or as a continuous
// relative scale; SizeCategory wins when both are present.
type ItemAttributes struct {
	FruitType        string   `json:"fruit_type"`
	Ripeness         string   `json:"ripeness"`
	QualityScore     int      `json:"quality_score"`
	Defects          []Defect `json:"defects"`
	SizeCategory     string   `json:"size_category,omitempty"`
	RelativeScale    *float64 `json:"relative_scale,omitempty"`
	StorageCondition string   `json:"storage_condition,omitempty"`
}

// GradedItem is the per-item row inside a batch summary.
type GradedItem struct {
	FruitType        string `json:"fruit_type"`
	Grade            string `json:"grade"`
	Size             string `json:"size"`
	CompositeScore   int    `json:"composite_score"`
	EstimatedWeightG int    `json:"estimated_weight_g"`
}

type ItemError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// BatchSummary aggregates per-item grading results.
type BatchSummary struct {
	BatchSize   int          `json:"batch_size"`
	GradedItems []GradedItem `json:"graded_items"`
	Errors      []ItemError  `json:"errors,omitempty"`
	Summary     BatchTotals  `json:"summary"`
}

type BatchTotals struct {
	ByGrade               map[string]int `json:"by_grade"`
	BySize                map[string]int `json:"by_size"`
	TotalEstimatedWeightG int            `json:"total_estimated_weight_g"`
	AverageQualityScore   float64        `json:"average_quality_score"`
	DefectivePercentage   float64        `json:"defective_percentage"`
}
