package spoilage

import "time"

// Prediction is the full spoilage forecast for one item.
type Prediction struct {
	FruitType             string             `json:"fruit_type"`
	CurrentRipeness       string             `json:"current_ripeness"`
	PredictedSpoilageDate time.Time          `json:"predicted_spoilage_date"`
	DaysUntilSpoilage     int                `json:"days_until_spoilage"`
	OverripeDate          time.Time          `json:"overripe_date"`
	CriticalAlertDate     time.Time          `json:"critical_alert_date"`
	Confidence            float64            `json:"confidence"`
	Urgency               string             `json:"urgency"`
	RiskLevel             string             `json:"risk_level"`
	FactorsConsidered     Factors            `json:"factors_considered"`
	Recommendations       []string           `json:"recommendations"`
	DiscountSuggestion    DiscountSuggestion `json:"discount_suggestion"`
	StorageTips           []string           `json:"storage_tips"`
	Alert                 *Alert             `json:"alert,omitempty"`
}

type Factors struct {
	BaseShelfLifeDays int     `json:"base_shelf_life"`
	StorageImpact     float64 `json:"storage_impact"`
	DefectImpact      float64 `json:"defect_impact"`
	QualityImpact     float64 `json:"quality_impact"`
}

type DiscountSuggestion struct {
	DiscountPercentage int    `json:"discount_percentage"`
	SuggestedAction    string `json:"suggested_action"`
	PricingTier        string `json:"pricing_tier"`
	Reason             string `json:"reason"`
}

type Alert struct {
	Level          string    `json:"level"`
	Message        string    `json:"message"`
	ActionRequired bool      `json:"action_required"`
	Timestamp      time.Time `json:"timestamp"`
}

// BatchResult aggregates predictions over a collection of items.
type BatchResult struct {
	TotalItems    int          `json:"total_items"`
	CriticalItems int          `json:"critical_items"`
	WarningItems  int          `json:"warning_items"`
	Predictions   []Prediction `json:"predictions"`
	Summary       BatchSummary `json:"summary"`
	GeneratedAt   time.Time    `json:"generated_at"`
}

type BatchSummary struct {
	ImmediateActionNeeded    int `json:"immediate_action_needed"`
	AttentionRequired        int `json:"attention_required"`
	TotalDiscountRecommended int `json:"total_discount_recommended"`
}

// WasteReport estimates avoidable waste over analyzed items.
type WasteReport struct {
	ItemsAnalyzed       int       `json:"items_analyzed"`
	ItemsAtRisk         int       `json:"items_at_risk"`
	WastePercentage     float64   `json:"waste_percentage"`
	PotentialSavingsUSD float64   `json:"potential_savings_usd"`
	Recommendations     []string  `json:"recommendations"`
	GeneratedAt         time.Time `json:"generated_at"`
}
