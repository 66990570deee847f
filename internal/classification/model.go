package classification

import (
	"time"

	"github.com/MCFELA123/image-classify/internal/grading"
	"github.com/MCFELA123/image-classify/internal/integration"
	"github.com/MCFELA123/image-classify/internal/nutrition"
	"github.com/MCFELA123/image-classify/internal/spoilage"
	"github.com/MCFELA123/image-classify/internal/vision"
)

// Record is the persisted classification row. The full analysis lives
// in the Result JSONB column; the indexed columns exist for listing
// and aggregation queries.
type Record struct {
	ID             int64     `json:"classification_id"`
	UserID         *string   `json:"user_id,omitempty"`
	ImageURL       string    `json:"image_url"`
	ImageKey       string    `json:"-"`
	PredictedClass string    `json:"predicted_class"`
	Confidence     float64   `json:"confidence"`
	Result         Result    `json:"result"`
	CreatedAt      time.Time `json:"created_at"`
}

// GradingDetail bundles the deterministic scoring outputs attached to
// one classification.
type GradingDetail struct {
	Size    grading.SizeEstimate   `json:"size"`
	Weight  grading.WeightEstimate `json:"weight"`
	Grade   grading.GradeResult    `json:"grade"`
	Pricing grading.PricingResult  `json:"pricing"`
}

// Result is the full analysis blob returned to clients and stored as
// JSONB.
type Result struct {
	PredictedClass           string                 `json:"predicted_class"`
	PredictedClassTranslated string                 `json:"predicted_class_translated,omitempty"`
	Confidence               float64                `json:"confidence"`
	TopPredictions           []vision.TopPrediction `json:"top_predictions"`

	Ripeness            string  `json:"ripeness"`
	RipenessTranslated  string  `json:"ripeness_translated,omitempty"`
	RipenessConfidence  float64 `json:"ripeness_confidence"`
	RipenessDescription string  `json:"ripeness_description,omitempty"`
	DaysUntilOverripe   *int    `json:"days_until_overripe,omitempty"`

	QualityStatus           string   `json:"quality_status"`
	QualityStatusTranslated string   `json:"quality_status_translated,omitempty"`
	QualityScore            int      `json:"quality_score"`
	IsEdible                bool     `json:"is_edible"`
	DefectsDetected         []string `json:"defects_detected"`
	QualityDescription      string   `json:"quality_description,omitempty"`

	SizeGrade           string   `json:"size_grade"`
	SizeGradeTranslated string   `json:"size_grade_translated,omitempty"`
	QualityGrade        string   `json:"quality_grade"`
	SuitableFor         []string `json:"suitable_for"`

	VisualAnalysis  vision.VisualAnalysis  `json:"visual_analysis"`
	Recommendations vision.Recommendations `json:"recommendations"`

	Grading    *GradingDetail           `json:"grading,omitempty"`
	Spoilage   *spoilage.Prediction     `json:"spoilage,omitempty"`
	MarketTier *integration.PricingTier `json:"market_tier,omitempty"`
	Nutrition  *nutrition.Summary       `json:"nutrition,omitempty"`

	Language string `json:"language"`
	Degraded bool   `json:"degraded,omitempty"`
}

// Statistics is the aggregate view over stored classifications.
type Statistics struct {
	TotalClassifications int            `json:"total_classifications"`
	ClassCounts          map[string]int `json:"class_counts"`
	LastUpdated          *time.Time     `json:"last_updated,omitempty"`
}
