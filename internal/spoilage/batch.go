package spoilage

import (
	"math"
	"time"

	"github.com/MCFELA123/image-classify/internal/grading"
)

// Item is the per-item input for batch prediction.
type Item struct {
	FruitType        string           `json:"fruit_type"`
	Ripeness         string           `json:"ripeness"`
	QualityScore     int              `json:"quality_score"`
	Defects          []grading.Defect `json:"defects"`
	StorageCondition string           `json:"storage_condition"`
}

// BatchPredict runs the spoilage chain over a collection and counts
// items needing attention. Input order is preserved.
func BatchPredict(items []Item, now time.Time) BatchResult {
	if now.IsZero() {
		now = time.Now()
	}

	predictions := make([]Prediction, 0, len(items))
	critical := 0
	warning := 0
	discounted := 0

	for _, item := range items {
		storage := item.StorageCondition
		if storage == "" {
			storage = "room_temp"
		}

		p := PredictSpoilage(item.FruitType, item.Ripeness, item.QualityScore, item.Defects, storage, now)
		predictions = append(predictions, p)

		switch p.Urgency {
		case "critical":
			critical++
		case "high", "medium":
			warning++
		}
		if p.DiscountSuggestion.DiscountPercentage > 0 {
			discounted++
		}
	}

	return BatchResult{
		TotalItems:    len(items),
		CriticalItems: critical,
		WarningItems:  warning,
		Predictions:   predictions,
		Summary: BatchSummary{
			ImmediateActionNeeded:    critical,
			AttentionRequired:        warning,
			TotalDiscountRecommended: discounted,
		},
		GeneratedAt: now,
	}
}

// WasteReportFor estimates recoverable value across items at imminent
// risk, assuming an average base value per fruit.
func WasteReportFor(items []Item, now time.Time) WasteReport {
	if now.IsZero() {
		now = time.Now()
	}

	const basePriceUSD = 2.0

	atRisk := 0
	savings := 0.0

	for _, item := range items {
		p := PredictSpoilage(item.FruitType, item.Ripeness, item.QualityScore, item.Defects, "room_temp", now)
		if p.DaysUntilSpoilage <= 1 {
			atRisk++
			savings += basePriceUSD * (1 - float64(p.DiscountSuggestion.DiscountPercentage)/100)
		}
	}

	wastePct := 0.0
	if len(items) > 0 {
		wastePct = math.Round(float64(atRisk)/float64(len(items))*1000) / 10
	}

	return WasteReport{
		ItemsAnalyzed:       len(items),
		ItemsAtRisk:         atRisk,
		WastePercentage:     wastePct,
		PotentialSavingsUSD: math.Round(savings*100) / 100,
		Recommendations: []string{
			"Implement daily spoilage checks",
			"Apply dynamic pricing based on freshness",
			"Partner with food banks for near-expiry items",
			"Consider processing (juice, preserves) for overripe items",
		},
		GeneratedAt: now,
	}
}
