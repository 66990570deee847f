package spoilage

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MCFELA123/image-classify/internal/grading"
)

// PredictSpoilage estimates the remaining shelf life of one item via
// an ordered multiplicative chain: base days by ripeness, storage
// factor, compounded defect penalties, quality factor. The result is
// rounded up to whole days and floored at zero.
func PredictSpoilage(
	fruitType string,
	ripeness string,
	qualityScore int,
	defects []grading.Defect,
	storageCondition string,
	now time.Time,
) Prediction {
	fruitLower := strings.ToLower(fruitType)
	ripenessLower := strings.ToLower(ripeness)
	if ripenessLower == "" {
		ripenessLower = "ripe"
	}
	if now.IsZero() {
		now = time.Now()
	}

	life := resolveShelfLife(fruitLower)
	baseDays := life.days(ripenessLower)
	remaining := float64(baseDays)

	storageFactor, ok := temperatureFactors[storageCondition]
	if !ok {
		storageFactor = 1.0
	}
	remaining *= storageFactor

	defectFactor := 1.0
	for _, d := range defects {
		// Defect types arrive lowercase from the HTTP decoder but raw
		// from the vision collaborator, so normalize before the lookup.
		penalty, ok := defectPenalties[strings.ToLower(strings.TrimSpace(d.Type))]
		if !ok {
			penalty = unknownDefectPenalty
		}
		defectFactor *= penalty
	}
	remaining *= defectFactor

	// A missing quality score leaves the chain untouched; only a real
	// low score shortens it (floored at 0.5).
	qualityFactor := 1.0
	if qualityScore != 0 {
		qualityFactor = math.Max(0.5, float64(qualityScore)/100)
	}
	remaining *= qualityFactor

	days := int(math.Ceil(remaining))
	if days < 0 {
		days = 0
	}

	return Prediction{
		FruitType:             fruitType,
		CurrentRipeness:       ripeness,
		PredictedSpoilageDate: now.AddDate(0, 0, days),
		DaysUntilSpoilage:     days,
		OverripeDate:          now.AddDate(0, 0, maxInt(0, days-1)),
		CriticalAlertDate:     now.AddDate(0, 0, maxInt(0, days-2)),
		Confidence:            confidence(qualityScore, len(defects)),
		Urgency:               urgency(days),
		RiskLevel:             riskLevel(days, ripenessLower),
		FactorsConsidered: Factors{
			BaseShelfLifeDays: baseDays,
			StorageImpact:     storageFactor,
			DefectImpact:      math.Round(defectFactor*100) / 100,
			QualityImpact:     math.Round(qualityFactor*100) / 100,
		},
		Recommendations:    recommendations(fruitLower, ripenessLower, days, len(defects) > 0),
		DiscountSuggestion: discountSuggestion(days, ripenessLower, qualityScore),
		StorageTips:        tipsFor(fruitLower),
		Alert:              alertFor(fruitType, days, ripenessLower, now),
	}
}

func confidence(qualityScore, defectCount int) float64 {
	c := 85.0
	if defectCount > 0 {
		c += math.Min(10, float64(defectCount)*2)
	}
	if qualityScore != 0 {
		c += float64(qualityScore) / 100 * 5
	}
	return math.Min(95, c)
}

// urgency and riskLevel run off separate threshold tables and may
// disagree; that divergence is part of the scoring contract.
func urgency(days int) string {
	switch {
	case days <= 0:
		return "expired"
	case days <= 1:
		return "critical"
	case days <= 3:
		return "high"
	case days <= 5:
		return "medium"
	default:
		return "low"
	}
}

func riskLevel(days int, ripeness string) string {
	switch {
	case days <= 0 || ripeness == "overripe":
		return "very_high"
	case days <= 2:
		return "high"
	case days <= 4:
		return "medium"
	default:
		return "low"
	}
}

func discountSuggestion(days int, ripeness string, qualityScore int) DiscountSuggestion {
	if days <= 0 {
		// Terminal branch: expired stock is pulled, not discounted.
		return DiscountSuggestion{
			DiscountPercentage: 100,
			SuggestedAction:    "remove",
			PricingTier:        "clearance",
			Reason:             "Expired",
		}
	}

	discount := 0
	switch {
	case days <= 1:
		discount = 50
	case days <= 2:
		discount = 40
	case days <= 3:
		discount = 30
	case days <= 5:
		discount = 20
	}

	if ripeness == "overripe" {
		discount += 15
	} else if ripeness == "unripe" {
		discount = maxInt(0, discount-10)
	}

	if qualityScore != 0 && qualityScore < 70 {
		discount += 10
	}

	if discount > 70 {
		discount = 70
	}

	action := "standard"
	if discount >= 30 {
		action = "quick_sale"
	}

	tier := "standard"
	switch {
	case discount >= 40:
		tier = "clearance"
	case discount >= 20:
		tier = "reduced"
	}

	return DiscountSuggestion{
		DiscountPercentage: discount,
		SuggestedAction:    action,
		PricingTier:        tier,
		Reason:             discountReason(days, ripeness),
	}
}

func discountReason(days int, ripeness string) string {
	switch {
	case days <= 1:
		return "Approaching expiration - same-day sale recommended"
	case days <= 3:
		return "Short shelf life remaining"
	case ripeness == "overripe":
		return "Peak ripeness - best consumed immediately"
	default:
		return "Standard pricing applies"
	}
}

func recommendations(fruit, ripeness string, days int, hasDefects bool) []string {
	var recs []string

	switch {
	case days <= 0:
		recs = append(recs,
			"EXPIRED: Remove from inventory immediately",
			"Consider composting or disposal",
		)
	case days <= 1:
		recs = append(recs,
			"CRITICAL: Use within 24 hours",
			"Apply maximum discount for quick sale",
			"Consider juice/smoothie processing",
		)
	case days <= 3:
		recs = append(recs,
			"Priority sale item - use quick sale strategies",
			"Move to front of display for visibility",
			"Consider bundled deals",
		)
	case ripeness == "unripe":
		recs = append(recs,
			"Can be stored longer if kept cool",
			"Monitor daily for ripening progress",
		)
	default:
		recs = append(recs, "Standard shelf life - regular monitoring")
	}

	if hasDefects {
		recs = append(recs, "Separate from healthy fruits to prevent spread")
	}

	if fruit == "banana" && ripeness == "overripe" {
		recs = append(recs, "Ideal for baking (banana bread, smoothies)")
	} else if fruit == "apple" && days <= 3 {
		recs = append(recs, "Consider for apple sauce or pie filling")
	}

	return recs
}

func tipsFor(fruitLower string) []string {
	if tips, ok := storageTips[fruitLower]; ok {
		return tips
	}
	return defaultStorageTips
}

func alertFor(fruitType string, days int, ripeness string, now time.Time) *Alert {
	if days > 3 && ripeness != "overripe" {
		return nil
	}

	level := "warning"
	if days <= 1 {
		level = "critical"
	}

	message := fmt.Sprintf("%s: %d day(s) until spoilage", fruitType, days)
	if days <= 0 {
		message = fmt.Sprintf("%s: Already spoiled", fruitType)
	}

	return &Alert{
		Level:          level,
		Message:        message,
		ActionRequired: days <= 1,
		Timestamp:      now,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
