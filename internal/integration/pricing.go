package integration

import "math"

// Market tier multipliers. These are deliberately different from the
// retail pricing tables: external systems price against wholesale
// channel placement, not shelf price.
var (
	tierGradeMultipliers = map[string]float64{
		"A": 1.0,
		"B": 0.85,
		"C": 0.65,
	}
	tierSizeMultipliers = map[string]float64{
		"extra_large": 1.15,
		"large":       1.05,
		"medium":      1.0,
		"small":       0.90,
	}
	tierRipenessMultipliers = map[string]float64{
		"ripe":     1.0,
		"unripe":   0.80,
		"overripe": 0.60,
	}
)

const minTierMultiplier = 0.3

// CalculatePricingTier derives the wholesale price multiplier and
// market category for one assessment.
func CalculatePricingTier(grade, size, ripeness string, defectCount, qualityScore int) PricingTier {
	gradeMult, ok := tierGradeMultipliers[grade]
	if !ok {
		gradeMult = 0.85
	}
	sizeMult, ok := tierSizeMultipliers[size]
	if !ok {
		sizeMult = 1.0
	}
	ripenessMult, ok := tierRipenessMultipliers[ripeness]
	if !ok {
		ripenessMult = 1.0
	}

	defectPenalty := float64(defectCount) * 0.05
	multiplier := gradeMult*sizeMult*ripenessMult - defectPenalty
	if multiplier < minTierMultiplier {
		multiplier = minTierMultiplier
	}
	multiplier = math.Round(multiplier*100) / 100

	category := marketCategoryFor(multiplier)

	return PricingTier{
		PricingTier:     grade,
		PriceMultiplier: multiplier,
		MarketCategory:  category,
		QualityFactors: QualityFactors{
			GradeContribution:    gradeMult,
			SizeContribution:     sizeMult,
			RipenessContribution: ripenessMult,
			DefectPenalty:        defectPenalty,
		},
		Recommendations: marketRecommendationsFor(category),
	}
}

func marketCategoryFor(multiplier float64) string {
	switch {
	case multiplier >= 0.95:
		return "premium_export"
	case multiplier >= 0.85:
		return "standard_retail"
	case multiplier >= 0.70:
		return "discount_retail"
	default:
		return "processing_only"
	}
}

func marketRecommendationsFor(category string) MarketRecommendations {
	switch category {
	case "premium_export":
		return MarketRecommendations{
			SuggestedChannels: []string{"export", "premium_retail", "specialty_stores"},
			Packaging:         "individual_premium",
			Priority:          "high",
			ShelfPlacement:    "premium_section",
		}
	case "discount_retail":
		return MarketRecommendations{
			SuggestedChannels: []string{"discount_stores", "rapid_sale", "local_markets"},
			Packaging:         "economy_bulk",
			Priority:          "urgent",
			ShelfPlacement:    "discount_section",
		}
	case "processing_only":
		return MarketRecommendations{
			SuggestedChannels: []string{"juice_production", "canning", "food_processing"},
			Packaging:         "industrial_bulk",
			Priority:          "immediate",
			ShelfPlacement:    "not_for_fresh_sale",
		}
	default:
		return MarketRecommendations{
			SuggestedChannels: []string{"supermarkets", "local_retail", "wholesale"},
			Packaging:         "standard_bulk",
			Priority:          "normal",
			ShelfPlacement:    "standard_section",
		}
	}
}
