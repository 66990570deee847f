package grading

import "math"

// CalculatePricing prices a lot from the grading engine's internal
// multiplier policy (A=1.0, B=0.80, C=0.55). Callers wanting the
// market-facing tier use internal/integration instead.
func CalculatePricing(fruitType, grade, size string, quantity int, basePricePerKg float64) PricingResult {
	std := resolveSizeStandard(fruitType, size)
	avgWeightG := float64(std.WeightG.MinG+std.WeightG.MaxG) / 2

	criterion, ok := gradeCriteria[grade]
	if !ok {
		criterion = gradeCriteria["B"]
	}
	gradeMult := criterion.PriceMultiplier

	sizeMult, ok := sizeMultipliers[size]
	if !ok {
		sizeMult = 1.0
	}

	weightKg := avgWeightG / 1000
	perUnit := basePricePerKg * weightKg * gradeMult * sizeMult
	total := perUnit * float64(quantity)

	return PricingResult{
		FruitType:        fruitType,
		Grade:            grade,
		Size:             size,
		Quantity:         quantity,
		BasePricePerKg:   basePricePerKg,
		EstimatedWeightG: int(math.Round(avgWeightG)),
		PricePerUnit:     round2(perUnit),
		TotalPrice:       round2(total),
		Currency:         "USD",
		MultipliersApplied: MultipliersApplied{
			GradeMultiplier:    gradeMult,
			SizeMultiplier:     sizeMult,
			CombinedMultiplier: round2(gradeMult * sizeMult),
		},
		MarketCategory: marketCategory(grade, size),
	}
}

func marketCategory(grade, size string) string {
	switch {
	case grade == "A" && (size == "large" || size == "extra_large"):
		return "premium"
	case (grade == "A" || grade == "B") && (size == "medium" || size == "large"):
		return "standard"
	default:
		return "economy"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
