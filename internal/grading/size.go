package grading

import "math"

// Bracket centers used for the size-confidence heuristic. Scales near
// a center are confident; scales straddling a boundary are not.
var categoryCenters = [4]float64{0.15, 0.42, 0.67, 0.90}

// EstimateSize maps a relative visual scale in [0,1] onto a discrete
// size category and weight estimate. Out-of-range scales are clamped
// rather than rejected.
func EstimateSize(fruitType string, relativeScale float64) SizeEstimate {
	scale := clampFloat(relativeScale, 0, 1)

	var sizeCategory string
	switch {
	case scale < 0.30:
		sizeCategory = "small"
	case scale < 0.55:
		sizeCategory = "medium"
	case scale < 0.80:
		sizeCategory = "large"
	default:
		sizeCategory = "extra_large"
	}

	std := resolveSizeStandard(fruitType, sizeCategory)
	estimatedWeight := (std.WeightG.MinG + std.WeightG.MaxG) / 2

	return SizeEstimate{
		SizeCategory:     sizeCategory,
		RelativeScale:    scale,
		EstimatedWeightG: estimatedWeight,
		WeightRangeG:     std.WeightG,
		UnitsPerPackage:  std.UnitsPerPackage,
		Confidence:       sizeConfidence(scale),
		MeasurementNote:  "Visual estimation - actual weight may vary",
	}
}

func sizeConfidence(scale float64) float64 {
	minDistance := math.MaxFloat64
	for _, center := range categoryCenters {
		if d := math.Abs(scale - center); d < minDistance {
			minDistance = d
		}
	}
	confidence := clampFloat(1-minDistance*2, 0.60, 0.95)
	return math.Round(confidence*100) / 100
}

var densityMultipliers = map[string]float64{
	"light":  0.85,
	"normal": 1.0,
	"dense":  1.15,
}

// EstimateWeight estimates unit weight for an already-known size
// category, optionally adjusted by a visual density hint.
func EstimateWeight(fruitType, sizeCategory, visualDensity string) WeightEstimate {
	std := resolveSizeStandard(fruitType, sizeCategory)

	base := float64(std.WeightG.MinG+std.WeightG.MaxG) / 2
	mult, ok := densityMultipliers[visualDensity]
	if !ok {
		visualDensity = "normal"
		mult = 1.0
	}

	margin := (std.WeightG.MaxG - std.WeightG.MinG) / 4

	return WeightEstimate{
		FruitType:        fruitType,
		SizeCategory:     sizeCategory,
		EstimatedWeightG: int(math.Round(base * mult)),
		WeightRangeG:     std.WeightG,
		MarginG:          margin,
		VisualDensity:    visualDensity,
		EstimationMethod: "visual_analysis",
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
