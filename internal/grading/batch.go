package grading

import (
	"fmt"
	"math"
)

// GradeBatch grades a collection of items and folds the results into
// summary statistics. Malformed items are skipped and reported rather
// than aborting the batch; aggregates cover graded items only.
func GradeBatch(items []ItemAttributes) BatchSummary {
	summary := BatchSummary{
		BatchSize:   len(items),
		GradedItems: []GradedItem{},
		Summary: BatchTotals{
			ByGrade: map[string]int{"A": 0, "B": 0, "C": 0},
			BySize:  map[string]int{"small": 0, "medium": 0, "large": 0, "extra_large": 0},
		},
	}

	totalQuality := 0
	defectiveCount := 0
	graded := 0

	for i, item := range items {
		if item.QualityScore < 0 || item.QualityScore > 100 {
			summary.Errors = append(summary.Errors, ItemError{
				Index:  i,
				Reason: fmt.Sprintf("quality_score %d outside [0,100]", item.QualityScore),
			})
			continue
		}

		fruitType := item.FruitType
		if fruitType == "" {
			fruitType = defaultFruit
		}

		size := resolveItemSize(fruitType, item)
		grade := CalculateGrade(item.QualityScore, item.Defects, item.Ripeness, size.SizeCategory)

		summary.GradedItems = append(summary.GradedItems, GradedItem{
			FruitType:        fruitType,
			Grade:            grade.Grade,
			Size:             size.SizeCategory,
			CompositeScore:   grade.CompositeScore,
			EstimatedWeightG: size.EstimatedWeightG,
		})

		summary.Summary.ByGrade[grade.Grade]++
		summary.Summary.BySize[size.SizeCategory]++
		summary.Summary.TotalEstimatedWeightG += size.EstimatedWeightG
		totalQuality += item.QualityScore
		if len(item.Defects) > 0 {
			defectiveCount++
		}
		graded++
	}

	if graded > 0 {
		summary.Summary.AverageQualityScore = round1(float64(totalQuality) / float64(graded))
		summary.Summary.DefectivePercentage = round1(float64(defectiveCount) / float64(graded) * 100)
	}

	return summary
}

// resolveItemSize handles the discrete/continuous size union: a named
// category wins, otherwise the relative scale is bucketed (0.5 when
// the caller supplied neither).
func resolveItemSize(fruitType string, item ItemAttributes) SizeEstimate {
	if item.SizeCategory != "" {
		category := item.SizeCategory
		if _, ok := sizeBonuses[category]; !ok {
			category = "medium"
		}
		std := resolveSizeStandard(fruitType, category)
		return SizeEstimate{
			SizeCategory:     category,
			EstimatedWeightG: (std.WeightG.MinG + std.WeightG.MaxG) / 2,
			WeightRangeG:     std.WeightG,
			UnitsPerPackage:  std.UnitsPerPackage,
		}
	}

	scale := 0.5
	if item.RelativeScale != nil {
		scale = *item.RelativeScale
	}
	return EstimateSize(fruitType, scale)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
