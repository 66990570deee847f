package vision

import (
	"encoding/json"
	"errors"
	"strings"
)

// ParseAnalysis decodes the model's JSON reply and normalizes it into
// the closed label set. Markdown code fences around the JSON are
// stripped first since vision models add them despite instructions.
func ParseAnalysis(raw string) (Analysis, error) {
	cleaned := stripCodeFence(raw)

	var analysis Analysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return Analysis{}, errors.New("invalid analysis JSON output")
	}

	normalize(&analysis)
	return analysis, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// normalize forces the predicted class into FruitClasses, applies
// defaults for missing fields, and tops up top-3 predictions.
func normalize(a *Analysis) {
	a.Classification.PredictedClass = resolveClass(a.Classification.PredictedClass)
	if a.Classification.Confidence <= 0 {
		a.Classification.Confidence = 0.8
	}

	existing := make(map[string]bool, len(a.Classification.Top3Predictions))
	for _, p := range a.Classification.Top3Predictions {
		existing[p.Class] = true
	}
	for _, fruit := range FruitClasses {
		if len(a.Classification.Top3Predictions) >= 3 {
			break
		}
		if !existing[fruit] {
			a.Classification.Top3Predictions = append(a.Classification.Top3Predictions, TopPrediction{Class: fruit, Confidence: 0.01})
		}
	}
	if len(a.Classification.Top3Predictions) > 3 {
		a.Classification.Top3Predictions = a.Classification.Top3Predictions[:3]
	}

	if a.Ripeness.Status == "" {
		a.Ripeness.Status = "ripe"
	}
	if a.Quality.OverallStatus == "" {
		a.Quality.OverallStatus = "healthy"
	}
	if a.Quality.QualityScore <= 0 {
		a.Quality.QualityScore = 80
	}
	if a.Quality.DefectsDetected == nil {
		a.Quality.DefectsDetected = []string{}
	}
	if a.SizeGrading.EstimatedSize == "" {
		a.SizeGrading.EstimatedSize = "medium"
	}
	if a.SizeGrading.RelativeScale <= 0 {
		a.SizeGrading.RelativeScale = 0.5
	}
	if a.SizeGrading.Grade == "" {
		a.SizeGrading.Grade = "B"
	}
	if len(a.SizeGrading.SuitableFor) == 0 {
		a.SizeGrading.SuitableFor = []string{"retail"}
	}
}

// resolveClass maps an off-list label to the closest known fruit by
// substring match, defaulting to the first class.
func resolveClass(predicted string) string {
	for _, fruit := range FruitClasses {
		if fruit == predicted {
			return fruit
		}
	}

	lower := strings.ToLower(predicted)
	if lower != "" {
		for _, fruit := range FruitClasses {
			fl := strings.ToLower(fruit)
			if strings.Contains(lower, fl) || strings.Contains(fl, lower) {
				return fruit
			}
		}
	}
	return FruitClasses[0]
}

// FallbackAnalysis is returned when the model reply cannot be parsed.
func FallbackAnalysis() Analysis {
	return Analysis{
		Classification: Classification{
			PredictedClass: FruitClasses[0],
			Confidence:     0.5,
			Top3Predictions: []TopPrediction{
				{Class: FruitClasses[0], Confidence: 0.5},
				{Class: FruitClasses[1], Confidence: 0.3},
				{Class: FruitClasses[2], Confidence: 0.2},
			},
		},
		Ripeness: RipenessInfo{
			Status:      "ripe",
			Confidence:  0.5,
			Description: "Unable to determine ripeness accurately",
		},
		Quality: Quality{
			OverallStatus:   "healthy",
			QualityScore:    50,
			IsEdible:        true,
			DefectsDetected: []string{},
		},
		SizeGrading: SizeGrading{
			EstimatedSize: "medium",
			RelativeScale: 0.5,
			Grade:         "B",
			SuitableFor:   []string{"retail"},
		},
		Degraded: true,
	}
}
