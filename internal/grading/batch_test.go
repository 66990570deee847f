package grading

import "testing"

func TestGradeBatch(t *testing.T) {
	scale := 0.9
	items := []ItemAttributes{
		{FruitType: "Apple", QualityScore: 90, Ripeness: "ripe", SizeCategory: "large"},
		{FruitType: "Banana", QualityScore: 70, Ripeness: "ripe", Defects: []Defect{{Type: "bruise"}}, RelativeScale: &scale},
		{FruitType: "Apple", QualityScore: 50, Ripeness: "overripe"},
	}

	got := GradeBatch(items)

	if got.BatchSize != 3 || len(got.GradedItems) != 3 {
		t.Fatalf("expected 3 graded items, got %d/%d", got.BatchSize, len(got.GradedItems))
	}

	if got.GradedItems[0].Grade != "A" || got.GradedItems[1].Grade != "B" || got.GradedItems[2].Grade != "C" {
		t.Errorf("unexpected grades: %+v", got.GradedItems)
	}

	// Item 2 buckets its 0.9 scale as extra_large; item 3 has no size
	// hint and defaults to medium.
	if got.GradedItems[1].Size != "extra_large" {
		t.Errorf("expected extra_large from relative scale, got %s", got.GradedItems[1].Size)
	}
	if got.GradedItems[2].Size != "medium" {
		t.Errorf("expected medium default size, got %s", got.GradedItems[2].Size)
	}

	if got.Summary.ByGrade["A"] != 1 || got.Summary.ByGrade["B"] != 1 || got.Summary.ByGrade["C"] != 1 {
		t.Errorf("unexpected grade counts: %+v", got.Summary.ByGrade)
	}
	if got.Summary.AverageQualityScore != 70.0 {
		t.Errorf("expected average quality 70.0, got %.1f", got.Summary.AverageQualityScore)
	}
	if got.Summary.DefectivePercentage != 33.3 {
		t.Errorf("expected 33.3%% defective, got %.1f", got.Summary.DefectivePercentage)
	}
}

func TestGradeBatchSkipsInvalidItems(t *testing.T) {
	items := []ItemAttributes{
		{FruitType: "Apple", QualityScore: 150, Ripeness: "ripe"},
		{FruitType: "Apple", QualityScore: 80, Ripeness: "ripe"},
	}

	got := GradeBatch(items)

	if len(got.GradedItems) != 1 {
		t.Fatalf("expected 1 graded item, got %d", len(got.GradedItems))
	}
	if len(got.Errors) != 1 || got.Errors[0].Index != 0 {
		t.Errorf("expected error at index 0, got %+v", got.Errors)
	}
	if got.Summary.AverageQualityScore != 80.0 {
		t.Errorf("aggregates should cover graded items only, got %.1f", got.Summary.AverageQualityScore)
	}
}

func TestGradeBatchEmpty(t *testing.T) {
	got := GradeBatch(nil)

	if got.BatchSize != 0 {
		t.Errorf("expected batch size 0, got %d", got.BatchSize)
	}
	if got.Summary.AverageQualityScore != 0 || got.Summary.DefectivePercentage != 0 {
		t.Errorf("empty batch should report zero aggregates, got %+v", got.Summary)
	}
	if got.GradedItems == nil {
		t.Error("graded items should be an empty slice, not nil")
	}
}
