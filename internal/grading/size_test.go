package grading

import "testing"

func TestEstimateSizeBuckets(t *testing.T) {
	cases := []struct {
		scale float64
		want  string
	}{
		{0.10, "small"},
		{0.29, "small"},
		{0.30, "medium"},
		{0.54, "medium"},
		{0.55, "large"},
		{0.79, "large"},
		{0.80, "extra_large"},
		{0.95, "extra_large"},
	}

	for _, c := range cases {
		got := EstimateSize("Apple", c.scale)
		if got.SizeCategory != c.want {
			t.Errorf("scale %.2f: expected %s, got %s", c.scale, c.want, got.SizeCategory)
		}
	}
}

func TestEstimateSizeClampsScale(t *testing.T) {
	low := EstimateSize("Apple", -0.5)
	if low.SizeCategory != "small" || low.RelativeScale != 0 {
		t.Errorf("expected clamped small/0, got %s/%.2f", low.SizeCategory, low.RelativeScale)
	}

	high := EstimateSize("Apple", 1.8)
	if high.SizeCategory != "extra_large" || high.RelativeScale != 1 {
		t.Errorf("expected clamped extra_large/1, got %s/%.2f", high.SizeCategory, high.RelativeScale)
	}
}

func TestEstimateSizeConfidence(t *testing.T) {
	// A scale sitting exactly on a bracket center is maximally confident.
	center := EstimateSize("Apple", 0.42)
	if center.Confidence != 0.95 {
		t.Errorf("expected 0.95 at bracket center, got %.2f", center.Confidence)
	}

	// Straddling a boundary drops confidence but never below the floor.
	boundary := EstimateSize("Apple", 0.285)
	if boundary.Confidence >= center.Confidence {
		t.Errorf("boundary confidence %.2f should be below center %.2f", boundary.Confidence, center.Confidence)
	}
	if boundary.Confidence < 0.60 {
		t.Errorf("confidence %.2f below floor", boundary.Confidence)
	}
}

func TestEstimateSizeUnknownFruitUsesAppleStandard(t *testing.T) {
	got := EstimateSize("Dragonfruit", 0.6)
	want := EstimateSize("Apple", 0.6)
	if got.EstimatedWeightG != want.EstimatedWeightG || got.WeightRangeG != want.WeightRangeG {
		t.Errorf("unknown fruit should grade against the Apple standard, got %+v", got)
	}
}

func TestEstimateWeightDensity(t *testing.T) {
	normal := EstimateWeight("Apple", "medium", "normal")
	if normal.EstimatedWeightG != 160 {
		t.Errorf("expected 160g for medium apple, got %d", normal.EstimatedWeightG)
	}
	if normal.MarginG != 10 {
		t.Errorf("expected 10g margin, got %d", normal.MarginG)
	}

	dense := EstimateWeight("Apple", "medium", "dense")
	if dense.EstimatedWeightG != 184 {
		t.Errorf("expected 184g for dense medium apple, got %d", dense.EstimatedWeightG)
	}

	unknown := EstimateWeight("Apple", "medium", "fluffy")
	if unknown.VisualDensity != "normal" || unknown.EstimatedWeightG != 160 {
		t.Errorf("unknown density should fall back to normal, got %+v", unknown)
	}
}
