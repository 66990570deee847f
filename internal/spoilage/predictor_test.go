package spoilage

import (
	"testing"
	"time"

	"github.com/MCFELA123/image-classify/internal/grading"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestPredictSpoilageOverripeApple(t *testing.T) {
	// Base 2 days, room temp, no defects, quality 80: 2 * 1.0 * 0.8 = 1.6,
	// rounded up to 2 days.
	got := PredictSpoilage("Apple", "overripe", 80, nil, "room_temp", testNow)

	if got.DaysUntilSpoilage != 2 {
		t.Errorf("expected 2 days, got %d", got.DaysUntilSpoilage)
	}
	if got.Urgency != "high" {
		t.Errorf("expected high urgency, got %s", got.Urgency)
	}
	if got.RiskLevel != "very_high" {
		t.Errorf("overripe fruit is always very_high risk, got %s", got.RiskLevel)
	}
	if got.PredictedSpoilageDate != testNow.AddDate(0, 0, 2) {
		t.Errorf("unexpected spoilage date %v", got.PredictedSpoilageDate)
	}
	if got.Alert == nil {
		t.Fatal("expected an alert within the 3-day window")
	}
}

func TestPredictSpoilageRefrigerationExtendsLife(t *testing.T) {
	room := PredictSpoilage("Banana", "ripe", 100, nil, "room_temp", testNow)
	fridge := PredictSpoilage("Banana", "ripe", 100, nil, "refrigerated", testNow)

	if room.DaysUntilSpoilage != 3 {
		t.Errorf("expected 3 days at room temp, got %d", room.DaysUntilSpoilage)
	}
	// 3 * 1.5 = 4.5, rounded up to 5.
	if fridge.DaysUntilSpoilage != 5 {
		t.Errorf("expected 5 days refrigerated, got %d", fridge.DaysUntilSpoilage)
	}
}

func TestPredictSpoilageDefectLookupIgnoresCase(t *testing.T) {
	// Apple ripe base 7 days; a bruise (0.7) gives 4.9, rounded up to 5.
	// Casing and padding come straight from the vision reply and must
	// not demote a known defect to the unknown penalty.
	for _, typ := range []string{"bruise", "Bruise", " BRUISE "} {
		got := PredictSpoilage("Apple", "ripe", 100, []grading.Defect{{Type: typ}}, "room_temp", testNow)
		if got.DaysUntilSpoilage != 5 {
			t.Errorf("%q: expected 5 days, got %d", typ, got.DaysUntilSpoilage)
		}
		if got.FactorsConsidered.DefectImpact != 0.7 {
			t.Errorf("%q: expected defect impact 0.7, got %.2f", typ, got.FactorsConsidered.DefectImpact)
		}
	}
}

func TestPredictSpoilageDefectsCompound(t *testing.T) {
	defects := []grading.Defect{{Type: "bruise"}, {Type: "soft_spot"}}
	got := PredictSpoilage("Orange", "ripe", 0, defects, "room_temp", testNow)

	// 14 * 0.7 * 0.6 = 5.88, rounded up to 6. Quality 0 means no score
	// was supplied and leaves the chain untouched.
	if got.DaysUntilSpoilage != 6 {
		t.Errorf("expected 6 days, got %d", got.DaysUntilSpoilage)
	}
	if got.FactorsConsidered.DefectImpact != 0.42 {
		t.Errorf("expected defect impact 0.42, got %.2f", got.FactorsConsidered.DefectImpact)
	}
	if got.FactorsConsidered.QualityImpact != 1.0 {
		t.Errorf("missing quality score should not shorten shelf life, got %.2f", got.FactorsConsidered.QualityImpact)
	}
}

func TestPredictSpoilageQualityFactorFloor(t *testing.T) {
	got := PredictSpoilage("Apple", "ripe", 10, nil, "room_temp", testNow)
	if got.FactorsConsidered.QualityImpact != 0.5 {
		t.Errorf("quality factor floors at 0.5, got %.2f", got.FactorsConsidered.QualityImpact)
	}
}

func TestPredictSpoilageRotIsTerminal(t *testing.T) {
	got := PredictSpoilage("Apple", "ripe", 90, []grading.Defect{{Type: "rot"}}, "room_temp", testNow)

	if got.DaysUntilSpoilage != 0 {
		t.Fatalf("rot should zero the shelf life, got %d days", got.DaysUntilSpoilage)
	}
	if got.Urgency != "expired" {
		t.Errorf("expected expired urgency, got %s", got.Urgency)
	}

	d := got.DiscountSuggestion
	if d.DiscountPercentage != 100 || d.SuggestedAction != "remove" || d.Reason != "Expired" {
		t.Errorf("expired stock should be pulled, got %+v", d)
	}

	if got.Alert == nil || got.Alert.Level != "critical" || !got.Alert.ActionRequired {
		t.Errorf("expected critical alert, got %+v", got.Alert)
	}
}

func TestPredictSpoilageUnknownFruitAndStorage(t *testing.T) {
	got := PredictSpoilage("Dragonfruit", "ripe", 0, nil, "in_transit", testNow)
	// Default shelf life 4 days, unknown storage factor 1.0.
	if got.DaysUntilSpoilage != 4 {
		t.Errorf("expected default 4 days, got %d", got.DaysUntilSpoilage)
	}
}

func TestDiscountSuggestionCap(t *testing.T) {
	// Day-1 overripe with poor quality: 50 + 15 + 10 = 75, capped at 70.
	got := PredictSpoilage("Banana", "overripe", 40, nil, "warm", testNow)

	if got.DaysUntilSpoilage != 1 {
		t.Fatalf("expected 1 day, got %d", got.DaysUntilSpoilage)
	}
	d := got.DiscountSuggestion
	if d.DiscountPercentage != 70 {
		t.Errorf("expected discount capped at 70, got %d", d.DiscountPercentage)
	}
	if d.SuggestedAction != "quick_sale" || d.PricingTier != "clearance" {
		t.Errorf("unexpected suggestion %+v", d)
	}
}

func TestBatchPredict(t *testing.T) {
	items := []Item{
		{FruitType: "Strawberry", Ripeness: "overripe", QualityScore: 50, StorageCondition: "warm"},
		{FruitType: "Apple", Ripeness: "overripe", QualityScore: 80},
		{FruitType: "Orange", Ripeness: "unripe", QualityScore: 95, StorageCondition: "refrigerated"},
	}

	got := BatchPredict(items, testNow)

	if got.TotalItems != 3 || len(got.Predictions) != 3 {
		t.Fatalf("expected 3 predictions, got %d", len(got.Predictions))
	}
	// Warm overripe strawberry: 1 * 0.5 * 0.5 rounds up to 1 day.
	if got.CriticalItems != 1 {
		t.Errorf("expected 1 critical item, got %d", got.CriticalItems)
	}
	// The 2-day apple lands in the warning band.
	if got.WarningItems != 1 {
		t.Errorf("expected 1 warning item, got %d", got.WarningItems)
	}
	if got.Summary.ImmediateActionNeeded != 1 || got.Summary.AttentionRequired != 1 {
		t.Errorf("unexpected summary %+v", got.Summary)
	}
}

func TestWasteReportFor(t *testing.T) {
	items := []Item{
		{FruitType: "Banana", Ripeness: "overripe", QualityScore: 90},
		{FruitType: "Orange", Ripeness: "ripe", QualityScore: 90},
	}

	got := WasteReportFor(items, testNow)

	if got.ItemsAnalyzed != 2 {
		t.Errorf("expected 2 items analyzed, got %d", got.ItemsAnalyzed)
	}
	if got.ItemsAtRisk != 1 {
		t.Errorf("expected 1 item at risk, got %d", got.ItemsAtRisk)
	}
	if got.WastePercentage != 50.0 {
		t.Errorf("expected 50%% waste, got %.1f", got.WastePercentage)
	}
}

func TestWasteReportEmpty(t *testing.T) {
	got := WasteReportFor(nil, testNow)
	if got.WastePercentage != 0 || got.ItemsAtRisk != 0 {
		t.Errorf("empty inventory should report zero waste, got %+v", got)
	}
}
