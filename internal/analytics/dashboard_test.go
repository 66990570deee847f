package analytics

import (
	"testing"
	"time"

	"github.com/MCFELA123/image-classify/internal/classification"
)

// Wednesday noon keeps the Monday week-start math predictable.
var dashNow = time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)

func record(fruit, status, ripeness, grade string, score int, confidence float64, defects []string, createdAt time.Time) classification.Record {
	return classification.Record{
		PredictedClass: fruit,
		Confidence:     confidence,
		CreatedAt:      createdAt,
		Result: classification.Result{
			PredictedClass:  fruit,
			QualityStatus:   status,
			Ripeness:        ripeness,
			QualityGrade:    grade,
			QualityScore:    score,
			DefectsDetected: defects,
		},
	}
}

func sampleRecords() []classification.Record {
	return []classification.Record{
		record("Apple", "healthy", "ripe", "A", 92, 0.95, nil, dashNow.Add(-2*time.Hour)),
		record("Apple", "minor_defects", "ripe", "B", 75, 0.90, []string{"bruise"}, dashNow.AddDate(0, 0, -1)),
		record("Banana", "defective", "overripe", "C", 40, 0.80, []string{"bruise", "mold"}, dashNow.AddDate(0, 0, -4)),
		record("Orange", "spoiled", "overripe", "", 20, 0.70, []string{"rot"}, dashNow.AddDate(0, 0, -6)),
	}
}

func TestBuildDashboardKPIs(t *testing.T) {
	got := BuildDashboard(sampleRecords(), 7, dashNow)

	k := got.KPIs
	if k.TotalProcessed != 4 {
		t.Errorf("expected 4 processed, got %d", k.TotalProcessed)
	}
	if k.HealthyPercentage != 25.0 {
		t.Errorf("expected 25%% healthy, got %.1f", k.HealthyPercentage)
	}
	if k.DefectivePercentage != 75.0 {
		t.Errorf("expected 75%% defective, got %.1f", k.DefectivePercentage)
	}
	// (0.95+0.90+0.80+0.70)/4 * 100 = 83.75, rounded to 83.8.
	if k.AverageConfidence != 83.8 {
		t.Errorf("expected avg confidence 83.8, got %.1f", k.AverageConfidence)
	}
	if k.ClassificationsToday != 1 {
		t.Errorf("expected 1 today, got %d", k.ClassificationsToday)
	}
	// Monday the 2nd starts the week; today and yesterday fall inside.
	if k.ClassificationsThisWeek != 2 {
		t.Errorf("expected 2 this week, got %d", k.ClassificationsThisWeek)
	}
}

func TestQualityDistributionBuckets(t *testing.T) {
	got := BuildDashboard(sampleRecords(), 7, dashNow).QualityDistribution

	if got["Premium"] != 1 || got["Standard"] != 1 || got["Reject"] != 2 {
		t.Errorf("unexpected distribution %v", got)
	}
}

func TestFruitDistributionSorted(t *testing.T) {
	got := BuildDashboard(sampleRecords(), 7, dashNow).FruitDistribution

	if len(got) != 3 {
		t.Fatalf("expected 3 fruits, got %d", len(got))
	}
	if got[0].Fruit != "Apple" || got[0].Count != 2 {
		t.Errorf("expected Apple first, got %+v", got[0])
	}
	if got[0].Percentage != 50.0 {
		t.Errorf("expected 50%%, got %.1f", got[0].Percentage)
	}
	// Equal counts break ties alphabetically.
	if got[1].Fruit != "Banana" || got[2].Fruit != "Orange" {
		t.Errorf("unexpected tie-break order: %+v", got[1:])
	}
}

func TestDefectAnalysis(t *testing.T) {
	got := BuildDashboard(sampleRecords(), 7, dashNow).DefectAnalysis

	if got.TotalDefective != 3 {
		t.Errorf("expected 3 defective, got %d", got.TotalDefective)
	}
	if got.MostCommonDefect != "bruise" {
		t.Errorf("expected bruise most common, got %s", got.MostCommonDefect)
	}
	if got.DefectTypes["bruise"] != 2 {
		t.Errorf("unexpected type counts %v", got.DefectTypes)
	}
}

func TestDailyTrendsFillAllDays(t *testing.T) {
	got := BuildDashboard(sampleRecords(), 7, dashNow).DailyTrends

	if len(got) != 7 {
		t.Fatalf("expected 7 trend days, got %d", len(got))
	}
	// Oldest day first, today last.
	last := got[6]
	if last.Date != "2025-06-04" || last.Total != 1 || last.Healthy != 1 {
		t.Errorf("unexpected last day %+v", last)
	}
	// Quiet days still appear with zero counts.
	if got[1].Total != 0 {
		t.Errorf("expected an empty day, got %+v", got[1])
	}
}

func TestGradeDistributionUnknownFallsToC(t *testing.T) {
	got := BuildDashboard(sampleRecords(), 7, dashNow).GradeDistribution

	if got["A"] != 1 || got["B"] != 1 || got["C"] != 2 {
		t.Errorf("unexpected grades %v", got)
	}
}

func TestRipenessDistributionCapitalized(t *testing.T) {
	got := BuildDashboard(sampleRecords(), 7, dashNow).RipenessDistribution

	if got["Ripe"] != 2 || got["Overripe"] != 2 {
		t.Errorf("unexpected ripeness %v", got)
	}
}

func TestBuildDashboardEmpty(t *testing.T) {
	got := BuildDashboard(nil, 30, dashNow)

	if got.KPIs.TotalProcessed != 0 {
		t.Errorf("expected empty KPIs, got %+v", got.KPIs)
	}
	if got.QualityDistribution == nil || got.DailyTrends == nil {
		t.Error("empty dashboard should carry empty collections, not nil")
	}
}

func TestBuildStockReport(t *testing.T) {
	records := make([]classification.Record, 0, 25)
	for i := 0; i < 22; i++ {
		records = append(records, record("Apple", "healthy", "ripe", "A", 90, 0.9, nil, dashNow))
	}
	for i := 0; i < 3; i++ {
		records = append(records, record("Kiwi", "healthy", "ripe", "B", 80, 0.9, nil, dashNow))
	}

	got := BuildStockReport(records, 7, dashNow)

	if got.TotalItems != 25 {
		t.Errorf("expected 25 items, got %d", got.TotalItems)
	}
	if got.Inventory["Apple"].StockStatus != "high" {
		t.Errorf("expected high stock for 22 apples, got %s", got.Inventory["Apple"].StockStatus)
	}
	if got.Inventory["Kiwi"].StockStatus != "low" {
		t.Errorf("expected low stock for 3 kiwis, got %s", got.Inventory["Kiwi"].StockStatus)
	}
	if got.Inventory["Apple"].AverageQuality != 90.0 {
		t.Errorf("expected avg 90.0, got %.1f", got.Inventory["Apple"].AverageQuality)
	}
}
