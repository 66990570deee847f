package grading

import "testing"

func TestCalculatePricingLargeGradeA(t *testing.T) {
	// Large apple averages 200g; grade A keeps the full multiplier and
	// large adds 10%: 5.0 * 0.2 * 1.0 * 1.10 = 1.10 per unit.
	got := CalculatePricing("Apple", "A", "large", 10, 5.0)

	if got.PricePerUnit != 1.10 {
		t.Errorf("expected 1.10 per unit, got %.2f", got.PricePerUnit)
	}
	if got.TotalPrice != 11.00 {
		t.Errorf("expected 11.00 total, got %.2f", got.TotalPrice)
	}
	if got.MultipliersApplied.CombinedMultiplier != 1.10 {
		t.Errorf("expected combined multiplier 1.10, got %.2f", got.MultipliersApplied.CombinedMultiplier)
	}
	if got.MarketCategory != "premium" {
		t.Errorf("expected premium category, got %s", got.MarketCategory)
	}
}

func TestCalculatePricingGradeAndSizeDiscounts(t *testing.T) {
	gradeC := CalculatePricing("Apple", "C", "small", 1, 5.0)

	// Small apple averages 120g: 5.0 * 0.12 * 0.55 * 0.85 = 0.2805.
	if gradeC.PricePerUnit != 0.28 {
		t.Errorf("expected 0.28 per unit, got %.2f", gradeC.PricePerUnit)
	}
	if gradeC.MarketCategory != "economy" {
		t.Errorf("expected economy category, got %s", gradeC.MarketCategory)
	}
}

func TestCalculatePricingUnknownGradeFallsBackToB(t *testing.T) {
	unknown := CalculatePricing("Apple", "Z", "medium", 1, 5.0)
	b := CalculatePricing("Apple", "B", "medium", 1, 5.0)

	if unknown.PricePerUnit != b.PricePerUnit {
		t.Errorf("unknown grade should price as B: got %.2f, want %.2f", unknown.PricePerUnit, b.PricePerUnit)
	}
}

func TestRecommendPackaging(t *testing.T) {
	got := RecommendPackaging("Apple", "A", "large", 250)

	if got.UnitsPerPackage != 100 {
		t.Errorf("expected 100 units per package, got %d", got.UnitsPerPackage)
	}
	if got.PackagesNeeded != 3 {
		t.Errorf("expected 3 packages for 250 units, got %d", got.PackagesNeeded)
	}
	if got.PackagingType != "premium_individual" {
		t.Errorf("expected premium packaging for grade A, got %s", got.PackagingType)
	}
	if got.StorageRequirements.TemperatureC != "0-4" {
		t.Errorf("expected apple storage temperature, got %s", got.StorageRequirements.TemperatureC)
	}
}

func TestRecommendPackagingZeroQuantity(t *testing.T) {
	got := RecommendPackaging("Apple", "B", "medium", 0)
	if got.PackagesNeeded != 0 {
		t.Errorf("expected 0 packages for empty lot, got %d", got.PackagesNeeded)
	}
}

func TestRecommendPackagingDefaultsUnitsPerPackage(t *testing.T) {
	// Watermelon standards carry no package counts.
	got := RecommendPackaging("Watermelon", "B", "medium", 75)
	if got.UnitsPerPackage != 50 {
		t.Errorf("expected default 50 units per package, got %d", got.UnitsPerPackage)
	}
	if got.PackagesNeeded != 2 {
		t.Errorf("expected 2 packages, got %d", got.PackagesNeeded)
	}
}

func TestStorageRequirementsFor(t *testing.T) {
	if got := StorageRequirementsFor("Banana"); got.TemperatureC != "13-15" {
		t.Errorf("expected banana storage, got %+v", got)
	}
	if got := StorageRequirementsFor("Durian"); got != defaultStorage {
		t.Errorf("expected default storage for unknown fruit, got %+v", got)
	}
}
