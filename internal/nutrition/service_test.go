package nutrition

import "testing"

func TestGetKnownAndUnknownFruit(t *testing.T) {
	info, ok := Get("Apple")
	if !ok {
		t.Fatal("expected apple nutrition data")
	}
	if info.Calories != 52 {
		t.Errorf("expected 52 kcal per 100g, got %.1f", info.Calories)
	}

	if _, ok := Get("Durian"); ok {
		t.Error("expected no data for unknown fruit")
	}
}

func TestGetSummaryCapsVitamins(t *testing.T) {
	summary, ok := GetSummary("Apple")
	if !ok {
		t.Fatal("expected apple summary")
	}
	if len(summary.KeyVitamins) > 3 {
		t.Errorf("summary should carry at most 3 vitamins, got %d", len(summary.KeyVitamins))
	}
	if summary.TopBenefit == "" {
		t.Error("expected a top benefit")
	}
}

func TestCompareSkipsUnknownFruits(t *testing.T) {
	got := Compare([]string{"Apple", "Banana", "Durian"})

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if _, ok := got["Durian"]; ok {
		t.Error("unknown fruit should be skipped, not zero-filled")
	}
	if got["Banana"].Calories != 89 {
		t.Errorf("expected 89 kcal for banana, got %.1f", got["Banana"].Calories)
	}
}

func TestSearchByNutrient(t *testing.T) {
	high := SearchByNutrient("calories", "high", 3)
	if len(high) != 3 {
		t.Fatalf("expected 3 results, got %d", len(high))
	}
	if high[0].Value < high[1].Value || high[1].Value < high[2].Value {
		t.Errorf("expected descending order, got %+v", high)
	}
	if high[0].Unit != "kcal" {
		t.Errorf("expected kcal unit for calories, got %s", high[0].Unit)
	}

	low := SearchByNutrient("sugar", "low", 1)
	if len(low) != 1 {
		t.Fatalf("expected 1 result, got %d", len(low))
	}

	if got := SearchByNutrient("sodium", "high", 5); got != nil {
		t.Errorf("unknown nutrient should return nil, got %+v", got)
	}
}

func TestCalculateServing(t *testing.T) {
	serving, ok := CalculateServing("Apple", 150)
	if !ok {
		t.Fatal("expected apple serving")
	}

	if serving.ServingSize != "150g" {
		t.Errorf("expected 150g label, got %s", serving.ServingSize)
	}
	// 52 kcal per 100g scaled by 1.5.
	if serving.Calories != 78.0 {
		t.Errorf("expected 78 kcal, got %.1f", serving.Calories)
	}
	// 78 / 2000 * 100 = 3.9% DV.
	if serving.DailyValues["calories"] != 3.9 {
		t.Errorf("expected 3.9%% DV, got %.1f", serving.DailyValues["calories"])
	}

	if _, ok := CalculateServing("Durian", 100); ok {
		t.Error("expected no serving for unknown fruit")
	}
}

func TestRecipesFilterByType(t *testing.T) {
	all := Recipes("Apple", "")
	if len(all) == 0 {
		t.Fatal("expected apple recipes")
	}

	smoothies := Recipes("Apple", "smoothie")
	for _, r := range smoothies {
		if r.Type != "smoothie" {
			t.Errorf("filter leaked type %s", r.Type)
		}
	}
	if len(smoothies) >= len(all) {
		t.Errorf("filter should narrow the list: %d vs %d", len(smoothies), len(all))
	}
}

func TestLowGIFruitsSortedAndFiltered(t *testing.T) {
	got := LowGIFruits()
	if len(got) == 0 {
		t.Fatal("expected low-GI fruits")
	}
	for i, entry := range got {
		if entry.Category != "low" {
			t.Errorf("entry %s is not low GI", entry.Fruit)
		}
		if i > 0 && got[i-1].Fruit > entry.Fruit {
			t.Error("expected alphabetical order")
		}
	}
}

func TestSeasonalFruitsYearRoundAlwaysMatch(t *testing.T) {
	got := SeasonalFruits("October")

	found := false
	for _, entry := range got {
		if entry.Fruit == "Banana" {
			found = true
		}
	}
	if !found {
		t.Error("year-round fruits should match any month")
	}

	all := SeasonalFruits("")
	if len(all) != len(AllFruits()) {
		t.Errorf("empty month should list all fruits: %d vs %d", len(all), len(AllFruits()))
	}
}
