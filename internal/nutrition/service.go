package nutrition

import (
	"fmt"
	"math"
	"sort"
)

// Get returns the full nutrition record for a fruit, or false when the
// fruit is not in the table.
func Get(fruitClass string) (Info, bool) {
	info, ok := database[fruitClass]
	return info, ok
}

// AllFruits lists the fruit classes with nutrition data, sorted for
// stable output.
func AllFruits() []string {
	fruits := make([]string, 0, len(database))
	for fruit := range database {
		fruits = append(fruits, fruit)
	}
	sort.Strings(fruits)
	return fruits
}

// GetSummary returns the condensed record embedded into classification
// responses.
func GetSummary(fruitClass string) (Summary, bool) {
	info, ok := database[fruitClass]
	if !ok {
		return Summary{}, false
	}

	vitamins := make([]string, 0, len(info.Vitamins))
	for v := range info.Vitamins {
		vitamins = append(vitamins, v)
	}
	sort.Strings(vitamins)
	if len(vitamins) > 3 {
		vitamins = vitamins[:3]
	}

	topBenefit := ""
	if len(info.HealthBenefits) > 0 {
		topBenefit = info.HealthBenefits[0]
	}

	return Summary{
		Calories:    info.Calories,
		Carbs:       info.Carbohydrates,
		Fiber:       info.Fiber,
		Sugar:       info.Sugar,
		Protein:     info.Protein,
		KeyVitamins: vitamins,
		TopBenefit:  topBenefit,
	}, true
}

// Compare builds a side-by-side comparison; unknown fruits are skipped.
func Compare(fruits []string) map[string]Comparison {
	comparison := make(map[string]Comparison)
	for _, fruit := range fruits {
		info, ok := database[fruit]
		if !ok {
			continue
		}
		comparison[fruit] = Comparison{
			Calories:      info.Calories,
			Carbohydrates: info.Carbohydrates,
			Fiber:         info.Fiber,
			Sugar:         info.Sugar,
			Protein:       info.Protein,
			Fat:           info.Fat,
			GlycemicIndex: info.GlycemicIndex,
			GICategory:    info.GICategory,
			VitaminC:      info.Vitamins["Vitamin C"],
			Potassium:     info.Minerals["Potassium"],
		}
	}
	return comparison
}

// SearchByNutrient ranks fruits by a macro nutrient, high or low first.
// Unknown nutrients yield nil.
func SearchByNutrient(nutrient, criteria string, limit int) []NutrientRank {
	var value func(Info) float64
	switch nutrient {
	case "calories":
		value = func(i Info) float64 { return i.Calories }
	case "carbs", "carbohydrates":
		value = func(i Info) float64 { return i.Carbohydrates }
	case "fiber":
		value = func(i Info) float64 { return i.Fiber }
	case "sugar":
		value = func(i Info) float64 { return i.Sugar }
	case "protein":
		value = func(i Info) float64 { return i.Protein }
	case "fat":
		value = func(i Info) float64 { return i.Fat }
	default:
		return nil
	}

	unit := "g"
	if nutrient == "calories" {
		unit = "kcal"
	}

	var results []NutrientRank
	for fruit, info := range database {
		results = append(results, NutrientRank{Fruit: fruit, Value: value(info), Unit: unit})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Value == results[j].Value {
			return results[i].Fruit < results[j].Fruit
		}
		if criteria == "high" {
			return results[i].Value > results[j].Value
		}
		return results[i].Value < results[j].Value
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// LowGIFruits lists fruits in the low glycemic-index category.
func LowGIFruits() []SeasonalGI {
	var results []SeasonalGI
	for _, fruit := range AllFruits() {
		info := database[fruit]
		if info.GICategory == "low" {
			results = append(results, SeasonalGI{Fruit: fruit, GI: info.GlycemicIndex, Category: info.GICategory})
		}
	}
	return results
}

type SeasonalGI struct {
	Fruit    string `json:"fruit"`
	GI       int    `json:"gi"`
	Category string `json:"category"`
}

// SeasonalFruits filters by peak month; an empty month lists all.
func SeasonalFruits(month string) []SeasonalEntry {
	var results []SeasonalEntry
	for _, fruit := range AllFruits() {
		info := database[fruit]

		if month != "" {
			inSeason := false
			for _, m := range info.Season.PeakMonths {
				if m == month || m == "Year-round" {
					inSeason = true
					break
				}
			}
			if !inSeason {
				continue
			}
			results = append(results, SeasonalEntry{
				Fruit:       fruit,
				PeakMonths:  info.Season.PeakMonths,
				BestQuality: info.Season.BestQuality,
			})
			continue
		}

		results = append(results, SeasonalEntry{
			Fruit:       fruit,
			PeakMonths:  info.Season.PeakMonths,
			Available:   info.Season.Available,
			BestQuality: info.Season.BestQuality,
		})
	}
	return results
}

// CalculateServing scales the per-100g record to a custom serving and
// adds percent-of-daily-value figures.
func CalculateServing(fruitClass string, grams float64) (Serving, bool) {
	info, ok := database[fruitClass]
	if !ok {
		return Serving{}, false
	}

	mult := grams / 100

	return Serving{
		ServingSize:   fmt.Sprintf("%.0fg", grams),
		Calories:      round1(info.Calories * mult),
		Carbohydrates: round1(info.Carbohydrates * mult),
		Fiber:         round1(info.Fiber * mult),
		Sugar:         round1(info.Sugar * mult),
		Protein:       round1(info.Protein * mult),
		Fat:           round1(info.Fat * mult),
		DailyValues: map[string]float64{
			"calories":      round1(info.Calories * mult / dailyValues["calories"] * 100),
			"carbohydrates": round1(info.Carbohydrates * mult / dailyValues["carbohydrates"] * 100),
			"fiber":         round1(info.Fiber * mult / dailyValues["fiber"] * 100),
			"sugar":         round1(info.Sugar * mult / dailyValues["sugar"] * 100),
			"protein":       round1(info.Protein * mult / dailyValues["protein"] * 100),
		},
	}, true
}

// Recipes returns a fruit's recipes, optionally filtered by type.
func Recipes(fruitClass, recipeType string) []Recipe {
	info, ok := database[fruitClass]
	if !ok {
		return nil
	}
	if recipeType == "" {
		return info.Recipes
	}

	var filtered []Recipe
	for _, r := range info.Recipes {
		if r.Type == recipeType {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// StorageFor returns storage guidance for a fruit.
func StorageFor(fruitClass string) (StorageInfo, bool) {
	info, ok := database[fruitClass]
	if !ok {
		return StorageInfo{}, false
	}
	return info.Storage, true
}

// GlycemicFor returns the GI subset for a fruit.
func GlycemicFor(fruitClass string) (GlycemicInfo, bool) {
	info, ok := database[fruitClass]
	if !ok {
		return GlycemicInfo{}, false
	}
	return GlycemicInfo{
		GlycemicIndex: info.GlycemicIndex,
		GlycemicLoad:  info.GlycemicLoad,
		Category:      info.GICategory,
	}, true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
