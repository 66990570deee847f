package grading

import "math"

type packagingType struct {
	Type       string
	Material   string
	Labeling   string
	Cushioning string
}

var packagingTypes = map[string]packagingType{
	"A": {
		Type:       "premium_individual",
		Material:   "Recycled cardboard with foam inserts",
		Labeling:   "Premium grade label with origin",
		Cushioning: "Individual fruit cushioning",
	},
	"B": {
		Type:       "standard_bulk",
		Material:   "Standard cardboard boxes",
		Labeling:   "Standard grade markings",
		Cushioning: "Layer dividers",
	},
	"C": {
		Type:       "economy_bulk",
		Material:   "Basic cardboard or crates",
		Labeling:   "Basic identification",
		Cushioning: "Minimal",
	},
}

var handlingInstructions = map[string][]string{
	"A": {
		"Handle with extreme care - premium product",
		"Avoid stacking heavy loads",
		"Keep away from ethylene producers if sensitive",
		"Maintain cold chain",
		"Inspect for damage before display",
	},
	"B": {
		"Standard careful handling",
		"Use proper stacking techniques",
		"Monitor storage conditions",
		"Rotate stock - first in, first out",
	},
	"C": {
		"Handle carefully despite grade",
		"Process quickly to reduce waste",
		"Check for deterioration regularly",
	},
}

// RecommendPackaging derives container counts and handling guidance
// from the size standards and grade.
func RecommendPackaging(fruitType, grade, size string, quantity int) PackagingRecommendation {
	std := resolveSizeStandard(fruitType, size)

	unitsPerPackage := std.UnitsPerPackage
	if unitsPerPackage == 0 {
		unitsPerPackage = 50
	}

	packagesNeeded := int(math.Ceil(float64(quantity) / float64(unitsPerPackage)))
	if quantity <= 0 {
		packagesNeeded = 0
	}

	pkg, ok := packagingTypes[grade]
	if !ok {
		pkg = packagingTypes["B"]
	}

	instructions, ok := handlingInstructions[grade]
	if !ok {
		instructions = handlingInstructions["B"]
	}

	storage, ok := storageRequirements[fruitType]
	if !ok {
		storage = defaultStorage
	}

	return PackagingRecommendation{
		FruitType:            fruitType,
		Grade:                grade,
		Size:                 size,
		Quantity:             quantity,
		PackagingType:        pkg.Type,
		Material:             pkg.Material,
		Labeling:             pkg.Labeling,
		Cushioning:           pkg.Cushioning,
		UnitsPerPackage:      unitsPerPackage,
		PackagesNeeded:       packagesNeeded,
		EstimatedWeightKg:    round2(float64(quantity*std.WeightG.MinG) / 1000),
		StorageRequirements:  storage,
		HandlingInstructions: instructions,
	}
}

// StorageRequirementsFor exposes the storage table to other packages.
func StorageRequirementsFor(fruitType string) Storage {
	if storage, ok := storageRequirements[fruitType]; ok {
		return storage
	}
	return defaultStorage
}
