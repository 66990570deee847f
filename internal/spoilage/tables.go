package spoilage

// ShelfLife holds base days at optimal conditions per ripeness state.
type ShelfLife struct {
	Unripe   int
	Ripe     int
	Overripe int
}

// shelfLifeData is keyed by lowercase fruit type.
var shelfLifeData = map[string]ShelfLife{
	"apple":      {Unripe: 14, Ripe: 7, Overripe: 2},
	"banana":     {Unripe: 7, Ripe: 3, Overripe: 1},
	"orange":     {Unripe: 21, Ripe: 14, Overripe: 5},
	"mango":      {Unripe: 10, Ripe: 4, Overripe: 2},
	"strawberry": {Unripe: 5, Ripe: 3, Overripe: 1},
	"grape":      {Unripe: 10, Ripe: 5, Overripe: 2},
	"watermelon": {Unripe: 14, Ripe: 7, Overripe: 3},
	"pineapple":  {Unripe: 7, Ripe: 4, Overripe: 2},
	"cherry":     {Unripe: 7, Ripe: 4, Overripe: 1},
	"kiwi":       {Unripe: 14, Ripe: 7, Overripe: 3},
}

var defaultShelfLife = ShelfLife{Unripe: 7, Ripe: 4, Overripe: 2}

var temperatureFactors = map[string]float64{
	"refrigerated":      1.5,
	"room_temp":         1.0,
	"warm":              0.5,
	"cold_chain_broken": 0.3,
}

// defectPenalties compound multiplicatively across defects; several
// defects model sharply accelerating spoilage.
var defectPenalties = map[string]float64{
	"bruise":        0.7,
	"soft_spot":     0.6,
	"discoloration": 0.8,
	"mold":          0.1,
	"rot":           0.0,
	"cuts":          0.5,
	"insect_damage": 0.4,
}

const unknownDefectPenalty = 0.9

func (s ShelfLife) days(ripeness string) int {
	switch ripeness {
	case "unripe":
		return s.Unripe
	case "overripe":
		return s.Overripe
	default:
		return s.Ripe
	}
}

// resolveShelfLife keeps the unknown-fruit fallback visible and testable.
func resolveShelfLife(fruitLower string) ShelfLife {
	if life, ok := shelfLifeData[fruitLower]; ok {
		return life
	}
	return defaultShelfLife
}

var storageTips = map[string][]string{
	"apple": {
		"Store in refrigerator crisper drawer",
		"Keep away from strong-smelling foods",
		"Store separately from ethylene-sensitive produce",
	},
	"banana": {
		"Store at room temperature until ripe",
		"Refrigerate once ripe to slow ripening",
		"Separate from other fruits to slow ripening",
	},
	"orange": {
		"Store at room temperature for up to a week",
		"Refrigerate for longer storage",
		"Keep in mesh bag for air circulation",
	},
	"mango": {
		"Ripen at room temperature",
		"Refrigerate once ripe",
		"Store in paper bag to speed ripening",
	},
	"strawberry": {
		"Refrigerate immediately",
		"Don't wash until ready to use",
		"Store in single layer if possible",
	},
	"grape": {
		"Refrigerate unwashed in perforated bag",
		"Wash just before eating",
		"Keep stem attached until eating",
	},
}

var defaultStorageTips = []string{
	"Store in cool, dry place",
	"Check daily for signs of spoilage",
	"Separate from ethylene producers if sensitive",
}
