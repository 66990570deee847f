package nutrition

// Info is the per-100g nutrition record for one fruit class.
type Info struct {
	Calories       float64           `json:"calories"`
	Carbohydrates  float64           `json:"carbohydrates"`
	Fiber          float64           `json:"fiber"`
	Sugar          float64           `json:"sugar"`
	Protein        float64           `json:"protein"`
	Fat            float64           `json:"fat"`
	Vitamins       map[string]string `json:"vitamins"`
	Minerals       map[string]string `json:"minerals"`
	HealthBenefits []string          `json:"health_benefits"`
	GlycemicIndex  int               `json:"glycemic_index"`
	GlycemicLoad   int               `json:"glycemic_load"`
	GICategory     string            `json:"gi_category"`
	Season         Season            `json:"season"`
	Storage        StorageInfo       `json:"storage"`
	Recipes        []Recipe          `json:"recipes"`
}

type Season struct {
	PeakMonths  []string `json:"peak_months"`
	Available   string   `json:"available"`
	BestQuality string   `json:"best_quality"`
}

type StorageInfo struct {
	RoomTemp     string `json:"room_temp"`
	Refrigerated string `json:"refrigerated"`
	Tips         string `json:"tips"`
	Ripening     string `json:"ripening"`
}

type Recipe struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Type        string   `json:"type"`
}

// Summary is the condensed record used inside classification responses.
type Summary struct {
	Calories    float64  `json:"calories"`
	Carbs       float64  `json:"carbs"`
	Fiber       float64  `json:"fiber"`
	Sugar       float64  `json:"sugar"`
	Protein     float64  `json:"protein"`
	KeyVitamins []string `json:"key_vitamins"`
	TopBenefit  string   `json:"top_benefit,omitempty"`
}

// Comparison is one fruit's row in a side-by-side comparison.
type Comparison struct {
	Calories      float64 `json:"calories"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fiber         float64 `json:"fiber"`
	Sugar         float64 `json:"sugar"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	GlycemicIndex int     `json:"glycemic_index"`
	GICategory    string  `json:"gi_category"`
	VitaminC      string  `json:"vitamin_c"`
	Potassium     string  `json:"potassium"`
}

// NutrientRank is a search-by-nutrient result row.
type NutrientRank struct {
	Fruit string  `json:"fruit"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// GlycemicInfo is the GI subset for one fruit.
type GlycemicInfo struct {
	GlycemicIndex int    `json:"glycemic_index"`
	GlycemicLoad  int    `json:"glycemic_load"`
	Category      string `json:"category"`
}

// SeasonalEntry is one fruit's seasonality row.
type SeasonalEntry struct {
	Fruit       string   `json:"fruit"`
	PeakMonths  []string `json:"peak_months"`
	Available   string   `json:"available,omitempty"`
	BestQuality string   `json:"best_quality"`
}

// Serving is nutrition scaled to a custom serving size.
type Serving struct {
	ServingSize   string             `json:"serving_size"`
	Calories      float64            `json:"calories"`
	Carbohydrates float64            `json:"carbohydrates"`
	Fiber         float64            `json:"fiber"`
	Sugar         float64            `json:"sugar"`
	Protein       float64            `json:"protein"`
	Fat           float64            `json:"fat"`
	DailyValues   map[string]float64 `json:"daily_values"`
}
