package vision

// FruitClasses is the closed set of labels the analyzer may return.
var FruitClasses = []string{
	"Apple",
	"Banana",
	"Orange",
	"Mango",
	"Strawberry",
	"Grape",
	"Watermelon",
	"Pineapple",
	"Cherry",
	"Kiwi",
}

type TopPrediction struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
}

type Classification struct {
	PredictedClass  string          `json:"predicted_class"`
	Confidence      float64         `json:"confidence"`
	Top3Predictions []TopPrediction `json:"top_3_predictions"`
}

type RipenessInfo struct {
	Status            string  `json:"status"`
	Confidence        float64 `json:"confidence"`
	Description       string  `json:"description"`
	DaysUntilOverripe *int    `json:"days_until_overripe,omitempty"`
}

type Quality struct {
	OverallStatus   string   `json:"overall_status"`
	QualityScore    int      `json:"quality_score"`
	IsEdible        bool     `json:"is_edible"`
	DefectsDetected []string `json:"defects_detected"`
	Description     string   `json:"description"`
}

type SizeGrading struct {
	EstimatedSize string   `json:"estimated_size"`
	RelativeScale float64  `json:"relative_scale"`
	Grade         string   `json:"grade"`
	SuitableFor   []string `json:"suitable_for"`
}

type VisualAnalysis struct {
	DominantColor    string `json:"dominant_color"`
	Texture          string `json:"texture"`
	Shape            string `json:"shape"`
	SurfaceCondition string `json:"surface_condition"`
}

type Recommendations struct {
	Storage           string `json:"storage"`
	ConsumptionWindow string `json:"consumption_window"`
	Handling          string `json:"handling"`
}

// Analysis is the full structured result of one image analysis.
type Analysis struct {
	Classification  Classification  `json:"classification"`
	Ripeness        RipenessInfo    `json:"ripeness"`
	Quality         Quality         `json:"quality"`
	SizeGrading     SizeGrading     `json:"size_grading"`
	VisualAnalysis  VisualAnalysis  `json:"visual_analysis"`
	Recommendations Recommendations `json:"recommendations"`
	Degraded        bool            `json:"-"`
}
