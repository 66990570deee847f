package analytics

import "time"

// Dashboard is the complete KPI and chart payload.
type Dashboard struct {
	Period               Period          `json:"period"`
	KPIs                 KPIs            `json:"kpis"`
	QualityDistribution  map[string]int  `json:"quality_distribution"`
	FruitDistribution    []FruitCount    `json:"fruit_distribution"`
	DefectAnalysis       DefectAnalysis  `json:"defect_analysis"`
	RipenessDistribution map[string]int  `json:"ripeness_distribution"`
	DailyTrends          []DailyTrend    `json:"daily_trends"`
	GradeDistribution    map[string]int  `json:"grade_distribution"`
	ProcessingStats      ProcessingStats `json:"processing_stats"`
	GeneratedAt          time.Time       `json:"generated_at"`
}

type Period struct {
	Days      int        `json:"days"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type KPIs struct {
	TotalProcessed          int     `json:"total_processed"`
	HealthyPercentage       float64 `json:"healthy_percentage"`
	DefectivePercentage     float64 `json:"defective_percentage"`
	AverageConfidence       float64 `json:"average_confidence"`
	AverageQualityScore     float64 `json:"average_quality_score"`
	ClassificationsToday    int     `json:"classifications_today"`
	ClassificationsThisWeek int     `json:"classifications_this_week"`
}

type FruitCount struct {
	Fruit      string  `json:"fruit"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type DefectAnalysis struct {
	TotalDefective   int            `json:"total_defective"`
	DefectRate       float64        `json:"defect_rate"`
	DefectTypes      map[string]int `json:"defect_types"`
	MostCommonDefect string         `json:"most_common_defect,omitempty"`
}

type DailyTrend struct {
	Date      string `json:"date"`
	Label     string `json:"label"`
	Total     int    `json:"total"`
	Healthy   int    `json:"healthy"`
	Defective int    `json:"defective"`
}

type ProcessingStats struct {
	BusiestHour int     `json:"busiest_hour"`
	AvgPerDay   float64 `json:"avg_per_day"`
	PeakDay     string  `json:"peak_day"`
}

// StockLine is one fruit's inventory position.
type StockLine struct {
	TotalCount     int            `json:"total_count"`
	AverageQuality float64        `json:"average_quality"`
	GradeBreakdown map[string]int `json:"grade_breakdown"`
	StockStatus    string         `json:"stock_status"`
}

type StockReport struct {
	PeriodDays  int                  `json:"period_days"`
	Inventory   map[string]StockLine `json:"inventory"`
	TotalItems  int                  `json:"total_items"`
	GeneratedAt time.Time            `json:"generated_at"`
}
