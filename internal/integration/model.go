package integration

import "time"

// Item is the flattened classification view exchanged with external
// farm-management and inventory systems.
type Item struct {
	ID            string    `json:"id"`
	CropType      string    `json:"crop_type"`
	QualityGrade  string    `json:"quality_grade"`
	Ripeness      string    `json:"ripeness"`
	SizeCategory  string    `json:"size_category"`
	Defects       []string  `json:"defects"`
	QualityScore  int       `json:"quality_score"`
	IsMarketable  bool      `json:"is_marketable"`
	Confidence    float64   `json:"confidence"`
	Timestamp     time.Time `json:"timestamp"`
	Storage       string    `json:"storage"`
	Handling      string    `json:"handling"`
	ShelfLifeDays int       `json:"shelf_life_days"`
	SuitableFor   []string  `json:"suitable_for"`
}

// PricingTier is the market placement derived from one assessment.
type PricingTier struct {
	PricingTier     string                `json:"pricing_tier"`
	PriceMultiplier float64               `json:"price_multiplier"`
	MarketCategory  string                `json:"market_category"`
	QualityFactors  QualityFactors        `json:"quality_factors"`
	Recommendations MarketRecommendations `json:"recommendations"`
}

type QualityFactors struct {
	GradeContribution    float64 `json:"grade_contribution"`
	SizeContribution     float64 `json:"size_contribution"`
	RipenessContribution float64 `json:"ripeness_contribution"`
	DefectPenalty        float64 `json:"defect_penalty"`
}

type MarketRecommendations struct {
	SuggestedChannels []string `json:"suggested_channels"`
	Packaging         string   `json:"packaging"`
	Priority          string   `json:"priority"`
	ShelfPlacement    string   `json:"shelf_placement"`
}

// FMSRecord is one row in the standard farm-management export.
type FMSRecord struct {
	ID              string             `json:"id"`
	CropType        string             `json:"crop_type"`
	QualityGrade    string             `json:"quality_grade"`
	RipenessStage   string             `json:"ripeness_stage"`
	SizeCategory    string             `json:"size_category"`
	Defects         []string           `json:"defects"`
	QualityScore    int                `json:"quality_score"`
	IsMarketable    bool               `json:"is_marketable"`
	Timestamp       time.Time          `json:"timestamp"`
	Confidence      float64            `json:"confidence"`
	Recommendations FMSRecommendations `json:"recommendations"`
}

type FMSRecommendations struct {
	Storage       string `json:"storage"`
	Handling      string `json:"handling"`
	ShelfLifeDays int    `json:"shelf_life_days"`
}

// FMSExport is the standard export envelope.
type FMSExport struct {
	System        string        `json:"system"`
	ExportVersion string        `json:"export_version"`
	Timestamp     time.Time     `json:"timestamp"`
	DataType      string        `json:"data_type"`
	Records       []FMSRecord   `json:"records"`
	Summary       ExportSummary `json:"summary"`
}

type ExportSummary struct {
	Total                int            `json:"total"`
	ByFruitType          map[string]int `json:"by_fruit_type,omitempty"`
	ByQualityGrade       map[string]int `json:"by_quality_grade,omitempty"`
	ByRipeness           map[string]int `json:"by_ripeness,omitempty"`
	DefectivePercentage  float64        `json:"defective_percentage"`
	MarketablePercentage float64        `json:"marketable_percentage"`
}

// ERPGroup is one product line in the agricultural ERP export.
type ERPGroup struct {
	ProductCode     string  `json:"product_code"`
	ProductName     string  `json:"product_name"`
	Grade           string  `json:"grade"`
	Count           int     `json:"count"`
	AvgQualityScore float64 `json:"avg_quality_score"`
}

type ERPExport struct {
	Format            string      `json:"format"`
	Timestamp         time.Time   `json:"timestamp"`
	InventorySnapshot []ERPGroup  `json:"inventory_snapshot"`
	TotalItems        int         `json:"total_items"`
	ExportMetadata    ERPMetadata `json:"export_metadata"`
}

type ERPMetadata struct {
	SourceSystem     string  `json:"source_system"`
	ExportType       string  `json:"export_type"`
	DataCompleteness float64 `json:"data_completeness"`
}

// InventoryLine is one SKU in the warehouse inventory report.
type InventoryLine struct {
	SKU              string   `json:"sku"`
	ProductName      string   `json:"product_name"`
	Grade            string   `json:"grade"`
	Size             string   `json:"size"`
	Quantity         int      `json:"quantity"`
	AvgQualityScore  float64  `json:"avg_quality_score"`
	AvgShelfLifeDays float64  `json:"avg_shelf_life_days"`
	SuitableFor      []string `json:"suitable_for"`
}

type InventoryReport struct {
	ReportType      string          `json:"report_type"`
	GeneratedAt     time.Time       `json:"generated_at"`
	Items           []InventoryLine `json:"items"`
	TotalUniqueSKUs int             `json:"total_unique_skus"`
	TotalItems      int             `json:"total_items"`
}

// Webhook is a registered notification target.
type Webhook struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Events    []string  `json:"events"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// AvailableEvents lists the event types webhooks may subscribe to.
var AvailableEvents = []string{
	"classification.completed",
	"quality.alert",
	"defect.detected",
	"batch.processed",
	"inventory.update",
}
