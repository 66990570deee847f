package label

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 256

// FruitLabel is the payload encoded into a classification QR code.
type FruitLabel struct {
	Type             string  `json:"type"`
	Version          string  `json:"version"`
	Fruit            string  `json:"fruit"`
	Grade            string  `json:"grade"`
	QualityScore     float64 `json:"quality_score"`
	Price            float64 `json:"price,omitempty"`
	Ripeness         string  `json:"ripeness,omitempty"`
	ClassificationID string  `json:"id,omitempty"`
	BatchID          string  `json:"batch,omitempty"`
	FarmSource       string  `json:"source,omitempty"`
	HarvestDate      string  `json:"harvest_date,omitempty"`
	GeneratedAt      string  `json:"generated_at"`
}

// BatchLabel is the payload for a whole-batch QR code.
type BatchLabel struct {
	Type        string         `json:"type"`
	BatchID     string         `json:"batch_id"`
	Fruits      []string       `json:"fruits"`
	Count       int            `json:"count"`
	AvgQuality  float64        `json:"avg_quality"`
	Grades      map[string]int `json:"grades"`
	TotalPrice  float64        `json:"total_price"`
	FarmSource  string         `json:"source,omitempty"`
	GeneratedAt string         `json:"generated_at"`
}

// PriceTag is the payload for a shelf price tag QR code.
type PriceTag struct {
	Type        string  `json:"type"`
	Fruit       string  `json:"fruit"`
	Price       float64 `json:"price"`
	FinalPrice  float64 `json:"final_price"`
	Unit        string  `json:"unit"`
	Grade       string  `json:"grade"`
	Currency    string  `json:"currency"`
	Discount    float64 `json:"discount,omitempty"`
	Expiry      string  `json:"expiry,omitempty"`
	GeneratedAt string  `json:"generated_at"`
}

// Encoded is a rendered QR code.
type Encoded struct {
	Content string `json:"qr_content"`
	Image   string `json:"image"`
	Format  string `json:"format"`
	Size    string `json:"size"`
}

// GenerateFruitQR renders a classification label QR code as base64
// PNG.
func GenerateFruitQR(l FruitLabel, now time.Time) (Encoded, error) {
	l.Type = "fruit_classification"
	l.Version = "1.0"
	l.QualityScore = math.Round(l.QualityScore*10) / 10
	if l.Price != 0 {
		l.Price = math.Round(l.Price*100) / 100
	}
	l.GeneratedAt = now.Format(time.RFC3339)

	return encode(l)
}

// GenerateBatchLabel renders a batch QR code. Duplicate fruit names
// are collapsed.
func GenerateBatchLabel(l BatchLabel, now time.Time) (Encoded, error) {
	l.Type = "batch_label"
	l.AvgQuality = math.Round(l.AvgQuality*10) / 10
	l.TotalPrice = math.Round(l.TotalPrice*100) / 100
	l.GeneratedAt = now.Format(time.RFC3339)

	seen := make(map[string]bool)
	unique := make([]string, 0, len(l.Fruits))
	for _, fruit := range l.Fruits {
		if !seen[fruit] {
			seen[fruit] = true
			unique = append(unique, fruit)
		}
	}
	sort.Strings(unique)
	l.Fruits = unique

	return encode(l)
}

// GeneratePriceTag renders a price tag QR code with the discounted
// final price.
func GeneratePriceTag(t PriceTag, now time.Time) (Encoded, string, error) {
	t.Type = "price_tag"
	if t.Unit == "" {
		t.Unit = "piece"
	}
	if t.Currency == "" {
		t.Currency = "USD"
	}
	if t.Grade == "" {
		t.Grade = "A"
	}

	final := t.Price * (1 - t.Discount/100)
	t.Price = math.Round(t.Price*100) / 100
	t.FinalPrice = math.Round(final*100) / 100
	t.GeneratedAt = now.Format(time.RFC3339)

	encoded, err := encode(t)
	if err != nil {
		return Encoded{}, "", err
	}

	display := fmt.Sprintf("%s %.2f/%s", t.Currency, t.FinalPrice, t.Unit)
	return encoded, display, nil
}

func encode(payload interface{}) (Encoded, error) {
	content, err := json.Marshal(payload)
	if err != nil {
		return Encoded{}, fmt.Errorf("marshal label: %w", err)
	}

	png, err := qrcode.Encode(string(content), qrcode.Medium, qrImageSize)
	if err != nil {
		return Encoded{}, fmt.Errorf("encode qr: %w", err)
	}

	return Encoded{
		Content: string(content),
		Image:   "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		Format:  "png_base64",
		Size:    fmt.Sprintf("%dx%d", qrImageSize, qrImageSize),
	}, nil
}
