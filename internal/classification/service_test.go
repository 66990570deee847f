package classification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// fakeRepository backs the service tests without a database.
type fakeRepository struct {
	records []Record
	nextID  int64
	saveErr error
}

func (r *fakeRepository) Save(ctx context.Context, record *Record) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.nextID++
	record.ID = r.nextID
	record.CreatedAt = time.Now()
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeRepository) FindByID(ctx context.Context, id int64) (*Record, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			return &r.records[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeRepository) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]Record, 0, limit)
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

func (r *fakeRepository) Statistics(ctx context.Context) (Statistics, error) {
	counts := make(map[string]int)
	for _, rec := range r.records {
		counts[rec.PredictedClass]++
	}
	return Statistics{TotalClassifications: len(r.records), ClassCounts: counts}, nil
}

func (r *fakeRepository) DeleteOlderThan(ctx context.Context, days int) ([]string, error) {
	return nil, nil
}

type fakeUploader struct {
	lastKey string
	err     error
}

func (u *fakeUploader) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.lastKey = key
	return "https://cdn.example.com/" + key, nil
}

type fakeVision struct {
	reply string
	err   error
}

func (v *fakeVision) AnalyzeImage(ctx context.Context, imageData []byte, contentType string) (string, error) {
	return v.reply, v.err
}

type recordedEvent struct {
	eventType string
}

type fakeNotifier struct {
	events []recordedEvent
}

func (n *fakeNotifier) Notify(ctx context.Context, eventType string, data interface{}) {
	n.events = append(n.events, recordedEvent{eventType: eventType})
}

const visionReply = `{
  "classification": {"predicted_class": "Apple", "confidence": 0.94},
  "ripeness": {"status": "ripe", "confidence": 0.9},
  "quality": {"overall_status": "healthy", "quality_score": 90, "is_edible": true, "defects_detected": []},
  "size_grading": {"estimated_size": "large", "relative_scale": 0.7, "grade": "A", "suitable_for": ["retail"]}
}`

func newTestService(repo *fakeRepository, notifier *fakeNotifier) (*Service, *fakeUploader) {
	uploader := &fakeUploader{}
	var n Notifier
	if notifier != nil {
		n = notifier
	}
	svc := NewService(repo, uploader, &fakeVision{reply: visionReply}, n)
	return svc, uploader
}

func TestClassifyPipeline(t *testing.T) {
	repo := &fakeRepository{}
	notifier := &fakeNotifier{}
	svc, uploader := newTestService(repo, notifier)

	record, err := svc.Classify(context.Background(), []byte("img"), "apple.png", "image/png", "es", nil)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	if record.ID == 0 {
		t.Error("expected the saved record to carry an id")
	}
	if record.PredictedClass != "Apple" {
		t.Errorf("expected Apple, got %s", record.PredictedClass)
	}
	if !strings.HasPrefix(uploader.lastKey, "classifications/") || !strings.HasSuffix(uploader.lastKey, ".png") {
		t.Errorf("unexpected storage key %s", uploader.lastKey)
	}

	res := record.Result
	// Quality 90, no defects, ripe: grade A; 0.7 scale buckets large.
	if res.QualityGrade != "A" || res.SizeGrade != "large" {
		t.Errorf("unexpected grading: %s/%s", res.QualityGrade, res.SizeGrade)
	}
	if res.Grading == nil || res.Grading.Pricing.PricePerUnit != 1.10 {
		t.Errorf("expected retail pricing wired in, got %+v", res.Grading)
	}
	if res.Spoilage == nil || res.Spoilage.DaysUntilSpoilage <= 0 {
		t.Errorf("expected a spoilage prediction, got %+v", res.Spoilage)
	}
	if res.MarketTier == nil {
		t.Error("expected a market tier")
	}
	if res.Nutrition == nil {
		t.Error("expected nutrition summary for a known fruit")
	}
	if res.PredictedClassTranslated != "Manzana" {
		t.Errorf("expected Spanish name, got %s", res.PredictedClassTranslated)
	}

	if len(notifier.events) != 1 || notifier.events[0].eventType != "classification.completed" {
		t.Errorf("expected one completion event, got %+v", notifier.events)
	}
}

func TestClassifyUnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	repo := &fakeRepository{}
	svc, _ := newTestService(repo, nil)

	record, err := svc.Classify(context.Background(), []byte("img"), "apple.png", "image/png", "xx", nil)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if record.Result.Language != "en" {
		t.Errorf("expected en fallback, got %s", record.Result.Language)
	}
}

func TestClassifyEmitsDefectEvent(t *testing.T) {
	repo := &fakeRepository{}
	notifier := &fakeNotifier{}
	uploader := &fakeUploader{}

	reply := `{
	  "classification": {"predicted_class": "Banana", "confidence": 0.9},
	  "ripeness": {"status": "overripe", "confidence": 0.9},
	  "quality": {"overall_status": "defective", "quality_score": 40, "is_edible": false, "defects_detected": ["bruise", "mold"]},
	  "size_grading": {"estimated_size": "medium", "relative_scale": 0.4, "grade": "C", "suitable_for": ["processing"]}
	}`
	svc := NewService(repo, uploader, &fakeVision{reply: reply}, notifier)

	_, err := svc.Classify(context.Background(), []byte("img"), "banana.jpg", "image/jpeg", "en", nil)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	if len(notifier.events) != 2 {
		t.Fatalf("expected completion and defect events, got %+v", notifier.events)
	}
	if notifier.events[1].eventType != "defect.detected" {
		t.Errorf("expected defect.detected, got %s", notifier.events[1].eventType)
	}
}

func TestClassifyUploadFailure(t *testing.T) {
	repo := &fakeRepository{}
	uploader := &fakeUploader{err: errors.New("bucket down")}
	svc := NewService(repo, uploader, &fakeVision{reply: visionReply}, nil)

	if _, err := svc.Classify(context.Background(), []byte("img"), "apple.png", "image/png", "en", nil); err == nil {
		t.Error("expected error when upload fails")
	}
	if len(repo.records) != 0 {
		t.Error("failed upload must not persist a record")
	}
}

func TestHistoryLimitClamp(t *testing.T) {
	repo := &fakeRepository{}
	svc, _ := newTestService(repo, nil)

	for i := 0; i < 15; i++ {
		if _, err := svc.Classify(context.Background(), []byte("img"), "a.png", "image/png", "en", nil); err != nil {
			t.Fatalf("classify failed: %v", err)
		}
	}

	records, err := svc.History(context.Background(), -5)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(records) != 10 {
		t.Errorf("invalid limit should clamp to the default 10, got %d", len(records))
	}
}

func TestRecentItemsAdaptation(t *testing.T) {
	repo := &fakeRepository{}
	svc, _ := newTestService(repo, nil)

	if _, err := svc.Classify(context.Background(), []byte("img"), "apple.png", "image/png", "en", nil); err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	items, err := svc.RecentItems(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent items failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.CropType != "Apple" || item.QualityGrade != "A" {
		t.Errorf("unexpected item %+v", item)
	}
	if item.ShelfLifeDays <= 0 {
		t.Errorf("shelf life should come from the spoilage prediction, got %d", item.ShelfLifeDays)
	}
	if !item.IsMarketable {
		t.Error("edible fruit should be marketable")
	}
}
