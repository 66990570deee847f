package classification

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MCFELA123/image-classify/internal/grading"
	"github.com/MCFELA123/image-classify/internal/integration"
	"github.com/MCFELA123/image-classify/internal/multilingual"
	"github.com/MCFELA123/image-classify/internal/nutrition"
	"github.com/MCFELA123/image-classify/internal/spoilage"
	"github.com/MCFELA123/image-classify/internal/vision"
)

// defaultBasePricePerKg anchors the retail pricing breakdown when the
// caller does not supply market prices.
const defaultBasePricePerKg = 5.0

// Uploader stores the raw image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Notifier publishes integration events. May be nil.
type Notifier interface {
	Notify(ctx context.Context, eventType string, data interface{})
}

type Service struct {
	repo     Repository
	uploader Uploader
	vision   vision.Client
	notifier Notifier
}

func NewService(repo Repository, uploader Uploader, visionClient vision.Client, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		uploader: uploader,
		vision:   visionClient,
		notifier: notifier,
	}
}

// Classify runs the full pipeline for one image: upload, vision
// analysis, deterministic scoring, persistence, webhook notification.
func (s *Service) Classify(ctx context.Context, imageData []byte, filename, contentType, language string, userID *string) (*Record, error) {
	if !multilingual.IsSupported(language) {
		language = "en"
	}

	key := fmt.Sprintf("classifications/%s%s", uuid.New().String(), path.Ext(filename))
	imageURL, err := s.uploader.Upload(ctx, key, imageData, contentType)
	if err != nil {
		return nil, fmt.Errorf("image upload: %w", err)
	}

	analysis, err := vision.Analyze(ctx, s.vision, imageData, contentType)
	if err != nil {
		return nil, fmt.Errorf("image analysis: %w", err)
	}

	result := s.buildResult(analysis, language)

	record := &Record{
		UserID:         userID,
		ImageURL:       imageURL,
		ImageKey:       key,
		PredictedClass: result.PredictedClass,
		Confidence:     result.Confidence,
		Result:         result,
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("save classification: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, "classification.completed", record)
		if len(result.DefectsDetected) > 0 {
			s.notifier.Notify(ctx, "defect.detected", record)
		}
	}

	return record, nil
}

// buildResult derives the scoring layers from the raw vision analysis.
func (s *Service) buildResult(analysis vision.Analysis, language string) Result {
	fruit := analysis.Classification.PredictedClass
	ripeness := analysis.Ripeness.Status
	qualityScore := analysis.Quality.QualityScore

	defects := make([]grading.Defect, 0, len(analysis.Quality.DefectsDetected))
	for _, d := range analysis.Quality.DefectsDetected {
		defects = append(defects, grading.Defect{Type: strings.ToLower(strings.TrimSpace(d))})
	}

	size := grading.EstimateSize(fruit, analysis.SizeGrading.RelativeScale)
	weight := grading.EstimateWeight(fruit, size.SizeCategory, "normal")
	grade := grading.CalculateGrade(qualityScore, defects, ripeness, size.SizeCategory)
	pricing := grading.CalculatePricing(fruit, grade.Grade, size.SizeCategory, 1, defaultBasePricePerKg)

	prediction := spoilage.PredictSpoilage(fruit, ripeness, qualityScore, defects, "room_temp", time.Now())
	tier := integration.CalculatePricingTier(grade.Grade, size.SizeCategory, ripeness, len(defects), qualityScore)

	translated := multilingual.TranslateResult(fruit, ripeness, analysis.Quality.OverallStatus, size.SizeCategory, language)

	result := Result{
		PredictedClass:           fruit,
		PredictedClassTranslated: translated.FruitName,
		Confidence:               analysis.Classification.Confidence,
		TopPredictions:           analysis.Classification.Top3Predictions,

		Ripeness:            ripeness,
		RipenessTranslated:  translated.Ripeness,
		RipenessConfidence:  analysis.Ripeness.Confidence,
		RipenessDescription: analysis.Ripeness.Description,
		DaysUntilOverripe:   analysis.Ripeness.DaysUntilOverripe,

		QualityStatus:           analysis.Quality.OverallStatus,
		QualityStatusTranslated: translated.Quality,
		QualityScore:            qualityScore,
		IsEdible:                analysis.Quality.IsEdible,
		DefectsDetected:         analysis.Quality.DefectsDetected,
		QualityDescription:      analysis.Quality.Description,

		SizeGrade:           size.SizeCategory,
		SizeGradeTranslated: translated.SizeGrade,
		QualityGrade:        grade.Grade,
		SuitableFor:         grade.SuitableFor,

		VisualAnalysis:  analysis.VisualAnalysis,
		Recommendations: analysis.Recommendations,

		Grading: &GradingDetail{
			Size:    size,
			Weight:  weight,
			Grade:   grade,
			Pricing: pricing,
		},
		Spoilage:   &prediction,
		MarketTier: &tier,

		Language: language,
		Degraded: analysis.Degraded,
	}

	if summary, ok := nutrition.GetSummary(fruit); ok {
		result.Nutrition = &summary
	}

	return result
}

// History returns the most recent classifications.
func (s *Service) History(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 || limit > 500 {
		limit = 10
	}
	return s.repo.Recent(ctx, limit)
}

func (s *Service) Get(ctx context.Context, id int64) (*Record, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Statistics(ctx context.Context) (Statistics, error) {
	return s.repo.Statistics(ctx)
}

// RecentItems adapts stored records into the integration exchange
// shape.
func (s *Service) RecentItems(ctx context.Context, limit int) ([]integration.Item, error) {
	records, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}

	items := make([]integration.Item, 0, len(records))
	for _, record := range records {
		res := record.Result

		shelfLifeDays := 5
		if res.Spoilage != nil {
			shelfLifeDays = res.Spoilage.DaysUntilSpoilage
		} else if res.DaysUntilOverripe != nil {
			shelfLifeDays = *res.DaysUntilOverripe
		}

		items = append(items, integration.Item{
			ID:            fmt.Sprintf("%d", record.ID),
			CropType:      record.PredictedClass,
			QualityGrade:  res.QualityGrade,
			Ripeness:      res.Ripeness,
			SizeCategory:  res.SizeGrade,
			Defects:       res.DefectsDetected,
			QualityScore:  res.QualityScore,
			IsMarketable:  res.IsEdible,
			Confidence:    record.Confidence,
			Timestamp:     record.CreatedAt,
			Storage:       res.Recommendations.Storage,
			Handling:      res.Recommendations.Handling,
			ShelfLifeDays: shelfLifeDays,
			SuitableFor:   res.SuitableFor,
		})
	}
	return items, nil
}
