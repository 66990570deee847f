package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/MCFELA123/image-classify/internal/classification"
)

// BuildDashboard computes all KPIs and chart series over the period's
// classifications.
func BuildDashboard(records []classification.Record, days int, now time.Time) Dashboard {
	if now.IsZero() {
		now = time.Now()
	}

	if len(records) == 0 {
		return emptyDashboard(now)
	}

	start := now.AddDate(0, 0, -days)
	return Dashboard{
		Period: Period{
			Days:      days,
			StartDate: &start,
			EndDate:   &now,
		},
		KPIs:                 calculateKPIs(records, now),
		QualityDistribution:  qualityDistribution(records),
		FruitDistribution:    fruitDistribution(records),
		DefectAnalysis:       defectAnalysis(records),
		RipenessDistribution: ripenessDistribution(records),
		DailyTrends:          dailyTrends(records, days, now),
		GradeDistribution:    gradeDistribution(records),
		ProcessingStats:      processingStats(records),
		GeneratedAt:          now,
	}
}

func calculateKPIs(records []classification.Record, now time.Time) KPIs {
	total := len(records)

	healthy := 0
	defective := 0
	confidenceSum := 0.0
	confidenceN := 0
	qualitySum := 0
	qualityN := 0
	today := 0
	thisWeek := 0

	todayDate := now.Truncate(24 * time.Hour)
	// Week starts on Monday.
	weekOffset := (int(now.Weekday()) + 6) % 7
	weekStart := todayDate.AddDate(0, 0, -weekOffset)

	for _, r := range records {
		if r.Result.QualityStatus == "healthy" {
			healthy++
		}
		if len(r.Result.DefectsDetected) > 0 {
			defective++
		}
		if r.Confidence > 0 {
			confidenceSum += r.Confidence
			confidenceN++
		}
		if r.Result.QualityScore > 0 {
			qualitySum += r.Result.QualityScore
			qualityN++
		}
		if !r.CreatedAt.Before(todayDate) {
			today++
		}
		if !r.CreatedAt.Before(weekStart) {
			thisWeek++
		}
	}

	avgConfidence := 0.0
	if confidenceN > 0 {
		avgConfidence = confidenceSum / float64(confidenceN)
	}
	avgQuality := 0.0
	if qualityN > 0 {
		avgQuality = float64(qualitySum) / float64(qualityN)
	}

	return KPIs{
		TotalProcessed:          total,
		HealthyPercentage:       round1(float64(healthy) / float64(total) * 100),
		DefectivePercentage:     round1(float64(defective) / float64(total) * 100),
		AverageConfidence:       round1(avgConfidence * 100),
		AverageQualityScore:     round1(avgQuality),
		ClassificationsToday:    today,
		ClassificationsThisWeek: thisWeek,
	}
}

// qualityDistribution buckets statuses into merchandising tiers.
func qualityDistribution(records []classification.Record) map[string]int {
	distribution := make(map[string]int)
	for _, r := range records {
		switch r.Result.QualityStatus {
		case "healthy":
			distribution["Premium"]++
		case "minor_defects":
			distribution["Standard"]++
		case "defective", "spoiled":
			distribution["Reject"]++
		default:
			distribution["Unknown"]++
		}
	}
	return distribution
}

func fruitDistribution(records []classification.Record) []FruitCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.PredictedClass]++
	}

	result := make([]FruitCount, 0, len(counts))
	for fruit, count := range counts {
		result = append(result, FruitCount{
			Fruit:      fruit,
			Count:      count,
			Percentage: round1(float64(count) / float64(len(records)) * 100),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count == result[j].Count {
			return result[i].Fruit < result[j].Fruit
		}
		return result[i].Count > result[j].Count
	})

	if len(result) > 10 {
		result = result[:10]
	}
	return result
}

func defectAnalysis(records []classification.Record) DefectAnalysis {
	types := make(map[string]int)
	defective := 0

	for _, r := range records {
		if len(r.Result.DefectsDetected) == 0 {
			continue
		}
		defective++
		for _, d := range r.Result.DefectsDetected {
			types[d]++
		}
	}

	mostCommon := ""
	best := 0
	for t, n := range types {
		if n > best || (n == best && t < mostCommon) {
			mostCommon = t
			best = n
		}
	}

	rate := 0.0
	if len(records) > 0 {
		rate = round1(float64(defective) / float64(len(records)) * 100)
	}

	return DefectAnalysis{
		TotalDefective:   defective,
		DefectRate:       rate,
		DefectTypes:      types,
		MostCommonDefect: mostCommon,
	}
}

func ripenessDistribution(records []classification.Record) map[string]int {
	distribution := make(map[string]int)
	for _, r := range records {
		ripeness := r.Result.Ripeness
		if ripeness == "" {
			ripeness = "unknown"
		}
		distribution[capitalize(ripeness)]++
	}
	return distribution
}

func dailyTrends(records []classification.Record, days int, now time.Time) []DailyTrend {
	type bucket struct {
		total     int
		healthy   int
		defective int
	}
	daily := make(map[string]*bucket)

	for _, r := range records {
		key := r.CreatedAt.Format("2006-01-02")
		b, ok := daily[key]
		if !ok {
			b = &bucket{}
			daily[key] = b
		}
		b.total++
		if r.Result.QualityStatus == "healthy" {
			b.healthy++
		}
		if len(r.Result.DefectsDetected) > 0 {
			b.defective++
		}
	}

	trends := make([]DailyTrend, 0, days)
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -(days - 1 - i))
		key := date.Format("2006-01-02")

		trend := DailyTrend{
			Date:  key,
			Label: date.Format("Jan 02"),
		}
		if b, ok := daily[key]; ok {
			trend.Total = b.total
			trend.Healthy = b.healthy
			trend.Defective = b.defective
		}
		trends = append(trends, trend)
	}
	return trends
}

func gradeDistribution(records []classification.Record) map[string]int {
	distribution := map[string]int{"A": 0, "B": 0, "C": 0}
	for _, r := range records {
		grade := r.Result.QualityGrade
		if _, ok := distribution[grade]; !ok {
			grade = "C"
		}
		distribution[grade]++
	}
	return distribution
}

func processingStats(records []classification.Record) ProcessingStats {
	hourCounts := make(map[int]int)
	dayCounts := make(map[string]int)
	uniqueDays := make(map[string]bool)

	for _, r := range records {
		hourCounts[r.CreatedAt.Hour()]++
		dayCounts[r.CreatedAt.Weekday().String()]++
		uniqueDays[r.CreatedAt.Format("2006-01-02")] = true
	}

	busiest := 12
	best := 0
	for hour, n := range hourCounts {
		if n > best || (n == best && hour < busiest) {
			busiest = hour
			best = n
		}
	}

	peakDay := "N/A"
	best = 0
	for day, n := range dayCounts {
		if n > best || (n == best && day < peakDay) {
			peakDay = day
			best = n
		}
	}

	days := len(uniqueDays)
	if days == 0 {
		days = 1
	}

	return ProcessingStats{
		BusiestHour: busiest,
		AvgPerDay:   round1(float64(len(records)) / float64(days)),
		PeakDay:     peakDay,
	}
}

// BuildStockReport summarizes current inventory by fruit.
func BuildStockReport(records []classification.Record, days int, now time.Time) StockReport {
	if now.IsZero() {
		now = time.Now()
	}

	type acc struct {
		count      int
		qualitySum int
		qualityN   int
		grades     map[string]int
	}
	inventory := make(map[string]*acc)

	for _, r := range records {
		a, ok := inventory[r.PredictedClass]
		if !ok {
			a = &acc{grades: make(map[string]int)}
			inventory[r.PredictedClass] = a
		}
		a.count++
		if r.Result.QualityScore > 0 {
			a.qualitySum += r.Result.QualityScore
			a.qualityN++
		}
		grade := r.Result.QualityGrade
		if grade == "" {
			grade = "C"
		}
		a.grades[grade]++
	}

	report := make(map[string]StockLine, len(inventory))
	total := 0
	for fruit, a := range inventory {
		avg := 0.0
		if a.qualityN > 0 {
			avg = round1(float64(a.qualitySum) / float64(a.qualityN))
		}

		status := "low"
		if a.count > 20 {
			status = "high"
		} else if a.count > 5 {
			status = "medium"
		}

		report[fruit] = StockLine{
			TotalCount:     a.count,
			AverageQuality: avg,
			GradeBreakdown: a.grades,
			StockStatus:    status,
		}
		total += a.count
	}

	return StockReport{
		PeriodDays:  days,
		Inventory:   report,
		TotalItems:  total,
		GeneratedAt: now,
	}
}

func emptyDashboard(now time.Time) Dashboard {
	return Dashboard{
		Period:               Period{Days: 0},
		QualityDistribution:  map[string]int{},
		FruitDistribution:    []FruitCount{},
		DefectAnalysis:       DefectAnalysis{DefectTypes: map[string]int{}},
		RipenessDistribution: map[string]int{},
		DailyTrends:          []DailyTrend{},
		GradeDistribution:    map[string]int{"A": 0, "B": 0, "C": 0},
		GeneratedAt:          now,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
