package integration

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// ExportForFarmManagement formats classifications in the standard FMS
// interchange format.
func ExportForFarmManagement(items []Item, now time.Time) FMSExport {
	records := make([]FMSRecord, 0, len(items))
	for _, item := range items {
		records = append(records, FMSRecord{
			ID:            item.ID,
			CropType:      item.CropType,
			QualityGrade:  item.QualityGrade,
			RipenessStage: item.Ripeness,
			SizeCategory:  item.SizeCategory,
			Defects:       item.Defects,
			QualityScore:  item.QualityScore,
			IsMarketable:  item.IsMarketable,
			Timestamp:     item.Timestamp,
			Confidence:    item.Confidence,
			Recommendations: FMSRecommendations{
				Storage:       item.Storage,
				Handling:      item.Handling,
				ShelfLifeDays: item.ShelfLifeDays,
			},
		})
	}

	return FMSExport{
		System:        "Fruit Classification System",
		ExportVersion: "2.0",
		Timestamp:     now,
		DataType:      "fruit_classification",
		Records:       records,
		Summary:       summarize(items),
	}
}

// ExportForAgriERP groups items by fruit and grade into ERP product
// lines.
func ExportForAgriERP(items []Item, now time.Time) ERPExport {
	type acc struct {
		group ERPGroup
		sum   int
	}
	grouped := make(map[string]*acc)

	for _, item := range items {
		key := item.CropType + "_" + item.QualityGrade
		a, ok := grouped[key]
		if !ok {
			a = &acc{group: ERPGroup{
				ProductCode: productCode(item.CropType, item.QualityGrade),
				ProductName: item.CropType,
				Grade:       item.QualityGrade,
			}}
			grouped[key] = a
		}
		a.group.Count++
		a.sum += item.QualityScore
	}

	keys := make([]string, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	snapshot := make([]ERPGroup, 0, len(keys))
	for _, k := range keys {
		a := grouped[k]
		a.group.AvgQualityScore = math.Round(float64(a.sum)/float64(a.group.Count)*10) / 10
		snapshot = append(snapshot, a.group)
	}

	return ERPExport{
		Format:            "AGRI_ERP_V1",
		Timestamp:         now,
		InventorySnapshot: snapshot,
		TotalItems:        len(items),
		ExportMetadata: ERPMetadata{
			SourceSystem:     "FruitAI",
			ExportType:       "quality_assessment",
			DataCompleteness: 1.0,
		},
	}
}

// GenerateInventoryReport builds a per-SKU warehouse summary.
func GenerateInventoryReport(items []Item, now time.Time) InventoryReport {
	type acc struct {
		line     InventoryLine
		scoreSum int
		shelfSum int
		uses     map[string]bool
	}
	inventory := make(map[string]*acc)

	for _, item := range items {
		key := item.CropType + "_" + item.QualityGrade + "_" + item.SizeCategory
		a, ok := inventory[key]
		if !ok {
			a = &acc{
				line: InventoryLine{
					SKU:         skuFor(item.CropType, item.QualityGrade, item.SizeCategory),
					ProductName: item.CropType,
					Grade:       item.QualityGrade,
					Size:        item.SizeCategory,
				},
				uses: make(map[string]bool),
			}
			inventory[key] = a
		}
		a.line.Quantity++
		a.scoreSum += item.QualityScore
		a.shelfSum += item.ShelfLifeDays
		for _, use := range item.SuitableFor {
			a.uses[use] = true
		}
	}

	keys := make([]string, 0, len(inventory))
	for k := range inventory {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]InventoryLine, 0, len(keys))
	total := 0
	for _, k := range keys {
		a := inventory[k]
		a.line.AvgQualityScore = math.Round(float64(a.scoreSum)/float64(a.line.Quantity)*10) / 10
		a.line.AvgShelfLifeDays = math.Round(float64(a.shelfSum)/float64(a.line.Quantity)*10) / 10

		uses := make([]string, 0, len(a.uses))
		for use := range a.uses {
			uses = append(uses, use)
		}
		sort.Strings(uses)
		a.line.SuitableFor = uses

		total += a.line.Quantity
		lines = append(lines, a.line)
	}

	return InventoryReport{
		ReportType:      "inventory_summary",
		GeneratedAt:     now,
		Items:           lines,
		TotalUniqueSKUs: len(lines),
		TotalItems:      total,
	}
}

func summarize(items []Item) ExportSummary {
	if len(items) == 0 {
		return ExportSummary{Total: 0}
	}

	total := len(items)
	byFruit := make(map[string]int)
	byGrade := map[string]int{"A": 0, "B": 0, "C": 0}
	byRipeness := map[string]int{"unripe": 0, "ripe": 0, "overripe": 0}
	defective := 0

	for _, item := range items {
		byFruit[item.CropType]++
		if _, ok := byGrade[item.QualityGrade]; ok {
			byGrade[item.QualityGrade]++
		}
		if _, ok := byRipeness[item.Ripeness]; ok {
			byRipeness[item.Ripeness]++
		}
		if len(item.Defects) > 0 {
			defective++
		}
	}

	return ExportSummary{
		Total:                total,
		ByFruitType:          byFruit,
		ByQualityGrade:       byGrade,
		ByRipeness:           byRipeness,
		DefectivePercentage:  float64(defective) / float64(total) * 100,
		MarketablePercentage: float64(total-defective) / float64(total) * 100,
	}
}

func productCode(fruit, grade string) string {
	prefix := strings.ToUpper(fruit)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("FRT_%s_%s", prefix, grade)
}

func skuFor(fruit, grade, size string) string {
	prefix := strings.ToUpper(fruit)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	sizeInitial := "M"
	if size != "" {
		sizeInitial = strings.ToUpper(size[:1])
	}
	return fmt.Sprintf("FRT-%s-%s-%s", prefix, grade, sizeInitial)
}
