package grading

// CalculateGrade assigns a letter grade and a blended composite score.
// Criteria are checked in strict A then B order; C is the fallback and
// never rejects an item.
func CalculateGrade(qualityScore int, defects []Defect, ripeness, sizeCategory string) GradeResult {
	if ripeness == "" {
		ripeness = "ripe"
	}
	if defects == nil {
		defects = []Defect{}
	}
	defectCount := len(defects)

	grade := "C"
	if meetsCriterion(gradeCriteria["A"], qualityScore, defectCount, ripeness) {
		grade = "A"
	} else if meetsCriterion(gradeCriteria["B"], qualityScore, defectCount, ripeness) {
		grade = "B"
	}

	criterion := gradeCriteria[grade]

	return GradeResult{
		Grade:            grade,
		GradeDescription: criterion.Description,
		QualityScore:     qualityScore,
		CompositeScore:   compositeScore(qualityScore, defectCount, ripeness, sizeCategory),
		Factors: GradeFactors{
			QualityScore: qualityScore,
			DefectCount:  defectCount,
			Defects:      DefectTypes(defects),
			Ripeness:     ripeness,
			Size:         sizeCategory,
		},
		PriceMultiplier: criterion.PriceMultiplier,
		SuitableFor:     suitableFor(grade, ripeness),
		GradingStandard: "USDA-equivalent visual grading",
	}
}

func meetsCriterion(c GradeCriterion, qualityScore, defectCount int, ripeness string) bool {
	if qualityScore < c.QualityScoreMin || defectCount > c.MaxDefects {
		return false
	}
	for _, r := range c.Ripeness {
		if r == ripeness {
			return true
		}
	}
	return false
}

// compositeScore blends quality, defect penalty, and ripeness/size
// bonuses into a single 0-100 metric. Distinct from the raw vision
// quality score.
func compositeScore(quality, defectCount int, ripeness, size string) int {
	score := float64(quality) * 0.5
	score -= float64(defectCount) * 10

	bonus, ok := ripenessBonuses[ripeness]
	if !ok {
		bonus = 15
	}
	score += float64(bonus)

	bonus, ok = sizeBonuses[size]
	if !ok {
		bonus = 15
	}
	score += float64(bonus)

	return clampInt(int(score), 0, 100)
}

func suitableFor(grade, ripeness string) []string {
	rows, ok := suitableUses[grade]
	if !ok {
		rows = suitableUses["B"]
	}
	uses, ok := rows[ripeness]
	if !ok {
		// Unknown ripeness reads the grade's ripe row.
		uses = rows["ripe"]
	}
	return uses
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
