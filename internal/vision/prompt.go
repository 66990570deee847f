package vision

import "strings"

func BuildAnalysisPrompt() string {
	fruitList := strings.Join(FruitClasses, ", ")

	return `You are an expert fruit analyst with deep knowledge of agriculture, food science, and quality control.
Analyze this fruit image comprehensively and provide detailed information.

Available fruit categories: ` + fruitList + `

Provide your response in the following JSON format:
{
    "classification": {
        "predicted_class": "FruitName",
        "confidence": 0.95,
        "top_3_predictions": [
            {"class": "FruitName1", "confidence": 0.95},
            {"class": "FruitName2", "confidence": 0.03},
            {"class": "FruitName3", "confidence": 0.02}
        ]
    },
    "ripeness": {
        "status": "ripe",
        "confidence": 0.90,
        "description": "The fruit appears to be at optimal ripeness based on color and texture",
        "days_until_overripe": 3
    },
    "quality": {
        "overall_status": "healthy",
        "quality_score": 85,
        "is_edible": true,
        "defects_detected": [],
        "description": "The fruit appears healthy with no visible defects"
    },
    "size_grading": {
        "estimated_size": "medium",
        "relative_scale": 0.7,
        "grade": "A",
        "suitable_for": ["retail", "export"]
    },
    "visual_analysis": {
        "dominant_color": "red",
        "texture": "smooth",
        "shape": "round",
        "surface_condition": "clean"
    },
    "recommendations": {
        "storage": "Refrigerate at 4C for best freshness",
        "consumption_window": "Best consumed within 3-5 days",
        "handling": "Handle gently to prevent bruising"
    }
}

Ripeness status options: "unripe", "ripe", "overripe"
Quality status options: "healthy", "minor_defects", "defective", "spoiled"
Size options: "small", "medium", "large", "extra_large"
Grade options: "A" (premium), "B" (standard), "C" (economy)

Defect types to check for: bruises, rot, mold, discoloration, cuts, blemishes, deformity, pest_damage

Rules:
1. The predicted_class MUST be one of the available categories
2. Confidence values should be between 0 and 1
3. Quality score should be 0-100
4. Be specific about any defects detected
5. Consider ripeness based on color, texture, and typical fruit characteristics
6. Only respond with valid JSON, no additional text`
}
