package grading

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type sizeRequest struct {
	FruitType     string  `json:"fruit_type"`
	RelativeScale float64 `json:"relative_scale"`
}

func (h *Handler) EstimateSize(c *gin.Context) {
	var req sizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.JSON(http.StatusOK, EstimateSize(req.FruitType, req.RelativeScale))
}

type weightRequest struct {
	FruitType     string `json:"fruit_type"`
	SizeCategory  string `json:"size_category"`
	VisualDensity string `json:"visual_density"`
}

func (h *Handler) EstimateWeight(c *gin.Context) {
	var req weightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.JSON(http.StatusOK, EstimateWeight(req.FruitType, req.SizeCategory, req.VisualDensity))
}

type gradeRequest struct {
	QualityScore int      `json:"quality_score"`
	Defects      []Defect `json:"defects"`
	Ripeness     string   `json:"ripeness"`
	SizeCategory string   `json:"size_category"`
}

func (h *Handler) CalculateGrade(c *gin.Context) {
	var req gradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.QualityScore < 0 || req.QualityScore > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quality_score must be between 0 and 100"})
		return
	}

	c.JSON(http.StatusOK, CalculateGrade(req.QualityScore, req.Defects, req.Ripeness, req.SizeCategory))
}

type pricingRequest struct {
	FruitType      string  `json:"fruit_type"`
	Grade          string  `json:"grade"`
	SizeCategory   string  `json:"size_category"`
	Quantity       int     `json:"quantity"`
	BasePricePerKg float64 `json:"base_price_per_kg"`
}

func (h *Handler) CalculatePricing(c *gin.Context) {
	var req pricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must not be negative"})
		return
	}
	if req.BasePricePerKg < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "base_price_per_kg must not be negative"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	c.JSON(http.StatusOK, CalculatePricing(req.FruitType, req.Grade, req.SizeCategory, req.Quantity, req.BasePricePerKg))
}

type packagingRequest struct {
	FruitType    string `json:"fruit_type"`
	Grade        string `json:"grade"`
	SizeCategory string `json:"size_category"`
	Quantity     int    `json:"quantity"`
}

func (h *Handler) RecommendPackaging(c *gin.Context) {
	var req packagingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must not be negative"})
		return
	}

	c.JSON(http.StatusOK, RecommendPackaging(req.FruitType, req.Grade, req.SizeCategory, req.Quantity))
}

type batchRequest struct {
	Items []ItemAttributes `json:"items"`
}

func (h *Handler) GradeBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.JSON(http.StatusOK, GradeBatch(req.Items))
}

func (h *Handler) StorageRequirements(c *gin.Context) {
	fruit := c.Param("fruit")
	c.JSON(http.StatusOK, gin.H{
		"fruit_type": fruit,
		"storage":    StorageRequirementsFor(fruit),
	})
}
