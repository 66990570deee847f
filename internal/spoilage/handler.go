package spoilage

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Predict(c *gin.Context) {
	var req Item
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.QualityScore < 0 || req.QualityScore > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quality_score must be between 0 and 100"})
		return
	}

	storage := req.StorageCondition
	if storage == "" {
		storage = "room_temp"
	}

	prediction := PredictSpoilage(req.FruitType, req.Ripeness, req.QualityScore, req.Defects, storage, time.Now())
	c.JSON(http.StatusOK, prediction)
}

type batchRequest struct {
	Items []Item `json:"items"`
}

func (h *Handler) PredictBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	for i, item := range req.Items {
		if item.QualityScore < 0 || item.QualityScore > 100 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "quality_score must be between 0 and 100",
				"index": i,
			})
			return
		}
	}

	c.JSON(http.StatusOK, BatchPredict(req.Items, time.Now()))
}

func (h *Handler) WasteReport(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.JSON(http.StatusOK, WasteReportFor(req.Items, time.Now()))
}
