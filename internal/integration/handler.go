package integration

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Source supplies recent classifications in integration form.
type Source interface {
	RecentItems(ctx context.Context, limit int) ([]Item, error)
}

type Handler struct {
	source Source
	repo   WebhookRepository
}

func NewHandler(source Source, repo WebhookRepository) *Handler {
	return &Handler{source: source, repo: repo}
}

func (h *Handler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "standard")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		limit = 100
	}

	items, err := h.source.RecentItems(c, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load classifications"})
		return
	}

	now := time.Now().UTC()
	switch format {
	case "standard":
		c.JSON(http.StatusOK, ExportForFarmManagement(items, now))
	case "agri_erp":
		c.JSON(http.StatusOK, ExportForAgriERP(items, now))
	case "custom":
		c.JSON(http.StatusOK, gin.H{
			"raw_data":  items,
			"format":    "custom",
			"timestamp": now,
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown export format: " + format})
	}
}

func (h *Handler) Inventory(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "500"))
	if err != nil || limit <= 0 {
		limit = 500
	}

	items, err := h.source.RecentItems(c, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load classifications"})
		return
	}

	c.JSON(http.StatusOK, GenerateInventoryReport(items, time.Now().UTC()))
}

type pricingRequest struct {
	QualityGrade string   `json:"quality_grade"`
	SizeCategory string   `json:"size_category"`
	Ripeness     string   `json:"ripeness"`
	Defects      []string `json:"defects"`
	QualityScore int      `json:"quality_score"`
}

func (h *Handler) Pricing(c *gin.Context) {
	var req pricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	tier := CalculatePricingTier(req.QualityGrade, req.SizeCategory, req.Ripeness, len(req.Defects), req.QualityScore)
	c.JSON(http.StatusOK, tier)
}

type webhookRequest struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
}

func (h *Handler) RegisterWebhook(c *gin.Context) {
	var req webhookRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" || len(req.Events) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url and events are required"})
		return
	}

	for _, event := range req.Events {
		if !knownEvent(event) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":            "unknown event: " + event,
				"available_events": AvailableEvents,
			})
			return
		}
	}

	webhook := &Webhook{URL: req.URL, Events: req.Events}
	if err := h.repo.Save(c, webhook); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register webhook"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"webhook_id":        webhook.ID,
		"status":            "registered",
		"subscribed_events": webhook.Events,
		"available_events":  AvailableEvents,
	})
}

func (h *Handler) ListWebhooks(c *gin.Context) {
	webhooks, err := h.repo.ListActive(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list webhooks"})
		return
	}
	if webhooks == nil {
		webhooks = []Webhook{}
	}
	c.JSON(http.StatusOK, gin.H{"webhooks": webhooks})
}

func (h *Handler) DeactivateWebhook(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.Deactivate(c, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to deactivate webhook"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"webhook_id": id, "status": "deactivated"})
}

func knownEvent(event string) bool {
	for _, known := range AvailableEvents {
		if known == event {
			return true
		}
	}
	return false
}
