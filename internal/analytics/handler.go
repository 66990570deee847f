package analytics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MCFELA123/image-classify/internal/classification"
)

// Source supplies classifications within a trailing window of days.
type Source interface {
	InRange(ctx context.Context, days int) ([]classification.Record, error)
}

type Handler struct {
	source Source
}

func NewHandler(source Source) *Handler {
	return &Handler{source: source}
}

func (h *Handler) Dashboard(c *gin.Context) {
	days := parseDays(c, 30)

	records, err := h.source.InRange(c, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load classifications"})
		return
	}

	c.JSON(http.StatusOK, BuildDashboard(records, days, time.Now()))
}

func (h *Handler) WeeklyReport(c *gin.Context) {
	records, err := h.source.InRange(c, 7)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load classifications"})
		return
	}

	c.JSON(http.StatusOK, BuildDashboard(records, 7, time.Now()))
}

func (h *Handler) MonthlyReport(c *gin.Context) {
	records, err := h.source.InRange(c, 30)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load classifications"})
		return
	}

	c.JSON(http.StatusOK, BuildDashboard(records, 30, time.Now()))
}

func (h *Handler) StockReport(c *gin.Context) {
	days := parseDays(c, 7)

	records, err := h.source.InRange(c, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load classifications"})
		return
	}

	c.JSON(http.StatusOK, BuildStockReport(records, days, time.Now()))
}

func parseDays(c *gin.Context, fallback int) int {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(fallback)))
	if err != nil || days <= 0 || days > 365 {
		return fallback
	}
	return days
}
