package privacy

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	worker *RetentionWorker
}

func NewHandler(worker *RetentionWorker) *Handler {
	return &Handler{worker: worker}
}

// Info describes the data handling policy.
func (h *Handler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data_retention": gin.H{
			"classification_records": fmt.Sprintf("%d days", h.worker.RetentionDays()),
			"uploaded_images":        "deleted together with their classification record",
			"analytics":              "only aggregate statistics are collected",
		},
		"user_rights": gin.H{
			"access":   "users can access their classification history",
			"deletion": "expired data is removed automatically by the retention worker",
		},
	})
}

// Cleanup triggers an immediate retention sweep. Admin only.
func (h *Handler) Cleanup(c *gin.Context) {
	if err := h.worker.Sweep(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleanup completed"})
}
