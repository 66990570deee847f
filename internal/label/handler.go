package label

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) FruitQR(c *gin.Context) {
	var req FruitLabel
	if err := c.ShouldBindJSON(&req); err != nil || req.Fruit == "" || req.Grade == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fruit and grade are required"})
		return
	}

	encoded, err := GenerateFruitQR(req, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate QR code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       req,
		"qr_content": encoded.Content,
		"image":      encoded.Image,
		"format":     encoded.Format,
		"size":       encoded.Size,
	})
}

func (h *Handler) BatchLabel(c *gin.Context) {
	var req BatchLabel
	if err := c.ShouldBindJSON(&req); err != nil || req.BatchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "batch_id is required"})
		return
	}

	encoded, err := GenerateBatchLabel(req, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate QR code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"batch_id": req.BatchID,
		"data":     req,
		"image":    encoded.Image,
		"format":   encoded.Format,
	})
}

func (h *Handler) PriceTag(c *gin.Context) {
	var req PriceTag
	if err := c.ShouldBindJSON(&req); err != nil || req.Fruit == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fruit is required"})
		return
	}
	if req.Price < 0 || req.Discount < 0 || req.Discount > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative and discount must be 0-100"})
		return
	}

	encoded, display, err := GeneratePriceTag(req, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate QR code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"data":          req,
		"display_price": display,
		"image":         encoded.Image,
		"format":        encoded.Format,
	})
}
