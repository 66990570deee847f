package classification

import (
	"encoding/base64"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MCFELA123/image-classify/internal/vision"
)

// maxImageBytes caps uploads at 16MB.
const maxImageBytes = 16 << 20

var allowedExtensions = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Classify handles multipart image uploads.
func (h *Handler) Classify(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}
	language := c.DefaultPostForm("language", "en")

	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file selected"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Allowed types: png, jpg, jpeg, gif"})
		return
	}

	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image exceeds 16MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}
	if len(imageData) > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image exceeds 16MB limit"})
		return
	}
	if len(imageData) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty image file"})
		return
	}

	record, err := h.service.Classify(c, imageData, fileHeader.Filename, contentType, language, userIDFrom(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Classification failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, classifyResponse(record))
}

type base64Request struct {
	Image    string `json:"image"`
	Filename string `json:"filename"`
	Language string `json:"language"`
}

// ClassifyBase64 accepts a base64 payload for clients that cannot
// send multipart forms.
func (h *Handler) ClassifyBase64(c *gin.Context) {
	var req base64Request
	if err := c.ShouldBindJSON(&req); err != nil || req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image field is required"})
		return
	}

	// Tolerate data-URL prefixes like data:image/png;base64,
	payload := req.Image
	if idx := strings.Index(payload, ","); idx != -1 && strings.Contains(payload[:idx], "base64") {
		payload = payload[idx+1:]
	}

	imageData, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid base64 image data"})
		return
	}
	if len(imageData) > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image exceeds 16MB limit"})
		return
	}

	filename := req.Filename
	if filename == "" {
		filename = "upload.jpg"
	}
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Allowed types: png, jpg, jpeg, gif"})
		return
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	record, err := h.service.Classify(c, imageData, filename, contentType, language, userIDFrom(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Classification failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, classifyResponse(record))
}

func (h *Handler) History(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 10
	}

	records, err := h.service.History(c, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve history"})
		return
	}
	if records == nil {
		records = []Record{}
	}

	if fruit := c.Query("fruit"); fruit != "" {
		filtered := make([]Record, 0, len(records))
		for _, r := range records {
			if strings.EqualFold(r.PredictedClass, fruit) {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(records),
		"history": records,
	})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid classification id"})
		return
	}

	record, err := h.service.Get(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "classification not found"})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) Classes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"classes": vision.FruitClasses,
		"count":   len(vision.FruitClasses),
	})
}

func classifyResponse(record *Record) gin.H {
	return gin.H{
		"classification_id": record.ID,
		"image_url":         record.ImageURL,
		"result":            record.Result,
		"created_at":        record.CreatedAt,
	}
}

func userIDFrom(c *gin.Context) *string {
	if id := c.GetString("userID"); id != "" {
		return &id
	}
	return nil
}
