package multilingual

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": SupportedLanguages()})
}

func (h *Handler) FruitName(c *gin.Context) {
	fruit := c.Param("fruit")
	language := c.DefaultQuery("lang", "en")

	if !IsSupported(language) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported language: " + language})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fruit":      fruit,
		"language":   language,
		"translated": GetFruitName(fruit, language),
	})
}

func (h *Handler) UIText(c *gin.Context) {
	language := c.DefaultQuery("lang", "en")
	if !IsSupported(language) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported language: " + language})
		return
	}

	texts := make(map[string]string)
	for _, key := range TranslationKeys() {
		texts[key] = GetUIText(key, language)
	}

	c.JSON(http.StatusOK, gin.H{"language": language, "texts": texts})
}
