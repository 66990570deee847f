package nutrition

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) GetFruit(c *gin.Context) {
	fruit := c.Param("fruit")

	info, ok := Get(fruit)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "fruit not found: " + fruit})
		return
	}

	c.JSON(http.StatusOK, gin.H{"fruit": fruit, "nutrition": info})
}

func (h *Handler) GetAll(c *gin.Context) {
	fruits := AllFruits()

	summaries := make(map[string]Summary, len(fruits))
	for _, fruit := range fruits {
		if summary, ok := GetSummary(fruit); ok {
			summaries[fruit] = summary
		}
	}

	c.JSON(http.StatusOK, gin.H{"fruits": fruits, "summaries": summaries})
}

// Compare expects ?fruits=Apple,Banana,Kiwi
func (h *Handler) Compare(c *gin.Context) {
	raw := c.Query("fruits")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fruits query parameter is required"})
		return
	}

	fruits := strings.Split(raw, ",")
	for i := range fruits {
		fruits[i] = strings.TrimSpace(fruits[i])
	}

	comparison := Compare(fruits)
	if len(comparison) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no known fruits in comparison list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comparison": comparison})
}

func (h *Handler) Search(c *gin.Context) {
	nutrient := c.DefaultQuery("nutrient", "calories")
	criteria := c.DefaultQuery("criteria", "high")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 {
		limit = 5
	}

	results := SearchByNutrient(nutrient, criteria, limit)
	if results == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown nutrient: " + nutrient})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"nutrient": nutrient,
		"criteria": criteria,
		"results":  results,
	})
}

func (h *Handler) LowGI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"low_gi_fruits": LowGIFruits()})
}

func (h *Handler) Seasonal(c *gin.Context) {
	month := c.Query("month")
	c.JSON(http.StatusOK, gin.H{"month": month, "fruits": SeasonalFruits(month)})
}

func (h *Handler) Serving(c *gin.Context) {
	fruit := c.Param("fruit")

	grams, err := strconv.ParseFloat(c.DefaultQuery("grams", "100"), 64)
	if err != nil || grams <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grams must be a positive number"})
		return
	}

	serving, ok := CalculateServing(fruit, grams)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "fruit not found: " + fruit})
		return
	}

	c.JSON(http.StatusOK, gin.H{"fruit": fruit, "serving": serving})
}

func (h *Handler) Recipes(c *gin.Context) {
	fruit := c.Param("fruit")
	recipeType := c.Query("type")

	recipes := Recipes(fruit, recipeType)
	if recipes == nil && recipeType == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "fruit not found: " + fruit})
		return
	}

	c.JSON(http.StatusOK, gin.H{"fruit": fruit, "recipes": recipes})
}

func (h *Handler) Storage(c *gin.Context) {
	fruit := c.Param("fruit")

	storage, ok := StorageFor(fruit)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "fruit not found: " + fruit})
		return
	}

	c.JSON(http.StatusOK, gin.H{"fruit": fruit, "storage": storage})
}

func (h *Handler) Glycemic(c *gin.Context) {
	fruit := c.Param("fruit")

	info, ok := GlycemicFor(fruit)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "fruit not found: " + fruit})
		return
	}

	c.JSON(http.StatusOK, gin.H{"fruit": fruit, "glycemic": info})
}
