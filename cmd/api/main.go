package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/MCFELA123/image-classify/internal/analytics"
	"github.com/MCFELA123/image-classify/internal/auth"
	"github.com/MCFELA123/image-classify/internal/classification"
	"github.com/MCFELA123/image-classify/internal/db"
	"github.com/MCFELA123/image-classify/internal/grading"
	"github.com/MCFELA123/image-classify/internal/integration"
	"github.com/MCFELA123/image-classify/internal/label"
	"github.com/MCFELA123/image-classify/internal/middleware"
	"github.com/MCFELA123/image-classify/internal/multilingual"
	"github.com/MCFELA123/image-classify/internal/nutrition"
	"github.com/MCFELA123/image-classify/internal/privacy"
	"github.com/MCFELA123/image-classify/internal/spoilage"
	"github.com/MCFELA123/image-classify/internal/storage"
	"github.com/MCFELA123/image-classify/internal/vision"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"OPENAI_API_KEY",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── VISION ─────────────────────────
	visionClient, err := vision.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	if err != nil {
		log.Fatal("❌ Vision init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/me", authHandler.Me)
		}
	}

	// ───────────────────────── CORE SERVICES ─────────────────────────
	webhookRepo := integration.NewPostgresWebhookRepository(pgDB)
	notifier := integration.NewNotifier(webhookRepo)

	classificationRepo := classification.NewPostgresRepository(pgDB)
	classificationService := classification.NewService(classificationRepo, r2Client, visionClient, notifier)

	// ───────────────────────── HANDLERS ─────────────────────────
	classificationHandler := classification.NewHandler(classificationService)
	gradingHandler := grading.NewHandler()
	spoilageHandler := spoilage.NewHandler()
	nutritionHandler := nutrition.NewHandler()
	multilingualHandler := multilingual.NewHandler()
	analyticsHandler := analytics.NewHandler(classificationRepo)
	integrationHandler := integration.NewHandler(classificationService, webhookRepo)
	labelHandler := label.NewHandler()

	retentionDays, _ := strconv.Atoi(os.Getenv("DATA_RETENTION_DAYS"))
	retentionWorker := privacy.NewRetentionWorker(classificationRepo, r2Client, retentionDays)
	privacyHandler := privacy.NewHandler(retentionWorker)

	// ───────────────────────── PUBLIC API ─────────────────────────
	api := r.Group("/api")
	{
		api.GET("/classes", classificationHandler.Classes)

		api.GET("/nutrition", nutritionHandler.GetAll)
		api.GET("/nutrition/compare", nutritionHandler.Compare)
		api.GET("/nutrition/search", nutritionHandler.Search)
		api.GET("/nutrition/low-gi", nutritionHandler.LowGI)
		api.GET("/nutrition/seasonal", nutritionHandler.Seasonal)
		api.GET("/nutrition/:fruit", nutritionHandler.GetFruit)
		api.GET("/nutrition/:fruit/serving", nutritionHandler.Serving)
		api.GET("/nutrition/:fruit/recipes", nutritionHandler.Recipes)
		api.GET("/nutrition/:fruit/storage", nutritionHandler.Storage)
		api.GET("/nutrition/:fruit/glycemic", nutritionHandler.Glycemic)

		api.GET("/languages", multilingualHandler.Languages)
		api.GET("/translate/ui", multilingualHandler.UIText)
		api.GET("/translate/fruit/:fruit", multilingualHandler.FruitName)

		api.GET("/privacy", privacyHandler.Info)
	}

	// ───────────────────────── CLASSIFICATION ROUTES ─────────────────────────
	classify := r.Group("/api")
	classify.Use(middleware.AuthMiddleware())
	{
		classify.POST("/classify", classificationHandler.Classify)
		classify.POST("/classify/base64", classificationHandler.ClassifyBase64)
		classify.GET("/history", classificationHandler.History)
		classify.GET("/history/:id", classificationHandler.GetByID)
		classify.GET("/statistics", classificationHandler.Statistics)
	}

	// ───────────────────────── GRADING ROUTES ─────────────────────────
	gradingGroup := r.Group("/api/grading")
	gradingGroup.Use(middleware.AuthMiddleware())
	{
		gradingGroup.POST("/size", gradingHandler.EstimateSize)
		gradingGroup.POST("/weight", gradingHandler.EstimateWeight)
		gradingGroup.POST("/grade", gradingHandler.CalculateGrade)
		gradingGroup.POST("/pricing", gradingHandler.CalculatePricing)
		gradingGroup.POST("/packaging", gradingHandler.RecommendPackaging)
		gradingGroup.POST("/batch", gradingHandler.GradeBatch)
		gradingGroup.GET("/storage/:fruit", gradingHandler.StorageRequirements)
	}

	// ───────────────────────── SPOILAGE ROUTES ─────────────────────────
	spoilageGroup := r.Group("/api/spoilage")
	spoilageGroup.Use(middleware.AuthMiddleware())
	{
		spoilageGroup.POST("/predict", spoilageHandler.Predict)
		spoilageGroup.POST("/batch", spoilageHandler.PredictBatch)
		spoilageGroup.POST("/waste-report", spoilageHandler.WasteReport)
	}

	// ───────────────────────── ANALYTICS ROUTES ─────────────────────────
	analyticsGroup := r.Group("/api/analytics")
	analyticsGroup.Use(middleware.AuthMiddleware())
	{
		analyticsGroup.GET("/dashboard", analyticsHandler.Dashboard)
		analyticsGroup.GET("/weekly", analyticsHandler.WeeklyReport)
		analyticsGroup.GET("/monthly", analyticsHandler.MonthlyReport)
		analyticsGroup.GET("/stock", analyticsHandler.StockReport)
	}

	// ───────────────────────── INTEGRATION ROUTES ─────────────────────────
	integrationGroup := r.Group("/api/integration")
	integrationGroup.Use(middleware.AuthMiddleware())
	{
		integrationGroup.GET("/export", integrationHandler.Export)
		integrationGroup.GET("/inventory", integrationHandler.Inventory)
		integrationGroup.POST("/pricing", integrationHandler.Pricing)
	}

	// ───────────────────────── LABEL ROUTES ─────────────────────────
	labelGroup := r.Group("/api/labels")
	labelGroup.Use(middleware.AuthMiddleware())
	{
		labelGroup.POST("/fruit", labelHandler.FruitQR)
		labelGroup.POST("/batch", labelHandler.BatchLabel)
		labelGroup.POST("/price-tag", labelHandler.PriceTag)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.POST("/webhooks", integrationHandler.RegisterWebhook)
		admin.GET("/webhooks", integrationHandler.ListWebhooks)
		admin.DELETE("/webhooks/:id", integrationHandler.DeactivateWebhook)

		admin.POST("/privacy/cleanup", privacyHandler.Cleanup)
	}

	// ───────────────────────── RETENTION WORKER ─────────────────────────
	privacy.StartWorker(context.Background(), retentionWorker)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"modules": gin.H{
				"grading_system":      true,
				"spoilage_prediction": true,
				"nutrition_database":  true,
				"integration":         true,
			},
		})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
