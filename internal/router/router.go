// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/amazon"
	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/config"
	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/handlers"
	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/middleware"
	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/scoring"
	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/sentiment"
	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/services"
)

func Initialize(cfg *config.Config) *gin.Engine {
	// Initialize services
	client := amazon.NewClient(cfg.Amazon)
	analyzer := sentiment.NewAnalyzer()
	scorer := scoring.NewScorer()

	dataService := services.NewDataService(client, analyzer, cfg)
	rankingService := services.NewRankingService(dataService, scorer, cfg)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(rankingService, dataService, scorer, cfg)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	r.Use(limiter.Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		v1.GET("/recommend/:query", productHandler.GetRecommendations)
		v1.GET("/products/:asin/analysis", productHandler.GetProductAnalysis)
	}

	return r
}
