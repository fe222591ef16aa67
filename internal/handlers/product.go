// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/config"
	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/scoring"
	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/services"
	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/utils"
)

type ProductHandler struct {
	rankingService *services.RankingService
	dataService    *services.DataService
	scorer         *scoring.Scorer
	defaultLimit   int
	maxLimit       int
}

func NewProductHandler(rankingService *services.RankingService, dataService *services.DataService, scorer *scoring.Scorer, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		rankingService: rankingService,
		dataService:    dataService,
		scorer:         scorer,
		defaultLimit:   cfg.Ranking.DefaultLimit,
		maxLimit:       cfg.Ranking.MaxLimit,
	}
}

type recommendParams struct {
	Query string `validate:"required,min=1"`
	Limit int    `validate:"min=1"`
}

// GET /v1/recommend/:query
func (h *ProductHandler) GetRecommendations(c *gin.Context) {
	params := recommendParams{
		Query: c.Param("query"),
		Limit: h.defaultLimit,
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			utils.BadRequestResponse(c, "limit must be an integer", nil)
			return
		}
		params.Limit = limit
	}

	if params.Limit > h.maxLimit {
		params.Limit = h.maxLimit
	}

	if err := utils.ValidateStruct(&params); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	results := h.rankingService.TopProducts(c.Request.Context(), params.Query, params.Limit)

	utils.SuccessResponseWithMeta(c, results, gin.H{
		"query": params.Query,
		"count": len(results),
	})
}

// GET /v1/products/:asin/analysis
func (h *ProductHandler) GetProductAnalysis(c *gin.Context) {
	asin := c.Param("asin")
	if asin == "" {
		utils.BadRequestResponse(c, "asin is required", nil)
		return
	}

	product := h.dataService.AnalyzeProduct(c.Request.Context(), asin)
	if product == nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	product.QualityScore = h.scorer.Score(*product)

	utils.SuccessResponse(c, product)
}
