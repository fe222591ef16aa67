// internal/services/data_service.go
package services

import (
	"context"

	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/config"
	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/models"
	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/sentiment"
)

// ProductGateway is the slice of the provider client the services need.
// Implementations never return errors: failures degrade to empty results.
type ProductGateway interface {
	SearchProducts(ctx context.Context, query, country string) []models.Product
	GetProductDetails(ctx context.Context, asin, country string) *models.Product
	GetProductReviews(ctx context.Context, asin, country, sortBy string) []models.Review
}

// DataService drives the enrichment of a single product: detail fetch,
// review fetch, per-review sentiment, and pros/cons extraction.
type DataService struct {
	gateway    ProductGateway
	analyzer   *sentiment.Analyzer
	country    string
	reviewSort string
}

func NewDataService(gateway ProductGateway, analyzer *sentiment.Analyzer, cfg *config.Config) *DataService {
	return &DataService{
		gateway:    gateway,
		analyzer:   analyzer,
		country:    cfg.Amazon.Country,
		reviewSort: cfg.Ranking.ReviewSort,
	}
}

// SearchProducts returns up to limit search hits for a query.
func (s *DataService) SearchProducts(ctx context.Context, query string, limit int) []models.Product {
	products := s.gateway.SearchProducts(ctx, query, s.country)
	if len(products) > limit {
		products = products[:limit]
	}
	return products
}

// AnalyzeProduct fetches full details and reviews for an asin, annotates
// every review with its sentiment, and extracts pros/cons from the review
// texts. A product whose details are gone from the catalog yields nil and
// is dropped by the caller; missing reviews are not fatal. The quality
// score and rank are left unset — scoring belongs to the ranking pass.
func (s *DataService) AnalyzeProduct(ctx context.Context, asin string) *models.EnrichedProduct {
	details := s.gateway.GetProductDetails(ctx, asin, s.country)
	if details == nil {
		return nil
	}

	rawReviews := s.gateway.GetProductReviews(ctx, asin, s.country, s.reviewSort)

	reviews := make([]models.Review, 0, len(rawReviews))
	comments := make([]string, 0, len(rawReviews))
	for _, raw := range rawReviews {
		comment := ""
		if raw.ReviewComment != nil {
			comment = *raw.ReviewComment
		}

		polarity, label := s.analyzer.Analyze(comment)

		review := raw
		review.SentimentScore = &polarity
		review.SentimentLabel = label
		reviews = append(reviews, review)

		if comment != "" {
			comments = append(comments, comment)
		}
	}

	features := s.analyzer.ExtractFeatures(comments)

	return &models.EnrichedProduct{
		Product: *details,
		Reviews: reviews,
		Pros:    features.Pros,
		Cons:    features.Cons,
	}
}
