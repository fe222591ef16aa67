// internal/services/data_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/config"
	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/models"
	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/sentiment"
)

// fakeGateway serves canned provider data, mimicking the degrade-to-empty
// contract of the real client.
type fakeGateway struct {
	searchHits []models.Product
	details    map[string]*models.Product
	reviews    map[string][]models.Review
}

func (f *fakeGateway) SearchProducts(ctx context.Context, query, country string) []models.Product {
	return f.searchHits
}

func (f *fakeGateway) GetProductDetails(ctx context.Context, asin, country string) *models.Product {
	return f.details[asin]
}

func (f *fakeGateway) GetProductReviews(ctx context.Context, asin, country, sortBy string) []models.Review {
	return f.reviews[asin]
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func testConfig() *config.Config {
	return &config.Config{
		Amazon: config.AmazonConfig{Country: "US"},
		Ranking: config.RankingConfig{
			DefaultLimit: 5,
			MaxLimit:     20,
			Workers:      4,
			ReviewSort:   "TOP_REVIEWS",
		},
	}
}

func summary(asin string) models.Product {
	return models.Product{ASIN: asin, ProductTitle: "Product " + asin}
}

func detail(asin, rating string, numRatings int) *models.Product {
	return &models.Product{
		ASIN:              asin,
		ProductTitle:      "Product " + asin,
		ProductStarRating: strPtr(rating),
		ProductNumRatings: intPtr(numRatings),
	}
}

func TestSearchProductsHonorsLimit(t *testing.T) {
	gateway := &fakeGateway{
		searchHits: []models.Product{
			summary("A1"), summary("A2"), summary("A3"), summary("A4"), summary("A5"),
		},
	}
	svc := NewDataService(gateway, sentiment.NewAnalyzer(), testConfig())

	products := svc.SearchProducts(context.Background(), "mouse", 3)
	require.Len(t, products, 3)
	assert.Equal(t, "A1", products[0].ASIN)
	assert.Equal(t, "A3", products[2].ASIN)
}

func TestAnalyzeProductMissingDetails(t *testing.T) {
	gateway := &fakeGateway{details: map[string]*models.Product{}}
	svc := NewDataService(gateway, sentiment.NewAnalyzer(), testConfig())

	assert.Nil(t, svc.AnalyzeProduct(context.Background(), "B0GONE00000"))
}

func TestAnalyzeProductAnnotatesReviews(t *testing.T) {
	gateway := &fakeGateway{
		details: map[string]*models.Product{
			"A1": detail("A1", "4.5", 200),
		},
		reviews: map[string][]models.Review{
			"A1": {
				{ReviewID: "R1", ReviewComment: strPtr("The battery is excellent."), ReviewStarRating: "5"},
				{ReviewID: "R2", ReviewComment: strPtr("The screen is terrible."), ReviewStarRating: "1"},
				{ReviewID: "R3", ReviewStarRating: "3"},
			},
		},
	}
	svc := NewDataService(gateway, sentiment.NewAnalyzer(), testConfig())

	enriched := svc.AnalyzeProduct(context.Background(), "A1")
	require.NotNil(t, enriched)
	assert.Equal(t, "A1", enriched.ASIN)
	require.Len(t, enriched.Reviews, 3)

	require.NotNil(t, enriched.Reviews[0].SentimentScore)
	assert.Equal(t, models.SentimentPositive, enriched.Reviews[0].SentimentLabel)
	assert.Equal(t, models.SentimentNegative, enriched.Reviews[1].SentimentLabel)

	// A review without a comment is still annotated, as neutral.
	require.NotNil(t, enriched.Reviews[2].SentimentScore)
	assert.Equal(t, 0.0, *enriched.Reviews[2].SentimentScore)
	assert.Equal(t, models.SentimentNeutral, enriched.Reviews[2].SentimentLabel)

	assert.Equal(t, []string{"battery"}, enriched.Pros)
	assert.Equal(t, []string{"screen"}, enriched.Cons)

	// Scoring belongs to the ranking pass, not enrichment.
	assert.Equal(t, 0.0, enriched.QualityScore)
	assert.Equal(t, 0, enriched.Rank)
}

func TestAnalyzeProductNoReviews(t *testing.T) {
	gateway := &fakeGateway{
		details: map[string]*models.Product{
			"A1": detail("A1", "4.0", 50),
		},
	}
	svc := NewDataService(gateway, sentiment.NewAnalyzer(), testConfig())

	enriched := svc.AnalyzeProduct(context.Background(), "A1")
	require.NotNil(t, enriched)
	assert.Empty(t, enriched.Reviews)
	assert.Empty(t, enriched.Pros)
	assert.Empty(t, enriched.Cons)
}
