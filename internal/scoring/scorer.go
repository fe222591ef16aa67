// internal/scoring/scorer.go
package scoring

import (
	"math"
	"strconv"

	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/models"
)

// Component weights of the composite quality score.
const (
	ratingWeight    = 50.0
	sentimentWeight = 30.0
	volumeWeight    = 20.0

	maxScore      = 100.0
	maxStarRating = 5.0
)

// Scorer maps an enriched product to a quality score in [0, 100]. It is a
// pure function of the product's fields and performs no I/O.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// Score combines three components: the provider star rating (0-50), the
// average review sentiment (0-30), and a logarithmic ratings-volume
// confidence (0-20). Malformed or absent inputs score their component as
// zero; the total is capped at 100 and rounded to two decimals.
func (s *Scorer) Score(product models.EnrichedProduct) float64 {
	total := s.ratingComponent(product) + s.sentimentComponent(product) + s.volumeComponent(product)

	return math.Round(math.Min(maxScore, total)*100) / 100
}

func (s *Scorer) ratingComponent(product models.EnrichedProduct) float64 {
	if product.ProductStarRating == nil {
		return 0
	}

	rating, err := strconv.ParseFloat(*product.ProductStarRating, 64)
	if err != nil {
		return 0
	}

	return (rating / maxStarRating) * ratingWeight
}

func (s *Scorer) sentimentComponent(product models.EnrichedProduct) float64 {
	avg := 0.0
	if len(product.Reviews) > 0 {
		var sum float64
		for _, review := range product.Reviews {
			if review.SentimentScore != nil {
				sum += *review.SentimentScore
			}
		}
		avg = sum / float64(len(product.Reviews))
	}

	// Map the [-1, 1] average onto [0, 1] before weighting.
	return ((avg + 1) / 2) * sentimentWeight
}

func (s *Scorer) volumeComponent(product models.EnrichedProduct) float64 {
	if product.ProductNumRatings == nil || *product.ProductNumRatings <= 0 {
		return 0
	}

	return math.Min(volumeWeight, 4*math.Log10(float64(*product.ProductNumRatings)))
}
