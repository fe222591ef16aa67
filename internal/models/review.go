// internal/models/review.go
package models

// Sentiment labels attached to reviews by the analyzer.
const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

// Review is one customer review. The provider fields are set when the
// review is fetched; SentimentScore and SentimentLabel are set once during
// enrichment and never change afterwards.
type Review struct {
	ReviewID         string  `json:"review_id"`
	ReviewTitle      *string `json:"review_title,omitempty"`
	ReviewComment    *string `json:"review_comment,omitempty"`
	ReviewStarRating string  `json:"review_star_rating"`
	ReviewDate       *string `json:"review_date,omitempty"`

	SentimentScore *float64 `json:"sentiment_score,omitempty"`
	SentimentLabel string   `json:"sentiment_label,omitempty"`
}
