// internal/models/product.go
package models

// Product is a single marketplace search hit as returned by the provider.
// Numeric-looking fields arrive as strings or are missing entirely, so
// optional fields are pointers and parsing is deferred to the consumers.
type Product struct {
	ASIN                 string  `json:"asin"`
	ProductTitle         string  `json:"product_title"`
	ProductPrice         *string `json:"product_price,omitempty"`
	ProductOriginalPrice *string `json:"product_original_price,omitempty"`
	Currency             *string `json:"currency,omitempty"`
	ProductStarRating    *string `json:"product_star_rating,omitempty"`
	ProductNumRatings    *int    `json:"product_num_ratings,omitempty"`
	ProductURL           *string `json:"product_url,omitempty"`
	ProductPhoto         *string `json:"product_photo,omitempty"`
	IsPrime              bool    `json:"is_prime"`
	Delivery             *string `json:"delivery,omitempty"`
}

// EnrichedProduct is a Product augmented with its reviews and the signals
// derived from them. QualityScore stays 0 until the scorer runs; Rank stays
// 0 until the ranking pass assigns 1-based positions.
type EnrichedProduct struct {
	Product

	Reviews []Review `json:"reviews"`
	Pros    []string `json:"pros"`
	Cons    []string `json:"cons"`

	QualityScore float64 `json:"quality_score"`
	Rank         int     `json:"rank,omitempty"`
}

// FeatureSet holds the pros/cons phrases extracted from a batch of review
// texts. Each bucket is deduplicated and capped at five phrases.
type FeatureSet struct {
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`
}
