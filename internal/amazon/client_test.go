// internal/amazon/client_test.go
package amazon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/config"
)

func testClient(baseURL string) *Client {
	return NewClient(config.AmazonConfig{
		APIKey:            "test-key",
		APIHost:           "test-host",
		BaseURL:           baseURL,
		RequestTimeout:    5,
		RequestsPerSecond: 1000,
		Burst:             1000,
	})
}

func TestSearchProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "gaming mouse", r.URL.Query().Get("query"))
		assert.Equal(t, "US", r.URL.Query().Get("country"))
		assert.Equal(t, "test-key", r.Header.Get("x-rapidapi-key"))
		assert.Equal(t, "test-host", r.Header.Get("x-rapidapi-host"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"products": [
					{"asin": "B0ABC12345", "product_title": "Wireless Mouse", "product_star_rating": "4.5", "product_num_ratings": 1234, "is_prime": true},
					{"asin": "B0DEF67890", "product_title": "Wired Mouse"}
				]
			}
		}`))
	}))
	defer server.Close()

	products := testClient(server.URL).SearchProducts(context.Background(), "gaming mouse", "US")

	require.Len(t, products, 2)
	assert.Equal(t, "B0ABC12345", products[0].ASIN)
	assert.Equal(t, "Wireless Mouse", products[0].ProductTitle)
	require.NotNil(t, products[0].ProductStarRating)
	assert.Equal(t, "4.5", *products[0].ProductStarRating)
	require.NotNil(t, products[0].ProductNumRatings)
	assert.Equal(t, 1234, *products[0].ProductNumRatings)
	assert.True(t, products[0].IsPrime)
	assert.Nil(t, products[1].ProductStarRating)
}

func TestSearchProductsDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}},
		{"missing keys", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "OK"}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			products := testClient(server.URL).SearchProducts(context.Background(), "anything", "US")
			assert.Empty(t, products)
		})
	}
}

func TestSearchProductsUnreachableHost(t *testing.T) {
	// Closed server: the transport error must degrade to an empty result.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	products := testClient(server.URL).SearchProducts(context.Background(), "anything", "US")
	assert.Empty(t, products)
}

func TestGetProductDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product-details", r.URL.Path)
		assert.Equal(t, "B0ABC12345", r.URL.Query().Get("asin"))

		w.Write([]byte(`{"data": {"asin": "B0ABC12345", "product_title": "Wireless Mouse", "product_price": "$29.99"}}`))
	}))
	defer server.Close()

	product := testClient(server.URL).GetProductDetails(context.Background(), "B0ABC12345", "US")

	require.NotNil(t, product)
	assert.Equal(t, "B0ABC12345", product.ASIN)
	require.NotNil(t, product.ProductPrice)
	assert.Equal(t, "$29.99", *product.ProductPrice)
}

func TestGetProductDetailsAbsent(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no data key", `{"status": "OK"}`},
		{"empty data object", `{"data": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			product := testClient(server.URL).GetProductDetails(context.Background(), "B0GONE00000", "US")
			assert.Nil(t, product)
		})
	}
}

func TestGetProductReviews(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product-reviews", r.URL.Path)
		assert.Equal(t, "TOP_REVIEWS", r.URL.Query().Get("sort_by"))

		w.Write([]byte(`{
			"data": {
				"reviews": [
					{"review_id": "R1", "review_comment": "Works great", "review_star_rating": "5"},
					{"review_id": "R2", "review_star_rating": "1"}
				]
			}
		}`))
	}))
	defer server.Close()

	reviews := testClient(server.URL).GetProductReviews(context.Background(), "B0ABC12345", "US", SortTopReviews)

	require.Len(t, reviews, 2)
	assert.Equal(t, "R1", reviews[0].ReviewID)
	require.NotNil(t, reviews[0].ReviewComment)
	assert.Equal(t, "Works great", *reviews[0].ReviewComment)
	assert.Nil(t, reviews[1].ReviewComment)
	assert.Empty(t, reviews[0].SentimentLabel)
}

func TestGetProductReviewsDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	reviews := testClient(server.URL).GetProductReviews(context.Background(), "B0ABC12345", "US", SortTopReviews)
	assert.Empty(t, reviews)
}
