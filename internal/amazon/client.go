// internal/amazon/client.go
package amazon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/config"
	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/models"
)

// SortTopReviews is the provider's default review ordering.
const SortTopReviews = "TOP_REVIEWS"

// Client talks to the RapidAPI real-time Amazon data provider. Every
// operation degrades to an empty result on failure instead of returning an
// error: one bad call must never abort enrichment of a whole batch. All
// fields are read-only after construction, so a single Client is safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	apiKey     string
	apiHost    string
}

func NewClient(cfg config.AmazonConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		apiHost: cfg.APIHost,
	}
}

type searchResponse struct {
	Data struct {
		Products []models.Product `json:"products"`
	} `json:"data"`
}

type detailsResponse struct {
	Data *models.Product `json:"data"`
}

type reviewsResponse struct {
	Data struct {
		Reviews []models.Review `json:"reviews"`
	} `json:"data"`
}

// SearchProducts returns the search hits for a query, or an empty slice if
// the call fails or the response carries no products.
func (c *Client) SearchProducts(ctx context.Context, query, country string) []models.Product {
	params := url.Values{}
	params.Set("query", query)
	params.Set("country", country)

	var resp searchResponse
	if err := c.get(ctx, "/search", params, &resp); err != nil {
		logrus.WithError(err).WithField("query", query).Warn("product search failed")
		return []models.Product{}
	}

	return resp.Data.Products
}

// GetProductDetails returns the full product record for an asin, or nil if
// the call fails or the provider has no data for it.
func (c *Client) GetProductDetails(ctx context.Context, asin, country string) *models.Product {
	params := url.Values{}
	params.Set("asin", asin)
	params.Set("country", country)

	var resp detailsResponse
	if err := c.get(ctx, "/product-details", params, &resp); err != nil {
		logrus.WithError(err).WithField("asin", asin).Warn("product details fetch failed")
		return nil
	}

	// An empty data object means the catalog no longer knows the asin.
	if resp.Data == nil || resp.Data.ASIN == "" {
		return nil
	}

	return resp.Data
}

// GetProductReviews returns the reviews for an asin, or an empty slice on
// any failure.
func (c *Client) GetProductReviews(ctx context.Context, asin, country, sortBy string) []models.Review {
	params := url.Values{}
	params.Set("asin", asin)
	params.Set("country", country)
	params.Set("sort_by", sortBy)

	var resp reviewsResponse
	if err := c.get(ctx, "/product-reviews", params, &resp); err != nil {
		logrus.WithError(err).WithField("asin", asin).Warn("product reviews fetch failed")
		return []models.Review{}
	}

	return resp.Data.Reviews
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	// Best-effort politeness throttle against the provider's undocumented
	// rate limits.
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}
