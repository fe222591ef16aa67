// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Amazon      AmazonConfig
	Ranking     RankingConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Log         LogConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type AmazonConfig struct {
	APIKey  string
	APIHost string
	BaseURL string
	Country string

	RequestTimeout    int // seconds, per outbound call
	RequestsPerSecond float64
	Burst             int
}

type RankingConfig struct {
	DefaultLimit int
	MaxLimit     int
	Workers      int
	ReviewSort   string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	apiHost := getEnv("RAPIDAPI_HOST", "real-time-amazon-data.p.rapidapi.com")

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 60),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Amazon: AmazonConfig{
			APIKey:            getEnv("RAPIDAPI_KEY", ""),
			APIHost:           apiHost,
			BaseURL:           getEnv("AMAZON_BASE_URL", "https://"+apiHost),
			Country:           getEnv("AMAZON_COUNTRY", "US"),
			RequestTimeout:    getEnvAsInt("AMAZON_REQUEST_TIMEOUT", 10),
			RequestsPerSecond: getEnvAsFloat("AMAZON_REQUESTS_PER_SECOND", 5.0),
			Burst:             getEnvAsInt("AMAZON_BURST", 5),
		},
		Ranking: RankingConfig{
			DefaultLimit: getEnvAsInt("RANKING_DEFAULT_LIMIT", 5),
			MaxLimit:     getEnvAsInt("RANKING_MAX_LIMIT", 20),
			Workers:      getEnvAsInt("RANKING_WORKERS", 4),
			ReviewSort:   getEnv("RANKING_REVIEW_SORT", "TOP_REVIEWS"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 10.0),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 10),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{getEnv("CORS_ALLOWED_ORIGIN", "*")},
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Amazon.APIKey == "" && c.Environment == "production" {
		return fmt.Errorf("RAPIDAPI_KEY is required in production")
	}

	if c.Ranking.Workers < 1 {
		return fmt.Errorf("RANKING_WORKERS must be at least 1")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
