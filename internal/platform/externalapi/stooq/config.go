// Package stooq provides a reader for the Stooq daily CSV download endpoint.
package stooq

import (
	"os"
	"time"

	infrahttp "stock_history/internal/platform/http"
)

// DefaultBaseURL is the public Stooq host.
const DefaultBaseURL = "https://stooq.com"

// Config holds configuration for the Stooq reader.
type Config struct {
	BaseURL string        // Base URL (e.g., "https://stooq.com")
	Country string        // Suffix appended to bare symbols, "US" when empty
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Stooq configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		BaseURL: os.Getenv("STOOQ_BASE_URL"),
		Country: os.Getenv("STOOQ_COUNTRY"),
		Timeout: infrahttp.LoadTimeout(),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return cfg
}
