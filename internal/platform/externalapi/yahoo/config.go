// Package yahoo provides a client for the Yahoo Finance chart API.
package yahoo

import (
	"net/http"
	"os"
	"time"

	infrahttp "stock_history/internal/platform/http"
)

const (
	// DefaultBaseURL is the public chart API host.
	DefaultBaseURL = "https://query1.finance.yahoo.com"
	// DefaultUserAgent is a desktop browser identity; the endpoint rejects unknown clients.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Config holds configuration for the Yahoo chart client.
type Config struct {
	BaseURL string        // Base URL for the API (e.g., "https://query1.finance.yahoo.com")
	Headers http.Header   // Sent verbatim on every request
	Timeout time.Duration // HTTP request timeout
}

// DefaultHeaders returns the header set used when none is configured.
func DefaultHeaders() http.Header {
	h := http.Header{}
	h.Set("User-Agent", DefaultUserAgent)
	return h
}

// LoadConfig loads Yahoo configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		BaseURL: os.Getenv("YAHOO_BASE_URL"),
		Headers: DefaultHeaders(),
		Timeout: infrahttp.LoadTimeout(),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if ua := os.Getenv("YAHOO_USER_AGENT"); ua != "" {
		cfg.Headers.Set("User-Agent", ua)
	}
	return cfg
}
