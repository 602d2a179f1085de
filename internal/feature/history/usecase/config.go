package usecase

import (
	"os"
	"time"

	"stock_history/internal/feature/history/domain"
)

// Config holds settings shared by both fetchers.
type Config struct {
	Location *time.Location // Calendar dates are interpreted as midnight in this location
}

// LoadConfig reads HISTORY_TIMEZONE (IANA name, default UTC).
func LoadConfig() (Config, error) {
	loc, err := LoadLocation(os.Getenv("HISTORY_TIMEZONE"))
	if err != nil {
		return Config{}, err
	}
	return Config{Location: loc}, nil
}

// LoadLocation resolves an IANA zone name. The empty name resolves to UTC.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &domain.ConfigurationError{Field: "timezone", Value: name, Reason: err.Error()}
	}
	return loc, nil
}
