package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_history/internal/feature/history/domain"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := ParseDate("start_date", "2024-02-29", nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("start_date", "2023-02-29", nil)
	var dateErr *domain.DateParseError
	require.True(t, errors.As(err, &dateErr))
	assert.Equal(t, "start_date", dateErr.Field)
	assert.Equal(t, "2023-02-29", dateErr.Value)
}

func TestParseRange_Inverted(t *testing.T) {
	t.Parallel()

	_, _, err := parseRange("2024-01-05", "2024-01-04", time.UTC)
	var dateErr *domain.DateParseError
	require.True(t, errors.As(err, &dateErr))
	assert.Equal(t, "end_date", dateErr.Field)
	assert.ErrorIs(t, err, errEndBeforeStart)
}

func TestLoadLocation(t *testing.T) {
	t.Parallel()

	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = LoadLocation("Mars/Olympus_Mons")
	var cfgErr *domain.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "timezone", cfgErr.Field)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("HISTORY_TIMEZONE", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, cfg.Location)

	t.Setenv("HISTORY_TIMEZONE", "not/a-zone")
	_, err = LoadConfig()
	assert.Error(t, err)
}
