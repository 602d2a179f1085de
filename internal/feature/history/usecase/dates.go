package usecase

import (
	"errors"
	"time"

	"stock_history/internal/feature/history/domain"
)

// DateLayout is the accepted calendar date format.
const DateLayout = "2006-01-02"

var errEndBeforeStart = errors.New("end date is before start date")

// ParseDate interprets value as midnight of that calendar day in loc.
// A nil loc means UTC.
func ParseDate(field, value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, &domain.DateParseError{Field: field, Value: value, Err: err}
	}
	return t, nil
}

// parseRange parses both ends of a date range and rejects inverted ranges.
func parseRange(startDate, endDate string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := ParseDate("start_date", startDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate("end_date", endDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, &domain.DateParseError{Field: "end_date", Value: endDate, Err: errEndBeforeStart}
	}
	return start, end, nil
}
