package entity

import (
	"fmt"
	"strconv"

	"stock_history/internal/feature/history/domain"
)

// Unit is the granularity of a sampling interval.
type Unit int

const (
	Minute Unit = iota + 1
	Hour
	Day
)

// suffix returns the wire suffix used by the chart API ("m", "h", "d").
func (u Unit) suffix() string {
	switch u {
	case Minute:
		return "m"
	case Hour:
		return "h"
	case Day:
		return "d"
	default:
		return ""
	}
}

func (u Unit) String() string {
	switch u {
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	default:
		return "unknown"
	}
}

// Interval is a sampling period such as 1d, 1h or 15m.
type Interval struct {
	Unit       Unit
	Multiplier int
}

// DailyInterval is the fixed granularity of the Stooq path and the default of the Yahoo path.
var DailyInterval = Interval{Unit: Day, Multiplier: 1}

// ParseInterval parses "<n><unit>" where unit is one of d, h, m and n has no leading zero,
// so String round-trips the input exactly.
// Anything else is rejected with a *domain.ConfigurationError.
func ParseInterval(s string) (Interval, error) {
	if len(s) < 2 {
		return Interval{}, invalidInterval(s, "expected <n><unit>")
	}

	var unit Unit
	switch s[len(s)-1] {
	case 'd':
		unit = Day
	case 'h':
		unit = Hour
	case 'm':
		unit = Minute
	default:
		return Interval{}, invalidInterval(s, "unit must be one of d, h, m")
	}

	digits := s[:len(s)-1]
	if digits[0] == '0' {
		return Interval{}, invalidInterval(s, "multiplier must not have a leading zero")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Interval{}, invalidInterval(s, "multiplier must be a positive integer")
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return Interval{}, invalidInterval(s, "multiplier must be a positive integer")
	}

	return Interval{Unit: unit, Multiplier: n}, nil
}

func invalidInterval(s, reason string) error {
	return &domain.ConfigurationError{Field: "interval", Value: s, Reason: reason}
}

// IsZero reports whether the interval was never set.
func (i Interval) IsZero() bool {
	return i.Unit == 0 && i.Multiplier == 0
}

// IsDaily reports whether records at this interval are keyed by calendar day.
func (i Interval) IsDaily() bool {
	return i.Unit == Day
}

// String renders the wire form, e.g. "1d".
func (i Interval) String() string {
	if i.IsZero() {
		return ""
	}
	return strconv.Itoa(i.Multiplier) + i.Unit.suffix()
}

// MarshalText implements encoding.TextMarshaler.
func (i Interval) MarshalText() ([]byte, error) {
	if i.IsZero() {
		return nil, fmt.Errorf("marshal interval: zero value")
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Interval) UnmarshalText(b []byte) error {
	parsed, err := ParseInterval(string(b))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
