// Package entity defines the domain models for the history feature.
package entity

import (
	"time"

	"github.com/guregu/null/v6"
)

// Column names as emitted in a Series.
const (
	ColumnOpen     = "Open"
	ColumnHigh     = "High"
	ColumnLow      = "Low"
	ColumnClose    = "Close"
	ColumnVolume   = "Volume"
	ColumnAdjClose = "Adj_close"
)

// Source identifies the provider a Series was fetched from.
type Source string

const (
	SourceStooq Source = "stooq"
	SourceYahoo Source = "yahoo"
)

// OHLCVColumns is the column set shared by every provider.
func OHLCVColumns() []string {
	return []string{ColumnOpen, ColumnHigh, ColumnLow, ColumnClose, ColumnVolume}
}

// ColumnsFor returns the Yahoo column set for an interval.
// Day intervals carry the adjusted close, sub-day intervals do not.
func ColumnsFor(interval Interval) []string {
	cols := OHLCVColumns()
	if interval.IsDaily() {
		cols = append(cols, ColumnAdjClose)
	}
	return cols
}

// Record is one OHLCV row keyed by Time.
// Price fields are null when the provider reports a gap for that sample.
type Record struct {
	Time     time.Time  `json:"time"`      // Midnight for day intervals, exact instant otherwise
	Open     null.Float `json:"open"`      // Opening price
	High     null.Float `json:"high"`      // Highest price during the period
	Low      null.Float `json:"low"`       // Lowest price during the period
	Close    null.Float `json:"close"`     // Closing price
	Volume   null.Int   `json:"volume"`    // Traded volume
	AdjClose null.Float `json:"adj_close"` // Dividend/split adjusted close, day intervals only
}

// Series is the normalized result of one fetch, ordered as the provider returned it.
type Series struct {
	Symbol   string   `json:"symbol"`
	Source   Source   `json:"source"`
	Interval Interval `json:"interval"`
	Columns  []string `json:"columns"`
	Records  []Record `json:"records"`
}

// Len returns the number of rows.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

// HasColumn reports whether name is part of the series schema.
func (s *Series) HasColumn(name string) bool {
	for _, c := range s.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Value returns the cell of record r for column name.
// The second result is false when the column is unknown.
func (r Record) Value(name string) (null.Float, bool) {
	switch name {
	case ColumnOpen:
		return r.Open, true
	case ColumnHigh:
		return r.High, true
	case ColumnLow:
		return r.Low, true
	case ColumnClose:
		return r.Close, true
	case ColumnVolume:
		if !r.Volume.Valid {
			return null.Float{}, true
		}
		return null.FloatFrom(float64(r.Volume.Int64)), true
	case ColumnAdjClose:
		return r.AdjClose, true
	default:
		return null.Float{}, false
	}
}
