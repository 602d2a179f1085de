// Package dto defines data transfer objects for the Yahoo Finance chart API responses.
package dto

import "github.com/guregu/null/v6"

// ChartResponse represents the JSON body of /v8/finance/chart/{symbol}.
// Pointers and slices stay nil when the key is absent so that callers can
// tell a missing field from an empty one.
type ChartResponse struct {
	Chart *Chart `json:"chart"`
}

// Chart is the top-level envelope; exactly one of Result and Error is set.
type Chart struct {
	Result []ChartResult `json:"result"`
	Error  *ChartError   `json:"error"`
}

// ChartError is the structured error payload.
type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ChartResult carries the sample timestamps and the parallel indicator arrays.
type ChartResult struct {
	Meta       *Meta       `json:"meta"`
	Timestamp  []int64     `json:"timestamp"`
	Indicators *Indicators `json:"indicators"`
}

// Meta describes the listing. Daily timestamps are session opens in the exchange zone.
type Meta struct {
	Symbol               string `json:"symbol"`
	ExchangeTimezoneName string `json:"exchangeTimezoneName"`
	GMTOffset            *int   `json:"gmtoffset"`
}

// Indicators groups the quote arrays and, for day intervals, the adjusted close.
type Indicators struct {
	Quote    []Quote    `json:"quote"`
	AdjClose []AdjClose `json:"adjclose"`
}

// Quote holds OHLCV arrays aligned with ChartResult.Timestamp. Gaps are JSON null.
type Quote struct {
	Open   []null.Float `json:"open"`
	High   []null.Float `json:"high"`
	Low    []null.Float `json:"low"`
	Close  []null.Float `json:"close"`
	Volume []null.Int   `json:"volume"`
}

// AdjClose holds the adjusted close array.
type AdjClose struct {
	AdjClose []null.Float `json:"adjclose"`
}
