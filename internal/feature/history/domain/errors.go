// Package domain defines domain-level errors for the history feature.
package domain

import (
	"fmt"
	"net/http"
)

// DateParseError indicates a malformed date input or an inverted date range.
type DateParseError struct {
	Field string // "start_date" or "end_date"
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }

// DataProviderError is returned when the tabular daily-data reader fails.
// It covers network errors, unknown symbols and empty ranges alike.
type DataProviderError struct {
	Source string
	Symbol string
	Err    error
}

func (e *DataProviderError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Source, e.Symbol, e.Err)
}

func (e *DataProviderError) Unwrap() error { return e.Err }

// ProviderResponseError is returned when the chart API answers with a structured error payload.
// StatusCode is the transport status, which may be 200.
type ProviderResponseError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *ProviderResponseError) Error() string {
	return fmt.Sprintf("failed to get stock data: error code %d: %s", e.StatusCode, e.Description)
}

// NotFound reports whether the upstream rejected the symbol as unknown.
func (e *ProviderResponseError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound || e.Code == "Not Found"
}

// TransportError wraps a network-level failure reaching the chart API.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ConfigurationError indicates an input or setting outside the supported set.
type ConfigurationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unsupported %s %q: %s", e.Field, e.Value, e.Reason)
}

// SchemaError indicates a provider response missing an expected field
// or carrying inconsistent data. Field is the JSON path of the offending value.
type SchemaError struct {
	Field string
	Err   error
}

func (e *SchemaError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("response schema: missing %s", e.Field)
	}
	return fmt.Sprintf("response schema: %s: %v", e.Field, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
