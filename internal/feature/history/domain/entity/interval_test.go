package entity

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_history/internal/feature/history/domain"
)

func TestParseInterval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Interval
		wantErr bool
	}{
		{in: "1d", want: Interval{Unit: Day, Multiplier: 1}},
		{in: "5d", want: Interval{Unit: Day, Multiplier: 5}},
		{in: "1h", want: Interval{Unit: Hour, Multiplier: 1}},
		{in: "15m", want: Interval{Unit: Minute, Multiplier: 15}},
		{in: "", wantErr: true},
		{in: "d", wantErr: true},
		{in: "0d", wantErr: true},
		{in: "01d", wantErr: true},
		{in: "005m", wantErr: true},
		{in: "10d", want: Interval{Unit: Day, Multiplier: 10}},
		{in: "-1d", wantErr: true},
		{in: "1x", wantErr: true},
		{in: "1wk", wantErr: true},
		{in: "1mo", wantErr: true},
		{in: "1D", wantErr: true},
		{in: " 1d", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseInterval(tt.in)
			if tt.wantErr {
				var cfgErr *domain.ConfigurationError
				require.True(t, errors.As(err, &cfgErr), "expected ConfigurationError, got %v", err)
				assert.Equal(t, "interval", cfgErr.Field)
				assert.Equal(t, tt.in, cfgErr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestInterval_IsDaily(t *testing.T) {
	t.Parallel()

	assert.True(t, DailyInterval.IsDaily())
	assert.True(t, Interval{Unit: Day, Multiplier: 5}.IsDaily())
	assert.False(t, Interval{Unit: Hour, Multiplier: 1}.IsDaily())
	assert.False(t, Interval{Unit: Minute, Multiplier: 30}.IsDaily())
}

func TestInterval_Text(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(struct {
		Interval Interval `json:"interval"`
	}{Interval: Interval{Unit: Minute, Multiplier: 30}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"interval":"30m"}`, string(b))

	var decoded struct {
		Interval Interval `json:"interval"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"interval":"2h"}`), &decoded))
	assert.Equal(t, Interval{Unit: Hour, Multiplier: 2}, decoded.Interval)

	assert.Error(t, json.Unmarshal([]byte(`{"interval":"1wk"}`), &decoded))

	_, err = Interval{}.MarshalText()
	assert.Error(t, err)
}

func TestColumnsFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"Open", "High", "Low", "Close", "Volume", "Adj_close"},
		ColumnsFor(DailyInterval))
	assert.Equal(t,
		[]string{"Open", "High", "Low", "Close", "Volume"},
		ColumnsFor(Interval{Unit: Hour, Multiplier: 1}))
}
