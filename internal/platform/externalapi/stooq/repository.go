package stooq

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/guregu/null/v6"

	"stock_history/internal/feature/history/domain"
	"stock_history/internal/feature/history/domain/entity"
	"stock_history/internal/feature/history/usecase"
)

// ErrNoData is reported when Stooq has no rows for the symbol and range.
var ErrNoData = errors.New("no data")

const stooqDateLayout = "20060102"

// StooqMarket reads daily OHLCV tables from Stooq.
type StooqMarket struct {
	cfg    Config
	client *http.Client
}

// StooqMarket must satisfy DailyReader.
var _ usecase.DailyReader = (*StooqMarket)(nil)

// NewStooqMarket creates a StooqMarket with the given config and HTTP client.
func NewStooqMarket(cfg Config, client *http.Client) *StooqMarket {
	return &StooqMarket{cfg: cfg, client: client}
}

// ReadDaily downloads daily bars for symbol between start and end (inclusive).
// Every failure is reported as a *domain.DataProviderError.
func (s *StooqMarket) ReadDaily(ctx context.Context, symbol string, start, end time.Time) (*entity.Series, error) {
	series, err := s.readDaily(ctx, symbol, start, end)
	if err != nil {
		return nil, &domain.DataProviderError{Source: string(entity.SourceStooq), Symbol: symbol, Err: err}
	}
	return series, nil
}

func (s *StooqMarket) readDaily(ctx context.Context, symbol string, start, end time.Time) (*entity.Series, error) {
	q := url.Values{}
	q.Set("s", normalizeSymbol(symbol, s.cfg.Country))
	q.Set("i", "d")
	q.Set("d1", start.Format(stooqDateLayout))
	q.Set("d2", end.Format(stooqDateLayout))

	u := fmt.Sprintf("%s/q/d/l/?%s", strings.TrimRight(s.cfg.BaseURL, "/"), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("stooq http %d", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	series, err := parseCSV(raw, start.Location())
	if err != nil {
		return nil, err
	}
	series.Symbol = symbol
	slog.Debug("stooq daily fetched", "symbol", symbol, "rows", series.Len())
	return series, nil
}

// parseCSV turns a Stooq download into a daily series. Columns are matched by header name.
func parseCSV(raw []byte, loc *time.Location) (*entity.Series, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || strings.EqualFold(string(trimmed), "no data") {
		return nil, ErrNoData
	}

	r := csv.NewReader(bytes.NewReader(trimmed))
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	dateIdx := -1
	colIdx := map[string]int{}
	for i, h := range header {
		name := strings.TrimSpace(h)
		if strings.EqualFold(name, "Date") {
			dateIdx = i
			continue
		}
		for _, c := range entity.OHLCVColumns() {
			if strings.EqualFold(name, c) {
				colIdx[c] = i
			}
		}
	}
	if dateIdx < 0 {
		return nil, fmt.Errorf("unexpected response: %s", firstLine(trimmed))
	}

	var columns []string
	for _, c := range entity.OHLCVColumns() {
		if _, ok := colIdx[c]; ok {
			columns = append(columns, c)
		}
	}

	series := &entity.Series{
		Source:   entity.SourceStooq,
		Interval: entity.DailyInterval,
		Columns:  columns,
		Records:  []entity.Record{},
	}

	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		rec, err := parseRow(row, dateIdx, colIdx, loc)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		series.Records = append(series.Records, rec)
	}

	if len(series.Records) == 0 {
		return nil, ErrNoData
	}
	return series, nil
}

func parseRow(row []string, dateIdx int, colIdx map[string]int, loc *time.Location) (entity.Record, error) {
	var rec entity.Record
	if dateIdx >= len(row) {
		return rec, fmt.Errorf("missing date")
	}
	tm, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(row[dateIdx]), loc)
	if err != nil {
		return rec, fmt.Errorf("parse date %q: %w", row[dateIdx], err)
	}
	rec.Time = tm

	cell := func(name string) string {
		i, ok := colIdx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	if rec.Open, err = parseFloat(cell(entity.ColumnOpen)); err != nil {
		return rec, fmt.Errorf("parse open: %w", err)
	}
	if rec.High, err = parseFloat(cell(entity.ColumnHigh)); err != nil {
		return rec, fmt.Errorf("parse high: %w", err)
	}
	if rec.Low, err = parseFloat(cell(entity.ColumnLow)); err != nil {
		return rec, fmt.Errorf("parse low: %w", err)
	}
	if rec.Close, err = parseFloat(cell(entity.ColumnClose)); err != nil {
		return rec, fmt.Errorf("parse close: %w", err)
	}
	if rec.Volume, err = parseVolume(cell(entity.ColumnVolume)); err != nil {
		return rec, fmt.Errorf("parse volume: %w", err)
	}
	return rec, nil
}

func parseFloat(s string) (null.Float, error) {
	if s == "" {
		return null.Float{}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return null.Float{}, err
	}
	return null.FloatFrom(f), nil
}

// parseVolume accepts integers and the occasional fractional volume Stooq reports for indices.
func parseVolume(s string) (null.Int, error) {
	if s == "" {
		return null.Int{}, nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return null.IntFrom(v), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return null.Int{}, err
	}
	return null.IntFrom(int64(math.Round(f))), nil
}

func firstLine(b []byte) string {
	line, _, _ := bytes.Cut(b, []byte("\n"))
	const maxLen = 80
	if len(line) > maxLen {
		line = line[:maxLen]
	}
	return string(line)
}
