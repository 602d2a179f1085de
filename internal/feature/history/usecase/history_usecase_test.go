package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_history/internal/feature/history/domain"
	"stock_history/internal/feature/history/domain/entity"
	"stock_history/internal/feature/history/usecase"
)

// mockChartRepository はChartRepositoryのモック実装です。
type mockChartRepository struct {
	calls      int
	getChartFn func(ctx context.Context, symbol string, start, end time.Time, interval entity.Interval) (*entity.Series, error)
}

func (m *mockChartRepository) GetChart(ctx context.Context, symbol string, start, end time.Time, interval entity.Interval) (*entity.Series, error) {
	m.calls++
	if m.getChartFn != nil {
		return m.getChartFn(ctx, symbol, start, end, interval)
	}
	return &entity.Series{Symbol: symbol, Source: entity.SourceYahoo, Interval: interval}, nil
}

// mockDailyReader はDailyReaderのモック実装です。
type mockDailyReader struct {
	calls       int
	readDailyFn func(ctx context.Context, symbol string, start, end time.Time) (*entity.Series, error)
}

func (m *mockDailyReader) ReadDaily(ctx context.Context, symbol string, start, end time.Time) (*entity.Series, error) {
	m.calls++
	if m.readDailyFn != nil {
		return m.readDailyFn(ctx, symbol, start, end)
	}
	return &entity.Series{Symbol: symbol, Source: entity.SourceStooq, Interval: entity.DailyInterval}, nil
}

// TestYahooFetcher_Fetch_Success は日付と時間間隔が解析されてリポジトリに渡されることを検証します。
func TestYahooFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	repo := &mockChartRepository{
		getChartFn: func(ctx context.Context, symbol string, start, end time.Time, interval entity.Interval) (*entity.Series, error) {
			assert.Equal(t, "AAPL", symbol)
			assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), start)
			assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), end)
			assert.Equal(t, entity.Interval{Unit: entity.Hour, Multiplier: 1}, interval)
			return &entity.Series{Symbol: symbol, Interval: interval}, nil
		},
	}
	f := usecase.NewYahooFetcher(repo, nil)

	s, err := f.Fetch(context.Background(), "AAPL", "2024-01-02", "2024-01-05", "1h")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", s.Symbol)
	assert.Equal(t, 1, repo.calls)
}

// TestYahooFetcher_Fetch_DefaultInterval は時間間隔が空の場合に日足が使われることを検証します。
func TestYahooFetcher_Fetch_DefaultInterval(t *testing.T) {
	t.Parallel()

	repo := &mockChartRepository{}
	f := usecase.NewYahooFetcher(repo, time.UTC)

	s, err := f.Fetch(context.Background(), "AAPL", "2024-01-02", "2024-01-05", "")
	require.NoError(t, err)
	assert.Equal(t, entity.DailyInterval, s.Interval)
}

// TestYahooFetcher_Fetch_Location は設定されたタイムゾーンで日付が解釈されることを検証します。
func TestYahooFetcher_Fetch_Location(t *testing.T) {
	t.Parallel()

	tokyo := time.FixedZone("JST", 9*60*60)
	repo := &mockChartRepository{
		getChartFn: func(ctx context.Context, symbol string, start, end time.Time, interval entity.Interval) (*entity.Series, error) {
			assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, tokyo), start)
			assert.Equal(t, int64(1704121200), start.Unix())
			assert.Equal(t, tokyo, start.Location())
			return &entity.Series{}, nil
		},
	}

	_, err := usecase.NewYahooFetcher(repo, tokyo).Fetch(context.Background(), "7203.T", "2024-01-02", "2024-01-03", "1d")
	require.NoError(t, err)
}

// TestYahooFetcher_Fetch_Errors は入力エラーがネットワーク呼び出し前に返されることを検証します。
func TestYahooFetcher_Fetch_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		symbol    string
		start     string
		end       string
		interval  string
		wantField string
		wantDate  bool
	}{
		{name: "unsupported interval", symbol: "AAPL", start: "2024-01-02", end: "2024-01-05", interval: "1wk", wantField: "interval"},
		{name: "unsupported interval with bad dates", symbol: "AAPL", start: "bad", end: "bad", interval: "1x", wantField: "interval"},
		{name: "empty symbol", symbol: " ", start: "2024-01-02", end: "2024-01-05", interval: "1d", wantField: "symbol"},
		{name: "malformed start", symbol: "AAPL", start: "2024/01/02", end: "2024-01-05", interval: "1d", wantField: "start_date", wantDate: true},
		{name: "malformed end", symbol: "AAPL", start: "2024-01-02", end: "2024-13-01", interval: "1d", wantField: "end_date", wantDate: true},
		{name: "inverted range", symbol: "AAPL", start: "2024-01-05", end: "2024-01-02", interval: "1d", wantField: "end_date", wantDate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockChartRepository{}
			_, err := usecase.NewYahooFetcher(repo, nil).Fetch(context.Background(), tt.symbol, tt.start, tt.end, tt.interval)
			require.Error(t, err)
			assert.Equal(t, 0, repo.calls)

			if tt.wantDate {
				var dateErr *domain.DateParseError
				require.True(t, errors.As(err, &dateErr), "expected DateParseError, got %v", err)
				assert.Equal(t, tt.wantField, dateErr.Field)
				return
			}
			var cfgErr *domain.ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "expected ConfigurationError, got %v", err)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

// TestYahooFetcher_Fetch_RepositoryError はリポジトリのエラーがそのまま返されることを検証します。
func TestYahooFetcher_Fetch_RepositoryError(t *testing.T) {
	t.Parallel()

	want := &domain.ProviderResponseError{StatusCode: 404, Code: "Not Found", Description: "No data found"}
	repo := &mockChartRepository{
		getChartFn: func(ctx context.Context, symbol string, start, end time.Time, interval entity.Interval) (*entity.Series, error) {
			return nil, want
		},
	}

	_, err := usecase.NewYahooFetcher(repo, nil).Fetch(context.Background(), "ZZZZ", "2024-01-02", "2024-01-05", "1d")
	assert.Same(t, want, err)
}

// TestStooqFetcher_Fetch_Success は日付がUTCの0時として解析されることを検証します。
func TestStooqFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	reader := &mockDailyReader{
		readDailyFn: func(ctx context.Context, symbol string, start, end time.Time) (*entity.Series, error) {
			assert.Equal(t, "AAPL", symbol)
			assert.Equal(t, time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC), start)
			assert.Equal(t, time.Date(2023, 1, 6, 0, 0, 0, 0, time.UTC), end)
			return &entity.Series{Symbol: symbol, Source: entity.SourceStooq}, nil
		},
	}

	s, err := usecase.NewStooqFetcher(reader, nil).Fetch(context.Background(), "AAPL", "2023-01-03", "2023-01-06")
	require.NoError(t, err)
	assert.Equal(t, entity.SourceStooq, s.Source)
	assert.Equal(t, 1, reader.calls)
}

// TestStooqFetcher_Fetch_SameDay は開始日と終了日が同じ場合も許可されることを検証します。
func TestStooqFetcher_Fetch_SameDay(t *testing.T) {
	t.Parallel()

	reader := &mockDailyReader{}
	_, err := usecase.NewStooqFetcher(reader, nil).Fetch(context.Background(), "AAPL", "2023-01-03", "2023-01-03")
	require.NoError(t, err)
	assert.Equal(t, 1, reader.calls)
}

// TestStooqFetcher_Fetch_Errors は入力エラーとリーダーエラーの伝播を検証します。
func TestStooqFetcher_Fetch_Errors(t *testing.T) {
	t.Parallel()

	t.Run("malformed date", func(t *testing.T) {
		t.Parallel()

		reader := &mockDailyReader{}
		_, err := usecase.NewStooqFetcher(reader, nil).Fetch(context.Background(), "AAPL", "01-03-2023", "2023-01-06")
		var dateErr *domain.DateParseError
		require.True(t, errors.As(err, &dateErr))
		assert.Equal(t, "start_date", dateErr.Field)
		assert.Equal(t, "01-03-2023", dateErr.Value)
		assert.Equal(t, 0, reader.calls)
	})

	t.Run("reader failure", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("no data")
		reader := &mockDailyReader{
			readDailyFn: func(ctx context.Context, symbol string, start, end time.Time) (*entity.Series, error) {
				return nil, &domain.DataProviderError{Source: "stooq", Symbol: symbol, Err: cause}
			},
		}
		_, err := usecase.NewStooqFetcher(reader, nil).Fetch(context.Background(), "ZZZZ", "2023-01-03", "2023-01-06")
		var provErr *domain.DataProviderError
		require.True(t, errors.As(err, &provErr))
		assert.ErrorIs(t, err, cause)
	})
}
