// Package usecase は株価履歴の取得と正規化のビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"
	"time"

	"stock_history/internal/feature/history/domain"
	"stock_history/internal/feature/history/domain/entity"
)

// DefaultInterval はYahoo取得時のデフォルト時間間隔です。
const DefaultInterval = "1d"

// DailyReader は日足の表形式データを取得する外部サービスを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type DailyReader interface {
	ReadDaily(ctx context.Context, symbol string, start, end time.Time) (*entity.Series, error)
}

// ChartRepository はチャートAPIから正規化済みの時系列を取得します。
// 日足のタイムスタンプは start のロケーションで0時に切り捨てられます。
type ChartRepository interface {
	GetChart(ctx context.Context, symbol string, start, end time.Time, interval entity.Interval) (*entity.Series, error)
}

// StooqFetcher はStooqから日足データを取得します。
type StooqFetcher struct {
	reader DailyReader
	loc    *time.Location
}

// NewStooqFetcher はStooqFetcherの新しいインスタンスを生成します。locがnilの場合はUTCを使用します。
func NewStooqFetcher(reader DailyReader, loc *time.Location) *StooqFetcher {
	if loc == nil {
		loc = time.UTC
	}
	return &StooqFetcher{reader: reader, loc: loc}
}

// Fetch は startDate から endDate（YYYY-MM-DD）までの日足を取得します。
// 時間足は日足固定です。リーダーのエラーはそのまま返します。
func (f *StooqFetcher) Fetch(ctx context.Context, symbol, startDate, endDate string) (*entity.Series, error) {
	if err := validateSymbol(symbol); err != nil {
		return nil, err
	}
	start, end, err := parseRange(startDate, endDate, f.loc)
	if err != nil {
		return nil, err
	}
	return f.reader.ReadDaily(ctx, symbol, start, end)
}

// YahooFetcher はYahoo Financeのチャートから時系列データを取得します。
type YahooFetcher struct {
	chart ChartRepository
	loc   *time.Location
}

// NewYahooFetcher はYahooFetcherの新しいインスタンスを生成します。locがnilの場合はUTCを使用します。
func NewYahooFetcher(chart ChartRepository, loc *time.Location) *YahooFetcher {
	if loc == nil {
		loc = time.UTC
	}
	return &YahooFetcher{chart: chart, loc: loc}
}

// Fetch は指定された銘柄・期間・時間間隔の時系列を取得します。
// interval が空の場合は DefaultInterval を使用し、未対応の値はネットワーク呼び出し前に
// ConfigurationError で拒否します。
func (f *YahooFetcher) Fetch(ctx context.Context, symbol, startDate, endDate, interval string) (*entity.Series, error) {
	if err := validateSymbol(symbol); err != nil {
		return nil, err
	}
	if interval == "" {
		interval = DefaultInterval
	}
	iv, err := entity.ParseInterval(interval)
	if err != nil {
		return nil, err
	}
	start, end, err := parseRange(startDate, endDate, f.loc)
	if err != nil {
		return nil, err
	}
	return f.chart.GetChart(ctx, symbol, start, end, iv)
}

func validateSymbol(symbol string) error {
	if strings.TrimSpace(symbol) == "" {
		return &domain.ConfigurationError{Field: "symbol", Value: symbol, Reason: "must not be empty"}
	}
	return nil
}
