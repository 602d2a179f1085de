package yahoo

import (
	"fmt"
	"log/slog"
	"time"

	"stock_history/internal/feature/history/domain"
	"stock_history/internal/feature/history/domain/entity"
	"stock_history/internal/platform/externalapi/yahoo/dto"
)

const resultPath = "chart.result[0]"

// normalize validates a decoded chart body and reshapes its parallel arrays into rows.
// statusCode is the transport status, reported on embedded error payloads.
func normalize(body *dto.ChartResponse, statusCode int, symbol string, interval entity.Interval, loc *time.Location) (*entity.Series, error) {
	if body.Chart == nil {
		return nil, &domain.SchemaError{Field: "chart"}
	}
	if e := body.Chart.Error; e != nil {
		return nil, &domain.ProviderResponseError{StatusCode: statusCode, Code: e.Code, Description: e.Description}
	}
	if len(body.Chart.Result) == 0 {
		return nil, &domain.SchemaError{Field: "chart.result"}
	}

	series := &entity.Series{
		Symbol:   symbol,
		Source:   entity.SourceYahoo,
		Interval: interval,
		Columns:  entity.ColumnsFor(interval),
		Records:  []entity.Record{},
	}

	res := body.Chart.Result[0]
	// No timestamp key means the window holds no samples.
	if res.Timestamp == nil {
		return series, nil
	}
	n := len(res.Timestamp)

	if res.Indicators == nil {
		return nil, &domain.SchemaError{Field: resultPath + ".indicators"}
	}
	if len(res.Indicators.Quote) == 0 {
		return nil, &domain.SchemaError{Field: resultPath + ".indicators.quote"}
	}
	q := res.Indicators.Quote[0]
	qp := resultPath + ".indicators.quote[0]"
	if err := checkColumn(qp+".open", len(q.Open), q.Open == nil, n); err != nil {
		return nil, err
	}
	if err := checkColumn(qp+".high", len(q.High), q.High == nil, n); err != nil {
		return nil, err
	}
	if err := checkColumn(qp+".low", len(q.Low), q.Low == nil, n); err != nil {
		return nil, err
	}
	if err := checkColumn(qp+".close", len(q.Close), q.Close == nil, n); err != nil {
		return nil, err
	}
	if err := checkColumn(qp+".volume", len(q.Volume), q.Volume == nil, n); err != nil {
		return nil, err
	}

	var adj dto.AdjClose
	if interval.IsDaily() {
		if len(res.Indicators.AdjClose) == 0 {
			return nil, &domain.SchemaError{Field: resultPath + ".indicators.adjclose"}
		}
		adj = res.Indicators.AdjClose[0]
		path := resultPath + ".indicators.adjclose[0].adjclose"
		if err := checkColumn(path, len(adj.AdjClose), adj.AdjClose == nil, n); err != nil {
			return nil, err
		}
	}

	exchange := exchangeLocation(res.Meta)
	records := make([]entity.Record, 0, n)
	for i, ts := range res.Timestamp {
		r := entity.Record{
			Time:   sampleTime(ts, interval, exchange, loc),
			Open:   q.Open[i],
			High:   q.High[i],
			Low:    q.Low[i],
			Close:  q.Close[i],
			Volume: q.Volume[i],
		}
		if interval.IsDaily() {
			r.AdjClose = adj.AdjClose[i]
		}
		records = append(records, r)
	}
	series.Records = records
	return series, nil
}

func checkColumn(path string, length int, missing bool, want int) error {
	if missing {
		return &domain.SchemaError{Field: path}
	}
	if length != want {
		return &domain.SchemaError{Field: path, Err: fmt.Errorf("length %d, want %d", length, want)}
	}
	return nil
}

// sampleTime converts epoch seconds to a timestamp in loc.
// Day intervals are labelled with the session's calendar date on the exchange, at midnight in loc.
func sampleTime(epoch int64, interval entity.Interval, exchange, loc *time.Location) time.Time {
	t := time.Unix(epoch, 0)
	if interval.IsDaily() {
		y, m, d := t.In(exchange).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
	return t.In(loc)
}

// exchangeLocation resolves meta.exchangeTimezoneName, then meta.gmtoffset, then UTC.
func exchangeLocation(meta *dto.Meta) *time.Location {
	if meta == nil {
		return time.UTC
	}
	if meta.ExchangeTimezoneName != "" {
		if loc, err := time.LoadLocation(meta.ExchangeTimezoneName); err == nil {
			return loc
		}
		slog.Debug("unknown exchange timezone", "name", meta.ExchangeTimezoneName)
	}
	if meta.GMTOffset != nil {
		return time.FixedZone("exchange", *meta.GMTOffset)
	}
	return time.UTC
}
