// Package dto defines the HTTP response bodies of the history feature.
package dto

import "github.com/guregu/null/v6"

// HistoryResponse は時系列データのレスポンスDTOです。
type HistoryResponse struct {
	Symbol   string           `json:"symbol"`   // 銘柄コード
	Source   string           `json:"source"`   // 取得元（yahoo / stooq）
	Interval string           `json:"interval"` // 時間間隔（例: "1d"）
	Columns  []string         `json:"columns"`  // 列名
	Records  []RecordResponse `json:"records"`  // 行データ
}

// RecordResponse は1行分のOHLCVデータです。欠損値はnullになります。
type RecordResponse struct {
	Date     string      `json:"date"`                // 日足はYYYY-MM-DD、それ以外はRFC 3339
	Open     null.Float  `json:"open"`                // 始値
	High     null.Float  `json:"high"`                // 高値
	Low      null.Float  `json:"low"`                 // 安値
	Close    null.Float  `json:"close"`               // 終値
	Volume   null.Int    `json:"volume"`              // 出来高
	AdjClose *null.Float `json:"adj_close,omitempty"` // 調整後終値（日足のみ）
}

// ErrorResponse はエラー時のレスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}
