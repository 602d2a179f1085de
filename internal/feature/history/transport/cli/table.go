package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"stock_history/internal/feature/history/domain/entity"
)

const (
	naCell          = "NaN"
	intradayLayout  = "2006-01-02 15:04:05"
	dailyDateLayout = "2006-01-02"
)

// WriteTable prints the series as an aligned table indexed by Date.
func WriteTable(w io.Writer, s *entity.Series) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	header := append([]string{"Date"}, s.Columns...)
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")+"\t"); err != nil {
		return err
	}

	layout := intradayLayout
	if s.Interval.IsDaily() {
		layout = dailyDateLayout
	}

	for _, r := range s.Records {
		cells := make([]string, 0, len(header))
		cells = append(cells, r.Time.Format(layout))
		for _, c := range s.Columns {
			cells = append(cells, formatCell(r, c))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(tw, "\n[%d rows x %d columns]\n", s.Len(), len(s.Columns)); err != nil {
		return err
	}
	return tw.Flush()
}

func formatCell(r entity.Record, column string) string {
	if column == entity.ColumnVolume {
		if !r.Volume.Valid {
			return naCell
		}
		return strconv.FormatInt(r.Volume.Int64, 10)
	}
	v, ok := r.Value(column)
	if !ok || !v.Valid {
		return naCell
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}
