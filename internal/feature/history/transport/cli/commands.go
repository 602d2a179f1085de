// Package cli provides the command-line surface of the history feature.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"stock_history/internal/feature/history/domain/entity"
	"stock_history/internal/feature/history/usecase"
)

// Demo request run when no subcommand is given.
const (
	DemoSymbol    = "AAPL"
	DemoStartDate = "2025-12-22"
	DemoEndDate   = "2026-01-01"
)

// YahooUsecase fetches chart series.
type YahooUsecase interface {
	Fetch(ctx context.Context, symbol, startDate, endDate, interval string) (*entity.Series, error)
}

// StooqUsecase fetches daily tables.
type StooqUsecase interface {
	Fetch(ctx context.Context, symbol, startDate, endDate string) (*entity.Series, error)
}

// NewRootCommand builds the history command tree.
// Without a subcommand it prints the demo Yahoo series.
func NewRootCommand(yahoo YahooUsecase, stooq StooqUsecase) *cobra.Command {
	root := &cobra.Command{
		Use:           "history",
		Short:         "Download historical stock prices",
		Long:          "Download historical OHLCV series from Yahoo Finance or Stooq and print them as a table.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := yahoo.Fetch(cmd.Context(), DemoSymbol, DemoStartDate, DemoEndDate, usecase.DefaultInterval)
			if err != nil {
				return err
			}
			return WriteTable(cmd.OutOrStdout(), s)
		},
	}
	root.AddCommand(newYahooCommand(yahoo), newStooqCommand(stooq))
	return root
}

func newYahooCommand(yahoo YahooUsecase) *cobra.Command {
	var start, end, interval string
	cmd := &cobra.Command{
		Use:   "yahoo SYMBOL",
		Short: "Fetch a chart series from Yahoo Finance",
		Long: `Fetch a chart series from Yahoo Finance.
Supported intervals are <n>d, <n>h and <n>m (e.g. 1d, 1h, 15m).
Sub-daily data is only served for about the last 8 days of a request window.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := yahoo.Fetch(cmd.Context(), args[0], start, end, interval)
			if err != nil {
				return err
			}
			return WriteTable(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().StringVarP(&start, "start", "s", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&end, "end", "e", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&interval, "interval", "i", usecase.DefaultInterval, "Sampling interval")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newStooqCommand(stooq StooqUsecase) *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "stooq SYMBOL",
		Short: "Fetch a daily table from Stooq",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := stooq.Fetch(cmd.Context(), args[0], start, end)
			if err != nil {
				return err
			}
			return WriteTable(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().StringVarP(&start, "start", "s", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&end, "end", "e", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}
