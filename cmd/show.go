package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/navps-cli/internal/navps"
)

var showDate string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print one day's NAVPS report as CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		date, err := navps.ParseDate(showDate)
		if err != nil {
			return eris.Wrap(err, "parse --date")
		}

		src, err := newSource(cfg)
		if err != nil {
			return err
		}

		rep, err := navps.Fetch(cmd.Context(), src, date)
		if err != nil {
			return err
		}
		if !rep.Open {
			zap.L().Info("report skipped: market closed", zap.String("date", showDate))
			cmd.PrintErrln("market closed on", date.Format("2006-01-02"))
			return nil
		}
		return rep.WriteCSV(cmd.OutOrStdout())
	},
}

func init() {
	showCmd.Flags().StringVarP(&showDate, "date", "d", "", "report date (required)")
	_ = showCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(showCmd)
}
