package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/navps-cli/internal/archive"
	"github.com/sells-group/navps-cli/internal/config"
	"github.com/sells-group/navps-cli/internal/fetcher"
	"github.com/sells-group/navps-cli/internal/model"
	"github.com/sells-group/navps-cli/internal/navps"
	"github.com/sells-group/navps-cli/internal/runlog"
)

var (
	fetchStart   string
	fetchEnd     string
	fetchFormat  string
	fetchOutDir  string
	fetchSummary string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download daily NAVPS reports for a date range",
	Long: `Downloads one report per weekday in the range and saves it as
<dir>/<YYYY>/<MM>-<Month>/mf-navps-report-<YYYY-MM-DD>.csv.

Examples:
  # Single day
  navps fetch --end 2017-03-14

  # From a date up to today
  navps fetch --start 2017-03-01

  # Explicit range as a workbook per day
  navps fetch --start 2017-03-01 --end 2017-03-31 --format xlsx`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		start, end, err := resolveRange(fetchStart, fetchEnd, time.Now())
		if err != nil {
			return err
		}

		r, err := newRunner(cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if fetchFormat != "" {
			r.format = fetchFormat
		}
		if fetchOutDir != "" {
			r.dir = fetchOutDir
		}

		summaryPath := cfg.Output.Summary
		if fetchSummary != "" {
			summaryPath = fetchSummary
		}

		zap.L().Info("run started",
			zap.String("start", start.Format(model.DateLayout)),
			zap.String("end", end.Format(model.DateLayout)),
		)
		summary := r.run(cmd.Context(), start, end)

		counts := summary.Counts()
		zap.L().Info("run finished",
			zap.String("run_id", summary.RunID),
			zap.Int("saved", counts[runlog.OutcomeSaved]),
			zap.Int("closed", counts[runlog.OutcomeClosed]),
			zap.Int("empty", counts[runlog.OutcomeEmpty]),
			zap.Int("failed", counts[runlog.OutcomeFailed]),
		)

		if summaryPath != "" {
			if err := summary.WriteFile(summaryPath); err != nil {
				return eris.Wrap(err, "fetch: write summary")
			}
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchStart, "start", "s", "", "starting date (not earlier than 2004-12-20)")
	fetchCmd.Flags().StringVarP(&fetchEnd, "end", "e", "", "ending date (up to the most recent trading day)")
	fetchCmd.Flags().StringVar(&fetchFormat, "format", "", "output format: csv or xlsx (overrides output.format)")
	fetchCmd.Flags().StringVar(&fetchOutDir, "out", "", "output directory (overrides output.dir)")
	fetchCmd.Flags().StringVar(&fetchSummary, "summary", "", "write a YAML run summary to this path")
	rootCmd.AddCommand(fetchCmd)
}

// runner processes dates one at a time against a single source.
type runner struct {
	source navps.Source
	dir    string
	format string
	out    io.Writer
}

func newRunner(c *config.Config, out io.Writer) (*runner, error) {
	src, err := newSource(c)
	if err != nil {
		return nil, err
	}
	return &runner{
		source: src,
		dir:    c.Output.Dir,
		format: c.Output.Format,
		out:    out,
	}, nil
}

// newSource builds the report source. Requests to the report host are paced
// by pacing.delay_secs.
func newSource(c *config.Config) (*navps.DocumentFetcher, error) {
	u, err := url.Parse(c.Source.Endpoint)
	if err != nil {
		return nil, eris.Wrap(err, "parse source.endpoint")
	}
	delay := time.Duration(c.Pacing.DelaySecs) * time.Second
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent: c.Source.UserAgent,
		Timeout:   time.Duration(c.Source.TimeoutSecs) * time.Second,
		RateLimiters: map[string]*rate.Limiter{
			u.Host: fetcher.PacedLimiter(delay),
		},
	})
	return navps.NewDocumentFetcher(c.Source.Endpoint, f), nil
}

func (r *runner) run(ctx context.Context, start, end time.Time) *runlog.Summary {
	summary := runlog.New(start, end)
	for _, date := range weekdays(start, end) {
		if ctx.Err() != nil {
			zap.L().Warn("run cancelled", zap.Error(ctx.Err()))
			break
		}
		summary.Record(date, r.process(ctx, date))
	}
	summary.Finish()
	return summary
}

// process handles one date. Failures are logged and recorded, never returned,
// so the run moves on to the next date.
func (r *runner) process(ctx context.Context, date time.Time) runlog.Entry {
	day := date.Format(model.DateLayout)
	log := zap.L().With(zap.String("date", day))
	_, _ = fmt.Fprintf(r.out, "Processing report %s", day)

	rep, err := navps.Fetch(ctx, r.source, date)
	if err != nil {
		kind := navps.KindOf(err)
		_, _ = fmt.Fprintf(r.out, " [Error: %v]\n", err)
		log.Error("report failed", zap.String("kind", string(kind)), zap.Error(err))
		return runlog.Entry{Outcome: runlog.OutcomeFailed, Kind: string(kind), Error: err.Error()}
	}

	switch {
	case !rep.Open:
		_, _ = fmt.Fprintln(r.out, " [No data. Date skipped]")
		log.Info("report skipped: market closed")
		return runlog.Entry{Outcome: runlog.OutcomeClosed}
	case rep.Empty():
		_, _ = fmt.Fprintln(r.out, " [Unable to obtain data]")
		log.Warn("report empty")
		return runlog.Entry{Outcome: runlog.OutcomeEmpty}
	}

	path, err := archive.Save(r.dir, rep, r.format)
	if err != nil {
		_, _ = fmt.Fprintf(r.out, " [Error: %v]\n", err)
		log.Error("report failed", zap.String("kind", "save"), zap.Error(err))
		return runlog.Entry{Outcome: runlog.OutcomeFailed, Kind: "save", Records: len(rep.Records), Error: err.Error()}
	}

	_, _ = fmt.Fprintln(r.out, " [Saved output file]")
	log.Info("report saved", zap.String("path", path), zap.Int("records", len(rep.Records)))
	return runlog.Entry{Outcome: runlog.OutcomeSaved, Records: len(rep.Records), Path: path}
}
