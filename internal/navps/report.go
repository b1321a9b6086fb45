// Package navps turns a PIFA daily NAVPS report page into typed fund records.
package navps

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/navps-cli/internal/model"
)

// Report is the processed NAVPS report for one date. It is built in full by
// FromDocument or Fetch and is not modified afterwards.
type Report struct {
	Date    time.Time
	Open    bool
	Header  []string
	Records []model.FundRecord
	Ranges  []TypeRange
}

// Empty reports whether the market was open but no fund rows were published.
func (r *Report) Empty() bool {
	return r.Open && len(r.Records) == 0
}

// Fetch retrieves the report for date from src and processes it.
func Fetch(ctx context.Context, src Source, date time.Time) (*Report, error) {
	date = Day(date)
	body, err := src.Fetch(ctx, date)
	if err != nil {
		if KindOf(err) == "" {
			err = &Error{Kind: KindFetch, Date: date, Err: err}
		}
		return nil, withDate(err, date)
	}
	defer body.Close() //nolint:errcheck

	return FromDocument(date, body)
}

// FromDocument processes an already retrieved report document. When the
// market was closed the report carries no header, records or ranges.
func FromDocument(date time.Time, doc io.Reader) (*Report, error) {
	date = Day(date)
	table, err := ParseTable(doc)
	if err != nil {
		return nil, withDate(err, date)
	}

	rep := &Report{Date: date}
	rep.Open = IsOpen(table.DataCells, len(table.Rows))
	if !rep.Open {
		zap.L().Debug("market closed",
			zap.Time("date", date),
			zap.Int("rows", len(table.Rows)),
		)
		return rep, nil
	}
	rep.Header = table.Header

	// An open report without fund rows has nothing to classify.
	if len(table.Rows) == 0 {
		return rep, nil
	}

	sections, err := BuildSections(table.Cells, model.FundTypes())
	if err != nil {
		return nil, withDate(err, date)
	}
	rep.Ranges = sections.Ranges()

	rep.Records, err = BuildRecords(date, table.Header, table.Rows, sections)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("report parsed",
		zap.Time("date", date),
		zap.Int("records", len(rep.Records)),
		zap.Int("cells", len(table.Cells)),
	)
	return rep, nil
}

// Day truncates t to its calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var dateLayouts = []string{
	model.DateLayout,
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"20060102",
}

// ParseDate parses a report date in any of the supported layouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), nil
		}
	}
	return time.Time{}, eris.Errorf("unrecognised date %q", s)
}
