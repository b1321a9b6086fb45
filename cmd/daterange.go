package main

import (
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/navps-cli/internal/navps"
)

// earliestReport is the first date the report endpoint publishes.
var earliestReport = time.Date(2004, time.December, 20, 0, 0, 0, 0, time.UTC)

// resolveRange turns the --start/--end flags into an inclusive date range.
// With only --end the range is that single day; with only --start it runs
// to today.
func resolveRange(startFlag, endFlag string, now time.Time) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	switch {
	case endFlag != "":
		end, err = navps.ParseDate(endFlag)
		if err != nil {
			return start, end, eris.Wrap(err, "parse --end")
		}
		start = end
		if startFlag != "" {
			start, err = navps.ParseDate(startFlag)
			if err != nil {
				return start, end, eris.Wrap(err, "parse --start")
			}
		}
	case startFlag != "":
		start, err = navps.ParseDate(startFlag)
		if err != nil {
			return start, end, eris.Wrap(err, "parse --start")
		}
		end = navps.Day(now)
	default:
		return start, end, eris.New("no dates specified")
	}

	if start.Before(earliestReport) {
		return start, end, eris.Errorf("start date %s is before the first published report (%s)",
			start.Format("2006-01-02"), earliestReport.Format("2006-01-02"))
	}
	if start.After(end) {
		return start, end, eris.Errorf("start date %s is after end date %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return start, end, nil
}

// weekdays lists the Monday-to-Friday dates in [start, end].
func weekdays(start, end time.Time) []time.Time {
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		days = append(days, d)
	}
	return days
}
