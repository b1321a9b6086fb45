package model

import "time"

// Column names of the NAVPS report. Date and Type are computed; the rest come
// from the report's header row.
const (
	ColDate        = "Date"
	ColFundName    = "Fund Name"
	ColType        = "Type"
	ColNAVPerShare = "NAV Per Share"
	ColReturn1Yr   = "1 yr. Return (%)"
	ColReturn3Yr   = "3 yr. Return (%)"
	ColReturn5Yr   = "5 yr. Return (%)"
	ColReturnYTD   = "YTD Return (%)"
	ColNAVHistory  = "N.A.V. History"
	TypeUnknown    = "Unknown"
	DateLayout     = "2006-01-02"
)

// Columns returns the fixed output column order.
func Columns() []string {
	return []string{
		ColDate,
		ColFundName,
		ColType,
		ColNAVPerShare,
		ColReturn1Yr,
		ColReturn3Yr,
		ColReturn5Yr,
		ColReturnYTD,
		ColNAVHistory,
	}
}

// FundTypes returns the known fund-type section labels in report order.
func FundTypes() []string {
	return []string{
		"Stock Funds",
		"Balanced Funds",
		"Bond Funds",
		"Money Market Funds",
	}
}

// FundRecord is one fund row of a daily NAVPS report.
type FundRecord struct {
	Date   time.Time
	Type   string
	Fields map[string]string // header label -> cell text
}

// FundName returns the record's "Fund Name" field.
func (r FundRecord) FundName() string {
	return r.Fields[ColFundName]
}

// Get returns the value for a column. Date and Type are always the computed
// values, even when the source header carries a column with the same name.
func (r FundRecord) Get(col string) (string, bool) {
	switch col {
	case ColDate:
		return r.Date.Format(DateLayout), true
	case ColType:
		return r.Type, true
	}
	v, ok := r.Fields[col]
	return v, ok
}
