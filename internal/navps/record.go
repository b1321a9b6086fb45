package navps

import (
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/navps-cli/internal/model"
)

// Classifier maps a fund name to its fund-type label.
type Classifier interface {
	Classify(name string) string
}

// BuildRecord zips header labels with a data row. A length mismatch is a
// KindIntegrity error; rows are never truncated or padded.
func BuildRecord(date time.Time, header, row []string, c Classifier) (model.FundRecord, error) {
	if len(header) != len(row) {
		return model.FundRecord{}, integrityError(date, header, row, 0)
	}

	fields := make(map[string]string, len(header))
	for i, label := range header {
		fields[label] = row[i]
	}
	rec := model.FundRecord{Date: date, Fields: fields}
	rec.Type = c.Classify(rec.FundName())
	return rec, nil
}

// BuildRecords builds one record per row, preserving row order.
func BuildRecords(date time.Time, header []string, rows [][]string, c Classifier) ([]model.FundRecord, error) {
	records := make([]model.FundRecord, 0, len(rows))
	for i, row := range rows {
		if len(header) != len(row) {
			return nil, integrityError(date, header, row, i+1)
		}
		rec, err := BuildRecord(date, header, row, c)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func integrityError(date time.Time, header, row []string, rowNum int) error {
	err := eris.Errorf("row has %d cells, header has %d", len(row), len(header))
	if rowNum > 0 {
		err = eris.Errorf("row %d has %d cells, header has %d", rowNum, len(row), len(header))
	}
	return &Error{Kind: KindIntegrity, Date: date, Err: err}
}
