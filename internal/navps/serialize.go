package navps

import (
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/navps-cli/internal/model"
)

// SheetName is the worksheet name used by WriteXLSX.
const SheetName = "NAVPS"

// WriteCSV writes records under the fixed model.Columns header. Fields not in
// the column list are dropped; missing columns are written empty.
func WriteCSV(w io.Writer, records []model.FundRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.Columns()); err != nil {
		return eris.Wrap(err, "csv: write header")
	}
	for _, rec := range records {
		if err := cw.Write(recordRow(rec)); err != nil {
			return eris.Wrap(err, "csv: write row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "csv: flush")
	}
	return nil
}

// WriteXLSX writes records as a single-sheet workbook with the same layout as WriteCSV.
func WriteXLSX(w io.Writer, records []model.FundRecord) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(SheetName)
	if err != nil {
		return eris.Wrap(err, "xlsx: add sheet")
	}
	addRow(sheet, model.Columns())
	for _, rec := range records {
		addRow(sheet, recordRow(rec))
	}
	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "xlsx: write")
	}
	return nil
}

// WriteCSV writes the report's records. See WriteCSV.
func (r *Report) WriteCSV(w io.Writer) error {
	return WriteCSV(w, r.Records)
}

// WriteXLSX writes the report's records. See WriteXLSX.
func (r *Report) WriteXLSX(w io.Writer) error {
	return WriteXLSX(w, r.Records)
}

func recordRow(rec model.FundRecord) []string {
	cols := model.Columns()
	row := make([]string, len(cols))
	for i, col := range cols {
		row[i], _ = rec.Get(col)
	}
	return row
}

func addRow(sheet *xlsx.Sheet, values []string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}
