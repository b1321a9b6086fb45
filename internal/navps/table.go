package navps

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
)

// Selectors for the report page.
const (
	SelectorHeaderCells = "tr.icap_HederText03 td"
	SelectorDataRows    = "tr.icap_DataText021"
	SelectorDataCells   = "tr.icap_DataText021 td"
	SelectorAllCells    = "td"
)

// Table is the parsed content of one report page. All tokens are trimmed of
// surrounding whitespace and otherwise left untouched.
type Table struct {
	Header    []string   // header row labels
	Rows      [][]string // data rows, one slice of cell text per row
	DataCells []string   // every cell of the data rows, in document order
	Cells     []string   // every td in the document, in document order
}

// ParseTable parses a report document.
func ParseTable(r io.Reader) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &Error{Kind: KindParse, Err: eris.Wrap(err, "parse document")}
	}

	t := &Table{
		Header:    cellTexts(doc.Find(SelectorHeaderCells)),
		DataCells: cellTexts(doc.Find(SelectorDataCells)),
		Cells:     cellTexts(doc.Find(SelectorAllCells)),
	}
	doc.Find(SelectorDataRows).Each(func(_ int, tr *goquery.Selection) {
		t.Rows = append(t.Rows, cellTexts(tr.Find("td")))
	})
	return t, nil
}

func cellTexts(sel *goquery.Selection) []string {
	out := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}
