package navps

import (
	"fmt"
	"strings"
)

type fixtureSection struct {
	label string
	rows  [][]string
}

// reportHTML renders a page shaped like the published report: a header row,
// then for each fund type a label row followed by its fund rows.
func reportHTML(header []string, sections []fixtureSection) string {
	var b strings.Builder
	b.WriteString("<html><body><table>\n")
	b.WriteString(`<tr class="icap_HederText03">`)
	for _, h := range header {
		fmt.Fprintf(&b, "<td> %s </td>", h)
	}
	b.WriteString("</tr>\n")
	for _, s := range sections {
		fmt.Fprintf(&b, `<tr class="icap_SectionText"><td colspan="%d">%s</td></tr>`+"\n", len(header), s.label)
		for _, row := range s.rows {
			b.WriteString(`<tr class="icap_DataText021">`)
			for _, c := range row {
				fmt.Fprintf(&b, "<td>\n  %s\n</td>", c)
			}
			b.WriteString("</tr>\n")
		}
	}
	b.WriteString("</table></body></html>")
	return b.String()
}

var fullHeader = []string{
	"Fund Name",
	"NAV Per Share",
	"1 yr. Return (%)",
	"3 yr. Return (%)",
	"5 yr. Return (%)",
	"YTD Return (%)",
	"N.A.V. History",
}

func fundRow(name, nav string) []string {
	return []string{name, nav, "1.10", "2.20", "3.30", "0.40", "View"}
}

func openFixture() string {
	return reportHTML(fullHeader, []fixtureSection{
		{label: "Stock Funds", rows: [][]string{
			fundRow("ATRAM Philippine Equity Opportunity Fund", "3.4521"),
			fundRow("First Metro Save and Learn Equity Fund", "4.1022"),
		}},
		{label: "Balanced Funds", rows: [][]string{
			fundRow("Philam Strategic Growth Fund", "512.3300"),
		}},
		{label: "Bond Funds", rows: [][]string{
			fundRow("Sun Life Prosperity Bond Fund", "2.9876"),
		}},
		{label: "Money Market Funds", rows: [][]string{
			fundRow("Sun Life Prosperity Money Market Fund", "1.2011"),
		}},
	})
}

func closedFixture() string {
	closed := func(name string) []string {
		return []string{name, "N.S.", "N.S.", "N.S.", "N.S.", "N.S.", "View"}
	}
	return reportHTML(fullHeader, []fixtureSection{
		{label: "Stock Funds", rows: [][]string{closed("Equity One")}},
		{label: "Balanced Funds", rows: [][]string{closed("Balanced One")}},
		{label: "Bond Funds", rows: [][]string{closed("Bond One")}},
		{label: "Money Market Funds", rows: [][]string{closed("Money One")}},
	})
}
