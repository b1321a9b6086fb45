package navps

// ClosedMarker fills a fund's cells when it was not traded on the report date.
const ClosedMarker = "N.S."

// IsOpen decides whether the market was open from the data-row cells. The
// market counts as open iff rowCount >= the number of ClosedMarker cells.
// This is a heuristic carried over from the published report's layout, not a
// holiday calendar.
func IsOpen(dataCells []string, rowCount int) bool {
	markers := 0
	for _, c := range dataCells {
		if c == ClosedMarker {
			markers++
		}
	}
	return rowCount >= markers
}
