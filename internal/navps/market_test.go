package navps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOpen(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		rows  int
		want  bool
	}{
		{"no markers", []string{"Fund A", "1.23"}, 1, true},
		{"fewer markers than rows", []string{"Fund A", "N.S.", "Fund B", "2.34"}, 2, true},
		{"markers equal rows", []string{"Fund A", "N.S.", "Fund B", "N.S."}, 2, true},
		{"markers exceed rows", []string{"Fund A", "N.S.", "N.S.", "Fund B", "N.S.", "N.S."}, 2, false},
		{"no rows no markers", nil, 0, true},
		{"marker match is exact", []string{"n.s.", " N.S.", "N.S", "N.S.*"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOpen(tt.cells, tt.rows))
		})
	}
}

func TestIsOpen_ClosedFixture(t *testing.T) {
	table, err := ParseTable(strings.NewReader(closedFixture()))
	require.NoError(t, err)
	assert.False(t, IsOpen(table.DataCells, len(table.Rows)))
}

func TestIsOpen_IgnoresMarkersOutsideDataRows(t *testing.T) {
	doc := `<table>
<tr><td>N.S.</td><td>N.S.</td><td>N.S.</td></tr>
<tr class="icap_DataText021"><td>Fund A</td><td>1.00</td></tr>
</table>`
	table, err := ParseTable(strings.NewReader(doc))
	require.NoError(t, err)
	assert.True(t, IsOpen(table.DataCells, len(table.Rows)))
}
