package navps

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/navps-cli/internal/model"
)

type classifierFunc func(string) string

func (f classifierFunc) Classify(name string) string { return f(name) }

func stockClassifier() Classifier {
	return classifierFunc(func(name string) string {
		if name == "Fund A" {
			return "Stock Funds"
		}
		return model.TypeUnknown
	})
}

var testDate = time.Date(2017, time.March, 14, 0, 0, 0, 0, time.UTC)

func TestBuildRecord(t *testing.T) {
	rec, err := BuildRecord(testDate, []string{"Fund Name", "NAV Per Share"}, []string{"Fund A", "1.2345"}, stockClassifier())
	require.NoError(t, err)

	assert.Equal(t, "Fund A", rec.FundName())
	assert.Equal(t, "Stock Funds", rec.Type)
	assert.Equal(t, testDate, rec.Date)
	assert.Equal(t, map[string]string{"Fund Name": "Fund A", "NAV Per Share": "1.2345"}, rec.Fields)

	date, ok := rec.Get(model.ColDate)
	assert.True(t, ok)
	assert.Equal(t, "2017-03-14", date)
}

func TestBuildRecord_LengthMismatch(t *testing.T) {
	header := []string{"Fund Name", "NAV Per Share"}

	_, err := BuildRecord(testDate, header, []string{"Fund A"}, stockClassifier())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindIntegrity))

	_, err = BuildRecord(testDate, header, []string{"Fund A", "1.0", "extra"}, stockClassifier())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindIntegrity))
	assert.Contains(t, err.Error(), "2017-03-14")
}

func TestBuildRecord_NoFundNameColumn(t *testing.T) {
	rec, err := BuildRecord(testDate, []string{"Name"}, []string{"Fund A"}, stockClassifier())
	require.NoError(t, err)
	assert.Equal(t, model.TypeUnknown, rec.Type)
}

func TestBuildRecords_PreservesOrder(t *testing.T) {
	header := []string{"Fund Name", "NAV Per Share"}
	rows := [][]string{{"Fund B", "2.3456"}, {"Fund A", "1.2345"}}

	recs, err := BuildRecords(testDate, header, rows, stockClassifier())
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Fund B", recs[0].FundName())
	assert.Equal(t, model.TypeUnknown, recs[0].Type)
	assert.Equal(t, "Fund A", recs[1].FundName())
	assert.Equal(t, "Stock Funds", recs[1].Type)
}

func TestBuildRecords_ReportsFailingRow(t *testing.T) {
	header := []string{"Fund Name", "NAV Per Share"}
	rows := [][]string{{"Fund A", "1.2345"}, {"Fund B"}}

	recs, err := BuildRecords(testDate, header, rows, stockClassifier())
	require.Error(t, err)
	assert.Nil(t, recs)
	assert.True(t, IsKind(err, KindIntegrity))
	assert.Contains(t, err.Error(), "row 2")
}

func TestBuildRecords_Empty(t *testing.T) {
	recs, err := BuildRecords(testDate, []string{"Fund Name"}, nil, stockClassifier())
	require.NoError(t, err)
	assert.Empty(t, recs)
}
