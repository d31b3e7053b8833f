package cprofile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(t *testing.T) *Record {
	t.Helper()

	record := Extract([]string{
		"5 function calls in 0.010 seconds",
		"",
		"2 0.001 0.0005 0.008 0.004 a.py:1(main)",
		"3 0.002 0.0007 0.004 0.0013 a.py:9(helper)",
	}, "a.py", false)
	require.Equal(t, 2, record.FunctionStats.Len())
	return record
}

func TestFlattenRowCountMatchesStats(t *testing.T) {
	record := testRecord(t)
	rows, err := Flatten(record)
	require.NoError(t, err)
	assert.Len(t, rows, len(record.FunctionStats.NCalls))
}

func TestFlattenSummaryOnlyOnFirstRow(t *testing.T) {
	rows, err := Flatten(testRecord(t))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].TotalFunctionCalls)
	assert.Equal(t, 5.0, *rows[0].TotalFunctionCalls)
	require.NotNil(t, rows[0].TotalPrimitiveCalls)
	assert.Equal(t, 0.0, *rows[0].TotalPrimitiveCalls)
	require.NotNil(t, rows[0].TotalFunctionCallSeconds)
	assert.Equal(t, 0.010, *rows[0].TotalFunctionCallSeconds)

	assert.Nil(t, rows[1].TotalFunctionCalls)
	assert.Nil(t, rows[1].TotalPrimitiveCalls)
	assert.Nil(t, rows[1].TotalFunctionCallSeconds)

	assert.Equal(t, "main", rows[0].FuncName)
	assert.Equal(t, "helper", rows[1].FuncName)
}

func TestFlattenWithoutStatsFails(t *testing.T) {
	_, err := Flatten(&Record{FileName: "a.py"})
	assert.ErrorIs(t, err, ErrNoStats)
}

func TestFlatRowValuesMatchColumns(t *testing.T) {
	rows, err := Flatten(testRecord(t))
	require.NoError(t, err)

	first := rows[0].Values()
	require.Len(t, first, len(Columns))
	assert.Equal(t, []string{"5", "0", "0.01", "a.py", "1", "main", "2", "0.001", "0.0005", "0.008", "0.004"}, first)

	second := rows[1].Values()
	// unset summary counters render as empty cells
	assert.Equal(t, "", second[0])
	assert.Equal(t, "", second[1])
	assert.Equal(t, "", second[2])
	assert.Equal(t, "helper", second[5])
}
