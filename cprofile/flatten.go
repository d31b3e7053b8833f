package cprofile

import (
	"errors"
	"strconv"
)

// ErrNoStats means the record never saw a matching stat row, so there is
// nothing to flatten. This is fatal for the file's export.
var ErrNoStats = errors.New("record has no function stats")

// Columns is the CSV header, in the order the row values are emitted.
var Columns = []string{
	"total_function_calls",
	"total_primitive_calls",
	"total_function_call_seconds",
	"func_file",
	"func_file_line_no",
	"func_name",
	"ncalls",
	"tottime",
	"tottime_percall",
	"cumtime",
	"cumtime_percall",
}

// FlatRow is one CSV-ready record: a single function's stats plus the file's
// summary counters. The counters are only set on the first row of a file, a
// file's totals are reported once rather than duplicated per function.
type FlatRow struct {
	TotalFunctionCalls       *float64
	TotalPrimitiveCalls      *float64
	TotalFunctionCallSeconds *float64
	FuncFile                 string
	FuncFileLineNo           int
	FuncName                 string
	NCalls                   int
	TotTime                  float64
	TotTimePerCall           float64
	CumTime                  float64
	CumTimePerCall           float64
}

// Flatten expands a Record into one FlatRow per profiled function.
func Flatten(record *Record) ([]FlatRow, error) {
	stats := record.FunctionStats
	if stats == nil {
		return nil, ErrNoStats
	}

	rows := make([]FlatRow, 0, stats.Len())
	for i := 0; i < stats.Len(); i++ {
		row := FlatRow{
			FuncFile:       stats.FuncFile[i],
			FuncFileLineNo: stats.FuncFileLineNo[i],
			FuncName:       stats.FuncName[i],
			NCalls:         stats.NCalls[i],
			TotTime:        stats.TotTime[i],
			TotTimePerCall: stats.TotTimePerCall[i],
			CumTime:        stats.CumTime[i],
			CumTimePerCall: stats.CumTimePerCall[i],
		}
		if i == 0 {
			row.TotalFunctionCalls = record.TotalFunctionCalls
			row.TotalPrimitiveCalls = record.TotalPrimitiveCalls
			row.TotalFunctionCallSeconds = record.TotalFunctionCallSeconds
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Values renders the row in Columns order. Unset summary counters become
// empty cells.
func (r FlatRow) Values() []string {
	return []string{
		formatOptional(r.TotalFunctionCalls),
		formatOptional(r.TotalPrimitiveCalls),
		formatOptional(r.TotalFunctionCallSeconds),
		r.FuncFile,
		strconv.Itoa(r.FuncFileLineNo),
		r.FuncName,
		strconv.Itoa(r.NCalls),
		formatFloat(r.TotTime),
		formatFloat(r.TotTimePerCall),
		formatFloat(r.CumTime),
		formatFloat(r.CumTimePerCall),
	}
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
