package cprofile

import (
	"fmt"
	"io"
)

// PrintRecord dumps a Record for human inspection. Decoration only, it
// carries no parsing semantics.
func PrintRecord(w io.Writer, record *Record) {
	fmt.Fprintln(w, record.FileName)
	fmt.Fprintf(w, "\t%-30s%s\n", "total_function_calls", optionalString(record.TotalFunctionCalls))
	fmt.Fprintf(w, "\t%-30s%s\n", "total_primitive_calls", optionalString(record.TotalPrimitiveCalls))
	fmt.Fprintf(w, "\t%-30s%s\n", "total_function_call_seconds", optionalString(record.TotalFunctionCallSeconds))

	stats := record.FunctionStats
	if stats.Len() == 0 {
		fmt.Fprintln(w, "\tno function stats")
		return
	}
	fmt.Fprintf(w, "\t%-40s %6s %8s %10s %16s %10s %16s\n",
		"function", "line", "ncalls", "tottime", "tottime_percall", "cumtime", "cumtime_percall")
	for i := 0; i < stats.Len(); i++ {
		fmt.Fprintf(w, "\t%-40s %6d %8d %10g %16g %10g %16g\n",
			stats.FuncFile[i]+":"+stats.FuncName[i],
			stats.FuncFileLineNo[i],
			stats.NCalls[i],
			stats.TotTime[i],
			stats.TotTimePerCall[i],
			stats.CumTime[i],
			stats.CumTimePerCall[i])
	}
}

func optionalString(v *float64) string {
	if v == nil {
		return "<none>"
	}
	return fmt.Sprintf("%g", *v)
}
