package cprofile

// Record is the structured result of parsing one profiler report.
// The three summary counters come from the header line and stay nil until a
// matching header is seen. FunctionStats stays nil when no stat row matched;
// that means "no function rows", not an error.
type Record struct {
	FileName                 string
	TotalFunctionCalls       *float64
	TotalPrimitiveCalls      *float64
	TotalFunctionCallSeconds *float64
	FunctionStats            *FunctionStats

	// RejectedLines counts candidate lines the matcher turned down, so a
	// formatting drift in the profiler output shows up instead of vanishing.
	RejectedLines int
}

// FunctionStats holds the per-function columns as parallel slices. Index i
// across all eight slices describes the same profiled function.
type FunctionStats struct {
	FuncFile       []string
	FuncFileLineNo []int
	FuncName       []string
	NCalls         []int
	TotTime        []float64
	TotTimePerCall []float64
	CumTime        []float64
	CumTimePerCall []float64
}

// Len is the number of profiled functions. Safe on a nil table.
func (fs *FunctionStats) Len() int {
	if fs == nil {
		return 0
	}
	return len(fs.NCalls)
}

func (fs *FunctionStats) add(file string, lineNo int, name string, stat StatLine) {
	fs.FuncFile = append(fs.FuncFile, file)
	fs.FuncFileLineNo = append(fs.FuncFileLineNo, lineNo)
	fs.FuncName = append(fs.FuncName, name)
	fs.NCalls = append(fs.NCalls, stat.NCalls)
	fs.TotTime = append(fs.TotTime, stat.TotTime)
	fs.TotTimePerCall = append(fs.TotTimePerCall, stat.TotTimePerCall)
	fs.CumTime = append(fs.CumTime, stat.CumTime)
	fs.CumTimePerCall = append(fs.CumTimePerCall, stat.CumTimePerCall)
}
