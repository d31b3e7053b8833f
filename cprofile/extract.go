package cprofile

import (
	"errors"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	// A header summary line contains something like "977 function calls".
	headerPattern = regexp.MustCompile(`\d+ \w+ calls`)
	// Any line that loosely resembles digits and spaces is offered to the
	// stat-line matcher, which does the real filtering.
	statCandidate = regexp.MustCompile(`[\d ]+`)
)

var errBadLocation = errors.New("location is not path:lineno(function)")

// Extract scans the report lines of one profiled file and assembles the
// Record for it. It is a pure function of its input: running it twice over
// the same lines yields the same Record.
//
// The lines are walked twice. The first pass fills the parallel stat slices
// and the header counters; the second pass only decides whether the built
// table gets attached to the Record, so a report with no matching stat rows
// ends up with a nil FunctionStats.
func Extract(lines []string, path string, verbose bool) *Record {
	if verbose {
		println("Verbose: Extract: " + path + " with " + strconv.Itoa(len(lines)) + " lines")
	}

	record := &Record{FileName: filepath.Base(path)}
	stats := &FunctionStats{}

	for _, line := range lines {
		if headerPattern.MatchString(line) {
			extractHeader(record, strings.Fields(line), verbose)
		}
		if !statCandidate.MatchString(line) {
			continue
		}
		stat, err := MatchStatLine(strings.Fields(line), verbose)
		if err != nil {
			record.RejectedLines++
			if verbose {
				println("Verbose: Extract: dropping line: " + err.Error())
			}
			continue
		}
		funcFile, lineNo, funcName, err := splitLocation(stat.Location)
		if err != nil {
			record.RejectedLines++
			if verbose {
				println("Verbose: Extract: dropping line: " + err.Error())
			}
			continue
		}
		stats.add(funcFile, lineNo, funcName, stat)
	}

	for _, line := range lines {
		if !statCandidate.MatchString(line) || stats.Len() == 0 {
			continue
		}
		if _, err := MatchStatLine(strings.Fields(line), false); err == nil {
			record.FunctionStats = stats
		}
	}

	if verbose && record.RejectedLines > 0 {
		println("Verbose: Extract: " + path + " dropped " +
			strconv.Itoa(record.RejectedLines) + " candidate lines")
	}

	return record
}

// extractHeader pulls the summary counters out of a header line. The primary
// line carries the word "function", e.g. "3 function calls in 0.001 seconds";
// a recursive run adds a qualifier, "977 function calls (970 primitive calls)
// in 0.002 seconds", whose paren-stripped fourth token is the primitive count.
func extractHeader(record *Record, tokens []string, verbose bool) {
	if containsToken(tokens, "function") && len(tokens) >= 2 {
		calls, errCalls := strconv.ParseFloat(tokens[0], 64)
		seconds, errSeconds := strconv.ParseFloat(tokens[len(tokens)-2], 64)
		if errCalls == nil && errSeconds == nil {
			primitive := 0.0
			record.TotalFunctionCalls = &calls
			record.TotalPrimitiveCalls = &primitive
			record.TotalFunctionCallSeconds = &seconds
		} else if verbose {
			println("Verbose: extractHeader: malformed summary line, skipping")
		}
	}
	if containsToken(tokens, "primitive") && len(tokens) > 3 {
		if primitive, err := strconv.ParseFloat(strings.TrimPrefix(tokens[3], "("), 64); err == nil {
			record.TotalPrimitiveCalls = &primitive
		} else if verbose {
			println("Verbose: extractHeader: malformed primitive-calls qualifier, skipping")
		}
	}
}

// splitLocation decomposes "path:lineno(function)" into its three parts.
func splitLocation(location string) (funcFile string, lineNo int, funcName string, err error) {
	funcFile, rest, found := strings.Cut(location, ":")
	if !found {
		return "", 0, "", errBadLocation
	}
	lineStr, name, found := strings.Cut(rest, "(")
	if !found {
		return "", 0, "", errBadLocation
	}
	lineNo, convErr := strconv.Atoi(lineStr)
	if convErr != nil {
		return "", 0, "", errBadLocation
	}
	return funcFile, lineNo, strings.TrimSuffix(name, ")"), nil
}

func containsToken(tokens []string, want string) bool {
	for _, token := range tokens {
		if token == want {
			return true
		}
	}
	return false
}
