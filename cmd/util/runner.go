package util

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// RunProfiler runs the external profiler against file in cumulative-time
// ordering and returns the captured report split into lines.
// python -m cProfile -s cumtime <file>
func RunProfiler(ctx context.Context, python string, file string, verbose bool) ([]string, error) {
	if verbose {
		println("Verbose: RunProfiler: " + python + " -m cProfile -s cumtime " + file)
	}

	if _, err := os.Stat(file); err != nil {
		return nil, fmt.Errorf("profiler target %s: %w", file, err)
	}

	output, err := exec.CommandContext(ctx, python, "-m", "cProfile", "-s", "cumtime", file).Output()
	if err != nil {
		return nil, fmt.Errorf("running %s -m cProfile on %s: %w", python, file, err)
	}
	return SplitReportLines(string(output)), nil
}

// SplitReportLines normalizes Windows and Unix line endings and splits the
// captured report into discrete lines.
func SplitReportLines(output string) []string {
	return strings.Split(strings.ReplaceAll(output, "\r\n", "\n"), "\n")
}
