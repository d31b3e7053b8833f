package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/pprof/profile"

	"profcsv/cprofile"
)

// BuildProfile converts a parsed record into a pprof profile so the usual
// pprof tooling can browse it. Every function gets one sample with its call
// count and its self/cumulative time; times are scaled to nanoseconds.
func BuildProfile(record *cprofile.Record) (*profile.Profile, error) {
	stats := record.FunctionStats
	if stats.Len() == 0 {
		return nil, cprofile.ErrNoStats
	}

	prof := &profile.Profile{
		SampleType: []*profile.ValueType{
			{Type: "calls", Unit: "count"},
			{Type: "tottime", Unit: "nanoseconds"},
			{Type: "cumtime", Unit: "nanoseconds"},
		},
		DefaultSampleType: "cumtime",
	}
	if record.TotalFunctionCallSeconds != nil {
		prof.DurationNanos = int64(*record.TotalFunctionCallSeconds * float64(time.Second))
	}

	for i := 0; i < stats.Len(); i++ {
		function := &profile.Function{
			ID:         uint64(i + 1),
			Name:       stats.FuncName[i],
			SystemName: stats.FuncName[i],
			Filename:   stats.FuncFile[i],
			StartLine:  int64(stats.FuncFileLineNo[i]),
		}
		location := &profile.Location{
			ID: uint64(i + 1),
			Line: []profile.Line{{
				Function: function,
				Line:     int64(stats.FuncFileLineNo[i]),
			}},
		}
		sample := &profile.Sample{
			Location: []*profile.Location{location},
			Value: []int64{
				int64(stats.NCalls[i]),
				int64(stats.TotTime[i] * float64(time.Second)),
				int64(stats.CumTime[i] * float64(time.Second)),
			},
		}
		prof.Function = append(prof.Function, function)
		prof.Location = append(prof.Location, location)
		prof.Sample = append(prof.Sample, sample)
	}

	if err := prof.CheckValid(); err != nil {
		return nil, fmt.Errorf("building profile for %s: %w", record.FileName, err)
	}
	return prof, nil
}

// WriteProfile writes the record as a gzipped pprof file next to the CSVs,
// named like the CSV but with a .pprof extension.
func WriteProfile(record *cprofile.Record, dir string, now time.Time) (string, error) {
	prof, err := BuildProfile(record)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, strings.TrimSuffix(CSVFileName(record.FileName, now), ".csv")+".pprof")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := prof.Write(file); err != nil {
		return "", fmt.Errorf("writing profile to %s: %w", path, err)
	}
	return path, nil
}
