package export

import (
	"os"
	"testing"
	"time"

	"github.com/google/pprof/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profcsv/cprofile"
)

func profiledRecord(t *testing.T) *cprofile.Record {
	t.Helper()

	record := cprofile.Extract([]string{
		"5 function calls in 0.010 seconds",
		"",
		"2 0.001 0.0005 0.008 0.004 a.py:1(main)",
		"3 0.002 0.0007 0.004 0.0013 a.py:9(helper)",
	}, "a.py", false)
	require.Equal(t, 2, record.FunctionStats.Len())
	return record
}

func TestBuildProfile(t *testing.T) {
	prof, err := BuildProfile(profiledRecord(t))
	require.NoError(t, err)
	require.NoError(t, prof.CheckValid())

	require.Len(t, prof.Sample, 2)
	require.Len(t, prof.Function, 2)
	assert.Equal(t, "main", prof.Function[0].Name)
	assert.Equal(t, "a.py", prof.Function[0].Filename)
	assert.Equal(t, int64(1), prof.Function[0].StartLine)

	// calls count, then self and cumulative time in nanoseconds
	assert.Equal(t, []int64{2, 1_000_000, 8_000_000}, prof.Sample[0].Value)
	assert.Equal(t, int64(10_000_000), prof.DurationNanos)
}

func TestBuildProfileWithoutStats(t *testing.T) {
	_, err := BuildProfile(&cprofile.Record{FileName: "a.py"})
	assert.ErrorIs(t, err, cprofile.ErrNoStats)
}

func TestWriteProfileRoundTrip(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteProfile(profiledRecord(t), dir, time.Date(2023, 4, 5, 6, 7, 8, 0, time.UTC))
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	parsed, err := profile.Parse(file)
	require.NoError(t, err)
	assert.Len(t, parsed.Sample, 2)
	assert.Equal(t, "cumtime", parsed.SampleType[2].Type)
}
