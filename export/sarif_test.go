package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profcsv/cprofile"
)

func TestWriteHotspots(t *testing.T) {
	record := profiledRecord(t)
	path := filepath.Join(t.TempDir(), "hotspots.sarif")

	// main's 0.008s of 0.010s clears the threshold, helper's 0.004s does not
	require.NoError(t, WriteHotspots([]*cprofile.Record{record}, 0.5, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var report struct {
		Runs []struct {
			Results []struct {
				RuleID  string `json:"ruleId"`
				Message struct {
					Text string `json:"text"`
				} `json:"message"`
				Locations []struct {
					PhysicalLocation struct {
						ArtifactLocation struct {
							URI string `json:"uri"`
						} `json:"artifactLocation"`
						Region struct {
							StartLine int `json:"startLine"`
						} `json:"region"`
					} `json:"physicalLocation"`
				} `json:"locations"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(raw, &report))
	require.Len(t, report.Runs, 1)
	require.Len(t, report.Runs[0].Results, 1)

	result := report.Runs[0].Results[0]
	assert.Equal(t, "PROFCSV_HOTSPOT_001", result.RuleID)
	assert.Contains(t, result.Message.Text, "main")
	require.Len(t, result.Locations, 1)
	assert.Equal(t, "a.py", result.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 1, result.Locations[0].PhysicalLocation.Region.StartLine)
}

func TestWriteHotspotsSkipsRecordsWithoutTotals(t *testing.T) {
	record := profiledRecord(t)
	record.TotalFunctionCallSeconds = nil
	path := filepath.Join(t.TempDir(), "hotspots.sarif")

	require.NoError(t, WriteHotspots([]*cprofile.Record{record}, 0.0, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "PROFCSV_HOTSPOT_001")
}
