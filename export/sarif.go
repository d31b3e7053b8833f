package export

import (
	"fmt"
	"os"

	"github.com/owenrumney/go-sarif/sarif"

	"profcsv/cprofile"
)

const hotspotRuleID = "PROFCSV_HOTSPOT_001"

// WriteHotspots reports every function whose cumulative time is at least
// threshold (a 0..1 share) of its file's total seconds as a SARIF result at
// func_file:line. Records without a header total are skipped, there is
// nothing to compare against.
func WriteHotspots(records []*cprofile.Record, threshold float64, path string) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("creating SARIF report: %w", err)
	}

	run := sarif.NewRun("profcsv", "https://github.com/profcsv/profcsv")
	for _, record := range records {
		addHotspots(run, record, threshold)
	}
	report.AddRun(run)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := report.Write(file); err != nil {
		return fmt.Errorf("writing SARIF report to %s: %w", path, err)
	}
	return nil
}

func addHotspots(run *sarif.Run, record *cprofile.Record, threshold float64) {
	stats := record.FunctionStats
	if stats.Len() == 0 || record.TotalFunctionCallSeconds == nil {
		return
	}
	total := *record.TotalFunctionCallSeconds
	if total <= 0 {
		return
	}

	for i := 0; i < stats.Len(); i++ {
		share := stats.CumTime[i] / total
		if share < threshold {
			continue
		}
		message := fmt.Sprintf("%s accounts for %.0f%% of %s's total time (%gs of %gs over %d calls)",
			stats.FuncName[i], share*100, record.FileName, stats.CumTime[i], total, stats.NCalls[i])
		run.AddResult(hotspotRuleID).
			WithLocation(sarif.NewLocationWithPhysicalLocation(sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().
					WithUri(stats.FuncFile[i])).
				WithRegion(sarif.NewRegion().
					WithStartLine(stats.FuncFileLineNo[i])))).
			WithMessage(sarif.NewMessage().WithText(message))
	}
}
