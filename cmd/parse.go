package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"profcsv/cmd/util"
	"profcsv/cprofile"
	"profcsv/export"
)

// parse runs the extraction pipeline over a report that was already captured
// to a file, for when the profiler ran somewhere else.
var parseCmd = &cobra.Command{
	Use:     "parse <report-file>",
	Aliases: []string{"p"},
	Short:   "Parse a saved cProfile report and export it to CSV",
	Args:    cobra.ExactArgs(1),
	RunE:    parse,
}

var (
	parseSource  string
	parseOutput  string
	parsePrint   bool
	parsePprof   bool
	parseVerbose bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseSource, "source", "s", "", "name of the profiled script the report belongs to (defaults to the report file)")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", ".", "folder to write the CSV file to")
	parseCmd.Flags().BoolVar(&parsePrint, "print", false, "print the parsed record instead of exporting it")
	parseCmd.Flags().BoolVar(&parsePprof, "pprof", false, "also write the stats as a pprof profile")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "turn on additional print statements")
	RootCmd.AddCommand(parseCmd)
}

func parse(cmd *cobra.Command, args []string) error {
	reportFile := args[0]
	output, err := os.ReadFile(reportFile)
	if err != nil {
		return fmt.Errorf("reading report %s: %w", reportFile, err)
	}

	source := parseSource
	if source == "" {
		source = reportFile
	}

	record := cprofile.Extract(util.SplitReportLines(string(output)), source, parseVerbose)

	if parsePrint {
		cprofile.PrintRecord(os.Stdout, record)
		return nil
	}

	rows, err := cprofile.Flatten(record)
	if err != nil {
		return fmt.Errorf("flattening %s: %w", source, err)
	}

	now := time.Now()
	path, err := export.WriteCSV(rows, parseOutput, record.FileName, now)
	if err != nil {
		return err
	}
	fmt.Println("Wrote " + path)

	if parsePprof {
		profPath, err := export.WriteProfile(record, parseOutput, now)
		if err != nil {
			return err
		}
		fmt.Println("Wrote " + profPath)
	}
	return nil
}
