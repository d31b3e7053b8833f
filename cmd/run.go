package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/plus3it/gorecurcopy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"profcsv/cmd/util"
	"profcsv/cprofile"
	"profcsv/export"
)

var runCmd = &cobra.Command{
	Use:     "run",
	Aliases: []string{"r"},
	Short:   "Profile Python scripts and export their stats to CSV",
	RunE:    run,
}

var (
	singleFile   string
	workingDir   bool
	recurse      bool
	startDir     string
	verbose      bool
	pythonBin    string
	outputDir    string
	jobs         int
	sandbox      bool
	interactive  bool
	pprofOut     bool
	sarifFile    string
	hotThreshold float64
)

func init() {
	runCmd.Flags().StringVarP(&singleFile, "file", "f", "", "profile a single file")
	runCmd.Flags().BoolVarP(&workingDir, "working-dir", "w", false, "profile every Python file in the working directory")
	runCmd.Flags().BoolVarP(&recurse, "recurse", "r", false, "recursively search for Python files to profile")
	runCmd.Flags().StringVarP(&startDir, "dir", "d", "", "change to the specified directory as starting point")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "turn on additional print statements")
	runCmd.Flags().StringVar(&pythonBin, "python", "", "python interpreter to run the profiler with")
	runCmd.Flags().StringVarP(&outputDir, "output", "o", "", "folder to write the CSV files to")
	runCmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "number of files to profile in parallel")
	runCmd.Flags().BoolVar(&sandbox, "sandbox", false, "copy the start directory into a temp folder and profile the copies")
	runCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick the file to profile from a prompt")
	runCmd.Flags().BoolVar(&pprofOut, "pprof", false, "also write each file's stats as a pprof profile")
	runCmd.Flags().StringVar(&sarifFile, "sarif", "", "write a SARIF hotspot report to the given file")
	runCmd.Flags().Float64Var(&hotThreshold, "hot-threshold", 0.25, "share of a file's total time that makes a function a hotspot")
	RootCmd.AddCommand(runCmd)
}

func run(cmd *cobra.Command, args []string) error {
	start := time.Now()

	// the same sanity rules the flags have always had: exactly one way of
	// picking the input set
	if recurse && workingDir {
		return errors.New("--recurse and --working-dir cannot be used together")
	}
	if singleFile == "" && !recurse && !workingDir {
		return errors.New("specify --file, --working-dir or --recurse")
	}

	applyConfigDefaults(cmd)

	// the output paths have to survive the chdirs below
	var err error
	if outputDir, err = filepath.Abs(outputDir); err != nil {
		return err
	}
	if sarifFile != "" {
		if sarifFile, err = filepath.Abs(sarifFile); err != nil {
			return err
		}
	}

	if startDir != "" {
		if err := os.Chdir(startDir); err != nil {
			return fmt.Errorf("changing to %s: %w", startDir, err)
		}
	} else if verbose {
		println("Verbose: run: directory blank, using working directory")
	}

	if sandbox {
		if err := enterSandbox(); err != nil {
			return err
		}
	}

	files, err := pickFiles()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no Python files found")
	}
	if verbose {
		fmt.Println("Verbose: files:", files)
	}

	records, failed := profileAll(files)

	if verbose {
		for _, record := range records {
			cprofile.PrintRecord(os.Stdout, record)
		}
		println("Verbose: " + util.TimerLog("run", start))
	}

	if sarifFile != "" && len(records) > 0 {
		if err := export.WriteHotspots(records, hotThreshold, sarifFile); err != nil {
			return err
		}
		fmt.Println("Wrote " + sarifFile)
	}

	if failed == len(files) {
		return fmt.Errorf("all %d files failed", failed)
	}
	if failed > 0 {
		fmt.Printf("%d of %d files failed\n", failed, len(files))
	}
	return nil
}

// profileAll pushes every file through the pipeline, up to jobs at a time.
// One file failing is reported and does not stop the batch. The returned
// records are the per-run summary, keyed by input order.
func profileAll(files []string) (records []*cprofile.Record, failed int) {
	var mu sync.Mutex
	byFile := make(map[string]*cprofile.Record, len(files))

	group := new(errgroup.Group)
	group.SetLimit(jobs)
	for _, file := range files {
		file := file
		group.Go(func() error {
			fmt.Println("Processing file: " + file)
			record, err := profileOne(context.Background(), file)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				fmt.Println("Failed " + file + ": " + err.Error())
				failed++
				return nil
			}
			byFile[file] = record
			return nil
		})
	}
	_ = group.Wait()

	// preserve input order for the summary
	for _, file := range files {
		if record, ok := byFile[file]; ok {
			records = append(records, record)
		}
	}
	return records, failed
}

// profileOne is the whole per-file pipeline: invoke the profiler, extract the
// record, flatten it and write the exports.
func profileOne(ctx context.Context, file string) (*cprofile.Record, error) {
	lines, err := util.RunProfiler(ctx, pythonBin, file, verbose)
	if err != nil {
		return nil, err
	}

	record := cprofile.Extract(lines, file, verbose)
	rows, err := cprofile.Flatten(record)
	if err != nil {
		return nil, fmt.Errorf("flattening %s: %w", file, err)
	}

	now := time.Now()
	path, err := export.WriteCSV(rows, outputDir, record.FileName, now)
	if err != nil {
		return nil, err
	}
	fmt.Println("Wrote " + path)

	if pprofOut {
		profPath, err := export.WriteProfile(record, outputDir, now)
		if err != nil {
			return nil, err
		}
		fmt.Println("Wrote " + profPath)
	}
	return record, nil
}

// pickFiles discovers the input set and, under --interactive, lets the user
// narrow it down to one script.
func pickFiles() ([]string, error) {
	var files []string
	if singleFile != "" {
		files = []string{singleFile}
	} else {
		var err error
		if files, err = util.FindPythonFiles(recurse); err != nil {
			return nil, fmt.Errorf("finding Python files: %w", err)
		}
	}

	if !interactive || len(files) < 2 {
		return files, nil
	}

	prompt := promptui.Select{
		Label: "Which file do you want to profile?",
		Items: append([]string{"All"}, files...),
	}
	_, selected, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("getting file selection: %w", err)
	}
	if selected != "All" {
		files = []string{selected}
	}
	return files, nil
}

// enterSandbox copies the working directory into a fresh temp folder named by
// a run id and chdirs into it, so profiled scripts that write artifacts don't
// dirty the source tree.
func enterSandbox() error {
	id := uuid.New()
	tmpPath := filepath.Join(os.TempDir(), "profcsv", id.String())
	if err := util.CleanOrCreateTempFolder(tmpPath); err != nil {
		return fmt.Errorf("creating sandbox folder: %w", err)
	}
	if err := gorecurcopy.CopyDirectory(".", tmpPath); err != nil {
		return fmt.Errorf("copying into sandbox: %w", err)
	}
	if err := os.Chdir(tmpPath); err != nil {
		return err
	}
	if verbose {
		println("Verbose: profiling inside sandbox " + tmpPath)
	}
	return nil
}

// applyConfigDefaults fills in flags the user did not set from the config
// file / environment, then hard defaults.
func applyConfigDefaults(cmd *cobra.Command) {
	if pythonBin == "" {
		pythonBin = viper.GetString("python")
	}
	if pythonBin == "" {
		pythonBin = "python"
	}
	if outputDir == "" {
		outputDir = viper.GetString("output")
	}
	if outputDir == "" {
		outputDir = "."
	}
	if !cmd.Flags().Changed("jobs") {
		if configured := viper.GetInt("jobs"); configured > 0 {
			jobs = configured
		}
	}
	if jobs < 1 {
		jobs = 1
	}
}
