package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"profcsv/cprofile"
)

// ErrNoRows means there was nothing to export; no file is written.
var ErrNoRows = errors.New("requires a nonempty list of rows")

// CSVFileName builds the output name for one profiled script:
// <basename up to the first dot>-<YYYY-MM-DD-HH-MM-SS>.csv.
func CSVFileName(sourceName string, now time.Time) string {
	base, _, _ := strings.Cut(filepath.Base(sourceName), ".")
	return base + "-" + now.Format("2006-01-02-15-04-05") + ".csv"
}

// WriteCSV writes the flattened rows of one profiled script to a timestamped
// CSV file in dir and returns the written path. The header is the fixed
// column order; quoting and escaping are encoding/csv's job.
func WriteCSV(rows []cprofile.FlatRow, dir string, sourceName string, now time.Time) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoRows
	}

	path := filepath.Join(dir, CSVFileName(sourceName, now))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(cprofile.Columns); err != nil {
		return "", fmt.Errorf("writing header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row.Values()); err != nil {
			return "", fmt.Errorf("writing row to %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flushing %s: %w", path, err)
	}
	return path, nil
}
