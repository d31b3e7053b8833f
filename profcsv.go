package main

import "profcsv/cmd"

// Overview:
// - Discover the Python scripts to measure
// - Run cProfile against each one and capture its report
// - Parse the report text into one record per script
// - Flatten each record and write one timestamped CSV per script
func main() {
	cmd.Execute()
}
