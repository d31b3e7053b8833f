package util

import (
	"fmt"
	"math"
	"time"
)

// TimerLog reports how long a named block of work took, in seconds, minutes
// and hours. Meant for verbose output at the end of a run.
func TimerLog(blockName string, start time.Time) string {
	elapsed := time.Since(start).Seconds()
	return fmt.Sprintf("%s ==> %v seconds %v minutes %v hours",
		blockName, round(elapsed, 7), round(elapsed/60, 7), round(elapsed/60/60, 7))
}

func round(value float64, places int) float64 {
	factor := math.Pow10(places)
	return math.Round(value*factor) / factor
}
