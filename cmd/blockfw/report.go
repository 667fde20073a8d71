package main

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/apsplab/blockfw/utils"
)

// printTimings renders the ordered (label, elapsed) pairs collected by the
// run harness, one per line, and aggregate statistics when there is more
// than one trial to aggregate over.
func printTimings(timings []utils.Pair[string, time.Duration]) {
	durations := make([]time.Duration, len(timings))
	for i, tt := range timings {
		durations[i] = tt.Second
		fmt.Printf("%s: %d ns\n", tt.First, tt.Second.Nanoseconds())
	}

	if len(timings) > 1 {
		secs := make([]float64, len(durations))
		for i, d := range durations {
			secs[i] = d.Seconds()
		}
		fmt.Printf(
			"Trials: %d, total: %v, mean: %.6fs, stddev: %.6fs\n",
			len(timings),
			utils.Sum(durations),
			stat.Mean(secs, nil),
			stat.StdDev(secs, nil),
		)
	}
}
