package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/apsplab/blockfw/dense"
	"github.com/apsplab/blockfw/engine"
	"github.com/apsplab/blockfw/utils"
)

// Launch point. Parses command line arguments, generates a random graph, and
// runs the selected all-pairs shortest-path engine on it.
func main() {
	opt := flagsToOptions()

	eng, err := chooseEngine(&opt)
	if err != nil {
		log.Fatal().Msg("Invalid configuration: " + err.Error())
	}

	seed := opt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	log.Info().Msg("Generating graph data...")
	g, err := dense.Generate(opt.Vertices, opt.Edges, rng)
	if err != nil {
		log.Fatal().Msg("Failed to generate graph: " + err.Error())
	}
	log.Info().Msg("Done populating graph with data.")

	if opt.Print {
		fmt.Print("Graph before Floyd-Warshall:\n" + g.String())
	}

	log.Info().Msg("Beginning Floyd-Warshall " + eng.Name() + " execution...")
	result, timings := runTrials(eng, g, opt.Trials)
	log.Info().Msg("Execution done.")

	if opt.Print {
		fmt.Print("Graph after Floyd-Warshall:\n" + result.String())
	}
	fmt.Printf(
		"Number of vertices: %d\nNumber of edges: %d\nGraph memory footprint: %d\nNumber of threads: %d\nBlock length: %d\n",
		opt.Vertices,
		opt.Edges,
		g.FootprintBytes(),
		opt.Threads,
		opt.BlockLen,
	)
	printTimings(timings)
	utils.MemoryStats()
	log.Info().Msg("Exiting program.")
}

// runTrials times Trials runs of eng, each on a fresh copy of base. Returns
// the relaxed matrix of the final trial and the ordered per-trial timings.
// The engine-only total excludes the copies: the overall watch is paused
// while each working copy is made.
func runTrials(eng engine.Engine, base *dense.Graph, trials int) (*dense.Graph, []utils.Pair[string, time.Duration]) {
	timings := make([]utils.Pair[string, time.Duration], 0, trials)

	var work *dense.Graph
	var watch, total utils.Watch
	total.Start()
	for trial := 1; trial <= trials; trial++ {
		total.Pause()
		work = base.Clone()
		total.UnPause()

		watch.Start()
		eng.Run(work)
		elapsed := watch.Elapsed()

		label := eng.Name() + " time"
		if trials > 1 {
			label += " (trial " + utils.V(trial) + ")"
		}
		timings = append(timings, utils.Pair[string, time.Duration]{First: label, Second: elapsed})
	}
	log.Debug().Msg("Engine-only total: " + utils.V(total.Elapsed()))
	return work, timings
}
