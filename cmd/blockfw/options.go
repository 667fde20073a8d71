package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"

	"github.com/apsplab/blockfw/engine"
	"github.com/apsplab/blockfw/utils"
)

type options struct {
	Vertices  int
	Edges     int
	Threads   int
	BlockLen  int
	Trials    int
	Seed      int64
	Seq       bool
	Naive     bool
	Blocked   bool
	Unguarded bool
	Print     bool
}

// Declare your own flags before you call this function.
func flagsToOptions() (opt options) {
	vPtr := flag.Int("v", 100, "Number of vertices in the generated graph.")
	ePtr := flag.Int("e", 200, "Number of directed unit-weight edges to generate.")
	tPtr := flag.Int("t", 1, "Thread count for the parallel engines.")
	lPtr := flag.Int("l", 1, "Block length for the block-parallel engine. Must divide the vertex count.")
	seqPtr := flag.Bool("s", false, "Run the sequential engine.")
	naivePtr := flag.Bool("n", false, "Run the naive-parallel engine (no cache optimizations).")
	blockPtr := flag.Bool("b", false, "Run the block-parallel engine (cache optimizations).")
	unguardedPtr := flag.Bool("unguarded", false, "Block-parallel only: skip sentinel guards in the block kernel. Only sound when the graph is complete.")
	printPtr := flag.Bool("p", false, "Print the matrix before and after execution.")
	trialsPtr := flag.Int("trials", 1, "Repeat the run this many times (on fresh copies) and report per-trial and aggregate timings.")
	seedPtr := flag.Int64("seed", 0, "RNG seed for graph generation. 0 seeds from the clock.")
	debugPtr := flag.Int("debug", 0, "Adds extra debug output. Level 0 for info, 1 for debug, 2 for trace.")
	ncPtr := flag.Bool("nc", false, "Removes the colouring from the log output.")

	flag.Parse()

	utils.SetLoggerConsole(*ncPtr)
	utils.SetLevel(*debugPtr)

	return options{
		Vertices:  *vPtr,
		Edges:     *ePtr,
		Threads:   *tPtr,
		BlockLen:  *lPtr,
		Trials:    *trialsPtr,
		Seed:      *seedPtr,
		Seq:       *seqPtr,
		Naive:     *naivePtr,
		Blocked:   *blockPtr,
		Unguarded: *unguardedPtr,
		Print:     *printPtr,
	}
}

// chooseEngine validates opt and resolves the single selected engine.
// Thread counts above the machine's parallelism are clamped, not rejected.
func chooseEngine(opt *options) (engine.Engine, error) {
	if opt.Vertices < 1 {
		return nil, fmt.Errorf("number of vertices %d must be at least 1", opt.Vertices)
	}
	if opt.Edges < 0 {
		return nil, fmt.Errorf("number of edges %d cannot be negative", opt.Edges)
	}
	if opt.Trials < 1 {
		return nil, fmt.Errorf("number of trials %d must be at least 1", opt.Trials)
	}
	if opt.Threads < 1 {
		return nil, fmt.Errorf("thread count %d must be at least 1", opt.Threads)
	}
	if maxThreads := runtime.NumCPU(); opt.Threads > maxThreads {
		log.Info().Msg("Requested threads " + utils.V(opt.Threads) + " exceeds available parallelism " + utils.V(maxThreads) + ", clamping.")
		opt.Threads = maxThreads
	}

	selected := 0
	for _, on := range []bool{opt.Seq, opt.Naive, opt.Blocked} {
		if on {
			selected++
		}
	}
	if selected != 1 {
		return nil, fmt.Errorf("specify exactly one mode of execution: -s sequential, -n naive-parallel, -b block-parallel")
	}

	switch {
	case opt.Seq:
		return engine.Serial{}, nil
	case opt.Naive:
		return engine.Naive{Threads: opt.Threads}, nil
	default:
		eng := engine.Blocked{Threads: opt.Threads, BlockSize: opt.BlockLen, Unguarded: opt.Unguarded}
		if err := eng.Validate(opt.Vertices); err != nil {
			return nil, err
		}
		return eng, nil
	}
}
