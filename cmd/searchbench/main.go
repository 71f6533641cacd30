package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"chess-bot/engine"
	"chess-bot/rules"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type run struct {
	idx     int
	result  engine.Result
	elapsed time.Duration
}

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 4, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	parallelFlag := flag.Int("parallel", 1, "searches to run at once, each with its own table")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	backendFlag := flag.String("backend", rules.DefaultBackend, "rules backend")
	modeFlag := flag.String("tablemode", engine.DepthAware.String(), "transposition table mode")
	hashFlag := flag.Int("hash", 64, "transposition table size in MB per search")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	verbose := flag.Bool("v", false, "log every search")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	if !*verbose {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	if *depthFlag <= 0 || *depthFlag > engine.MaxDepth {
		log.Fatal().Int("depth", *depthFlag).Msgf("depth must be in [1, %d]", engine.MaxDepth)
	}
	mode, err := engine.ParseTableMode(*modeFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -tablemode")
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := startFEN
	if *fenFlag != "" {
		fen = *fenFlag
	}
	opts := engine.DefaultOptions()
	opts.TableMode = mode
	opts.HashMB = *hashFlag

	fmt.Printf("searchbench: backend=%s fen=%q depth=%d repeat=%d parallel=%d table=%v\n",
		*backendFlag, fen, *depthFlag, *repeatFlag, *parallelFlag, mode)

	startAll := time.Now()
	runs, err := searchAll(*backendFlag, fen, opts, *depthFlag, *repeatFlag, *parallelFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("search failed")
	}
	totalElapsed := time.Since(startAll)

	for _, r := range runs {
		fmt.Printf("iteration %d: bestmove %v score %v depth %d nodes %d cutoffs %d time=%v\n",
			r.idx+1, r.result.Move, r.result.Score, r.result.Depth,
			r.result.Stats.Nodes, r.result.Stats.BetaCutoffs, r.elapsed)
	}
	nodes := lo.SumBy(runs, func(r run) uint64 { return r.result.Stats.Nodes })
	fmt.Printf("total time: %v  nodes: %d  nps: %.0f\n", totalElapsed, nodes, float64(nodes)/totalElapsed.Seconds())

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create memory profile")
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not write memory profile")
		}
	}
}

// searchAll runs repeat independent searches, at most parallel at a time. Each
// run gets its own position and searcher.
func searchAll(backend, fen string, opts engine.Options, depth, repeat, parallel int) ([]run, error) {
	runs := make([]run, repeat)
	var g errgroup.Group
	g.SetLimit(max(parallel, 1))

	for i := range runs {
		i := i // per-iteration copy; go.mod targets go1.21 loop semantics
		g.Go(func() error {
			pos, err := rules.New(backend, fen)
			if err != nil {
				return err
			}
			s, err := engine.NewSearcher(opts)
			if err != nil {
				return err
			}
			iterStart := time.Now()
			res, err := s.ChooseMoveWithTimeLimit(pos, depth, 24*time.Hour)
			if err != nil {
				return fmt.Errorf("run %d: %w", i+1, err)
			}
			runs[i] = run{idx: i, result: res, elapsed: time.Since(iterStart)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}
