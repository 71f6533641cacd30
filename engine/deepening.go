package engine

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Iteration records one completed depth of iterative deepening.
type Iteration struct {
	Depth   int
	Move    Move
	Score   Score
	Nodes   uint64
	Elapsed time.Duration
}

// Result is the outcome of ChooseMoveWithTimeLimit.
type Result struct {
	Move       Move
	Score      Score
	Depth      int
	Stats      CutStatistics
	Elapsed    time.Duration
	Iterations []Iteration
}

// ChooseMoveWithTimeLimit runs SelectBestMove at depth 1, 2, ... maxDepth and
// returns the choice of the deepest iteration that completed. Depth 1 always
// runs. A new iteration is not started once timeLimit has elapsed, but a
// running one is never interrupted. A maxDepth of zero lets ChooseDepth pick.
func (s *Searcher) ChooseMoveWithTimeLimit(pos Position, maxDepth int, timeLimit time.Duration) (Result, error) {
	if len(pos.LegalMoves()) == 0 {
		return Result{}, ErrNoLegalMoves
	}
	if maxDepth <= 0 {
		maxDepth = s.opts.MaxDepth
	}
	if maxDepth <= 0 {
		maxDepth = ChooseDepth(pos)
	}
	maxDepth = Min(maxDepth, MaxDepth)
	if timeLimit <= 0 {
		timeLimit = s.opts.MoveTime
	}

	if !s.opts.KeepTable {
		s.tt.Clear()
	}
	s.stats.reset()

	var timeHandler TimeHandler
	timeHandler.StartTime(timeLimit)
	stm := pos.SideToMove()

	var res Result
	for depth := 1; depth <= maxDepth; depth++ {
		if depth > 1 && timeHandler.TimeStatus() {
			break
		}

		move, score := s.SelectBestMove(pos, depth)
		it := Iteration{
			Depth:   depth,
			Move:    move,
			Score:   score,
			Nodes:   s.stats.Nodes,
			Elapsed: timeHandler.Elapsed(),
		}
		res.Iterations = append(res.Iterations, it)
		res.Move, res.Score, res.Depth = move, score, depth

		log.Debug().
			Int("depth", depth).
			Stringer("move", move).
			Stringer("score", score).
			Uint64("nodes", it.Nodes).
			Dur("elapsed", it.Elapsed).
			Msg("iteration complete")

		// Nothing deeper can beat a forced mate.
		if score.For(stm).IsWin() {
			break
		}
	}

	res.Stats = s.stats
	res.Elapsed = timeHandler.Elapsed()

	log.Info().
		Stringer("move", res.Move).
		Stringer("score", res.Score).
		Int("depth", res.Depth).
		Int("maxDepth", maxDepth).
		Dur("budget", timeLimit).
		Dur("elapsed", res.Elapsed).
		Object("stats", res.Stats).
		Msg("move chosen")

	return res, nil
}
