package engine

import "fmt"

// MaxDepth bounds every depth the engine will search.
const MaxDepth = 32

// Searcher runs depth-limited alpha-beta over one Position at a time. It owns
// the transposition table and is not safe for concurrent use.
type Searcher struct {
	opts  Options
	tt    *TransTable
	pos   Position
	stats CutStatistics
}

// NewSearcher validates opts and allocates the table.
func NewSearcher(opts Options) (*Searcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Searcher{
		opts: opts,
		tt:   NewTransTable(opts.HashMB, opts.TableMode),
	}, nil
}

func (s *Searcher) Options() Options     { return s.opts }
func (s *Searcher) Table() *TransTable   { return s.tt }
func (s *Searcher) Stats() CutStatistics { return s.stats }

// ResetForNewGame drops everything learned about earlier positions.
func (s *Searcher) ResetForNewGame() {
	s.tt.Clear()
	s.stats.reset()
}

// SelectBestMove searches every root move to depth plies in the rules
// engine's natural order and keeps the strictly best one for the side to
// move; ties go to the move seen first. Depths below 1 search 1 ply.
func (s *Searcher) SelectBestMove(pos Position, depth int) (Move, Score) {
	s.pos = pos
	defer func() { s.pos = nil }()

	depth = Max(Min(depth, MaxDepth), 1)
	stm := pos.SideToMove()
	childMaximizes := stm.Other() == White

	bestMove := NullMove
	var bestScore Score
	for _, m := range pos.LegalMoves() {
		score := s.child(m, depth-1, MinScore, MaxScore, childMaximizes)
		if bestMove == NullMove || score.For(stm).Compare(bestScore.For(stm)) > 0 {
			bestMove, bestScore = m, score
		}
	}
	if bestMove == NullMove {
		return NullMove, Evaluate(pos)
	}
	return bestMove, bestScore
}

// child plays m, searches the reply position and takes m back. The window is
// shifted into the child's mate-distance frame and the result shifted back.
func (s *Searcher) child(m Move, depth int, alpha, beta Score, maximizing bool) Score {
	var before uint64
	if s.opts.VerifyUndo {
		before = s.pos.Key()
	}

	undo := s.pos.Apply(m)
	score := s.search(depth, alpha.Shallower(), beta.Shallower(), maximizing)
	undo()

	if s.opts.VerifyUndo && s.pos.Key() != before {
		panic(fmt.Errorf("%w: after %v", ErrCorruptUndo, m))
	}
	return score.Deeper()
}

// search is minimax with alpha-beta pruning. Scores are always from White's
// point of view; White maximizes.
func (s *Searcher) search(depth int, alpha, beta Score, maximizing bool) Score {
	s.stats.Nodes++
	pos := s.pos

	if depth <= 0 {
		s.stats.Leaves++
		return Evaluate(pos)
	}

	// A position without moves is terminal whatever the rules engine's
	// status flags say.
	legal := pos.LegalMoves()
	if len(legal) == 0 || pos.IsInsufficientMaterial() {
		s.stats.Leaves++
		return Evaluate(pos)
	}

	posHash := pos.Key()
	if entry, ok := s.tt.Probe(posHash); ok {
		s.stats.TTHits++
		if usable, ttScore := s.tt.useEntry(entry, depth, alpha, beta); usable {
			s.stats.TTCutoffs++
			return ttScore
		}
	}

	alphaOrig, betaOrig := alpha, beta
	bestScore := MaxScore
	if maximizing {
		bestScore = MinScore
	}

	moveList := scoreMovesList(pos, legal)
	for _, mv := range moveList.moves {
		score := s.child(mv.move, depth-1, alpha, beta, !maximizing)

		if maximizing {
			bestScore = maxScore(bestScore, score)
			alpha = maxScore(alpha, bestScore)
		} else {
			bestScore = minScore(bestScore, score)
			beta = minScore(beta, bestScore)
		}

		if beta.Compare(alpha) <= 0 {
			s.stats.BetaCutoffs++
			break
		}
	}

	var ttFlag = ExactFlag
	if bestScore.Compare(alphaOrig) <= 0 {
		ttFlag = AlphaFlag
	} else if bestScore.Compare(betaOrig) >= 0 {
		ttFlag = BetaFlag
	}
	s.tt.Store(posHash, depth, bestScore, ttFlag)

	return bestScore
}
