package engine

// Test hooks for package engine_test.

var (
	EstimateMovesRemaining = estimateMovesRemaining
	CentralSquares         = centerSquares
)

func (tt *TransTable) ClusterCount() uint64 { return tt.clusterCount }

func (tt *TransTable) UseEntry(entry TTEntry, depth int, alpha, beta Score) (bool, Score) {
	return tt.useEntry(entry, depth, alpha, beta)
}

// ScoredMoves returns the ordering scores in the order OrderMoves yields.
func ScoredMoves(pos Position) []float64 {
	list := scoreMovesList(pos, pos.LegalMoves())
	out := make([]float64, len(list.moves))
	for i, m := range list.moves {
		out[i] = m.score
	}
	return out
}
