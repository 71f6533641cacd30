package engine_test

import (
	"sort"
	"testing"

	"chess-bot/engine"
)

func TestOrderMovesIsPermutation(t *testing.T) {
	for _, fen := range symmetryFENs {
		pos := position(t, fen)
		legal := append([]engine.Move(nil), pos.LegalMoves()...)
		ordered := engine.OrderMoves(pos)
		if len(ordered) != len(legal) {
			t.Fatalf("%s: %d ordered moves, %d legal", fen, len(ordered), len(legal))
		}
		less := func(ms []engine.Move) func(i, j int) bool {
			return func(i, j int) bool { return ms[i] < ms[j] }
		}
		sorted := append([]engine.Move(nil), ordered...)
		sort.Slice(sorted, less(sorted))
		sort.Slice(legal, less(legal))
		for i := range legal {
			if legal[i] != sorted[i] {
				t.Fatalf("%s: ordering is not a permutation of the legal moves", fen)
			}
		}
	}
}

func TestOrderMovesIsDescending(t *testing.T) {
	for _, fen := range symmetryFENs {
		scores := engine.ScoredMoves(position(t, fen))
		for i := 1; i < len(scores); i++ {
			if scores[i] > scores[i-1] {
				t.Fatalf("%s: score %d (%v) above score %d (%v)", fen, i, scores[i], i-1, scores[i-1])
			}
		}
	}
}

func TestOrderMovesBigCaptureFirst(t *testing.T) {
	pos := position(t, "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	if got := engine.OrderMoves(pos)[0].String(); got != "e4d5" {
		t.Fatalf("first move = %s, want e4d5", got)
	}
}

func TestOrderMovesLeavesPositionAlone(t *testing.T) {
	pos := position(t, "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	key := pos.Key()
	engine.OrderMoves(pos)
	if pos.Key() != key {
		t.Fatalf("ordering moved pieces")
	}
}
