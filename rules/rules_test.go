package rules_test

import (
	"math"
	"testing"

	"golang.org/x/exp/slices"

	"chess-bot/engine"
	"chess-bot/rules"
	"chess-bot/rules/ruletest"
)

var agreementFENs = []string{
	ruletest.StartFEN,
	ruletest.KiwipeteFEN,
	ruletest.FoolsMateFEN,
	ruletest.StalemateFEN,
	"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4",
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1",
}

func TestUnknownBackend(t *testing.T) {
	if _, err := rules.New("stockfish", ruletest.StartFEN); err == nil {
		t.Fatalf("expected an error for an unknown backend")
	}
	if !rules.Valid("Dragon") {
		t.Fatalf("backend names should be case-insensitive")
	}
}

func TestBackendsAgree(t *testing.T) {
	for _, fen := range agreementFENs {
		var (
			refMoves []string
			refEval  engine.Score
			refCheck bool
		)
		for i, backend := range rules.Backends() {
			pos, err := rules.New(backend, fen)
			if err != nil {
				t.Fatalf("%s: %v", backend, err)
			}
			moves := ruletest.SortedMoves(pos)
			eval := engine.Evaluate(pos)
			check := pos.InCheck()
			if i == 0 {
				refMoves, refEval, refCheck = moves, eval, check
				continue
			}
			if !slices.Equal(moves, refMoves) {
				t.Fatalf("%s disagrees on moves for %q:\n got %v\nwant %v", backend, fen, moves, refMoves)
			}
			if check != refCheck {
				t.Fatalf("%s disagrees on check for %q", backend, fen)
			}
			if !sameScore(eval, refEval) {
				t.Fatalf("%s evaluates %q as %v, want %v", backend, fen, eval, refEval)
			}
		}
	}
}

func TestBackendsAgreeOnSearchValue(t *testing.T) {
	fen := "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4"
	var ref engine.Score
	for i, backend := range rules.Backends() {
		pos, err := rules.New(backend, fen)
		if err != nil {
			t.Fatalf("%s: %v", backend, err)
		}
		opts := engine.DefaultOptions()
		opts.TableMode = engine.Disabled
		s, err := engine.NewSearcher(opts)
		if err != nil {
			t.Fatalf("NewSearcher: %v", err)
		}
		move, score := s.SelectBestMove(pos, 2)
		if !score.IsWin() || move.String() != "h5f7" {
			t.Fatalf("%s: got %v %v, want the mate h5f7", backend, move, score)
		}
		if i > 0 && !sameScore(score, ref) {
			t.Fatalf("%s: score %v, want %v", backend, score, ref)
		}
		ref = score
	}
}

func sameScore(a, b engine.Score) bool {
	if a.IsMate() || b.IsMate() {
		return a.Compare(b) == 0
	}
	return math.Abs(a.Value()-b.Value()) < 1e-9
}
