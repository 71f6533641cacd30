package bench

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"chess-bot/engine"
	"chess-bot/rules"
)

const (
	startFEN    = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos6FEN     = "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

func mustPosition(b *testing.B, backend, fen string) engine.Position {
	pos, err := rules.New(backend, fen)
	if err != nil {
		b.Fatalf("%s: %v", backend, err)
	}
	return pos
}

func benchSearch(b *testing.B, backend, fen string, depth int, mode engine.TableMode) {
	pos := mustPosition(b, backend, fen)
	opts := engine.DefaultOptions()
	opts.TableMode = mode
	s, err := engine.NewSearcher(opts)
	if err != nil {
		b.Fatalf("NewSearcher: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.ChooseMoveWithTimeLimit(pos, depth, time.Hour); err != nil {
			b.Fatalf("search: %v", err)
		}
	}
	b.ReportMetric(float64(s.Stats().Nodes), "nodes/op")
}

func BenchmarkSearch_Initial_D3(b *testing.B) {
	benchSearch(b, "dragon", startFEN, 3, engine.DepthAware)
}

func BenchmarkSearch_Initial_D3_NoTable(b *testing.B) {
	benchSearch(b, "dragon", startFEN, 3, engine.Disabled)
}

func BenchmarkSearch_Kiwipete_D2(b *testing.B) {
	benchSearch(b, "dragon", kiwipeteFEN, 2, engine.DepthAware)
}

func BenchmarkSearch_Pos6_D3_Goose(b *testing.B) {
	benchSearch(b, "goose", pos6FEN, 3, engine.DepthAware)
}

func BenchmarkSearch_Initial_D2_NChess(b *testing.B) {
	benchSearch(b, "nchess", startFEN, 2, engine.DepthAware)
}
