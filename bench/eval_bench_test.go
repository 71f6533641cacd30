package bench

import (
	"testing"

	"chess-bot/engine"
)

func benchEvaluate(b *testing.B, backend, fen string) {
	pos := mustPosition(b, backend, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Evaluate(pos)
	}
}

func BenchmarkEvaluate_Kiwipete(b *testing.B) {
	for _, backend := range []string{"dragon", "goose", "nchess"} {
		b.Run(backend, func(b *testing.B) { benchEvaluate(b, backend, kiwipeteFEN) })
	}
}

func BenchmarkOrderMoves_Pos6(b *testing.B) {
	pos := mustPosition(b, "dragon", pos6FEN)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.OrderMoves(pos)
	}
}

func benchLegalMoves(b *testing.B, backend, fen string) {
	pos := mustPosition(b, backend, fen)
	moves := pos.LegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Apply/undo forces the adapter to regenerate.
		undo := pos.Apply(moves[i%len(moves)])
		_ = pos.LegalMoves()
		undo()
	}
}

func BenchmarkApplyGenerate_Kiwipete(b *testing.B) {
	for _, backend := range []string{"dragon", "goose", "nchess"} {
		b.Run(backend, func(b *testing.B) { benchLegalMoves(b, backend, kiwipeteFEN) })
	}
}
