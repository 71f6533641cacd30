package goose_test

import (
	"testing"

	"chess-bot/engine"
	"chess-bot/rules/goose"
	"chess-bot/rules/ruletest"
)

func newPosition(fen string) (engine.Position, error) {
	p, err := goose.New(fen)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func TestConformance(t *testing.T) {
	ruletest.Run(t, newPosition)
}

func TestUndoRestoresFEN(t *testing.T) {
	p, err := goose.New(ruletest.KiwipeteFEN)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	before := p.FEN()
	for _, m := range append([]engine.Move(nil), p.LegalMoves()...) {
		undo := p.Apply(m)
		undo()
		if after := p.FEN(); after != before {
			t.Fatalf("after %v: FEN = %q, want %q", m, after, before)
		}
	}
}
