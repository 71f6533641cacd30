package dragon_test

import (
	"testing"

	"chess-bot/engine"
	"chess-bot/rules/dragon"
	"chess-bot/rules/ruletest"
)

func newPosition(fen string) (engine.Position, error) {
	p, err := dragon.New(fen)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func TestConformance(t *testing.T) {
	ruletest.Run(t, newPosition)
}

func TestNewRejectsMissingKing(t *testing.T) {
	if _, err := dragon.New("8/8/8/8/8/8/8/4K3 w - - 0 1"); err == nil {
		t.Fatalf("a position without a black king should not parse")
	}
}

func TestFENSurvivesSearchLine(t *testing.T) {
	p, err := dragon.New(ruletest.KiwipeteFEN)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	before := p.FEN()
	var undos []func()
	for _, uci := range []string{"e1g1", "h3g2", "d5e6"} {
		undos = append(undos, p.Apply(ruletest.FindMove(t, p, uci)))
	}
	for i := len(undos) - 1; i >= 0; i-- {
		undos[i]()
	}
	if after := p.FEN(); after != before {
		t.Fatalf("FEN after undo = %q, want %q", after, before)
	}
}
