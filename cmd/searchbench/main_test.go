package main

import (
	"testing"

	"chess-bot/engine"
)

func TestSearchAllRunsIndependently(t *testing.T) {
	opts := engine.DefaultOptions()
	opts.HashMB = 2
	runs, err := searchAll("dragon", startFEN, opts, 2, 4, 2)
	if err != nil {
		t.Fatalf("searchAll: %v", err)
	}
	if len(runs) != 4 {
		t.Fatalf("got %d runs, want 4", len(runs))
	}
	for i, r := range runs {
		if r.idx != i || r.result.Depth != 2 {
			t.Fatalf("run %d: idx %d depth %d", i, r.idx, r.result.Depth)
		}
		if r.result.Move != runs[0].result.Move || r.result.Stats.Nodes != runs[0].result.Stats.Nodes {
			t.Fatalf("run %d disagrees with run 0: %v/%d vs %v/%d", i,
				r.result.Move, r.result.Stats.Nodes, runs[0].result.Move, runs[0].result.Stats.Nodes)
		}
	}
}

func TestSearchAllReportsErrors(t *testing.T) {
	opts := engine.DefaultOptions()
	if _, err := searchAll("stockfish", startFEN, opts, 1, 2, 1); err == nil {
		t.Fatalf("expected an error for an unknown backend")
	}
	mated := "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	if _, err := searchAll("dragon", mated, opts, 1, 1, 1); err == nil {
		t.Fatalf("expected an error when there is no legal move")
	}
}
