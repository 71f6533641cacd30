package engine_test

import (
	"testing"

	"chess-bot/engine"
)

func TestTableStoreProbe(t *testing.T) {
	tt := engine.NewTransTable(1, engine.DepthAware)
	if _, ok := tt.Probe(42); ok {
		t.Fatalf("empty table reported a hit")
	}
	tt.Store(42, 3, engine.ValueScore(1.5), engine.ExactFlag)
	e, ok := tt.Probe(42)
	if !ok || e.Depth != 3 || e.Score != engine.ValueScore(1.5) || e.Flag != engine.ExactFlag {
		t.Fatalf("probe = %+v, %v", e, ok)
	}
	if tt.Len() != 1 {
		t.Fatalf("Len = %d, want 1", tt.Len())
	}
	tt.Clear()
	if _, ok := tt.Probe(42); ok || tt.Len() != 0 {
		t.Fatalf("Clear left entries behind")
	}
}

func TestTableReplacement(t *testing.T) {
	tt := engine.NewTransTable(1, engine.DepthAware)
	n := tt.ClusterCount()
	// Five keys that share cluster 7.
	keys := []uint64{7, 7 + n, 7 + 2*n, 7 + 3*n, 7 + 4*n}
	depths := []int{5, 2, 6, 4}
	for i, d := range depths {
		tt.Store(keys[i], d, engine.ValueScore(float64(i)), engine.ExactFlag)
	}
	// Same key overwrites in place.
	tt.Store(keys[0], 1, engine.ValueScore(9), engine.BetaFlag)
	if e, _ := tt.Probe(keys[0]); e.Depth != 1 || e.Flag != engine.BetaFlag {
		t.Fatalf("same-key store did not overwrite: %+v", e)
	}
	if tt.Len() != 4 {
		t.Fatalf("Len = %d, want 4", tt.Len())
	}
	// Full cluster: the shallowest entry (keys[0], now depth 1) goes.
	tt.Store(keys[4], 3, engine.ValueScore(4), engine.ExactFlag)
	if _, ok := tt.Probe(keys[0]); ok {
		t.Fatalf("shallowest entry survived replacement")
	}
	for _, k := range keys[1:] {
		if _, ok := tt.Probe(k); !ok {
			t.Fatalf("key %d was evicted", k)
		}
	}
}

func TestTableModes(t *testing.T) {
	alpha, beta := engine.ValueScore(-1), engine.ValueScore(1)
	exact := engine.TTEntry{Score: engine.ValueScore(0.5), Depth: 4, Flag: engine.ExactFlag}
	lower := engine.TTEntry{Score: engine.ValueScore(2), Depth: 4, Flag: engine.BetaFlag}
	upper := engine.TTEntry{Score: engine.ValueScore(0), Depth: 4, Flag: engine.AlphaFlag}

	tests := []struct {
		mode  engine.TableMode
		entry engine.TTEntry
		depth int
		want  bool
	}{
		{engine.DepthAware, exact, 3, true},
		{engine.DepthAware, exact, 4, true},
		{engine.DepthAware, exact, 5, false},
		{engine.DepthAware, lower, 4, true},  // 2 >= beta
		{engine.DepthAware, upper, 4, false}, // 0 > alpha
		{engine.ExactDepth, exact, 3, false},
		{engine.ExactDepth, exact, 4, true},
		{engine.DepthAgnostic, upper, 9, true},
		{engine.Disabled, exact, 1, false},
	}
	for i, tc := range tests {
		tt := engine.NewTransTable(1, tc.mode)
		if got, _ := tt.UseEntry(tc.entry, tc.depth, alpha, beta); got != tc.want {
			t.Fatalf("case %d (%v): usable = %v, want %v", i, tc.mode, got, tc.want)
		}
	}
}

func TestDisabledTableStoresNothing(t *testing.T) {
	tt := engine.NewTransTable(64, engine.Disabled)
	tt.Store(1, 1, engine.ValueScore(0), engine.ExactFlag)
	if _, ok := tt.Probe(1); ok || tt.Len() != 0 {
		t.Fatalf("disabled table kept an entry")
	}
}

func TestParseTableMode(t *testing.T) {
	for _, m := range []engine.TableMode{engine.DepthAware, engine.ExactDepth, engine.DepthAgnostic, engine.Disabled} {
		got, err := engine.ParseTableMode(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseTableMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := engine.ParseTableMode("sometimes"); err == nil {
		t.Fatalf("expected an error for an unknown mode")
	}
}
