package engine_test

import (
	"testing"
	"time"

	"chess-bot/engine"
)

func TestGetPiecePhase(t *testing.T) {
	if got := engine.GetPiecePhase(position(t, startFEN)); got != engine.TotalPhase {
		t.Fatalf("start phase = %d, want %d", got, engine.TotalPhase)
	}
	if got := engine.GetPiecePhase(position(t, "4k3/pppp4/8/8/8/8/PPPP4/4K3 w - - 0 1")); got != 0 {
		t.Fatalf("pawn ending phase = %d, want 0", got)
	}
	if got := engine.GetPiecePhase(position(t, "3qk3/8/8/8/8/8/8/R3K3 w - - 0 1")); got != 6 {
		t.Fatalf("queen vs rook phase = %d, want 6", got)
	}
}

func TestEstimateMovesRemaining(t *testing.T) {
	if got := engine.EstimateMovesRemaining(engine.TotalPhase); got != 45 {
		t.Fatalf("opening estimate = %d, want 45", got)
	}
	if got := engine.EstimateMovesRemaining(0); got != 20 {
		t.Fatalf("endgame estimate = %d, want 20", got)
	}
}

func TestAllocateMoveTime(t *testing.T) {
	ms := time.Millisecond
	tests := []struct {
		name           string
		remaining, inc int
		phase          int
		want           time.Duration
	}{
		{"sudden death", 60000, 0, 24, 1500 * ms},
		{"with increment", 45000, 1000, 24, 2000 * ms},
		{"panic on increment", 800, 2000, 24, 560 * ms},
		{"never below minimum", 0, 0, 24, 5 * ms},
		{"tiny clock", 100, 0, 0, 5 * ms},
		{"capped at seventy percent", 2000, 10000, 0, 1400 * ms},
	}
	for _, tt := range tests {
		if got := engine.AllocateMoveTime(tt.remaining, tt.inc, tt.phase); got != tt.want {
			t.Fatalf("%s: %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTimeHandler(t *testing.T) {
	var th engine.TimeHandler
	th.StartTime(time.Hour)
	if th.TimeStatus() {
		t.Fatalf("an hour budget expired immediately")
	}
	th.StartTime(0)
	if !th.TimeStatus() {
		t.Fatalf("a zero budget should be spent at once")
	}
}
