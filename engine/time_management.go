package engine

import (
	"time"

	"github.com/samber/lo"
)

// TotalPhase is the phase weight of the full starting material.
const TotalPhase = 24

var phaseWeight = [7]int{Knight: 1, Bishop: 1, Rook: 2, Queen: 4}

// TimeHandler tracks one soft deadline. It is only consulted between
// iterations, so an iteration started before the deadline may overrun it.
type TimeHandler struct {
	start  time.Time
	budget time.Duration
}

func (th *TimeHandler) StartTime(budget time.Duration) {
	th.start = time.Now()
	th.budget = budget
}

func (th *TimeHandler) Elapsed() time.Duration { return time.Since(th.start) }

/*
  - True once the budget is used up
  - False while there is time left
*/
func (th *TimeHandler) TimeStatus() bool {
	return th.Elapsed() >= th.budget
}

// GetPiecePhase is 24 with all minor and major pieces on the board and 0 with
// none.
func GetPiecePhase(pos Position) (phase int) {
	for k := Knight; k <= Queen; k++ {
		n := pos.Pieces(k, White).Count() + pos.Pieces(k, Black).Count()
		phase += n * phaseWeight[k]
	}
	return Min(phase, TotalPhase)
}

func estimateMovesRemaining(phase int) int {
	// Linearly interpolate between 20 (endgame) and 45 (opening/midgame)
	return (phase*25)/TotalPhase + 20
}

// AllocateMoveTime turns a clock (remaining and increment, in ms) into a budget
// for one move.
func AllocateMoveTime(remainingMs, incrementMs, phase int) time.Duration {
	movesLeft := estimateMovesRemaining(phase)

	const overheadMs = 30      // reserve for IO jitter
	const minMoveMs = 5        // never less than this
	const maxFrac = 0.7        // never spend >70% of remaining time
	const panicThreshMs = 1000 // below this, live off the increment
	const panicFrac = 0.90

	rem := remainingMs
	inc := incrementMs

	var moveTime int
	if inc > 0 {
		if rem < panicThreshMs {
			moveTime = int(float64(inc) * panicFrac)
		} else {
			moveTime = rem/movesLeft + inc
		}
	} else {
		moveTime = rem / 40
	}

	ceiling := Min(int(float64(rem)*maxFrac), rem-overheadMs)
	moveTime = lo.Clamp(moveTime, minMoveMs, Max(ceiling, minMoveMs))
	return time.Duration(moveTime) * time.Millisecond
}
