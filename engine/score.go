package engine

import (
	"fmt"
	"math"
)

type scoreKind uint8

const (
	lossKind scoreKind = iota
	valueKind
	winKind
)

// Score is a heuristic value from White's point of view or one of two
// sentinels: Win (White forces mate) and Loss (Black forces mate). Sentinels
// carry the mate distance in plies and are never used in arithmetic.
//
// Order: every Loss < every value < every Win. Among wins the shorter mate is
// greater; among losses the longer one is.
type Score struct {
	kind  scoreKind
	plies int16
	value float64
}

var (
	// MinScore and MaxScore bound every reachable score and serve as the
	// infinite alpha-beta window.
	MinScore = Score{kind: lossKind}
	MaxScore = Score{kind: winKind}
)

// ValueScore wraps a finite evaluation.
func ValueScore(v float64) Score {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("engine: non-finite evaluation %v", v))
	}
	return Score{kind: valueKind, value: v}
}

// MateScore is the sentinel for winner delivering mate in plies.
func MateScore(winner Color, plies int) Score {
	k := winKind
	if winner == Black {
		k = lossKind
	}
	return Score{kind: k, plies: int16(plies)}
}

func (s Score) IsWin() bool  { return s.kind == winKind }
func (s Score) IsLoss() bool { return s.kind == lossKind }
func (s Score) IsMate() bool { return s.kind != valueKind }

// Value is the finite evaluation; zero for sentinels.
func (s Score) Value() float64 { return s.value }

// Plies is the mate distance; zero for finite scores.
func (s Score) Plies() int { return int(s.plies) }

// Deeper is the score seen one ply closer to the root.
func (s Score) Deeper() Score {
	if s.kind != valueKind {
		s.plies++
	}
	return s
}

// Shallower undoes Deeper: the same score seen one ply further from the root.
func (s Score) Shallower() Score {
	if s.kind != valueKind {
		s.plies--
	}
	return s
}

// Neg swaps the point of view.
func (s Score) Neg() Score {
	switch s.kind {
	case winKind:
		s.kind = lossKind
	case lossKind:
		s.kind = winKind
	default:
		s.value = -s.value
	}
	return s
}

// For returns the score from c's point of view.
func (s Score) For(c Color) Score {
	if c == Black {
		return s.Neg()
	}
	return s
}

// Compare returns -1, 0 or +1 as s is below, equal to or above o.
func (s Score) Compare(o Score) int {
	if s.kind != o.kind {
		if s.kind < o.kind {
			return -1
		}
		return 1
	}
	switch s.kind {
	case winKind:
		return cmpInt(o.plies, s.plies)
	case lossKind:
		return cmpInt(s.plies, o.plies)
	}
	switch {
	case s.value < o.value:
		return -1
	case s.value > o.value:
		return 1
	}
	return 0
}

func (s Score) Less(o Score) bool { return s.Compare(o) < 0 }

func maxScore(a, b Score) Score {
	if b.Compare(a) > 0 {
		return b
	}
	return a
}

func minScore(a, b Score) Score {
	if b.Compare(a) < 0 {
		return b
	}
	return a
}

func (s Score) String() string {
	switch s.kind {
	case winKind:
		return fmt.Sprintf("win(%d)", s.plies)
	case lossKind:
		return fmt.Sprintf("loss(%d)", s.plies)
	}
	return fmt.Sprintf("%.2f", s.value)
}
