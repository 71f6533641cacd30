package engine

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoLegalMoves is returned when asked to move in a finished game.
	ErrNoLegalMoves = errors.New("engine: no legal moves")
	// ErrCorruptUndo reports a rules engine whose undo did not restore the
	// position. It is raised as a panic because the search cannot continue.
	ErrCorruptUndo = errors.New("engine: undo did not restore position")
)

// Options configures a Searcher.
type Options struct {
	// TableMode picks the transposition reuse policy.
	TableMode TableMode
	// HashMB sizes the transposition table.
	HashMB int
	// KeepTable keeps entries between ChooseMoveWithTimeLimit calls.
	KeepTable bool
	// VerifyUndo checks the position key around every apply/undo pair.
	VerifyUndo bool
	// MoveTime is the budget used when the caller gives none.
	MoveTime time.Duration
	// MaxDepth caps iterative deepening when the caller gives no depth; zero
	// means ChooseDepth decides.
	MaxDepth int
}

// DefaultOptions mirrors the engine's out-of-the-box behaviour: depth-aware
// table, fresh per move, five seconds per move.
func DefaultOptions() Options {
	return Options{
		TableMode: DepthAware,
		HashMB:    64,
		MoveTime:  5 * time.Second,
	}
}

func (o Options) Validate() error {
	if o.TableMode > Disabled {
		return fmt.Errorf("options: invalid table mode %d", o.TableMode)
	}
	if o.HashMB < 1 && o.TableMode != Disabled {
		return fmt.Errorf("options: hash size must be positive, got %d MB", o.HashMB)
	}
	if o.MoveTime < 0 {
		return fmt.Errorf("options: negative move time %v", o.MoveTime)
	}
	if o.MaxDepth < 0 || o.MaxDepth > MaxDepth {
		return fmt.Errorf("options: max depth %d outside [0, %d]", o.MaxDepth, MaxDepth)
	}
	return nil
}
