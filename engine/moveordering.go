package engine

import (
	"sort"

	"github.com/samber/lo"
)

type move struct {
	move  Move
	score float64
}

type moveList struct {
	moves []move
}

/*
	Move ordering bonuses.
	- Landing in the extended center (c3-f6) is usually good for development.
	- Captures are scored by the victim's material so big captures go first.
	- Checks narrow the opponent's replies and tighten the window quickly.
	- Squares the opponent does not attack are preferred; attacked ones are penalised.
	- Pawn and minor piece moves get a small development nudge.
	None of this affects the search value; it only changes how much is pruned.
*/
var (
	CentralBonus     = 20.0
	CheckBonus       = 15.0
	SafeSquareBonus  = 10.0
	DevelopmentBonus = 10.0
)

// c3-f6
var extendedCenterBB SquareSet = 0x00003C3C3C3C0000

// OrderMoves returns every legal move of pos, most promising first. Ties keep
// the rules engine's enumeration order.
func OrderMoves(pos Position) []Move {
	list := scoreMovesList(pos, pos.LegalMoves())
	return lo.Map(list.moves, func(m move, _ int) Move { return m.move })
}

func scoreMovesList(pos Position, moves []Move) (movesList moveList) {
	them := pos.SideToMove().Other()
	movesList.moves = lo.Map(moves, func(m Move, _ int) move {
		return move{move: m, score: scoreMove(pos, m, them)}
	})
	sort.SliceStable(movesList.moves, func(i, j int) bool {
		return movesList.moves[i].score > movesList.moves[j].score
	})
	return movesList
}

func scoreMove(pos Position, m Move, them Color) (moveEval float64) {
	to := m.To()
	mover := pos.PieceAt(m.From())

	if extendedCenterBB.Has(to) {
		moveEval += CentralBonus
	}
	if victim := pos.PieceAt(to); !victim.Empty() && victim.Color == them {
		moveEval += pieceValue[victim.Kind]
	}
	if pos.GivesCheck(m) {
		moveEval += CheckBonus
	}
	if pos.Attackers(to, them) == 0 {
		moveEval += SafeSquareBonus
	} else {
		moveEval -= SafeSquareBonus
	}
	switch mover.Kind {
	case Pawn, Knight, Bishop:
		moveEval += DevelopmentBonus
	}
	if !mover.Empty() {
		moveEval += positional(mover, to)
	}
	return moveEval
}
