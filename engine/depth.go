package engine

// Depths picked by ChooseDepth. Black gets the deeper search in quiet
// positions with few moves and the shallower one in the middle band; the
// asymmetry is intentional.
var (
	InCheckDepth   = 6
	FewMovesDepth  = [2]int{White: 5, Black: 6}
	SomeMovesDepth = [2]int{White: 4, Black: 3}
	ManyMovesDepth = 4
)

const (
	fewMovesLimit  = 15
	someMovesLimit = 30
)

// ChooseDepth picks a maximum search depth from cheap features of pos: check
// status, the number of legal moves and the side to move.
func ChooseDepth(pos Position) int {
	if pos.InCheck() {
		return InCheckDepth
	}
	stm := pos.SideToMove()
	switch n := len(pos.LegalMoves()); {
	case n < fewMovesLimit:
		return FewMovesDepth[stm]
	case n < someMovesLimit:
		return SomeMovesDepth[stm]
	default:
		return ManyMovesDepth
	}
}
