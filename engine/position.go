package engine

// Position is everything the search needs from a rules engine. The engine
// holds exactly one Position per search and mutates it in place with strict
// apply/undo stack discipline, so implementations need no copy-on-write.
//
// Implementations live under rules/ (dragontoothmg, goosemg, notnil/chess).
type Position interface {
	SideToMove() Color

	// LegalMoves enumerates the legal moves in a stable, repeatable order.
	LegalMoves() []Move

	// Apply plays a legal move and returns the closure that takes it back.
	// Passing an illegal move is a contract violation and panics.
	Apply(m Move) (undo func())

	InCheck() bool
	IsCheckmate() bool
	IsStalemate() bool
	IsInsufficientMaterial() bool
	CanCastleKingside(c Color) bool

	PieceAt(sq Square) Piece
	Pieces(k Kind, c Color) SquareSet

	// Attackers counts the pieces of side c that attack sq.
	Attackers(sq Square, c Color) int
	// Attacks is the set of squares attacked by side c.
	Attacks(c Color) SquareSet

	// Key is a fingerprint equal for identical positions (pieces, side to
	// move, castling rights, en passant).
	Key() uint64

	// GivesCheck reports whether m would check the opponent. The position is
	// left unchanged.
	GivesCheck(m Move) bool
}
