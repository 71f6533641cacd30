package engine

// Material values in pawns, indexed by Kind.
var pieceValue = [7]float64{
	NoKind: 0,
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   10,
}

// PieceValue returns the material value of a kind.
func PieceValue(k Kind) float64 { return pieceValue[k] }

// Piece-square tables, a1 first, from White's side of the board. Black looks
// the square up mirrored.
var PSQT = [7][64]int{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		0, -5, -10, -15, -15, -10, -5, 0,
		0, -5, -10, -15, -15, -10, -5, 0,
		0, -5, -5, 0, 0, -5, -5, 0,
		0, 0, 0, 5, 5, 0, 0, 0,
		0, 5, 10, 15, 15, 10, 5, 0,
		0, 10, 15, 20, 20, 15, 10, 0,
		0, 5, 10, 15, 15, 10, 5, 0,
	},
	Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	Rook: {
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
	},
	Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 10, 0, 0, 0, 0, -10,
		-10, 10, 10, 10, 10, 10, 0, -10,
		-5, 0, 10, 10, 10, 10, 0, -5,
		0, 0, 10, 10, 10, 10, 0, -5,
		-10, 10, 10, 10, 10, 10, 0, -10,
		-10, 0, 10, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	King: {
		20, 20, 0, 0, 0, 0, 20, 20,
		0, 0, 0, 0, 0, 0, 0, 0,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

// relativeSquare maps sq into White's frame for table lookups.
func relativeSquare(sq Square, c Color) Square {
	if c == Black {
		return sq.Mirror()
	}
	return sq
}

// positional is the owner-relative table value of p on sq.
func positional(p Piece, sq Square) float64 {
	return float64(PSQT[p.Kind][relativeSquare(sq, p.Color)])
}

// PositionalValue is the signed (White-positive) table value of p on sq.
func PositionalValue(p Piece, sq Square) float64 {
	if p.Empty() {
		return 0
	}
	return sign(p.Color) * positional(p, sq)
}
