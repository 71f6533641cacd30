package nchess

import (
	"math/bits"
	"math/rand"

	"github.com/notnil/chess"

	"chess-bot/engine"
)

// Zobrist keys by color, kind and square, plus castling, en passant file and
// side to move. The move clocks are left out so transpositions share a key.
var (
	zobristPiece     [2][7][64]uint64
	zobristCastle    [4]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
)

func init() {
	rnd := rand.New(rand.NewSource(0xC0DE))
	for c := range zobristPiece {
		for k := engine.Pawn; k <= engine.King; k++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][k][sq] = rnd.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

var castleOrder = [4]struct {
	color chess.Color
	side  chess.Side
}{
	{chess.White, chess.KingSide},
	{chess.White, chess.QueenSide},
	{chess.Black, chess.KingSide},
	{chess.Black, chess.QueenSide},
}

func (f *frame) zobrist() uint64 {
	var key uint64
	ab := f.attackBoard()
	for c := range ab.Pieces {
		for k := engine.Pawn; k <= engine.King; k++ {
			for bb := ab.Pieces[c][k]; bb != 0; bb &= bb - 1 {
				key ^= zobristPiece[c][k][bits.TrailingZeros64(bb)]
			}
		}
	}
	if f.pos.Turn() == chess.Black {
		key ^= zobristSide
	}
	cr := f.pos.CastleRights()
	for i, o := range castleOrder {
		if cr.CanCastle(o.color, o.side) {
			key ^= zobristCastle[i]
		}
	}
	if ep := f.pos.EnPassantSquare(); ep != chess.NoSquare {
		key ^= zobristEnPassant[int(ep)%8]
	}
	return key
}
