package engine

import (
	"math/bits"
	"strings"
)

// Color identifies a side. White is the reference side for every Score.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Kind is a colorless piece type. The numbering matches dragontoothmg and
// goosemg (Pawn=1 .. King=6) so adapters convert with a plain cast.
type Kind uint8

const (
	NoKind Kind = 0
	Pawn   Kind = 1
	Knight Kind = 2
	Bishop Kind = 3
	Rook   Kind = 4
	Queen  Kind = 5
	King   Kind = 6
)

var kindLetters = [7]byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}

// Piece is a kind plus the side owning it.
type Piece struct {
	Kind  Kind
	Color Color
}

// NoPiece is returned for empty squares.
var NoPiece = Piece{}

// Empty reports whether p denotes an empty square.
func (p Piece) Empty() bool { return p.Kind == NoKind }

// Square indexes the board a1=0, b1=1 .. h8=63.
type Square uint8

// File returns 0..7 for files a..h.
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns 0..7 for ranks 1..8.
func (sq Square) Rank() int { return int(sq) >> 3 }

// Mirror reflects the square across the horizontal midline (a1 <-> a8).
func (sq Square) Mirror() Square { return sq ^ 56 }

func (sq Square) String() string {
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts "e4" style coordinates.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, false
	}
	return Square(int(s[1]-'1')*8 + int(s[0]-'a')), true
}

// SquareSet is a bitboard, bit i set for Square i.
type SquareSet uint64

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool { return s&(1<<sq) != 0 }

// Count returns the number of squares in the set.
func (s SquareSet) Count() int { return bits.OnesCount64(uint64(s)) }

// Squares lists the members in ascending order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Count())
	for b := uint64(s); b != 0; b &= b - 1 {
		out = append(out, Square(bits.TrailingZeros64(b)))
	}
	return out
}

// Move is an opaque, comparable move handle. Only rules adapters build moves;
// the engine reads the squares for its heuristics.
//
// Layout: bits 0-5 from, 6-11 to, 12-14 promotion kind.
type Move uint32

// NullMove is never a legal move.
const NullMove Move = 0

// NewMove packs a move. Adapters call this when enumerating legal moves.
func NewMove(from, to Square, promo Kind) Move {
	return Move(uint32(from&0x3F) | uint32(to&0x3F)<<6 | uint32(promo&0x7)<<12)
}

func (m Move) From() Square    { return Square(m & 0x3F) }
func (m Move) To() Square      { return Square((m >> 6) & 0x3F) }
func (m Move) Promotion() Kind { return Kind((m >> 12) & 0x7) }

// String renders the move in UCI notation (e2e4, e7e8q).
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if p := m.Promotion(); p != NoKind {
		sb.WriteByte(kindLetters[p])
	}
	return sb.String()
}
