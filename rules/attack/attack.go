// Package attack answers the attack and material questions the evaluator asks
// of every rules backend, from plain per-piece bitboards.
package attack

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

const (
	white = 0
	black = 1
)

// Piece indexes, the same numbering as dragontoothmg and goosemg.
const (
	Pawn   = 1
	Knight = 2
	Bishop = 3
	Rook   = 4
	Queen  = 5
	King   = 6
)

const (
	bitboardFileA uint64 = 0x0101010101010101
	bitboardFileH uint64 = 0x8080808080808080
	lightSquares  uint64 = 0x55AA55AA55AA55AA
)

var (
	knightMasks [64]uint64
	kingMasks   [64]uint64
	pawnAttacks [2][64]uint64
)

func init() {
	for sq := 0; sq < 64; sq++ {
		sqBB := uint64(1) << sq

		north := sqBB << 8
		south := sqBB >> 8
		kingMasks[sq] = north | south
		kingMasks[sq] |= ((sqBB | north | south) &^ bitboardFileH) << 1
		kingMasks[sq] |= ((sqBB | north | south) &^ bitboardFileA) >> 1

		notA := sqBB &^ bitboardFileA
		notH := sqBB &^ bitboardFileH
		notAB := sqBB &^ (bitboardFileA | bitboardFileA<<1)
		notGH := sqBB &^ (bitboardFileH | bitboardFileH>>1)
		knightMasks[sq] = notH<<17 | notA<<15 | notGH<<10 | notAB<<6 |
			notA>>17 | notH>>15 | notAB>>10 | notGH>>6

		pawnAttacks[white][sq] = notA<<7 | notH<<9
		pawnAttacks[black][sq] = notH>>7 | notA>>9
	}
}

// Board holds one bitboard per color and piece, Pieces[color][piece].
type Board struct {
	Pieces [2][7]uint64
}

// Set adds a piece of kind k and color c on sq.
func (b *Board) Set(c, k int, sq uint8) {
	b.Pieces[c][k] |= 1 << sq
}

// Side returns the union of c's pieces.
func (b *Board) Side(c int) (all uint64) {
	for k := Pawn; k <= King; k++ {
		all |= b.Pieces[c][k]
	}
	return all
}

func (b *Board) occupancy() uint64 { return b.Side(white) | b.Side(black) }

// Attackers returns the pieces of color by that attack sq. Pins are ignored.
func (b *Board) Attackers(sq uint8, by int) uint64 {
	own := &b.Pieces[by]
	occ := b.occupancy()

	hit := pawnAttacks[by^1][sq] & own[Pawn]
	hit |= knightMasks[sq] & own[Knight]
	hit |= kingMasks[sq] & own[King]
	hit |= dragontoothmg.CalculateRookMoveBitboard(sq, occ) & (own[Rook] | own[Queen])
	hit |= dragontoothmg.CalculateBishopMoveBitboard(sq, occ) & (own[Bishop] | own[Queen])
	return hit
}

// CountAttackers is the number of pieces of color by attacking sq.
func (b *Board) CountAttackers(sq uint8, by int) int {
	return bits.OnesCount64(b.Attackers(sq, by))
}

// Attacks returns every square some piece of color by attacks.
func (b *Board) Attacks(by int) (att uint64) {
	own := &b.Pieces[by]
	occ := b.occupancy()

	for x := own[Pawn]; x != 0; x &= x - 1 {
		att |= pawnAttacks[by][bits.TrailingZeros64(x)]
	}
	for x := own[Knight]; x != 0; x &= x - 1 {
		att |= knightMasks[bits.TrailingZeros64(x)]
	}
	for x := own[King]; x != 0; x &= x - 1 {
		att |= kingMasks[bits.TrailingZeros64(x)]
	}
	for x := own[Rook] | own[Queen]; x != 0; x &= x - 1 {
		att |= dragontoothmg.CalculateRookMoveBitboard(uint8(bits.TrailingZeros64(x)), occ)
	}
	for x := own[Bishop] | own[Queen]; x != 0; x &= x - 1 {
		att |= dragontoothmg.CalculateBishopMoveBitboard(uint8(bits.TrailingZeros64(x)), occ)
	}
	return att
}

// InsufficientMaterial reports a dead position: bare kings, a single minor
// piece, or only bishops all standing on one square color.
func (b *Board) InsufficientMaterial() bool {
	heavy := uint64(0)
	for _, c := range [2]int{white, black} {
		heavy |= b.Pieces[c][Pawn] | b.Pieces[c][Rook] | b.Pieces[c][Queen]
	}
	if heavy != 0 {
		return false
	}
	knights := b.Pieces[white][Knight] | b.Pieces[black][Knight]
	bishops := b.Pieces[white][Bishop] | b.Pieces[black][Bishop]
	if bits.OnesCount64(knights|bishops) <= 1 {
		return true
	}
	if knights != 0 {
		return false
	}
	return bishops&lightSquares == 0 || bishops&^lightSquares == 0
}
