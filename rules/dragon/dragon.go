// Package dragon adapts github.com/dylhunn/dragontoothmg to engine.Position.
package dragon

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"chess-bot/engine"
	"chess-bot/rules/attack"
)

// Position wraps a dragontoothmg board. The legal move list is cached per
// position and restored by undo.
type Position struct {
	board dragontoothmg.Board

	cached bool
	native []dragontoothmg.Move
	legal  []engine.Move
}

// New parses fen. dragontoothmg panics on malformed input, which is returned
// as an error here.
func New(fen string) (pos *Position, err error) {
	defer func() {
		if r := recover(); r != nil {
			pos, err = nil, fmt.Errorf("dragon: parse %q: %v", fen, r)
		}
	}()
	if len(strings.Fields(fen)) < 4 {
		return nil, fmt.Errorf("dragon: parse %q: want at least 4 fields", fen)
	}
	b := dragontoothmg.ParseFen(fen)
	if bits.OnesCount64(b.White.Kings) != 1 || bits.OnesCount64(b.Black.Kings) != 1 {
		return nil, fmt.Errorf("dragon: parse %q: each side needs exactly one king", fen)
	}
	return &Position{board: b}, nil
}

// Board exposes the wrapped board for callers that need the native API.
func (p *Position) Board() *dragontoothmg.Board { return &p.board }

func (p *Position) FEN() string { return p.board.ToFen() }

func (p *Position) SideToMove() engine.Color {
	if p.board.Wtomove {
		return engine.White
	}
	return engine.Black
}

func (p *Position) generate() {
	if p.cached {
		return
	}
	p.native = p.board.GenerateLegalMoves()
	p.legal = make([]engine.Move, 0, len(p.native))
	for i := range p.native {
		m := &p.native[i]
		p.legal = append(p.legal, engine.NewMove(engine.Square(m.From()), engine.Square(m.To()), engine.Kind(m.Promote())))
	}
	p.cached = true
}

// LegalMoves returns dragontoothmg's generation order. The slice is owned by
// the position and must not be modified.
func (p *Position) LegalMoves() []engine.Move {
	p.generate()
	return p.legal
}

func (p *Position) nativeMove(m engine.Move) (dragontoothmg.Move, bool) {
	p.generate()
	for i, lm := range p.legal {
		if lm == m {
			return p.native[i], true
		}
	}
	return 0, false
}

func (p *Position) Apply(m engine.Move) func() {
	nm, ok := p.nativeMove(m)
	if !ok {
		panic(fmt.Sprintf("dragon: illegal move %v in %s", m, p.board.ToFen()))
	}
	native, legal, cached := p.native, p.legal, p.cached
	unapply := p.board.Apply(nm)
	p.cached = false
	return func() {
		unapply()
		p.native, p.legal, p.cached = native, legal, cached
	}
}

func (p *Position) InCheck() bool { return p.board.OurKingInCheck() }

func (p *Position) IsCheckmate() bool {
	return p.InCheck() && len(p.LegalMoves()) == 0
}

func (p *Position) IsStalemate() bool {
	return !p.InCheck() && len(p.LegalMoves()) == 0
}

func (p *Position) IsInsufficientMaterial() bool {
	ab := p.attackBoard()
	return ab.InsufficientMaterial()
}

// CanCastleKingside reads the castling field of the FEN, the only place
// dragontoothmg exposes the rights.
func (p *Position) CanCastleKingside(c engine.Color) bool {
	fields := strings.Fields(p.board.ToFen())
	if len(fields) < 3 {
		return false
	}
	want := "K"
	if c == engine.Black {
		want = "k"
	}
	return strings.Contains(fields[2], want)
}

func (p *Position) bitboards(c engine.Color) *dragontoothmg.Bitboards {
	if c == engine.White {
		return &p.board.White
	}
	return &p.board.Black
}

func kindBitboard(bb *dragontoothmg.Bitboards, k engine.Kind) uint64 {
	switch k {
	case engine.Pawn:
		return bb.Pawns
	case engine.Knight:
		return bb.Knights
	case engine.Bishop:
		return bb.Bishops
	case engine.Rook:
		return bb.Rooks
	case engine.Queen:
		return bb.Queens
	case engine.King:
		return bb.Kings
	}
	return 0
}

func (p *Position) PieceAt(sq engine.Square) engine.Piece {
	mask := uint64(1) << sq
	for _, c := range [2]engine.Color{engine.White, engine.Black} {
		bb := p.bitboards(c)
		if bb.All&mask == 0 {
			continue
		}
		for k := engine.Pawn; k <= engine.King; k++ {
			if kindBitboard(bb, k)&mask != 0 {
				return engine.Piece{Kind: k, Color: c}
			}
		}
	}
	return engine.NoPiece
}

func (p *Position) Pieces(k engine.Kind, c engine.Color) engine.SquareSet {
	return engine.SquareSet(kindBitboard(p.bitboards(c), k))
}

func (p *Position) attackBoard() (ab attack.Board) {
	for _, c := range [2]engine.Color{engine.White, engine.Black} {
		bb := p.bitboards(c)
		for k := engine.Pawn; k <= engine.King; k++ {
			ab.Pieces[c][k] = kindBitboard(bb, k)
		}
	}
	return ab
}

func (p *Position) Attackers(sq engine.Square, c engine.Color) int {
	ab := p.attackBoard()
	return ab.CountAttackers(uint8(sq), int(c))
}

func (p *Position) Attacks(c engine.Color) engine.SquareSet {
	ab := p.attackBoard()
	return engine.SquareSet(ab.Attacks(int(c)))
}

func (p *Position) Key() uint64 { return p.board.Hash() }

func (p *Position) GivesCheck(m engine.Move) bool {
	undo := p.Apply(m)
	defer undo()
	return p.board.OurKingInCheck()
}
