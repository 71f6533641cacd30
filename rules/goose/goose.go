// Package goose adapts the GooseEngineMG move generator to engine.Position.
package goose

import (
	"fmt"
	"strings"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"

	"chess-bot/engine"
	"chess-bot/rules/attack"
)

// Position wraps a goosemg board and plays moves with MakeMove/UnmakeMove.
type Position struct {
	board *gm.Board

	cached bool
	native []gm.Move
	legal  []engine.Move
}

func New(fen string) (*Position, error) {
	b, err := gm.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("goose: parse %q: %w", fen, err)
	}
	return &Position{board: b}, nil
}

func (p *Position) Board() *gm.Board { return p.board }

func (p *Position) FEN() string { return p.board.ToFEN() }

func (p *Position) SideToMove() engine.Color { return engine.Color(p.board.SideToMove()) }

func (p *Position) generate() {
	if p.cached {
		return
	}
	p.native = p.board.GenerateMoves()
	p.legal = make([]engine.Move, len(p.native))
	for i, m := range p.native {
		p.legal[i] = engine.NewMove(engine.Square(m.From()), engine.Square(m.To()), engine.Kind(m.PromotionPieceType()))
	}
	p.cached = true
}

// LegalMoves returns goosemg's generation order. The slice must not be
// modified.
func (p *Position) LegalMoves() []engine.Move {
	p.generate()
	return p.legal
}

func (p *Position) Apply(m engine.Move) func() {
	p.generate()
	idx := -1
	for i, lm := range p.legal {
		if lm == m {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic(fmt.Sprintf("goose: illegal move %v in %s", m, p.board.ToFEN()))
	}

	nm := p.native[idx]
	ok, st := p.board.MakeMove(nm)
	if !ok {
		panic(fmt.Sprintf("goose: MakeMove rejected %v in %s", m, p.board.ToFEN()))
	}
	native, legal := p.native, p.legal
	p.cached = false
	return func() {
		p.board.UnmakeMove(nm, st)
		p.native, p.legal, p.cached = native, legal, true
	}
}

func (p *Position) InCheck() bool { return p.board.InCheck(p.board.SideToMove()) }

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

// CanCastleKingside reads the castling field of the FEN; goosemg keeps the
// rights unexported.
func (p *Position) CanCastleKingside(c engine.Color) bool {
	fields := strings.Fields(p.board.ToFEN())
	if len(fields) < 3 {
		return false
	}
	if c == engine.White {
		return strings.ContainsRune(fields[2], 'K')
	}
	return strings.ContainsRune(fields[2], 'k')
}

func (p *Position) PieceAt(sq engine.Square) engine.Piece {
	pc := p.board.PieceAt(gm.Square(sq))
	if pc == gm.NoPiece {
		return engine.NoPiece
	}
	return engine.Piece{Kind: engine.Kind(pc.Type()), Color: engine.Color(pc.Color())}
}

func kindBitboard(bb gm.Bitboards, k engine.Kind) uint64 {
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

func (p *Position) Pieces(k engine.Kind, c engine.Color) engine.SquareSet {
	return engine.SquareSet(kindBitboard(p.board.Bitboards(gm.Color(c)), k))
}

func (p *Position) attackBoard() (ab attack.Board) {
	for _, c := range [2]gm.Color{gm.White, gm.Black} {
		bb := p.board.Bitboards(c)
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
	return p.InCheck()
}
