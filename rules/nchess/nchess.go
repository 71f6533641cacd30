// Package nchess adapts github.com/notnil/chess to engine.Position. notnil
// positions are immutable, so the adapter keeps a stack of them: Apply pushes
// the successor and undo pops it.
package nchess

import (
	"fmt"

	"github.com/notnil/chess"

	"chess-bot/engine"
	"chess-bot/rules/attack"
)

// frame caches what has been derived from one immutable position.
type frame struct {
	pos *chess.Position

	native []*chess.Move
	legal  []engine.Move
	board  *attack.Board
	key    uint64
	keyed  bool
}

type Position struct {
	stack []*frame
}

func New(fen string) (*Position, error) {
	pos := &chess.Position{}
	if err := pos.UnmarshalText([]byte(fen)); err != nil {
		return nil, fmt.Errorf("nchess: parse %q: %w", fen, err)
	}
	return &Position{stack: []*frame{{pos: pos}}}, nil
}

func (p *Position) top() *frame { return p.stack[len(p.stack)-1] }

// Current returns the notnil position at the top of the stack.
func (p *Position) Current() *chess.Position { return p.top().pos }

func (p *Position) FEN() string { return p.top().pos.String() }

func toColor(c chess.Color) engine.Color {
	if c == chess.Black {
		return engine.Black
	}
	return engine.White
}

func fromColor(c engine.Color) chess.Color {
	if c == engine.Black {
		return chess.Black
	}
	return chess.White
}

// notnil numbers kinds King=1 .. Pawn=6.
var toKind = [...]engine.Kind{
	chess.NoPieceType: engine.NoKind,
	chess.King:        engine.King,
	chess.Queen:       engine.Queen,
	chess.Rook:        engine.Rook,
	chess.Bishop:      engine.Bishop,
	chess.Knight:      engine.Knight,
	chess.Pawn:        engine.Pawn,
}

func (p *Position) SideToMove() engine.Color { return toColor(p.top().pos.Turn()) }

func (f *frame) generate() {
	if f.legal != nil {
		return
	}
	f.native = f.pos.ValidMoves()
	f.legal = make([]engine.Move, len(f.native))
	for i, m := range f.native {
		f.legal[i] = engine.NewMove(engine.Square(m.S1()), engine.Square(m.S2()), toKind[m.Promo()])
	}
}

func (f *frame) attackBoard() *attack.Board {
	if f.board != nil {
		return f.board
	}
	f.board = &attack.Board{}
	b := f.pos.Board()
	for sq := 0; sq < 64; sq++ {
		pc := b.Piece(chess.Square(sq))
		if pc == chess.NoPiece {
			continue
		}
		f.board.Set(int(toColor(pc.Color())), int(toKind[pc.Type()]), uint8(sq))
	}
	return f.board
}

// LegalMoves returns notnil's ValidMoves order. The slice must not be
// modified.
func (p *Position) LegalMoves() []engine.Move {
	f := p.top()
	f.generate()
	return f.legal
}

func (p *Position) Apply(m engine.Move) func() {
	f := p.top()
	f.generate()
	for i, lm := range f.legal {
		if lm == m {
			depth := len(p.stack)
			p.stack = append(p.stack, &frame{pos: f.pos.Update(f.native[i])})
			return func() { p.stack = p.stack[:depth] }
		}
	}
	panic(fmt.Sprintf("nchess: illegal move %v in %s", m, f.pos))
}

func (p *Position) InCheck() bool {
	c := p.SideToMove()
	ab := p.top().attackBoard()
	king := ab.Pieces[c][attack.King]
	return king&ab.Attacks(int(c.Other())) != 0
}

func (p *Position) IsCheckmate() bool {
	return p.top().pos.Status() == chess.Checkmate
}

func (p *Position) IsStalemate() bool {
	return p.top().pos.Status() == chess.Stalemate
}

func (p *Position) IsInsufficientMaterial() bool {
	return p.top().attackBoard().InsufficientMaterial()
}

func (p *Position) CanCastleKingside(c engine.Color) bool {
	return p.top().pos.CastleRights().CanCastle(fromColor(c), chess.KingSide)
}

func (p *Position) PieceAt(sq engine.Square) engine.Piece {
	pc := p.top().pos.Board().Piece(chess.Square(sq))
	if pc == chess.NoPiece {
		return engine.NoPiece
	}
	return engine.Piece{Kind: toKind[pc.Type()], Color: toColor(pc.Color())}
}

func (p *Position) Pieces(k engine.Kind, c engine.Color) engine.SquareSet {
	return engine.SquareSet(p.top().attackBoard().Pieces[c][k])
}

func (p *Position) Attackers(sq engine.Square, c engine.Color) int {
	return p.top().attackBoard().CountAttackers(uint8(sq), int(c))
}

func (p *Position) Attacks(c engine.Color) engine.SquareSet {
	return engine.SquareSet(p.top().attackBoard().Attacks(int(c)))
}

// Key is a Zobrist key over pieces, side to move, castling rights and the en
// passant file. notnil's own Hash covers the move clocks as well.
func (p *Position) Key() uint64 {
	f := p.top()
	if !f.keyed {
		f.key, f.keyed = f.zobrist(), true
	}
	return f.key
}

// GivesCheck uses the check tag notnil puts on every generated move.
func (p *Position) GivesCheck(m engine.Move) bool {
	f := p.top()
	f.generate()
	for i, lm := range f.legal {
		if lm == m {
			return f.native[i].HasTag(chess.Check)
		}
	}
	return false
}
