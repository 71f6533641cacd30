// Package ruletest is the conformance suite every rules adapter runs from its
// own tests.
package ruletest

import (
	"sort"
	"testing"

	"golang.org/x/exp/slices"

	"chess-bot/engine"
)

const (
	StartFEN     = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

// NewFunc builds a Position from FEN.
type NewFunc func(fen string) (engine.Position, error)

// Run executes every conformance check against newPos.
func Run(t *testing.T, newPos NewFunc) {
	t.Run("StartPosition", func(t *testing.T) { testStartPosition(t, newPos) })
	t.Run("Perft", func(t *testing.T) { testPerft(t, newPos) })
	t.Run("ApplyUndo", func(t *testing.T) { testApplyUndo(t, newPos) })
	t.Run("Terminal", func(t *testing.T) { testTerminal(t, newPos) })
	t.Run("InsufficientMaterial", func(t *testing.T) { testInsufficientMaterial(t, newPos) })
	t.Run("Attackers", func(t *testing.T) { testAttackers(t, newPos) })
	t.Run("Castling", func(t *testing.T) { testCastling(t, newPos) })
	t.Run("GivesCheck", func(t *testing.T) { testGivesCheck(t, newPos) })
	t.Run("Promotion", func(t *testing.T) { testPromotion(t, newPos) })
	t.Run("Transposition", func(t *testing.T) { testTransposition(t, newPos) })
	t.Run("IllegalApplyPanics", func(t *testing.T) { testIllegalApply(t, newPos) })
	t.Run("BadFEN", func(t *testing.T) {
		if _, err := newPos("not a fen"); err == nil {
			t.Fatalf("expected an error for a malformed FEN")
		}
	})
}

// MustNew fails the test when fen does not parse.
func MustNew(t testing.TB, newPos NewFunc, fen string) engine.Position {
	t.Helper()
	pos, err := newPos(fen)
	if err != nil {
		t.Fatalf("parse %q: %v", fen, err)
	}
	return pos
}

// FindMove returns the legal move written in UCI notation.
func FindMove(t testing.TB, pos engine.Position, uci string) engine.Move {
	t.Helper()
	legal := pos.LegalMoves()
	i := slices.IndexFunc(legal, func(m engine.Move) bool { return m.String() == uci })
	if i < 0 {
		t.Fatalf("move %s is not legal here", uci)
	}
	return legal[i]
}

// SortedMoves returns the legal moves in UCI notation, sorted.
func SortedMoves(pos engine.Position) []string {
	var out []string
	for _, m := range pos.LegalMoves() {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func square(s string) engine.Square {
	sq, ok := engine.ParseSquare(s)
	if !ok {
		panic("bad square " + s)
	}
	return sq
}

func testStartPosition(t *testing.T, newPos NewFunc) {
	pos := MustNew(t, newPos, StartFEN)
	if pos.SideToMove() != engine.White {
		t.Fatalf("side to move = %v, want white", pos.SideToMove())
	}
	if n := len(pos.LegalMoves()); n != 20 {
		t.Fatalf("legal moves = %d, want 20", n)
	}
	if pos.InCheck() || pos.IsCheckmate() || pos.IsStalemate() || pos.IsInsufficientMaterial() {
		t.Fatalf("start position reported as terminal or in check")
	}
	if got := pos.PieceAt(square("e1")); got != (engine.Piece{Kind: engine.King, Color: engine.White}) {
		t.Fatalf("e1 = %+v, want white king", got)
	}
	if got := pos.PieceAt(square("d8")); got != (engine.Piece{Kind: engine.Queen, Color: engine.Black}) {
		t.Fatalf("d8 = %+v, want black queen", got)
	}
	if !pos.PieceAt(square("e4")).Empty() {
		t.Fatalf("e4 should be empty")
	}
	if n := pos.Pieces(engine.Pawn, engine.Black).Count(); n != 8 {
		t.Fatalf("black pawns = %d, want 8", n)
	}
	if !pos.Pieces(engine.Knight, engine.White).Has(square("g1")) {
		t.Fatalf("white knight set misses g1")
	}
	// Every square of rank 3 is covered by a white pawn or knight.
	for f := 0; f < 8; f++ {
		sq := engine.Square(16 + f)
		if !pos.Attacks(engine.White).Has(sq) {
			t.Fatalf("white should attack %v", sq)
		}
	}
}

func perft(pos engine.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := append([]engine.Move(nil), pos.LegalMoves()...)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := pos.Apply(m)
		nodes += perft(pos, depth-1)
		undo()
	}
	return nodes
}

func testPerft(t *testing.T, newPos NewFunc) {
	tests := []struct {
		fen   string
		depth int
		want  uint64
	}{
		{StartFEN, 3, 8902},
		{KiwipeteFEN, 2, 2039},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
	}
	for _, tt := range tests {
		pos := MustNew(t, newPos, tt.fen)
		if got := perft(pos, tt.depth); got != tt.want {
			t.Fatalf("perft(%q, %d) = %d, want %d", tt.fen, tt.depth, got, tt.want)
		}
	}
}

type snapshot struct {
	key    uint64
	stm    engine.Color
	moves  []string
	pieces [64]engine.Piece
}

func snap(pos engine.Position) snapshot {
	s := snapshot{key: pos.Key(), stm: pos.SideToMove(), moves: SortedMoves(pos)}
	for sq := engine.Square(0); sq < 64; sq++ {
		s.pieces[sq] = pos.PieceAt(sq)
	}
	return s
}

func (s snapshot) equal(o snapshot) bool {
	return s.key == o.key && s.stm == o.stm && s.pieces == o.pieces && slices.Equal(s.moves, o.moves)
}

func testApplyUndo(t *testing.T, newPos NewFunc) {
	for _, fen := range []string{StartFEN, KiwipeteFEN, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"} {
		pos := MustNew(t, newPos, fen)
		before := snap(pos)
		for _, m := range append([]engine.Move(nil), pos.LegalMoves()...) {
			undo := pos.Apply(m)
			if pos.SideToMove() == before.stm {
				t.Fatalf("%s: side to move unchanged after %v", fen, m)
			}
			undo()
			if after := snap(pos); !after.equal(before) {
				t.Fatalf("%s: position not restored after %v", fen, m)
			}
		}
	}
}

func testTerminal(t *testing.T, newPos NewFunc) {
	mate := MustNew(t, newPos, FoolsMateFEN)
	if !mate.InCheck() || !mate.IsCheckmate() || mate.IsStalemate() {
		t.Fatalf("fool's mate not detected: check=%v mate=%v stalemate=%v",
			mate.InCheck(), mate.IsCheckmate(), mate.IsStalemate())
	}
	if n := len(mate.LegalMoves()); n != 0 {
		t.Fatalf("mated side has %d moves", n)
	}

	stale := MustNew(t, newPos, StalemateFEN)
	if stale.InCheck() || stale.IsCheckmate() || !stale.IsStalemate() {
		t.Fatalf("stalemate not detected")
	}
}

func testInsufficientMaterial(t *testing.T, newPos NewFunc) {
	tests := []struct {
		fen  string
		want bool
	}{
		{"8/8/4k3/8/8/3K4/8/8 w - - 0 1", true},
		{"8/8/4k3/8/8/3KB3/8/8 w - - 0 1", true},
		{"8/8/4k3/8/8/3KN3/8/8 b - - 0 1", true},
		{"8/8/3bk3/8/8/3KB3/8/8 w - - 0 1", true},
		{"8/8/2b1k3/8/8/3KB3/8/8 w - - 0 1", false},
		{"8/8/2n1k3/8/8/3KN3/8/8 w - - 0 1", false},
		{"8/8/4k3/8/8/3K4/3P4/8 w - - 0 1", false},
		{"8/8/4k3/8/8/3K4/8/7R w - - 0 1", false},
	}
	for _, tt := range tests {
		pos := MustNew(t, newPos, tt.fen)
		if got := pos.IsInsufficientMaterial(); got != tt.want {
			t.Fatalf("IsInsufficientMaterial(%q) = %v, want %v", tt.fen, got, tt.want)
		}
	}
}

func testAttackers(t *testing.T, newPos NewFunc) {
	pos := MustNew(t, newPos, "4k3/8/8/3p4/4P3/2n5/8/R3K2R w KQ - 0 1")
	tests := []struct {
		sq   string
		by   engine.Color
		want int
	}{
		{"d1", engine.Black, 1},
		{"d1", engine.White, 2},
		{"e2", engine.White, 1},
		{"e2", engine.Black, 1},
		{"e4", engine.Black, 2},
		{"d5", engine.White, 1},
		{"f1", engine.White, 2},
		{"h8", engine.White, 1},
		{"a8", engine.White, 1},
		{"e5", engine.White, 0},
	}
	for _, tt := range tests {
		if got := pos.Attackers(square(tt.sq), tt.by); got != tt.want {
			t.Fatalf("Attackers(%s, %v) = %d, want %d", tt.sq, tt.by, got, tt.want)
		}
		if got := pos.Attacks(tt.by).Has(square(tt.sq)); got != (tt.want > 0) {
			t.Fatalf("Attacks(%v).Has(%s) = %v", tt.by, tt.sq, got)
		}
	}
}

func testCastling(t *testing.T, newPos NewFunc) {
	pos := MustNew(t, newPos, "r3k2r/8/8/8/8/8/8/R3K2R w Qk - 0 1")
	if pos.CanCastleKingside(engine.White) {
		t.Fatalf("white kingside right should be gone")
	}
	if !pos.CanCastleKingside(engine.Black) {
		t.Fatalf("black kingside right should remain")
	}

	pos = MustNew(t, newPos, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	undo := pos.Apply(FindMove(t, pos, "h1h8"))
	if pos.CanCastleKingside(engine.White) || pos.CanCastleKingside(engine.Black) {
		t.Fatalf("rook trade on h8 should clear both kingside rights")
	}
	undo()
	if !pos.CanCastleKingside(engine.White) || !pos.CanCastleKingside(engine.Black) {
		t.Fatalf("undo should restore the kingside rights")
	}
}

func testGivesCheck(t *testing.T, newPos NewFunc) {
	pos := MustNew(t, newPos, "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	before := snap(pos)
	if !pos.GivesCheck(FindMove(t, pos, "a1a8")) {
		t.Fatalf("a1a8 should give check")
	}
	if pos.GivesCheck(FindMove(t, pos, "a1a2")) {
		t.Fatalf("a1a2 should not give check")
	}
	if !snap(pos).equal(before) {
		t.Fatalf("GivesCheck changed the position")
	}
}

func testPromotion(t *testing.T, newPos NewFunc) {
	pos := MustNew(t, newPos, "8/P6k/8/8/8/8/8/K7 w - - 0 1")
	moves := SortedMoves(pos)
	for _, want := range []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"} {
		if !slices.Contains(moves, want) {
			t.Fatalf("missing promotion %s in %v", want, moves)
		}
	}
	undo := pos.Apply(FindMove(t, pos, "a7a8n"))
	if got := pos.PieceAt(square("a8")); got != (engine.Piece{Kind: engine.Knight, Color: engine.White}) {
		t.Fatalf("a8 = %+v after underpromotion", got)
	}
	undo()
	if got := pos.PieceAt(square("a7")); got.Kind != engine.Pawn {
		t.Fatalf("a7 = %+v after undo", got)
	}
}

func testTransposition(t *testing.T, newPos NewFunc) {
	play := func(line ...string) uint64 {
		pos := MustNew(t, newPos, StartFEN)
		for _, uci := range line {
			pos.Apply(FindMove(t, pos, uci))
		}
		return pos.Key()
	}
	a := play("g1f3", "g8f6", "b1c3")
	b := play("b1c3", "g8f6", "g1f3")
	c := play("b1c3", "g8f6", "g1h3")
	if a != b {
		t.Fatalf("transposed lines have different keys")
	}
	if a == c {
		t.Fatalf("different positions share a key")
	}

	// Pawn moves reset the halfmove clock at different points in each line.
	d := play("e2e3", "e7e6", "g1f3", "b8c6")
	e := play("g1f3", "b8c6", "e2e3", "e7e6")
	if d != e {
		t.Fatalf("transposed lines with pawn moves have different keys")
	}
}

func testIllegalApply(t *testing.T, newPos NewFunc) {
	pos := MustNew(t, newPos, StartFEN)
	defer func() {
		if recover() == nil {
			t.Fatalf("applying e2e5 should panic")
		}
	}()
	pos.Apply(engine.NewMove(square("e2"), square("e5"), engine.NoKind))
}
