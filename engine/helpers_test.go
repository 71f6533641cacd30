package engine_test

import (
	"strings"
	"testing"

	"chess-bot/engine"
	"chess-bot/rules/dragon"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func position(t testing.TB, fen string) engine.Position {
	t.Helper()
	pos, err := dragon.New(fen)
	if err != nil {
		t.Fatalf("parse %q: %v", fen, err)
	}
	return pos
}

func square(s string) engine.Square {
	sq, ok := engine.ParseSquare(s)
	if !ok {
		panic("bad square " + s)
	}
	return sq
}

func findMove(t testing.TB, pos engine.Position, uci string) engine.Move {
	t.Helper()
	for _, m := range pos.LegalMoves() {
		if m.String() == uci {
			return m
		}
	}
	t.Fatalf("%s is not legal", uci)
	return engine.NullMove
}

// mirrorFEN reflects the board across the horizontal midline, swaps colors
// and hands the move to the other side.
func mirrorFEN(fen string) string {
	f := strings.Fields(fen)
	ranks := strings.Split(f[0], "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	f[0] = swapCase(strings.Join(ranks, "/"))

	if f[1] == "w" {
		f[1] = "b"
	} else {
		f[1] = "w"
	}
	if f[2] != "-" {
		c := swapCase(f[2])
		var order strings.Builder
		for _, r := range "KQkq" {
			if strings.ContainsRune(c, r) {
				order.WriteRune(r)
			}
		}
		f[2] = order.String()
	}
	if f[3] != "-" {
		rank := byte('1' + '8' - f[3][1])
		f[3] = string([]byte{f[3][0], rank})
	}
	return strings.Join(f, " ")
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z':
			return r - 'A' + 'a'
		}
		return r
	}, s)
}
