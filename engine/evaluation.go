package engine

// =============================================================================
// EVALUATION WEIGHTS
// =============================================================================
var (
	HangingPenalty       = 0.7
	HangingQueenPenalty  = 1.5
	DefendedBonus        = 0.5
	KingAttackedPenalty  = 8.0
	TargetPressureFactor = 0.5
	PawnCountPenalty     = 0.2
	BadPlacementPenalty  = 10.0
	CenterBonus          = 10.0
	UndevelopedPenalty   = 5.0
	KingsideCastleBonus  = 2.0
	InCheckPenalty       = 3.0
)

// Occupied center: c4-f4 and c5-f5.
var centerSquares = [...]Square{26, 27, 28, 29, 34, 35, 36, 37}

// Home squares of the minor pieces in White's frame: b1 g1 knights, c1 f1 bishops.
var minorHomeBB = SquareSet(1<<1 | 1<<6 | 1<<2 | 1<<5)

// Terms is the evaluation split by heuristic, all from White's point of view.
type Terms struct {
	Material    float64
	Positional  float64
	Placement   float64
	PawnCount   float64
	Safety      float64
	Pressure    float64
	Center      float64
	Development float64
	Castling    float64
	Check       float64
}

// Total sums the terms in a fixed order.
func (t Terms) Total() float64 {
	return t.Material + t.Positional + t.Placement + t.PawnCount + t.Safety +
		t.Pressure + t.Center + t.Development + t.Castling + t.Check
}

// Evaluate scores pos from White's point of view. Mate is reported as a
// sentinel for the side not to move; stalemate and dead draws are exactly 0.
func Evaluate(pos Position) Score {
	if s, ok := terminalScore(pos); ok {
		return s
	}
	return ValueScore(EvaluateTerms(pos).Total())
}

func terminalScore(pos Position) (Score, bool) {
	if pos.IsCheckmate() {
		return MateScore(pos.SideToMove().Other(), 0), true
	}
	if pos.IsStalemate() || pos.IsInsufficientMaterial() {
		return ValueScore(0), true
	}
	return Score{}, false
}

// EvaluateTerms computes the heuristic breakdown without terminal detection.
func EvaluateTerms(pos Position) (t Terms) {
	for _, c := range [2]Color{White, Black} {
		s := sign(c)
		for k := Pawn; k <= King; k++ {
			p := Piece{Kind: k, Color: c}
			set := pos.Pieces(k, c)
			t.Material += s * pieceValue[k] * float64(set.Count())
			if k == Pawn {
				t.PawnCount -= s * PawnCountPenalty * float64(set.Count())
			}
			for _, sq := range set.Squares() {
				pv := positional(p, sq)
				t.Positional += s * pv
				if pv < 0 && (k == Knight || k == Bishop || k == Rook) {
					t.Placement -= s * BadPlacementPenalty
				}
				t.Safety += s * pieceSafety(pos, p, sq, pieceValue[k]+pv)
				if (k == Knight || k == Bishop) && minorHomeBB.Has(relativeSquare(sq, c)) {
					t.Development -= s * UndevelopedPenalty
				}
			}
		}
		if pos.CanCastleKingside(c) {
			t.Castling += s * KingsideCastleBonus
		}
	}

	for _, sq := range centerSquares {
		if p := pos.PieceAt(sq); !p.Empty() {
			t.Center += sign(p.Color) * CenterBonus
		}
	}

	stm := pos.SideToMove()
	t.Pressure = sign(stm) * targetPressure(pos, stm)
	if pos.InCheck() {
		t.Check = -sign(stm) * InCheckPenalty
	}
	return t
}

// pieceSafety is the owner-relative adjustment for one piece worth `worth`.
func pieceSafety(pos Position, p Piece, sq Square, worth float64) (score float64) {
	attackers := pos.Attackers(sq, p.Color.Other())
	defenders := pos.Attackers(sq, p.Color)

	switch {
	case attackers > defenders:
		if p.Kind == Queen {
			score -= worth * HangingQueenPenalty
		} else {
			score -= worth * HangingPenalty
		}
	case defenders > attackers:
		score += worth * DefendedBonus
	}
	if p.Kind == King && attackers > 0 {
		score -= KingAttackedPenalty * worth
	}
	return score
}

// targetPressure sums a fraction of every enemy piece the side to move can
// capture right now. Captures are not resolved.
func targetPressure(pos Position, stm Color) (pressure float64) {
	for _, m := range pos.LegalMoves() {
		victim := pos.PieceAt(m.To())
		if !victim.Empty() && victim.Color != stm {
			pressure += TargetPressureFactor * pieceValue[victim.Kind]
		}
	}
	return pressure
}
