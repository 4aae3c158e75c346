package chess

// NoPromotion marks a move without a promotion request.
// Pawn is never a legal promotion target, so it doubles as the sentinel.
const NoPromotion = Pawn

// Move is a request to move one piece.
type Move struct {
	Kind      PieceKind
	Team      Team
	From      Position
	To        Position
	Promotion PieceKind
}

// IsPromotion returns true if the move carries a promotion request.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPromotion
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(Letter(Black, m.Promotion))
	}
	return s
}
