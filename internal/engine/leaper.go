package engine

import "github.com/lgbarn/bitchess-go/internal/chess"

// leaperMoves applies each fixed offset to pos and keeps the on-board squares
// not held by the moving team. Enemy-occupied squares stay as captures.
func leaperMoves(b *chess.Board, pos chess.Position, team chess.Team, offsets []chess.Offset) chess.Bitboard {
	return leaperReach(pos, offsets) &^ b.TeamPieces(team)
}

// leaperReach returns every on-board square one offset away from pos.
func leaperReach(pos chess.Position, offsets []chess.Offset) chess.Bitboard {
	var out chess.Bitboard
	for _, o := range offsets {
		if to, ok := o.Apply(pos); ok {
			out |= to.Bitboard()
		}
	}
	return out
}
