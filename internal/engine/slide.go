package engine

import "github.com/lgbarn/bitchess-go/internal/chess"

// slidingMoves casts a ray from pos along each direction. A ray takes every
// empty square, then the first enemy-occupied square as a capture, and stops
// before a friendly piece or the board edge.
func slidingMoves(b *chess.Board, pos chess.Position, team chess.Team, dirs []chess.Direction) chess.Bitboard {
	var out chess.Bitboard
	occupied := b.Occupied()
	own := b.TeamPieces(team)

	for _, d := range dirs {
		cur := pos
		for {
			next, ok := d.Step(cur)
			if !ok {
				break
			}
			if next.In(occupied) {
				if !next.In(own) {
					out |= next.Bitboard()
				}
				break // Blocked
			}
			out |= next.Bitboard()
			cur = next
		}
	}
	return out
}
