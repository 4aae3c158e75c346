package engine

import "github.com/lgbarn/bitchess-go/internal/chess"

// pawnStartRank returns the rank a team's pawns may double-step from.
func pawnStartRank(team chess.Team) chess.Bitboard {
	if team == chess.White {
		return chess.Rank2
	}
	return chess.Rank7
}

// PromotionRank returns the opponent's back rank for the team.
func PromotionRank(team chess.Team) chess.Bitboard {
	if team == chess.White {
		return chess.Rank8
	}
	return chess.Rank1
}

// pawnCaptureDirections returns the two forward diagonals for the team.
func pawnCaptureDirections(team chess.Team) [2]chess.Direction {
	if team == chess.White {
		return [2]chess.Direction{chess.NorthWest, chess.NorthEast}
	}
	return [2]chess.Direction{chess.SouthWest, chess.SouthEast}
}

// pawnMoves generates pushes, captures and en passant for a pawn.
func pawnMoves(b *chess.Board, pos chess.Position, team chess.Team, lastPawn chess.Position) chess.Bitboard {
	var out chess.Bitboard
	occupied := b.Occupied()
	forward := team.Forward()

	// Forward move
	if one, ok := forward.Step(pos); ok && !one.In(occupied) {
		out |= one.Bitboard()

		// Double push from starting rank
		if pos.In(pawnStartRank(team)) {
			if two, ok := forward.Step(one); ok && !two.In(occupied) {
				out |= two.Bitboard()
			}
		}
	}

	// Captures
	out |= pawnAttacks(pos, team) & b.TeamPieces(team.Opposite())

	// En passant
	if target := enPassantTarget(b, pos, team, lastPawn); target != chess.NoPosition {
		out |= target.Bitboard()
	}
	return out
}

// pawnAttacks returns the diagonal squares a pawn on pos attacks.
func pawnAttacks(pos chess.Position, team chess.Team) chess.Bitboard {
	var out chess.Bitboard
	for _, d := range pawnCaptureDirections(team) {
		if to, ok := d.Step(pos); ok {
			out |= to.Bitboard()
		}
	}
	return out
}

// enPassantTarget returns the square a pawn on pos may capture onto en
// passant, or chess.NoPosition. lastPawn must hold an enemy pawn that has
// just advanced two squares and stands beside pos on the same rank; the
// destination is the square behind it along team's forward direction.
func enPassantTarget(b *chess.Board, pos chess.Position, team chess.Team, lastPawn chess.Position) chess.Position {
	if !lastPawn.Valid() || !lastPawn.In(b.Pieces(team.Opposite(), chess.Pawn)) {
		return chess.NoPosition
	}
	for _, side := range []chess.Direction{chess.West, chess.East} {
		adjacent, ok := side.Step(pos)
		if !ok || adjacent != lastPawn {
			continue
		}
		target, ok := team.Forward().Step(lastPawn)
		if ok && !target.In(b.Occupied()) {
			return target
		}
	}
	return chess.NoPosition
}

// isDoubleStep reports whether a pawn move advanced two ranks.
func isDoubleStep(from, to chess.Position) bool {
	d := from.Rank() - to.Rank()
	return from.File() == to.File() && (d == 2 || d == -2)
}
