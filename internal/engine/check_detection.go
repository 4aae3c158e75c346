package engine

import "github.com/lgbarn/bitchess-go/internal/chess"

// IsInCheck returns true if the given team's king is attacked.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, team chess.Team) bool {
	king := board.King(team)
	if !king.Valid() {
		return false
	}
	return IsAttacked(board, king, team)
}

// IsAttacked returns true if pos is attacked by the opponent of defender.
//
// Every non-king piece of the attacking team is asked, with check filtering
// off, whether it reaches pos; pawns only count their capture diagonals.
// The attacking king is tested last by adjacency alone, so attack detection
// never generates king moves.
func IsAttacked(board *chess.Board, pos chess.Position, defender chess.Team) bool {
	attacker := defender.Opposite()
	for _, kind := range chess.Kinds {
		for _, from := range board.Pieces(attacker, kind).Positions() {
			if attackReach(board, kind, from, attacker).Has(pos) {
				return true
			}
		}
	}
	return false
}

// Attackers returns the squares of every attacking piece that reaches pos.
func Attackers(board *chess.Board, pos chess.Position, defender chess.Team) chess.Bitboard {
	var out chess.Bitboard
	attacker := defender.Opposite()
	for _, kind := range chess.Kinds {
		for _, from := range board.Pieces(attacker, kind).Positions() {
			if attackReach(board, kind, from, attacker).Has(pos) {
				out |= from.Bitboard()
			}
		}
	}
	return out
}

// attackReach returns the squares a piece on from could capture on.
func attackReach(board *chess.Board, kind chess.PieceKind, from chess.Position, team chess.Team) chess.Bitboard {
	switch kind {
	case chess.Pawn:
		return pawnAttacks(from, team)
	case chess.King:
		return leaperReach(from, chess.KingOffsets)
	}
	return Moves(kind, from, team, board, chess.NoPosition, true)
}
