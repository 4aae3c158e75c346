// Package engine provides move generation, move application and game status
// evaluation on top of the bitboard model.
package engine

import (
	"fmt"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/errors"
)

// Moves returns the squares the piece of the given kind and team standing on
// pos can move to. lastPawn is the enemy pawn that just advanced two squares
// (chess.NoPosition if none) and only matters for en passant.
//
// Unless ignoreCheck is set, every candidate is probed on a copy of the board
// and dropped if it would leave the mover's own king attacked. Attack
// detection itself always runs with ignoreCheck set.
//
// Out-of-range input yields an empty set; use MovesChecked to get an error.
func Moves(kind chess.PieceKind, pos chess.Position, team chess.Team, board *chess.Board, lastPawn chess.Position, ignoreCheck bool) chess.Bitboard {
	if !kind.Valid() || !team.Valid() || !pos.Valid() {
		return 0
	}

	var targets chess.Bitboard
	switch kind {
	case chess.Pawn:
		targets = pawnMoves(board, pos, team, lastPawn)
	case chess.Knight:
		targets = leaperMoves(board, pos, team, chess.KnightOffsets)
	case chess.Bishop:
		targets = slidingMoves(board, pos, team, chess.Diagonals)
	case chess.Rook:
		targets = slidingMoves(board, pos, team, chess.Orthogonals)
	case chess.Queen:
		targets = slidingMoves(board, pos, team, chess.Diagonals) |
			slidingMoves(board, pos, team, chess.Orthogonals)
	case chess.King:
		targets = leaperMoves(board, pos, team, chess.KingOffsets)
	}

	if ignoreCheck {
		return targets
	}
	return filterSelfCheck(board, kind, pos, team, targets)
}

// MovesChecked is Moves with explicit validation of its input.
func MovesChecked(kind chess.PieceKind, pos chess.Position, team chess.Team, board *chess.Board, lastPawn chess.Position, ignoreCheck bool) (chess.Bitboard, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("piece kind %d: %w", kind, errors.ErrInvalidPiece)
	}
	if !team.Valid() {
		return 0, fmt.Errorf("team %d: %w", team, errors.ErrInvalidPiece)
	}
	if !pos.Valid() {
		return 0, fmt.Errorf("position %#x: %w", uint64(pos), errors.ErrInvalidSquare)
	}
	return Moves(kind, pos, team, board, lastPawn, ignoreCheck), nil
}

// filterSelfCheck keeps the targets that do not leave team's king attacked.
func filterSelfCheck(board *chess.Board, kind chess.PieceKind, from chess.Position, team chess.Team, targets chess.Bitboard) chess.Bitboard {
	var legal chess.Bitboard
	for _, to := range targets.Positions() {
		probe := *board
		play(&probe, chess.Move{Kind: kind, Team: team, From: from, To: to, Promotion: chess.NoPromotion})
		if !IsInCheck(&probe, team) {
			legal |= to.Bitboard()
		}
	}
	return legal
}

// play moves a piece on b, removing whatever it captures, including a pawn
// taken en passant, and replacing a promoting pawn. It reports whether
// anything was captured. No legality checks are made.
func play(b *chess.Board, m chess.Move) bool {
	enemy := m.Team.Opposite()
	_, captured := b.Capture(enemy, m.To)

	if m.Kind == chess.Pawn && !captured && m.From.File() != m.To.File() {
		// A diagonal pawn step onto an empty square is en passant: the
		// victim sits behind the destination.
		if victim, ok := m.Team.Forward().Opposite().Step(m.To); ok {
			_, captured = b.Capture(enemy, victim)
		}
	}

	if m.Kind == chess.Pawn && m.IsPromotion() {
		b.Remove(m.Team, chess.Pawn, m.From)
		b.Place(m.Team, m.Promotion, m.To)
	} else {
		b.Relocate(m.Team, m.Kind, m.From, m.To)
	}
	return captured
}
