package engine

import (
	"github.com/lgbarn/bitchess-go/internal/chess"
)

// evaluateStatus advances the move counter, the fifty-move clock and the
// repetition table after a committed half-move, then decides whether the
// game is over. zeroing is true when the move was a pawn move or capture;
// the clock has already been reset for it.
func (g *Game) evaluateStatus(zeroing bool) {
	g.MoveNumber++

	if zeroing {
		// Earlier arrangements can never recur after an irreversible move.
		clear(g.Repetitions)
	} else {
		if g.FiftyMoveCounter > 0 {
			g.FiftyMoveCounter--
		}
		if g.FiftyMoveCounter == 0 {
			g.Status = chess.DrawByFiftyMoveRule
			return
		}
	}

	snapshot := g.Board.Snapshot()
	g.Repetitions[snapshot]++
	if g.Repetitions[snapshot] >= RepetitionLimit {
		g.Status = chess.DrawByRepetition
		return
	}

	g.Status = teamStatus(&g.Board, g.ToMove(), g.LastPawn)
}

// teamStatus decides whether team, on move, is checkmated or stalemated.
func teamStatus(board *chess.Board, team chess.Team, lastPawn chess.Position) chess.GameStatus {
	if HasLegalMoves(board, team, lastPawn) {
		return chess.Ongoing
	}
	if IsInCheck(board, team) {
		return team.Opposite().WinStatus()
	}
	return chess.DrawByStalemate
}

// IsCheckmate returns true if the side to move is checkmated.
func (g *Game) IsCheckmate() bool {
	team := g.ToMove()
	return IsInCheck(&g.Board, team) && !HasLegalMoves(&g.Board, team, g.LastPawn)
}

// IsStalemate returns true if the side to move has no legal move but is not in check.
func (g *Game) IsStalemate() bool {
	team := g.ToMove()
	return !IsInCheck(&g.Board, team) && !HasLegalMoves(&g.Board, team, g.LastPawn)
}

// HasInsufficientMaterial returns true if neither side can deliver mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same colour bishops)
//
// Status evaluation does not consult it; callers may use it to offer a draw.
func HasInsufficientMaterial(board *chess.Board) bool {
	for _, team := range []chess.Team{chess.White, chess.Black} {
		// Any pawn, rook, or queen means sufficient material
		if board.Count(team, chess.Pawn)+board.Count(team, chess.Rook)+board.Count(team, chess.Queen) > 0 {
			return false
		}
	}

	whiteMinors := board.Count(chess.White, chess.Knight) + board.Count(chess.White, chess.Bishop)
	blackMinors := board.Count(chess.Black, chess.Knight) + board.Count(chess.Black, chess.Bishop)

	switch {
	case whiteMinors == 0 && blackMinors == 0:
		return true
	case whiteMinors+blackMinors == 1:
		return true
	case whiteMinors == 1 && blackMinors == 1:
		whiteBishop := board.Pieces(chess.White, chess.Bishop)
		blackBishop := board.Pieces(chess.Black, chess.Bishop)
		if whiteBishop.Empty() || blackBishop.Empty() {
			return false
		}
		return isLightSquare(whiteBishop.First()) == isLightSquare(blackBishop.First())
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(pos chess.Position) bool {
	return pos.In(chess.LightSquares)
}
