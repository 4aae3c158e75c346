package engine

import "github.com/lgbarn/bitchess-go/internal/chess"

// promotionKinds are the pieces a pawn may become, strongest first.
var promotionKinds = []chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// HasLegalMoves returns true if the given team has at least one legal move.
// The king is tried first since it is the cheapest way out of most positions.
func HasLegalMoves(board *chess.Board, team chess.Team, lastPawn chess.Position) bool {
	if king := board.King(team); king.Valid() {
		if !Moves(chess.King, king, team, board, lastPawn, false).Empty() {
			return true
		}
	}

	for _, kind := range chess.Kinds[:chess.King] {
		for _, from := range board.Pieces(team, kind).Positions() {
			if !Moves(kind, from, team, board, lastPawn, false).Empty() {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns every legal move for team, ordered by piece kind, then
// source square, then destination. A pawn reaching the back rank appears
// once per promotion kind.
func LegalMoves(board *chess.Board, team chess.Team, lastPawn chess.Position) []chess.Move {
	var moves []chess.Move
	for _, kind := range chess.Kinds {
		for _, from := range board.Pieces(team, kind).Positions() {
			targets := Moves(kind, from, team, board, lastPawn, false)
			for _, to := range targets.Positions() {
				m := chess.Move{Kind: kind, Team: team, From: from, To: to, Promotion: chess.NoPromotion}
				if kind == chess.Pawn && to.In(PromotionRank(team)) {
					for _, p := range promotionKinds {
						m.Promotion = p
						moves = append(moves, m)
					}
					continue
				}
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// LegalMoves returns every legal move for the side to move.
// A finished game has none.
func (g *Game) LegalMoves() []chess.Move {
	if g.Status.Terminal() {
		return nil
	}
	return LegalMoves(&g.Board, g.ToMove(), g.LastPawn)
}
