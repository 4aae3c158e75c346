package engine

import "github.com/lgbarn/bitchess-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Only move generation is exercised: draws by repetition or the fifty-move
// rule do not cut the tree.
func (g *Game) Perft(depth int) uint64 {
	return perft(&g.Board, g.ToMove(), g.LastPawn, depth)
}

// Divide returns the perft count below each legal root move, keyed by the
// move's coordinate notation.
func (g *Game) Divide(depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth < 1 {
		return out
	}
	team := g.ToMove()
	for _, m := range LegalMoves(&g.Board, team, g.LastPawn) {
		next := g.Board
		play(&next, m)
		out[m.String()] += perft(&next, team.Opposite(), lastPawnAfter(m), depth-1)
	}
	return out
}

func perft(board *chess.Board, team chess.Team, lastPawn chess.Position, depth int) uint64 {
	if depth < 1 {
		return 1
	}
	moves := LegalMoves(board, team, lastPawn)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		next := *board
		play(&next, m)
		nodes += perft(&next, team.Opposite(), lastPawnAfter(m), depth-1)
	}
	return nodes
}

// lastPawnAfter returns the LastPawn value that follows m.
func lastPawnAfter(m chess.Move) chess.Position {
	if m.Kind == chess.Pawn && isDoubleStep(m.From, m.To) {
		return m.To
	}
	return chess.NoPosition
}
