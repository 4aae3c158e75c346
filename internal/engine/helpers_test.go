package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/bitchess-go/internal/chess"
)

func sq(s string) chess.Position {
	return chess.MustParseSquare(s)
}

func squares(names ...string) chess.Bitboard {
	var b chess.Bitboard
	for _, n := range names {
		b |= sq(n).Bitboard()
	}
	return b
}

// coordMove builds a move from coordinate notation such as "e2e4" or
// "e7e8q", taking the piece from the board. An empty square yields a pawn
// move for the side to move.
func coordMove(t *testing.T, g *Game, text string) chess.Move {
	t.Helper()
	if len(text) != 4 && len(text) != 5 {
		t.Fatalf("bad move text %q", text)
	}
	from, to := sq(text[:2]), sq(text[2:4])
	m := chess.Move{Kind: chess.Pawn, Team: g.ToMove(), From: from, To: to, Promotion: chess.NoPromotion}
	if team, kind, ok := g.Board.PieceAt(from); ok {
		m.Team, m.Kind = team, kind
	}
	if len(text) == 5 {
		p, err := chess.ParsePieceKind(text[4])
		if err != nil {
			t.Fatalf("bad promotion in %q: %v", text, err)
		}
		m.Promotion = p
	}
	return m
}

// playLine applies space-separated coordinate moves and fails the test on
// the first rejection.
func playLine(t *testing.T, g *Game, line string) {
	t.Helper()
	for i, text := range strings.Fields(line) {
		if err := g.Apply(coordMove(t, g, text)); err != nil {
			t.Fatalf("move %d (%s): %v", i+1, text, err)
		}
	}
}
