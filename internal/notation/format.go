package notation

import (
	"strings"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/engine"
)

// Format returns the standard algebraic notation of m, which must be legal
// in g. The source is disambiguated by file, then rank, then both, and the
// text ends in '+' or '#' when the move checks or mates.
func Format(g *engine.Game, m chess.Move) string {
	var sb strings.Builder

	captures := m.To.In(g.Board.TeamPieces(m.Team.Opposite()))
	if m.Kind == chess.Pawn {
		if m.From.File() != m.To.File() {
			// Diagonal pawn moves always capture, en passant included.
			sb.WriteByte(m.From.String()[0])
			captures = true
		}
	} else {
		sb.WriteByte(m.Kind.Letter())
		sb.WriteString(disambiguation(g, m))
	}

	if captures {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(m.Promotion.Letter())
	}

	probe := g.Clone()
	probe.SetTrace(nil)
	if probe.Apply(m) == nil && probe.InCheck() {
		if probe.IsCheckmate() {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('+')
		}
	}
	return sb.String()
}

// disambiguation returns the source file, rank or square needed to tell m
// apart from other moves of the same kind to the same square.
func disambiguation(g *engine.Game, m chess.Move) string {
	var rivals []chess.Position
	for _, other := range g.LegalMoves() {
		if other.Kind == m.Kind && other.To == m.To && other.From != m.From {
			rivals = append(rivals, other.From)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, from := range rivals {
		sameFile = sameFile || from.File() == m.From.File()
		sameRank = sameRank || from.Rank() == m.From.Rank()
	}
	from := m.From.String()
	switch {
	case !sameFile:
		return from[:1]
	case !sameRank:
		return from[1:]
	}
	return from
}
