package engine

import (
	"fmt"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/errors"
)

// ApplyMove applies a move and reports whether it was accepted.
// A rejected move leaves the game unchanged.
func (g *Game) ApplyMove(kind chess.PieceKind, team chess.Team, from, to chess.Position, promotion chess.PieceKind) bool {
	return g.Apply(chess.Move{Kind: kind, Team: team, From: from, To: to, Promotion: promotion}) == nil
}

// Apply validates and commits a move, then evaluates the game status.
// On error the game is unchanged; the error wraps one of ErrGameOver,
// ErrWrongTurn, ErrInvalidPiece, ErrNoPiece, ErrIllegalMove or
// ErrInvalidPromotion.
func (g *Game) Apply(m chess.Move) error {
	if err := g.validate(m); err != nil {
		g.tracef("ply %d: %s %s %s rejected: %v\n", g.MoveNumber+1, m.Team, m.Kind, m, err)
		return err
	}

	next := g.Board
	captured := play(&next, m)
	if err := next.Validate(); err != nil {
		panic(fmt.Sprintf("engine: board invariant broken by %s: %v", m, err))
	}

	// Commit
	g.Board = next
	g.LastPawn = lastPawnAfter(m)
	g.updateCastling()

	zeroing := captured || m.Kind == chess.Pawn
	if zeroing {
		g.FiftyMoveCounter = FiftyMoveLimit
	}
	g.evaluateStatus(zeroing)

	g.tracef("ply %d: %s %s %s accepted, status %s\n", g.MoveNumber, m.Team, m.Kind, m, g.Status)
	return nil
}

// validate checks the preconditions of Apply in order.
func (g *Game) validate(m chess.Move) error {
	if g.Status.Terminal() {
		return fmt.Errorf("%s: %w", g.Status, errors.ErrGameOver)
	}
	if !m.Team.Valid() || !m.Kind.Valid() || !m.Promotion.Valid() {
		return fmt.Errorf("%s %s: %w", m.Team, m.Kind, errors.ErrInvalidPiece)
	}
	if !m.From.Valid() || !m.To.Valid() {
		return fmt.Errorf("%s: %w", m, errors.ErrInvalidSquare)
	}
	if m.Team != g.ToMove() {
		return fmt.Errorf("%s to move: %w", g.ToMove(), errors.ErrWrongTurn)
	}
	if !m.From.In(g.Board.Pieces(m.Team, m.Kind)) {
		return fmt.Errorf("%s %s on %s: %w", m.Team, m.Kind, m.From, errors.ErrNoPiece)
	}
	if !g.Moves(m.Kind, m.From, m.Team).Has(m.To) {
		return fmt.Errorf("%s %s: %w", m.Kind, m, errors.ErrIllegalMove)
	}

	promoting := m.Kind == chess.Pawn && m.To.In(PromotionRank(m.Team))
	switch {
	case promoting && !m.Promotion.Promotable():
		return fmt.Errorf("%s to %s: %w", m, m.Promotion, errors.ErrInvalidPromotion)
	case !promoting && m.IsPromotion():
		return fmt.Errorf("%s: promotion off the back rank: %w", m, errors.ErrInvalidPromotion)
	}
	return nil
}

// castleHome lists the king and rook home squares behind each castle flag.
var castleHome = [chess.NumCastleRights]struct {
	team       chess.Team
	king, rook string
}{
	chess.WhiteKingside:  {chess.White, "e1", "h1"},
	chess.WhiteQueenside: {chess.White, "e1", "a1"},
	chess.BlackKingside:  {chess.Black, "e8", "h8"},
	chess.BlackQueenside: {chess.Black, "e8", "a8"},
}

// updateCastling clears every flag whose king or rook has left home.
// Once a piece has moved the flag stays cleared even if it returns.
func (g *Game) updateCastling() {
	for right, home := range castleHome {
		if !g.Castling[right] {
			continue
		}
		king := chess.MustParseSquare(home.king)
		rook := chess.MustParseSquare(home.rook)
		if !king.In(g.Board.Pieces(home.team, chess.King)) || !rook.In(g.Board.Pieces(home.team, chess.Rook)) {
			g.Castling[right] = false
		}
	}
}

func (g *Game) tracef(format string, args ...interface{}) {
	if g.trace != nil {
		fmt.Fprintf(g.trace, format, args...)
	}
}
