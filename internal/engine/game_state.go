package engine

import (
	"io"

	"github.com/lgbarn/bitchess-go/internal/chess"
)

// FiftyMoveLimit is the number of consecutive half-moves without a pawn
// move or capture that ends the game in a draw.
const FiftyMoveLimit = 100

// RepetitionLimit is the number of occurrences of one piece arrangement
// that ends the game in a draw.
const RepetitionLimit = 3

// Game is the authoritative state of one game: the board plus everything
// the rules need to accept moves and decide the outcome.
//
// A Game is not safe for concurrent use; see the session package for a
// locked wrapper.
type Game struct {
	Board chess.Board

	// MoveNumber counts half-moves from 0; even means White to move.
	MoveNumber int

	// FiftyMoveCounter counts down from FiftyMoveLimit and is reset by
	// pawn moves and captures.
	FiftyMoveCounter int

	// Castling flags are maintained but not consulted: castling is not
	// implemented.
	Castling chess.CastleRights

	// LastPawn is the pawn that advanced two squares on the previous
	// half-move, or chess.NoPosition.
	LastPawn chess.Position

	Status chess.GameStatus

	// Repetitions counts occurrences of each piece arrangement since the
	// last pawn move or capture.
	Repetitions map[chess.Snapshot]int

	trace io.Writer
}

// Option configures a Game.
type Option func(*Game)

// WithTrace writes one line per accepted or rejected move to w.
func WithTrace(w io.Writer) Option {
	return func(g *Game) {
		g.trace = w
	}
}

// SetTrace replaces the trace writer; nil disables tracing.
func (g *Game) SetTrace(w io.Writer) {
	g.trace = w
}

// NewGame creates a game at the standard starting position.
func NewGame(opts ...Option) *Game {
	g := &Game{
		Board:            chess.StartingBoard(),
		FiftyMoveCounter: FiftyMoveLimit,
		Castling:         chess.AllCastleRights,
		LastPawn:         chess.NoPosition,
		Status:           chess.Ongoing,
		Repetitions:      make(map[chess.Snapshot]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ToMove returns the team whose turn it is.
func (g *Game) ToMove() chess.Team {
	return chess.TeamToMove(g.MoveNumber)
}

// Clone returns a deep copy of the game, sharing only the trace writer.
func (g *Game) Clone() *Game {
	c := *g
	c.Repetitions = make(map[chess.Snapshot]int, len(g.Repetitions))
	for k, v := range g.Repetitions {
		c.Repetitions[k] = v
	}
	return &c
}

// Moves returns the legal destinations of the piece of the given kind and
// team on pos in the current position.
func (g *Game) Moves(kind chess.PieceKind, pos chess.Position, team chess.Team) chess.Bitboard {
	return Moves(kind, pos, team, &g.Board, g.LastPawn, false)
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return IsInCheck(&g.Board, g.ToMove())
}
