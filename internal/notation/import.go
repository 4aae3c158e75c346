package notation

import (
	"fmt"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/engine"
	"github.com/lgbarn/bitchess-go/internal/errors"
)

// Resolve matches a decoded request against the legal moves of g.
func Resolve(g *engine.Game, r Request) (chess.Move, error) {
	if g.Status.Terminal() {
		return chess.Move{}, fmt.Errorf("%s: %w", g.Status, errors.ErrGameOver)
	}
	if r.Castle != NoCastle {
		return chess.Move{}, fmt.Errorf("castling: %w", errors.ErrUnsupported)
	}

	if r.Coordinate {
		from, _ := chess.NewPosition(r.FromFile, r.FromRank)
		team, kind, ok := g.Board.PieceAt(from)
		if !ok {
			return chess.Move{}, fmt.Errorf("%s is empty: %w", from, errors.ErrNoPiece)
		}
		if kind == chess.King {
			if d := r.To.File() - from.File(); d == 2 || d == -2 {
				return chess.Move{}, fmt.Errorf("castling: %w", errors.ErrUnsupported)
			}
		}
		return chess.Move{Kind: kind, Team: team, From: from, To: r.To, Promotion: r.Promotion}, nil
	}

	var matches []chess.Move
	promotionMissing := false
	for _, m := range g.LegalMoves() {
		if m.Kind != r.Kind || m.To != r.To {
			continue
		}
		if r.FromFile >= 0 && m.From.File() != r.FromFile {
			continue
		}
		if r.FromRank >= 0 && m.From.Rank() != r.FromRank {
			continue
		}
		if m.Promotion != r.Promotion {
			promotionMissing = promotionMissing || !r.Promotion.Promotable()
			continue
		}
		matches = append(matches, m)
	}

	switch {
	case len(matches) == 1:
		return matches[0], nil
	case len(matches) > 1:
		return chess.Move{}, fmt.Errorf("%d candidates: %w", len(matches), errors.ErrAmbiguousMove)
	case promotionMissing:
		return chess.Move{}, fmt.Errorf("promotion piece required: %w", errors.ErrInvalidPromotion)
	}
	return chess.Move{}, fmt.Errorf("%s %s to %s: %w", g.ToMove(), r.Kind, r.To, errors.ErrIllegalMove)
}

// Play decodes, resolves and applies a single move token.
func Play(g *engine.Game, token string) (chess.Move, error) {
	m, err := resolveToken(g, token)
	if err != nil {
		return chess.Move{}, err
	}
	if err := g.Apply(m); err != nil {
		return chess.Move{}, err
	}
	return m, nil
}

func resolveToken(g *engine.Game, token string) (chess.Move, error) {
	r, err := Decode(token)
	if err != nil {
		return chess.Move{}, err
	}
	return Resolve(g, r)
}

// Replay plays every move of a move list onto g, stopping at the first
// failure. The error is a *errors.GameError carrying the ply and token.
func Replay(g *engine.Game, text string) error {
	_, err := replay(g, text, false)
	return err
}

// ReplaySAN is like Replay but also returns the accepted moves in standard
// algebraic notation, whatever notation the list was written in.
func ReplaySAN(g *engine.Game, text string) ([]string, error) {
	return replay(g, text, true)
}

func replay(g *engine.Game, text string, record bool) ([]string, error) {
	var san []string
	for _, token := range Tokens(text) {
		ply := g.MoveNumber + 1
		m, err := resolveToken(g, token)
		if err != nil {
			return san, &errors.GameError{Err: err, PlyNum: ply, MoveText: token}
		}
		var written string
		if record {
			written = Format(g, m)
		}
		if err := g.Apply(m); err != nil {
			return san, &errors.GameError{Err: err, PlyNum: ply, MoveText: token}
		}
		if record {
			san = append(san, written)
		}
	}
	return san, nil
}

// Import replays a move list from the starting position. On failure the
// game is returned as it stood before the offending move.
func Import(text string, opts ...engine.Option) (*engine.Game, error) {
	g := engine.NewGame(opts...)
	return g, Replay(g, text)
}
