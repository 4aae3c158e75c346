package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// castleLetters maps FEN castling letters to flags.
var castleLetters = map[rune]chess.CastleRight{
	'K': chess.WhiteKingside,
	'Q': chess.WhiteQueenside,
	'k': chess.BlackKingside,
	'q': chess.BlackQueenside,
}

// NewGameFromFEN creates a game from a FEN string. Only the placement field
// is required; missing fields take their starting-position defaults.
//
// The halfmove clock h becomes a fifty-move counter of 100-h, the fullmove
// number n becomes the half-move count 2(n-1), plus one with Black to move,
// and the en passant square names the pawn that just double-stepped.
func NewGameFromFEN(fen string, opts ...Option) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return nil, fmt.Errorf("%d fields: %w", len(parts), errors.ErrInvalidFEN)
	}

	g := NewGame(opts...)
	g.Board = chess.Board{}
	g.Castling = chess.CastleRights{}

	if err := parsePlacement(&g.Board, parts[0]); err != nil {
		return nil, err
	}

	toMove := chess.White
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
		case "b":
			toMove = chess.Black
		default:
			return nil, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
		}
	}

	castling := "KQkq"
	if len(parts) >= 3 {
		castling = parts[2]
	}
	if err := parseCastling(g, castling); err != nil {
		return nil, err
	}

	if len(parts) >= 4 {
		if err := parseEnPassant(g, parts[3], toMove); err != nil {
			return nil, err
		}
	}

	halfmove, fullmove := 0, 1
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		halfmove = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		fullmove = n
	}
	g.FiftyMoveCounter = FiftyMoveLimit - min(halfmove, FiftyMoveLimit)
	g.MoveNumber = 2*(fullmove-1) + int(toMove)

	if err := checkPosition(&g.Board, toMove); err != nil {
		return nil, err
	}

	g.updateCastling()
	if g.FiftyMoveCounter == 0 {
		g.Status = chess.DrawByFiftyMoveRule
	} else {
		g.Status = teamStatus(&g.Board, toMove, g.LastPawn)
	}
	return g, nil
}

// MustFEN is NewGameFromFEN for known-good input; it panics on error.
func MustFEN(fen string, opts ...Option) *Game {
	g, err := NewGameFromFEN(fen, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// parsePlacement parses the piece placement field.
func parsePlacement(board *chess.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in placement: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind, err := chess.ParsePieceKind(byte(c))
			if err != nil || c > unicode.MaxASCII {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			pos, err := chess.NewPosition(file, rank)
			if err != nil {
				return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
			}
			team := chess.White
			if unicode.IsLower(c) {
				team = chess.Black
			}
			board.Place(team, kind, pos)
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseCastling parses the castling availability field.
func parseCastling(g *Game, field string) error {
	if field == "-" {
		return nil
	}
	for _, c := range field {
		right, ok := castleLetters[c]
		if !ok {
			return fmt.Errorf("invalid castling letter: %c: %w", c, errors.ErrInvalidFEN)
		}
		g.Castling[right] = true
	}
	return nil
}

// parseEnPassant maps the en passant target square to the pawn standing in
// front of it, which must belong to the side that just moved.
func parseEnPassant(g *Game, field string, toMove chess.Team) error {
	if field == "-" {
		return nil
	}
	target, err := chess.ParseSquare(field)
	if err != nil {
		return fmt.Errorf("en passant square %s: %w", field, errors.ErrInvalidFEN)
	}
	mover := toMove.Opposite()
	pawn, ok := mover.Forward().Step(target)
	if !ok || !pawn.In(g.Board.Pieces(mover, chess.Pawn)) || target.In(g.Board.Occupied()) {
		return fmt.Errorf("en passant square %s has no pawn in front: %w", field, errors.ErrInvalidFEN)
	}
	g.LastPawn = pawn
	return nil
}

// checkPosition rejects placements no game can reach.
func checkPosition(board *chess.Board, toMove chess.Team) error {
	for _, team := range []chess.Team{chess.White, chess.Black} {
		if n := board.Count(team, chess.King); n != 1 {
			return fmt.Errorf("%s has %d kings: %w", team, n, errors.ErrInvalidFEN)
		}
		if board.Pieces(team, chess.Pawn)&(chess.Rank1|chess.Rank8) != 0 {
			return fmt.Errorf("%s pawn on a back rank: %w", team, errors.ErrInvalidFEN)
		}
	}
	if IsInCheck(board, toMove.Opposite()) {
		return fmt.Errorf("%s is in check but not on move: %w", toMove.Opposite(), errors.ErrInvalidFEN)
	}
	return nil
}

// FEN returns the game's position as a FEN string.
func (g *Game) FEN() string {
	var sb strings.Builder

	writePlacement(&sb, &g.Board)
	if g.ToMove() == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(g.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(g.enPassantSquare().String())
	fmt.Fprintf(&sb, " %d %d", FiftyMoveLimit-g.FiftyMoveCounter, g.MoveNumber/2+1)

	return sb.String()
}

// enPassantSquare returns the square behind LastPawn, or chess.NoPosition.
func (g *Game) enPassantSquare() chess.Position {
	if !g.LastPawn.Valid() {
		return chess.NoPosition
	}
	mover := g.ToMove().Opposite()
	if sq, ok := mover.Forward().Opposite().Step(g.LastPawn); ok {
		return sq
	}
	return chess.NoPosition
}

// writePlacement writes the piece placement field to the builder.
func writePlacement(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			pos, _ := chess.NewPosition(file, rank)
			team, kind, ok := board.PieceAt(pos)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(chess.Letter(team, kind))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
