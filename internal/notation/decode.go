// Package notation reads and writes moves in algebraic notation and replays
// move lists onto a game.
package notation

import (
	"strings"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/errors"
)

// Castle identifies a castling token.
type Castle int

const (
	NoCastle Castle = iota
	Kingside
	Queenside
)

// Request is a move token decoded without reference to a position.
// Unspecified source coordinates are -1.
type Request struct {
	Text      string
	Kind      chess.PieceKind
	FromFile  int
	FromRank  int
	To        chess.Position
	Promotion chess.PieceKind
	Capture   bool
	Castle    Castle

	// Coordinate is set for long-form moves such as "e2e4", whose piece
	// kind is only known once the source square is looked up.
	Coordinate bool
}

// isFile returns true if c is a valid file character.
func isFile(c byte) bool {
	return c >= chess.FileBase && c < chess.FileBase+chess.BoardSize
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= chess.RankBase && c < chess.RankBase+chess.BoardSize
}

// pieceLetter returns the piece kind for an upper-case piece letter,
// accepting the Dutch and German letters as well as English.
func pieceLetter(c byte) (chess.PieceKind, bool) {
	switch c {
	case 'K':
		return chess.King, true
	case 'Q', 'D':
		return chess.Queen, true
	case 'R', 'T':
		return chess.Rook, true
	case 'B', 'L':
		return chess.Bishop, true
	case 'N', 'S':
		return chess.Knight, true
	}
	return chess.Pawn, false
}

// promotionLetter also accepts lower case, as coordinate notation writes
// promotions that way ("e7e8q").
func promotionLetter(c byte) (chess.PieceKind, bool) {
	switch c {
	case 'q':
		return chess.Queen, true
	case 'r':
		return chess.Rook, true
	case 'b':
		return chess.Bishop, true
	case 'n':
		return chess.Knight, true
	}
	return pieceLetter(c)
}

// isCapture returns true if c is a capture or separator character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isSuffix returns true for check marks and move annotations.
func isSuffix(c byte) bool {
	return c == '+' || c == '#' || c == '!' || c == '?'
}

// Decode parses one move token: standard algebraic ("Nbd7", "exd6",
// "e8=Q+"), coordinate ("e2e4", "e7e8q") or castling ("O-O").
// Malformed tokens yield a *errors.ParseError wrapping ErrParseFailure.
func Decode(token string) (Request, error) {
	r := Request{
		Text:      token,
		Kind:      chess.Pawn,
		FromFile:  -1,
		FromRank:  -1,
		Promotion: chess.NoPromotion,
	}
	pos := 0

	currentChar := func() byte {
		if pos >= len(token) {
			return 0
		}
		return token[pos]
	}

	advance := func() {
		if pos < len(token) {
			pos++
		}
	}

	fail := func(expected string) (Request, error) {
		got := "end of move"
		if pos < len(token) {
			got = token[pos:]
		}
		return r, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Column:   pos + 1,
			Expected: expected,
			Got:      got,
		}
	}

	// square reads a file and rank pair.
	square := func() (chess.Position, bool) {
		if !isFile(currentChar()) {
			return chess.NoPosition, false
		}
		file := int(currentChar() - chess.FileBase)
		advance()
		if !isRank(currentChar()) {
			return chess.NoPosition, false
		}
		rank := int(currentChar() - chess.RankBase)
		advance()
		p, _ := chess.NewPosition(file, rank)
		return p, true
	}

	switch c := currentChar(); {
	case isFile(c):
		// Pawn move or coordinate move
		file := int(c - chess.FileBase)
		advance()

		if isRank(currentChar()) {
			rank := int(currentChar() - chess.RankBase)
			advance()
			at, _ := chess.NewPosition(file, rank)

			if isCapture(currentChar()) {
				r.Capture = currentChar() != '-'
				advance()
			}
			if isFile(currentChar()) {
				// e2e4
				to, ok := square()
				if !ok {
					return fail("destination square")
				}
				r.Coordinate = true
				r.FromFile, r.FromRank = file, rank
				r.To = to
			} else {
				r.To = at
			}
		} else {
			// exd5
			if isCapture(currentChar()) {
				r.Capture = true
				advance()
			}
			to, ok := square()
			if !ok {
				return fail("destination square")
			}
			if d := to.File() - file; d != 1 && d != -1 {
				return fail("capture onto an adjacent file")
			}
			r.FromFile = file
			r.To = to
		}

		// Look for promotions
		if currentChar() == '=' {
			advance()
			kind, ok := promotionLetter(currentChar())
			if !ok {
				return fail("promotion piece")
			}
			r.Promotion = kind
			advance()
		} else if kind, ok := promotionLetter(currentChar()); ok {
			r.Promotion = kind
			advance()
		}

	case isCastlingChar(c):
		advance()
		if currentChar() == '-' {
			advance()
		}
		if !isCastlingChar(currentChar()) {
			return fail("castling")
		}
		advance()
		r.Castle = Kingside
		if currentChar() == '-' {
			advance()
		}
		if isCastlingChar(currentChar()) {
			r.Castle = Queenside
			advance()
		}
		r.Kind = chess.King

	default:
		kind, ok := pieceLetter(c)
		if !ok {
			return fail("piece letter, file or castling")
		}
		r.Kind = kind
		advance()

		// Up to two disambiguation characters precede the destination.
		fromFile, fromRank := -1, -1
		if isFile(currentChar()) {
			fromFile = int(currentChar() - chess.FileBase)
			advance()
		}
		if isRank(currentChar()) {
			fromRank = int(currentChar() - chess.RankBase)
			advance()
		}
		if isCapture(currentChar()) {
			r.Capture = currentChar() != '-'
			advance()
		}

		if isFile(currentChar()) {
			// Rae1, R1e1, Re1d1
			to, ok := square()
			if !ok {
				return fail("destination square")
			}
			r.FromFile, r.FromRank = fromFile, fromRank
			r.To = to
		} else if fromFile >= 0 && fromRank >= 0 && !r.Capture {
			// Re1
			r.To, _ = chess.NewPosition(fromFile, fromRank)
		} else {
			return fail("destination square")
		}
	}

	// Allow trailing checks and annotations
	for isSuffix(currentChar()) {
		advance()
	}

	rest := token[pos:]
	switch {
	case rest == "":
	case r.Kind == chess.Pawn && r.Castle == NoCastle && (strings.EqualFold(rest, "ep") || strings.EqualFold(rest, "e.p.")):
	default:
		return fail("end of move")
	}
	return r, nil
}
