package chess

import "strings"

// Glyphs selects the characters used to draw a board.
type Glyphs int

const (
	UnicodeGlyphs Glyphs = iota
	ASCIIGlyphs
)

// Blank is drawn twice for an empty square in Unicode rendering, matching
// the width of a chess glyph in most terminal fonts.
const Blank = '\u2002'

var unicodePieces = [NumTeams][NumPieceKinds]rune{
	White: {'♙', '♘', '♗', '♖', '♕', '♔'},
	Black: {'♟', '♞', '♝', '♜', '♛', '♚'},
}

// Glyph returns the Unicode glyph for a piece.
func Glyph(team Team, kind PieceKind) rune {
	return unicodePieces[team][kind]
}

// Letter returns the FEN letter for a piece: uppercase for White.
func Letter(team Team, kind PieceKind) byte {
	c := kind.Letter()
	if team == Black {
		c += 'a' - 'A'
	}
	return c
}

// String renders the board with Unicode glyphs.
func (b *Board) String() string {
	return b.Render(UnicodeGlyphs)
}

// Render draws the board as eight lines, rank 8 first and file a leftmost.
// The output is for people to read, not for parsing.
func (b *Board) Render(glyphs Glyphs) string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			pos := PositionAt(file + rank*BoardSize)
			team, kind, ok := b.PieceAt(pos)
			switch {
			case ok && glyphs == ASCIIGlyphs:
				sb.WriteByte(Letter(team, kind))
			case ok:
				sb.WriteRune(Glyph(team, kind))
			case glyphs == ASCIIGlyphs:
				sb.WriteByte('.')
			default:
				sb.WriteRune(Blank)
				sb.WriteRune(Blank)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
