package notation

import (
	"strings"
	"unicode"
)

// results are the game termination markers of a move list.
var results = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// Tokens splits a move list into move tokens. Move numbers ("12.",
// "12..."), results, numeric annotation glyphs ("$14"), stand-alone
// annotations ("!?"), brace and semicolon comments and parenthesised
// variations are dropped.
func Tokens(text string) []string {
	var tokens []string
	for _, field := range strings.Fields(stripComments(text)) {
		field = stripMoveNumber(field)
		switch {
		case field == "":
		case results[field]:
		case field[0] == '$':
		case strings.Trim(field, "!?") == "":
		case strings.EqualFold(field, "ep") || strings.EqualFold(field, "e.p."):
		default:
			tokens = append(tokens, field)
		}
	}
	return tokens
}

// stripComments blanks out {...} and ;... comments and (...) variations,
// which may nest.
func stripComments(text string) string {
	var sb strings.Builder
	depth := 0
	inBrace, inLine := false, false

	for _, c := range text {
		switch {
		case inLine:
			if c == '\n' {
				inLine = false
				sb.WriteRune(c)
			}
		case inBrace:
			if c == '}' {
				inBrace = false
				sb.WriteByte(' ')
			}
		case c == '{':
			inBrace = true
		case c == ';':
			inLine = true
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
			sb.WriteByte(' ')
		case depth > 0:
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// stripMoveNumber removes a leading "12." or "12..." from a field.
func stripMoveNumber(field string) string {
	i := 0
	for i < len(field) && unicode.IsDigit(rune(field[i])) {
		i++
	}
	if i == 0 || i == len(field) || field[i] != '.' {
		return field
	}
	return strings.TrimLeft(field[i:], ".")
}
