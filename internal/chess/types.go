// Package chess provides the bitboard board model and its core types.
package chess

import (
	"fmt"

	"github.com/lgbarn/bitchess-go/internal/errors"
)

// Team represents the side a piece belongs to.
type Team int

const (
	White Team = iota
	Black
	NumTeams
)

// String returns the string representation of a team.
func (t Team) String() string {
	switch t {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "Unknown"
}

// Opposite returns the other team.
func (t Team) Opposite() Team {
	if t == White {
		return Black
	}
	return White
}

// Valid reports whether t is White or Black.
func (t Team) Valid() bool {
	return t == White || t == Black
}

// Forward returns the direction pawns of this team advance in.
func (t Team) Forward() Direction {
	if t == White {
		return North
	}
	return South
}

// WinStatus returns the status recording a win for this team.
func (t Team) WinStatus() GameStatus {
	if t == White {
		return WhiteWin
	}
	return BlackWin
}

// TeamToMove derives the side to move from a half-move counter.
func TeamToMove(moveNumber int) Team {
	if moveNumber%2 == 0 {
		return White
	}
	return Black
}

// PieceKind represents a chess piece type independent of team.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// Kinds lists every piece kind in board order.
var Kinds = [NumPieceKinds]PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k.Valid() {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k.Valid() {
		return letters[k]
	}
	return '?'
}

// Valid reports whether k is one of the six piece kinds.
func (k PieceKind) Valid() bool {
	return k >= Pawn && k < NumPieceKinds
}

// Promotable reports whether a pawn may promote into this kind.
func (k PieceKind) Promotable() bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	}
	return false
}

// ParsePieceKind converts a piece letter (either case) into a kind.
func ParsePieceKind(c byte) (PieceKind, error) {
	switch c {
	case 'P', 'p':
		return Pawn, nil
	case 'N', 'n':
		return Knight, nil
	case 'B', 'b':
		return Bishop, nil
	case 'R', 'r':
		return Rook, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	}
	return Pawn, fmt.Errorf("piece letter %q: %w", c, errors.ErrInvalidPiece)
}

// GameStatus is the outcome state of a game.
type GameStatus int

const (
	Ongoing GameStatus = iota
	WhiteWin
	BlackWin
	DrawByStalemate
	// DrawByInsufficientMaterial is never produced by status evaluation.
	DrawByInsufficientMaterial
	DrawByRepetition
	DrawByFiftyMoveRule
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Ongoing:
		return "Ongoing"
	case WhiteWin:
		return "WhiteWin"
	case BlackWin:
		return "BlackWin"
	case DrawByStalemate:
		return "DrawByStalemate"
	case DrawByInsufficientMaterial:
		return "DrawByInsufficientMaterial"
	case DrawByRepetition:
		return "DrawByRepetition"
	case DrawByFiftyMoveRule:
		return "DrawByFiftyMoveRule"
	}
	return "Unknown"
}

// Terminal reports whether no further moves are accepted.
func (s GameStatus) Terminal() bool {
	return s != Ongoing
}

// Result returns the PGN result string for the status.
func (s GameStatus) Result() string {
	switch s {
	case WhiteWin:
		return "1-0"
	case BlackWin:
		return "0-1"
	case Ongoing:
		return "*"
	}
	return "1/2-1/2"
}

// CastleRight indexes the four castling eligibility flags.
type CastleRight int

const (
	WhiteKingside CastleRight = iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
	NumCastleRights
)

// CastleRights holds the castling eligibility flags. They are tracked but
// no move generation consults them: castling is not implemented.
type CastleRights [NumCastleRights]bool

// AllCastleRights is the starting set of flags.
var AllCastleRights = CastleRights{true, true, true, true}

// String returns the FEN castling field for the flags.
func (c CastleRights) String() string {
	letters := []byte{'K', 'Q', 'k', 'q'}
	out := make([]byte, 0, NumCastleRights)
	for i, ok := range c {
		if ok {
			out = append(out, letters[i])
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}
