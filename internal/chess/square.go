package chess

import (
	"fmt"
	"math/bits"

	"github.com/lgbarn/bitchess-go/internal/errors"
)

// Bitboard is a set of squares, one bit per square.
// Bit index = file + rank*8, with a1 at bit 0 and h8 at bit 63.
type Bitboard uint64

// Position is a single square, represented as a mask with exactly one bit set.
type Position uint64

// NoPosition marks the absence of a square.
const NoPosition Position = 0

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	FileBase = 'a'
)

// Edge and rank masks.
const (
	Rank1 Bitboard = 0x00000000000000FF
	Rank2 Bitboard = Rank1 << (8 * 1)
	Rank7 Bitboard = Rank1 << (8 * 6)
	Rank8 Bitboard = Rank1 << (8 * 7)

	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = FileA << 1
	FileG Bitboard = FileA << 6
	FileH Bitboard = FileA << 7

	LightSquares Bitboard = 0x55AA55AA55AA55AA
)

// NewPosition converts a (file, rank) pair, both 0-7, into a position.
func NewPosition(file, rank int) (Position, error) {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoPosition, fmt.Errorf("file %d rank %d: %w", file, rank, errors.ErrInvalidSquare)
	}
	return Position(1) << uint(file+rank*BoardSize), nil
}

// PositionAt returns the position for a bit index 0-63.
func PositionAt(index int) Position {
	return Position(1) << uint(index&63)
}

// ParseSquare converts algebraic square text such as "e4" into a position.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return NoPosition, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	file := int(s[0]) - FileBase
	rank := int(s[1]) - RankBase
	pos, err := NewPosition(file, rank)
	if err != nil {
		return NoPosition, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	return pos, nil
}

// MustParseSquare is like ParseSquare but panics on bad input.
// It is intended for tables of literal squares.
func MustParseSquare(s string) Position {
	pos, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return pos
}

// Valid reports whether exactly one bit is set.
func (p Position) Valid() bool {
	return p != 0 && p&(p-1) == 0
}

// Index returns the bit index 0-63 of the position.
func (p Position) Index() int {
	return bits.TrailingZeros64(uint64(p))
}

// File returns the file 0-7 ('a' = 0).
func (p Position) File() int {
	return p.Index() % BoardSize
}

// Rank returns the rank 0-7 ('1' = 0).
func (p Position) Rank() int {
	return p.Index() / BoardSize
}

// Bitboard returns the position as a single-square set.
func (p Position) Bitboard() Bitboard {
	return Bitboard(p)
}

// In reports whether the position is a member of b.
func (p Position) In(b Bitboard) bool {
	return Bitboard(p)&b != 0
}

// String returns the algebraic name of the square, or "-" for NoPosition.
func (p Position) String() string {
	if !p.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + p.File()), byte(RankBase + p.Rank())})
}

// Has reports whether pos is a member of the set.
func (b Bitboard) Has(pos Position) bool {
	return b&Bitboard(pos) != 0
}

// Count returns the number of squares in the set.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Empty reports whether the set has no squares.
func (b Bitboard) Empty() bool {
	return b == 0
}

// Positions returns the members of the set in ascending bit order.
func (b Bitboard) Positions() []Position {
	out := make([]Position, 0, b.Count())
	for b != 0 {
		lsb := b & -b
		out = append(out, Position(lsb))
		b ^= lsb
	}
	return out
}

// First returns the lowest member of the set, or NoPosition.
func (b Bitboard) First() Position {
	return Position(b & -b)
}
