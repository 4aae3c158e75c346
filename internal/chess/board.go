package chess

import (
	"fmt"
)

// AllPieces is the board slot holding the aggregate occupancy.
const AllPieces = int(NumTeams) * int(NumPieceKinds)

// NumBoardSets is the number of bitboards held by a Board.
const NumBoardSets = AllPieces + 1

// Index returns the board slot for a team and piece kind.
func Index(team Team, kind PieceKind) int {
	return int(team)*int(NumPieceKinds) + int(kind)
}

// Snapshot is the twelve piece placements of a board without the aggregate.
// It is comparable and used as the repetition key.
type Snapshot [AllPieces]Bitboard

// Board holds one bitboard per team and piece kind plus the aggregate
// occupancy, which always equals the union of the other twelve.
// Board is a small value type: copying it is how hypothetical moves are probed.
type Board struct {
	sets [NumBoardSets]Bitboard
}

// StartingBoard returns the standard chess starting position.
func StartingBoard() Board {
	var b Board
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, kind := range backRank {
		b.Place(White, kind, PositionAt(file))
		b.Place(White, Pawn, PositionAt(file+8))
		b.Place(Black, Pawn, PositionAt(file+48))
		b.Place(Black, kind, PositionAt(file+56))
	}
	return b
}

// Pieces returns the squares holding pieces of the given team and kind.
func (b *Board) Pieces(team Team, kind PieceKind) Bitboard {
	return b.sets[Index(team, kind)]
}

// Occupied returns the aggregate occupancy.
func (b *Board) Occupied() Bitboard {
	return b.sets[AllPieces]
}

// TeamPieces returns every square held by the team.
func (b *Board) TeamPieces(team Team) Bitboard {
	var out Bitboard
	for _, kind := range Kinds {
		out |= b.Pieces(team, kind)
	}
	return out
}

// King returns the position of the team's king, or NoPosition.
func (b *Board) King(team Team) Position {
	return b.Pieces(team, King).First()
}

// PieceAt reports the team and kind standing on pos.
func (b *Board) PieceAt(pos Position) (Team, PieceKind, bool) {
	if !pos.In(b.Occupied()) {
		return White, Pawn, false
	}
	for _, team := range []Team{White, Black} {
		for _, kind := range Kinds {
			if pos.In(b.Pieces(team, kind)) {
				return team, kind, true
			}
		}
	}
	return White, Pawn, false
}

// Place puts a piece on pos, updating the aggregate with it.
func (b *Board) Place(team Team, kind PieceKind, pos Position) {
	b.sets[Index(team, kind)] |= Bitboard(pos)
	b.sets[AllPieces] |= Bitboard(pos)
}

// Remove takes a piece off pos, updating the aggregate with it.
func (b *Board) Remove(team Team, kind PieceKind, pos Position) {
	b.sets[Index(team, kind)] &^= Bitboard(pos)
	b.sets[AllPieces] &^= Bitboard(pos)
}

// Relocate moves a piece from one square to another.
func (b *Board) Relocate(team Team, kind PieceKind, from, to Position) {
	b.Remove(team, kind, from)
	b.Place(team, kind, to)
}

// Capture clears whatever enemy piece stands on pos and reports its kind.
func (b *Board) Capture(enemy Team, pos Position) (PieceKind, bool) {
	for _, kind := range Kinds {
		if pos.In(b.Pieces(enemy, kind)) {
			b.Remove(enemy, kind, pos)
			return kind, true
		}
	}
	return Pawn, false
}

// Snapshot returns the twelve piece placements.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	copy(s[:], b.sets[:AllPieces])
	return s
}

// Validate checks the occupancy invariant: the aggregate equals the union
// of the twelve piece sets and no square is claimed twice.
func (b *Board) Validate() error {
	var union Bitboard
	for i := 0; i < AllPieces; i++ {
		if union&b.sets[i] != 0 {
			return fmt.Errorf("board slot %d overlaps another piece set", i)
		}
		union |= b.sets[i]
	}
	if union != b.sets[AllPieces] {
		return fmt.Errorf("aggregate occupancy %#016x differs from piece union %#016x", uint64(b.sets[AllPieces]), uint64(union))
	}
	return nil
}

// Count returns the number of pieces of the given team and kind.
func (b *Board) Count(team Team, kind PieceKind) int {
	return b.Pieces(team, kind).Count()
}
