// Package perft counts move-generation tree sizes and cross-checks them
// against an independent generator.
package perft

import (
	"fmt"
	"io"
	"strings"

	gm "github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/bitchess-go/internal/engine"
	"github.com/lgbarn/bitchess-go/internal/errors"
)

// Mismatch is a root move whose subtree count differs from the reference.
// A move missing on one side has a zero count there.
type Mismatch struct {
	Move string
	Got  uint64
	Want uint64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %d, want %d", m.Move, m.Got, m.Want)
}

// Count returns the number of leaf nodes depth plies below g.
func Count(g *engine.Game, depth int) uint64 {
	return g.Perft(depth)
}

// referenceBoard parses fen for the reference generator. Castling is not
// part of this rule set, so the castling field is blanked.
func referenceBoard(fen string) (gm.Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return gm.Board{}, fmt.Errorf("%q: want 6 fields: %w", fen, errors.ErrInvalidFEN)
	}
	fields[2] = "-"
	return gm.ParseFen(strings.Join(fields, " ")), nil
}

// Reference counts leaf nodes with the reference generator.
func Reference(fen string, depth int) (uint64, error) {
	b, err := referenceBoard(fen)
	if err != nil {
		return 0, err
	}
	return referencePerft(&b, depth), nil
}

// ReferenceDivide returns the reference count below each root move.
func ReferenceDivide(fen string, depth int) (map[string]uint64, error) {
	b, err := referenceBoard(fen)
	if err != nil {
		return nil, err
	}
	out := make(map[string]uint64)
	if depth < 1 {
		return out, nil
	}
	for _, m := range b.GenerateLegalMoves() {
		m := m
		unapply := b.Apply(m)
		out[m.String()] = referencePerft(&b, depth-1)
		unapply()
	}
	return out, nil
}

func referencePerft(b *gm.Board, depth int) uint64 {
	if depth < 1 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}

// Compare divides g at depth with both generators. It returns the
// mismatching root moves in sorted order and an error wrapping
// ErrPerftMismatch if there are any.
func Compare(g *engine.Game, depth int) ([]Mismatch, error) {
	want, err := ReferenceDivide(g.FEN(), depth)
	if err != nil {
		return nil, err
	}
	got := g.Divide(depth)

	all := make(map[string]uint64, len(got))
	for k, v := range got {
		all[k] = v
	}
	for k := range want {
		all[k] += 0
	}

	var mismatches []Mismatch
	for _, move := range SortedMoves(all) {
		if got[move] != want[move] {
			mismatches = append(mismatches, Mismatch{Move: move, Got: got[move], Want: want[move]})
		}
	}
	if len(mismatches) > 0 {
		return mismatches, fmt.Errorf("%d root moves differ at depth %d: %w", len(mismatches), depth, errors.ErrPerftMismatch)
	}
	return nil, nil
}

// SortedMoves returns the keys of a divide map in lexical order.
func SortedMoves(div map[string]uint64) []string {
	moves := maps.Keys(div)
	slices.Sort(moves)
	return moves
}

// Write prints a divide map one "move: count" line per root move, then
// the total.
func Write(w io.Writer, div map[string]uint64) error {
	var total uint64
	for _, move := range SortedMoves(div) {
		total += div[move]
		if _, err := fmt.Fprintf(w, "%s: %d\n", move, div[move]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nNodes searched: %d\n", total)
	return err
}
