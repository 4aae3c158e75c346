package engine

import (
	"testing"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/errors"
	"github.com/lgbarn/bitchess-go/internal/testutil"
)

func TestOpeningMoves(t *testing.T) {
	g := NewGame()

	testutil.AssertEqual(t, len(g.LegalMoves()), 20, "legal moves at start")
	testutil.AssertEqual(t, g.Moves(chess.Knight, sq("b1"), chess.White), squares("a3", "c3"))
	testutil.AssertEqual(t, g.Moves(chess.Knight, sq("g8"), chess.Black), squares("f6", "h6"))
	testutil.AssertEqual(t, g.Moves(chess.Pawn, sq("e2"), chess.White), squares("e3", "e4"))
	testutil.AssertEqual(t, g.Moves(chess.Pawn, sq("d7"), chess.Black), squares("d6", "d5"))

	for _, kind := range []chess.PieceKind{chess.Bishop, chess.Rook, chess.Queen, chess.King} {
		for _, from := range g.Board.Pieces(chess.White, kind).Positions() {
			if got := g.Moves(kind, from, chess.White); !got.Empty() {
				t.Errorf("%s on %s has moves %v at start", kind, from, got.Positions())
			}
		}
	}
}

func TestMoves_EdgeGuards(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		kind chess.PieceKind
		from string
		want chess.Bitboard
	}{
		{
			name: "knight in corner",
			fen:  "k7/8/8/8/8/8/8/N6K w - - 0 1",
			kind: chess.Knight,
			from: "a1",
			want: squares("b3", "c2"),
		},
		{
			name: "knight on h-file",
			fen:  "k7/8/8/7N/8/8/8/K7 w - - 0 1",
			kind: chess.Knight,
			from: "h5",
			want: squares("g7", "f6", "f4", "g3"),
		},
		{
			name: "knight on b-file",
			fen:  "7k/8/8/1N6/8/8/8/7K w - - 0 1",
			kind: chess.Knight,
			from: "b5",
			want: squares("a7", "c7", "d6", "d4", "a3", "c3"),
		},
		{
			name: "rook on h-file does not wrap east",
			fen:  "k7/8/8/8/7R/8/8/K7 w - - 0 1",
			kind: chess.Rook,
			from: "h4",
			want: squares("h1", "h2", "h3", "h5", "h6", "h7", "h8", "a4", "b4", "c4", "d4", "e4", "f4", "g4"),
		},
		{
			name: "bishop in corner",
			fen:  "6k1/8/8/8/8/8/8/B6K w - - 0 1",
			kind: chess.Bishop,
			from: "a1",
			want: squares("b2", "c3", "d4", "e5", "f6", "g7", "h8"),
		},
		{
			name: "a-file pawn does not capture across the board",
			fen:  "k7/8/8/8/8/1p6/P6p/7K w - - 0 1",
			kind: chess.Pawn,
			from: "a2",
			want: squares("a3", "a4", "b3"),
		},
		{
			name: "h-file black pawn does not wrap",
			fen:  "k7/P6p/8/8/8/8/8/7K b - - 0 1",
			kind: chess.Pawn,
			from: "h7",
			want: squares("h6", "h5"),
		},
		{
			name: "king on edge",
			fen:  "k7/8/8/8/7K/8/8/8 w - - 0 1",
			kind: chess.King,
			from: "h4",
			want: squares("h5", "g5", "g4", "g3", "h3"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MustFEN(tt.fen)
			team, _, _ := g.Board.PieceAt(sq(tt.from))
			got := g.Moves(tt.kind, sq(tt.from), team)
			if got != tt.want {
				t.Errorf("Moves(%s, %s) = %v, want %v", tt.kind, tt.from, got.Positions(), tt.want.Positions())
			}
		})
	}
}

func TestMoves_PinnedPiece(t *testing.T) {
	g := MustFEN("4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1")

	legal := g.Moves(chess.Rook, sq("e2"), chess.White)
	testutil.AssertEqual(t, legal, squares("e3", "e4", "e5", "e6", "e7"))

	pseudo := Moves(chess.Rook, sq("e2"), chess.White, &g.Board, chess.NoPosition, true)
	testutil.AssertTrue(t, pseudo.Has(sq("a2")), "unfiltered rook reaches a2")
	testutil.AssertEqual(t, pseudo.Count(), 12)
}

func TestMoves_KingsKeepApart(t *testing.T) {
	g := MustFEN("8/8/8/3k4/8/3K4/8/8 w - - 0 1")

	got := g.Moves(chess.King, sq("d3"), chess.White)
	testutil.AssertEqual(t, got, squares("c2", "d2", "e2", "c3", "e3"))
}

func TestMoves_MustAnswerCheck(t *testing.T) {
	// Black rook on e8 checks along the e-file; only blocks, captures and
	// king steps off the file remain.
	g := MustFEN("k3r3/8/8/8/8/8/3N4/4K3 w - - 0 1")

	testutil.AssertTrue(t, g.InCheck())
	testutil.AssertEqual(t, g.Moves(chess.Knight, sq("d2"), chess.White), squares("e4"))
	testutil.AssertEqual(t, g.Moves(chess.King, sq("e1"), chess.White), squares("d1", "f1", "f2"))
}

func TestMoves_CheckedSubsetOfUnchecked(t *testing.T) {
	fens := []string{
		InitialFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1",
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	}

	for _, fen := range fens {
		g := MustFEN(fen)
		for _, team := range []chess.Team{chess.White, chess.Black} {
			for _, kind := range chess.Kinds {
				for _, from := range g.Board.Pieces(team, kind).Positions() {
					checked := Moves(kind, from, team, &g.Board, g.LastPawn, false)
					unchecked := Moves(kind, from, team, &g.Board, g.LastPawn, true)
					if checked&^unchecked != 0 {
						t.Errorf("%s: %s %s on %s: filtered moves %v not in %v",
							fen, team, kind, from, checked.Positions(), unchecked.Positions())
					}
				}
			}
		}
	}
}

func TestMoves_InvalidInput(t *testing.T) {
	board := chess.StartingBoard()

	tests := []struct {
		name    string
		kind    chess.PieceKind
		pos     chess.Position
		team    chess.Team
		wantErr error
	}{
		{"bad kind", chess.PieceKind(9), sq("e2"), chess.White, errors.ErrInvalidPiece},
		{"bad team", chess.Pawn, sq("e2"), chess.Team(5), errors.ErrInvalidPiece},
		{"no square", chess.Pawn, chess.NoPosition, chess.White, errors.ErrInvalidSquare},
		{"two squares", chess.Pawn, sq("e2") | sq("d2"), chess.White, errors.ErrInvalidSquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Moves(tt.kind, tt.pos, tt.team, &board, chess.NoPosition, false)
			testutil.AssertTrue(t, got.Empty(), "Moves on invalid input")

			_, err := MovesChecked(tt.kind, tt.pos, tt.team, &board, chess.NoPosition, false)
			testutil.AssertErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLegalMoves_Promotion(t *testing.T) {
	g := MustFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")

	var promotions []chess.PieceKind
	for _, m := range g.LegalMoves() {
		if m.Kind == chess.Pawn {
			promotions = append(promotions, m.Promotion)
		}
	}
	testutil.AssertEqual(t, promotions, []chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight})
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"start", InitialFEN, true},
		{"stalemated king", "k7/8/1Q6/8/8/8/8/7K b - - 0 1", false},
		{"mated king", "k7/1Q6/2K5/8/8/8/8/8 b - - 0 1", false},
		{"king boxed in but pawn free", "k7/8/1Q6/8/8/7p/8/K7 b - - 0 1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MustFEN(tt.fen)
			testutil.AssertEqual(t, HasLegalMoves(&g.Board, g.ToMove(), g.LastPawn), tt.want)
		})
	}
}
