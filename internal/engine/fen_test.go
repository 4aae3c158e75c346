package engine

import (
	"testing"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/errors"
	"github.com/lgbarn/bitchess-go/internal/testutil"
)

func TestNewGameFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*testing.T, *Game)
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(t *testing.T, g *Game) {
				want := NewGame()
				testutil.AssertEqual(t, g.Board.Snapshot(), want.Board.Snapshot())
				testutil.AssertEqual(t, g.MoveNumber, 0)
				testutil.AssertEqual(t, g.FiftyMoveCounter, FiftyMoveLimit)
				testutil.AssertEqual(t, g.Castling, chess.AllCastleRights)
				testutil.AssertEqual(t, g.LastPawn, chess.NoPosition)
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(t *testing.T, g *Game) {
				testutil.AssertEqual(t, g.ToMove(), chess.Black)
				testutil.AssertEqual(t, g.MoveNumber, 1)
				testutil.AssertEqual(t, g.LastPawn, sq("e4"))
			},
		},
		{
			name: "clocks",
			fen:  "4k3/8/8/8/8/8/8/4K3 b - - 37 12",
			checkFn: func(t *testing.T, g *Game) {
				testutil.AssertEqual(t, g.FiftyMoveCounter, FiftyMoveLimit-37)
				testutil.AssertEqual(t, g.MoveNumber, 23)
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(t *testing.T, g *Game) {
				// Castling defaults to KQkq but no rooks are home.
				testutil.AssertEqual(t, g.FEN(), "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
			},
		},
		{
			name: "castling letters without pieces are dropped",
			fen:  "r3k3/8/8/8/8/8/8/4K2R w KQkq - 0 1",
			checkFn: func(t *testing.T, g *Game) {
				testutil.AssertEqual(t, g.Castling.String(), "Kq")
			},
		},
		{
			name: "exhausted clock",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - - 120 90",
			checkFn: func(t *testing.T, g *Game) {
				testutil.AssertEqual(t, g.Status, chess.DrawByFiftyMoveRule)
			},
		},
		{
			name: "checkmated side to move",
			fen:  "k7/1Q6/2K5/8/8/8/8/8 b - - 0 1",
			checkFn: func(t *testing.T, g *Game) {
				testutil.AssertEqual(t, g.Status, chess.WhiteWin)
			},
		},
		{
			name: "stalemated side to move",
			fen:  "k7/8/1Q6/8/8/8/8/7K b - - 0 1",
			checkFn: func(t *testing.T, g *Game) {
				testutil.AssertEqual(t, g.Status, chess.DrawByStalemate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGameFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewGameFromFEN(%q) error = %v", tt.fen, err)
			}
			tt.checkFn(t, g)
		})
	}
}

func TestNewGameFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"too few ranks", "8/8/8 w - - 0 1"},
		{"short rank", "4k3/8/8/8/8/8/8/4K2 w - - 0 1"},
		{"long rank", "4k3/8/8/8/8/8/8/4K4 w - - 0 1"},
		{"bad piece letter", "4k3/8/8/8/8/8/8/4X3 w - - 0 1"},
		{"too many fields", InitialFEN + " extra"},
		{"bad side to move", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling", "4k3/8/8/8/8/8/8/4K3 w KX - 0 1"},
		{"bad en passant square", "4k3/8/8/8/8/8/8/4K3 w - z9 0 1"},
		{"en passant without pawn", "4k3/8/8/8/8/8/8/4K3 b - e3 0 1"},
		{"bad halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - x 1"},
		{"bad fullmove number", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
		{"missing black king", "8/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1"},
		{"pawn on back rank", "P3k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"side not to move in check", "4k3/8/8/8/8/8/4R3/4K3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGameFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
		})
	}
}

func TestFEN_RoundTrip(t *testing.T) {
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/8/6k1/4K2R b K - 17 43",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			g, err := NewGameFromFEN(fen)
			if err != nil {
				t.Fatalf("NewGameFromFEN() error = %v", err)
			}
			testutil.AssertEqual(t, g.FEN(), fen)
		})
	}
}

func TestMustFEN_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustFEN did not panic on bad input")
		}
	}()
	MustFEN("not a fen")
}
