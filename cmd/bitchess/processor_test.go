package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/config"
	"github.com/lgbarn/bitchess-go/internal/engine"
	"github.com/lgbarn/bitchess-go/internal/errors"
	"github.com/lgbarn/bitchess-go/internal/testutil"
	"github.com/lgbarn/bitchess-go/internal/worker"
)

// testConfig returns a config writing to in-memory buffers.
func testConfig() (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	out, log := &bytes.Buffer{}, &bytes.Buffer{}
	cfg := config.NewConfigBuilder().WithOutput(out).WithLog(log).Build()
	return cfg, out, log
}

func TestReadItems(t *testing.T) {
	input := `# openings
1. e4 e5 2. Nf3

k7/8/8/1Q6/8/8/8/7K w - - 0 1 | Qb6
d4`

	items, err := readItems(strings.NewReader(input), "games.txt", "", 5)
	testutil.AssertNoError(t, err)

	want := []worker.WorkItem{
		{Index: 5, Name: "games.txt:2", Moves: "1. e4 e5 2. Nf3"},
		{Index: 6, Name: "games.txt:4", FEN: "k7/8/8/1Q6/8/8/8/7K w - - 0 1", Moves: "Qb6"},
		{Index: 7, Name: "games.txt:5", Moves: "d4"},
	}
	testutil.AssertEqual(t, items, want)
}

func TestReadItems_DefaultFEN(t *testing.T) {
	fen := "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"
	items, err := readItems(strings.NewReader("e4\n"), "stdin", fen, 0)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, items[0].FEN, fen)
}

func TestCollectItems(t *testing.T) {
	cfg, _, _ := testConfig()

	t.Run("move list flag wins", func(t *testing.T) {
		items, err := collectItems(cfg, "e4 e5", []string{"ignored.txt"}, strings.NewReader("d4"))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, items, []worker.WorkItem{{Name: "moves", Moves: "e4 e5"}})
	})

	t.Run("stdin without files", func(t *testing.T) {
		items, err := collectItems(cfg, "", nil, strings.NewReader("d4\nc4\n"))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, len(items), 2)
		testutil.AssertEqual(t, items[1].Name, "stdin:2")
	})

	t.Run("files keep a running index", func(t *testing.T) {
		a := testutil.WriteTempFile(t, "a.txt", "e4\ne4 e5\n")
		b := testutil.WriteTempFile(t, "b.txt", "d4\n")
		items, err := collectItems(cfg, "", []string{a, b}, nil)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, len(items), 3)
		testutil.AssertEqual(t, items[2].Index, 2)
		testutil.AssertTrue(t, strings.HasSuffix(items[2].Name, "b.txt:1"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := collectItems(cfg, "", []string{"/nonexistent/games.txt"}, nil)
		testutil.AssertError(t, err)
	})
}

func TestReplayAndWrite(t *testing.T) {
	tests := []struct {
		name   string
		format config.OutputFormat
		moves  string
		want   string
	}{
		{"summary", config.Summary, "1. f3 e5 2. g4 Qh4#", "moves: BlackWin 0-1 after 4 plies\n"},
		{"fen", config.FEN, "e2e4", "moves: rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1\n"},
		{"san", config.SAN, "f2f3 e7e5 g2g4 d8h4", "moves: 1. f3 e5 2. g4 Qh4# 0-1\n"},
		{"san ongoing", config.SAN, "e4 e5 Nf3", "moves: 1. e4 e5 2. Nf3 *\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, out, log := testConfig()
			cfg.Output.Format = tt.format

			items, err := collectItems(cfg, tt.moves, nil, nil)
			testutil.AssertNoError(t, err)
			stats := writeResults(cfg, replayItems(cfg, items))

			testutil.AssertEqual(t, out.String(), tt.want)
			testutil.AssertEqual(t, log.String(), "")
			testutil.AssertEqual(t, stats.Failed, 0)
		})
	}
}

func TestWriteResults_Failures(t *testing.T) {
	cfg, out, log := testConfig()
	cfg.Replay.Workers = 3

	input := "e4 e5 Ke3\nbad fen | e4\nd4 d5\ne4 e5 Nf3 Nc6 Bc4 Bc5 O-O\n"
	items, err := readItems(strings.NewReader(input), "batch", "", 0)
	testutil.AssertNoError(t, err)

	stats := writeResults(cfg, replayItems(cfg, items))
	testutil.AssertEqual(t, stats.Games, 4)
	testutil.AssertEqual(t, stats.Failed, 3)
	testutil.AssertEqual(t, stats.Statuses[chess.Ongoing], 3)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	testutil.AssertEqual(t, lines, []string{
		"batch:1: Ongoing * after 2 plies",
		"batch:3: Ongoing * after 2 plies",
		"batch:4: Ongoing * after 6 plies",
	})
	testutil.AssertContains(t, log.String(), "batch:1: ply 3")
	testutil.AssertContains(t, log.String(), "batch:2:")
	testutil.AssertContains(t, log.String(), "unsupported")
}

func TestWriteGame_BoardAndLegal(t *testing.T) {
	var buf bytes.Buffer
	out := config.OutputConfig{Format: config.Summary, ShowBoard: true, Glyphs: chess.ASCIIGlyphs, ShowLegal: true}
	res := worker.ProcessResult{Name: "g", Game: engine.MustFEN("k7/8/8/8/8/8/8/K7 w - - 0 1")}

	writeGame(&buf, &out, res)
	want := "g: Ongoing * after 0 plies\n" +
		"k.......\n........\n........\n........\n........\n........\n........\nK.......\n" +
		"legal: Kb1 Ka2 Kb2\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestMoveText(t *testing.T) {
	tests := []struct {
		first int
		san   []string
		want  string
	}{
		{0, nil, ""},
		{0, []string{"e4"}, "1. e4"},
		{0, []string{"e4", "e5", "Nf3"}, "1. e4 e5 2. Nf3"},
		{1, []string{"e5", "Nf3"}, "1... e5 2. Nf3"},
		{40, []string{"Kb2"}, "21. Kb2"},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, moveText(tt.first, tt.san), tt.want)
	}
}

func TestRunPerft(t *testing.T) {
	t.Run("count", func(t *testing.T) {
		cfg, out, _ := testConfig()
		cfg.Perft.Depth = 2
		testutil.AssertNoError(t, runPerft(cfg, ""))
		testutil.AssertEqual(t, out.String(), "perft(2) = 400\n")
	})

	t.Run("divide after moves", func(t *testing.T) {
		cfg, out, _ := testConfig()
		cfg.Perft = config.PerftConfig{Depth: 1, Divide: true}
		testutil.AssertNoError(t, runPerft(cfg, "e4 e5"))
		testutil.AssertContains(t, out.String(), "g1f3: 1\n")
		testutil.AssertContains(t, out.String(), "Nodes searched: 29\n")
	})

	t.Run("verify", func(t *testing.T) {
		cfg, _, log := testConfig()
		cfg.Replay.FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
		cfg.Perft = config.PerftConfig{Depth: 2, Verify: true}
		testutil.AssertNoError(t, runPerft(cfg, ""))
		testutil.AssertContains(t, log.String(), "agrees with the reference")
	})

	t.Run("bad start", func(t *testing.T) {
		cfg, _, _ := testConfig()
		cfg.Replay.FEN = "nonsense"
		cfg.Perft.Depth = 1
		testutil.AssertErrorIs(t, runPerft(cfg, ""), errors.ErrInvalidFEN)

		cfg.Replay.FEN = ""
		testutil.AssertErrorIs(t, runPerft(cfg, "e4 e4"), errors.ErrIllegalMove)
	})
}

func TestReplayItems_Trace(t *testing.T) {
	cfg, _, log := testConfig()
	cfg.Verbosity = config.MoveByMove
	cfg.Replay.Workers = 2

	items := []worker.WorkItem{{Index: 0, Moves: "e4 e5"}, {Index: 1, Moves: "d4"}}
	replayItems(cfg, items)

	testutil.AssertEqual(t, strings.Count(log.String(), "accepted"), 3)
}

func TestReportStatistics(t *testing.T) {
	var buf bytes.Buffer
	stats := ReplayStats{
		Games:    3,
		Failed:   1,
		Statuses: map[chess.GameStatus]int{chess.Ongoing: 2, chess.BlackWin: 1},
	}
	reportStatistics(&buf, stats, 4)

	testutil.AssertContains(t, buf.String(), "3 game(s) replayed out of 4, 1 failed.")
	testutil.AssertContains(t, buf.String(), "BlackWin")
	testutil.AssertNotContains(t, buf.String(), "WhiteWin")
}
