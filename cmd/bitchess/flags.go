// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/config"
)

var (
	// Input options
	moveList = flag.String("moves", "", "Replay this move list instead of reading files")
	startFEN = flag.String("fen", "", "Starting position in FEN (default: standard start)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("W", "summary", "Output format: summary, fen, san")
	showBoard    = flag.Bool("board", false, "Draw the final board after each game")
	asciiBoard   = flag.Bool("ascii", false, "Draw boards with ASCII letters instead of Unicode glyphs")
	showLegal    = flag.Bool("legal", false, "List the legal moves of each final position")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count move generation leaves to depth N")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")
	verify     = flag.Bool("verify", false, "With -perft, compare every root move against a reference generator")

	// Replay options
	workers     = flag.Int("j", 1, "Number of games replayed concurrently")
	stopOnError = flag.Bool("stop", false, "Stop the batch after the first failed game")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", config.Progress, "Verbosity: 0 errors only, 1 summary, 2 per-move trace")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyReplayFlags(cfg)
	applyPerftFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Quiet
	}
	return cfg.Validate()
}

// applyOutputFlags configures the per-game output.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowLegal = *showLegal
	if *asciiBoard {
		cfg.Output.Glyphs = chess.ASCIIGlyphs
	}
	return nil
}

// applyReplayFlags configures the replay pool.
func applyReplayFlags(cfg *config.Config) {
	cfg.Replay.FEN = *startFEN
	cfg.Replay.Workers = *workers
	cfg.Replay.StopOnError = *stopOnError
}

// applyPerftFlags configures perft mode.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Verify = *verify
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: bitchess [options] [move-list-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess move lists and reports how each game ended.\n")
	fmt.Fprintf(os.Stderr, "Each non-empty input line is one game. A line of the form\n")
	fmt.Fprintf(os.Stderr, "\"<FEN> | <moves>\" starts from its own position; '#' starts a comment line.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  summary  Status, result and ply count (default)\n")
	fmt.Fprintf(os.Stderr, "  fen      Final position\n")
	fmt.Fprintf(os.Stderr, "  san      Accepted moves in standard algebraic notation\n")
	fmt.Fprintf(os.Stderr, "\nCastling is not supported: a castling move ends the replay with an error.\n")
}
