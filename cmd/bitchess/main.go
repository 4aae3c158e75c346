// bitchess replays chess move lists on a bitboard rules engine and reports
// how each game ended.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("bitchess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if cfg.Perft.Enabled() {
		if err := runPerft(cfg, *moveList); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	items, err := collectItems(cfg, *moveList, flag.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		os.Exit(1)
	}

	stats := writeResults(cfg, replayItems(cfg, items))

	if cfg.Verbosity > config.Quiet {
		reportStatistics(cfg.LogFile, stats, len(items))
	}
	if stats.Failed > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// reportStatistics prints the batch summary.
func reportStatistics(w io.Writer, stats ReplayStats, submitted int) {
	fmt.Fprintf(w, "%d game(s) replayed out of %d, %d failed.\n", stats.Games, submitted, stats.Failed)
	for s := chess.Ongoing; s <= chess.DrawByFiftyMoveRule; s++ {
		if n := stats.Statuses[s]; n > 0 {
			fmt.Fprintf(w, "  %-26s %d\n", s, n)
		}
	}
}
