// processor.go - Move list reading, replay and output functions
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/config"
	"github.com/lgbarn/bitchess-go/internal/engine"
	"github.com/lgbarn/bitchess-go/internal/notation"
	"github.com/lgbarn/bitchess-go/internal/perft"
	"github.com/lgbarn/bitchess-go/internal/worker"
)

// maxLineLength bounds a single move list line.
const maxLineLength = 1 << 20

// syncWriter serializes writes from concurrent replays onto one writer.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// readItems reads one work item per non-empty line of r. Lines starting
// with '#' are comments. "FEN | moves" overrides the starting position.
func readItems(r io.Reader, name, defaultFEN string, firstIndex int) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		item := worker.WorkItem{
			Index: firstIndex + len(items),
			Name:  fmt.Sprintf("%s:%d", name, lineNum),
			FEN:   defaultFEN,
			Moves: line,
		}
		if fen, moves, ok := strings.Cut(line, "|"); ok {
			item.FEN = strings.TrimSpace(fen)
			item.Moves = strings.TrimSpace(moves)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return items, fmt.Errorf("reading %s: %w", name, err)
	}
	return items, nil
}

// collectItems gathers the games to replay: the -moves list if given,
// else every line of the named files, else every line of stdin.
func collectItems(cfg *config.Config, moves string, args []string, stdin io.Reader) ([]worker.WorkItem, error) {
	if moves != "" {
		return []worker.WorkItem{{Name: "moves", FEN: cfg.Replay.FEN, Moves: moves}}, nil
	}
	if len(args) == 0 {
		return readItems(stdin, "stdin", cfg.Replay.FEN, 0)
	}

	var items []worker.WorkItem
	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return items, fmt.Errorf("opening %s: %w", filename, err)
		}
		more, err := readItems(file, filename, cfg.Replay.FEN, len(items))
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		items = append(items, more...)
		if err != nil {
			return items, err
		}
	}
	return items, nil
}

// replayItems replays every item on the worker pool, results in input order.
func replayItems(cfg *config.Config, items []worker.WorkItem) []worker.ProcessResult {
	var opts []engine.Option
	if cfg.Verbosity >= config.MoveByMove {
		opts = append(opts, engine.WithTrace(&syncWriter{w: cfg.LogFile}))
	}

	process := worker.Replay(opts...)
	if cfg.Output.Format == config.SAN {
		process = worker.ReplaySAN(opts...)
	}

	poolOpts := []worker.Option{
		worker.WithWorkers(cfg.Replay.Workers),
		worker.WithBufferSize(cfg.Replay.BufferSize),
	}
	if cfg.Replay.StopOnError {
		poolOpts = append(poolOpts, worker.WithStopOnError())
	}
	return worker.Run(items, process, poolOpts...)
}

// ReplayStats summarizes a batch.
type ReplayStats struct {
	Games    int
	Failed   int
	Statuses map[chess.GameStatus]int
}

// writeResults prints every game and logs every failure.
func writeResults(cfg *config.Config, results []worker.ProcessResult) ReplayStats {
	stats := ReplayStats{Statuses: make(map[chess.GameStatus]int)}
	for _, res := range results {
		stats.Games++
		if res.Err != nil {
			stats.Failed++
			fmt.Fprintf(cfg.LogFile, "%s: %v\n", res.Name, res.Err)
		}
		if res.Game == nil {
			continue
		}
		stats.Statuses[res.Game.Status]++
		writeGame(cfg.OutputFile, &cfg.Output, res)
	}
	return stats
}

// writeGame prints one replayed game in the configured format.
func writeGame(w io.Writer, out *config.OutputConfig, res worker.ProcessResult) {
	g := res.Game
	switch out.Format {
	case config.FEN:
		fmt.Fprintf(w, "%s: %s\n", res.Name, g.FEN())
	case config.SAN:
		first := g.MoveNumber - len(res.SAN)
		fmt.Fprintf(w, "%s: %s\n", res.Name, strings.TrimSpace(moveText(first, res.SAN)+" "+g.Status.Result()))
	default:
		fmt.Fprintf(w, "%s: %s %s after %d plies\n", res.Name, g.Status, g.Status.Result(), g.MoveNumber)
	}

	if out.ShowBoard {
		fmt.Fprint(w, g.Board.Render(out.Glyphs))
	}
	if out.ShowLegal {
		var legal []string
		for _, m := range g.LegalMoves() {
			legal = append(legal, notation.Format(g, m))
		}
		fmt.Fprintf(w, "legal: %s\n", strings.Join(legal, " "))
	}
}

// moveText numbers a SAN move list whose first move is ply first+1.
func moveText(first int, san []string) string {
	var sb strings.Builder
	for i, move := range san {
		ply := first + i
		switch {
		case ply%2 == 0:
			fmt.Fprintf(&sb, "%d. ", ply/2+1)
		case i == 0:
			fmt.Fprintf(&sb, "%d... ", ply/2+1)
		}
		sb.WriteString(move)
		if i < len(san)-1 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// startGame builds the perft root: the FEN position with moves played.
func startGame(fen, moves string) (*engine.Game, error) {
	g := engine.NewGame()
	if fen != "" {
		var err error
		if g, err = engine.NewGameFromFEN(fen); err != nil {
			return nil, err
		}
	}
	if err := notation.Replay(g, moves); err != nil {
		return nil, err
	}
	return g, nil
}

// runPerft counts, divides and optionally verifies the root position.
func runPerft(cfg *config.Config, moves string) error {
	g, err := startGame(cfg.Replay.FEN, moves)
	if err != nil {
		return err
	}
	depth := cfg.Perft.Depth

	if cfg.Perft.Divide {
		if err := perft.Write(cfg.OutputFile, g.Divide(depth)); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", depth, perft.Count(g, depth))
	}

	if !cfg.Perft.Verify {
		return nil
	}
	mismatches, err := perft.Compare(g, depth)
	for _, m := range mismatches {
		fmt.Fprintf(cfg.LogFile, "%s\n", m)
	}
	if err != nil {
		return err
	}
	if cfg.Verbosity > config.Quiet {
		fmt.Fprintf(cfg.LogFile, "perft(%d) agrees with the reference generator\n", depth)
	}
	return nil
}
