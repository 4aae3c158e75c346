package worker

import (
	"github.com/lgbarn/bitchess-go/internal/engine"
	"github.com/lgbarn/bitchess-go/internal/notation"
)

// Replay returns a ProcessFunc that builds each game from its FEN (or the
// standard start) and plays its move list. opts are applied to every game.
func Replay(opts ...engine.Option) ProcessFunc {
	return replayFunc(false, opts)
}

// ReplaySAN is like Replay and also records the accepted moves in
// standard algebraic notation.
func ReplaySAN(opts ...engine.Option) ProcessFunc {
	return replayFunc(true, opts)
}

func replayFunc(record bool, opts []engine.Option) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Index: item.Index, Name: item.Name}

		g := engine.NewGame(opts...)
		if item.FEN != "" {
			var err error
			if g, err = engine.NewGameFromFEN(item.FEN, opts...); err != nil {
				result.Err = err
				return result
			}
		}
		result.Game = g
		if record {
			result.SAN, result.Err = notation.ReplaySAN(g, item.Moves)
		} else {
			result.Err = notation.Replay(g, item.Moves)
		}
		return result
	}
}
