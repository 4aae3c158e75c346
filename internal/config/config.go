// Package config provides configuration for bitchess.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/bitchess-go/internal/errors"
)

// OutputFormat selects what is printed for each replayed game.
type OutputFormat int

const (
	Summary OutputFormat = iota // Status and ply count
	FEN                         // Final position as FEN
	SAN                         // Replayed moves in standard algebraic notation
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case Summary:
		return "summary"
	case FEN:
		return "fen"
	case SAN:
		return "san"
	}
	return "unknown"
}

// ParseOutputFormat converts a flag value into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for _, f := range []OutputFormat{Summary, FEN, SAN} {
		if f.String() == s {
			return f, nil
		}
	}
	return Summary, fmt.Errorf("output format %q: %w", s, errors.ErrInvalidConfig)
}

// Verbosity levels for LogFile diagnostics.
const (
	Quiet      = 0 // Errors only
	Progress   = 1 // Per-run summary
	MoveByMove = 2 // Engine trace of every move
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=summary, 2=per-move trace

	Output OutputConfig
	Replay ReplayConfig
	Perft  PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Progress,
		Output:     *NewOutputConfig(),
		Replay:     *NewReplayConfig(),
		Perft:      *NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every group. Errors wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > MoveByMove {
		return fmt.Errorf("verbosity %d outside %d-%d: %w", c.Verbosity, Quiet, MoveByMove, errors.ErrInvalidConfig)
	}
	if err := c.Replay.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}
