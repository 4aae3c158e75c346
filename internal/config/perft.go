package config

import (
	"fmt"

	"github.com/lgbarn/bitchess-go/internal/errors"
)

// MaxPerftDepth bounds perft runs; depth 7 from the start is already
// over three billion nodes.
const MaxPerftDepth = 7

// PerftConfig holds settings for move generation counts.
type PerftConfig struct {
	// Depth is the number of plies to count; 0 disables perft
	Depth int

	// Divide prints the count below each root move
	Divide bool

	// Verify compares every root move against the reference generator
	Verify bool
}

// NewPerftConfig creates a PerftConfig with default values.
// All fields use Go zero values - perft is disabled by default.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{}
}

// Enabled reports whether a perft run was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0-%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if (p.Divide || p.Verify) && p.Depth == 0 {
		return fmt.Errorf("divide and verify need a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
