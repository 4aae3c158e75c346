package config

import (
	"fmt"

	"github.com/lgbarn/bitchess-go/internal/errors"
)

// MaxWorkers bounds the replay worker pool.
const MaxWorkers = 256

// ReplayConfig holds settings for replaying move lists.
type ReplayConfig struct {
	// FEN is the starting position; empty means the standard start
	FEN string

	// Workers is the number of games replayed concurrently
	Workers int

	// BufferSize is the worker pool channel capacity
	BufferSize int

	// StopOnError abandons the batch after the first failed game
	StopOnError bool
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Workers:    1,
		BufferSize: 100,
	}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 1 || r.Workers > MaxWorkers {
		return fmt.Errorf("workers %d outside 1-%d: %w", r.Workers, MaxWorkers, errors.ErrInvalidConfig)
	}
	if r.BufferSize < 1 {
		return fmt.Errorf("buffer size %d: %w", r.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
