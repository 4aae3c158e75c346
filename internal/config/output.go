package config

import "github.com/lgbarn/bitchess-go/internal/chess"

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects the per-game line (summary, FEN or SAN)
	Format OutputFormat

	// ShowBoard draws the final board after each game
	ShowBoard bool

	// Glyphs selects Unicode or ASCII board drawing
	Glyphs chess.Glyphs

	// ShowLegal lists the legal moves of the final position
	ShowLegal bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: Summary,
		Glyphs: chess.UnicodeGlyphs,
	}
}
