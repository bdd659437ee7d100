package config

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// MaxSearchDepth bounds the configurable search depth. Search time grows
// exponentially with depth and there is no other limit.
const MaxSearchDepth = 8

// SearchConfig holds settings for the computer player's search.
type SearchConfig struct {
	// Depth is the number of plies searched.
	Depth int

	// Pruning enables alpha-beta cut-offs; off runs exhaustive minimax.
	Pruning bool

	// Workers searches root moves concurrently when greater than one.
	Workers int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:   3,
		Pruning: true,
		Workers: 1,
	}
}

// Validate checks that the search configuration is usable.
func (s *SearchConfig) Validate() error {
	if s.Depth < 1 || s.Depth > MaxSearchDepth {
		return fmt.Errorf("depth %d outside 1..%d: %w", s.Depth, MaxSearchDepth, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers %d < 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
