// Package config provides configuration for the chess engine and its
// command-line driver.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game summary, 2=every move and search

	// Sub-configurations
	Search  *SearchConfig
	Rules   *RulesConfig
	Players *PlayersConfig
	Output  *OutputConfig

	// Placement is the starting position, piece placement field only.
	Placement string

	// MaxPlies ends a self-play game undecided after this many plies;
	// 0 means no limit.
	MaxPlies int

	// Seed drives the random mover.
	Seed int64

	// StorePath is the game archive directory; empty disables archiving.
	StorePath string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Search:     NewSearchConfig(),
		Rules:      NewRulesConfig(),
		Players:    NewPlayersConfig(),
		Output:     NewOutputConfig(),
		Placement:  engine.InitialPlacement,
		MaxPlies:   200,
		Seed:       1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every sub-configuration and the top-level fields.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.MaxPlies < 0 {
		return fmt.Errorf("max plies %d is negative: %w", c.MaxPlies, errors.ErrInvalidConfig)
	}
	if c.Placement == "" {
		return fmt.Errorf("empty placement: %w", errors.ErrInvalidConfig)
	}
	if err := c.Search.Validate(); err != nil {
		return errors.Wrap(err, "search")
	}
	if err := c.Rules.Validate(); err != nil {
		return errors.Wrap(err, "rules")
	}
	if err := c.Players.Validate(); err != nil {
		return errors.Wrap(err, "players")
	}
	return nil
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostic stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
