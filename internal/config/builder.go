package config

import (
	"io"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config. It is not validated.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth in plies.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithPruning toggles alpha-beta pruning.
func (b *ConfigBuilder) WithPruning(enabled bool) *ConfigBuilder {
	b.cfg.Search.Pruning = enabled
	return b
}

// WithWorkers sets the number of root search workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithPromotion sets the promotion kind.
func (b *ConfigBuilder) WithPromotion(kind chess.Kind) *ConfigBuilder {
	b.cfg.Rules.Promotion = kind
	return b
}

// WithStrictCastling toggles strict castling.
func (b *ConfigBuilder) WithStrictCastling(enabled bool) *ConfigBuilder {
	b.cfg.Rules.StrictCastling = enabled
	return b
}

// WithPlayers sets the player kind of each side.
func (b *ConfigBuilder) WithPlayers(white, black PlayerKind) *ConfigBuilder {
	b.cfg.Players.White = white
	b.cfg.Players.Black = black
	return b
}

// WithPlacement sets the starting position.
func (b *ConfigBuilder) WithPlacement(placement string) *ConfigBuilder {
	b.cfg.Placement = placement
	return b
}

// WithMaxPlies sets the self-play ply limit.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.MaxPlies = n
	return b
}

// WithSeed sets the random mover seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Seed = seed
	return b
}

// WithStorePath sets the game archive directory.
func (b *ConfigBuilder) WithStorePath(path string) *ConfigBuilder {
	b.cfg.StorePath = path
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostic writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
