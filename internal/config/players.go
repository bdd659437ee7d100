package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// PlayerKind selects who moves for one side.
type PlayerKind int

const (
	HumanPlayer  PlayerKind = iota // Moves come from the caller
	SearchPlayer                   // Minimax search
	RandomPlayer                   // Random legal moves
)

var playerKindNames = []string{"human", "search", "random"}

// String returns the flag spelling of a player kind.
func (k PlayerKind) String() string {
	if k >= 0 && int(k) < len(playerKindNames) {
		return playerKindNames[k]
	}
	return "unknown"
}

// ParsePlayerKind parses "human", "search" or "random".
func ParsePlayerKind(s string) (PlayerKind, error) {
	for i, name := range playerKindNames {
		if strings.EqualFold(s, name) {
			return PlayerKind(i), nil
		}
	}
	return 0, fmt.Errorf("player %q: %w", s, errors.ErrInvalidConfig)
}

// PlayersConfig assigns a player kind to each side.
type PlayersConfig struct {
	White PlayerKind
	Black PlayerKind
}

// NewPlayersConfig creates a PlayersConfig where the search plays White
// against the random mover.
func NewPlayersConfig() *PlayersConfig {
	return &PlayersConfig{
		White: SearchPlayer,
		Black: RandomPlayer,
	}
}

// Validate checks that both kinds are known.
func (p *PlayersConfig) Validate() error {
	for _, k := range []PlayerKind{p.White, p.Black} {
		if k < HumanPlayer || k > RandomPlayer {
			return fmt.Errorf("player kind %d: %w", int(k), errors.ErrInvalidConfig)
		}
	}
	return nil
}

// Automated reports whether neither side needs human input.
func (p *PlayersConfig) Automated() bool {
	return p.White != HumanPlayer && p.Black != HumanPlayer
}
