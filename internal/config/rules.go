package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// RulesConfig holds the rule variations a game is played under.
type RulesConfig struct {
	// Promotion is the kind a pawn becomes on the last rank.
	Promotion chess.Kind

	// StrictCastling forbids castling out of or across check.
	StrictCastling bool
}

// NewRulesConfig creates a RulesConfig with queen promotion and strict
// castling.
func NewRulesConfig() *RulesConfig {
	r := chess.DefaultRules()
	return &RulesConfig{Promotion: r.Promotion, StrictCastling: r.StrictCastling}
}

// Validate checks that the promotion kind is one a pawn may become.
func (r *RulesConfig) Validate() error {
	switch r.Promotion {
	case chess.Queen, chess.Rookie, chess.Bishop, chess.Knight:
		return nil
	}
	return fmt.Errorf("cannot promote to %s: %w", r.Promotion, errors.ErrInvalidConfig)
}

// BoardRules converts the configuration to board rules.
func (r *RulesConfig) BoardRules() chess.Rules {
	return chess.Rules{Promotion: r.Promotion, StrictCastling: r.StrictCastling}
}

// ParsePromotion parses a promotion piece letter such as "q" or "N".
func ParsePromotion(s string) (chess.Kind, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("promotion %q: %w", s, errors.ErrInvalidConfig)
	}
	kind, ok := chess.KindFromLetter(strings.ToUpper(s)[0])
	if !ok {
		return 0, fmt.Errorf("promotion %q: %w", s, errors.ErrInvalidConfig)
	}
	return kind, nil
}
