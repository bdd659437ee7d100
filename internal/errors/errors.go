// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidPlacement indicates a malformed piece placement string.
	ErrInvalidPlacement = errors.New("invalid placement string")

	// ErrInvalidMoveCode indicates a move code whose cell token is not a valid square.
	ErrInvalidMoveCode = errors.New("invalid move code")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoLegalMove indicates the side to move has no legal move.
	ErrNoLegalMove = errors.New("no legal move")

	// ErrGameOver indicates a move was attempted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrNoSelection indicates a destination was chosen with no piece selected.
	ErrNoSelection = errors.New("no piece selected")

	// ErrNotYourTurn indicates a piece of the side not to move was selected.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrGameNotFound indicates an archived game does not exist.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameError wraps errors with game context: the game ID, the ply at which
// the error occurred and the move text involved. It supports unwrapping via
// errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameID   string // Game identifier (if known)
	Ply      int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, "game "+e.GameID)
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "game error"
}

// Unwrap returns the underlying error.
func (e *GameError) Unwrap() error {
	return e.Err
}

// PlacementError reports where a placement string went wrong.
// Rank is the 1-based rank group counted from the top of the board and
// Column the 1-based character offset inside that group.
type PlacementError struct {
	Err    error
	Rank   int
	Column int
	Got    string
}

// Error returns a formatted error message with location and context.
func (e *PlacementError) Error() string {
	var parts []string

	if e.Rank > 0 {
		loc := fmt.Sprintf("rank %d", e.Rank)
		if e.Column > 0 {
			loc += fmt.Sprintf(", column %d", e.Column)
		}
		parts = append(parts, loc)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "placement error"
}

// Unwrap returns the underlying error.
func (e *PlacementError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
