package chess

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Move is a single piece relocation with its modifier flags.
type Move struct {
	// Source and destination cells.
	From Cell
	To   Cell

	// Capture is set when the destination holds an opposing piece.
	Capture bool

	// Castle is set on the two-cell king hop; the rook moves with it.
	Castle bool

	// Promotion is set when a pawn lands on the farthest rank.
	Promotion bool
}

// NoMove is returned where a search or selector has nothing to play.
var NoMove = Move{From: NoCell, To: NoCell}

// IsNone reports whether the move is the NoMove sentinel.
func (m Move) IsNone() bool {
	return m == NoMove
}

// Code returns the move code of the destination with its flags.
func (m Move) Code() MoveCode {
	return EncodeMove(m.To, m.Capture, m.Castle, m.Promotion)
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	if m.IsNone() {
		return "(none)"
	}
	return m.From.String() + m.To.String()
}

// ParseMove parses long algebraic text such as "e2e4" into a move with
// only its cells set. Flags are resolved against a board by the engine.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return NoMove, fmt.Errorf("move %q: %w", s, errors.ErrInvalidMoveCode)
	}
	from, err := ParseCell(s[:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseCell(s[2:])
	if err != nil {
		return NoMove, err
	}
	return Move{From: from, To: to}, nil
}
