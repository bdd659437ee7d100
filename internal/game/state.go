package game

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Phase is where a game stands in the per-ply selection cycle.
type Phase int

const (
	AwaitingSelection Phase = iota
	PieceSelected
	Checkmate
	Stalemate
)

var phaseNames = map[Phase]string{
	AwaitingSelection: "awaiting selection",
	PieceSelected:     "piece selected",
	Checkmate:         "checkmate",
	Stalemate:         "stalemate",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further moves are accepted.
func (p Phase) Terminal() bool {
	return p == Checkmate || p == Stalemate
}

// GameState is the turn and result status after the last confirmed move.
type GameState struct {
	ToMove    chess.Colour
	Check     bool
	Checkmate bool
	Stalemate bool
}

// Result returns the result string: "1-0", "0-1", "1/2-1/2" or "*".
func (s GameState) Result() string {
	switch {
	case s.Checkmate && s.ToMove == chess.White:
		return "0-1"
	case s.Checkmate:
		return "1-0"
	case s.Stalemate:
		return "1/2-1/2"
	}
	return "*"
}
