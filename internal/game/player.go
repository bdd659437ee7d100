package game

import (
	"context"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Player is one side of a game.
type Player interface {
	Colour() chess.Colour
	Human() bool
	Name() string
}

// Policy chooses a move for the side to move and applies it to the board.
// search.Searcher and search.RandomMover both satisfy it.
type Policy interface {
	Play(ctx context.Context, board *chess.Board) (chess.Move, error)
}

// HumanPlayer moves through Select and MoveTo.
type HumanPlayer struct {
	colour chess.Colour
}

// NewHumanPlayer returns a human player for colour.
func NewHumanPlayer(colour chess.Colour) *HumanPlayer {
	return &HumanPlayer{colour: colour}
}

func (p *HumanPlayer) Colour() chess.Colour { return p.colour }
func (p *HumanPlayer) Human() bool          { return true }
func (p *HumanPlayer) Name() string         { return "human" }

// ComputerPlayer moves through PlayComputer using its policy.
type ComputerPlayer struct {
	colour chess.Colour
	name   string
	Policy Policy
}

// NewComputerPlayer returns a computer player for colour. name is recorded
// in archived games.
func NewComputerPlayer(colour chess.Colour, name string, policy Policy) *ComputerPlayer {
	return &ComputerPlayer{colour: colour, name: name, Policy: policy}
}

func (p *ComputerPlayer) Colour() chess.Colour { return p.colour }
func (p *ComputerPlayer) Human() bool          { return false }
func (p *ComputerPlayer) Name() string         { return p.name }
