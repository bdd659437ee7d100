// Package game runs a chess session: piece selection and move
// confirmation for human players, policy moves for computer players, and
// the checkmate and stalemate states that freeze the board until Reset.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/store"
)

// Game is one session between two players on a single board.
type Game struct {
	ID    string
	Board *chess.Board

	placement string
	rules     chess.Rules
	players   [2]Player

	phase    Phase
	state    GameState
	selected chess.Cell
	history  []chess.Move

	startedAt  time.Time
	finishedAt time.Time

	// now is replaceable in tests.
	now func() time.Time
}

// New sets up a game from placement. White and black must be players of
// the matching colour.
func New(placement string, rules chess.Rules, white, black Player) (*Game, error) {
	if white == nil || black == nil {
		return nil, fmt.Errorf("missing player: %w", errors.ErrInvalidConfig)
	}
	if white.Colour() != chess.White || black.Colour() != chess.Black {
		return nil, fmt.Errorf("players seated on the wrong side: %w", errors.ErrInvalidConfig)
	}

	g := &Game{
		placement: placement,
		rules:     rules,
		players:   [2]Player{white, black},
		now:       time.Now,
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset starts a fresh game from the original placement under a new ID.
func (g *Game) Reset() error {
	board, err := engine.Setup(g.placement, g.rules)
	if err != nil {
		return err
	}
	g.ID = uuid.New().String()
	g.Board = board
	g.selected = chess.NoCell
	g.history = nil
	g.startedAt = g.now()
	g.finishedAt = time.Time{}
	g.refresh()
	return nil
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// State returns the turn and result status.
func (g *Game) State() GameState { return g.state }

// Player returns the player of the given colour.
func (g *Game) Player(colour chess.Colour) Player { return g.players[colour] }

// ToMove returns the player whose turn it is.
func (g *Game) ToMove() Player { return g.players[g.Board.ToMove] }

// Selected returns the selected cell, or NoCell.
func (g *Game) Selected() chess.Cell { return g.selected }

// History returns the confirmed moves in play order.
func (g *Game) History() []chess.Move {
	return append([]chess.Move(nil), g.history...)
}

// Captured returns the captured pieces in capture order.
func (g *Game) Captured() []*chess.Piece {
	return append([]*chess.Piece(nil), g.Board.Captured...)
}

// Select picks up the piece on cell for the human side to move. Selecting
// another own piece while one is held switches the selection.
func (g *Game) Select(cell chess.Cell) error {
	if g.phase.Terminal() {
		return g.errorf(errors.ErrGameOver, "")
	}
	if !g.ToMove().Human() {
		return g.errorf(errors.ErrNotYourTurn, cell.String())
	}
	p := g.Board.At(cell)
	if p == nil {
		return g.errorf(errors.ErrNoSelection, cell.String())
	}
	if p.Colour != g.Board.ToMove {
		return g.errorf(errors.ErrNotYourTurn, cell.String())
	}
	g.selected = cell
	g.phase = PieceSelected
	return nil
}

// Deselect drops the held piece.
func (g *Game) Deselect() {
	if g.phase == PieceSelected {
		g.selected = chess.NoCell
		g.phase = AwaitingSelection
	}
}

// Targets returns the legal moves of the selected piece.
func (g *Game) Targets() []chess.Move {
	if g.phase != PieceSelected {
		return nil
	}
	return engine.LegalDestinations(g.Board, g.selected)
}

// MoveTo moves the selected piece to cell. An illegal destination is not
// an error: it reports false and the piece goes back to where it was.
// Either way the selection is released.
func (g *Game) MoveTo(cell chess.Cell) (bool, error) {
	if g.phase.Terminal() {
		return false, g.errorf(errors.ErrGameOver, "")
	}
	if g.phase != PieceSelected {
		return false, g.errorf(errors.ErrNoSelection, cell.String())
	}

	from := g.selected
	g.selected = chess.NoCell
	g.phase = AwaitingSelection
	return g.apply(from, cell), nil
}

// Replay applies moves for whichever side is to move, regardless of who
// plays it. It stops at the first move that is not legal.
func (g *Game) Replay(moves ...chess.Move) error {
	for _, m := range moves {
		if g.phase.Terminal() {
			return g.errorf(errors.ErrGameOver, m.String())
		}
		g.Deselect()
		if !g.apply(m.From, m.To) {
			return g.errorf(errors.ErrIllegalMove, m.String())
		}
	}
	return nil
}

// Play selects from and moves it to to in one step.
func (g *Game) Play(from, to chess.Cell) (bool, error) {
	if err := g.Select(from); err != nil {
		return false, err
	}
	return g.MoveTo(to)
}

// PlayComputer lets the computer side to move choose and apply a move.
func (g *Game) PlayComputer(ctx context.Context) (chess.Move, error) {
	if g.phase.Terminal() {
		return chess.NoMove, g.errorf(errors.ErrGameOver, "")
	}
	cp, ok := g.ToMove().(*ComputerPlayer)
	if !ok {
		return chess.NoMove, g.errorf(errors.ErrNotYourTurn, "")
	}

	g.Deselect()
	m, err := cp.Policy.Play(ctx, g.Board)
	if err != nil {
		return chess.NoMove, g.errorf(err, "")
	}
	g.confirm(m)
	return m, nil
}

// Run plays computer moves until the game ends, a human is to move, or
// maxPlies moves have been played in total. maxPlies <= 0 means no limit.
// Each confirmed move is passed to onMove when it is non-nil.
func (g *Game) Run(ctx context.Context, maxPlies int, onMove func(chess.Move)) error {
	for !g.phase.Terminal() && !g.ToMove().Human() {
		if maxPlies > 0 && len(g.history) >= maxPlies {
			return nil
		}
		m, err := g.PlayComputer(ctx)
		if err != nil {
			return err
		}
		if onMove != nil {
			onMove(m)
		}
	}
	return nil
}

// Record returns the archive record of the game so far.
func (g *Game) Record() *store.Record {
	moves := make([]string, len(g.history))
	for i, m := range g.history {
		moves[i] = m.String()
	}
	finished := g.finishedAt
	if finished.IsZero() {
		finished = g.now()
	}
	return &store.Record{
		ID:         g.ID,
		Placement:  g.placement,
		Moves:      moves,
		Result:     g.state.Result(),
		Final:      engine.Placement(g.Board),
		Plies:      len(g.history),
		White:      g.players[chess.White].Name(),
		Black:      g.players[chess.Black].Name(),
		StartedAt:  g.startedAt,
		FinishedAt: finished,
	}
}

// apply plays from-to for the side to move if it is legal.
func (g *Game) apply(from, to chess.Cell) bool {
	if p := g.Board.At(from); p == nil || p.Colour != g.Board.ToMove {
		return false
	}
	for _, m := range engine.LegalDestinations(g.Board, from) {
		if m.To == to && engine.TryMove(g.Board, from, to) {
			g.confirm(m)
			return true
		}
	}
	return false
}

func (g *Game) confirm(m chess.Move) {
	g.history = append(g.history, m)
	g.refresh()
}

// refresh recomputes the state for the side now to move.
func (g *Game) refresh() {
	colour := g.Board.ToMove
	r := engine.CheckGameResult(g.Board, colour)
	g.state = GameState{
		ToMove:    colour,
		Check:     r.Checked,
		Checkmate: r.Checkmate,
		Stalemate: r.Stalemate,
	}
	switch {
	case r.Checkmate:
		g.phase = Checkmate
	case r.Stalemate:
		g.phase = Stalemate
	default:
		g.phase = AwaitingSelection
	}
	if g.phase.Terminal() && g.finishedAt.IsZero() {
		g.finishedAt = g.now()
	}
}

func (g *Game) errorf(err error, moveText string) error {
	return &errors.GameError{Err: err, GameID: g.ID, Ply: len(g.history) + 1, MoveText: moveText}
}
