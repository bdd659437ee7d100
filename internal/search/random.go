package search

import (
	"context"
	"math/rand"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// RandomMover plays a random legal move. It is the baseline opponent.
type RandomMover struct {
	Rand *rand.Rand
}

// NewRandomMover returns a RandomMover seeded with seed.
func NewRandomMover(seed int64) *RandomMover {
	return &RandomMover{Rand: rand.New(rand.NewSource(seed))}
}

// Play picks one of the side to move's pieces at random, then one of its
// pseudo-legal moves, until the check-safety gate accepts one. The accepted
// move has been applied to board when Play returns.
//
// A side with no legal move gets ErrNoLegalMove instead of looping forever.
func (r *RandomMover) Play(ctx context.Context, board *chess.Board) (chess.Move, error) {
	if err := ctx.Err(); err != nil {
		return chess.NoMove, err
	}

	colour := board.ToMove
	if engine.CheckGameResult(board, colour).ValidMovements == 0 {
		return chess.NoMove, errors.ErrNoLegalMove
	}

	var cells []chess.Cell
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			c := chess.Cell{File: file, Rank: rank}
			if p := board.At(c); p != nil && p.Colour == colour {
				cells = append(cells, c)
			}
		}
	}

	for {
		moves := engine.Movements(board, cells[r.Rand.Intn(len(cells))])
		if len(moves) == 0 {
			continue
		}
		m := moves[r.Rand.Intn(len(moves))]
		if engine.ApplyMove(board, m) {
			return m, nil
		}
	}
}
