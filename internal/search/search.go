// Package search chooses moves for the computer side: depth-bounded
// minimax with optional alpha-beta pruning, a parallel root search over
// cloned boards, and a random-move baseline.
package search

import (
	"context"
	"fmt"
	"io"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// Infinity bounds every reachable evaluation.
const Infinity = 1 << 30

// Result is the outcome of a search.
type Result struct {
	Move  chess.Move
	Score int

	// Found is false when the searched side had no legal move, or at
	// depth zero; Score is then the static evaluation.
	Found bool

	// Nodes counts visited positions, leaves included.
	Nodes int64
}

// Searcher holds the search settings. The zero value searches one ply
// without pruning on the calling goroutine.
type Searcher struct {
	Depth   int
	Pruning bool

	// Workers > 1 searches root moves concurrently, each on its own copy
	// of the board.
	Workers int

	// Logger receives one line per completed search when non-nil.
	Logger io.Writer
}

// New returns a Searcher with alpha-beta pruning at the given depth.
func New(depth int) *Searcher {
	return &Searcher{Depth: depth, Pruning: true, Workers: 1}
}

// Maximize searches colour's moves to depth plies and returns the highest
// scoring one. Positive scores favour White.
func (s *Searcher) Maximize(board *chess.Board, depth int, colour chess.Colour, alpha, beta int) Result {
	w := newWalker(s.Pruning)
	res := w.maximize(board, depth, colour, alpha, beta)
	res.Nodes = w.nodes
	return res
}

// Minimize is the dual of Maximize: it returns colour's lowest scoring move.
func (s *Searcher) Minimize(board *chess.Board, depth int, colour chess.Colour, alpha, beta int) Result {
	w := newWalker(s.Pruning)
	res := w.minimize(board, depth, colour, alpha, beta)
	res.Nodes = w.nodes
	return res
}

// BestMove searches the position for the side to move: White maximises,
// Black minimises. The board is left as it was. Cancellation of ctx is
// noticed between root moves.
func (s *Searcher) BestMove(ctx context.Context, board *chess.Board) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{Move: chess.NoMove}, err
	}

	var (
		res Result
		err error
	)
	if s.Workers > 1 && s.Depth > 0 {
		res, err = s.parallelRoot(ctx, board)
	} else {
		res, err = s.sequentialRoot(ctx, board)
	}
	if err != nil {
		return res, err
	}

	if s.Logger != nil {
		fmt.Fprintf(s.Logger, "search: %s depth %d best %s score %d nodes %d\n",
			board.ToMove, s.Depth, res.Move, res.Score, res.Nodes)
	}
	return res, nil
}

// Play searches the position and applies the chosen move.
func (s *Searcher) Play(ctx context.Context, board *chess.Board) (chess.Move, error) {
	res, err := s.BestMove(ctx, board)
	if err != nil {
		return chess.NoMove, err
	}
	if !res.Found {
		return chess.NoMove, errors.ErrNoLegalMove
	}
	if !engine.ApplyMove(board, res.Move) {
		return chess.NoMove, fmt.Errorf("search chose %s: %w", res.Move, errors.ErrIllegalMove)
	}
	return res.Move, nil
}

// rootImproves reports whether score replaces best for the given side.
// Ties keep the earlier move.
func rootImproves(maximizing bool, score, best int) bool {
	if maximizing {
		return score > best
	}
	return score < best
}

// sequentialRoot mirrors maximize/minimize at the root so that it can
// stop between moves.
func (s *Searcher) sequentialRoot(ctx context.Context, board *chess.Board) (Result, error) {
	colour := board.ToMove
	maximizing := colour == chess.White
	w := newWalker(s.Pruning)

	if s.Depth <= 0 {
		w.nodes++
		return Result{Move: chess.NoMove, Score: engine.Evaluate(board), Nodes: w.nodes}, nil
	}

	w.nodes++
	best := Result{Move: chess.NoMove, Score: Infinity}
	if maximizing {
		best.Score = -Infinity
	}
	alpha, beta := -Infinity, Infinity

	for _, m := range w.moves(board, s.Depth, colour) {
		if err := ctx.Err(); err != nil {
			return Result{Move: chess.NoMove, Nodes: w.nodes}, err
		}
		u, ok := w.enter(board, m, colour)
		if !ok {
			continue
		}
		var child Result
		if maximizing {
			child = w.minimize(board, s.Depth-1, colour.Opposite(), alpha, beta)
		} else {
			child = w.maximize(board, s.Depth-1, colour.Opposite(), alpha, beta)
		}
		engine.UnmakeMove(board, u)

		if rootImproves(maximizing, child.Score, best.Score) {
			best = Result{Move: m, Score: child.Score, Found: true}
		}
		if maximizing {
			alpha = max(alpha, best.Score)
		} else {
			beta = min(beta, best.Score)
		}
	}

	if !best.Found {
		best.Score = engine.Evaluate(board)
	}
	best.Nodes = w.nodes
	return best, nil
}

// parallelRoot searches every legal root move on a cloned board in the
// worker pool. Each child gets the full window, so the merged result is the
// same as the sequential search.
func (s *Searcher) parallelRoot(ctx context.Context, board *chess.Board) (Result, error) {
	colour := board.ToMove
	maximizing := colour == chess.White
	roots := engine.LegalMoves(board, colour)
	if len(roots) == 0 {
		return Result{Move: chess.NoMove, Score: engine.Evaluate(board), Nodes: 1}, nil
	}

	depth := s.Depth - 1
	pruning := s.Pruning
	pool := worker.NewPoolWithOptions(func(item worker.WorkItem) worker.ProcessResult {
		w := newWalker(pruning)
		engine.MakeMove(item.Board, item.Move)
		var child Result
		if maximizing {
			child = w.minimize(item.Board, depth, colour.Opposite(), -Infinity, Infinity)
		} else {
			child = w.maximize(item.Board, depth, colour.Opposite(), -Infinity, Infinity)
		}
		return worker.ProcessResult{Index: item.Index, Move: item.Move, Score: child.Score, Nodes: w.nodes}
	}, worker.WithWorkers(s.Workers), worker.WithBufferSize(len(roots)))

	pool.Start()
	go func() {
		defer pool.Close()
		for i, m := range roots {
			if ctx.Err() != nil {
				pool.Stop()
				return
			}
			pool.Submit(worker.WorkItem{Board: board.Clone(), Move: m, Index: i})
		}
	}()

	scores := make([]int, len(roots))
	done := make([]bool, len(roots))
	nodes := int64(1)
	for r := range pool.Results() {
		scores[r.Index] = r.Score
		done[r.Index] = true
		nodes += r.Nodes
	}
	if err := ctx.Err(); err != nil {
		return Result{Move: chess.NoMove, Nodes: nodes}, err
	}

	best := Result{Move: chess.NoMove, Score: Infinity}
	if maximizing {
		best.Score = -Infinity
	}
	for i, m := range roots {
		if done[i] && rootImproves(maximizing, scores[i], best.Score) {
			best = Result{Move: m, Score: scores[i], Found: true}
		}
	}
	best.Nodes = nodes
	return best, nil
}
