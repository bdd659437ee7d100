package search

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// walker carries per-search state through the recursion. It mutates the
// board in place and restores it after every child, so a walker and its
// board belong to one goroutine.
type walker struct {
	pruning bool
	nodes   int64

	// bufs[d] holds the move list of the node at remaining depth d.
	bufs [][]chess.Move
}

func newWalker(pruning bool) *walker {
	return &walker{pruning: pruning}
}

// moves lists colour's pseudo-legal moves in enumeration order: cells rank
// by rank from the top, then each piece's own move order.
func (w *walker) moves(board *chess.Board, depth int, colour chess.Colour) []chess.Move {
	for len(w.bufs) <= depth {
		w.bufs = append(w.bufs, nil)
	}
	buf := w.bufs[depth][:0]
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			from := chess.Cell{File: file, Rank: rank}
			if p := board.At(from); p == nil || p.Colour != colour {
				continue
			}
			buf = engine.AppendMovements(buf, board, from)
		}
	}
	w.bufs[depth] = buf
	return buf
}

// enter makes m for colour. It returns false, with the board untouched,
// when the move would leave colour's king in check.
func (w *walker) enter(board *chess.Board, m chess.Move, colour chess.Colour) (engine.Undo, bool) {
	if m.Castle && !engine.CastlePathSafe(board, m) {
		return engine.Undo{}, false
	}
	u := engine.MakeMove(board, m)
	if engine.IsChecked(board, colour) {
		engine.UnmakeMove(board, u)
		return engine.Undo{}, false
	}
	return u, true
}

func (w *walker) maximize(board *chess.Board, depth int, colour chess.Colour, alpha, beta int) Result {
	w.nodes++
	if depth <= 0 {
		return Result{Move: chess.NoMove, Score: engine.Evaluate(board)}
	}

	best := Result{Move: chess.NoMove, Score: -Infinity}
	for _, m := range w.moves(board, depth, colour) {
		u, ok := w.enter(board, m, colour)
		if !ok {
			continue
		}
		child := w.minimize(board, depth-1, colour.Opposite(), alpha, beta)
		engine.UnmakeMove(board, u)

		if child.Score > best.Score {
			best = Result{Move: m, Score: child.Score, Found: true}
		}
		alpha = max(alpha, best.Score)
		if w.pruning && beta <= alpha {
			break
		}
	}

	if !best.Found {
		return Result{Move: chess.NoMove, Score: engine.Evaluate(board)}
	}
	return best
}

func (w *walker) minimize(board *chess.Board, depth int, colour chess.Colour, alpha, beta int) Result {
	w.nodes++
	if depth <= 0 {
		return Result{Move: chess.NoMove, Score: engine.Evaluate(board)}
	}

	best := Result{Move: chess.NoMove, Score: Infinity}
	for _, m := range w.moves(board, depth, colour) {
		u, ok := w.enter(board, m, colour)
		if !ok {
			continue
		}
		child := w.maximize(board, depth-1, colour.Opposite(), alpha, beta)
		engine.UnmakeMove(board, u)

		if child.Score < best.Score {
			best = Result{Move: m, Score: child.Score, Found: true}
		}
		beta = min(beta, best.Score)
		if w.pruning && beta <= alpha {
			break
		}
	}

	if !best.Found {
		return Result{Move: chess.NoMove, Score: engine.Evaluate(board)}
	}
	return best
}
