package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Result is the outcome of scanning one side's moves.
type Result struct {
	// Checked is true if the side's king is attacked.
	Checked bool

	// Checkmate: in check with zero legal moves.
	Checkmate bool

	// Stalemate: not in check with zero legal moves.
	Stalemate bool

	// ValidMovements counts the pseudo-legal moves that do not leave the
	// side in check.
	ValidMovements int
}

// Terminal reports whether the game is over for the scanned side.
func (r Result) Terminal() bool {
	return r.Checkmate || r.Stalemate
}

// CheckGameResult simulates every pseudo-legal move of the given colour,
// counting those that leave its king safe, and derives checkmate and
// stalemate from the count.
func CheckGameResult(board *chess.Board, colour chess.Colour) Result {
	res := Result{Checked: IsChecked(board, colour)}

	var buf []chess.Move
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			from := chess.Cell{File: file, Rank: rank}
			if p := board.At(from); p == nil || p.Colour != colour {
				continue
			}
			buf = AppendMovements(buf[:0], board, from)
			for _, m := range buf {
				if IsLegal(board, m) {
					res.ValidMovements++
				}
			}
		}
	}

	res.Checkmate = res.Checked && res.ValidMovements == 0
	res.Stalemate = !res.Checked && res.ValidMovements == 0
	return res
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return CheckGameResult(board, board.ToMove).Checkmate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return CheckGameResult(board, board.ToMove).Stalemate
}
