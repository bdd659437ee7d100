package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// IsLegal reports whether a pseudo-legal move keeps the mover's king safe.
// The board is mutated and restored; nothing observable changes.
func IsLegal(board *chess.Board, move chess.Move) bool {
	piece := board.At(move.From)
	if piece == nil {
		return false
	}
	if move.Castle && !CastlePathSafe(board, move) {
		return false
	}
	u := MakeMove(board, move)
	legal := !IsChecked(board, piece.Colour)
	UnmakeMove(board, u)
	return legal
}

// LegalMoves returns every legal move of the given colour in enumeration
// order: cells rank by rank from the top, then per-piece move order.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var legal []chess.Move
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
					legal = append(legal, m)
				}
			}
		}
	}
	return legal
}

// LegalDestinations returns the legal moves of the piece on from, for the
// input layer to highlight.
func LegalDestinations(board *chess.Board, from chess.Cell) []chess.Move {
	var legal []chess.Move
	for _, m := range Movements(board, from) {
		if IsLegal(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// CastlePathSafe applies strict castling: the king may not castle out of
// check or across an attacked cell. The landing cell is left to the
// ordinary check-safety gate. Without strict castling it always passes.
func CastlePathSafe(board *chess.Board, move chess.Move) bool {
	if !board.Rules.StrictCastling {
		return true
	}
	king := board.At(move.From)
	if king == nil {
		return false
	}
	dir := 1
	if move.To.File < move.From.File {
		dir = -1
	}
	enemy := king.Colour.Opposite()
	return !IsSquareAttacked(board, move.From, enemy) &&
		!IsSquareAttacked(board, move.From.Offset(dir, 0), enemy)
}
