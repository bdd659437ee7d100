package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// IsChecked returns true if the given colour's king is attacked by any
// opposing piece.
func IsChecked(board *chess.Board, colour chess.Colour) bool {
	king := board.KingCell(colour)

	// If king position not tracked, search for it
	if !king.Inside() || !isKing(board.At(king), colour) {
		king = findKing(board, colour)
		if !king.Inside() {
			return false // No king found
		}
	}

	return IsSquareAttacked(board, king, colour.Opposite())
}

func isKing(p *chess.Piece, colour chess.Colour) bool {
	return p != nil && p.Kind == chess.King && p.Colour == colour
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) chess.Cell {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			c := chess.Cell{File: file, Rank: rank}
			if isKing(board.At(c), colour) {
				return c
			}
		}
	}
	return chess.NoCell
}

// IsSquareAttacked returns true if the cell is attacked by the given colour:
// some piece of that colour has the cell among its pseudo-legal capture
// destinations. Castling never captures, so it is not considered.
func IsSquareAttacked(board *chess.Board, cell chess.Cell, byColour chess.Colour) bool {
	// Check pawn attacks; a pawn attacks diagonally forward of itself.
	pawnRank := cell.Rank - byColour.Forward()
	for _, df := range [2]int{-1, 1} {
		if attackerIs(board.At(chess.Cell{File: cell.File + df, Rank: pawnRank}), byColour, chess.Pawn) {
			return true
		}
	}

	// Check knight attacks
	for _, off := range knightOffsets {
		if attackerIs(board.At(cell.Offset(off[0], off[1])), byColour, chess.Knight) {
			return true
		}
	}

	// Check king attacks
	for _, off := range kingOffsets {
		if attackerIs(board.At(cell.Offset(off[0], off[1])), byColour, chess.King) {
			return true
		}
	}

	// Check sliding pieces along diagonals
	for _, dir := range diagonalDirs {
		if p := firstOnRay(board, cell, dir); attackerIs(p, byColour, chess.Bishop) || attackerIs(p, byColour, chess.Queen) {
			return true
		}
	}

	// Check sliding pieces along straight lines
	for _, dir := range straightDirs {
		if p := firstOnRay(board, cell, dir); attackerIs(p, byColour, chess.Rookie) || attackerIs(p, byColour, chess.Queen) {
			return true
		}
	}

	return false
}

func attackerIs(p *chess.Piece, colour chess.Colour, kind chess.Kind) bool {
	return p != nil && p.Colour == colour && p.Kind == kind
}

// firstOnRay returns the first piece met walking from cell along dir.
func firstOnRay(board *chess.Board, cell chess.Cell, dir [2]int) *chess.Piece {
	for c := cell.Offset(dir[0], dir[1]); c.Inside(); c = c.Offset(dir[0], dir[1]) {
		if p := board.At(c); p != nil {
			return p
		}
	}
	return nil
}
