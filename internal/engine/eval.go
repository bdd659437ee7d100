package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Material values in tenths of a point: a pawn is 100.
var materialValue = [chess.NumKinds]int{
	chess.Pawn:   100,
	chess.Rookie: 500,
	chess.Knight: 300,
	chess.Bishop: 300,
	chess.Queen:  900,
	chess.King:   9000,
}

// Piece-square tables from White's point of view, row 0 being the top of
// the board. Black reads them mirrored vertically.
var pieceSquare = [chess.NumKinds][chess.BoardSize][chess.BoardSize]int{
	chess.Pawn: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{50, 50, 50, 50, 50, 50, 50, 50},
		{10, 10, 20, 30, 30, 20, 10, 10},
		{5, 5, 10, 25, 25, 10, 5, 5},
		{0, 0, 0, 20, 20, 0, 0, 0},
		{5, -5, -10, 0, 0, -10, -5, 5},
		{5, 10, 10, -20, -20, 10, 10, 5},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	chess.Knight: {
		{-50, -40, -30, -30, -30, -30, -40, -50},
		{-40, -20, 0, 5, 5, 0, -20, -40},
		{-30, 5, 10, 15, 15, 10, 5, -30},
		{-30, 0, 15, 20, 20, 15, 0, -30},
		{-30, 0, 15, 20, 20, 15, 0, -30},
		{-30, 5, 10, 15, 15, 10, 5, -30},
		{-40, -20, 0, 5, 5, 0, -20, -40},
		{-50, -40, -30, -30, -30, -30, -40, -50},
	},
	chess.Bishop: {
		{-20, -10, -10, -10, -10, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 5, 10, 10, 5, 0, -10},
		{-10, 5, 5, 10, 10, 5, 5, -10},
		{-10, 0, 10, 10, 10, 10, 0, -10},
		{-10, 10, 10, 10, 10, 10, 10, -10},
		{-10, 5, 0, 0, 0, 0, 5, -10},
		{-20, -10, -10, -10, -10, -10, -10, -20},
	},
	chess.Rookie: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 10, 10, 10, 10, 10, 10, 5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{0, 0, 0, 5, 5, 0, 0, 0},
	},
	chess.Queen: {
		{-20, -10, -10, -5, -5, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 5, 5, 5, 5, 0, -10},
		{-5, 0, 5, 5, 5, 5, 0, -5},
		{0, 0, 5, 5, 5, 5, 0, -5},
		{-10, 5, 5, 5, 5, 5, 0, -10},
		{-10, 0, 5, 0, 0, 0, 0, -10},
		{-20, -10, -10, -5, -5, -10, -10, -20},
	},
	chess.King: {
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-20, -30, -30, -40, -40, -30, -30, -20},
		{-10, -20, -20, -20, -20, -20, -20, -10},
		{20, 20, 0, 0, 0, 0, 20, 20},
		{20, 30, 10, 0, 0, 10, 30, 20},
	},
}

// PieceScore returns the material plus positional value of a piece
// standing on cell, from its own side's point of view.
func PieceScore(p *chess.Piece, cell chess.Cell) int {
	if p == nil || !cell.Inside() {
		return 0
	}
	row := cell.Rank
	if p.Colour == chess.Black {
		row = chess.BoardSize - 1 - row
	}
	return materialValue[p.Kind] + pieceSquare[p.Kind][row][cell.File]
}

// Evaluate sums every piece's score, White positive and Black negative.
// White is the maximising side in search.
func Evaluate(board *chess.Board) int {
	score := 0
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			c := chess.Cell{File: file, Rank: rank}
			p := board.At(c)
			if p == nil {
				continue
			}
			if p.Colour == chess.White {
				score += PieceScore(p, c)
			} else {
				score -= PieceScore(p, c)
			}
		}
	}
	return score
}
