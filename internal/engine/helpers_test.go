package engine

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// playRandom plays up to plies random legal moves on board, calling visit
// after each one. It stops early when the side to move has no legal move.
func playRandom(t testing.TB, board *chess.Board, plies int, seed int64, visit func(*chess.Board)) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < plies; i++ {
		moves := LegalMoves(board, board.ToMove)
		if len(moves) == 0 {
			return
		}
		m := moves[rng.Intn(len(moves))]
		if !ApplyMove(board, m) {
			t.Fatalf("ply %d: legal move %v rejected on %s", i, m, Placement(board))
		}
		if visit != nil {
			visit(board)
		}
	}
}

func playMoves(t testing.TB, board *chess.Board, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, err := chess.ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q) error: %v", s, err)
		}
		if !TryMove(board, m.From, m.To) {
			t.Fatalf("move %s rejected on %s", s, Placement(board))
		}
	}
}

// attackedByMovements is the reference check test: some opposing piece has
// the king's cell among its pseudo-legal destinations.
func attackedByMovements(board *chess.Board, colour chess.Colour) bool {
	king := findKing(board, colour)
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			from := chess.Cell{File: file, Rank: rank}
			if p := board.At(from); p == nil || p.Colour == colour {
				continue
			}
			for _, m := range Movements(board, from) {
				if m.To == king {
					return true
				}
			}
		}
	}
	return false
}
