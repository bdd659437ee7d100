package testutil

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// MustSetup builds a board from a placement string with the default
// rules, failing the test on malformed input.
func MustSetup(t testing.TB, placement string) *chess.Board {
	t.Helper()
	return MustSetupWithRules(t, placement, chess.DefaultRules())
}

// MustSetupWithRules is MustSetup with explicit rules.
func MustSetupWithRules(t testing.TB, placement string, rules chess.Rules) *chess.Board {
	t.Helper()
	board, err := engine.Setup(placement, rules)
	if err != nil {
		t.Fatalf("Setup(%q): %v", placement, err)
	}
	return board
}

// PlayMoves applies long algebraic moves ("e2e4") in order, failing the
// test on the first one that is malformed or rejected.
func PlayMoves(t testing.TB, board *chess.Board, moves ...string) {
	t.Helper()
	for i, s := range moves {
		m, err := chess.ParseMove(s)
		if err != nil {
			t.Fatalf("move %d: %v", i+1, err)
		}
		if !engine.TryMove(board, m.From, m.To) {
			t.Fatalf("move %d (%s) rejected on %s", i+1, s, engine.Placement(board))
		}
	}
}

// RandomPlayout plays up to plies random legal moves and returns the moves
// played. It stops early when the side to move has no legal move.
func RandomPlayout(t testing.TB, board *chess.Board, plies int, seed int64) []chess.Move {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var played []chess.Move
	for i := 0; i < plies; i++ {
		moves := engine.LegalMoves(board, board.ToMove)
		if len(moves) == 0 {
			break
		}
		m := moves[rng.Intn(len(moves))]
		if !engine.ApplyMove(board, m) {
			t.Fatalf("ply %d: legal move %s rejected", i+1, m)
		}
		played = append(played, m)
	}
	return played
}
