package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

func TestCheckGameResult(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		moves     []string
		colour    chess.Colour
		want      Result
	}{
		{
			name:      "initial white",
			placement: InitialPlacement,
			colour:    chess.White,
			want:      Result{ValidMovements: 20},
		},
		{
			name:      "initial black",
			placement: InitialPlacement,
			colour:    chess.Black,
			want:      Result{ValidMovements: 20},
		},
		{
			name:      "fool's mate",
			placement: InitialPlacement,
			moves:     []string{"f2f3", "e7e5", "g2g4", "d8h4"},
			colour:    chess.White,
			want:      Result{Checked: true, Checkmate: true},
		},
		{
			name:      "back rank mate",
			placement: "R5k1/5ppp/8/8/8/8/8/6K1",
			colour:    chess.Black,
			want:      Result{Checked: true, Checkmate: true},
		},
		{
			name:      "stalemate",
			placement: "7k/5Q2/6K1/8/8/8/8/8",
			colour:    chess.Black,
			want:      Result{Stalemate: true},
		},
		{
			name:      "cornered king with a free pawn",
			placement: "7k/p4Q2/6K1/8/8/8/8/8",
			colour:    chess.Black,
			want:      Result{ValidMovements: 2},
		},
		{
			name:      "check with escape",
			placement: "4k3/8/8/8/8/8/8/R3K3",
			moves:     []string{"a1a8"},
			colour:    chess.Black,
			want:      Result{Checked: true, ValidMovements: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustSetup(t, tt.placement)
			playMoves(t, board, tt.moves...)
			before := board.Clone()

			got := CheckGameResult(board, tt.colour)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CheckGameResult mismatch (-want +got):\n%s", diff)
			}
			if got.Terminal() != (tt.want.Checkmate || tt.want.Stalemate) {
				t.Errorf("Terminal() = %v", got.Terminal())
			}
			if diff := cmp.Diff(before, board); diff != "" {
				t.Errorf("CheckGameResult mutated the board (-before +after):\n%s", diff)
			}
		})
	}
}

func TestSideToMoveHelpers(t *testing.T) {
	board := mustSetup(t, InitialPlacement)
	playMoves(t, board, "f2f3", "e7e5", "g2g4")
	if IsCheckmate(board) || IsStalemate(board) {
		t.Fatal("game over before the queen move")
	}
	playMoves(t, board, "d8h4")
	if !IsCheckmate(board) {
		t.Error("IsCheckmate() = false after fool's mate")
	}
	if IsStalemate(board) {
		t.Error("IsStalemate() = true after fool's mate")
	}
}

func TestIsCheckedMatchesMovements(t *testing.T) {
	for name, placement := range testPlacements {
		t.Run(name, func(t *testing.T) {
			board := mustSetup(t, placement)
			compare := func(b *chess.Board) {
				for _, colour := range []chess.Colour{chess.White, chess.Black} {
					if got, want := IsChecked(b, colour), attackedByMovements(b, colour); got != want {
						t.Fatalf("IsChecked(%v) = %v; movement scan says %v on %s", colour, got, want, Placement(b))
					}
				}
			}
			compare(board)
			for seed := int64(1); seed <= 3; seed++ {
				b := board.Clone()
				playRandom(t, b, 80, seed, compare)
			}
		})
	}
}

func TestLegalMovesNeverLeaveKingInCheck(t *testing.T) {
	board := mustSetup(t, InitialPlacement)
	playRandom(t, board, 120, 42, func(b *chess.Board) {
		for _, m := range LegalMoves(b, b.ToMove) {
			u := MakeMove(b, m)
			checked := attackedByMovements(b, b.ToMove)
			UnmakeMove(b, u)
			if checked {
				t.Fatalf("legal move %v leaves %v in check on %s", m, b.ToMove, Placement(b))
			}
		}
	})
}
