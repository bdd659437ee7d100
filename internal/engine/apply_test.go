package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

func TestTryMoveRejectionLeavesBoardUntouched(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		from, to  string
	}{
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3", "e2", "d3"},
		{"king takes defended rookie", "4k3/8/8/8/8/3q4/3r4/4K3", "e1", "d2"},
		{"king steps into check", "4k3/8/8/8/8/8/3r4/4K3", "e1", "e2"},
		{"not a movement", "4k3/8/8/8/8/8/8/4K3", "e1", "e3"},
		{"empty source", "4k3/8/8/8/8/8/8/4K3", "d4", "d5"},
		{"wrong side", InitialPlacement, "e7", "e5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustSetup(t, tt.placement)
			before := board.Clone()
			cells := board.Squares

			if TryMove(board, chess.MustCell(tt.from), chess.MustCell(tt.to)) {
				t.Fatalf("TryMove(%s, %s) = true; want false", tt.from, tt.to)
			}
			if diff := cmp.Diff(before, board); diff != "" {
				t.Errorf("board changed by rejected move (-before +after):\n%s", diff)
			}
			if board.Squares != cells {
				t.Error("rejected move replaced piece identities")
			}
		})
	}
}

func TestTryMoveCapture(t *testing.T) {
	board := mustSetup(t, "4k3/8/8/8/8/8/3r4/4K3")
	rook := board.At(chess.MustCell("d2"))

	if !TryMove(board, chess.MustCell("e1"), chess.MustCell("d2")) {
		t.Fatal("TryMove(e1, d2) = false; want true")
	}
	if board.ToMove != chess.Black {
		t.Errorf("ToMove = %v; want Black", board.ToMove)
	}
	if len(board.Captured) != 1 || board.Captured[0] != rook {
		t.Errorf("Captured = %v; want [%v]", board.Captured, rook)
	}
	if got := board.KingCell(chess.White); got != chess.MustCell("d2") {
		t.Errorf("KingCell(White) = %v; want d2", got)
	}
	if king := board.At(chess.MustCell("d2")); king == nil || king.Kind != chess.King || !king.Moved {
		t.Errorf("d2 holds %v; want a moved white king", king)
	}
}

func TestTryMoveAlternatesTurns(t *testing.T) {
	board := mustSetup(t, InitialPlacement)
	playMoves(t, board, "e2e4", "e7e5", "g1f3")
	if board.ToMove != chess.Black {
		t.Errorf("ToMove after three plies = %v; want Black", board.ToMove)
	}
	if TryMove(board, chess.MustCell("f1"), chess.MustCell("c4")) {
		t.Error("White moved twice in a row")
	}
}

func TestCastlingMovesKingAndRookie(t *testing.T) {
	board := mustSetup(t, "r3k2r/8/8/8/8/8/8/R3K2R")

	if !TryMove(board, chess.MustCell("e1"), chess.MustCell("g1")) {
		t.Fatal("kingside castle rejected")
	}
	if board.ToMove != chess.Black {
		t.Fatalf("ToMove after castling = %v; want Black", board.ToMove)
	}
	if !TryMove(board, chess.MustCell("e8"), chess.MustCell("c8")) {
		t.Fatal("queenside castle rejected")
	}
	if board.ToMove != chess.White {
		t.Fatalf("ToMove after reply = %v; want White", board.ToMove)
	}

	want := "2kr3r/8/8/8/8/8/8/R4RK1"
	if got := Placement(board); got != want {
		t.Errorf("Placement = %q; want %q", got, want)
	}
	for _, name := range []string{"g1", "f1", "c8", "d8"} {
		if p := board.At(chess.MustCell(name)); p == nil || !p.Moved {
			t.Errorf("%s: %v not marked moved", name, p)
		}
	}
	if len(board.Captured) != 0 {
		t.Errorf("Captured = %v; want none", board.Captured)
	}
}

func TestStrictCastling(t *testing.T) {
	lenient := chess.Rules{Promotion: chess.Queen, StrictCastling: false}

	tests := []struct {
		name       string
		placement  string
		strictOK   bool
		lenientOK  bool
		wantPlaced string
	}{
		{"across attacked cell", "5r1k/8/8/8/8/8/8/4K2R", false, true, "5r1k/8/8/8/8/8/8/5RK1"},
		{"out of check", "4r2k/8/8/8/8/8/8/4K2R", false, true, "4r2k/8/8/8/8/8/8/5RK1"},
		{"into check", "6rk/8/8/8/8/8/8/4K2R", false, false, ""},
		{"quiet", "7k/8/8/8/8/8/8/4K2R", true, true, "7k/8/8/8/8/8/8/5RK1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strict := mustSetup(t, tt.placement)
			if got := TryMove(strict, chess.MustCell("e1"), chess.MustCell("g1")); got != tt.strictOK {
				t.Errorf("strict TryMove = %v; want %v", got, tt.strictOK)
			}

			board, err := Setup(tt.placement, lenient)
			if err != nil {
				t.Fatalf("Setup error: %v", err)
			}
			if got := TryMove(board, chess.MustCell("e1"), chess.MustCell("g1")); got != tt.lenientOK {
				t.Fatalf("lenient TryMove = %v; want %v", got, tt.lenientOK)
			}
			if tt.lenientOK {
				if got := Placement(board); got != tt.wantPlaced {
					t.Errorf("Placement = %q; want %q", got, tt.wantPlaced)
				}
			}
		})
	}
}

func TestPromotion(t *testing.T) {
	tests := []struct {
		name  string
		rules chess.Rules
		want  chess.Kind
	}{
		{"default queen", chess.DefaultRules(), chess.Queen},
		{"knight", chess.Rules{Promotion: chess.Knight, StrictCastling: true}, chess.Knight},
		{"pawn falls back to queen", chess.Rules{Promotion: chess.Pawn}, chess.Queen},
		{"king falls back to queen", chess.Rules{Promotion: chess.King}, chess.Queen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := Setup("4k3/P7/8/8/8/8/8/4K3", tt.rules)
			if err != nil {
				t.Fatalf("Setup error: %v", err)
			}
			if !TryMove(board, chess.MustCell("a7"), chess.MustCell("a8")) {
				t.Fatal("promotion push rejected")
			}
			p := board.At(chess.MustCell("a8"))
			if p == nil || p.Kind != tt.want || p.Colour != chess.White {
				t.Errorf("a8 holds %v; want white %v", p, tt.want)
			}
			if board.At(chess.MustCell("a7")) != nil {
				t.Error("a7 not vacated")
			}
			if n := board.Pieces(chess.White); n != 2 {
				t.Errorf("white pieces = %d; want 2", n)
			}
		})
	}
}

func TestMakeUnmakeRestoresExactly(t *testing.T) {
	roundTrip := func(t *testing.T, board *chess.Board) {
		t.Helper()
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			for rank := 0; rank < chess.BoardSize; rank++ {
				for file := 0; file < chess.BoardSize; file++ {
					from := chess.Cell{File: file, Rank: rank}
					if p := board.At(from); p == nil || p.Colour != colour {
						continue
					}
					for _, m := range Movements(board, from) {
						before := board.Clone()
						cells := board.Squares

						u := MakeMove(board, m)
						UnmakeMove(board, u)

						if diff := cmp.Diff(before, board); diff != "" {
							t.Fatalf("%v on %s not restored (-before +after):\n%s", m, Placement(before), diff)
						}
						if board.Squares != cells {
							t.Fatalf("%v on %s: piece identities changed", m, Placement(before))
						}
					}
				}
			}
		}
	}

	for name, placement := range testPlacements {
		t.Run(name, func(t *testing.T) {
			board := mustSetup(t, placement)
			roundTrip(t, board)
			playRandom(t, board, 40, 7, func(b *chess.Board) { roundTrip(t, b) })
		})
	}
}

func TestLegalDestinations(t *testing.T) {
	board := mustSetup(t, "4k3/4r3/8/8/8/8/4B3/4K3")

	if got := LegalDestinations(board, chess.MustCell("e2")); len(got) != 0 {
		t.Errorf("pinned bishop destinations = %v; want none", codesOf(got))
	}

	want := []chess.MoveCode{"d2", "d1", "f2", "f1"}
	if diff := cmp.Diff(want, codesOf(LegalDestinations(board, chess.MustCell("e1")))); diff != "" {
		t.Errorf("king destinations mismatch (-want +got):\n%s", diff)
	}
}
