package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

func BenchmarkLegalMoves(b *testing.B) {
	board := mustSetup(b, testPlacements["Crowded"])
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = LegalMoves(board, chess.White)
	}
}

func BenchmarkCheckGameResult(b *testing.B) {
	board := mustSetup(b, testPlacements["Italian"])
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CheckGameResult(board, chess.White)
	}
}

func BenchmarkMakeUnmake(b *testing.B) {
	board := mustSetup(b, InitialPlacement)
	move := chess.Move{From: chess.MustCell("e2"), To: chess.MustCell("e4")}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		UnmakeMove(board, MakeMove(board, move))
	}
}

func BenchmarkEvaluate(b *testing.B) {
	board := mustSetup(b, InitialPlacement)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Evaluate(board)
	}
}
