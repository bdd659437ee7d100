package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/output"
	"github.com/lgbarn/chess-engine-go/internal/store"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func testConfig(white, black config.PlayerKind) (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	var out, log bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithPlayers(white, black).
		WithOutput(&out).
		WithLog(&log).
		Build()
	cfg.Output.ShowBoard = false
	return cfg, &out, &log
}

func mustMoves(t *testing.T, s string) []chess.Move {
	t.Helper()
	moves, err := parseMoveList(s)
	testutil.AssertNoError(t, err)
	return moves
}

func TestRunEval(t *testing.T) {
	cfg, out, _ := testConfig(config.HumanPlayer, config.HumanPlayer)
	testutil.AssertNoError(t, runEval(cfg, nil))
	testutil.AssertEqual(t, out.String(),
		"eval 0\ntomove White legal 20 check false checkmate false stalemate false\n")
}

func TestRunEvalAfterMoves(t *testing.T) {
	cfg, out, _ := testConfig(config.HumanPlayer, config.HumanPlayer)
	cfg.Output.ShowBoard = true
	testutil.AssertNoError(t, runEval(cfg, mustMoves(t, "f2f3 e7e5 g2g4 d8h4")))
	testutil.AssertContains(t, out.String(), "tomove White legal 0 check true checkmate true stalemate false\n")
	testutil.AssertContains(t, out.String(), "4 | . . . . . . P q |")
}

func TestRunEvalIllegalMove(t *testing.T) {
	cfg, _, _ := testConfig(config.HumanPlayer, config.HumanPlayer)
	err := runEval(cfg, mustMoves(t, "e2e5"))
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
}

func TestRunBestMove(t *testing.T) {
	cfg, out, log := testConfig(config.SearchPlayer, config.SearchPlayer)
	cfg.Placement = "4k3/8/8/3q4/8/8/3R4/4K3"
	cfg.Search.Depth = 2
	cfg.Verbosity = 2

	testutil.AssertNoError(t, runBestMove(context.Background(), cfg, nil))
	testutil.AssertContains(t, out.String(), "bestmove d2d5 score ")
	testutil.AssertContains(t, log.String(), "search: White depth 2 best d2d5")
}

func TestRunPlayHumans(t *testing.T) {
	cfg, out, _ := testConfig(config.HumanPlayer, config.HumanPlayer)
	cfg.StorePath = t.TempDir()

	input := strings.NewReader("f2f3\ne7e5\ng2g4\nd8h4\n")
	testutil.AssertNoError(t, runPlay(context.Background(), cfg, nil, input))
	testutil.AssertContains(t, out.String(), "1. f2f3 e7e5 2. g2g4 d8h4 0-1")

	st, err := store.Open(cfg.StorePath)
	testutil.AssertNoError(t, err)
	defer st.Close()
	recs, err := st.ListGames()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(recs), 1)
	testutil.AssertEqual(t, recs[0].Result, store.ResultBlackWins)
	testutil.AssertEqual(t, recs[0].White, "human")
}

func TestRunPlayHumanCommands(t *testing.T) {
	cfg, out, _ := testConfig(config.HumanPlayer, config.HumanPlayer)

	input := strings.NewReader("e2\ne2e5\nx9y9\ne7e5\n\ne2e4\nquit\ne7e5\n")
	testutil.AssertNoError(t, runPlay(context.Background(), cfg, nil, input))

	got := out.String()
	testutil.AssertContains(t, got, "e2: e3 e4\n")
	testutil.AssertContains(t, got, "illegal move e2e5\n")
	testutil.AssertContains(t, got, "invalid move code")
	testutil.AssertContains(t, got, "not your turn")
	testutil.AssertContains(t, got, "1. e2e4 *")
}

func TestRunPlayEndOfInput(t *testing.T) {
	cfg, out, _ := testConfig(config.HumanPlayer, config.SearchPlayer)
	cfg.Search.Depth = 1

	testutil.AssertNoError(t, runPlay(context.Background(), cfg, nil, strings.NewReader("e2e4\n")))
	testutil.AssertContains(t, out.String(), "[Result \"*\"]")
	// White's move and Black's reply.
	testutil.AssertContains(t, out.String(), "1. e2e4 ")
}

func TestRunPlayComputers(t *testing.T) {
	cfg, out, log := testConfig(config.SearchPlayer, config.RandomPlayer)
	cfg.Search.Depth = 1
	cfg.MaxPlies = 12
	cfg.Verbosity = 2
	cfg.Output.JSONFormat = true

	testutil.AssertNoError(t, runPlay(context.Background(), cfg, nil, strings.NewReader("")))

	var doc output.JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(out.Bytes(), &doc))
	testutil.AssertEqual(t, len(doc.Games), 1)
	g := doc.Games[0]
	testutil.AssertEqual(t, g.White, "search")
	testutil.AssertEqual(t, g.Black, "random")
	testutil.AssertTrue(t, g.PlyCount == 12 || g.Result != store.ResultUnfinished,
		"stopped after %d plies with result %s", g.PlyCount, g.Result)
	testutil.AssertContains(t, log.String(), "1. ")
}

func TestRunPlayReplaysMoves(t *testing.T) {
	cfg, out, _ := testConfig(config.SearchPlayer, config.RandomPlayer)
	testutil.AssertNoError(t, runPlay(context.Background(), cfg, mustMoves(t, "f2f3 e7e5 g2g4 d8h4"), strings.NewReader("")))
	testutil.AssertContains(t, out.String(), "d8h4 0-1")

	err := runPlay(context.Background(), cfg, mustMoves(t, "e2e5"), strings.NewReader(""))
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
}

func TestRunListAndShow(t *testing.T) {
	cfg, out, _ := testConfig(config.HumanPlayer, config.HumanPlayer)
	cfg.StorePath = t.TempDir()

	testutil.AssertNoError(t, runPlay(context.Background(), cfg, nil, strings.NewReader("f2f3\ne7e5\ng2g4\nd8h4\n")))
	testutil.AssertNoError(t, runPlay(context.Background(), cfg, nil, strings.NewReader("e2e4\nquit\n")))

	st, err := openStore(cfg)
	testutil.AssertNoError(t, err)
	defer st.Close()

	out.Reset()
	testutil.AssertNoError(t, runList(cfg, st))
	testutil.AssertContains(t, out.String(), "2 game(s): 0 white wins, 1 black wins, 0 draws, 1 unfinished\n")

	recs, err := st.ListGames()
	testutil.AssertNoError(t, err)

	out.Reset()
	testutil.AssertNoError(t, runShow(cfg, st, recs[0].ID))
	testutil.AssertContains(t, out.String(), "[Game \""+recs[0].ID+"\"]")

	err = runShow(cfg, st, "missing")
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)

	out.Reset()
	cfg.Output.JSONFormat = true
	testutil.AssertNoError(t, runList(cfg, st))
	var doc output.JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(out.Bytes(), &doc))
	testutil.AssertEqual(t, len(doc.Games), 2)
}

func TestOpenStoreRequiresPath(t *testing.T) {
	cfg, _, _ := testConfig(config.HumanPlayer, config.HumanPlayer)
	_, err := openStore(cfg)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}
