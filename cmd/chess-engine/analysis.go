package main

import (
	"context"
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/output"
	"github.com/lgbarn/chess-engine-go/internal/store"
)

// analysisBoard sets up the configured position with moves played.
func analysisBoard(cfg *config.Config, moves []chess.Move) (*chess.Board, error) {
	board, err := engine.Setup(cfg.Placement, cfg.Rules.BoardRules())
	if err != nil {
		return nil, err
	}
	for _, m := range moves {
		if !engine.TryMove(board, m.From, m.To) {
			return nil, fmt.Errorf("move %s: %w", m, errors.ErrIllegalMove)
		}
	}
	return board, nil
}

// runEval prints the static evaluation and the game status.
func runEval(cfg *config.Config, moves []chess.Move) error {
	board, err := analysisBoard(cfg, moves)
	if err != nil {
		return err
	}
	r := engine.CheckGameResult(board, board.ToMove)
	fmt.Fprintf(cfg.OutputFile, "eval %d\n", engine.Evaluate(board))
	fmt.Fprintf(cfg.OutputFile, "tomove %s legal %d check %t checkmate %t stalemate %t\n",
		board.ToMove, r.ValidMovements, r.Checked, r.Checkmate, r.Stalemate)
	if cfg.Output.ShowBoard {
		fmt.Fprint(cfg.OutputFile, output.Diagram(board))
	}
	return nil
}

// runBestMove searches the position for the side to move.
func runBestMove(ctx context.Context, cfg *config.Config, moves []chess.Move) error {
	board, err := analysisBoard(cfg, moves)
	if err != nil {
		return err
	}
	res, err := newSearcher(cfg).BestMove(ctx, board)
	if err != nil {
		return err
	}
	fmt.Fprintf(cfg.OutputFile, "bestmove %s score %d nodes %d\n", res.Move, res.Score, res.Nodes)
	return nil
}

// runList prints one line per archived game followed by totals.
func runList(cfg *config.Config, st *store.Store) error {
	recs, err := st.ListGames()
	if err != nil {
		return err
	}
	if cfg.Output.JSONFormat {
		w := output.NewJSONWriter(cfg.OutputFile)
		for _, rec := range recs {
			if err := w.WriteGame(rec); err != nil {
				return err
			}
		}
		return w.Close()
	}

	for _, rec := range recs {
		fmt.Fprintf(cfg.OutputFile, "%s  %s  %-7s %-7s %-7s %3d plies\n",
			rec.ID, rec.StartedAt.Format("2006-01-02 15:04"), rec.White, rec.Black, rec.Result, rec.Plies)
	}
	stats, err := st.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintf(cfg.OutputFile, "%d game(s): %d white wins, %d black wins, %d draws, %d unfinished\n",
		stats.Games, stats.WhiteWins, stats.BlackWins, stats.Draws, stats.Unfinished)
	return nil
}

// runShow prints one archived game.
func runShow(cfg *config.Config, st *store.Store, id string) error {
	rec, err := st.LoadGame(id)
	if err != nil {
		return err
	}
	w := output.NewGameWriter(cfg.OutputFile, cfg)
	if err := w.WriteGame(rec); err != nil {
		return err
	}
	return w.Close()
}
