package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/game"
	"github.com/lgbarn/chess-engine-go/internal/output"
	"github.com/lgbarn/chess-engine-go/internal/search"
	"github.com/lgbarn/chess-engine-go/internal/store"
)

// newSearcher builds the searcher described by the configuration. At
// verbosity 2 every search is logged.
func newSearcher(cfg *config.Config) *search.Searcher {
	s := &search.Searcher{
		Depth:   cfg.Search.Depth,
		Pruning: cfg.Search.Pruning,
		Workers: cfg.Search.Workers,
	}
	if cfg.Verbosity >= 2 {
		s.Logger = cfg.LogFile
	}
	return s
}

// newPlayer seats a player of the given kind.
func newPlayer(kind config.PlayerKind, colour chess.Colour, cfg *config.Config) game.Player {
	switch kind {
	case config.SearchPlayer:
		return game.NewComputerPlayer(colour, kind.String(), newSearcher(cfg))
	case config.RandomPlayer:
		// Black's seed is offset by one.
		return game.NewComputerPlayer(colour, kind.String(), search.NewRandomMover(cfg.Seed+int64(colour)))
	}
	return game.NewHumanPlayer(colour)
}

// newGame sets up a game from the configuration and replays moves.
func newGame(cfg *config.Config, moves []chess.Move) (*game.Game, error) {
	g, err := game.New(cfg.Placement, cfg.Rules.BoardRules(),
		newPlayer(cfg.Players.White, chess.White, cfg),
		newPlayer(cfg.Players.Black, chess.Black, cfg))
	if err != nil {
		return nil, err
	}
	if err := g.Replay(moves...); err != nil {
		return nil, err
	}
	return g, nil
}

// runPlay plays one game, writes it to the output and archives it.
func runPlay(ctx context.Context, cfg *config.Config, moves []chess.Move, in io.Reader) error {
	g, err := newGame(cfg, moves)
	if err != nil {
		return err
	}
	cfg.Logf(1, "game %s: %s (White) vs %s (Black)\n",
		g.ID, g.Player(chess.White).Name(), g.Player(chess.Black).Name())

	if err := playGame(ctx, cfg, g, in); err != nil {
		return err
	}

	rec := g.Record()
	cfg.Logf(1, "game %s: %s after %d plies\n", rec.ID, rec.Result, rec.Plies)

	w := output.NewGameWriter(cfg.OutputFile, cfg)
	if err := w.WriteGame(rec); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return archive(cfg, rec)
}

// archive saves rec when an archive is configured.
func archive(cfg *config.Config, rec *store.Record) error {
	if cfg.StorePath == "" {
		return nil
	}
	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.SaveGame(rec); err != nil {
		return err
	}
	cfg.Logf(1, "game %s archived in %s\n", rec.ID, cfg.StorePath)
	return nil
}

// playGame alternates computer moves and human input until the game ends,
// the ply limit is reached, or the input runs out.
func playGame(ctx context.Context, cfg *config.Config, g *game.Game, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	logMove := func(m chess.Move) {
		cfg.Logf(2, "%d. %s\n", len(g.History()), m)
	}

	for !g.Phase().Terminal() {
		if cfg.MaxPlies > 0 && len(g.History()) >= cfg.MaxPlies {
			return nil
		}
		if !g.ToMove().Human() {
			if err := g.Run(ctx, cfg.MaxPlies, logMove); err != nil {
				return err
			}
			continue
		}

		fmt.Fprintf(cfg.OutputFile, "%s to move: ", g.Board.ToMove)
		if !scanner.Scan() {
			fmt.Fprintln(cfg.OutputFile)
			return scanner.Err()
		}
		played := len(g.History())
		quit, err := humanTurn(cfg, g, strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintf(cfg.OutputFile, "%v\n", err)
		}
		if quit {
			return nil
		}
		if history := g.History(); len(history) > played {
			logMove(history[len(history)-1])
		}
	}
	return nil
}

// humanTurn handles one line of input. It reports whether the player quit.
func humanTurn(cfg *config.Config, g *game.Game, line string) (bool, error) {
	switch {
	case line == "":
		return false, nil
	case line == "quit":
		return true, nil
	case len(line) == 2:
		cell, err := chess.ParseCell(line)
		if err != nil {
			return false, err
		}
		if err := g.Select(cell); err != nil {
			return false, err
		}
		var targets []string
		for _, m := range g.Targets() {
			targets = append(targets, m.To.String())
		}
		g.Deselect()
		fmt.Fprintf(cfg.OutputFile, "%s: %s\n", line, strings.Join(targets, " "))
		return false, nil
	}

	m, err := chess.ParseMove(line)
	if err != nil {
		return false, err
	}
	ok, err := g.Play(m.From, m.To)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, fmt.Errorf("illegal move %s", line)
	}
	return false, nil
}
