// chess-engine plays chess between human, search and random players and
// archives the finished games.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/store"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-engine version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	moves, err := parseMoveList(*moveList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, moves); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches to the selected mode.
func run(ctx context.Context, cfg *config.Config, moves []chess.Move) error {
	switch {
	case *evaluate:
		return runEval(cfg, moves)
	case *bestMove:
		return runBestMove(ctx, cfg, moves)
	case *listDB, *showGame != "":
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()
		if *listDB {
			return runList(cfg, st)
		}
		return runShow(cfg, st, *showGame)
	}
	return runPlay(ctx, cfg, moves, os.Stdin)
}

// openStore opens the archive named by -db.
func openStore(cfg *config.Config) (*store.Store, error) {
	if cfg.StorePath == "" {
		return nil, fmt.Errorf("no archive given, use -db: %w", errors.ErrInvalidConfig)
	}
	return store.Open(cfg.StorePath)
}

// parseMoveList parses space-separated long algebraic moves.
func parseMoveList(s string) ([]chess.Move, error) {
	var moves []chess.Move
	for _, field := range strings.Fields(s) {
		m, err := chess.ParseMove(field)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-engine [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays a game of chess, or analyses a position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nHuman moves are read from standard input in long algebraic\n")
	fmt.Fprintf(os.Stderr, "form (e2e4). A lone cell (e2) lists its legal targets;\n")
	fmt.Fprintf(os.Stderr, "\"quit\" leaves the game unfinished.\n")
}
