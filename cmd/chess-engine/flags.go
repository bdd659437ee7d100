// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Position
	placement = flag.String("placement", "", "Starting piece placement (default: standard initial position)")
	moveList  = flag.String("moves", "", "Space-separated moves (e2e4) to play before starting")

	// Players
	whitePlayer = flag.String("white", "search", "White player: human, search, random")
	blackPlayer = flag.String("black", "random", "Black player: human, search, random")

	// Search
	depth   = flag.Int("depth", 3, "Search depth in plies")
	workers = flag.Int("workers", 1, "Root search workers (1 = sequential)")
	noPrune = flag.Bool("noprune", false, "Disable alpha-beta pruning (exhaustive minimax)")

	// Rules
	promotion  = flag.String("promote", "q", "Promotion piece: q, r, b, n")
	lenient    = flag.Bool("lenient", false, "Allow castling out of or through check")
	maxPlies   = flag.Int("maxply", 200, "End self-play after N plies (0 = no limit)")
	randomSeed = flag.Int64("seed", 1, "Seed for the random player")

	// Modes
	bestMove = flag.Bool("bestmove", false, "Print the best move for the side to move and exit")
	evaluate = flag.Bool("eval", false, "Print the static evaluation and exit")
	listDB   = flag.Bool("list", false, "List archived games and exit")
	showGame = flag.String("show", "", "Print the archived game with this ID and exit")

	// Archive
	dbPath = flag.String("db", "", "Game archive directory (empty = no archive)")

	// Output
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	noBoard    = flag.Bool("noboard", false, "Don't print the final position")
	lineLength = flag.Int("w", 80, "Maximum line length")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 = quiet, 1 = summary, 2 = every move")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyPlayerFlags(cfg); err != nil {
		return err
	}
	if err := applyRuleFlags(cfg); err != nil {
		return err
	}
	applySearchFlags(cfg)
	applyOutputFlags(cfg)

	if *placement != "" {
		cfg.Placement = *placement
	}
	cfg.MaxPlies = *maxPlies
	cfg.Seed = *randomSeed
	cfg.StorePath = *dbPath
	cfg.Verbosity = *verbosity
	return cfg.Validate()
}

// applyPlayerFlags parses the player kinds.
func applyPlayerFlags(cfg *config.Config) error {
	white, err := config.ParsePlayerKind(*whitePlayer)
	if err != nil {
		return err
	}
	black, err := config.ParsePlayerKind(*blackPlayer)
	if err != nil {
		return err
	}
	cfg.Players.White = white
	cfg.Players.Black = black
	return nil
}

// applyRuleFlags configures promotion and castling.
func applyRuleFlags(cfg *config.Config) error {
	kind, err := config.ParsePromotion(*promotion)
	if err != nil {
		return err
	}
	cfg.Rules.Promotion = kind
	cfg.Rules.StrictCastling = !*lenient
	return nil
}

// applySearchFlags configures the search.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.Workers = *workers
	cfg.Search.Pruning = !*noPrune
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.MaxLineLength = *lineLength
}
