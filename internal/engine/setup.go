// Package engine provides chess move generation, move application with a
// check-safety gate, game result detection and static evaluation.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialPlacement is the placement string of the standard starting position.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// NewPieceFromLetter is the piece factory: uppercase letters build White
// pieces, lowercase Black.
func NewPieceFromLetter(c byte) (*chess.Piece, error) {
	kind, ok := chess.KindFromLetter(c)
	if !ok {
		return nil, fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidPlacement)
	}
	colour := chess.White
	if unicode.IsLower(rune(c)) {
		colour = chess.Black
	}
	return chess.NewPiece(kind, colour), nil
}

// Setup creates a board from a placement string: eight '/'-separated
// ranks from the top, letters for pieces and digits for runs of empty
// cells. Only the placement field is read; any further FEN fields are
// ignored. White moves first.
func Setup(placement string, rules chess.Rules) (*chess.Board, error) {
	parts := strings.Fields(placement)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty placement string: %w", errors.ErrInvalidPlacement)
	}

	board := chess.NewBoard(rules)
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := checkKings(board); err != nil {
		return nil, err
	}
	return board, nil
}

// MustSetup is like Setup but panics on malformed input.
func MustSetup(placement string) *chess.Board {
	board, err := Setup(placement, chess.DefaultRules())
	if err != nil {
		panic(err)
	}
	return board
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard(rules chess.Rules) *chess.Board {
	board, _ := Setup(InitialPlacement, rules)
	return board
}

// parsePiecePositions fills the grid rank by rank.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.PlacementError{
			Err: errors.ErrInvalidPlacement,
			Got: fmt.Sprintf("%d ranks", len(ranks)),
		}
	}

	for rank, row := range ranks {
		file := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				if file > chess.BoardSize {
					return &errors.PlacementError{Err: errors.ErrInvalidPlacement, Rank: rank + 1, Column: i + 1, Got: "rank overflow"}
				}
				continue
			}

			piece, err := NewPieceFromLetter(c)
			if err != nil {
				return &errors.PlacementError{Err: err, Rank: rank + 1, Column: i + 1, Got: fmt.Sprintf("%q", c)}
			}
			if file >= chess.BoardSize {
				return &errors.PlacementError{Err: errors.ErrInvalidPlacement, Rank: rank + 1, Column: i + 1, Got: "rank overflow"}
			}
			cell := chess.Cell{File: file, Rank: rank}
			piece.Moved = displaced(piece, cell)
			board.Put(cell, piece)
			file++
		}
		if file != chess.BoardSize {
			return &errors.PlacementError{
				Err:  errors.ErrInvalidPlacement,
				Rank: rank + 1,
				Got:  fmt.Sprintf("%d cells", file),
			}
		}
	}
	return nil
}

// displaced reports whether a pawn, king or rookie was placed off its
// starting rank. Such pieces start with the moved flag set so they can
// neither double-step nor castle.
func displaced(p *chess.Piece, c chess.Cell) bool {
	home := chess.HomeRank(p.Colour)
	switch p.Kind {
	case chess.Pawn:
		return c.Rank != home+p.Colour.Forward()
	case chess.King, chess.Rookie:
		return c.Rank != home
	}
	return false
}

// checkKings enforces exactly one king of each colour.
func checkKings(board *chess.Board) error {
	var count [2]int
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if p := board.At(chess.Cell{File: file, Rank: rank}); p != nil && p.Kind == chess.King {
				count[p.Colour]++
			}
		}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if count[colour] != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, count[colour], errors.ErrInvalidPlacement)
		}
	}
	return nil
}

// Placement converts a board back to its placement string.
func Placement(board *chess.Board) string {
	var sb strings.Builder

	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.At(chess.Cell{File: file, Rank: rank})
			if piece == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
