package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// MoveCode is the textual form of a move target: zero or more modifier
// markers followed by a two character cell token, e.g. "xe5" or "=xd8".
type MoveCode string

// Modifier markers, always written in this order before the cell token.
const (
	PromotionMarker = '='
	CastleMarker    = 'O'
	CaptureMarker   = 'x'
)

// EncodeMove builds the move code for a target cell and its flags.
func EncodeMove(cell Cell, capture, castle, promotion bool) MoveCode {
	var sb strings.Builder
	if promotion {
		sb.WriteByte(PromotionMarker)
	}
	if castle {
		sb.WriteByte(CastleMarker)
	}
	if capture {
		sb.WriteByte(CaptureMarker)
	}
	sb.WriteString(cell.String())
	return MoveCode(sb.String())
}

// DecodeMove splits a move code into its target cell and flags.
// Markers are accepted only in the order EncodeMove writes them and the
// remainder must be exactly one valid cell token.
func DecodeMove(code MoveCode) (cell Cell, capture, castle, promotion bool, err error) {
	s := string(code)
	if strings.HasPrefix(s, string(PromotionMarker)) {
		promotion = true
		s = s[1:]
	}
	if strings.HasPrefix(s, string(CastleMarker)) {
		castle = true
		s = s[1:]
	}
	if strings.HasPrefix(s, string(CaptureMarker)) {
		capture = true
		s = s[1:]
	}
	cell, err = ParseCell(s)
	if err != nil {
		return NoCell, false, false, false, fmt.Errorf("move code %q: %w", string(code), errors.ErrInvalidMoveCode)
	}
	return cell, capture, castle, promotion, nil
}

// StripModifiers returns the code without its modifier markers.
func StripModifiers(code MoveCode) MoveCode {
	s := string(code)
	if len(s) <= 2 {
		return code
	}
	return MoveCode(s[len(s)-2:])
}

// ParseCell parses an algebraic cell name such as "e4".
func ParseCell(s string) (Cell, error) {
	if len(s) != 2 {
		return NoCell, fmt.Errorf("cell %q: %w", s, errors.ErrInvalidMoveCode)
	}
	file, rank := s[0], s[1]
	if file < FileBase || file > LastFile || rank < '1' || rank > RankTop {
		return NoCell, fmt.Errorf("cell %q: %w", s, errors.ErrInvalidMoveCode)
	}
	return Cell{File: int(file - FileBase), Rank: int(RankTop - rank)}, nil
}

// MustCell parses a cell name and panics if it is malformed.
// Intended for constants and tests.
func MustCell(s string) Cell {
	c, err := ParseCell(s)
	if err != nil {
		panic(err)
	}
	return c
}
