// Package chess provides core chess types: colours, piece kinds, cells,
// moves, pieces and the board grid that owns them.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank step a pawn of this colour advances by.
// Rank 0 is the top row, so White moves towards lower ranks.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Rookie
	Knight
	Bishop
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Rookie", "Knight", "Bishop", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'R', 'N', 'B', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a placement letter of either case to a piece kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'R', 'r':
		return Rookie, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return 0, false
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FileBase = 'a'
	LastFile = FileBase + BoardSize - 1
	RankTop  = '8'
)

// Cell is a board coordinate. File 0 is the a-file and rank 0 is the
// topmost row as stored, which is rank 8 in algebraic notation.
type Cell struct {
	File int
	Rank int
}

// NoCell is the sentinel used when a cell is not applicable.
var NoCell = Cell{File: -1, Rank: -1}

// Inside reports whether the cell lies on the 8x8 grid.
func (c Cell) Inside() bool {
	return c.File >= 0 && c.File < BoardSize && c.Rank >= 0 && c.Rank < BoardSize
}

// Offset returns the cell shifted by the given file and rank deltas.
func (c Cell) Offset(df, dr int) Cell {
	return Cell{File: c.File + df, Rank: c.Rank + dr}
}

// String returns the algebraic name of the cell, e.g. "e2".
func (c Cell) String() string {
	if !c.Inside() {
		return "-"
	}
	return string([]byte{byte(FileBase + c.File), byte(RankTop - c.Rank)})
}

// PromotionRank returns the farthest rank for a pawn of the given colour.
func PromotionRank(c Colour) int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// HomeRank returns the rank the given colour's back pieces start on.
func HomeRank(c Colour) int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}
