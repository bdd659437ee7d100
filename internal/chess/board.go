package chess

// Rules holds the variant switches a board is played under.
type Rules struct {
	// Promotion is the kind a pawn becomes on the farthest rank.
	Promotion Kind

	// StrictCastling forbids castling out of check or across an attacked
	// cell. When false only the unmoved and clear-path conditions apply.
	StrictCastling bool
}

// DefaultRules returns queen promotion with strict castling.
func DefaultRules() Rules {
	return Rules{Promotion: Queen, StrictCastling: true}
}

// Board represents a chess board with all state needed for the game.
type Board struct {
	// Squares[rank][file]; rank 0 is the top row. nil means empty.
	Squares [BoardSize][BoardSize]*Piece

	// Who has the next move.
	ToMove Colour

	// Captured pieces in capture order.
	Captured []*Piece

	// Where the two kings are, indexed by Colour, for check detection.
	Kings [2]Cell

	Rules Rules
}

// NewBoard creates a new empty board with White to move.
func NewBoard(rules Rules) *Board {
	return &Board{
		ToMove: White,
		Kings:  [2]Cell{NoCell, NoCell},
		Rules:  rules,
	}
}

// IsInside reports whether the cell lies on the board.
func (b *Board) IsInside(c Cell) bool {
	return c.Inside()
}

// At returns the piece on the cell, or nil if it is empty or off the board.
func (b *Board) At(c Cell) *Piece {
	if !c.Inside() {
		return nil
	}
	return b.Squares[c.Rank][c.File]
}

// Put places a piece (or nil) on the cell. Placing a king records its cell.
// Off-board cells are ignored.
func (b *Board) Put(c Cell, p *Piece) {
	if !c.Inside() {
		return
	}
	b.Squares[c.Rank][c.File] = p
	if p != nil && p.Kind == King {
		b.Kings[p.Colour] = c
	}
}

// KingCell returns the tracked cell of the given colour's king.
func (b *Board) KingCell(colour Colour) Cell {
	return b.Kings[colour]
}

// Pieces returns the number of pieces of the given colour on the grid.
func (b *Board) Pieces(colour Colour) int {
	n := 0
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.Squares[rank][file]; p != nil && p.Colour == colour {
				n++
			}
		}
	}
	return n
}

// Clone creates a deep copy of the board. Pieces are copied so the clone
// can be mutated independently; captured pieces are copied as well.
func (b *Board) Clone() *Board {
	nb := &Board{
		ToMove: b.ToMove,
		Kings:  b.Kings,
		Rules:  b.Rules,
	}
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.Squares[rank][file]; p != nil {
				cp := *p
				nb.Squares[rank][file] = &cp
			}
		}
	}
	if len(b.Captured) > 0 {
		nb.Captured = make([]*Piece, len(b.Captured))
		for i, p := range b.Captured {
			cp := *p
			nb.Captured[i] = &cp
		}
	}
	return nb
}
