package chess

// Piece is a single chess man. Pieces are referenced by pointer: a piece
// is held by exactly one grid cell or by the captured list.
type Piece struct {
	Kind   Kind
	Colour Colour

	// Moved is set once the piece has made a confirmed move. It gates the
	// pawn double step and castling eligibility.
	Moved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(kind Kind, colour Colour) *Piece {
	return &Piece{Kind: kind, Colour: colour}
}

// Letter returns the placement letter: uppercase for White, lowercase for Black.
func (p *Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a human readable name such as "White Queen".
func (p *Piece) String() string {
	if p == nil {
		return "empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}
