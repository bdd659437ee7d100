package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Undo holds everything needed to reverse a MakeMove exactly. It is
// computed before the board is touched and restoring it allocates nothing.
type Undo struct {
	Move chess.Move

	// Piece is the mover; Placed is what landed on Move.To, which differs
	// from Piece only on promotion.
	Piece  *chess.Piece
	Placed *chess.Piece

	// Captured is the previous occupant of Move.To, if any.
	Captured *chess.Piece

	// WasMoved is the mover's moved flag before the move.
	WasMoved bool

	// Castling rook bookkeeping; Rook is nil for other moves.
	Rook         *chess.Piece
	RookFrom     chess.Cell
	RookTo       chess.Cell
	RookWasMoved bool
}

// MakeMove mutates the grid for a pseudo-legal move and returns its undo
// record. It does not test king safety, touch the captured list or flip the
// side to move; those belong to a confirmed move (see ApplyMove).
func MakeMove(board *chess.Board, move chess.Move) Undo {
	piece := board.At(move.From)
	u := Undo{
		Move:     move,
		Piece:    piece,
		Placed:   piece,
		Captured: board.At(move.To),
		WasMoved: piece.Moved,
		RookFrom: chess.NoCell,
		RookTo:   chess.NoCell,
	}

	if move.Castle {
		dir := 1
		if move.To.File < move.From.File {
			dir = -1
		}
		if rookCell := firstPieceAlongRank(board, move.From, dir); rookCell.Inside() {
			u.Rook = board.At(rookCell)
			u.RookFrom = rookCell
			u.RookTo = move.From.Offset(dir, 0)
			u.RookWasMoved = u.Rook.Moved
		}
	}

	if move.Promotion && piece.Kind == chess.Pawn {
		u.Placed = chess.NewPiece(promotionKind(board.Rules), piece.Colour)
		u.Placed.Moved = true
	}

	board.Put(move.From, nil)
	board.Put(move.To, u.Placed)
	piece.Moved = true

	if u.Rook != nil {
		board.Put(u.RookFrom, nil)
		board.Put(u.RookTo, u.Rook)
		u.Rook.Moved = true
	}

	return u
}

// UnmakeMove reverses MakeMove: pieces return to their exact cells and the
// moved flags regain their previous values.
func UnmakeMove(board *chess.Board, u Undo) {
	if u.Rook != nil {
		board.Put(u.RookTo, nil)
		board.Put(u.RookFrom, u.Rook)
		u.Rook.Moved = u.RookWasMoved
	}
	board.Put(u.Move.To, u.Captured)
	board.Put(u.Move.From, u.Piece)
	u.Piece.Moved = u.WasMoved
}

// TryMove attempts to move the piece on from to to for the side to move.
// The move must be pseudo-legal for that piece. It is made tentatively; if
// it leaves the mover's king in check it is fully reverted and rejected.
// Otherwise any captured piece is appended to the captured list and the
// turn passes. A rejected call leaves the board exactly as it was.
func TryMove(board *chess.Board, from, to chess.Cell) bool {
	piece := board.At(from)
	if piece == nil || piece.Colour != board.ToMove {
		return false
	}

	move, ok := findPseudoMove(board, from, to)
	if !ok {
		return false
	}
	if move.Castle && !CastlePathSafe(board, move) {
		return false
	}

	u := MakeMove(board, move)
	if IsChecked(board, piece.Colour) {
		UnmakeMove(board, u)
		return false
	}

	if u.Captured != nil {
		board.Captured = append(board.Captured, u.Captured)
	}
	board.ToMove = piece.Colour.Opposite()
	return true
}

// ApplyMove applies a move chosen by search or a selector through the
// same check-safety gate as TryMove. Castling moves king and rook together
// and consumes a single turn.
func ApplyMove(board *chess.Board, move chess.Move) bool {
	return TryMove(board, move.From, move.To)
}

// firstPieceAlongRank returns the cell of the first piece beyond from in
// direction dir, or NoCell.
func firstPieceAlongRank(board *chess.Board, from chess.Cell, dir int) chess.Cell {
	for c := from.Offset(dir, 0); c.Inside(); c = c.Offset(dir, 0) {
		if board.At(c) != nil {
			return c
		}
	}
	return chess.NoCell
}

// promotionKind returns the configured promotion kind, defaulting to a
// queen when the rules name a pawn or a king.
func promotionKind(rules chess.Rules) chess.Kind {
	switch rules.Promotion {
	case chess.Rookie, chess.Knight, chess.Bishop, chess.Queen:
		return rules.Promotion
	}
	return chess.Queen
}
