package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

var (
	knightOffsets = [8][2]int{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	straightDirs  = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	castleDirs    = [2]int{1, -1}
)

// castleMinOffset is the closest a castling rookie may stand to its king:
// it must be beyond the king's landing cell.
const castleMinOffset = 3

// Movements returns the pseudo-legal moves of the piece standing on from:
// legal by movement pattern and occupancy, not yet filtered for leaving the
// mover's own king in check. An empty cell yields no moves.
func Movements(board *chess.Board, from chess.Cell) []chess.Move {
	return AppendMovements(nil, board, from)
}

// AppendMovements appends the pseudo-legal moves of the piece on from to dst.
// Search reuses dst between calls to avoid allocating per node.
func AppendMovements(dst []chess.Move, board *chess.Board, from chess.Cell) []chess.Move {
	piece := board.At(from)
	if piece == nil {
		return dst
	}

	switch piece.Kind {
	case chess.Pawn:
		return appendPawnMoves(dst, board, from, piece)
	case chess.Knight:
		return appendStepMoves(dst, board, from, piece, knightOffsets[:])
	case chess.Bishop:
		return appendSlidingMoves(dst, board, from, piece, diagonalDirs[:])
	case chess.Rookie:
		return appendSlidingMoves(dst, board, from, piece, straightDirs[:])
	case chess.Queen:
		dst = appendSlidingMoves(dst, board, from, piece, diagonalDirs[:])
		return appendSlidingMoves(dst, board, from, piece, straightDirs[:])
	case chess.King:
		dst = appendStepMoves(dst, board, from, piece, kingOffsets[:])
		return appendCastleMoves(dst, board, from, piece)
	}
	return dst
}

// MoveCodes returns the pseudo-legal moves of the piece on from as move codes.
func MoveCodes(board *chess.Board, from chess.Cell) []chess.MoveCode {
	moves := Movements(board, from)
	codes := make([]chess.MoveCode, len(moves))
	for i, m := range moves {
		codes[i] = m.Code()
	}
	return codes
}

// IsValidMovement reports whether to is among the pseudo-legal destinations
// of the piece on from, ignoring modifier flags.
func IsValidMovement(board *chess.Board, from, to chess.Cell) bool {
	_, ok := findPseudoMove(board, from, to)
	return ok
}

// findPseudoMove returns the pseudo-legal move from -> to with its flags.
func findPseudoMove(board *chess.Board, from, to chess.Cell) (chess.Move, bool) {
	if !to.Inside() {
		return chess.NoMove, false
	}
	target := chess.StripModifiers(chess.EncodeMove(to, false, false, false))
	for _, m := range Movements(board, from) {
		if chess.StripModifiers(m.Code()) == target {
			return m, true
		}
	}
	return chess.NoMove, false
}

// appendPawnMoves generates single and double advances and diagonal captures.
// There is no en-passant.
func appendPawnMoves(dst []chess.Move, board *chess.Board, from chess.Cell, pawn *chess.Piece) []chess.Move {
	dir := pawn.Colour.Forward()
	lastRank := chess.PromotionRank(pawn.Colour)

	one := from.Offset(0, dir)
	if one.Inside() && board.At(one) == nil {
		dst = append(dst, chess.Move{From: from, To: one, Promotion: one.Rank == lastRank})

		two := from.Offset(0, 2*dir)
		if !pawn.Moved && two.Inside() && board.At(two) == nil {
			dst = append(dst, chess.Move{From: from, To: two, Promotion: two.Rank == lastRank})
		}
	}

	for _, df := range [2]int{1, -1} {
		to := from.Offset(df, dir)
		if !to.Inside() {
			continue
		}
		if target := board.At(to); target != nil && target.Colour != pawn.Colour {
			dst = append(dst, chess.Move{From: from, To: to, Capture: true, Promotion: to.Rank == lastRank})
		}
	}
	return dst
}

// appendStepMoves handles the fixed-offset movers (knight, king steps).
func appendStepMoves(dst []chess.Move, board *chess.Board, from chess.Cell, piece *chess.Piece, offsets [][2]int) []chess.Move {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.Inside() {
			continue
		}
		target := board.At(to)
		if target == nil {
			dst = append(dst, chess.Move{From: from, To: to})
		} else if target.Colour != piece.Colour {
			dst = append(dst, chess.Move{From: from, To: to, Capture: true})
		}
	}
	return dst
}

// appendSlidingMoves walks each ray until it leaves the board or meets a
// piece; an opposing piece is emitted as a capture, a friendly one is not.
func appendSlidingMoves(dst []chess.Move, board *chess.Board, from chess.Cell, piece *chess.Piece, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to.Inside(); to = to.Offset(dir[0], dir[1]) {
			target := board.At(to)
			if target == nil {
				dst = append(dst, chess.Move{From: from, To: to})
				continue
			}
			if target.Colour != piece.Colour {
				dst = append(dst, chess.Move{From: from, To: to, Capture: true})
			}
			break // Blocked
		}
	}
	return dst
}

// appendCastleMoves emits the two-cell king hop towards an unmoved friendly
// rookie with nothing standing between them. Attacked cells are checked
// later by the legality gate when strict castling is on.
func appendCastleMoves(dst []chess.Move, board *chess.Board, from chess.Cell, king *chess.Piece) []chess.Move {
	if king.Moved {
		return dst
	}
	for _, dir := range castleDirs {
		if _, ok := castleRook(board, from, king, dir); !ok {
			continue
		}
		dst = append(dst, chess.Move{From: from, To: from.Offset(2*dir, 0), Castle: true})
	}
	return dst
}

// castleRook scans from the king along the rank in direction dir and
// returns the cell of the first piece found if it is an unmoved rookie of
// the king's colour far enough away for the king to hop two cells.
func castleRook(board *chess.Board, from chess.Cell, king *chess.Piece, dir int) (chess.Cell, bool) {
	for c := from.Offset(dir, 0); c.Inside(); c = c.Offset(dir, 0) {
		p := board.At(c)
		if p == nil {
			continue
		}
		if p.Kind != chess.Rookie || p.Colour != king.Colour || p.Moved {
			return chess.NoCell, false
		}
		if (c.File-from.File)*dir < castleMinOffset {
			return chess.NoCell, false
		}
		return c, true
	}
	return chess.NoCell, false
}
