package chess

// Geometry maps screen coordinates to cells for a renderer that draws the
// board as a square of CellSize pixels per cell, shifted right by StartX.
type Geometry struct {
	StartX   int
	CellSize int
}

// GetCell returns the cell under the screen point. The result may lie
// outside the grid; callers check it with Board.IsInside.
func (g Geometry) GetCell(x, y int) Cell {
	if g.CellSize <= 0 {
		return NoCell
	}
	return Cell{File: floorDiv(x-g.StartX, g.CellSize), Rank: floorDiv(y, g.CellSize)}
}

// Origin returns the top-left screen point of a cell.
func (g Geometry) Origin(c Cell) (x, y int) {
	return g.StartX + c.File*g.CellSize, c.Rank * g.CellSize
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
