package exact

import (
	"math"

	"github.com/gogpu/tilecut/internal/assert"
	"github.com/gogpu/tilecut/internal/expansion"
)

// columnContainingPositionImpl finds the column on a grid with the given
// step. size overrides grid.CellSize without modifying the struct.
func columnContainingPositionImpl(grid *GridParameters, size, x float64) int64 {
	assert.Pre(math.Abs(x) <= grid.MaxInput, "|x| <= grid.MaxInput")
	assert.Pre(grid.DesiredCellSize > 0, "grid.DesiredCellSize > 0")
	assert.Pre(size >= grid.DesiredCellSize, "size >= grid.DesiredCellSize")

	quotient := x / size
	candidate := math.Floor(quotient)
	if candidate == quotient {
		// The quotient may have been rounded towards infinity,
		// so the result needs to be checked exactly.
		var product [2]float64
		product[0], product[1] = expansion.TwoProduct(candidate, size)
		var difference [3]float64
		expansion.Grow(product[:], -x, difference[:])
		// candidate * size > x
		if expansion.Approx(difference[:]) > 0 {
			return exactToInt(candidate) - 1
		}
	}
	return exactToInt(candidate)
}

// ColumnContainingPosition finds the column of the regular grid that
// contains the coordinate x.
//
// For RoundingCell the result n satisfies
// n*CellSize <= x < (n+1)*CellSize exactly. For RoundingNearestNode the
// lookup runs on a half-size grid and the half-cell index is mapped to
// the nearest full-cell index.
func ColumnContainingPosition(grid *GridParameters, rounding Rounding, x float64) int64 {
	switch rounding {
	case RoundingCell:
		return columnContainingPositionImpl(grid, grid.CellSize, x)
	case RoundingNearestNode:
		return halfCellToNearestFullCell(columnContainingPositionImpl(grid, grid.CellSize/2, x))
	}
	assert.Unreachable("rounding mode")
	return 0
}

// RowContainingPosition is ColumnContainingPosition for rows.
func RowContainingPosition(grid *GridParameters, rounding Rounding, y float64) int64 {
	return ColumnContainingPosition(grid, rounding, y)
}
