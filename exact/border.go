package exact

import (
	"math"

	"github.com/gogpu/tilecut/internal/assert"
	"github.com/gogpu/tilecut/internal/expansion"
)

// borderCoordinateSign returns the exact sign of x*cellSize - c.
func borderCoordinateSign(cellSize float64, x int64, c float64) float64 {
	var product [2]float64
	product[0], product[1] = expansion.TwoProduct(exactFromInt(x), cellSize)
	var fms [3]float64
	expansion.Grow(product[:], -c, fms[:])
	return expansion.Approx(fms[:])
}

// BorderBetweenCoordinates reports whether the main boundary of grid
// column (or row) x lies between the coordinates a and b, inclusive on
// both ends: min(a, b) <= x*cellSize <= max(a, b), evaluated exactly.
func BorderBetweenCoordinates(cellSize, a, b float64, x int64) bool {
	assert.Pre(a != b, "a != b")
	if a < b {
		return borderCoordinateSign(cellSize, x, a) >= 0 &&
			borderCoordinateSign(cellSize, x, b) <= 0
	}
	return borderCoordinateSign(cellSize, x, a) <= 0 &&
		borderCoordinateSign(cellSize, x, b) >= 0
}

// columnBorderIntersectionImpl finds the row of the cell containing the
// intersection of segment ab with the vertical line x = cX*size.
// size overrides grid.CellSize without modifying the struct.
func columnBorderIntersectionImpl(grid *GridParameters, size, aX, aY, bX, bY float64, cX int64) int64 {
	assert.Pre(aX != bX, "aX != bX")
	assert.Pre(BorderBetweenCoordinates(size, aX, bX, cX), "border between segment x coordinates")
	assert.Pre(aX == 0 || math.Abs(aX) >= grid.MinInput, "aX in coordinate band")
	assert.Pre(aY == 0 || math.Abs(aY) >= grid.MinInput, "aY in coordinate band")
	assert.Pre(bX == 0 || math.Abs(bX) >= grid.MinInput, "bX in coordinate band")
	assert.Pre(bY == 0 || math.Abs(bY) >= grid.MinInput, "bY in coordinate band")
	assert.Pre(math.Abs(aX) <= grid.MaxInput, "|aX| <= grid.MaxInput")
	assert.Pre(math.Abs(aY) <= grid.MaxInput, "|aY| <= grid.MaxInput")
	assert.Pre(math.Abs(bX) <= grid.MaxInput, "|bX| <= grid.MaxInput")
	assert.Pre(math.Abs(bY) <= grid.MaxInput, "|bY| <= grid.MaxInput")
	assert.Pre(grid.DesiredCellSize > 0, "grid.DesiredCellSize > 0")

	// The fused operation is probably not required here, but it makes
	// error analysis easier.
	tNumerator := math.FMA(exactFromInt(cX), size, -aX)
	tDenominator := bX - aX
	t := tNumerator / tDenominator
	delta := bY - aY
	lerp := aY + delta*t
	intersection := lerp / size

	// checkValue reports whether value can be the result of rounding the
	// exact quotient towards negative infinity.
	checkValue := func(value float64) bool {
		// a_y * b_x - a_x * b_y
		var p1, p2 [2]float64
		p1[0], p1[1] = expansion.TwoProduct(aY, bX)
		p2[0], p2[1] = expansion.TwoProduct(aX, bY)
		var numerator1 [4]float64
		expansion.Diff(p1[:], p2[:], numerator1[:])

		// size * (b_y - a_y)
		var dy [2]float64
		dy[0], dy[1] = expansion.TwoDiff(bY, aY)
		var sizeDy [4]float64
		expansion.Scale(dy[:], size, sizeDy[:])
		// c_x * size * (b_y - a_y)
		var numerator2 [8]float64
		expansion.Scale(sizeDy[:], exactFromInt(cX), numerator2[:])

		var numerator [12]float64
		expansion.Sum(numerator1[:], numerator2[:], numerator[:])

		// size * (b_x - a_x)
		var dx [2]float64
		dx[0], dx[1] = expansion.TwoDiff(bX, aX)
		var denominator [4]float64
		expansion.Scale(dx[:], size, denominator[:])

		// value * denominator
		var product [8]float64
		expansion.Scale(denominator[:], value, product[:])
		// value * denominator - numerator
		var difference [20]float64
		expansion.Diff(product[:], numerator[:], difference[:])

		differenceSign := expansion.Approx(difference[:])
		if bX > aX {
			return differenceSign <= 0
		}
		return differenceSign >= 0
	}

	// Computation of 1.0 - fractionalPart may be inexact, so branching on
	// the sign of the value cannot be avoided with a plain floor.
	integralPart, fractionalPart := math.Modf(intersection)
	fractionalPart = math.Abs(fractionalPart)
	truncated := exactToInt(integralPart)

	bounds := grid.ColumnBorderIntersection
	if intersection >= 0 {
		if fractionalPart < bounds.MinReliableFractionalPart && !checkValue(integralPart) {
			return truncated - 1
		}
		if fractionalPart > bounds.MaxReliableFractionalPart && checkValue(integralPart+1) {
			return truncated + 1
		}
		return truncated
	}

	if fractionalPart > bounds.MaxReliableFractionalPart && !checkValue(integralPart-1) {
		return truncated - 2
	}
	if fractionalPart < bounds.MinReliableFractionalPart && checkValue(integralPart) {
		return truncated
	}
	return truncated - 1
}

// ColumnBorderIntersection finds the row containing the intersection
// point of segment ab and the left border of grid column cX.
func ColumnBorderIntersection(grid *GridParameters, rounding Rounding, aX, aY, bX, bY float64, cX int64) int64 {
	var cY int64
	switch rounding {
	case RoundingCell:
		cY = columnBorderIntersectionImpl(grid, grid.CellSize, aX, aY, bX, bY, cX)
	case RoundingNearestNode:
		cY = halfCellToNearestFullCell(
			columnBorderIntersectionImpl(grid, grid.CellSize/2, aX, aY, bX, bY, cX*2))
	default:
		assert.Unreachable("rounding mode")
	}
	assert.Post(LineIntersectsCell(grid, rounding, aX, aY, bX, bY, cX, cY),
		"intersection row lies in an intersected cell")
	return cY
}

// RowBorderIntersection finds the column containing the intersection
// point of segment ab and the bottom border of grid row cY. It is the
// column flavor on the plane rotated by 90 degrees.
func RowBorderIntersection(grid *GridParameters, rounding Rounding, aX, aY, bX, bY float64, cY int64) int64 {
	var cX int64
	switch rounding {
	case RoundingCell:
		cX = columnBorderIntersectionImpl(grid, grid.CellSize, -aY, aX, -bY, bX, -cY)
	case RoundingNearestNode:
		cX = halfCellToNearestFullCell(
			columnBorderIntersectionImpl(grid, grid.CellSize/2, -aY, aX, -bY, bX, -cY*2))
	default:
		assert.Unreachable("rounding mode")
	}
	assert.Post(LineIntersectsCell(grid, rounding, aX, aY, bX, bY, cX, cY),
		"intersection column lies in an intersected cell")
	return cX
}
