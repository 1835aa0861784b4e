package exact

import (
	"math"

	"github.com/gogpu/tilecut/internal/assert"
	"github.com/gogpu/tilecut/internal/expansion"
)

// One always can choose a diagonal of the cell that intersects the given
// line iff the line intersects the cell. The line intersects the diagonal
// iff the endpoints of the chosen diagonal lie on opposite sides of the
// line. To find on which side of the line an endpoint is located, we
// check the sign of the determinant
//
//	          | a.x - size * n   a.y - size * m |
//	D(n, m) = | b.x - size * n   b.y - size * m |,
//
// where n and m are coordinates of the cell on the grid. With simple
// conversions a more convenient formula for the determinant is obtained:
//
//	D(n, m) = (a_x * b_y - a_y * b_x) + size * (n * (a.y - b.y) - m * (a.x - b.x)).
//
// The difference of the two relevant determinants does not depend on the
// cell coordinates:
//
//	                  { D(n + 1, m) - D(n, m + 1) = size * ((a.y - b.y) + (a.x - b.x)),
//	differenceTerm  = { D(n + 1, m + 1) - D(n, m) = size * ((a.y - b.y) - (a.x - b.x)).
//
// Let
//
//	firstDeterminant  = commonTerm + cellDependentTerm,
//	secondDeterminant = commonTerm + cellDependentTerm + differenceTerm,
//
// where commonTerm = a_x * b_y - a_y * b_x and
// cellDependentTerm = size * (n * (a.y - b.y) - m * (a.x - b.x)).
// Terms are evaluated lazily: testing a line against a single cell rarely
// needs the second determinant.

type intersectFlags struct {
	// invertSigns: when false, intersection requires
	// firstDeterminant < 0 && secondDeterminant > 0.
	invertSigns bool
	// mainDiagonal selects the diagonal parallel to the line x = y.
	mainDiagonal bool
}

func chooseIntersectFlags(aX, aY, bX, bY float64) intersectFlags {
	mainDiagonal := (aX <= bX && aY >= bY) || (aX >= bX && aY <= bY)
	if mainDiagonal {
		return intersectFlags{
			invertSigns:  aX >= bX && aY <= bY,
			mainDiagonal: true,
		}
	}
	return intersectFlags{
		invertSigns:  aX < bX,
		mainDiagonal: false,
	}
}

// intersectCommonTerm returns a_x*b_y - a_y*b_x as a 4-component expansion.
func intersectCommonTerm(aX, aY, bX, bY float64, term *[4]float64) {
	var p1, p2 [2]float64
	p1[0], p1[1] = expansion.TwoProduct(aX, bY)
	p2[0], p2[1] = expansion.TwoProduct(aY, bX)
	expansion.Diff(p1[:], p2[:], term[:])
}

// intersectDifferenceTerm returns size * (dy -+ dx) as an 8-component
// expansion.
func intersectDifferenceTerm(mainDiagonal bool, size float64, dx, dy []float64, term *[8]float64) {
	var tmp [4]float64
	if mainDiagonal {
		expansion.Diff(dy, dx, tmp[:])
	} else {
		expansion.Sum(dy, dx, tmp[:])
	}
	expansion.Scale(tmp[:], size, term[:])
}

type cellNode struct {
	x, y int64
	// sizeMultiplier is a power of two.
	sizeMultiplier float64
}

// mainCellNode picks the grid node the determinants are evaluated at.
// For snapping to grid nodes we internally use rounding to cell on a
// half-size grid; the distance between corners remains the same, so the
// difference term is unaffected.
func mainCellNode(rounding Rounding, mainDiagonal bool, cX, cY int64) cellNode {
	switch rounding {
	case RoundingCell:
		assert.Pre(cY <= math.MaxInt64-1, "cell row below int64 limit")
		y := cY
		if !mainDiagonal {
			y = cY + 1
		}
		return cellNode{x: cX, y: y, sizeMultiplier: 1}
	case RoundingNearestNode:
		assert.Pre(cX >= (math.MinInt64+1)/2, "cell column above int64 half limit")
		assert.Pre(cY <= (math.MaxInt64-1)/2, "cell row below int64 half limit")
		y := cY*2 - 1
		if !mainDiagonal {
			y = cY*2 + 1
		}
		return cellNode{x: cX*2 - 1, y: y, sizeMultiplier: 0.5}
	}
	assert.Unreachable("rounding mode")
	return cellNode{}
}

// intersectCellDependentTerm returns size * (n*dy - m*dx) as a
// 16-component expansion.
func intersectCellDependentTerm(nodeX, nodeY int64, size float64, dx, dy []float64, term *[16]float64) {
	n := exactFromInt(nodeX)
	m := exactFromInt(nodeY)

	var ndy, mdx [4]float64
	expansion.Scale(dy, n, ndy[:])
	expansion.Scale(dx, m, mdx[:])
	var cellTmp [8]float64
	expansion.Diff(ndy[:], mdx[:], cellTmp[:])
	expansion.Scale(cellTmp[:], size, term[:])
}

// firstDeterminantSign returns an approximation of the first determinant
// with the exact sign.
func firstDeterminantSign(commonTerm *[4]float64, cellDependentTerm *[16]float64) float64 {
	var det [20]float64
	expansion.FastSum(commonTerm[:], cellDependentTerm[:], det[:])
	return expansion.Approx(det[:])
}

// secondDeterminantSign returns an approximation of the second
// determinant with the exact sign.
func secondDeterminantSign(commonTerm *[4]float64, differenceTerm *[8]float64, cellDependentTerm *[16]float64) float64 {
	var precomputed [12]float64
	expansion.Sum(commonTerm[:], differenceTerm[:], precomputed[:])
	var det [28]float64
	expansion.FastSum(precomputed[:], cellDependentTerm[:], det[:])
	return expansion.Approx(det[:])
}

func goodFirstSign(invertSigns bool, sign float64) bool {
	if invertSigns {
		return sign > 0
	}
	return sign < 0
}

func goodSecondSign(invertSigns bool, sign float64) bool {
	if invertSigns {
		return sign < 0
	}
	return sign > 0
}

// LineIntersectsCell reports whether the line through (aX, aY) and
// (bX, bY) intersects the closed cell (cX, cY) of the regular grid.
func LineIntersectsCell(grid *GridParameters, rounding Rounding, aX, aY, bX, bY float64, cX, cY int64) bool {
	flags := chooseIntersectFlags(aX, aY, bX, bY)

	var dx, dy [2]float64
	dx[0], dx[1] = expansion.TwoDiff(aX, bX)
	dy[0], dy[1] = expansion.TwoDiff(aY, bY)

	var commonTerm [4]float64
	intersectCommonTerm(aX, aY, bX, bY, &commonTerm)

	node := mainCellNode(rounding, flags.mainDiagonal, cX, cY)
	var cellDependentTerm [16]float64
	intersectCellDependentTerm(node.x, node.y, node.sizeMultiplier*grid.CellSize, dx[:], dy[:], &cellDependentTerm)

	firstSign := firstDeterminantSign(&commonTerm, &cellDependentTerm)
	if flags.mainDiagonal && firstSign == 0 {
		return true
	}
	if !goodFirstSign(flags.invertSigns, firstSign) {
		return false
	}

	var differenceTerm [8]float64
	intersectDifferenceTerm(flags.mainDiagonal, grid.CellSize, dx[:], dy[:], &differenceTerm)
	secondSign := secondDeterminantSign(&commonTerm, &differenceTerm, &cellDependentTerm)
	return goodSecondSign(flags.invertSigns, secondSign)
}
