package tilecut

import (
	"github.com/gogpu/tilecut/exact"
	"github.com/gogpu/tilecut/geom"
	"github.com/gogpu/tilecut/internal/assert"
)

// TileCellGrid maps floating-point geometry to the grid cells it passes
// through. It composes the exact grid parameters, a rounding mode and a
// tile grid.
type TileCellGrid struct {
	grid     exact.GridParameters
	rounding exact.Rounding
	tiles    TileGrid
}

// NewTileCellGrid creates a tile-cell grid.
func NewTileCellGrid(grid exact.GridParameters, rounding exact.Rounding, origin geom.Vec2s64, tileSize uint16) TileCellGrid {
	assert.Pre(grid.DesiredCellSize > 0, "grid.DesiredCellSize > 0")
	assert.Pre(grid.CellSize >= grid.DesiredCellSize, "grid.CellSize >= grid.DesiredCellSize")
	return TileCellGrid{
		grid:     grid,
		rounding: rounding,
		tiles:    NewTileGrid(origin, tileSize),
	}
}

// Grid returns the exact grid parameters.
func (g *TileCellGrid) Grid() *exact.GridParameters {
	return &g.grid
}

// Rounding returns the cell rounding mode.
func (g *TileCellGrid) Rounding() exact.Rounding {
	return g.rounding
}

// Tiles returns the tile grid.
func (g *TileCellGrid) Tiles() TileGrid {
	return g.tiles
}

// CellSize returns the active cell size.
func (g *TileCellGrid) CellSize() float64 {
	return g.grid.CellSize
}

// CellOf returns the coordinates of the grid cell containing the point.
func (g *TileCellGrid) CellOf(point geom.Vec2f64) geom.Vec2s64 {
	return geom.Vec2s64{
		X: exact.ColumnContainingPosition(&g.grid, g.rounding, point.X),
		Y: exact.RowContainingPosition(&g.grid, g.rounding, point.Y),
	}
}

// TileBoundaryIntersectionCells appends all grid cells in which the
// segment intersects tile boundaries. segmentCells is the segment
// snapped to the grid, usually already computed by the caller. The
// result may contain duplicates; ordering is not guaranteed.
func (g *TileCellGrid) TileBoundaryIntersectionCells(segment geom.Segment2f64, segmentCells geom.Segment2s64, dst []geom.Vec2s64) []geom.Vec2s64 {
	assert.Pre(g.CellOf(segment.A) == segmentCells.A, "segmentCells.A matches segment.A")
	assert.Pre(g.CellOf(segment.B) == segmentCells.B, "segmentCells.B matches segment.B")

	ranges := g.tiles.IntersectedBoundariesRanges(segmentCells)
	step := int64(g.tiles.TileSize())

	if segment.A.X != segment.B.X {
		for x := ranges.MinX; x <= ranges.MaxX; x += step {
			if exact.BorderBetweenCoordinates(g.grid.CellSize, segment.A.X, segment.B.X, x) {
				y := exact.ColumnBorderIntersection(&g.grid, g.rounding,
					segment.A.X, segment.A.Y, segment.B.X, segment.B.Y, x)
				dst = append(dst, geom.Vec2s64{X: x, Y: y})
			}
		}
	}
	if segment.A.Y != segment.B.Y {
		for y := ranges.MinY; y <= ranges.MaxY; y += step {
			if exact.BorderBetweenCoordinates(g.grid.CellSize, segment.A.Y, segment.B.Y, y) {
				x := exact.RowBorderIntersection(&g.grid, g.rounding,
					segment.A.X, segment.A.Y, segment.B.X, segment.B.Y, y)
				dst = append(dst, geom.Vec2s64{X: x, Y: y})
			}
		}
	}
	return dst
}

// LineIntersectsCell reports whether the line through the segment's
// endpoints intersects the given cell.
func (g *TileCellGrid) LineIntersectsCell(segmentOnLine geom.Segment2f64, cell geom.Vec2s64) bool {
	return exact.LineIntersectsCell(&g.grid, g.rounding,
		segmentOnLine.A.X, segmentOnLine.A.Y, segmentOnLine.B.X, segmentOnLine.B.Y,
		cell.X, cell.Y)
}
