package tilecut

import (
	"github.com/gogpu/tilecut/geom"
	"github.com/gogpu/tilecut/internal/assert"
)

// TileGrid maps cell-space geometry to the tiles it passes through.
// A tile is a square block of TileSize x TileSize cells; the grid is
// anchored at Origin (in cell coordinates).
type TileGrid struct {
	origin   geom.Vec2s64
	tileSize uint16
}

// NewTileGrid creates a tile grid with the given origin and tile size.
// The tile size must be positive.
func NewTileGrid(origin geom.Vec2s64, tileSize uint16) TileGrid {
	assert.Pre(tileSize > 0, "tileSize > 0")
	return TileGrid{origin: origin, tileSize: tileSize}
}

// TileSize returns the tile size in cells.
func (g TileGrid) TileSize() uint16 {
	return g.tileSize
}

// Origin returns the grid origin in cell coordinates.
func (g TileGrid) Origin() geom.Vec2s64 {
	return g.origin
}

// TileOf returns the coordinates of the tile containing the given cell.
func (g TileGrid) TileOf(cell geom.Vec2s64) geom.Vec2s64 {
	return geom.Vec2s64{
		X: divRoundDown(cell.X-g.origin.X, g.tileSize),
		Y: divRoundDown(cell.Y-g.origin.Y, g.tileSize),
	}
}

// TileOrigin returns the cell coordinates of the tile's lower-left corner.
func (g TileGrid) TileOrigin(tile geom.Vec2s64) geom.Vec2s64 {
	return geom.Vec2s64{
		X: g.origin.X + tile.X*int64(g.tileSize),
		Y: g.origin.Y + tile.Y*int64(g.tileSize),
	}
}

// TileOfSegment returns the coordinates of the tile containing the given
// segment.
//
// Segments that lie entirely on the boundary of a tile belong to the
// tile in the left half-plane relative to that segment. Thanks to this
// property a tile never contains a 2D part of a polygon; it also makes
// it a little easier to find the boundaries of a tile lying inside a
// polygon.
func (g TileGrid) TileOfSegment(segment geom.Segment2s64) geom.Vec2s64 {
	assert.Pre(segment.A != segment.B, "segment not degenerate")
	assert.Pre(g.IsInsideSingleTile(segment), "segment inside a single tile")

	startTile := g.TileOf(segment.A)
	stopTile := g.TileOf(segment.B)
	tileX := min(startTile.X, stopTile.X)
	tileY := min(startTile.Y, stopTile.Y)

	if segment.A.X == segment.B.X && segment.A.X == g.origin.X+tileX*int64(g.tileSize) {
		if segment.A.Y < segment.B.Y {
			return geom.Vec2s64{X: tileX - 1, Y: tileY}
		}
		return geom.Vec2s64{X: tileX, Y: tileY}
	}
	if segment.A.Y == segment.B.Y && segment.A.Y == g.origin.Y+tileY*int64(g.tileSize) {
		if segment.A.X < segment.B.X {
			return geom.Vec2s64{X: tileX, Y: tileY}
		}
		return geom.Vec2s64{X: tileX, Y: tileY - 1}
	}
	return geom.Vec2s64{X: tileX, Y: tileY}
}

// LocalCoordinates converts cell coordinates to the local coordinates of
// the given tile. The cell must lie in the closed tile square.
func (g TileGrid) LocalCoordinates(tile, cell geom.Vec2s64) geom.Vec2u16 {
	origin := g.TileOrigin(tile)
	local := geom.Vec2s64{X: cell.X - origin.X, Y: cell.Y - origin.Y}
	assert.Pre(local.X >= 0 && local.X <= int64(g.tileSize), "local x in [0, tileSize]")
	assert.Pre(local.Y >= 0 && local.Y <= int64(g.tileSize), "local y in [0, tileSize]")
	return geom.CastVec2[uint16](local)
}

// LocalSegment converts segment coordinates to the local coordinates of
// the given tile.
func (g TileGrid) LocalSegment(tile geom.Vec2s64, segment geom.Segment2s64) geom.Segment2u16 {
	return geom.Segment2u16{
		A: g.LocalCoordinates(tile, segment.A),
		B: g.LocalCoordinates(tile, segment.B),
	}
}

// IsInsideSingleTile reports whether the segment is entirely contained
// within a single (closed) tile.
func (g TileGrid) IsInsideSingleTile(segment geom.Segment2s64) bool {
	return g.insideSingleSpan(segment.A.X-g.origin.X, segment.B.X-g.origin.X) &&
		g.insideSingleSpan(segment.A.Y-g.origin.Y, segment.B.Y-g.origin.Y)
}

func (g TileGrid) insideSingleSpan(a, b int64) bool {
	if a > b {
		a, b = b, a
	}
	minTile := divRoundDown(a, g.tileSize)
	maxTile := divRoundDown(b, g.tileSize)
	return minTile == maxTile || b == (minTile+1)*int64(g.tileSize)
}

// StrictlyOutside reports whether the cell lies outside the closed tile
// square.
func (g TileGrid) StrictlyOutside(tile, cell geom.Vec2s64) bool {
	origin := g.TileOrigin(tile)
	left := origin.X
	right := left + int64(g.tileSize)
	bottom := origin.Y
	top := bottom + int64(g.tileSize)
	return cell.X < left || cell.X > right || cell.Y < bottom || cell.Y > top
}

// BoundariesRanges holds the inclusive coordinate ranges of tile
// boundaries possibly intersected by a segment. A range whose first
// value exceeds the second is empty.
type BoundariesRanges struct {
	MinX, MaxX int64
	MinY, MaxY int64
}

// IntersectedBoundariesRanges returns the coordinate ranges of the tile
// boundaries intersected by the given segment.
func (g TileGrid) IntersectedBoundariesRanges(segment geom.Segment2s64) BoundariesRanges {
	minX, maxX := g.intersectedBoundariesSpan(g.origin.X, segment.A.X, segment.B.X)
	minY, maxY := g.intersectedBoundariesSpan(g.origin.Y, segment.A.Y, segment.B.Y)
	return BoundariesRanges{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

// intersectedBoundariesSpan returns the first and last tile boundary
// coordinates between the given cell coordinates (inclusive, unordered).
func (g TileGrid) intersectedBoundariesSpan(origin, beginCell, endCell int64) (int64, int64) {
	if beginCell > endCell {
		beginCell, endCell = endCell, beginCell
	}
	ts := int64(g.tileSize)
	return divRoundUp(beginCell-origin, g.tileSize)*ts + origin,
		divRoundDown(endCell-origin, g.tileSize)*ts + origin
}

// TileLocalBoundaries appends the four counterclockwise tile boundary
// segments in local coordinates.
func (g TileGrid) TileLocalBoundaries(dst []geom.Segment2u16) []geom.Segment2u16 {
	ts := g.tileSize
	corners := [4]geom.Vec2u16{
		{X: 0, Y: 0},
		{X: ts, Y: 0},
		{X: ts, Y: ts},
		{X: 0, Y: ts},
	}
	for i := range corners {
		dst = append(dst, geom.Segment2u16{A: corners[i], B: corners[(i+1)%len(corners)]})
	}
	return dst
}

// divRoundUp divides flooring toward positive infinity.
func divRoundUp(a int64, b uint16) int64 {
	assert.Pre(b > 0, "b > 0")
	d := int64(b)
	if a >= 0 {
		return (a + d - 1) / d
	}
	return -(-a / d)
}

// divRoundDown divides flooring toward negative infinity.
func divRoundDown(a int64, b uint16) int64 {
	assert.Pre(b > 0, "b > 0")
	d := int64(b)
	if a >= 0 {
		return a / d
	}
	return -((-a + d - 1) / d)
}
