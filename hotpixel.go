package tilecut

import (
	"slices"

	"github.com/gogpu/tilecut/geom"
	"github.com/gogpu/tilecut/internal/assert"
)

// HotPixel is a cell relevant for snap rounding: a vertex falls into it,
// or a segment crosses a tile boundary inside it.
type HotPixel = geom.Vec2s64

// pixelOrder selects a scan direction along one axis.
type pixelOrder bool

const (
	orderAscending  pixelOrder = true
	orderDescending pixelOrder = false
)

// hotPixelLess orders pixels lexicographically with a per-axis direction.
func hotPixelLess(xOrder, yOrder pixelOrder) func(lhs, rhs HotPixel) bool {
	return func(lhs, rhs HotPixel) bool {
		if lhs.X != rhs.X {
			if xOrder == orderAscending {
				return lhs.X < rhs.X
			}
			return lhs.X > rhs.X
		}
		if yOrder == orderAscending {
			return lhs.Y < rhs.Y
		}
		return lhs.Y > rhs.Y
	}
}

// hotPixelColumn is one column of the index: all hot pixels sharing an x
// coordinate, ordered by increasing y.
type hotPixelColumn struct {
	x      int64
	pixels []HotPixel
}

// HotPixelIndex is an immutable snapshot of a sorted, deduplicated hot
// pixel set, structured as lexicographically sorted columns.
//
// The index borrows the collector's arena: it is invalidated by any
// subsequent mutation of the owning HotPixelCollector.
type HotPixelIndex struct {
	grid    *TileCellGrid
	columns []hotPixelColumn
}

// Grid returns the tile-cell grid the pixels were collected on.
func (idx *HotPixelIndex) Grid() *TileCellGrid {
	return idx.grid
}

// findIf appends all hot pixels inside the closed rectangle
// [minX, maxX] x [minY, maxY] that satisfy the predicate, enumerated in
// hotPixelLess(xOrder, yOrder) order.
func (idx *HotPixelIndex) findIf(xOrder, yOrder pixelOrder, minX, maxX, minY, maxY int64, dst []HotPixel, predicate func(HotPixel) bool) []HotPixel {
	assert.Pre(minX <= maxX, "minX <= maxX")

	if xOrder == orderAscending {
		first, _ := slices.BinarySearchFunc(idx.columns, minX, func(c hotPixelColumn, x int64) int {
			switch {
			case c.x < x:
				return -1
			case c.x > x:
				return 1
			}
			return 0
		})
		for i := first; i < len(idx.columns) && idx.columns[i].x <= maxX; i++ {
			dst = idx.columns[i].findIf(yOrder, minY, maxY, dst, predicate)
		}
		return dst
	}
	first, _ := slices.BinarySearchFunc(idx.columns, maxX, func(c hotPixelColumn, x int64) int {
		if c.x <= x {
			return -1
		}
		return 1
	})
	for i := first - 1; i >= 0 && idx.columns[i].x >= minX; i-- {
		dst = idx.columns[i].findIf(yOrder, minY, maxY, dst, predicate)
	}
	return dst
}

func (c *hotPixelColumn) findIf(yOrder pixelOrder, minY, maxY int64, dst []HotPixel, predicate func(HotPixel) bool) []HotPixel {
	assert.Pre(minY <= maxY, "minY <= maxY")
	if yOrder == orderAscending {
		first, _ := slices.BinarySearchFunc(c.pixels, minY, func(p HotPixel, y int64) int {
			switch {
			case p.Y < y:
				return -1
			case p.Y > y:
				return 1
			}
			return 0
		})
		for i := first; i < len(c.pixels) && c.pixels[i].Y <= maxY; i++ {
			if predicate(c.pixels[i]) {
				dst = append(dst, c.pixels[i])
			}
		}
		return dst
	}
	first, _ := slices.BinarySearchFunc(c.pixels, maxY, func(p HotPixel, y int64) int {
		if p.Y <= y {
			return -1
		}
		return 1
	})
	for i := first - 1; i >= 0 && c.pixels[i].Y >= minY; i-- {
		if predicate(c.pixels[i]) {
			dst = append(dst, c.pixels[i])
		}
	}
	return dst
}

// HotPixelCollector accumulates hot pixels for a set of contours and
// builds a queryable index over them.
//
// The zero value is not ready for use; call Init first. The collector
// exclusively owns its pixel arena; indexes returned by BuildIndex
// borrow it and are invalidated by any further mutation.
type HotPixelCollector struct {
	grid       *TileCellGrid
	prevVertex geom.Vec2f64
	prevPixel  geom.Vec2s64
	hasPrev    bool
	hotPixels  []HotPixel
	index      HotPixelIndex
}

// Init resets state and binds the collector to a grid.
func (c *HotPixelCollector) Init(grid *TileCellGrid) {
	assert.Pre(grid != nil, "grid != nil")
	c.grid = grid
	c.hasPrev = false
	c.hotPixels = c.hotPixels[:0]
}

// Reset clears the pixel buffer, invalidating any index built earlier.
func (c *HotPixelCollector) Reset() {
	c.hasPrev = false
	c.hotPixels = c.hotPixels[:0]
}

// NewContour starts a new contour: the next vertex will not be connected
// to the previous one.
func (c *HotPixelCollector) NewContour() {
	assert.Pre(c.grid != nil, "collector initialized")
	c.hasPrev = false
}

// AddVertexAndTileCuts adds hot pixels at the vertex and at the
// intersection points of the segment from the previous vertex with tile
// boundaries.
func (c *HotPixelCollector) AddVertexAndTileCuts(vertex geom.Vec2f64) {
	assert.Pre(c.grid != nil, "collector initialized")

	pixel := c.grid.CellOf(vertex)
	c.hotPixels = append(c.hotPixels, pixel)
	if c.hasPrev {
		c.hotPixels = c.grid.TileBoundaryIntersectionCells(
			geom.Segment2f64{A: c.prevVertex, B: vertex},
			geom.Segment2s64{A: c.prevPixel, B: pixel},
			c.hotPixels)
	}
	c.prevVertex = vertex
	c.prevPixel = pixel
	c.hasPrev = true
}

// BuildIndex sorts and deduplicates the collected pixels and partitions
// them into columns. The returned index is invalidated by any subsequent
// collector mutation.
func (c *HotPixelCollector) BuildIndex() *HotPixelIndex {
	assert.Pre(c.grid != nil, "collector initialized")
	assert.Pre(len(c.hotPixels) > 0, "at least one hot pixel collected")

	slices.SortFunc(c.hotPixels, func(lhs, rhs HotPixel) int {
		return lhs.Compare(rhs)
	})
	c.hotPixels = slices.Compact(c.hotPixels)

	c.index.grid = c.grid
	c.index.columns = c.index.columns[:0]

	spanStart := 0
	currentX := c.hotPixels[0].X
	for i := range c.hotPixels {
		if c.hotPixels[i].X != currentX {
			c.index.columns = append(c.index.columns, hotPixelColumn{
				x:      currentX,
				pixels: c.hotPixels[spanStart:i],
			})
			currentX = c.hotPixels[i].X
			spanStart = i
		}
	}
	c.index.columns = append(c.index.columns, hotPixelColumn{
		x:      currentX,
		pixels: c.hotPixels[spanStart:],
	})

	logger().Debug("hot pixel index built",
		"pixels", len(c.hotPixels),
		"columns", len(c.index.columns))
	return &c.index
}
