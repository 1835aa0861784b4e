package tilecut

import (
	"slices"

	"github.com/gogpu/tilecut/geom"
	"github.com/gogpu/tilecut/internal/assert"
)

// SnapRound rounds a polyline onto the cell grid of the given hot pixel
// index and appends the rounded vertices to dst.
//
// Every vertex maps to its cell; between consecutive vertices all hot
// pixels intersected by the segment are emitted in traversal order.
// The output may contain repeated adjacent pixels; deduplication is left
// to the caller.
func SnapRound(hotPixels *HotPixelIndex, line []geom.Vec2f64, dst []geom.Vec2s64) []geom.Vec2s64 {
	grid := hotPixels.Grid()

	var prevVertex geom.Vec2f64
	var prevPixel geom.Vec2s64
	first := true
	for _, vertex := range line {
		pixel := grid.CellOf(vertex)
		if first {
			dst = append(dst, pixel)
			prevVertex = vertex
			prevPixel = pixel
			first = false
			continue
		}

		predicate := func(hotPixel HotPixel) bool {
			assert.Pre(min(prevPixel.X, pixel.X) <= hotPixel.X, "hot pixel inside query box")
			assert.Pre(hotPixel.X <= max(prevPixel.X, pixel.X), "hot pixel inside query box")
			assert.Pre(min(prevPixel.Y, pixel.Y) <= hotPixel.Y, "hot pixel inside query box")
			assert.Pre(hotPixel.Y <= max(prevPixel.Y, pixel.Y), "hot pixel inside query box")

			if hotPixel == prevPixel || hotPixel == pixel {
				// Endpoints are added explicitly to reduce the amount of
				// pixel repetitions.
				return false
			}
			return grid.LineIntersectsCell(
				geom.Segment2f64{A: prevVertex, B: vertex}, hotPixel)
		}

		xOrder := pixelOrder(prevPixel.X <= pixel.X)
		yOrder := pixelOrder(prevPixel.Y <= pixel.Y)
		dst = hotPixels.findIf(xOrder, yOrder,
			min(prevPixel.X, pixel.X), max(prevPixel.X, pixel.X),
			min(prevPixel.Y, pixel.Y), max(prevPixel.Y, pixel.Y),
			dst, predicate)
		dst = append(dst, pixel)
		prevVertex = vertex
		prevPixel = pixel
	}
	return dst
}

// sortHotPixelsAlongSegment restores the order in which the pixels
// intersect the snap-rounded segment. All pixels are assumed to
// intersect the original segment; under that assumption the order is
// unambiguous.
func sortHotPixelsAlongSegment(pixels []geom.Vec2s64, start, stop geom.Vec2s64) {
	less := hotPixelLess(pixelOrder(start.X <= stop.X), pixelOrder(start.Y <= stop.Y))
	slices.SortFunc(pixels, func(lhs, rhs geom.Vec2s64) int {
		switch {
		case less(lhs, rhs):
			return -1
		case less(rhs, lhs):
			return 1
		}
		return 0
	})
}
