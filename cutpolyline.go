package tilecut

import (
	"github.com/gogpu/tilecut/geom"
	"github.com/gogpu/tilecut/internal/assert"
)

// CutPolyline splits a snapped polyline into parts, each of which lies
// entirely within a single tile. The minimum possible number of cuts is
// not guaranteed, but in most situations this will be the case.
//
// proj converts polyline vertices to their cell coordinates. visit is
// called for each part with the owning tile and the half-open index
// range [start, stop) of the part's vertices; consecutive parts share
// their boundary vertex.
func CutPolyline[V any](tileGrid TileGrid, line []V, proj func(V) geom.Vec2s64, visit func(tile geom.Vec2s64, start, stop int)) {
	if len(line) == 0 {
		return
	}
	if len(line) == 1 {
		visit(tileGrid.TileOf(proj(line[0])), 0, 1)
		return
	}

	start := 0
	for start+1 < len(line) {
		segmentStartXY := proj(line[start])
		// Skip vertices whose projections coincide with the part start.
		segmentStop := start + 1
		for segmentStop < len(line) && proj(line[segmentStop]) == segmentStartXY {
			segmentStop++
		}
		if segmentStop == len(line) {
			// If the part is not the first, then all points with
			// coinciding projections were assigned to the previous part.
			assert.That(start == 0, "trailing duplicate projections belong to the previous part")
			visit(tileGrid.TileOf(segmentStartXY), 0, len(line))
			return
		}
		segmentStopXY := proj(line[segmentStop])
		// Determining the tile by the first segment may lead to
		// unnecessary cuts, but it is the easiest way to unambiguously
		// determine which tile we are working with.
		currentTile := tileGrid.TileOfSegment(geom.Segment2s64{A: segmentStartXY, B: segmentStopXY})
		assert.That(!tileGrid.StrictlyOutside(currentTile, segmentStartXY), "part start inside current tile")
		assert.That(!tileGrid.StrictlyOutside(currentTile, segmentStopXY), "part stop inside current tile")

		stop := segmentStop + 1
		for stop < len(line) && !tileGrid.StrictlyOutside(currentTile, proj(line[stop])) {
			stop++
		}

		visit(currentTile, start, stop)

		start = stop - 1
	}
}
