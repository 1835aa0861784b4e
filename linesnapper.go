package tilecut

import (
	"slices"

	"github.com/gogpu/tilecut/geom"
)

// CoordinateHandler converts between application vertices and grid
// coordinates for LineSnapper. In and Out are the application's input
// and output vertex types.
type CoordinateHandler[In, Out any] interface {
	// Project extracts the planar coordinates of an input vertex.
	Project(in In) geom.Vec2f64
	// Transform converts an input vertex snapped to the given pixel.
	Transform(in In, pixel geom.Vec2s64) Out
	// Interpolate produces the output vertex for an interior pixel of
	// the segment between two input vertices.
	Interpolate(prevIn In, prevOut Out, currIn In, currOut Out, pixel geom.Vec2s64) Out
}

// LineSnapper snaps polylines carrying per-vertex payload: each vertex
// is rounded to its cell, and interior tile-boundary pixels are inserted
// with payload produced by the handler's Interpolate.
//
// A LineSnapper may be reused across polylines; it keeps a scratch
// buffer between calls.
type LineSnapper struct {
	interiorPixels []geom.Vec2s64
}

// SnapLine snaps one polyline and appends the output vertices to dst.
func SnapLine[In, Out any](s *LineSnapper, grid *TileCellGrid, line []In, handler CoordinateHandler[In, Out], dst []Out) []Out {
	var prevVertex geom.Vec2f64
	var prevPixel geom.Vec2s64
	var prevIn In
	var prevOut Out

	first := true
	for _, currIn := range line {
		currVertex := handler.Project(currIn)
		currPixel := grid.CellOf(currVertex)
		currOut := handler.Transform(currIn, currPixel)

		if first {
			first = false
		} else {
			s.interiorPixels = grid.TileBoundaryIntersectionCells(
				geom.Segment2f64{A: prevVertex, B: currVertex},
				geom.Segment2s64{A: prevPixel, B: currPixel},
				s.interiorPixels[:0])

			sortHotPixelsAlongSegment(s.interiorPixels, prevPixel, currPixel)
			s.interiorPixels = slices.Compact(s.interiorPixels)

			for _, pixel := range strictlyInteriorPixels(prevPixel, currPixel, s.interiorPixels) {
				dst = append(dst, handler.Interpolate(prevIn, prevOut, currIn, currOut, pixel))
			}
		}

		dst = append(dst, currOut)

		prevVertex = currVertex
		prevPixel = currPixel
		prevIn = currIn
		prevOut = currOut
	}
	return dst
}

// strictlyInteriorPixels trims the endpoints' own pixels off the sorted
// interior pixel run.
func strictlyInteriorPixels(start, stop geom.Vec2s64, pixels []geom.Vec2s64) []geom.Vec2s64 {
	if len(pixels) > 0 && pixels[0] == start {
		pixels = pixels[1:]
	}
	if len(pixels) > 0 && pixels[len(pixels)-1] == stop {
		pixels = pixels[:len(pixels)-1]
	}
	return pixels
}

// LerpAlongSegment linearly interpolates a per-vertex value at a
// position projected onto the segment from start to stop.
func LerpAlongSegment(start geom.Vec2f64, startValue float64, stop geom.Vec2f64, stopValue float64, position geom.Vec2f64) float64 {
	dirX := stop.X - start.X
	dirY := stop.Y - start.Y
	lenSqr := dirX*dirX + dirY*dirY
	posX := position.X - start.X
	posY := position.Y - start.Y
	t := (posX*dirX + posY*dirY) / lenSqr
	return startValue + t*(stopValue-startValue)
}
