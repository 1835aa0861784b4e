package tilecut

import (
	"slices"

	"github.com/gogpu/tilecut/geom"
	"github.com/gogpu/tilecut/internal/assert"
)

// makeParameter converts a boundary point to its perimeter parameter:
// the counter-clockwise distance along the tile perimeter from the
// corner with zero coordinates. Returns false when the point does not
// lie on the boundary.
func makeParameter(tileSize uint16, point geom.Vec2u16) (uint32, bool) {
	ts := uint32(tileSize)
	switch {
	case point.Y == 0:
		return uint32(point.X), true
	case point.X == tileSize:
		return ts + uint32(point.Y), true
	case point.Y == tileSize:
		return 2*ts + (ts - uint32(point.X)), true
	case point.X == 0:
		return 3*ts + (ts - uint32(point.Y)), true
	}
	return 0, false
}

// makePoint converts a perimeter parameter back to the boundary point.
func makePoint(tileSize uint16, parameter uint32) geom.Vec2u16 {
	ts := uint32(tileSize)
	sideParameter := uint16(parameter % ts)
	switch parameter / ts % 4 {
	case 0:
		return geom.Vec2u16{X: sideParameter, Y: 0}
	case 1:
		return geom.Vec2u16{X: tileSize, Y: sideParameter}
	case 2:
		return geom.Vec2u16{X: tileSize - sideParameter, Y: tileSize}
	case 3:
		return geom.Vec2u16{X: 0, Y: tileSize - sideParameter}
	}
	assert.Unreachable("side index")
	return geom.Vec2u16{}
}

// addCut appends tile cut segments along the perimeter from the point at
// fromParameter to the point at toParameter, breaking at every corner in
// between. Every emitted segment is axis-aligned on one tile side.
func addCut(tileSize uint16, result []geom.Segment2u16, fromParameter, toParameter uint32) []geom.Segment2u16 {
	assert.Pre(fromParameter < toParameter, "fromParameter < toParameter")

	ts := uint32(tileSize)
	onSide := func(a, b geom.Vec2u16) bool {
		return (a.X == b.X && (a.X == 0 || a.X == tileSize)) ||
			(a.Y == b.Y && (a.Y == 0 || a.Y == tileSize))
	}

	prev := makePoint(tileSize, fromParameter)
	for cornerParameter := (fromParameter/ts + 1) * ts; cornerParameter < toParameter; cornerParameter += ts {
		corner := makePoint(tileSize, cornerParameter)
		assert.Post(prev != corner, "cut segment not degenerate")
		assert.Post(onSide(prev, corner), "cut segment on one tile side")
		result = append(result, geom.Segment2u16{A: prev, B: corner})
		prev = corner
	}
	end := makePoint(tileSize, toParameter)
	assert.Post(prev != end, "cut segment not degenerate")
	assert.Post(onSide(prev, end), "cut segment on one tile side")
	return append(result, geom.Segment2u16{A: prev, B: end})
}

// outermostContourIsInner reports whether the outermost contour is
// oriented clockwise, that is, bounds a hole whose surroundings (the
// whole tile boundary included) are inside the multipolygon. The
// segments must form a set of
// non-intersecting oriented contours none of which touches the tile
// boundary.
func outermostContourIsInner(segments []geom.Segment2u16) bool {
	assert.Pre(len(segments) > 0, "non-empty segment set")
	chosen := slices.MinFunc(segments, func(lhs, rhs geom.Segment2u16) int {
		lu, ru := lhs.Undirected(), rhs.Undirected()
		if lu.B == ru.B {
			if PointOrderOf(lu.B, lu.A, ru.A).IsCW() {
				return -1
			}
			return 1
		}
		if ru.B.Less(lu.B) {
			return -1
		}
		return 1
	})
	return chosen.B.Less(chosen.A)
}

// touchingSegment describes one endpoint of an input segment lying on
// the tile boundary.
type touchingSegment struct {
	// parameter of the touching point.
	parameter uint32
	// touchingPoint is the endpoint on the tile boundary.
	touchingPoint geom.Vec2u16
	// oppositePoint is the other endpoint of the original segment.
	oppositePoint geom.Vec2u16
	// outgoing is true when the second point of the original segment is
	// the one on the boundary. This means some part of the boundary
	// clockwise from the touch point is to the right of the segment, or
	// that the segment lies entirely on the boundary. For many simple
	// geometries it means the next segment of the contour belongs to a
	// different tile, hence the name.
	outgoing bool
}

// checkOrientationIfOnBoundary checks the orientation precondition for
// segments lying entirely on the tile boundary: the tile interior must
// be to their left.
func checkOrientationIfOnBoundary(tileSize uint16, t touchingSegment) bool {
	a := t.touchingPoint
	b := t.oppositePoint
	assert.Pre(a != b, "touching segment not degenerate")
	if t.outgoing {
		a, b = b, a
	}
	if a.X == 0 && b.X == 0 && a.Y < b.Y {
		return false
	}
	if a.X == tileSize && b.X == tileSize && a.Y > b.Y {
		return false
	}
	if a.Y == 0 && b.Y == 0 && a.X > b.X {
		return false
	}
	if a.Y == tileSize && b.Y == tileSize && a.X < b.X {
		return false
	}
	return true
}

// FindCuts restores cut segments: the parts of the tile border belonging
// to the interior of the multipolygon whose tile-local segments are
// given. The cuts are appended to result.
//
// Segments lying entirely on the tile boundary must keep the tile
// interior to their left.
func FindCuts(tileGrid TileGrid, segments []geom.Segment2u16, result []geom.Segment2u16) []geom.Segment2u16 {
	if len(segments) == 0 {
		return result
	}
	tileSize := tileGrid.TileSize()

	touching := make([]touchingSegment, 0, 2*len(segments))
	for _, segment := range segments {
		if param, ok := makeParameter(tileSize, segment.A); ok {
			touching = append(touching, touchingSegment{
				parameter:     param,
				touchingPoint: segment.A,
				oppositePoint: segment.B,
				outgoing:      false,
			})
		}
		if param, ok := makeParameter(tileSize, segment.B); ok {
			touching = append(touching, touchingSegment{
				parameter:     param,
				touchingPoint: segment.B,
				oppositePoint: segment.A,
				outgoing:      true,
			})
		}
	}
	assert.That(len(touching)%2 == 0, "touching records come in pairs")

	// A special case: no segment touches the boundary. The orientation
	// of the outermost contour tells whether the polygon contains the
	// entire tile boundary.
	if len(touching) == 0 {
		if outermostContourIsInner(segments) {
			result = addCut(tileSize, result, 0, 4*uint32(tileSize))
		}
		return result
	}

	// Sort touching segments counter-clockwise by boundary point, then
	// clockwise by opposite point. The direction of the first segment in
	// each bunch (group with the same touching point) determines whether
	// the boundary section from the previous bunch to this one lies
	// inside the polygon.
	slices.SortFunc(touching, func(lhs, rhs touchingSegment) int {
		if lhs.parameter != rhs.parameter {
			if lhs.parameter < rhs.parameter {
				return -1
			}
			return 1
		}
		assert.That(lhs.touchingPoint == rhs.touchingPoint, "bunch shares the touching point")
		if lhs.oppositePoint == rhs.oppositePoint {
			return 0
		}
		order := PointOrderOf(lhs.touchingPoint, lhs.oppositePoint, rhs.oppositePoint)
		if order.IsCollinear() {
			// Both opposite points lie on the same side of the tile
			// boundary; the orientation check is insufficient. The
			// segment with the smaller opposite-point parameter comes
			// first.
			lhsParam, lhsOK := makeParameter(tileSize, lhs.oppositePoint)
			rhsParam, rhsOK := makeParameter(tileSize, rhs.oppositePoint)
			assert.That(lhsOK && rhsOK, "collinear opposite points lie on the boundary")
			// A very special case: one of the collinear opposite points
			// is the zero corner, whose parameter is ambiguous. This is
			// only possible when either x or y is zero for all three
			// points. For the boundary y = 0 the segment with the zero
			// opposite point comes first, and for the boundary x = 0 it
			// comes last.
			if lhsParam == 0 {
				assert.That(rhsParam != 0, "distinct opposite points")
				if lhs.touchingPoint.Y == 0 {
					return -1
				}
				return 1
			}
			if rhsParam == 0 {
				assert.That(lhsParam != 0, "distinct opposite points")
				if lhs.touchingPoint.Y != 0 {
					return -1
				}
				return 1
			}
			if lhsParam < rhsParam {
				return -1
			}
			return 1
		}
		if order.IsCW() {
			return -1
		}
		return 1
	})

	havePrev := false
	var prevPoint uint32
	processBunch := func(cwSegment touchingSegment, repeatedFirst bool) {
		assert.Pre(checkOrientationIfOnBoundary(tileSize, cwSegment),
			"on-boundary segment keeps the tile interior to its left")
		// The most clockwise segment of the bunch determines whether the
		// previous part of the boundary belongs to the multipolygon.
		// When the segment is not on the boundary, the previous part of
		// the boundary is to the right of it and therefore outside.
		// When the segment is on the boundary, the precondition above
		// ensures the outgoing segment lies on the previous part of the
		// boundary (not a cut, it coincides with an existing segment)
		// and the non-outgoing segment lies on the unprocessed part.
		previousBoundaryPartIsCut := !cwSegment.outgoing
		if previousBoundaryPartIsCut {
			if havePrev {
				current := cwSegment.parameter
				if repeatedFirst {
					current += 4 * uint32(tileSize)
				}
				result = addCut(tileSize, result, prevPoint, current)
			} else {
				assert.That(!repeatedFirst, "wrap-around only after a first bunch")
			}
		}
		havePrev = true
		prevPoint = cwSegment.parameter
	}

	for i := 0; i < len(touching); {
		processBunch(touching[i], false)
		j := i + 1
		for j < len(touching) && touching[j].parameter == touching[i].parameter {
			j++
		}
		i = j
	}
	processBunch(touching[0], true)
	return result
}

// OpenOnTheBottom reports whether any cut segment lies on the bottom
// border of the tile, meaning the interior of the tile below contains
// points of the same multipolygon. One can use this to find tiles
// completely covered by the multipolygon.
func OpenOnTheBottom(cutSegments []geom.Segment2u16) bool {
	return slices.ContainsFunc(cutSegments, func(segment geom.Segment2u16) bool {
		return segment.A.Y == 0 && segment.B.Y == 0
	})
}
