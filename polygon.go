package tilecut

import (
	"github.com/gogpu/tilecut/geom"
	"github.com/gogpu/tilecut/internal/assert"
)

// PolygonOrientation is the winding of a polygon with non-zero area.
type PolygonOrientation bool

const (
	Clockwise        PolygonOrientation = false
	CounterClockwise PolygonOrientation = true
)

func (o PolygonOrientation) String() string {
	if o == CounterClockwise {
		return "CounterClockwise"
	}
	return "Clockwise"
}

// Opposite returns the reversed winding.
func (o PolygonOrientation) Opposite() PolygonOrientation {
	return !o
}

// Polygon orientation is often determined by computing the signed area,
// but that method suffers from numerical precision limits: float error
// accumulation distorts the sign and integer sums overflow.
//
// Instead we establish whether the half-plane to the right of the
// lexicographically largest vertex lies inside or outside the polygon.
// Since the vertex is the rightmost (then topmost), all segments lie in
// or on the boundary of the left half-plane, so the half-plane is
// entirely inside or entirely outside. Among the edges incident to the
// vertex at their larger endpoint we pick the one oriented furthest
// clockwise; by choosing a vertex with no lexicographically larger
// neighbor, vertically counter-directed collinear edges are impossible,
// so the exact orientation predicate suffices. The chosen edge separates
// interior from exterior: if it enters the vertex in its original
// direction the half-plane is outside and the outer contour is
// counter-clockwise; if it exits, the polygon is clockwise.

// mainSegmentChooser tracks the most clockwise segment incident to the
// chosen vertex at its larger endpoint.
type mainSegmentChooser[T interface {
	float32 | float64 | int16 | uint16
}] struct {
	maxVertex     geom.Vec2[T]
	first         bool
	maxSegment    geom.Segment2[T]
	maxUndirected geom.Segment2[T]
}

func newMainSegmentChooser[T interface {
	float32 | float64 | int16 | uint16
}](maxVertex geom.Vec2[T]) mainSegmentChooser[T] {
	return mainSegmentChooser[T]{maxVertex: maxVertex, first: true}
}

func (c *mainSegmentChooser[T]) processSegment(segment geom.Segment2[T]) {
	undirected := segment.Undirected()
	if undirected.B != c.maxVertex {
		return
	}
	assert.Pre(c.first || c.maxUndirected.A != undirected.A, "no repeated edges at the chosen vertex")
	if c.first || PointLocationOf(c.maxUndirected.A, c.maxVertex, undirected.A).Right() {
		c.first = false
		c.maxSegment = segment
		c.maxUndirected = undirected
	}
}

func (c *mainSegmentChooser[T]) chosenSegment() geom.Segment2[T] {
	assert.Pre(!c.first, "at least one incident segment processed")
	return c.maxSegment
}

// ContourOrientation determines the orientation of a closed contour.
//
// The contour must be closed (first vertex repeated last), have at least
// three distinct vertices, no repeated adjacent points and no
// self-intersections; it may touch itself only at shared vertices.
func ContourOrientation[T interface {
	float32 | float64 | int16 | uint16
}](contour []geom.Vec2[T]) PolygonOrientation {
	assert.Pre(len(contour) >= 3, "contour has at least 3 vertices")

	maxVertex := contour[0]
	for i := 1; i < len(contour); i++ {
		assert.Pre(contour[i] != contour[i-1], "no repeated adjacent vertices")
		maxVertex = geom.MaxVec2(maxVertex, contour[i])
	}

	chooser := newMainSegmentChooser(maxVertex)
	for i := 1; i < len(contour); i++ {
		chooser.processSegment(geom.Segment2[T]{A: contour[i-1], B: contour[i]})
	}
	return PolygonOrientation(chooser.chosenSegment().B == maxVertex)
}

// PolygonOrientationOf determines the orientation of the outermost
// contour of the contour set represented by the given segments.
// Orientations of interior contours are ignored; when several outermost
// contours exist one is chosen arbitrarily.
//
// The segments must form a set of closed contours without intersections,
// self-intersections or repeated points; contours may touch themselves
// and each other only at common vertices.
func PolygonOrientationOf[T interface {
	float32 | float64 | int16 | uint16
}](segments []geom.Segment2[T]) PolygonOrientation {
	assert.Pre(len(segments) >= 3, "at least 3 segments")

	maxVertex := geom.MaxVec2(segments[0].A, segments[0].B)
	for _, segment := range segments {
		assert.Pre(!segment.Degenerate(), "no zero-length segments")
		maxVertex = geom.MaxVec2(maxVertex, geom.MaxVec2(segment.A, segment.B))
	}

	chooser := newMainSegmentChooser(maxVertex)
	for _, segment := range segments {
		chooser.processSegment(segment)
	}
	return PolygonOrientation(chooser.chosenSegment().B == maxVertex)
}
