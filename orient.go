package tilecut

import (
	"github.com/gogpu/tilecut/exact"
	"github.com/gogpu/tilecut/geom"
)

// The classifiers below wrap the sign of an exact orientation predicate
// and expose it through named boolean tests. Equality compares signs
// only; magnitudes carry no meaning.

// orientSign evaluates the orientation predicate for the permitted
// coordinate types and reduces the result to its sign.
func orientSign[T interface {
	float32 | float64 | int16 | uint16
}](a, b, c geom.Vec2[T]) int {
	switch a := any(a).(type) {
	case geom.Vec2f64:
		b, c := any(b).(geom.Vec2f64), any(c).(geom.Vec2f64)
		return sign(exact.Orientation(a.X, a.Y, b.X, b.Y, c.X, c.Y))
	case geom.Vec2f32:
		b, c := any(b).(geom.Vec2f32), any(c).(geom.Vec2f32)
		return sign(exact.OrientationF32(a.X, a.Y, b.X, b.Y, c.X, c.Y))
	case geom.Vec2s16:
		b, c := any(b).(geom.Vec2s16), any(c).(geom.Vec2s16)
		return sign(exact.OrientationInt(a.X, a.Y, b.X, b.Y, c.X, c.Y))
	case geom.Vec2u16:
		b, c := any(b).(geom.Vec2u16), any(c).(geom.Vec2u16)
		return sign(exact.OrientationInt(a.X, a.Y, b.X, b.Y, c.X, c.Y))
	}
	return 0
}

func sign[T ~float32 | ~float64 | ~int64](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// PointLocation classifies a point against a directed line.
type PointLocation struct {
	s int
}

// PointLocationOf locates point c relative to the line through a and b.
func PointLocationOf[T float32 | float64 | int16 | uint16](lineA, lineB, point geom.Vec2[T]) PointLocation {
	return PointLocation{s: orientSign(lineA, lineB, point)}
}

// SegmentPointLocation locates a point relative to the line through the
// segment's endpoints.
func SegmentPointLocation[T float32 | float64 | int16 | uint16](segment geom.Segment2[T], point geom.Vec2[T]) PointLocation {
	return PointLocationOf(segment.A, segment.B, point)
}

func (l PointLocation) Left() bool        { return l.s > 0 }
func (l PointLocation) LeftOrLine() bool  { return l.s >= 0 }
func (l PointLocation) Line() bool        { return l.s == 0 }
func (l PointLocation) RightOrLine() bool { return l.s <= 0 }
func (l PointLocation) Right() bool       { return l.s < 0 }

// PointOrder classifies the winding of three ordered points.
type PointOrder struct {
	s int
}

// PointOrderOf determines the winding order of three points.
func PointOrderOf[T float32 | float64 | int16 | uint16](a, b, c geom.Vec2[T]) PointOrder {
	return PointOrder{s: orientSign(a, b, c)}
}

func (o PointOrder) IsCCW() bool            { return o.s > 0 }
func (o PointOrder) IsCCWOrCollinear() bool { return o.s >= 0 }
func (o PointOrder) IsCollinear() bool      { return o.s == 0 }
func (o PointOrder) IsCWOrCollinear() bool  { return o.s <= 0 }
func (o PointOrder) IsCW() bool             { return o.s < 0 }

// VertexType classifies a polygon vertex by the winding of its
// neighborhood.
type VertexType struct {
	s int
}

// VertexTypeOf determines the vertex type (convex, straight or reflex)
// from three consecutive contour points.
func VertexTypeOf[T float32 | float64 | int16 | uint16](prev, curr, next geom.Vec2[T]) VertexType {
	return VertexType{s: orientSign(prev, curr, next)}
}

func (t VertexType) IsConvex() bool           { return t.s > 0 }
func (t VertexType) IsConvexOrStraight() bool { return t.s >= 0 }
func (t VertexType) IsStraight() bool         { return t.s == 0 }
func (t VertexType) IsReflexOrStraight() bool { return t.s <= 0 }
func (t VertexType) IsReflex() bool           { return t.s < 0 }
