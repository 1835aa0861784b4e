package tilecut

import (
	"slices"
	"testing"

	"github.com/gogpu/tilecut/geom"
)

func TestContourOrientation(t *testing.T) {
	tests := []struct {
		name    string
		contour []geom.Vec2f64
		want    PolygonOrientation
	}{
		{
			"ccw triangle",
			[]geom.Vec2f64{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2}, {X: 0, Y: 0}},
			CounterClockwise,
		},
		{
			"cw triangle",
			[]geom.Vec2f64{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 0}},
			Clockwise,
		},
		{
			"ccw square",
			[]geom.Vec2f64{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}},
			CounterClockwise,
		},
		{
			"cw square",
			[]geom.Vec2f64{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}},
			Clockwise,
		},
		{
			"ccw with collinear run through max vertex side",
			[]geom.Vec2f64{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}},
			CounterClockwise,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContourOrientation(tt.contour); got != tt.want {
				t.Errorf("ContourOrientation = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestContourOrientationReversal checks that reversing a contour flips
// its orientation.
func TestContourOrientationReversal(t *testing.T) {
	contours := [][]geom.Vec2f64{
		{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2}, {X: 0, Y: 0}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}},
		{{X: -3, Y: -1}, {X: 4, Y: -2}, {X: 5, Y: 3}, {X: 0, Y: 5}, {X: -3, Y: -1}},
	}
	for i, contour := range contours {
		reversed := append([]geom.Vec2f64(nil), contour...)
		slices.Reverse(reversed)
		got := ContourOrientation(contour)
		gotReversed := ContourOrientation(reversed)
		if gotReversed != got.Opposite() {
			t.Errorf("contour %d: reversal does not flip orientation (%v, %v)", i, got, gotReversed)
		}
	}
}

func TestPolygonOrientationOf(t *testing.T) {
	// An outer CCW square with an inner CW hole; the hole's orientation
	// must not matter.
	segments := []geom.Segment2f64{
		// Outer, counter-clockwise.
		{A: geom.Vec2f64{X: 0, Y: 0}, B: geom.Vec2f64{X: 4, Y: 0}},
		{A: geom.Vec2f64{X: 4, Y: 0}, B: geom.Vec2f64{X: 4, Y: 4}},
		{A: geom.Vec2f64{X: 4, Y: 4}, B: geom.Vec2f64{X: 0, Y: 4}},
		{A: geom.Vec2f64{X: 0, Y: 4}, B: geom.Vec2f64{X: 0, Y: 0}},
		// Hole, clockwise.
		{A: geom.Vec2f64{X: 1, Y: 1}, B: geom.Vec2f64{X: 1, Y: 3}},
		{A: geom.Vec2f64{X: 1, Y: 3}, B: geom.Vec2f64{X: 3, Y: 3}},
		{A: geom.Vec2f64{X: 3, Y: 3}, B: geom.Vec2f64{X: 3, Y: 1}},
		{A: geom.Vec2f64{X: 3, Y: 1}, B: geom.Vec2f64{X: 1, Y: 1}},
	}
	if got := PolygonOrientationOf(segments); got != CounterClockwise {
		t.Errorf("PolygonOrientationOf = %v, want CounterClockwise", got)
	}

	for i := range segments {
		segments[i] = segments[i].Flipped()
	}
	if got := PolygonOrientationOf(segments); got != Clockwise {
		t.Errorf("flipped PolygonOrientationOf = %v, want Clockwise", got)
	}
}

func TestPolygonOrientationIntCoordinates(t *testing.T) {
	segments := []geom.Segment2u16{
		{A: geom.V2[uint16](50, 50), B: geom.V2[uint16](51, 50)},
		{A: geom.V2[uint16](51, 50), B: geom.V2[uint16](51, 51)},
		{A: geom.V2[uint16](51, 51), B: geom.V2[uint16](50, 51)},
		{A: geom.V2[uint16](50, 51), B: geom.V2[uint16](50, 50)},
	}
	if got := PolygonOrientationOf(segments); got != CounterClockwise {
		t.Errorf("u16 square = %v, want CounterClockwise", got)
	}
}

func TestClassifiers(t *testing.T) {
	a := geom.Vec2f64{X: 0, Y: 0}
	b := geom.Vec2f64{X: 1, Y: 0}
	left := geom.Vec2f64{X: 0, Y: 1}
	right := geom.Vec2f64{X: 0, Y: -1}
	on := geom.Vec2f64{X: 2, Y: 0}

	if l := PointLocationOf(a, b, left); !l.Left() || l.Line() || l.Right() || !l.LeftOrLine() {
		t.Error("left point misclassified")
	}
	if l := PointLocationOf(a, b, right); !l.Right() || !l.RightOrLine() || l.Left() {
		t.Error("right point misclassified")
	}
	if l := PointLocationOf(a, b, on); !l.Line() || !l.LeftOrLine() || !l.RightOrLine() {
		t.Error("collinear point misclassified")
	}

	if o := PointOrderOf(a, b, left); !o.IsCCW() || o.IsCW() || o.IsCollinear() {
		t.Error("ccw order misclassified")
	}
	if o := PointOrderOf(a, b, right); !o.IsCW() || !o.IsCWOrCollinear() {
		t.Error("cw order misclassified")
	}

	if v := VertexTypeOf(a, b, left); !v.IsConvex() || v.IsReflex() {
		t.Error("convex vertex misclassified")
	}
	if v := VertexTypeOf(a, b, on); !v.IsStraight() || !v.IsConvexOrStraight() || !v.IsReflexOrStraight() {
		t.Error("straight vertex misclassified")
	}
}

// TestClassifierEqualitySignOnly checks that classifier equality depends
// only on the sign of the underlying predicate.
func TestClassifierEqualitySignOnly(t *testing.T) {
	small := PointOrderOf(
		geom.Vec2f64{X: 0, Y: 0}, geom.Vec2f64{X: 1, Y: 0}, geom.Vec2f64{X: 0, Y: 1e-9})
	big := PointOrderOf(
		geom.Vec2f64{X: 0, Y: 0}, geom.Vec2f64{X: 1, Y: 0}, geom.Vec2f64{X: 0, Y: 1e9})
	if small != big {
		t.Error("classifiers with equal sign compare unequal")
	}
	cw := PointOrderOf(
		geom.Vec2f64{X: 0, Y: 0}, geom.Vec2f64{X: 1, Y: 0}, geom.Vec2f64{X: 0, Y: -1})
	if small == cw {
		t.Error("classifiers with different sign compare equal")
	}
}
