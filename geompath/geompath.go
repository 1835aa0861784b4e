// Package geompath converts seehuhn.de/go/geom paths into the contour
// form consumed by the tilecut pipeline.
//
// Curves are flattened by recursive subdivision; every subpath becomes a
// closed contour with the first vertex repeated last.
package geompath

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/gogpu/tilecut/geom"
)

// Contours flattens every subpath of p into a closed contour.
// tol is the maximum allowed distance between a curve and its polyline
// approximation, in the same units as the path coordinates.
func Contours(p *path.Data, tol float64) [][]geom.Vec2f64 {
	var result [][]geom.Vec2f64
	var contour []geom.Vec2f64

	var current, subpathStart geom.Vec2f64

	flush := func() {
		if len(contour) < 2 {
			contour = nil
			return
		}
		// Close the contour if the path did not.
		if contour[0] != contour[len(contour)-1] {
			contour = append(contour, contour[0])
		}
		result = append(result, contour)
		contour = nil
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			current = fromVec(p.Coords[coordIdx])
			subpathStart = current
			contour = append(contour, current)
			coordIdx++

		case path.CmdLineTo:
			current = fromVec(p.Coords[coordIdx])
			contour = append(contour, current)
			coordIdx++

		case path.CmdQuadTo:
			c := fromVec(p.Coords[coordIdx])
			end := fromVec(p.Coords[coordIdx+1])
			contour = flattenQuad(contour, current, c, end, tol)
			current = end
			coordIdx += 2

		case path.CmdCubeTo:
			c1 := fromVec(p.Coords[coordIdx])
			c2 := fromVec(p.Coords[coordIdx+1])
			end := fromVec(p.Coords[coordIdx+2])
			contour = flattenCubic(contour, current, c1, c2, end, tol)
			current = end
			coordIdx += 3

		case path.CmdClose:
			if current != subpathStart {
				contour = append(contour, subpathStart)
			}
			flush()
			current = subpathStart
		}
	}
	flush()
	return result
}

func fromVec(v vec.Vec2) geom.Vec2f64 {
	return geom.Vec2f64{X: v.X, Y: v.Y}
}

// flattenQuad appends a polyline approximation of the quadratic Bezier
// (p0, c, p1), excluding p0 and including p1.
func flattenQuad(dst []geom.Vec2f64, p0, c, p1 geom.Vec2f64, tol float64) []geom.Vec2f64 {
	if quadFlat(p0, c, p1, tol) {
		return append(dst, p1)
	}
	l0, lc, m, rc, r1 := splitQuad(p0, c, p1)
	dst = flattenQuad(dst, l0, lc, m, tol)
	return flattenQuad(dst, m, rc, r1, tol)
}

func quadFlat(p0, c, p1 geom.Vec2f64, tol float64) bool {
	// Distance from the control point to the chord bounds the error.
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	ex := c.X - (p0.X+p1.X)/2
	ey := c.Y - (p0.Y+p1.Y)/2
	return ex*ex+ey*ey <= tol*tol || dx == 0 && dy == 0 && ex == 0 && ey == 0
}

func splitQuad(p0, c, p1 geom.Vec2f64) (l0, lc, m, rc, r1 geom.Vec2f64) {
	lc = midpoint(p0, c)
	rc = midpoint(c, p1)
	m = midpoint(lc, rc)
	return p0, lc, m, rc, p1
}

// flattenCubic appends a polyline approximation of the cubic Bezier
// (p0, c1, c2, p1), excluding p0 and including p1.
func flattenCubic(dst []geom.Vec2f64, p0, c1, c2, p1 geom.Vec2f64, tol float64) []geom.Vec2f64 {
	if cubicFlat(p0, c1, c2, p1, tol) {
		return append(dst, p1)
	}
	l1 := midpoint(p0, c1)
	mid := midpoint(c1, c2)
	r2 := midpoint(c2, p1)
	l2 := midpoint(l1, mid)
	r1 := midpoint(mid, r2)
	m := midpoint(l2, r1)
	dst = flattenCubic(dst, p0, l1, l2, m, tol)
	return flattenCubic(dst, m, r1, r2, p1, tol)
}

func cubicFlat(p0, c1, c2, p1 geom.Vec2f64, tol float64) bool {
	e1x := c1.X - (2*p0.X+p1.X)/3
	e1y := c1.Y - (2*p0.Y+p1.Y)/3
	e2x := c2.X - (p0.X+2*p1.X)/3
	e2y := c2.Y - (p0.Y+2*p1.Y)/3
	limit := tol * tol * 4 / 9
	return e1x*e1x+e1y*e1y <= limit && e2x*e2x+e2y*e2y <= limit
}

func midpoint(a, b geom.Vec2f64) geom.Vec2f64 {
	return geom.Vec2f64{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
