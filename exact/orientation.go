package exact

import (
	"github.com/gogpu/tilecut/internal/assert"
	"github.com/gogpu/tilecut/internal/expansion"
)

// Orientation computes the orientation of three ordered points (a, b, c).
// The result is positive if the points make a left turn
// (counter-clockwise), zero if they are collinear and negative for a
// right turn. Only the sign carries meaning.
//
// The determinant
//
//	| b_x - a_x   c_x - a_x |
//	| b_y - a_y   c_y - a_y |
//
// is expanded as (b_x-a_x)*c_y - (b_x-a_x)*a_y - (b_y-a_y)*c_x +
// (b_y-a_y)*a_x and evaluated exactly with floating-point expansions.
// Exactness holds while no intermediate product underflows; with
// subnormal inputs the sign can be wrong.
func Orientation(aX, aY, bX, bY, cX, cY float64) float64 {
	return orientationFloat(aX, aY, bX, bY, cX, cY)
}

// OrientationF32 is the float32 flavor of Orientation.
func OrientationF32(aX, aY, bX, bY, cX, cY float32) float32 {
	return orientationFloat(aX, aY, bX, bY, cX, cY)
}

func orientationFloat[F expansion.Float](aX, aY, bX, bY, cX, cY F) F {
	var dx, dy [2]F
	dx[0], dx[1] = expansion.TwoDiff(bX, aX)
	dy[0], dy[1] = expansion.TwoDiff(bY, aY)

	var t1, t2, t3, t4 [4]F
	expansion.Scale(dx[:], cY, t1[:])
	expansion.Scale(dx[:], aY, t2[:])
	expansion.Scale(dy[:], cX, t3[:])
	expansion.Scale(dy[:], aX, t4[:])

	var t1t4, t2t3 [8]F
	expansion.FastSum(t1[:], t4[:], t1t4[:])
	expansion.FastSum(t2[:], t3[:], t2t3[:])

	var res [16]F
	expansion.FastDiff(t1t4[:], t2t3[:], res[:])
	return expansion.Approx(res[:])
}

// OrientationInt computes the orientation of three ordered points with
// 16-bit integer coordinates. The sign convention matches Orientation;
// the int64 arithmetic is exact by range analysis.
func OrientationInt[I ~int16 | ~uint16](aX, aY, bX, bY, cX, cY I) int64 {
	m00 := int64(bX) - int64(aX)
	m01 := int64(cX) - int64(aX)
	m10 := int64(bY) - int64(aY)
	m11 := int64(cY) - int64(aY)
	return m00*m11 - m01*m10
}

// exactFromInt converts an integer grid index to float64, asserting the
// conversion is exact.
func exactFromInt(v int64) float64 {
	f := float64(v)
	assert.Pre(int64(f) == v, "grid index exactly representable in float64")
	return f
}

// exactToInt converts an integral float64 to int64, asserting the value
// is integral and in range.
func exactToInt(v float64) int64 {
	i := int64(v)
	assert.Pre(float64(i) == v, "value integral and exactly representable in int64")
	return i
}
