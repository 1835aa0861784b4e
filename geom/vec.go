// Package geom provides the small fixed-width value types shared by the
// tilecut pipeline: 2D vectors and segments over sized scalars, with
// lexicographic ordering and exact (checked) coordinate casts.
package geom

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/tilecut/internal/assert"
)

// Floats is a constraint for the IEEE-754 coordinate types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer coordinate types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer coordinate types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Scalars is a constraint for all permitted coordinate types.
type Scalars interface {
	Floats | SignedInts | UnsignedInts
}

// Vec2 is a 2D point or displacement with coordinates of type T.
// It is a plain value type: comparable, totally ordered by (X, Y).
type Vec2[T Scalars] struct {
	X, Y T
}

// Common instantiations used across the pipeline.
type (
	Vec2f32 = Vec2[float32]
	Vec2f64 = Vec2[float64]
	Vec2s16 = Vec2[int16]
	Vec2s32 = Vec2[int32]
	Vec2s64 = Vec2[int64]
	Vec2u16 = Vec2[uint16]
)

// V2 is a convenience constructor.
func V2[T Scalars](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Less reports whether v precedes w in lexicographic (X, Y) order.
func (v Vec2[T]) Less(w Vec2[T]) bool {
	if v.X != w.X {
		return v.X < w.X
	}
	return v.Y < w.Y
}

// Compare returns -1, 0 or +1 ordering v against w lexicographically.
func (v Vec2[T]) Compare(w Vec2[T]) int {
	switch {
	case v.X < w.X:
		return -1
	case v.X > w.X:
		return 1
	case v.Y < w.Y:
		return -1
	case v.Y > w.Y:
		return 1
	}
	return 0
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// MaxVec2 returns the lexicographically larger of v and w.
func MaxVec2[T Scalars](v, w Vec2[T]) Vec2[T] {
	if v.Less(w) {
		return w
	}
	return v
}

// MinVec2 returns the lexicographically smaller of v and w.
func MinVec2[T Scalars](v, w Vec2[T]) Vec2[T] {
	if w.Less(v) {
		return w
	}
	return v
}

// CastVec2 converts coordinates to type D, asserting the values survive
// the round trip. Lossy conversions are contract violations.
func CastVec2[D, S Scalars](v Vec2[S]) Vec2[D] {
	return Vec2[D]{
		X: exactCast[D](v.X),
		Y: exactCast[D](v.Y),
	}
}

func exactCast[D, S Scalars](value S) D {
	converted := D(value)
	assert.Pre(S(converted) == value && (converted < 0) == (value < 0),
		"coordinate representable in target type")
	return converted
}

// AppendVec2u16 appends v in the boundary wire format: two little-endian
// uint16 values.
func AppendVec2u16(dst []byte, v Vec2u16) []byte {
	dst = binary.LittleEndian.AppendUint16(dst, v.X)
	return binary.LittleEndian.AppendUint16(dst, v.Y)
}
