// Package expansion implements exact floating-point arithmetic on
// non-overlapping expansions: sequences of floats whose sum is the exact
// value represented.
//
// Bibliography:
//   - J. R. Shewchuk, "Adaptive Precision Floating-Point Arithmetic and
//     Fast Robust Geometric Predicates", 1996.
//   - T. J. Dekker, "A Floating-Point Technique for Extending the
//     Available Precision", 1971.
//   - D. E. Knuth, "The Art of Computer Programming: Seminumerical
//     Algorithms", 2nd ed., vol. 2, 1981.
//
// All functions operate on slices whose lengths are fixed by the caller
// (sizes 2..28 in this module); callers back them with stack arrays.
// Components are ordered by increasing magnitude; the roundoff precedes
// the approximation in every two-component result.
package expansion

import (
	"unsafe"

	"github.com/gogpu/tilecut/internal/assert"
)

// Float is the constraint for expansion component types.
type Float interface {
	~float32 | ~float64
}

func abs[F Float](v F) F {
	if v < 0 {
		return -v
	}
	return v
}

// TwoSum computes the exact sum of a and b as a non-overlapping
// two-component expansion (err, approx). [Shewchuk] [Knuth]
func TwoSum[F Float](a, b F) (err, approx F) {
	approx = a + b
	bVirtual := approx - a
	aVirtual := approx - bVirtual
	bRoundoff := b - bVirtual
	aRoundoff := a - aVirtual
	return aRoundoff + bRoundoff, approx
}

// TwoDiff computes the exact difference a - b as a non-overlapping
// two-component expansion (err, approx). [Shewchuk] [Knuth]
func TwoDiff[F Float](a, b F) (err, approx F) {
	approx = a - b
	bVirtual := a - approx
	aVirtual := approx + bVirtual
	bRoundoff := bVirtual - b
	aRoundoff := a - aVirtual
	return aRoundoff + bRoundoff, approx
}

// FastTwoSum computes the exact sum of pre-ordered a and b.
// Requires |a| >= |b| or one of the operands to be zero. [Dekker]
func FastTwoSum[F Float](a, b F) (err, approx F) {
	assert.Pre(abs(a) >= abs(b) || a == 0 || b == 0, "|a| >= |b| or a zero operand")
	approx = a + b
	bVirtual := approx - a
	return b - bVirtual, approx
}

// FastTwoDiff computes the exact difference of pre-ordered a and b.
// Requires |a| >= |b| or one of the operands to be zero. [Dekker]
func FastTwoDiff[F Float](a, b F) (err, approx F) {
	assert.Pre(abs(a) >= abs(b) || a == 0 || b == 0, "|a| >= |b| or a zero operand")
	approx = a - b
	bVirtual := a - approx
	return bVirtual - b, approx
}

// digits is the significand width of F in bits.
func digits[F Float]() int {
	var probe F
	if unsafe.Sizeof(probe) == 4 {
		return 24
	}
	return 53
}

// split breaks value into hi + lo where hi carries the upper P-S bits of
// the significand and lo the remaining S-1 bits, with |hi| > |lo|.
// S is the Dekker split point ceil((P+1)/2). [Shewchuk] [Dekker]
func split[F Float](value F) (hi, lo F) {
	s := uint((digits[F]() + 2) / 2)
	c := F((int64(1)<<s)+1) * value
	big := c - value
	hi = c - big
	return hi, value - hi
}

// TwoProduct computes the exact product of lhs and rhs as a
// non-overlapping two-component expansion (err, approx). [Shewchuk]
func TwoProduct[F Float](lhs, rhs F) (err, approx F) {
	approx = lhs * rhs
	aHi, aLo := split(lhs)
	bHi, bLo := split(rhs)
	err = approx - aHi*bHi
	err -= aLo * bHi
	err -= aHi * bLo
	err = aLo*bLo - err
	return err, approx
}

// Grow adds a single number to an expansion: result = e + n.
// len(result) must be len(e)+1. Preserves the non-overlapping property.
// If e and result share storage, result must begin at or before e.
// [Shewchuk]
func Grow[F Float](e []F, n F, result []F) {
	assert.Pre(len(result) == len(e)+1, "len(result) == len(e)+1")
	err, approx := F(0), n
	for i := range e {
		err, approx = TwoSum(approx, e[i])
		result[i] = err
	}
	result[len(e)] = approx
}

// sumImpl computes lhs + sign*rhs by repeated growth.
func sumImpl[F Float](lhs, rhs, result []F, sign F) {
	assert.Pre(len(result) == len(lhs)+len(rhs), "len(result) == len(lhs)+len(rhs)")
	copy(result, lhs)
	for i := range rhs {
		Grow(result[i:i+len(lhs)], sign*rhs[i], result[i:i+len(lhs)+1])
	}
}

// Sum computes the exact sum of two expansions into result.
// len(result) must be len(lhs)+len(rhs). Preserves the non-overlapping
// property; O(len(lhs)*len(rhs)). [Shewchuk]
func Sum[F Float](lhs, rhs, result []F) {
	sumImpl(lhs, rhs, result, 1)
}

// Diff computes the exact difference lhs - rhs into result.
// Same contract as Sum.
func Diff[F Float](lhs, rhs, result []F) {
	sumImpl(lhs, rhs, result, -1)
}

// increasing reports |a| < |b| without computing absolute values.
func increasing[F Float](a, b F) bool {
	return (a < b) == (-a < b)
}

// fastSumImpl computes lhs + sign*rhs by merging.
func fastSumImpl[F Float](lhs, rhs, result []F, sign F) {
	assert.Pre(len(result) == len(lhs)+len(rhs), "len(result) == len(lhs)+len(rhs)")
	assert.Pre(len(lhs) >= 1 && len(rhs) >= 1, "non-empty inputs")

	li, ri := 0, 0
	next := func() F {
		if li < len(lhs) && (ri == len(rhs) || increasing(lhs[li], sign*rhs[ri])) {
			v := lhs[li]
			li++
			return v
		}
		v := sign * rhs[ri]
		ri++
		return v
	}

	merged0 := next()
	merged1 := next()
	err, approx := FastTwoSum(merged1, merged0)
	out := 0
	result[out] = err
	out++
	for li < len(lhs) || ri < len(rhs) {
		err, approx = TwoSum(approx, next())
		result[out] = err
		out++
	}
	result[out] = approx
}

// FastSum computes the exact sum of two strongly non-overlapping
// expansions into result. len(result) must be len(lhs)+len(rhs);
// O(len(lhs)+len(rhs)). Requires round-to-even tiebreaking. [Shewchuk]
func FastSum[F Float](lhs, rhs, result []F) {
	fastSumImpl(lhs, rhs, result, 1)
}

// FastDiff computes the exact difference of two strongly non-overlapping
// expansions into result. Same contract as FastSum.
func FastDiff[F Float](lhs, rhs, result []F) {
	fastSumImpl(lhs, rhs, result, -1)
}

// Scale computes the exact product of an expansion and a number.
// len(result) must be 2*len(e). Preserves the non-overlapping property.
// [Shewchuk]
func Scale[F Float](e []F, n F, result []F) {
	assert.Pre(len(result) == 2*len(e), "len(result) == 2*len(e)")
	assert.Pre(len(e) >= 1, "non-empty input")

	out := 0
	prodErr, prodApprox := TwoProduct(e[0], n)
	result[out] = prodErr
	out++
	for i := 1; i < len(e); i++ {
		tErr, tApprox := TwoProduct(e[i], n)
		prodErr, prodApprox = TwoSum(prodApprox, tErr)
		result[out] = prodErr
		out++
		prodErr, prodApprox = FastTwoSum(tApprox, prodApprox)
		result[out] = prodErr
		out++
	}
	result[out] = prodApprox
}

// Approx returns the leading non-zero component of the expansion.
// Its sign equals the sign of the exact represented value.
func Approx[F Float](e []F) F {
	for i := len(e) - 1; i >= 0; i-- {
		if e[i] != 0 {
			return e[i]
		}
	}
	return 0
}
