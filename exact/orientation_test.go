package exact

import (
	"math"
	"math/big"
	"math/rand"
	"testing"
)

func next(v float64) float64 { return math.Nextafter(v, math.Inf(1)) }
func prev(v float64) float64 { return math.Nextafter(v, math.Inf(-1)) }

func TestOrientationSimpleCollinear(t *testing.T) {
	if got := Orientation(1, 2, 6, 10, 11, 18); got != 0 {
		t.Errorf("f64 collinear: got %v, want 0", got)
	}
	if got := OrientationF32(1, 2, 6, 10, 11, 18); got != 0 {
		t.Errorf("f32 collinear: got %v, want 0", got)
	}
	if got := OrientationInt[uint16](1, 2, 6, 10, 11, 18); got != 0 {
		t.Errorf("u16 collinear: got %v, want 0", got)
	}
	if got := OrientationInt[int16](1, 2, 6, 10, 11, 18); got != 0 {
		t.Errorf("s16 collinear: got %v, want 0", got)
	}
}

func TestOrientationSimpleNegative(t *testing.T) {
	if got := Orientation(1, -98, 1, -90, -100, -10); got <= 0 {
		t.Errorf("f64: got %v, want > 0", got)
	}
	if got := OrientationF32(1, -98, 1, -90, -100, -10); got <= 0 {
		t.Errorf("f32: got %v, want > 0", got)
	}
	if got := OrientationInt[int16](1, -98, 1, -90, -100, -10); got <= 0 {
		t.Errorf("s16: got %v, want > 0", got)
	}
}

func TestOrientationSimpleTurns(t *testing.T) {
	if got := Orientation(1, 2, 6, 10, 12, 18); got >= 0 {
		t.Errorf("right turn: got %v, want < 0", got)
	}
	if got := Orientation(1, 2, 6, 10, 10, 18); got <= 0 {
		t.Errorf("left turn: got %v, want > 0", got)
	}
	if got := OrientationInt[uint16](1, 2, 6, 10, 12, 18); got >= 0 {
		t.Errorf("u16 right turn: got %v, want < 0", got)
	}
	if got := OrientationInt[uint16](1, 2, 6, 10, 10, 18); got <= 0 {
		t.Errorf("u16 left turn: got %v, want > 0", got)
	}
}

// TestOrientationHardCollinear exercises points whose orientation is
// exactly zero although every naive float evaluation is dominated by
// rounding error.
func TestOrientationHardCollinear(t *testing.T) {
	if got := Orientation(next(1+1e6), 2+1e6, next(6+1e6), 10+1e6, next(11+1e6), 18+1e6); got != 0 {
		t.Errorf("hard collinear: got %v, want 0", got)
	}
}

func TestOrientationSlightTurns(t *testing.T) {
	if got := Orientation(1+1e6, 2+1e6, 6+1e6, 10+1e6, next(11+1e6), 18+1e6); got >= 0 {
		t.Errorf("slight right turn: got %v, want < 0", got)
	}
	if got := Orientation(1+1e6, 2+1e6, 6+1e6, 10+1e6, prev(11+1e6), 18+1e6); got <= 0 {
		t.Errorf("slight left turn: got %v, want > 0", got)
	}
}

// orientationOracle evaluates the orientation determinant exactly.
func orientationOracle(aX, aY, bX, bY, cX, cY float64) int {
	rat := func(v float64) *big.Rat { return new(big.Rat).SetFloat64(v) }
	lhs := new(big.Rat).Mul(
		new(big.Rat).Sub(rat(bX), rat(aX)),
		new(big.Rat).Sub(rat(cY), rat(aY)))
	rhs := new(big.Rat).Mul(
		new(big.Rat).Sub(rat(bY), rat(aY)),
		new(big.Rat).Sub(rat(cX), rat(aX)))
	return new(big.Rat).Sub(lhs, rhs).Sign()
}

func TestOrientationAgreesWithOracle(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	base := []float64{0, 1, 1e6, -1e6, 0.1, 1.1}
	for i := 0; i < 2000; i++ {
		pick := func() float64 {
			v := base[r.Intn(len(base))]
			// Shift by a few ULPs to land near-degenerate cases. Zero is
			// not shifted: its neighbours are subnormal, outside the
			// range where Orientation is exact.
			k := r.Intn(3)
			if v == 0 {
				k = 0
			}
			for ; k > 0; k-- {
				v = next(v)
			}
			return v
		}
		aX, aY := pick(), pick()
		bX, bY := pick(), pick()
		cX, cY := pick(), pick()

		got := Orientation(aX, aY, bX, bY, cX, cY)
		want := orientationOracle(aX, aY, bX, bY, cX, cY)
		gotSign := 0
		if got > 0 {
			gotSign = 1
		} else if got < 0 {
			gotSign = -1
		}
		if gotSign != want {
			t.Fatalf("Orientation(%v, %v, %v, %v, %v, %v) sign %d, oracle %d",
				aX, aY, bX, bY, cX, cY, gotSign, want)
		}
	}
}
