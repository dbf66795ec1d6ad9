package math

import (
	stdmath "math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/ajroetker/go-jbm/jbm"
)

// sweep returns n evenly spaced points in [lo, hi].
func sweep(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return xs
}

// log2Ref is log2 without the cancellation math.Log2 shows just above 1,
// where it adds the exponent to Log(frac)/Ln2.
func log2Ref(x float64) float64 {
	return stdmath.Log(x) / stdmath.Ln2
}

// eval64 applies fn to xs four lanes at a time.
func eval64(fn func(jbm.Float64x4) jbm.Float64x4, xs []float64) []float64 {
	out := make([]float64, len(xs))
	lanes := jbm.MaxLanes[float64]()
	for i := 0; i < len(xs); i += lanes {
		fn(jbm.Load(xs[i:])).Store(out[i:])
	}
	return out
}

// eval32 applies fn to xs, rounded to float32, eight lanes at a time.
func eval32(fn func(jbm.Float32x8) jbm.Float32x8, xs []float64) ([]float32, []float32) {
	in := make([]float32, len(xs))
	for i, x := range xs {
		in[i] = float32(x)
	}
	out := make([]float32, len(xs))
	lanes := jbm.MaxLanes[float32]()
	for i := 0; i < len(in); i += lanes {
		fn(jbm.Load(in[i:])).Store(out[i:])
	}
	return in, out
}

// check64 compares fn against ref over [lo, hi].
func check64(t *testing.T, name string, fn func(jbm.Float64x4) jbm.Float64x4, ref func(float64) float64, lo, hi float64, absTol, relTol float64) {
	t.Helper()
	xs := sweep(lo, hi, 1001)
	got := eval64(fn, xs)
	fails := 0
	for i, x := range xs {
		want := ref(x)
		if !scalar.EqualWithinAbsOrRel(got[i], want, absTol, relTol) {
			if fails < 5 {
				t.Errorf("%s(%v) = %v, want %v (rel err %.3g)", name, x, got[i], want, stdmath.Abs(got[i]-want)/stdmath.Abs(want))
			}
			fails++
		}
	}
	if fails > 5 {
		t.Errorf("%s: %d more mismatches", name, fails-5)
	}
}

// check32 compares the float32 instantiation against the float64 reference
// evaluated at the float32-rounded inputs.
func check32(t *testing.T, name string, fn func(jbm.Float32x8) jbm.Float32x8, ref func(float64) float64, lo, hi float64, absTol, relTol float64) {
	t.Helper()
	in, got := eval32(fn, sweep(lo, hi, 1001))
	fails := 0
	for i, x := range in {
		want := ref(float64(x))
		if !scalar.EqualWithinAbsOrRel(float64(got[i]), want, absTol, relTol) {
			if fails < 5 {
				t.Errorf("%s(%v) = %v, want %v", name, x, got[i], want)
			}
			fails++
		}
	}
	if fails > 5 {
		t.Errorf("%s: %d more mismatches", name, fails-5)
	}
}

// special64 checks fn on a single value, treating NaN as equal to NaN and
// comparing zeros by sign.
func special64(t *testing.T, name string, fn func(jbm.Float64x4) jbm.Float64x4, x, want float64) {
	t.Helper()
	got := fn(jbm.Set(x)).Get(0)
	switch {
	case stdmath.IsNaN(want):
		if !stdmath.IsNaN(got) {
			t.Errorf("%s(%v) = %v, want NaN", name, x, got)
		}
	case want == 0:
		if got != 0 || stdmath.Signbit(got) != stdmath.Signbit(want) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	default:
		if got != want {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}

var (
	nan    = stdmath.NaN()
	posInf = stdmath.Inf(1)
	negInf = stdmath.Inf(-1)
	negZ   = stdmath.Copysign(0, -1)
)
