package math

import (
	stdmath "math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/ajroetker/go-jbm/jbm"
)

func TestPown(t *testing.T) {
	tests := []struct {
		x    float64
		n    int
		want float64
	}{
		{2, 0, 1},
		{nan, 0, 1},
		{2, 10, 1024},
		{-2, 3, -8},
		{-2, 4, 16},
		{2, -2, 0.25},
		{0.5, 5, 0.03125},
		{0, -1, posInf},
		{negZ, -1, negInf},
		{10, 400, posInf},
	}
	for _, tt := range tests {
		got := Pown(jbm.Set(tt.x), tt.n).Get(0)
		if got != tt.want {
			t.Errorf("Pown(%v, %d) = %v, want %v", tt.x, tt.n, got, tt.want)
		}
	}
	x := 1.0001
	if got, want := Pown(jbm.Set(x), 12345).Get(0), stdmath.Pow(x, 12345); !scalar.EqualWithinRel(got, want, 1e-11) {
		t.Errorf("Pown(%v, 12345) = %v, want %v", x, got, want)
	}
}

func TestPow(t *testing.T) {
	for _, e := range []float64{0.5, 1.0 / 3, 2.5, -1.75, 7.1} {
		check64(t, "Pow", func(x jbm.Float64x4) jbm.Float64x4 { return Pow(x, e) },
			func(x float64) float64 { return stdmath.Pow(x, e) }, 0.01, 50, 1e-300, 4e-14)
	}
	check32(t, "Pow", func(x jbm.Float32x8) jbm.Float32x8 { return Pow(x, float32(2.5)) },
		func(x float64) float64 { return stdmath.Pow(x, 2.5) }, 0.01, 20, 1e-37, 4e-6)

	// Integral exponents go through Pown and accept negative bases.
	if got := Pow(jbm.Set(-3.0), 3).Get(0); got != -27 {
		t.Errorf("Pow(-3, 3) = %v, want -27", got)
	}
	special64(t, "Pow(x, 0.5)", func(x jbm.Float64x4) jbm.Float64x4 { return Pow(x, 0.5) }, -4, nan)
	special64(t, "Pow(x, 0.5)", func(x jbm.Float64x4) jbm.Float64x4 { return Pow(x, 0.5) }, 0, 0)
	special64(t, "Pow(x, 0.5)", func(x jbm.Float64x4) jbm.Float64x4 { return Pow(x, 0.5) }, posInf, posInf)

	// Non-finite exponents follow math.Pow; a unit base stays 1.
	for _, e := range []float64{posInf, negInf, nan} {
		for _, x := range []float64{1, 0.5, 2} {
			got, want := Pow(jbm.Set(x), e).Get(0), stdmath.Pow(x, e)
			if got != want && !(stdmath.IsNaN(got) && stdmath.IsNaN(want)) {
				t.Errorf("Pow(%v, %v) = %v, want %v", x, e, got, want)
			}
		}
	}
	if got := Pow(jbm.Set[float32](1), float32(posInf)).Get(0); got != 1 {
		t.Errorf("Pow32(1, +Inf) = %v, want 1", got)
	}
}

func TestPowVec(t *testing.T) {
	x := jbm.Load([]float64{-2, -2, -2, 9})
	y := jbm.Load([]float64{3, 2, 0.5, 0.5})
	want := []float64{-8, 4, nan, 3}
	got := PowVec(x, y)
	for i, w := range want {
		g := got.Get(i)
		if stdmath.IsNaN(w) {
			if !stdmath.IsNaN(g) {
				t.Errorf("PowVec(%v, %v) = %v, want NaN", x.Get(i), y.Get(i), g)
			}
			continue
		}
		if !scalar.EqualWithinRel(g, w, 4e-15) {
			t.Errorf("PowVec(%v, %v) = %v, want %v", x.Get(i), y.Get(i), g, w)
		}
	}

	got = PowVec(jbm.Load([]float64{nan, 0, -5, 1}), jbm.Zero[float64]())
	for i := range 4 {
		if got.Get(i) != 1 {
			t.Errorf("PowVec(x, 0) lane %d = %v, want 1", i, got.Get(i))
		}
	}

	got = PowVec(jbm.Set(1.0), jbm.Load([]float64{posInf, negInf, nan, -3.5}))
	for i := range 4 {
		if got.Get(i) != 1 {
			t.Errorf("PowVec(1, y) lane %d = %v, want 1", i, got.Get(i))
		}
	}
}

func TestCbrt(t *testing.T) {
	check64(t, "Cbrt", Cbrt[float64], stdmath.Cbrt, -1e3, 1e3, 1e-300, 1e-15)
	check64(t, "Cbrt", Cbrt[float64], stdmath.Cbrt, 1e-200, 1e200, 1e-300, 1e-15)
	check32(t, "Cbrt", Cbrt[float32], stdmath.Cbrt, -1e3, 1e3, 1e-37, 5e-7)

	for _, c := range []struct{ x, want float64 }{{-27, -3}, {8, 2}, {-0.001, -0.1}} {
		if got := Cbrt(jbm.Set(c.x)).Get(0); !scalar.EqualWithinRel(got, c.want, 4e-16) {
			t.Errorf("Cbrt(%v) = %v, want %v", c.x, got, c.want)
		}
	}
	special64(t, "Cbrt", Cbrt[float64], 0, 0)
	special64(t, "Cbrt", Cbrt[float64], negZ, negZ)
	special64(t, "Cbrt", Cbrt[float64], posInf, posInf)
	special64(t, "Cbrt", Cbrt[float64], negInf, negInf)
	special64(t, "Cbrt", Cbrt[float64], nan, nan)
}
