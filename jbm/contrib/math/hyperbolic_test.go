package math

import (
	stdmath "math"
	"testing"

	"github.com/chewxy/math32"

	"github.com/ajroetker/go-jbm/jbm"
)

func TestHyperbolic64(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(jbm.Float64x4) jbm.Float64x4
		ref    func(float64) float64
		lo, hi float64
	}{
		{"Sinh", Sinh[float64], stdmath.Sinh, -30, 30},
		{"SinhLarge", Sinh[float64], stdmath.Sinh, 30, 709},
		{"Cosh", Cosh[float64], stdmath.Cosh, -30, 30},
		{"CoshLarge", Cosh[float64], stdmath.Cosh, -709, -30},
		{"Tanh", Tanh[float64], stdmath.Tanh, -25, 25},
		{"Asinh", Asinh[float64], stdmath.Asinh, -1e3, 1e3},
		{"AsinhLarge", Asinh[float64], stdmath.Asinh, 1e8, 1e300},
		{"Acosh", Acosh[float64], stdmath.Acosh, 1, 1e3},
		{"AcoshLarge", Acosh[float64], stdmath.Acosh, 1e9, 1e300},
		{"Atanh", Atanh[float64], stdmath.Atanh, -0.999, 0.999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check64(t, tt.name, tt.fn, tt.ref, tt.lo, tt.hi, 1e-300, 2e-14)
		})
	}
}

func TestHyperbolic32(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(jbm.Float32x8) jbm.Float32x8
		ref    func(float64) float64
		lo, hi float64
	}{
		{"Sinh", Sinh[float32], stdmath.Sinh, -88, 88},
		{"Cosh", Cosh[float32], stdmath.Cosh, -88, 88},
		{"Tanh", Tanh[float32], stdmath.Tanh, -12, 12},
		{"Asinh", Asinh[float32], stdmath.Asinh, -1e4, 1e4},
		{"Acosh", Acosh[float32], stdmath.Acosh, 1, 1e4},
		{"Atanh", Atanh[float32], stdmath.Atanh, -0.99, 0.99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check32(t, tt.name, tt.fn, tt.ref, tt.lo, tt.hi, 1e-37, 4e-6)
		})
	}
}

func TestTanhMath32(t *testing.T) {
	xs := []float32{-20, -3, -0.5, -1e-3, 0, 0.25, 2, 9.5}
	got := Tanh(jbm.Load(xs))
	for j, x := range xs {
		if want := math32.Tanh(x); math32.Abs(got.Get(j)-want) > 1e-6 {
			t.Errorf("Tanh(%v) = %v, math32.Tanh = %v", x, got.Get(j), want)
		}
	}
}

func TestHyperbolicOdd(t *testing.T) {
	xs := append(sweep(0, 0.999, 1001), 0.9999, 0.99999999, 1e-20)
	neg := make([]float64, len(xs))
	for i, x := range xs {
		neg[i] = -x
	}
	tests := []struct {
		name string
		fn   func(jbm.Float64x4) jbm.Float64x4
	}{
		{"Sinh", Sinh[float64]},
		{"Tanh", Tanh[float64]},
		{"Asinh", Asinh[float64]},
		{"Atanh", Atanh[float64]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ng := eval64(tt.fn, xs), eval64(tt.fn, neg)
			for i, x := range xs {
				if ng[i] != -pos[i] {
					t.Errorf("%s(%v) = %v, %s(%v) = %v", tt.name, -x, ng[i], tt.name, x, pos[i])
				}
			}
		})
	}
	if got, want := Atanh(jbm.Set(-0.9999)).Get(0), stdmath.Atanh(-0.9999); stdmath.Abs(got-want) > 2e-15*stdmath.Abs(want) {
		t.Errorf("Atanh(-0.9999) = %v, want %v", got, want)
	}
}

func TestHyperbolicSpecial(t *testing.T) {
	special64(t, "Sinh", Sinh[float64], 0, 0)
	special64(t, "Sinh", Sinh[float64], negZ, negZ)
	special64(t, "Sinh", Sinh[float64], posInf, posInf)
	special64(t, "Sinh", Sinh[float64], negInf, negInf)
	special64(t, "Sinh", Sinh[float64], 720, posInf)
	special64(t, "Sinh", Sinh[float64], nan, nan)

	special64(t, "Cosh", Cosh[float64], 0, 1)
	special64(t, "Cosh", Cosh[float64], negInf, posInf)
	special64(t, "Cosh", Cosh[float64], nan, nan)

	special64(t, "Tanh", Tanh[float64], 0, 0)
	special64(t, "Tanh", Tanh[float64], negZ, negZ)
	special64(t, "Tanh", Tanh[float64], 20, 1)
	special64(t, "Tanh", Tanh[float64], -1e300, -1)
	special64(t, "Tanh", Tanh[float64], posInf, 1)
	special64(t, "Tanh", Tanh[float64], nan, nan)

	special64(t, "Asinh", Asinh[float64], negZ, negZ)
	special64(t, "Asinh", Asinh[float64], negInf, negInf)
	special64(t, "Acosh", Acosh[float64], 1, 0)
	special64(t, "Acosh", Acosh[float64], 0.5, nan)
	special64(t, "Acosh", Acosh[float64], -1e10, nan)
	special64(t, "Acosh", Acosh[float64], posInf, posInf)
	special64(t, "Atanh", Atanh[float64], 1, posInf)
	special64(t, "Atanh", Atanh[float64], -1, negInf)
	special64(t, "Atanh", Atanh[float64], 2, nan)
	special64(t, "Atanh", Atanh[float64], negZ, negZ)

	if got := Tanh(jbm.Set[float32](10)).Get(0); got != 1 {
		t.Errorf("Tanh32(10) = %v, want 1", got)
	}
}
