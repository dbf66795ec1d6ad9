package math

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-jbm/jbm"
)

func TestWellConditioned64(t *testing.T) {
	ln2h := stdmath.Ln2 / 2
	tests := []struct {
		name   string
		fn     func(x jbm.Float64x4) jbm.Float64x4
		ref    func(float64) float64
		lo, hi float64
		tol    float64
	}{
		{"Exp2wc", Exp2wc[float64], stdmath.Exp2, 0, 1, 4e-15},
		{"Expm1wc", Expm1wc[float64], stdmath.Expm1, -ln2h, ln2h, 4e-15},
		{"Log2wc", Log2wc[float64], log2Ref, 0.5, 2, 4e-15},
		{"Sinwc", Sinwc[float64], stdmath.Sin, -stdmath.Pi / 4, stdmath.Pi / 4, 4e-15},
		{"Coswc", Coswc[float64], stdmath.Cos, -stdmath.Pi / 4, stdmath.Pi / 4, 4e-15},
		{"Atanwc0", Atanwc0[float64], stdmath.Atan, 0, 0.5, 4e-15},
		{"Atanwc1", Atanwc1[float64], stdmath.Atan, 0.5, 1.5, 4e-15},
		{"Erfwc", Erfwc[float64], stdmath.Erf, -1, 1, 4e-15},
		{"Erfcwc", Erfcwc[float64], stdmath.Erfc, 1, 26, 1e-14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check64(t, tt.name, tt.fn, tt.ref, tt.lo, tt.hi, 1e-300, tt.tol)
		})
	}
}

func TestWellConditioned32(t *testing.T) {
	ln2h := stdmath.Ln2 / 2
	tests := []struct {
		name   string
		fn     func(x jbm.Float32x8) jbm.Float32x8
		ref    func(float64) float64
		lo, hi float64
		tol    float64
	}{
		{"Exp2wc", Exp2wc[float32], stdmath.Exp2, 0, 1, 1e-6},
		{"Expm1wc", Expm1wc[float32], stdmath.Expm1, -ln2h, ln2h, 1e-6},
		{"Log2wc", Log2wc[float32], log2Ref, 0.5, 2, 1e-6},
		{"Sinwc", Sinwc[float32], stdmath.Sin, -stdmath.Pi / 4, stdmath.Pi / 4, 1e-6},
		{"Coswc", Coswc[float32], stdmath.Cos, -stdmath.Pi / 4, stdmath.Pi / 4, 1e-6},
		{"Atanwc0", Atanwc0[float32], stdmath.Atan, 0, 0.5, 1e-6},
		{"Atanwc1", Atanwc1[float32], stdmath.Atan, 0.5, 1.5, 1e-6},
		{"Erfwc", Erfwc[float32], stdmath.Erf, -1, 1, 1e-6},
		{"Erfcwc", Erfcwc[float32], stdmath.Erfc, 1, 9, 2e-6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check32(t, tt.name, tt.fn, tt.ref, tt.lo, tt.hi, 1e-37, tt.tol)
		})
	}
}

func TestErfcwcCutoff(t *testing.T) {
	for _, x := range []float64{26.7, 30, 1e10, posInf} {
		special64(t, "Erfcwc", Erfcwc[float64], x, 0)
	}
	if got := Erfcwc(jbm.Set[float32](9.4)).Get(0); got != 0 {
		t.Errorf("Erfcwc32(9.4) = %v, want 0", got)
	}
}

func TestExp2wcEndpoints(t *testing.T) {
	if got := Exp2wc(jbm.Set[float64](0)).Get(0); got != 1 {
		t.Errorf("Exp2wc(0) = %v, want 1", got)
	}
	if got := Sinwc(jbm.Set[float64](0)).Get(0); got != 0 {
		t.Errorf("Sinwc(0) = %v, want 0", got)
	}
	if got := Coswc(jbm.Set[float64](0)).Get(0); got != 1 {
		t.Errorf("Coswc(0) = %v, want 1", got)
	}
}
