package math

import (
	"testing"

	"github.com/ajroetker/go-jbm/jbm"
)

func TestLaneWrappers(t *testing.T) {
	x32 := jbm.Load([]float32{-2, -0.5, 0, 0.25, 1, 3, 7, 20})
	x64 := jbm.Load([]float64{-2, 0.25, 3, 20})

	pairs32 := map[string][2]jbm.Float32x8{
		"Exp":  {Exp_F32x8(x32), Exp(x32)},
		"Sin":  {Sin_F32x8(x32), Sin(x32)},
		"Tanh": {Tanh_F32x8(x32), Tanh(x32)},
		"Pown": {Pown_F32x8(x32, 3), Pown(x32, 3)},
	}
	for name, p := range pairs32 {
		for i := range p[0].NumLanes() {
			if p[0].Get(i) != p[1].Get(i) {
				t.Errorf("%s_F32x8 lane %d = %v, want %v", name, i, p[0].Get(i), p[1].Get(i))
			}
		}
	}

	s, c := SinCos_F64x4(x64)
	ws, wc := SinCos(x64)
	for i := range 4 {
		if s.Get(i) != ws.Get(i) || c.Get(i) != wc.Get(i) {
			t.Errorf("SinCos_F64x4 lane %d = (%v, %v), want (%v, %v)", i, s.Get(i), c.Get(i), ws.Get(i), wc.Get(i))
		}
	}
	if got, want := Erf_F64x4(x64).Get(2), Erf(x64).Get(2); got != want {
		t.Errorf("Erf_F64x4 = %v, want %v", got, want)
	}
}
