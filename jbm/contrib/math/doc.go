// Copyright 2025 go-jbm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package math provides elementary functions on lane groups.
//
// The functions come in two layers.
//
// # Range-reduced kernels
//
// The *wc functions evaluate a fitted polynomial or rational function and
// are only valid on a narrow interval:
//
//   - Exp2wc(x)   2^x,       x in [0, 1)
//   - Expm1wc(x)  e^x - 1,   x in [-ln2/2, ln2/2]
//   - Log2wc(x)   log2(x),   x in [1/2, 1) (accurate through [1/2, 2])
//   - Sinwc(x)    sin(x),    x in [-pi/4, pi/4]
//   - Coswc(x)    cos(x),    x in [-pi/4, pi/4]
//   - Atanwc0(x)  atan(x),   x in [0, 1/2]
//   - Atanwc1(x)  atan(x),   x in [1/2, 3/2]
//   - Erfwc(x)    erf(x),    x in [-1, 1]
//   - Erfcwc(x)   erfc(x),   x in [1, inf)
//
// # Full-domain functions
//
// Exponential and logarithmic:
//   - Exp, Exp2, Exp10, Expm1
//   - Log, Log2, Log10, Log1p
//   - Pow (scalar exponent), Pown (integer exponent), PowVec, Cbrt
//
// Trigonometric:
//   - Sin, Cos, SinCos, Tan
//   - Atan, Atan2, Asin, Acos
//
// Hyperbolic:
//   - Sinh, Cosh, Tanh, Asinh, Acosh, Atanh
//
// Special functions:
//   - Erf, Erfc
//
// Every function is generic over jbm.Floats and runs on a float32 group of
// eight lanes or a float64 group of four. Concrete instantiations named
// <Func>_F32x8 and <Func>_F64x4 are generated into z_lanes.go by jbmgen.
//
// # Accuracy
//
// The kernels are fitted to about 1 ulp on their intervals. The full-domain
// functions add the rounding of the reduction and reconstruction steps and
// are typically within 2-4 ulp; they are not correctly rounded.
//
// # Special values
//
// No function panics or returns an error. NaN inputs propagate, infinities
// and zeros follow IEEE-754 conventions, overflow gives ±Inf and
// underflow goes gradually through the subnormals to 0.
//
// Example:
//
//	import (
//	    "github.com/ajroetker/go-jbm/jbm"
//	    "github.com/ajroetker/go-jbm/jbm/contrib/math"
//	)
//
//	x := jbm.Load(input)
//	s, c := math.SinCos(x)
package math

//go:generate go run ../../../cmd/jbmgen -pkg . -output z_lanes.go
