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

package main

import (
	stdmath "math"

	"github.com/ajroetker/go-jbm/jbm"
	"github.com/ajroetker/go-jbm/jbm/contrib/math"
)

// function is a checkable kernel with its float64 reference.
type function struct {
	f32 func(jbm.Float32x8) jbm.Float32x8
	f64 func(jbm.Float64x4) jbm.Float64x4
	ref func(float64) float64
}

var functions = map[string]function{
	"exp":   {math.Exp_F32x8, math.Exp_F64x4, stdmath.Exp},
	"exp2":  {math.Exp2_F32x8, math.Exp2_F64x4, stdmath.Exp2},
	"exp10": {math.Exp10_F32x8, math.Exp10_F64x4, func(x float64) float64 { return stdmath.Pow(10, x) }},
	"expm1": {math.Expm1_F32x8, math.Expm1_F64x4, stdmath.Expm1},
	"log":   {math.Log_F32x8, math.Log_F64x4, stdmath.Log},
	"log2":  {math.Log2_F32x8, math.Log2_F64x4, log2},
	"log10": {math.Log10_F32x8, math.Log10_F64x4, stdmath.Log10},
	"log1p": {math.Log1p_F32x8, math.Log1p_F64x4, stdmath.Log1p},
	"sin":   {math.Sin_F32x8, math.Sin_F64x4, stdmath.Sin},
	"cos":   {math.Cos_F32x8, math.Cos_F64x4, stdmath.Cos},
	"tan":   {math.Tan_F32x8, math.Tan_F64x4, stdmath.Tan},
	"atan":  {math.Atan_F32x8, math.Atan_F64x4, stdmath.Atan},
	"asin":  {math.Asin_F32x8, math.Asin_F64x4, stdmath.Asin},
	"acos":  {math.Acos_F32x8, math.Acos_F64x4, stdmath.Acos},
	"sinh":  {math.Sinh_F32x8, math.Sinh_F64x4, stdmath.Sinh},
	"cosh":  {math.Cosh_F32x8, math.Cosh_F64x4, stdmath.Cosh},
	"tanh":  {math.Tanh_F32x8, math.Tanh_F64x4, stdmath.Tanh},
	"asinh": {math.Asinh_F32x8, math.Asinh_F64x4, stdmath.Asinh},
	"acosh": {math.Acosh_F32x8, math.Acosh_F64x4, stdmath.Acosh},
	"atanh": {math.Atanh_F32x8, math.Atanh_F64x4, stdmath.Atanh},
	"erf":   {math.Erf_F32x8, math.Erf_F64x4, stdmath.Erf},
	"erfc":  {math.Erfc_F32x8, math.Erfc_F64x4, stdmath.Erfc},
	"cbrt":  {math.Cbrt_F32x8, math.Cbrt_F64x4, stdmath.Cbrt},
}

// log2 avoids the cancellation of math.Log2 just above 1.
func log2(x float64) float64 {
	return stdmath.Log(x) / stdmath.Ln2
}
