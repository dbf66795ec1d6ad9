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

//go:build amd64

package jbm

import "golang.org/x/sys/cpu"

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// The 256-bit kernels need AVX2 and FMA3 together (Haswell+, Zen+).
	if !cpu.X86.HasAVX2 || !cpu.X86.HasFMA {
		setScalarMode()
		return
	}

	useFMA = true
	currentLevel = DispatchAVX2
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512VL {
		currentLevel = DispatchAVX512
	}
}
