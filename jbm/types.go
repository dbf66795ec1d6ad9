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

// Package jbm provides fixed-width lane groups for elementary math kernels.
//
// A lane group is the image of one 256-bit register: eight float32 lanes or
// four float64 lanes. Every kernel in this module is written once against the
// generic Vec type and instantiated for both precisions. Lane groups are plain
// values: they copy by value and never touch the heap.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-jbm/jbm"
//
//	x := jbm.Load([]float32{1, 2, 3, 4, 5, 6, 7, 8})
//	y := jbm.MulAdd(x, x, jbm.Set[float32](1))
//	y.Store(out)
//
// The lane operations in this package are the building blocks. The layered
// math kernels live in the contrib packages: poly (evaluators), math
// (elementary functions), solve (root solvers), flux (limiters) and quad
// (Gauss-Legendre integration).
package jbm

import "unsafe"

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// Integers is a constraint for the integer lane types used for exponents
// and bit patterns.
type Integers interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// Lanes is a constraint for all types that can be stored in a lane group.
type Lanes interface {
	Floats | Integers
}

// VectorBytes is the width of a lane group in bytes.
const VectorBytes = 32

// maxLanes is the storage capacity of a lane group (8 lanes of 4 bytes).
const maxLanes = 8

// MaxLanes returns the number of lanes of type T in one lane group:
//   - float32, int32: 8 lanes
//   - float64, int64: 4 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	return VectorBytes / int(unsafe.Sizeof(dummy))
}

// Vec is a lane group. Create it with Load, Set, Zero or Iota.
//
// Integer groups derived from a float group (for example the exponents
// returned by Frexp) keep the lane count of the float group they came from,
// so a Vec[int32] may hold 4 lanes when it describes a float64 group.
type Vec[T Lanes] struct {
	data [maxLanes]T
	n    int
}

// Float32x8 is a group of eight float32 lanes.
type Float32x8 = Vec[float32]

// Float64x4 is a group of four float64 lanes.
type Float64x4 = Vec[float64]

// Int32x8 is a group of int32 lanes.
type Int32x8 = Vec[int32]

// NumLanes returns the number of lanes in this group.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Data returns a copy of the lanes as a slice.
// This is primarily for testing and should not be used in hot loops.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Get returns lane i, or the zero value when i is out of range.
func (v Vec[T]) Get(i int) T {
	if i < 0 || i >= v.n {
		var zero T
		return zero
	}
	return v.data[i]
}

// Store writes the lanes to dst. At most len(dst) lanes are written.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// Mask is the per-lane result of a comparison. It is consumed by
// IfThenElse and the other select operations.
type Mask[T Lanes] struct {
	bits [maxLanes]bool
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for i := range m.n {
		if !m.bits[i] {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for i := range m.n {
		if m.bits[i] {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for i := range m.n {
		if m.bits[i] {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits[i]
}
