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

package flux

import (
	"fmt"
	"strings"

	"github.com/ajroetker/go-jbm/jbm"
)

// Type selects a limiter.
type Type int

const (
	TypeTotal Type = iota
	TypeNull
	TypeCentred
	TypeSuperbee
	TypeMinmod
	TypeVanLeer
	TypeVanAlbada
	TypeMinsuper
	TypeSupermin
	TypeMonotonizedCentral
	TypeMean
)

var typeNames = [...]string{
	TypeTotal:              "total",
	TypeNull:               "null",
	TypeCentred:            "centred",
	TypeSuperbee:           "superbee",
	TypeMinmod:             "minmod",
	TypeVanLeer:            "VanLeer",
	TypeVanAlbada:          "VanAlbada",
	TypeMinsuper:           "minsuper",
	TypeSupermin:           "supermin",
	TypeMonotonizedCentral: "monotonized_central",
	TypeMean:               "mean",
}

// Types returns every limiter type in tag order.
func Types() []Type {
	ts := make([]Type, len(typeNames))
	for i := range ts {
		ts[i] = Type(i)
	}
	return ts
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType returns the type named s, ignoring case.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if strings.EqualFold(s, name) {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("flux: unknown limiter %q", s)
}

// Func returns the limiter for t. Unknown types select Mean.
func Func[T jbm.Floats](t Type) func(d1, d2 jbm.Vec[T]) jbm.Vec[T] {
	switch t {
	case TypeTotal:
		return Total[T]
	case TypeNull:
		return Null[T]
	case TypeCentred:
		return Centred[T]
	case TypeSuperbee:
		return Superbee[T]
	case TypeMinmod:
		return Minmod[T]
	case TypeVanLeer:
		return VanLeer[T]
	case TypeVanAlbada:
		return VanAlbada[T]
	case TypeMinsuper:
		return Minsuper[T]
	case TypeSupermin:
		return Supermin[T]
	case TypeMonotonizedCentral:
		return MonotonizedCentral[T]
	}
	return Mean[T]
}

// Limiter evaluates the limiter selected by t.
func Limiter[T jbm.Floats](d1, d2 jbm.Vec[T], t Type) jbm.Vec[T] {
	return Func[T](t)(d1, d2)
}
