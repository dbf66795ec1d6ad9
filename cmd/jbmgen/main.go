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

// Command jbmgen writes concrete lane-width instantiations of the generic
// jbm functions in a package.
//
// Usage:
//
//	jbmgen -pkg ./jbm/contrib/math -output z_lanes.go
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/jbmgen -pkg . -output z_lanes.go
//
// Every exported function of the form
//
//	func F[T jbm.Floats](x jbm.Vec[T], ...) jbm.Vec[T]
//
// gets an F_F32x8 and an F_F64x4 wrapper taking and returning the
// concrete vector types. Parameters of type T become float32 or float64;
// basic non-generic parameters are passed through.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	pkgPattern = flag.String("pkg", ".", "Package to scan, as a directory or import path")
	outputFile = flag.String("output", "z_lanes.go", "Output file, relative to the package directory unless absolute")
)

func main() {
	flag.Parse()

	if *outputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -output flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		Pattern: *pkgPattern,
		Output:  *outputFile,
	}
	path, n, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d wrappers to %s\n", n, path)
}
