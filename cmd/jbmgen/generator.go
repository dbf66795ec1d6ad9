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
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/types"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// jbmPath is the import path of the lane-group package.
const jbmPath = "github.com/ajroetker/go-jbm/jbm"

// Kind classifies a parameter or result of a wrapped function.
type Kind int

const (
	KindBasic Kind = iota // non-generic basic type, passed through
	KindVec               // jbm.Vec[T]
	KindElem              // T
)

// Param is one parameter of a wrapped function.
type Param struct {
	Name string
	Kind Kind
	Type string // set for KindBasic
}

// Wrapper describes a generic function to instantiate.
type Wrapper struct {
	Name    string
	Params  []Param
	Results []Kind
}

// Instance is one concrete lane width.
type Instance struct {
	Suffix string // "F32x8"
	Vec    string // "jbm.Float32x8"
	Elem   string // "float32"
}

// Instances lists the widths every wrapper is generated for.
var Instances = []Instance{
	{Suffix: "F32x8", Vec: "jbm.Float32x8", Elem: "float32"},
	{Suffix: "F64x4", Vec: "jbm.Float64x4", Elem: "float64"},
}

// Generator loads a package and writes its wrapper file.
type Generator struct {
	Pattern string // package directory or import path
	Output  string // output file name
}

// Run generates the wrapper file and returns its path and the number of
// wrapped functions.
func (g *Generator) Run() (string, int, error) {
	pkg, err := loadPackage(g.Pattern)
	if err != nil {
		return "", 0, err
	}
	wrappers := Find(pkg.Types)
	if len(wrappers) == 0 {
		return "", 0, fmt.Errorf("package %s has no exported jbm.Floats functions", pkg.PkgPath)
	}
	src, err := Render(pkg.Name, wrappers)
	if err != nil {
		return "", 0, err
	}

	path := g.Output
	if !filepath.IsAbs(path) {
		if len(pkg.GoFiles) == 0 {
			return "", 0, fmt.Errorf("package %s has no Go files", pkg.PkgPath)
		}
		path = filepath.Join(filepath.Dir(pkg.GoFiles[0]), path)
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		return "", 0, fmt.Errorf("write wrappers: %w", err)
	}
	return path, len(wrappers), nil
}

func loadPackage(pattern string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode:  packages.NeedName | packages.NeedFiles | packages.NeedTypes,
		Tests: false,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", pattern, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %s matched %d packages, want 1", pattern, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		errs := make([]error, len(pkg.Errors))
		for i, e := range pkg.Errors {
			errs[i] = e
		}
		return nil, fmt.Errorf("load %s: %w", pattern, errors.Join(errs...))
	}
	return pkg, nil
}

// Find returns the wrappable functions of pkg in name order.
func Find(pkg *types.Package) []Wrapper {
	var out []Wrapper
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		fn, ok := scope.Lookup(name).(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}
		if w, ok := wrap(fn); ok {
			out = append(out, w)
		}
	}
	return out
}

func wrap(fn *types.Func) (Wrapper, bool) {
	sig := fn.Type().(*types.Signature)
	if sig.Recv() != nil || sig.TypeParams().Len() != 1 {
		return Wrapper{}, false
	}
	tp := sig.TypeParams().At(0)
	if !isJBM(tp.Constraint(), "Floats") {
		return Wrapper{}, false
	}

	w := Wrapper{Name: fn.Name()}
	for i := range sig.Params().Len() {
		v := sig.Params().At(i)
		k, ok := kindOf(v.Type(), tp)
		if !ok {
			return Wrapper{}, false
		}
		name := v.Name()
		if name == "" || name == "_" {
			name = fmt.Sprintf("p%d", i)
		}
		p := Param{Name: name, Kind: k}
		if k == KindBasic {
			p.Type = v.Type().String()
		}
		w.Params = append(w.Params, p)
	}
	if sig.Variadic() {
		return Wrapper{}, false
	}
	for i := range sig.Results().Len() {
		k, ok := kindOf(sig.Results().At(i).Type(), tp)
		if !ok || k == KindBasic {
			return Wrapper{}, false
		}
		w.Results = append(w.Results, k)
	}
	return w, len(w.Results) > 0
}

func kindOf(t types.Type, tp *types.TypeParam) (Kind, bool) {
	if types.Identical(t, tp) {
		return KindElem, true
	}
	if named, ok := types.Unalias(t).(*types.Named); ok {
		args := named.TypeArgs()
		if isJBM(named, "Vec") && args.Len() == 1 && types.Identical(args.At(0), tp) {
			return KindVec, true
		}
		return 0, false
	}
	if _, ok := t.(*types.Basic); ok {
		return KindBasic, true
	}
	return 0, false
}

func isJBM(t types.Type, name string) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == jbmPath && obj.Name() == name
}

// Render returns the formatted wrapper file for package pkgName.
func Render(pkgName string, wrappers []Wrapper) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by jbmgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	fmt.Fprintf(&buf, "import %q\n", jbmPath)
	for _, w := range wrappers {
		for _, in := range Instances {
			buf.WriteString("\n")
			writeWrapper(&buf, w, in)
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format wrappers: %w", err)
	}
	return src, nil
}

func writeWrapper(buf *bytes.Buffer, w Wrapper, in Instance) {
	typeOf := func(k Kind, basic string) string {
		switch k {
		case KindVec:
			return in.Vec
		case KindElem:
			return in.Elem
		}
		return basic
	}

	params := make([]string, len(w.Params))
	args := make([]string, len(w.Params))
	for i, p := range w.Params {
		params[i] = p.Name + " " + typeOf(p.Kind, p.Type)
		args[i] = p.Name
	}
	results := make([]string, len(w.Results))
	for i, k := range w.Results {
		results[i] = typeOf(k, "")
	}
	res := results[0]
	if len(results) > 1 {
		res = "(" + strings.Join(results, ", ") + ")"
	}

	fmt.Fprintf(buf, "func %s_%s(%s) %s { return %s[%s](%s) }\n",
		w.Name, in.Suffix, strings.Join(params, ", "), res,
		w.Name, in.Elem, strings.Join(args, ", "))
}
