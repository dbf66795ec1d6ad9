package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mathPkg = "github.com/ajroetker/go-jbm/jbm/contrib/math"

func TestRender(t *testing.T) {
	ws := []Wrapper{
		{Name: "Exp", Params: []Param{{Name: "x", Kind: KindVec}}, Results: []Kind{KindVec}},
		{Name: "Pown", Params: []Param{{Name: "x", Kind: KindVec}, {Name: "n", Kind: KindBasic, Type: "int"}}, Results: []Kind{KindVec}},
		{Name: "Pow", Params: []Param{{Name: "x", Kind: KindVec}, {Name: "e", Kind: KindElem}}, Results: []Kind{KindVec}},
		{Name: "SinCos", Params: []Param{{Name: "x", Kind: KindVec}}, Results: []Kind{KindVec, KindVec}},
	}
	src, err := Render("demo", ws)
	require.NoError(t, err)
	got := string(src)

	assert.True(t, strings.HasPrefix(got, "// Code generated by jbmgen. DO NOT EDIT.\n\npackage demo\n"))
	for _, want := range []string{
		"func Exp_F32x8(x jbm.Float32x8) jbm.Float32x8 { return Exp[float32](x) }",
		"func Exp_F64x4(x jbm.Float64x4) jbm.Float64x4 { return Exp[float64](x) }",
		"func Pown_F64x4(x jbm.Float64x4, n int) jbm.Float64x4 { return Pown[float64](x, n) }",
		"func Pow_F32x8(x jbm.Float32x8, e float32) jbm.Float32x8 { return Pow[float32](x, e) }",
		"func SinCos_F32x8(x jbm.Float32x8) (jbm.Float32x8, jbm.Float32x8) { return SinCos[float32](x) }",
	} {
		assert.Contains(t, got, want)
	}
}

func TestFindMath(t *testing.T) {
	pkg, err := loadPackage(mathPkg)
	require.NoError(t, err)
	ws := Find(pkg.Types)

	byName := make(map[string]Wrapper, len(ws))
	for _, w := range ws {
		byName[w.Name] = w
	}
	for _, name := range []string{"Exp", "Log", "Sin", "Erfcwc", "Atan2", "Cbrt"} {
		assert.Contains(t, byName, name)
	}
	assert.NotContains(t, byName, "pair", "unexported helpers are skipped")
	assert.NotContains(t, byName, "Exp_F32x8", "non-generic functions are skipped")

	assert.Equal(t, []Param{{Name: "x", Kind: KindVec}, {Name: "n", Kind: KindBasic, Type: "int"}}, byName["Pown"].Params)
	assert.Equal(t, []Param{{Name: "x", Kind: KindVec}, {Name: "e", Kind: KindElem}}, byName["Pow"].Params)
	assert.Equal(t, []Kind{KindVec, KindVec}, byName["SinCos"].Results)
}

func TestGeneratedFileUpToDate(t *testing.T) {
	pkg, err := loadPackage(mathPkg)
	require.NoError(t, err)
	src, err := Render(pkg.Name, Find(pkg.Types))
	require.NoError(t, err)

	current, err := os.ReadFile(filepath.Join(filepath.Dir(pkg.GoFiles[0]), "z_lanes.go"))
	require.NoError(t, err)
	assert.Equal(t, string(current), string(src), "z_lanes.go is stale, run go generate")
}

func TestRunWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "lanes.go")
	gen := &Generator{Pattern: mathPkg, Output: out}
	path, n, err := gen.Run()
	require.NoError(t, err)
	assert.Equal(t, out, path)
	assert.Greater(t, n, 30)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "func Tanh_F64x4(")
}

func TestRunRejectsPackageWithoutKernels(t *testing.T) {
	gen := &Generator{Pattern: "github.com/ajroetker/go-jbm/jbm/contrib/workerpool", Output: filepath.Join(t.TempDir(), "x.go")}
	_, _, err := gen.Run()
	assert.Error(t, err)
}
