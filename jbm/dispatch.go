package jbm

import (
	"os"
	"strconv"
)

// DispatchLevel represents the instruction set the kernels are tuned for.
type DispatchLevel int

const (
	// DispatchScalar indicates plain Go with separate multiply and add.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX2 indicates AVX2 with FMA3 (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512F.
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (ASIMD), which always has fused
	// multiply-add.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// useFMA selects the fused path of MulAdd.
// Set by init() in dispatch_*.go files.
var useFMA bool

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current level.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// HasFMA reports whether MulAdd is fused on this runtime.
func HasFMA() bool {
	return useFMA
}

// NoSimdEnv checks if the JBM_NO_SIMD environment variable is set.
// When set, the scalar level is used regardless of CPU capabilities and
// MulAdd rounds the product before adding. This is useful for testing
// reproducibility across machines.
func NoSimdEnv() bool {
	val := os.Getenv("JBM_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	useFMA = false
}
