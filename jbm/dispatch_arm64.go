//go:build arm64

package jbm

import "golang.org/x/sys/cpu"

func init() {
	// Check for JBM_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) and fused multiply-add.
	// We still check the cpu package for consistency.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		useFMA = true
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		setScalarMode()
	}
}
