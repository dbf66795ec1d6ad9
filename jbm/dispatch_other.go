//go:build !amd64 && !arm64

package jbm

func init() {
	// Other architectures use the scalar level. math.FMA is still exact
	// there, but may be emulated in software, so MulAdd stays unfused.
	setScalarMode()
}
