//go:build !amd64

package ahocorasick

// fillNoState resets every slot of a freshly allocated dense table to
// NoState. This is the scalar fallback for non-amd64 targets; see
// state_dense_amd64.go for the capability-gated unrolled variant.
func fillNoState(t *denseTable) {
	for i := range t {
		t[i] = NoState
	}
}
