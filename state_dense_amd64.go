//go:build amd64

package ahocorasick

import "golang.org/x/sys/cpu"

// denseCapabilities holds detected CPU features relevant to initializing
// a dense transition table. There is no portable SIMD intrinsic story in
// Go, so "fast path" here means an unrolled scalar loop gated on a
// capability check, exactly the shape the lippycat ahocorasick package
// uses for its own amd64 byte transform.
var denseCapabilities struct {
	hasAVX2 bool
}

func init() {
	denseCapabilities.hasAVX2 = cpu.X86.HasAVX2
}

// fillNoState resets every slot of a freshly allocated dense table to
// NoState. On AVX2-capable hardware it unrolls the fill 8 slots at a time;
// elsewhere it falls back to the plain scalar loop.
func fillNoState(t *denseTable) {
	if denseCapabilities.hasAVX2 {
		fillNoStateUnrolled(t)
		return
	}
	fillNoStateScalar(t)
}

func fillNoStateUnrolled(t *denseTable) {
	i := 0
	for ; i+8 <= len(t); i += 8 {
		t[i] = NoState
		t[i+1] = NoState
		t[i+2] = NoState
		t[i+3] = NoState
		t[i+4] = NoState
		t[i+5] = NoState
		t[i+6] = NoState
		t[i+7] = NoState
	}
	for ; i < len(t); i++ {
		t[i] = NoState
	}
}

func fillNoStateScalar(t *denseTable) {
	for i := range t {
		t[i] = NoState
	}
}
