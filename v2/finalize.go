// Copyright (c) 2024 Symbol Not Found LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:faustodas-afk/harmonia/v2/finalize.go

package v2

import "github.com/faustodas-afk/harmonia"

// finalize fuses v2's two streams into a single digest: one last
// edge-protect pass on each stream (r=64 for G, r=65 for C), then per-word
// rotate-and-xor fusion salted with the phi-derived constants and
// PenroseIndex.
func finalize(state harmonia.DualState) harmonia.Digest {
	g := state.G
	c := state.C

	edgeProtect(&g, 64, harmonia.PhiConstants[64&15])
	edgeProtect(&c, 65, harmonia.ReciprocalConstants[65&15])

	var out [8]harmonia.Word
	for i := 0; i < 8; i++ {
		rot := harmonia.QCRot(i, i)
		fused := harmonia.RotR(g[i], rot) ^ harmonia.RotL(c[i], rot)
		fused += harmonia.PhiConstants[i] + harmonia.PenroseIndex(i)*0x01010101
		out[i] = fused
	}
	return harmonia.NewDigest(out)
}
