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
// github.com:faustodas-afk/harmonia/ng/finalize.go

package ng

import "github.com/faustodas-afk/harmonia"

// finalize fuses NG's two streams: edge-protect each stream once more
// (r=32 for G, r=33 for C), then rotate-and-xor fusion salted with the
// phi-derived constants only (unlike v2, NG does not add a PenroseIndex
// term here).
func finalize(state harmonia.DualState) harmonia.Digest {
	g := state.G
	c := state.C

	harmonia.EdgeProtect(&g, 32, fixedRotL, fixedRotR, harmonia.PhiConstants[32&15])
	harmonia.EdgeProtect(&c, 33, fixedRotL, fixedRotR, harmonia.ReciprocalConstants[33&15])

	var out [8]harmonia.Word
	for i := 0; i < 8; i++ {
		rot := uint(i*3+5)%16 + 1
		fused := harmonia.RotR(g[i], rot) ^ harmonia.RotL(c[i], rot)
		fused += harmonia.PhiConstants[i]
		out[i] = fused
	}
	return harmonia.NewDigest(out)
}
