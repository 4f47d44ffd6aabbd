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
// github.com:faustodas-afk/harmonia/fast/compress.go

package fast

import "github.com/faustodas-afk/harmonia"

// fixedRotL/fixedRotR are Fast's edge-protection rotation amounts: NG and
// Fast share the same fixed 7/13 pair, as opposed to v2's variable
// QCRot lookups.
const (
	fixedRotL = 7
	fixedRotR = 13
)

// compress implements HARMONIA-Fast's compression function: 32 rounds of
// golden/complementary mixing selected by the Fibonacci word, the same
// A/B shape as v2's 64-round loop but without v2's per-round
// exchange-quasi-periodic step, plus NG-style cross-stream diffusion
// every 4 rounds and edge protection every 8 (see DESIGN.md OQ-3: this
// cadence is v2/NG's scaled to Fast's round count, since Fast's exact
// schedule is not required for interoperability with the other two
// variants).
func compress(state *harmonia.DualState, block []byte) {
	w := buildSchedule(block)

	g := state.G
	c := state.C

	for r := 0; r < rounds; r++ {
		t := harmonia.FibonacciWord[r]
		i := r & 7
		j := (r + int(harmonia.Fibonacci[r%12])) & 7

		if t == 1 {
			g[i], g[j] = harmonia.GoldenMix(g[i], g[j], harmonia.PhiConstants[r&15], r, i)
			g[i] += w[r]

			c[i], c[j] = harmonia.GoldenMix(c[i], c[j], harmonia.ReciprocalConstants[r&15], r, i)
			c[j] += w[rounds-1-r]
		} else {
			g[i], g[j] = harmonia.ComplementaryMix(g[i], g[j], harmonia.PhiConstants[r&15], r, i)
			g[j] += w[r]

			c[j], c[i] = harmonia.ComplementaryMix(c[j], c[i], harmonia.ReciprocalConstants[r&15], r, j)
			c[i] += w[rounds-1-r]
		}

		if (r+1)%4 == 0 {
			harmonia.CrossStreamDiffusion(&g, &c)
		}
		if (r+1)%8 == 0 {
			harmonia.EdgeProtect(&g, r, fixedRotL, fixedRotR, harmonia.PhiConstants[r&15])
			harmonia.EdgeProtect(&c, r, fixedRotL, fixedRotR, harmonia.ReciprocalConstants[r&15])
		}
	}

	(&harmonia.DualState{G: g, C: c}).AddInto(state)
}
