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
// github.com:faustodas-afk/harmonia/ng/compress.go

package ng

import "github.com/faustodas-afk/harmonia"

// fixedRotL/fixedRotR are NG's (and Fast's) fixed edge-protection rotation
// amounts, used in place of v2's variable quasicrystal-rotation lookups.
const (
	fixedRotL = 7
	fixedRotR = 13
)

// compress implements HARMONIA-NG's compression function: 32 rounds of
// paired ChaCha-style quarter-rounds over both streams, cross-stream
// diffusion every 4 rounds, and edge protection every 8.
func compress(state *harmonia.DualState, block []byte) {
	w := buildSchedule(block)

	g := state.G
	c := state.C

	for r := 0; r < rounds; r++ {
		g[0] += w[r]
		c[0] += w[scheduleWords-1-r]

		g[4] ^= harmonia.PhiConstants[r&15]
		c[4] ^= harmonia.ReciprocalConstants[r&15]

		rot := harmonia.NGRoundRotations[r]
		r1, r2, r3, r4 := uint(rot[0]), uint(rot[1]), uint(rot[2]), uint(rot[3])

		harmonia.QuarterRound(&g, 0, 1, 2, 3, r1, r2, r3, r4)
		harmonia.QuarterRound(&g, 4, 5, 6, 7, r1, r2, r3, r4)
		harmonia.QuarterRound(&g, 0, 5, 2, 7, r1, r2, r3, r4)
		harmonia.QuarterRound(&g, 4, 1, 6, 3, r1, r2, r3, r4)

		harmonia.QuarterRound(&c, 0, 1, 2, 3, r1, r2, r3, r4)
		harmonia.QuarterRound(&c, 4, 5, 6, 7, r1, r2, r3, r4)
		harmonia.QuarterRound(&c, 0, 5, 2, 7, r1, r2, r3, r4)
		harmonia.QuarterRound(&c, 4, 1, 6, 3, r1, r2, r3, r4)

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
