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
// github.com:faustodas-afk/harmonia/v2/compress.go

package v2

import "github.com/faustodas-afk/harmonia"

// compress implements the HARMONIA v2.2 compression function: 64 rounds
// alternating golden and complementary mixing, chosen per round by the
// Fibonacci word, with a full exchange-quasi-periodic step every round and
// edge protection every 8.
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

		harmonia.ExchangeQuasiPeriodic(&g, &c, r, t)

		if r&7 == 7 {
			edgeProtect(&g, r, harmonia.PhiConstants[r&15])
			edgeProtect(&c, r, harmonia.ReciprocalConstants[r&15])
		}
	}

	(&harmonia.DualState{G: g, C: c}).AddInto(state)
}

// edgeProtect applies edge protection using v2's variable, table-driven
// rotation amounts (QCRot(r,0)/QCRot(r,7)), as opposed to fast/ng's fixed
// 7/13.
func edgeProtect(s *[8]harmonia.Word, r int, leftConstant harmonia.Word) {
	harmonia.EdgeProtect(s, r, harmonia.QCRot(r, 0), harmonia.QCRot(r, 7), leftConstant)
}
