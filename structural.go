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
// github.com:faustodas-afk/harmonia/structural.go

package harmonia

// ExchangeQuasiPeriodic is HARMONIA v2.2's per-round cross-pollination
// step, applied once per round after the A/B mix, parameterized by the
// round type t (1 == golden round, 0 == complementary round).
func ExchangeQuasiPeriodic(g, c *[8]Word, r int, t byte) {
	if t == 1 {
		for i := 0; i < 8; i++ {
			pi := PenroseIndex(r + i)
			if pi%3 == 0 {
				temp := g[i] ^ c[i]
				g[i] += temp >> 8
				c[i] += temp & 0xFF00
			}
		}
		return
	}
	temp := g[0] ^ c[7]
	g[0] ^= temp >> 16
	c[7] ^= temp & 0xFFFF
}

// crossStreamRotation is the fixed rotation amount cross-stream diffusion
// uses for Fast and NG.
const crossStreamRotation = 11

// CrossStreamDiffusion folds each stream into the other every 4 rounds in
// the Fast and NG variants.
func CrossStreamDiffusion(g, c *[8]Word) {
	for i := 0; i < 8; i++ {
		temp := g[i] ^ c[(i+3)%8]
		g[i] += RotR(temp, crossStreamRotation)
		c[i] ^= RotL(temp, crossStreamRotation)
	}
}

// EdgeProtect is the edge-mode transformation concentrated on state
// positions 0 and 7, applied once to a single stream. rotL/rotR are the
// rotation amounts to use for s[0]/s[7] respectively (variable, looked up
// via QCRot, for v2; fixed 7/13 for fast/ng). leftConstant is the
// per-round constant already keying this stream's mix this round -- see
// DESIGN.md OQ-4 for why this parameter is resolved that way.
func EdgeProtect(s *[8]Word, r int, rotL, rotR uint, leftConstant Word) {
	s[0] = RotR(s[0], rotL)
	s[0] ^= Fibonacci[r%12] * 0x9E3779B9

	s[7] = RotL(s[7], rotR)
	s[7] ^= ^leftConstant

	interaction := (s[0] ^ s[7]) >> 16
	s[0] += interaction
	s[7] += interaction
}
