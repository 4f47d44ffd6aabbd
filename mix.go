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
// github.com:faustodas-afk/harmonia/mix.go

package harmonia

// GoldenMix is the golden stream's "A" mixing primitive. a and b are
// snapshotted up front so the function is correct even when the caller
// passes aliased storage for a and b (e.g. i == j).
func GoldenMix(a, b, k Word, r, i int) (Word, Word) {
	origA, origB := a, b

	a = RotR(origA, QCRot(r, i))
	a = a + origB
	a = a ^ k

	b = RotL(origB, QCRot(r+1, i+1))
	b = b ^ a
	b = b + k

	m := (a * 3) ^ (b * 5)
	a = a ^ (m >> 11)
	b = b ^ (m << 7)

	return a, b
}

// ComplementaryMix is the complementary stream's "B" mixing primitive. As
// with GoldenMix, a and b are snapshotted first to tolerate aliasing.
//
// The a-update reads as `a := a + (k >> 1)`: the shift binds tighter than
// the add, as opposed to the alternate parse `(a + k) >> 1` (see
// DESIGN.md OQ-2 for the reasoning behind this choice).
func ComplementaryMix(a, b, k Word, r, i int) (Word, Word) {
	origA, origB := a, b

	a = origA ^ origB
	a = RotL(a, QCRot(r, i))
	a = a + (k >> 1)

	b = origB + a
	b = RotR(b, QCRot(r+1, i+1))
	b = b ^ (k >> 1)

	return a, b
}

// QuarterRound is the ChaCha-style ARX micro-function used by HARMONIA-NG,
// operating on four positions of an 8-word stream with four independent
// rotation amounts.
func QuarterRound(s *[8]Word, a, b, c, d int, r1, r2, r3, r4 uint) {
	s[a] += s[b]
	s[d] ^= s[a]
	s[d] = RotL(s[d], r1)

	s[c] += s[d]
	s[b] ^= s[c]
	s[b] = RotL(s[b], r2)

	s[a] += s[b]
	s[d] ^= s[a]
	s[d] = RotL(s[d], r3)

	s[c] += s[d]
	s[b] ^= s[c]
	s[b] = RotL(s[b], r4)
}
