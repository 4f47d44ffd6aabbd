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
// github.com:faustodas-afk/harmonia/constants.go

package harmonia

import "math/big"

// Fibonacci holds F(1)..F(12), used throughout the construction to index
// round constants and rotation tables modulo 12.
var Fibonacci = [12]Word{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}

// PhiConstants and ReciprocalConstants are the phi-derived and
// 1/phi-derived round constants for the golden and complementary streams.
// Like SHA-2's cube root constants, each entry is the leading 32 bits of the fractional part
// of an irrational multiple -- here (i+1)*phi and (i+1)/phi respectively --
// computed once via math/big (see bigmath.go) so the bits are identical on
// every host regardless of hardware float semantics.
var (
	PhiConstants       [16]Word
	ReciprocalConstants [16]Word
)

func init() {
	phi := phiBig()
	recipPhi := new(big.Float).SetPrec(bigPrecisionBits).Quo(
		new(big.Float).SetPrec(bigPrecisionBits).SetInt64(1), phi)

	for i := 0; i < 16; i++ {
		n := new(big.Float).SetPrec(bigPrecisionBits).SetInt64(int64(i + 1))
		PhiConstants[i] = fractionalWord(new(big.Float).SetPrec(bigPrecisionBits).Mul(n, phi))
		ReciprocalConstants[i] = fractionalWord(new(big.Float).SetPrec(bigPrecisionBits).Mul(n, recipPhi))
	}
}

// FibonacciWordLen is the number of symbols of the Fibonacci word kept
// around; every variant's round count (64 for v2, 32 for fast/ng) fits
// inside it.
const FibonacciWordLen = 64

// FibonacciWord is the truncated infinite quasi-periodic binary sequence
// produced by the substitution A -> AB, B -> A (the "Fibonacci word"),
// with A represented as 1 and B as 0. Each variant's compression loop
// indexes this sequence per round to choose golden (1) vs complementary
// (0) mixing.
var FibonacciWord [FibonacciWordLen]byte

func init() {
	seq := []byte{1}
	for len(seq) < FibonacciWordLen {
		next := make([]byte, 0, len(seq)*2)
		for _, c := range seq {
			if c == 1 {
				next = append(next, 1, 0) // A -> AB
			} else {
				next = append(next, 1) // B -> A
			}
		}
		seq = next
	}
	copy(FibonacciWord[:], seq[:FibonacciWordLen])
}

// InitialHashG and InitialHashC are HARMONIA-NG's initial chaining value:
// the golden stream seeds from the SHA-256-style fractional
// parts of sqrt(2), sqrt(3), ..., and the complementary stream seeds from
// golden-ratio-derived constants analogous to phi's own expansion.
var InitialHashG = [8]Word{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

var InitialHashC = [8]Word{
	0x9E3779B9, 0x7F4A7C15, 0xF39CC060, 0x5CEDC834,
	0x2FE12A6D, 0x4786B47C, 0xC8A5E2F0, 0x3A8D6B7F,
}

// NGRoundRotations is the 32x4 rotation schedule NG's quarter-round reads
// its four amounts from. Every
// entry lands in 5..16, derived from Fibonacci the same way
// quasicrystalRotations is derived from penroseIndex: grounded in the
// construction's own number theory rather than an arbitrary table.
var NGRoundRotations [32][4]uint8

func init() {
	for r := 0; r < 32; r++ {
		for k := 0; k < 4; k++ {
			v := Fibonacci[(r*4+k)%12] % 12
			NGRoundRotations[r][k] = uint8(5 + v)
		}
	}
}
