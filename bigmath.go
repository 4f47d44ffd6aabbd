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
// github.com:faustodas-afk/harmonia/bigmath.go

package harmonia

import "math/big"

// bigPrecisionBits is the working precision used to derive the handful of
// phi-based constants below. Hardware double-precision floats are a
// portability hazard here: identical bit patterns are not guaranteed
// across architectures for the same `double` expression. math/big's
// arbitrary-precision floats give the same bits everywhere, so the
// constants below are reproducible regardless of host FPU, and only need
// to be computed once at package init time.
const bigPrecisionBits = 256

// phiBig is (1+sqrt(5))/2 computed to bigPrecisionBits of precision.
func phiBig() *big.Float {
	five := new(big.Float).SetPrec(bigPrecisionBits).SetInt64(5)
	root5 := new(big.Float).SetPrec(bigPrecisionBits).Sqrt(five)
	one := new(big.Float).SetPrec(bigPrecisionBits).SetInt64(1)
	two := new(big.Float).SetPrec(bigPrecisionBits).SetInt64(2)
	sum := new(big.Float).SetPrec(bigPrecisionBits).Add(one, root5)
	return new(big.Float).SetPrec(bigPrecisionBits).Quo(sum, two)
}

// fractionalWord returns the high 32 bits of the fractional part of x,
// i.e. floor(frac(x) * 2^32), as used to derive round constants from an
// irrational number the way SHA-2's K table is derived from cube roots.
func fractionalWord(x *big.Float) Word {
	floor, _ := x.Int(nil)
	floorF := new(big.Float).SetPrec(bigPrecisionBits).SetInt(floor)
	frac := new(big.Float).SetPrec(bigPrecisionBits).Sub(x, floorF)
	scale := new(big.Float).SetPrec(bigPrecisionBits).SetInt64(1 << 32)
	scaled := new(big.Float).SetPrec(bigPrecisionBits).Mul(frac, scale)
	word, _ := scaled.Uint64()
	return Word(word)
}

// floorMod returns floor(x) mod m for a non-negative big.Float x and a
// positive modulus m, used by penroseIndex to reduce n*phi and n*phi^2
// down to the small residues the original algorithm operates on.
func floorMod(x *big.Float, m int64) int64 {
	floor, _ := x.Int(nil)
	mod := new(big.Int).Mod(floor, big.NewInt(m))
	return mod.Int64()
}
