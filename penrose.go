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
// github.com:faustodas-afk/harmonia/penrose.go

package harmonia

import "math/big"

// penroseTableSize covers every n the round functions pass to PenroseIndex:
// message-schedule indices up to 63, exchange-quasi-periodic's r+i up to
// roughly 70, and finalization's i up to 7. Building the quasicrystal
// rotation table at init time uses larger n (up to 660), which PenroseIndex
// computes directly.
const penroseTableSize = 128

var penroseTable [penroseTableSize]Word

func init() {
	phi := phiBig()
	phi2 := new(big.Float).SetPrec(bigPrecisionBits).Mul(phi, phi)
	for n := 0; n < penroseTableSize; n++ {
		nBig := new(big.Float).SetPrec(bigPrecisionBits).SetInt64(int64(n))
		x := floorMod(new(big.Float).SetPrec(bigPrecisionBits).Mul(nBig, phi), 256)
		y := floorMod(new(big.Float).SetPrec(bigPrecisionBits).Mul(nBig, phi2), 256)
		penroseTable[n] = Word((x ^ y) % 32)
	}
}

// PenroseIndex computes the small quasi-periodic integer
// (floor(n*phi) xor floor(n*phi^2)) mod 32 that gives the construction its
// Penrose-tiling flavor. Double-precision hardware floats are a portability
// hazard for this kind of irrational-multiple arithmetic, so the small n
// values actually used are precomputed once via math/big into penroseTable.
func PenroseIndex(n int) Word {
	if n >= 0 && n < penroseTableSize {
		return penroseTable[n]
	}
	// Fallback for an n outside the precomputed range: compute it directly
	// rather than index out of bounds. The round functions stay inside
	// penroseTableSize; the quasicrystal rotation table's init takes this
	// path for its larger indices.
	phi := phiBig()
	phi2 := new(big.Float).SetPrec(bigPrecisionBits).Mul(phi, phi)
	nBig := new(big.Float).SetPrec(bigPrecisionBits).SetInt64(int64(n))
	x := floorMod(new(big.Float).SetPrec(bigPrecisionBits).Mul(nBig, phi), 256)
	y := floorMod(new(big.Float).SetPrec(bigPrecisionBits).Mul(nBig, phi2), 256)
	return Word((x ^ y) % 32)
}

// quasicrystalRotationRows/Cols are the dimensions of the quasicrystal
// rotation lookup table.
const (
	quasicrystalRotationRows = 66
	quasicrystalRotationCols = 10
)

var quasicrystalRotations [quasicrystalRotationRows][quasicrystalRotationCols]uint8

func init() {
	// Every entry must land in 1..21 (never 0, never >=32). Deriving it
	// from PenroseIndex keeps the
	// table's provenance inside the same quasi-periodic family as the rest
	// of the construction instead of an arbitrary magic-number array.
	for r := 0; r < quasicrystalRotationRows; r++ {
		for i := 0; i < quasicrystalRotationCols; i++ {
			v := PenroseIndex(r*quasicrystalRotationCols+i+1) % 21
			quasicrystalRotations[r][i] = uint8(v + 1)
		}
	}
}

// QCRot returns the quasicrystal rotation amount at row r mod 66, column i
// mod 10 of the rotation table, a value in 1..21.
func QCRot(r, i int) uint {
	r %= quasicrystalRotationRows
	if r < 0 {
		r += quasicrystalRotationRows
	}
	i %= quasicrystalRotationCols
	if i < 0 {
		i += quasicrystalRotationCols
	}
	return uint(quasicrystalRotations[r][i])
}
