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
// github.com:faustodas-afk/harmonia/fast/schedule.go

// Package fast implements HARMONIA-Fast, the reduced-round (32-round)
// variant of the HARMONIA family. Fast's schedule is treated as a
// variant of NG's and is not required to interoperate with v2 or NG, so
// its schedule expansion is shared with NG's formula.
package fast

import (
	"encoding/binary"

	"github.com/faustodas-afk/harmonia"
)

const rounds = 32
const scheduleWords = 32

// buildSchedule expands a 64-byte block into Fast's 32-word message
// schedule, using the same expansion formula as HARMONIA-NG: same
// shape, treated as a variant of NG rather than its own construction.
func buildSchedule(block []byte) [scheduleWords]harmonia.Word {
	var w [scheduleWords]harmonia.Word
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i : 4*i+4])
	}
	for i := 16; i < scheduleWords; i++ {
		r1 := uint(7 + (i % 5))
		r2 := uint(17 + (i % 4))

		s0 := harmonia.RotR(w[i-15], r1) ^ harmonia.RotR(w[i-15], r1+11) ^ (w[i-15] >> 3)
		s1 := harmonia.RotR(w[i-2], r2) ^ harmonia.RotR(w[i-2], r2+2) ^ (w[i-2] >> 10)

		w[i] = w[i-16] + s0 + w[i-7] + s1 + harmonia.Fibonacci[i%12]
	}
	return w
}
