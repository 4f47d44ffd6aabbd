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
// github.com:faustodas-afk/harmonia/v2/schedule.go

// Package v2 implements HARMONIA v2.2, the original 64-round variable-
// rotation variant of the HARMONIA family.
package v2

import (
	"encoding/binary"

	"github.com/faustodas-afk/harmonia"
)

const rounds = 64
const scheduleWords = 64

// buildSchedule expands a 64-byte block into the 64-word message schedule.
func buildSchedule(block []byte) [scheduleWords]harmonia.Word {
	var w [scheduleWords]harmonia.Word
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i : 4*i+4])
	}
	for i := 16; i < scheduleWords; i++ {
		shift := (harmonia.PenroseIndex(i) & 0xF) + 1
		w[i] = harmonia.RotR(w[i-2], harmonia.QCRot(i, 0)) ^
			harmonia.RotL(w[i-7], harmonia.QCRot(i, 1)) ^
			(w[i-15] >> shift) ^
			w[i-16]
	}
	return w
}
