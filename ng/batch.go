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
// github.com:faustodas-afk/harmonia/ng/batch.go

package ng

import (
	"fmt"

	"github.com/faustodas-afk/harmonia"
)

// LaneCount is the width of HARMONIA-NG's batch hashing API.
const LaneCount = 4

// Batch4 hashes four independent, equal-length messages and returns their
// four digests. The semantics are exactly equivalent to hashing each
// message independently with OneShot; inputs must be equal length and the
// call fails fast otherwise.
//
// The four lanes are absorbed in lock-step, one full block at a time, so
// every lane finishes processing block i before any lane begins block
// i+1 -- four independent copies of the state advanced side by side. Go
// has no portable way to additionally pack each lane's word into a single
// SIMD register, so this lock-step scalar loop over the same
// compress/finalize used by OneShot is the portable fallback and the
// source of truth for this API's output -- not an approximation of some
// other, SIMD-packed result.
func Batch4(msgs [LaneCount][]byte) ([LaneCount]harmonia.Digest, error) {
	var out [LaneCount]harmonia.Digest

	n := len(msgs[0])
	for lane := 1; lane < LaneCount; lane++ {
		if len(msgs[lane]) != n {
			return out, fmt.Errorf("ng: batch4 requires equal-length inputs, got %d and %d bytes",
				n, len(msgs[lane]))
		}
	}

	var lanes [LaneCount]Hasher
	for lane := range lanes {
		lanes[lane] = New()
	}

	offset := 0
	for offset+harmonia.BlockBytes <= n {
		for lane := 0; lane < LaneCount; lane++ {
			_, _ = lanes[lane].Write(msgs[lane][offset : offset+harmonia.BlockBytes])
		}
		offset += harmonia.BlockBytes
	}
	for lane := 0; lane < LaneCount; lane++ {
		_, _ = lanes[lane].Write(msgs[lane][offset:])
	}

	for lane := 0; lane < LaneCount; lane++ {
		out[lane] = lanes[lane].Hash()
	}
	return out, nil
}
