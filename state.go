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
// github.com:faustodas-afk/harmonia/state.go

// Package harmonia holds the scaffolding shared by the three HARMONIA
// compression-function variants (v2, fast, ng): the dual-stream state,
// rotation and mixing primitives, constant tables, the per-block structural
// steps, and the Merkle-Damgard incremental framing. The variants live in
// their own sub-packages and each supply only their compression function,
// initial chaining value, and finalization.
package harmonia

// Word is the 32-bit unit all HARMONIA arithmetic operates on.
type Word = uint32

// BlockBytes is the fixed block size in bytes for every variant (512 bits).
const BlockBytes = 64

// BlockWords is the block size in 32-bit words.
const BlockWords = 16

// DigestBytes is the fixed digest size in bytes for every variant (256 bits).
const DigestBytes = 32

// DualState is the pair of independent 8-word streams that every HARMONIA
// variant carries: G (golden) and C (complementary). The two streams evolve
// in parallel through the compression function's rounds and are only fused
// together at finalization.
type DualState struct {
	G [8]Word
	C [8]Word
}

// AddInto performs the Davies-Meyer feed-forward that every variant's
// compression function ends with: out += s, word by word, across both
// streams. s is typically the post-round working state and out the chaining
// value carried in from the previous block.
func (s *DualState) AddInto(out *DualState) {
	for i := 0; i < 8; i++ {
		out.G[i] += s.G[i]
		out.C[i] += s.C[i]
	}
}
