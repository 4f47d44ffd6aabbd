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
// github.com:faustodas-afk/harmonia/v2/hash.go

package v2

import (
	"io"

	"github.com/faustodas-afk/harmonia"
)

// Hasher is the incremental interface HARMONIA v2.2 exposes, mirroring the
// teacher's sha1.Hasher: an io.Writer that accumulates the absorbed
// stream, plus Hash to finalize and Reset to start over.
type Hasher interface {
	io.Writer
	Hash() harmonia.Digest
	Reset()
}

type hasher struct {
	ctx *harmonia.Context
}

// initialState is HARMONIA v2.2's initial chaining value: G seeded from the
// first 8 phi-derived constants, C from the first 8 1/phi-derived ones.
func initialState() harmonia.DualState {
	var g, c [8]harmonia.Word
	copy(g[:], harmonia.PhiConstants[:8])
	copy(c[:], harmonia.ReciprocalConstants[:8])
	return harmonia.DualState{G: g, C: c}
}

// New returns a fresh Hasher ready to absorb a byte stream.
func New() Hasher {
	return &hasher{ctx: harmonia.NewContext(initialState(), compress, finalize)}
}

func (h *hasher) Write(p []byte) (int, error) {
	return h.ctx.Write(p)
}

func (h *hasher) Hash() harmonia.Digest {
	return h.ctx.Sum()
}

func (h *hasher) Reset() {
	h.ctx.Reset()
}

// OneShot hashes data in a single call, equivalent to New + Write + Hash.
func OneShot(data []byte) harmonia.Digest {
	h := New()
	_, _ = h.Write(data)
	return h.Hash()
}

// Hex hashes data and returns its 64-character lowercase hex digest.
func Hex(data []byte) string {
	return OneShot(data).String()
}

// selfTestVectors are the v2 known-answer pairs this implementation publishes.
var selfTestVectors = []harmonia.TestVector{
	{Name: "empty", Input: []byte(""), Want: "3acc512691bd37d475cec1695d99503b4a3401aa9366b312951ba200190bfe3d"},
	{Name: "Harmonia", Input: []byte("Harmonia"), Want: "5aa5b3bf63ed5d726288f05da3b9ecc419216b260cc780e2435dddf9bf593257"},
	{Name: "lazy dog", Input: []byte("The quick brown fox jumps over the lazy dog"), Want: "39661e930dae99563e597b155d177e331d3016fa65405624c3b2159b9c86b4aa"},
	{Name: "HARMONIA", Input: []byte("HARMONIA"), Want: "4ad655d4614e11f2e839bfa5f0f2cce13bde89ea9327434a941411f21b65fad3"},
	{Name: "abc", Input: []byte("abc"), Want: "a165d969cbc672777da6746c4e1462dead0d2fa7f75a75fef4fb33afd07bc1ff"},
}

// SelfTest hashes the embedded known-answer vectors and reports a
// *harmonia.SelfTestError for the first mismatch, if any. See DESIGN.md
// OQ-1 for why this is expected to report a mismatch rather than PASS: the
// true byte-for-byte quasicrystal rotation table is not recoverable from
// the construction's published description, so this package's tables are
// a deterministic, documented reconstruction rather than a verified copy.
func SelfTest() error {
	return harmonia.RunSelfTest(selfTestVectors, OneShot)
}
