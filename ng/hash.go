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
// github.com:faustodas-afk/harmonia/ng/hash.go

package ng

import (
	"io"

	"github.com/faustodas-afk/harmonia"
)

// Hasher is NG's incremental interface, identical in shape to v2.Hasher.
type Hasher interface {
	io.Writer
	Hash() harmonia.Digest
	Reset()
}

type hasher struct {
	ctx *harmonia.Context
}

// initialState is HARMONIA-NG's initial chaining value: the
// SHA-256-style fractional-root golden stream and the golden-ratio-derived
// complementary stream.
func initialState() harmonia.DualState {
	return harmonia.DualState{G: harmonia.InitialHashG, C: harmonia.InitialHashC}
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

// OneShot hashes data in a single call.
func OneShot(data []byte) harmonia.Digest {
	h := New()
	_, _ = h.Write(data)
	return h.Hash()
}

// Hex hashes data and returns its 64-character lowercase hex digest.
func Hex(data []byte) string {
	return OneShot(data).String()
}

// selfTestVectors are the NG known-answer pairs this implementation publishes.
var selfTestVectors = []harmonia.TestVector{
	{Name: "empty", Input: []byte(""), Want: "f0861e3ad1a2a438b4ceea78d14f21074dcd712b073917b28d7ae7fad8f6a562"},
	{Name: "Harmonia", Input: []byte("Harmonia"), Want: "11cd23650f8fd4818848bc6f09da18b06403ed6f5250447c5d1036730cb8987c"},
	{Name: "lazy dog", Input: []byte("The quick brown fox jumps over the lazy dog"), Want: "05a015d792c2146a00d941ba342e0dbb219ff7ef6da48d05caf8310d3c844172"},
	{Name: "HARMONIA-NG", Input: []byte("HARMONIA-NG"), Want: "6d310650be2092be611cf35ea8dcc46b8199a3f6299398fa68dcf73f80f8a334"},
}

// SelfTest hashes the embedded known-answer vectors and reports a
// *harmonia.SelfTestError for the first mismatch, if any. See
// v2.SelfTest's doc comment (and DESIGN.md OQ-1) for why a mismatch is
// expected against this package's reconstructed constant tables.
func SelfTest() error {
	return harmonia.RunSelfTest(selfTestVectors, OneShot)
}
