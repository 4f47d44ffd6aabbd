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
// github.com:faustodas-afk/harmonia/fast/hash.go

package fast

import (
	"errors"
	"io"

	"github.com/faustodas-afk/harmonia"
)

// Hasher is Fast's incremental interface, identical in shape to v2.Hasher
// and ng.Hasher.
type Hasher interface {
	io.Writer
	Hash() harmonia.Digest
	Reset()
}

type hasher struct {
	ctx *harmonia.Context
}

// initialState is HARMONIA-Fast's initial chaining value, shared with v2's:
// G from the first 8 phi-derived constants, C from the first 8
// 1/phi-derived ones.
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

// SelfTest is a placeholder: the published known-answer vectors cover v2
// and NG only, since Fast is explicitly not required to interoperate
// with either of them. There is therefore no embedded known-answer
// vector to self-test against for this variant; SelfTest reports that
// rather than silently succeeding against nothing.
func SelfTest() error {
	return errNoVectors
}

var errNoVectors = errors.New(
	"harmonia/fast: no published test vectors for this variant (known-answer vectors exist for v2 and NG only)")
