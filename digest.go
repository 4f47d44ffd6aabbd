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
// github.com:faustodas-afk/harmonia/digest.go

package harmonia

import "encoding/hex"

// Digest is a finalized HARMONIA hash value, shared by every variant.
type Digest interface {
	Bytes() []byte
	String() string
}

type digest struct {
	bytes [DigestBytes]byte
}

// NewDigest wraps 8 big-endian chaining words into a Digest, as produced by
// a variant's finalization step.
func NewDigest(words [8]Word) Digest {
	d := digest{}
	for i, w := range words {
		d.bytes[4*i] = byte(w >> 24)
		d.bytes[4*i+1] = byte(w >> 16)
		d.bytes[4*i+2] = byte(w >> 8)
		d.bytes[4*i+3] = byte(w)
	}
	return d
}

func (d digest) Bytes() []byte {
	return d.bytes[:]
}

func (d digest) String() string {
	return hex.EncodeToString(d.bytes[:])
}
