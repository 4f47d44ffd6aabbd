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
// github.com:faustodas-afk/harmonia/context.go

package harmonia

import "encoding/binary"

// CompressFunc consumes one 64-byte block and mutates the chaining value in
// place (Davies-Meyer feed-forward happens inside, per variant).
type CompressFunc func(state *DualState, block []byte)

// FinalizeFunc fuses the two streams of a (copy of the) chaining value into
// a 32-byte digest.
type FinalizeFunc func(state DualState) Digest

// Context is the generic Merkle-Damgard incremental framing shared by every
// HARMONIA variant: it owns the chaining value, the up-to-one-block
// buffer, and the running byte count, and knows nothing about a particular
// variant's round structure beyond its CompressFunc/FinalizeFunc.
//
// A Context is not safe for concurrent use; concurrent callers need
// distinct contexts (see package safe for a pool built on exactly that
// guarantee).
type Context struct {
	iv       DualState
	state    DualState
	buffer   [BlockBytes]byte
	bufLen   int
	totalLen uint64
	compress CompressFunc
	finalize FinalizeFunc
}

// NewContext initializes a Context with the given initial chaining value
// and variant-specific compression/finalization functions.
func NewContext(iv DualState, compress CompressFunc, finalize FinalizeFunc) *Context {
	c := &Context{compress: compress, finalize: finalize}
	c.iv = iv
	c.Reset()
	return c
}

// Reset returns the context to its freshly-initialized state, as if
// NewContext had just been called.
func (c *Context) Reset() {
	c.state = c.iv
	for i := range c.buffer {
		c.buffer[i] = 0
	}
	c.bufLen = 0
	c.totalLen = 0
}

// Write absorbs len(p) bytes into the context, buffering up to one block
// and compressing whenever the buffer fills. It never fails, satisfying
// io.Writer.
func (c *Context) Write(p []byte) (int, error) {
	n := len(p)
	c.totalLen += uint64(n)

	if c.bufLen > 0 {
		copied := copy(c.buffer[c.bufLen:], p)
		c.bufLen += copied
		p = p[copied:]
		if c.bufLen == BlockBytes {
			c.compress(&c.state, c.buffer[:])
			c.bufLen = 0
		}
	}

	for len(p) >= BlockBytes {
		c.compress(&c.state, p[:BlockBytes])
		p = p[BlockBytes:]
	}

	if len(p) > 0 {
		copy(c.buffer[:], p)
		c.bufLen = len(p)
	}

	return n, nil
}

// absorbPad appends a single padding byte without touching totalLen, which
// must reflect only bytes passed to Write.
func (c *Context) absorbPad(b byte) {
	c.buffer[c.bufLen] = b
	c.bufLen++
	if c.bufLen == BlockBytes {
		c.compress(&c.state, c.buffer[:])
		c.bufLen = 0
	}
}

// Sum applies Merkle-Damgard padding -- an 0x80 byte, zero bytes until the
// residue is 56 mod 64, then the absorbed bit length as a big-endian
// uint64 -- compresses the resulting final block(s), and returns the
// fused digest. The context is reset afterwards so the underlying
// buffers can be reused for the next message; callers should not rely on
// any other state surviving a call to Sum.
func (c *Context) Sum() Digest {
	bitLen := c.totalLen * 8

	c.absorbPad(0x80)
	for c.bufLen != 56 {
		c.absorbPad(0)
	}

	var lengthBytes [8]byte
	binary.BigEndian.PutUint64(lengthBytes[:], bitLen)
	for _, b := range lengthBytes {
		c.absorbPad(b)
	}

	d := c.finalize(c.state)
	c.Reset()
	return d
}
