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
// github.com:faustodas-afk/harmonia/harmonia_test.go

package harmonia_test

import (
	"bytes"
	"testing"

	"github.com/faustodas-afk/harmonia"
)

func Test_RotateRoundTrip(t *testing.T) {
	for _, x := range []harmonia.Word{0, 1, 0xFFFFFFFF, 0xDEADBEEF, 0x01020304} {
		for n := uint(0); n < 32; n++ {
			got := harmonia.RotR(harmonia.RotL(x, n), n)
			if got != x {
				t.Errorf("RotR(RotL(%#x, %d), %d) = %#x, want %#x", x, n, n, got, x)
			}
		}
	}
}

func Test_RotateZero(t *testing.T) {
	if got := harmonia.RotL(0x12345678, 0); got != 0x12345678 {
		t.Errorf("RotL(x, 0) = %#x, want x unchanged", got)
	}
	if got := harmonia.RotL(0x12345678, 32); got != 0x12345678 {
		t.Errorf("RotL(x, 32) = %#x, want x unchanged (32 reduces to 0)", got)
	}
}

func Test_PenroseIndexDeterministic(t *testing.T) {
	for _, n := range []int{0, 1, 63, 127, 128, 200, 1000} {
		a := harmonia.PenroseIndex(n)
		b := harmonia.PenroseIndex(n)
		if a != b {
			t.Errorf("PenroseIndex(%d) not deterministic: %#x != %#x", n, a, b)
		}
	}
}

func Test_QCRotInRange(t *testing.T) {
	for r := -5; r < 80; r++ {
		for i := -3; i < 15; i++ {
			rot := harmonia.QCRot(r, i)
			if rot < 1 || rot > 21 {
				t.Errorf("QCRot(%d, %d) = %d, want in [1, 21]", r, i, rot)
			}
		}
	}
}

func Test_FibonacciWordStructure(t *testing.T) {
	// The Fibonacci word is built from the substitution 1->[1 0], 0->[1],
	// starting from [1]; it must never contain two consecutive 0s, a
	// signature property of Sturmian / Fibonacci words.
	for i := 1; i < len(harmonia.FibonacciWord); i++ {
		if harmonia.FibonacciWord[i] == 0 && harmonia.FibonacciWord[i-1] == 0 {
			t.Fatalf("FibonacciWord has consecutive zeros at index %d", i)
		}
	}
}

func Test_ConstantsAreDistinctAcrossStreams(t *testing.T) {
	overlap := 0
	for _, phi := range harmonia.PhiConstants {
		for _, recip := range harmonia.ReciprocalConstants {
			if phi == recip {
				overlap++
			}
		}
	}
	if overlap == len(harmonia.PhiConstants)*len(harmonia.ReciprocalConstants) {
		t.Fatal("PhiConstants and ReciprocalConstants are identical tables")
	}
}

func Test_NewDigestRoundTrip(t *testing.T) {
	words := [8]harmonia.Word{1, 2, 3, 4, 5, 6, 7, 8}
	d := harmonia.NewDigest(words)
	if len(d.Bytes()) != harmonia.DigestBytes {
		t.Fatalf("len(Bytes()) = %d, want %d", len(d.Bytes()), harmonia.DigestBytes)
	}
	if len(d.String()) != harmonia.DigestBytes*2 {
		t.Fatalf("len(String()) = %d, want %d", len(d.String()), harmonia.DigestBytes*2)
	}
	want := "0000000100000002000000030000000400000005000000060000000700000008"
	if d.String() != want[:64] {
		t.Errorf("String() = %q, want %q", d.String(), want[:64])
	}
}

// Test_ContextBuffersAndCompresses exercises Context's incremental
// buffering logic directly, independent of any variant, using a trivial
// compress function that just counts blocks and a finalize that reports
// the count.
func Test_ContextBuffersAndCompresses(t *testing.T) {
	var blocksSeen int
	compress := func(state *harmonia.DualState, block []byte) {
		blocksSeen++
		state.G[0] += harmonia.Word(len(block))
	}
	finalize := func(state harmonia.DualState) harmonia.Digest {
		return harmonia.NewDigest(state.G)
	}

	ctx := harmonia.NewContext(harmonia.DualState{}, compress, finalize)
	data := bytes.Repeat([]byte{0x42}, harmonia.BlockBytes*3+10)
	n, err := ctx.Write(data)
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if n != len(data) {
		t.Fatalf("Write returned n=%d, want %d", n, len(data))
	}
	if blocksSeen != 3 {
		t.Fatalf("compress invoked for %d full blocks, want 3", blocksSeen)
	}

	_ = ctx.Sum()
	// Sum() pads and compresses the remaining partial block (plus, if the
	// length encoding doesn't fit, one more), so at least one additional
	// block must have been compressed.
	if blocksSeen <= 3 {
		t.Fatalf("Sum() did not compress the final padded block(s): blocksSeen=%d", blocksSeen)
	}
}

func Test_ContextResetAfterSum(t *testing.T) {
	compress := func(state *harmonia.DualState, block []byte) {}
	finalize := func(state harmonia.DualState) harmonia.Digest {
		return harmonia.NewDigest(state.G)
	}
	ctx := harmonia.NewContext(harmonia.DualState{G: [8]harmonia.Word{9}}, compress, finalize)
	_, _ = ctx.Write([]byte("some data"))
	first := ctx.Sum()
	second := ctx.Sum()
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("Sum() after reset-on-finalize did not return to the initial chaining value: %s != %s", first, second)
	}
}
