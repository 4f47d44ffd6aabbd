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
// github.com:faustodas-afk/harmonia/safe/pool_test.go

package safe_test

import (
	"bytes"
	"math/bits"
	"testing"

	"github.com/faustodas-afk/harmonia/ng"
	"github.com/faustodas-afk/harmonia/safe"
)

func hashNG(data []byte) safe.Digest {
	return ng.OneShot(data)
}

// Test_PoolMatchesSequential checks that fanning jobs out across a Pool's
// goroutines produces exactly the same digests, in the same order, as
// hashing each job sequentially -- the concurrency must not perturb
// results, since each job gets its own independent hashing context.
func Test_PoolMatchesSequential(t *testing.T) {
	var jobs []safe.Job
	for i := 0; i < 64; i++ {
		jobs = append(jobs, safe.Job{Data: bytes.Repeat([]byte{byte(i)}, i+1)})
	}

	pool := safe.New(hashNG, 8)
	results := pool.Run(jobs)

	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	for i, job := range jobs {
		want := ng.OneShot(job.Data)
		if !bytes.Equal(results[i].Digest.Bytes(), want.Bytes()) {
			t.Errorf("job %d: pool result != sequential hash", i)
		}
	}
}

// Test_ChannelDrainsAllJobs exercises the channel-native entry point with
// a producer goroutine feeding jobs incrementally.
func Test_ChannelDrainsAllJobs(t *testing.T) {
	const n = 32
	jobs := make(chan safe.Job)
	go func() {
		defer close(jobs)
		for i := 0; i < n; i++ {
			jobs <- safe.Job{ID: i, Data: []byte{byte(i)}}
		}
	}()

	seen := make(map[int]bool, n)
	for result := range safe.Channel(hashNG, 4, jobs) {
		if seen[result.ID] {
			t.Fatalf("duplicate result for job %d", result.ID)
		}
		seen[result.ID] = true
	}
	if len(seen) != n {
		t.Fatalf("got %d distinct results, want %d", len(seen), n)
	}
}

// Test_AvalancheSanity is a deliberately small avalanche check: flipping a
// single bit of a fixed 64-byte message should change roughly half of the
// 256 output bits. This does not assert a tight bound -- it is a smoke
// test, not a security claim -- it only checks the Hamming distance lands
// in a broad, clearly-sane band, using the Pool to parallelize the
// per-bit-flip hashing.
func Test_AvalancheSanity(t *testing.T) {
	base := bytes.Repeat([]byte{0x5A}, 64)
	baseDigest := ng.OneShot(base)

	jobs := make([]safe.Job, 0, 8*8)
	for byteIdx := 0; byteIdx < 8; byteIdx++ {
		for bitIdx := 0; bitIdx < 8; bitIdx++ {
			flipped := append([]byte{}, base...)
			flipped[byteIdx] ^= 1 << bitIdx
			jobs = append(jobs, safe.Job{Data: flipped})
		}
	}

	pool := safe.New(hashNG, 4)
	results := pool.Run(jobs)

	for _, r := range results {
		dist := hammingDistance(baseDigest.Bytes(), r.Digest.Bytes())
		if dist < 64 || dist > 192 {
			t.Errorf("hamming distance %d outside sanity band [64,192]", dist)
		}
	}
}

func hammingDistance(a, b []byte) int {
	dist := 0
	for i := range a {
		dist += bits.OnesCount8(a[i] ^ b[i])
	}
	return dist
}
