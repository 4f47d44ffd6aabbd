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
// github.com:faustodas-afk/harmonia/safe/pool.go

// Package safe provides a channel-based pool for hashing many independent
// inputs concurrently. Distinct hashing contexts may be used concurrently
// from different goroutines without synchronization, since each carries
// its own state; this package turns that guarantee into a reusable worker
// pool, so callers needing throughput over many messages (e.g. an
// avalanche sanity check that hashes many single-bit-flip variants of a
// message) don't need to hand-roll a goroutine/channel fan-out every time.
package safe

import "sync"

// Hasher is the minimal one-shot hashing function a Pool fans jobs out to.
// v2.OneShot, fast.OneShot and ng.OneShot return harmonia.Digest, so they
// are passed in through a small wrapper returning Digest.
type Hasher func(data []byte) Digest

// Digest is the minimal surface a Pool needs from a variant's digest type.
type Digest interface {
	Bytes() []byte
}

// Job pairs an input with a caller-supplied identifier so results can be
// matched back up once they arrive out of submission order.
type Job struct {
	ID   int
	Data []byte
}

// Result is a completed Job's digest.
type Result struct {
	ID     int
	Digest Digest
}

// Pool runs a fixed number of goroutines, each repeatedly pulling a Job
// off the input channel and hashing it with its own call into Hasher --
// never sharing a hashing context between goroutines.
type Pool struct {
	hash    Hasher
	workers int
}

// New returns a Pool of the given width that hashes jobs with hash. A
// workers value <= 0 is treated as 1.
func New(hash Hasher, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{hash: hash, workers: workers}
}

// Run hashes every job in jobs across the pool's workers and returns their
// results. Results are returned in the same order as jobs, regardless of
// which worker or in what order they actually completed. Each Result's ID
// is its job's index in jobs; any ID the caller set on a Job is ignored.
func (p *Pool) Run(jobs []Job) []Result {
	results := make([]Result, len(jobs))

	in := make(chan Job)
	var wg sync.WaitGroup
	wg.Add(p.workers)
	for w := 0; w < p.workers; w++ {
		go func() {
			defer wg.Done()
			for job := range in {
				results[job.ID] = Result{ID: job.ID, Digest: p.hash(job.Data)}
			}
		}()
	}

	for i, job := range jobs {
		job.ID = i
		in <- job
	}
	close(in)
	wg.Wait()

	return results
}

// Channel starts the pool draining jobs from an already-open channel and
// returns a channel of results, closed once jobs is closed and every
// in-flight job has completed. This is the channel-native counterpart to
// Run, for callers that are themselves producing jobs incrementally rather
// than holding the whole batch in memory up front.
func Channel(hash Hasher, workers int, jobs <-chan Job) <-chan Result {
	if workers <= 0 {
		workers = 1
	}
	out := make(chan Result)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for job := range jobs {
				out <- Result{ID: job.ID, Digest: hash(job.Data)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
