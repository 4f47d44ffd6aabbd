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
// github.com:faustodas-afk/harmonia/cmd/harmonia/main.go

// Command harmonia is the test/benchmark driver for the HARMONIA hash
// family: --test runs the self-test against the embedded known-answer
// vectors, --benchmark prints throughput per block size, and a raw string
// argument prints that string's digest.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/faustodas-afk/harmonia"
	"github.com/faustodas-afk/harmonia/fast"
	"github.com/faustodas-afk/harmonia/ng"
	"github.com/faustodas-afk/harmonia/v2"
)

type variant struct {
	name     string
	oneShot  func([]byte) harmonia.Digest
	selfTest func() error
}

var variants = map[string]variant{
	"v2":   {"v2", v2.OneShot, v2.SelfTest},
	"fast": {"fast", fast.OneShot, fast.SelfTest},
	"ng":   {"ng", ng.OneShot, ng.SelfTest},
}

func main() {
	runTest := flag.Bool("test", false, "run the self-test against embedded known-answer vectors")
	runBenchmark := flag.Bool("benchmark", false, "print throughput for a range of block sizes")
	variantName := flag.String("variant", "v2", "which HARMONIA variant to use: v2, fast, or ng")
	flag.Parse()

	v, ok := variants[*variantName]
	if !ok {
		log.Fatalf("unknown variant %q (want v2, fast, or ng)", *variantName)
	}

	switch {
	case *runTest:
		if err := v.selfTest(); err != nil {
			fmt.Printf("FAIL: %s\n", err)
			os.Exit(1)
		}
		fmt.Println("PASS")
		return

	case *runBenchmark:
		runBenchmarks(v)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Println("Expected --test, --benchmark, or a string argument to hash.")
		fmt.Println()
		flag.Usage()
		return
	}
	fmt.Println(v.oneShot([]byte(args[0])).String())
}

var benchmarkSizes = []int{64, 1024, 64 * 1024, 1024 * 1024}

func runBenchmarks(v variant) {
	for _, size := range benchmarkSizes {
		data := deterministicFill(size, v.name)

		const iterations = 8
		start := time.Now()
		for i := 0; i < iterations; i++ {
			_ = v.oneShot(data)
		}
		elapsed := time.Since(start)

		bytesPerSec := float64(size*iterations) / elapsed.Seconds()
		fmt.Printf("%s: %8d bytes/block  %10.2f MiB/s\n", v.name, size, bytesPerSec/(1024*1024))
	}
}

// deterministicFill generates size bytes of reproducible filler data for
// benchmarking, by repeatedly hashing a running seed and appending the
// digest. This is strictly local benchmark-payload generation: it is not
// exposed as a public API and must not be mistaken for a streaming XOF
// mode, which is explicitly out of scope for this family.
func deterministicFill(size int, seed string) []byte {
	out := make([]byte, 0, size)
	var counter [8]byte
	block := []byte(seed)
	for len(out) < size {
		binary.BigEndian.PutUint64(counter[:], uint64(len(out)))
		d := v2.OneShot(append(append([]byte{}, block...), counter[:]...))
		out = append(out, d.Bytes()...)
		block = d.Bytes()
	}
	return out[:size]
}
