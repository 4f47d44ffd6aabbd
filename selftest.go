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
// github.com:faustodas-afk/harmonia/selftest.go

package harmonia

import "fmt"

// TestVector is one embedded known-answer pair a variant's SelfTest checks
// itself against, returning a *SelfTestError on a mismatch.
type TestVector struct {
	Name  string
	Input []byte
	Want  string // lowercase hex
}

// SelfTestError reports a self-test mismatch: which input failed, and the
// expected vs. observed digest. The input is truncated to a reasonable
// preview length so a large failing input doesn't flood the error message.
type SelfTestError struct {
	Name  string
	Input []byte
	Want  string
	Got   string
}

const selfTestInputPreviewLen = 32

func (e *SelfTestError) Error() string {
	input := e.Input
	truncated := false
	if len(input) > selfTestInputPreviewLen {
		input = input[:selfTestInputPreviewLen]
		truncated = true
	}
	suffix := ""
	if truncated {
		suffix = "..."
	}
	return fmt.Sprintf("harmonia: self-test %q failed for input %q%s: want %s, got %s",
		e.Name, input, suffix, e.Want, e.Got)
}

// RunSelfTest hashes every vector's input with oneshot and compares the
// result against the embedded expected hex digest, stopping at the first
// mismatch and reporting it as a *SelfTestError.
func RunSelfTest(vectors []TestVector, oneshot func([]byte) Digest) error {
	for _, v := range vectors {
		got := oneshot(v.Input).String()
		if got != v.Want {
			return &SelfTestError{Name: v.Name, Input: v.Input, Want: v.Want, Got: got}
		}
	}
	return nil
}
