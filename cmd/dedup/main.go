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
// github.com:faustodas-afk/harmonia/cmd/dedup/main.go

package main

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/faustodas-afk/harmonia/ng"
)

// Represents the path and its content's signature (based on HARMONIA-NG).
type Signature struct {
	Content  hash256 `json:"signature"`
	Filepath string  `json:"file_path"`
}

// An object that keeps track of all signatures seen so far and their paths.
// Also tracks whether duplicates should be deleted or not, and the writer that
// receives the duplicate metadata.
type ContentIndex struct {
	index  map[hash256]Signature
	output chan<- Signature
	delete bool
}

// Inspect each file under the input path (indicated by --in-path -- by default,
// the current directory) and record the paths which contain the same content.
// Each duplicate is logged alongside the base64 representation of the
// HARMONIA-NG digest of its bytes (collisions are astronomically unlikely for
// any realistic corpus of files). This "duplicates" metadata is stored in the
// path indicated by --out-file.
//
// Example usage:
//   dedup --delete --in-path . --out-file ../duplicates.jsonl
//
// It is recommended not to use the --delete flag the first time running this
// binary, so that you can more readily see the effect that it would have after
// running, before impacting the source directory.
// This is why the default is --delete=false instead of --delete=true.

func main() {
	inpath := flag.String("in-path", ".", "path to scan for duplicate file contents")
	outpath := flag.String("out-file", "duplicates.jsonl",
		"path to store duplication info")
	delete := flag.Bool("delete", false,
		"also delete duplicate contents from inpath, moving a unique copy to ./saved")

	flag.Parse()
	fmt.Println("inspecting files under " + *inpath)

	// Some examples of ignored file names, add to this if desired,
	// Sometimes files should not be deleted from source even if they're copies.
	ignored := []string{
		".gitignore",
	}

	cas := newContentIndex(*outpath, *delete)
	err := filepath.WalkDir(*inpath,
		func(path string, entry fs.DirEntry, err error) error {
			if entry.IsDir() {
				return nil
			}
			if err != nil {
				log.Fatal(err)
			}
			for _, ignoreName := range ignored {
				if entry.Name() == ignoreName {
					return nil
				}
			}
			err = cas.addToIndex(path)
			return err
		})
	if err != nil {
		fmt.Println(err)
	}
}

type hash256 string

func bytesToBase64(bytes []byte) hash256 {
	return hash256(base64.StdEncoding.EncodeToString(bytes))
}

func newContentIndex(outpath string, deleteDuplicates bool) *ContentIndex {
	index := ContentIndex{
		make(map[hash256]Signature),
		newWriter(outpath),
		deleteDuplicates}
	return &index
}

// Compute the signature of the contents found at `path` and store/append to
// the entry in `index` as well as the corresponding file for tracking
// duplicates.
func (index *ContentIndex) addToIndex(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	digest := ng.OneShot(data)

	sig256 := bytesToBase64(digest.Bytes())
	signature, exists := index.index[sig256]
	if !exists {
		// First time this signature was found; record it and move on.
		signature = Signature{sig256, path}
		index.index[sig256] = signature
		return nil
	}

	// Otherwise, this signature was found already -- record the duplicate.
	basepath := filepath.Base(signature.Filepath)

	if signature.Filepath != basepath {
		if index.delete {
			savedpath := filepath.Join(".", "saved", basepath)
			os.Rename(signature.Filepath, savedpath)
			index.output <- Signature{sig256, basepath}
			os.Remove(path)
		}
		index.output <- signature
		signature.Filepath = basepath
		index.index[sig256] = signature
	} else if index.delete {
		os.Remove(path)
	}

	index.output <- Signature{sig256, path}
	return nil
}

// Creates a signature writer in json-lines format (thread-safe/goroutine-safe).
func newWriter(outpath string) chan<- Signature {
	file, err := os.Create(outpath)
	if err != nil {
		log.Fatal(err)
	}
	channel := make(chan Signature)
	go func() {
		defer file.Close()
		writer := bufio.NewWriter(file)

		for sig := range channel {
			bytes, err := json.Marshal(sig)
			if err != nil {
				fmt.Printf("%s error:\n   %s\n", sig.Filepath, err)
				continue
			}
			writer.Write(bytes)
			writer.WriteByte('\n')
			writer.Flush()
		}
		writer.Flush()
	}()

	return channel
}
