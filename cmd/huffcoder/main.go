// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Command huffcoder builds a Huffman code for a message and reports the
// code, the encoded message and how close the code comes to the entropy.
//
// Usage:
//
//	huffcoder [flags] [message]
//
// With no message argument, huffcoder prompts for one on a terminal or
// reads standard input otherwise.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
