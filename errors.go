// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

import "errors"

// Errors returned by this package. They are usually wrapped with more
// context; test for them with [errors.Is].
var (
	// ErrEmptyInput is returned when a message or frequency list is empty.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrInvalidTree is returned for a tree that is not a full binary tree.
	ErrInvalidTree = errors.New("huffman: invalid tree")

	// ErrAmbiguousCodebook is returned when two symbols share a code.
	ErrAmbiguousCodebook = errors.New("huffman: ambiguous codebook")

	// ErrUnknownSymbol is returned when a symbol has no code.
	ErrUnknownSymbol = errors.New("huffman: unknown symbol")

	// ErrUndecodableStream is returned for a bit string that does not
	// decode to a whole number of symbols.
	ErrUndecodableStream = errors.New("huffman: undecodable stream")
)
