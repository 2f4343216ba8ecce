// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// A Codebook maps each symbol to its code, a string of '0' and '1' bytes.
type Codebook[S comparable] map[S]string

// DeriveCodebook assigns a code to every leaf of tree.
// Codes in the first child's subtree start with '0' and codes in the
// second child's subtree start with '1'.
//
// A tree that is a single [Leaf] has no paths; its symbol gets the code "0"
// so that every symbol is encoded with at least one bit.
func DeriveCodebook[S comparable](tree Label[S]) (Codebook[S], error) {
	cb := Codebook[S]{}
	if leaf, ok := tree.(Leaf[S]); ok {
		cb[leaf.Symbol] = "0"
		return cb, nil
	}
	if err := cb.walk(tree, nil); err != nil {
		return nil, err
	}
	return cb, nil
}

func (cb Codebook[S]) walk(l Label[S], path []byte) error {
	switch l := l.(type) {
	case Leaf[S]:
		if _, ok := cb[l.Symbol]; ok {
			return fmt.Errorf("%w: symbol %v appears more than once", ErrInvalidTree, l.Symbol)
		}
		cb[l.Symbol] = string(path)
		return nil
	case *Node[S]:
		if l == nil {
			return fmt.Errorf("%w: nil node at path %q", ErrInvalidTree, path)
		}
		if len(l.Children) != 2 {
			return fmt.Errorf("%w: node at path %q has %d children, want 2", ErrInvalidTree, path, len(l.Children))
		}
		for i, c := range l.Children {
			if err := cb.walk(c, append(path, '0'+byte(i))); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: missing label at path %q", ErrInvalidTree, path)
	}
}

// Invert returns the mapping from code to symbol.
// It fails with [ErrAmbiguousCodebook] if two symbols have the same code.
func (cb Codebook[S]) Invert() (map[string]S, error) {
	inv := make(map[string]S, len(cb))
	for s, code := range cb {
		if prev, ok := inv[code]; ok {
			return nil, fmt.Errorf("%w: %v and %v both have code %q", ErrAmbiguousCodebook, prev, s, code)
		}
		inv[code] = s
	}
	return inv, nil
}

// PrefixFree reports whether no code is empty and no code is a prefix of
// another.
func (cb Codebook[S]) PrefixFree() bool {
	codes := slices.Sorted(maps.Values(cb))
	for i, c := range codes {
		if c == "" {
			return false
		}
		// In sorted order, a code that prefixes any other prefixes its successor.
		if i+1 < len(codes) && strings.HasPrefix(codes[i+1], c) {
			return false
		}
	}
	return true
}

// MaxLen returns the length of the longest code.
func (cb Codebook[S]) MaxLen() int {
	n := 0
	for _, code := range cb {
		n = max(n, len(code))
	}
	return n
}

// Symbols returns the symbols of cb ordered by code.
func (cb Codebook[S]) Symbols() []S {
	syms := slices.Collect(maps.Keys(cb))
	slices.SortFunc(syms, func(a, b S) int {
		return strings.Compare(cb[a], cb[b])
	})
	return syms
}
