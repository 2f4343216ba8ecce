// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"unicode/utf8"
)

// An Entry pairs a label, either a symbol or a subtree, with its probability.
type Entry[S comparable] struct {
	Label Label[S]
	Prob  float64
}

// A SplitFunc divides raw input into symbols.
type SplitFunc[S comparable] func([]byte) []S

// SplitRunes splits data into UTF-8 code points.
// Invalid bytes become the replacement character.
func SplitRunes(data []byte) []string {
	syms := make([]string, 0, utf8.RuneCount(data))
	for len(data) > 0 {
		r, n := utf8.DecodeRune(data)
		syms = append(syms, string(r))
		data = data[n:]
	}
	return syms
}

// SplitBytes splits data into single bytes.
func SplitBytes(data []byte) []string {
	syms := make([]string, len(data))
	for i, b := range data {
		syms[i] = string([]byte{b})
	}
	return syms
}

// SplitWords splits data into whitespace-separated words.
func SplitWords(data []byte) []string {
	fields := bytes.Fields(data)
	syms := make([]string, len(fields))
	for i, f := range fields {
		syms[i] = string(f)
	}
	return syms
}

// A Counter accumulates symbol counts, remembering the order in which
// symbols were first seen.
// The zero value is not usable; call [NewCounter].
type Counter[S comparable] struct {
	counts map[S]int
	order  []S
	total  int
}

func NewCounter[S comparable]() *Counter[S] {
	return &Counter[S]{counts: map[S]int{}}
}

// Add counts each of syms.
func (c *Counter[S]) Add(syms ...S) {
	for _, s := range syms {
		if _, ok := c.counts[s]; !ok {
			c.order = append(c.order, s)
		}
		c.counts[s]++
	}
	c.total += len(syms)
}

// Len returns the number of symbols added.
func (c *Counter[S]) Len() int { return c.total }

// Count returns the number of times s was added.
func (c *Counter[S]) Count(s S) int { return c.counts[s] }

// Frequencies returns one entry per distinct symbol, in first-seen order.
// Each probability is the symbol's count divided by [Counter.Len].
func (c *Counter[S]) Frequencies() ([]Entry[S], error) {
	if c.total == 0 {
		return nil, fmt.Errorf("%w: no symbols counted", ErrEmptyInput)
	}
	entries := make([]Entry[S], len(c.order))
	for i, s := range c.order {
		entries[i] = Entry[S]{
			Label: Leaf[S]{Symbol: s},
			Prob:  float64(c.counts[s]) / float64(c.total),
		}
	}
	return entries, nil
}

// AnalyzeFrequencies returns the probability of each distinct symbol in msg,
// in order of first occurrence.
func AnalyzeFrequencies[S comparable](msg []S) ([]Entry[S], error) {
	if len(msg) == 0 {
		return nil, fmt.Errorf("%w: empty message", ErrEmptyInput)
	}
	c := NewCounter[S]()
	c.Add(msg...)
	return c.Frequencies()
}

// SortEntries returns a copy of entries ordered by descending probability.
// Entries with equal probability keep their relative order.
func SortEntries[S comparable](entries []Entry[S]) []Entry[S] {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry[S]) int {
		return cmp.Compare(b.Prob, a.Prob)
	})
	return sorted
}
