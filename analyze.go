// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

import "slices"

// A Report holds every intermediate and final value of coding one message.
type Report[S comparable] struct {
	Message []S
	// Frequencies is sorted by descending probability.
	Frequencies       []Entry[S]
	Tree              Label[S]
	Codebook          Codebook[S]
	Entropy           float64
	AverageCodeLength float64
	Encoded           string
	CompressionRatio  float64
	Decoded           []S
}

// Analyze builds a Huffman code for msg, encodes msg with it, decodes the
// result and computes the code's metrics.
func Analyze[S comparable](msg []S) (*Report[S], error) {
	freqs, err := AnalyzeFrequencies(msg)
	if err != nil {
		return nil, err
	}
	freqs = SortEntries(freqs)
	tree, err := BuildTree(freqs)
	if err != nil {
		return nil, err
	}
	cb, err := DeriveCodebook(tree)
	if err != nil {
		return nil, err
	}
	avg, err := AverageCodeLength(freqs, cb)
	if err != nil {
		return nil, err
	}
	encoded, err := Encode(msg, cb)
	if err != nil {
		return nil, err
	}
	decoded, err := Decode(encoded, cb)
	if err != nil {
		return nil, err
	}
	return &Report[S]{
		Message:           slices.Clone(msg),
		Frequencies:       freqs,
		Tree:              tree,
		Codebook:          cb,
		Entropy:           Entropy(freqs),
		AverageCodeLength: avg,
		Encoded:           encoded,
		CompressionRatio:  CompressionRatio(len(msg), len(encoded)),
		Decoded:           decoded,
	}, nil
}

// RoundTrips reports whether the decoded message equals the original.
func (r *Report[S]) RoundTrips() bool {
	return slices.Equal(r.Message, r.Decoded)
}
