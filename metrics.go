// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

import (
	"fmt"
	"math"
)

// Entropy returns the Shannon entropy of the distribution, in bits per symbol.
// Entries with zero probability contribute nothing.
func Entropy[S comparable](entries []Entry[S]) float64 {
	var h float64
	for _, e := range entries {
		if e.Prob > 0 {
			h -= e.Prob * math.Log2(e.Prob)
		}
	}
	return h
}

// AverageCodeLength returns the expected code length in bits per symbol.
// Every entry must be a [Leaf] whose symbol is in cb.
func AverageCodeLength[S comparable](entries []Entry[S], cb Codebook[S]) (float64, error) {
	var avg float64
	for _, e := range entries {
		leaf, ok := e.Label.(Leaf[S])
		if !ok {
			return 0, fmt.Errorf("%w: entry %v is not a symbol", ErrUnknownSymbol, e.Label)
		}
		code, ok := cb[leaf.Symbol]
		if !ok {
			return 0, fmt.Errorf("%w: %v", ErrUnknownSymbol, leaf.Symbol)
		}
		avg += e.Prob * float64(len(code))
	}
	return avg, nil
}

// CompressionRatio returns messageLen/bitLen: the number of symbols per
// encoded bit. It is relative to a baseline of one unit per symbol, not to
// any byte size. It returns 0 if bitLen is not positive.
func CompressionRatio(messageLen, bitLen int) float64 {
	if bitLen <= 0 {
		return 0
	}
	return float64(messageLen) / float64(bitLen)
}
