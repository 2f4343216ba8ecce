// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// symbols returns the leaf symbols of entries, in order.
func symbols[S comparable](t *testing.T, entries []Entry[S]) []S {
	t.Helper()
	var syms []S
	for _, e := range entries {
		leaf, ok := e.Label.(Leaf[S])
		require.True(t, ok, "label %v is not a leaf", e.Label)
		syms = append(syms, leaf.Symbol)
	}
	return syms
}

func TestAnalyzeFrequencies(t *testing.T) {
	entries, err := AnalyzeFrequencies(SplitRunes([]byte("hot-diggity-dog")))
	require.NoError(t, err)
	assert.Equal(t, []string{"h", "o", "t", "-", "d", "i", "g", "y"}, symbols(t, entries))

	var sum float64
	for _, e := range entries {
		assert.Greater(t, e.Prob, 0.0)
		sum += e.Prob
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.InDelta(t, 3.0/15, entries[6].Prob, 1e-12)
	assert.InDelta(t, 1.0/15, entries[0].Prob, 1e-12)
}

func TestAnalyzeFrequenciesEmpty(t *testing.T) {
	_, err := AnalyzeFrequencies([]string{})
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = NewCounter[int]().Frequencies()
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestCounter(t *testing.T) {
	c := NewCounter[int]()
	c.Add(3, 1, 3)
	c.Add()
	c.Add(2, 3)
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, 3, c.Count(3))
	assert.Equal(t, 0, c.Count(7))

	entries, err := c.Frequencies()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, symbols(t, entries))
	assert.InDelta(t, 0.6, entries[0].Prob, 1e-12)
}

func TestSortEntries(t *testing.T) {
	t.Run("ties keep first-seen order", func(t *testing.T) {
		entries, err := AnalyzeFrequencies(SplitRunes([]byte("abab")))
		require.NoError(t, err)
		sorted := SortEntries(entries)
		assert.Equal(t, []string{"a", "b"}, symbols(t, sorted))
	})
	t.Run("descending", func(t *testing.T) {
		entries, err := AnalyzeFrequencies(SplitRunes([]byte("hot-diggity-dog")))
		require.NoError(t, err)
		sorted := SortEntries(entries)
		assert.Equal(t, []string{"g", "o", "t", "-", "d", "i", "h", "y"}, symbols(t, sorted))
		// The input is left alone.
		assert.Equal(t, []string{"h", "o", "t", "-", "d", "i", "g", "y"}, symbols(t, entries))
	})
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, SortEntries[string](nil))
	})
}

func TestSplit(t *testing.T) {
	for _, test := range []struct {
		name  string
		split SplitFunc[string]
		in    string
		want  []string
	}{
		{"runes", SplitRunes, "héllo", []string{"h", "é", "l", "l", "o"}},
		{"bytes", SplitBytes, "hé", []string{"h", "\xc3", "\xa9"}},
		{"words", SplitWords, "  the cat\tthe\n", []string{"the", "cat", "the"}},
		{"empty", SplitRunes, "", []string{}},
	} {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.split([]byte(test.in)))
		})
	}
}
