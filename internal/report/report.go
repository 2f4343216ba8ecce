// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Package report renders a Huffman analysis for a terminal.
package report

import (
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	huffman "github.com/jba/huffcoder"
	"github.com/muesli/termenv"
)

// Options control rendering.
type Options struct {
	Precision     int    // decimal places for metrics
	FreqPrecision int    // decimal places for probabilities
	Separator     string // placed between symbols of the message
	ShowDecoded   bool
	ShowPacked    bool
}

// NewOutput returns a termenv output for w.
// color is "always", "never" or "auto"; auto asks the terminal.
func NewOutput(w io.Writer, color string) *termenv.Output {
	switch color {
	case "always":
		return termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI256))
	case "never":
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}

// Write renders r to out.
func Write(out *termenv.Output, r *huffman.Report[string], opts Options) error {
	var sb strings.Builder
	line := func(label, value string) {
		l := out.String(label + ":").Bold().Foreground(out.Color("#818cf8"))
		fmt.Fprintf(&sb, "%s %s\n", l, value)
	}

	line("Message", strings.Join(r.Message, opts.Separator))
	line("Frequencies", frequencies(r.Frequencies, opts.FreqPrecision))
	line("Huffman tree", r.Tree.String())
	line("Codebook", codebook(r.Codebook))
	line("Entropy", Round(r.Entropy, opts.Precision))
	line("Average info", Round(r.AverageCodeLength, opts.Precision))
	line("Encoded message", r.Encoded)
	line("Compression ratio", Round(r.CompressionRatio, opts.Precision))
	if opts.ShowDecoded {
		line("Decoded message", strings.Join(r.Decoded, opts.Separator))
	}
	if opts.ShowPacked {
		packed, err := huffman.Pack(r.Encoded)
		if err != nil {
			return err
		}
		line("Packed", fmt.Sprintf("%s (%d bytes)", hex.EncodeToString(packed), len(packed)))
	}
	_, err := io.WriteString(out, sb.String())
	return err
}

// Round formats x rounded to prec decimal places, without trailing zeros.
func Round(x float64, prec int) string {
	p := math.Pow10(prec)
	return strconv.FormatFloat(math.Round(x*p)/p, 'f', -1, 64)
}

func frequencies(entries []huffman.Entry[string], prec int) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("(%s, %s)", label(e.Label), Round(e.Prob, prec))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func label(l huffman.Label[string]) string {
	if leaf, ok := l.(huffman.Leaf[string]); ok {
		return strconv.Quote(leaf.Symbol)
	}
	return l.String()
}

// codebook lists entries in code order.
func codebook(cb huffman.Codebook[string]) string {
	syms := cb.Symbols()
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = fmt.Sprintf("%s: %s", strconv.Quote(s), cb[s])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
