// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Package huffman builds Huffman codes for messages over an arbitrary
// alphabet and uses them to encode and decode those messages.
//
// The pipeline is
//
//	msg -> AnalyzeFrequencies -> BuildTree -> DeriveCodebook -> Encode/Decode
//
// and [Analyze] runs all of it at once. Encoded messages are strings of
// '0' and '1' bytes; [Pack] turns them into bytes.
package huffman

import (
	"fmt"
	"strings"
)

// Encode returns the concatenated codes of the symbols of msg.
func Encode[S comparable](msg []S, cb Codebook[S]) (string, error) {
	e := NewEncoder(cb)
	e.AddSymbols(msg)
	return e.Bits()
}

// An Encoder encodes symbols with a [Codebook].
type Encoder[S comparable] struct {
	cb  Codebook[S]
	sb  strings.Builder
	n   int // symbols added
	err error
}

func NewEncoder[S comparable](cb Codebook[S]) *Encoder[S] {
	return &Encoder[S]{cb: cb}
}

// AddSymbol appends the code for s.
// It is an error if s is not in the Encoder's [Codebook].
func (e *Encoder[S]) AddSymbol(s S) {
	if e.err != nil {
		return
	}
	code, ok := e.cb[s]
	if !ok {
		e.err = fmt.Errorf("%w: %v at position %d", ErrUnknownSymbol, s, e.n)
		return
	}
	e.sb.WriteString(code)
	e.n++
}

func (e *Encoder[S]) AddSymbols(syms []S) {
	for _, s := range syms {
		if e.err != nil {
			return
		}
		e.AddSymbol(s)
	}
}

// Bits returns the bits constructed from the calls to the AddXXX methods,
// along with the first error encountered while adding.
func (e *Encoder[S]) Bits() (string, error) {
	if e.err != nil {
		return "", e.err
	}
	return e.sb.String(), nil
}

// Len returns the number of bits encoded so far.
func (e *Encoder[S]) Len() int { return e.sb.Len() }

// Err returns the first error encountered from adding data, if any.
func (e *Encoder[S]) Err() error { return e.err }

// Reset restores the Encoder to its initial state.
func (e *Encoder[S]) Reset() {
	e.sb.Reset()
	e.n = 0
	e.err = nil
}

// Decode decodes bits, which must have been produced by encoding with cb.
func Decode[S comparable](bits string, cb Codebook[S]) ([]S, error) {
	d, err := NewDecoder(cb)
	if err != nil {
		return nil, err
	}
	return d.Decode(bits)
}

// A Decoder decodes data encoded by an Encoder.
// It holds no per-stream state, so one Decoder can decode any number of
// bit strings.
type Decoder[S comparable] struct {
	codes  map[string]S
	maxLen int
}

// NewDecoder returns a Decoder for cb.
// It fails with [ErrAmbiguousCodebook] if two symbols share a code.
func NewDecoder[S comparable](cb Codebook[S]) (*Decoder[S], error) {
	codes, err := cb.Invert()
	if err != nil {
		return nil, err
	}
	return &Decoder[S]{codes: codes, maxLen: cb.MaxLen()}, nil
}

// Decode reads bits from left to right, emitting a symbol each time the
// bits read since the last symbol form a code.
func (d *Decoder[S]) Decode(bits string) ([]S, error) {
	var out []S
	start := 0 // start of the pending code
	for i := 0; i < len(bits); i++ {
		if b := bits[i]; b != '0' && b != '1' {
			return out, fmt.Errorf("%w: invalid bit %q at offset %d", ErrUndecodableStream, b, i)
		}
		if i+1-start > d.maxLen {
			return out, fmt.Errorf("%w: no code matches bits %d-%d", ErrUndecodableStream, start, i)
		}
		if s, ok := d.codes[bits[start:i+1]]; ok {
			out = append(out, s)
			start = i + 1
		}
	}
	if start < len(bits) {
		return out, fmt.Errorf("%w: %d trailing bits %q", ErrUndecodableStream, len(bits)-start, bits[start:])
	}
	return out, nil
}
