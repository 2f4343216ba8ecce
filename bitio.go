// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// The bit writer is adapted from the standard library's compress/flate package.
// Bits are packed starting at the low-order bit of each byte.

// A bitWriter can write up to 32 bits at a time.
// Full bytes are flushed to its contained [io.Writer].
// Write errors are stored and reported by [bitWriter.Close]
// or [bitWriter.Err].
// If the bitWriter is flushed on a non-byte boundary, the last byte
// is zero-padded on the high side.
type bitWriter struct {
	err error
	w   io.Writer
	// bits is a buffer of unwritten bits.
	// Only the low-order 32 bits are valid between calls to writeBits,
	// and those bytes are stored in reverse order: byte 3 | byte 2 | byte 1 | byte 0.
	bits  uint64
	nbits int // number of bits in bits; always <= 32
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{w: w}
}

// writeBits writes the n low-order bits of b, low bit first.
func (w *bitWriter) writeBits(b uint32, n int) {
	if w.err != nil {
		return
	}
	w.bits |= uint64(b) << w.nbits
	w.nbits += n
	if w.nbits > 32 {
		var buf [4]byte
		buf[0] = byte(w.bits)
		buf[1] = byte(w.bits >> 8)
		buf[2] = byte(w.bits >> 16)
		buf[3] = byte(w.bits >> 24)
		w.bits >>= 32
		w.nbits -= 32
		w.write(buf[:])
	}
}

func (w *bitWriter) Close() error {
	w.flush()
	return w.err
}

func (w *bitWriter) flush() {
	var buf [4]byte
	var i int
	for i = 0; i < 4 && w.nbits > 0; i++ {
		buf[i] = byte(w.bits)
		w.bits >>= 8
		w.nbits = max(w.nbits-8, 0)
	}
	w.write(buf[:i])
}

func (w *bitWriter) write(buf []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(buf)
}

func (w *bitWriter) Err() error {
	return w.err
}

// A bitReader reads the first n bits of a byte slice in the order
// a bitWriter wrote them.
type bitReader struct {
	data []byte
	pos  int // index of the next bit
	n    int // number of readable bits
}

func newBitReader(data []byte, n int) *bitReader {
	return &bitReader{data: data, n: n}
}

// readBits reads n bits, up to 8. The first bit read is the low-order bit
// of the result.
// Reading past the end is ErrUnexpectedEOF, not EOF.
func (r *bitReader) readBits(n int) (byte, error) {
	if n <= 0 || n > 8 {
		panic("bad number of bits to read")
	}
	if r.pos == r.n {
		return 0, io.EOF
	}
	if r.pos+n > r.n {
		return 0, io.ErrUnexpectedEOF
	}
	var res byte
	for k := range n {
		p := r.pos + k
		res |= (r.data[p/8] >> (p % 8) & 1) << k
	}
	r.pos += n
	return res, nil
}

// remaining returns the number of unread bits.
func (r *bitReader) remaining() int { return r.n - r.pos }

// lowOrderBits returns the n low-order bits of u.
func lowOrderBits[T uint8 | uint16 | uint32 | uint64](u T, n int) T {
	return u & ((T(1) << n) - 1)
}

// Pack packs a string of '0' and '1' bytes into ceil(len(bits)/8) bytes.
// The first bit goes into the low-order bit of the first byte, and the
// last byte is zero-padded on the high side.
// Pack records nothing about the length; callers pass len(bits) to [Unpack].
func Pack(bits string) ([]byte, error) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	for len(bits) > 0 {
		chunk := bits[:min(len(bits), 32)]
		var u uint32
		for i := 0; i < len(chunk); i++ {
			switch chunk[i] {
			case '0':
			case '1':
				u |= 1 << i
			default:
				return nil, fmt.Errorf("%w: invalid bit %q", ErrUndecodableStream, chunk[i])
			}
		}
		w.writeBits(u, len(chunk))
		bits = bits[len(chunk):]
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack returns the first n bits of data, which must have been produced by
// [Pack], as a string of '0' and '1' bytes.
func Unpack(data []byte, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("huffman.Unpack: negative bit count %d", n)
	}
	if n > len(data)*8 {
		return "", fmt.Errorf("huffman.Unpack: want %d bits, have %d: %w", n, len(data)*8, io.ErrUnexpectedEOF)
	}
	r := newBitReader(data, n)
	out := make([]byte, 0, n)
	for r.remaining() > 0 {
		k := min(r.remaining(), 8)
		b, err := r.readBits(k)
		if err != nil {
			return "", err
		}
		for i := range k {
			out = append(out, '0'+lowOrderBits(b>>i, 1))
		}
	}
	return string(out), nil
}
