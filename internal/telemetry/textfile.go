// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Package telemetry exports the metrics of a Huffman code in the
// Prometheus text format, for the node exporter's textfile collector.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// A Sample is one coded message.
type Sample struct {
	Symbols           int // message length in symbols
	Alphabet          int // distinct symbols
	EncodedBits       int
	MaxCodeLength     int
	Entropy           float64
	AverageCodeLength float64
	CompressionRatio  float64
}

// NewRegistry returns a registry holding one gauge per field of s.
// Every gauge carries the split label.
func NewRegistry(s Sample, split string) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	labels := prometheus.Labels{"split": split}
	for _, g := range []struct {
		name, help string
		value      float64
	}{
		{"huffman_message_symbols", "Number of symbols in the message.", float64(s.Symbols)},
		{"huffman_alphabet_size", "Number of distinct symbols in the message.", float64(s.Alphabet)},
		{"huffman_encoded_bits", "Length of the encoded message in bits.", float64(s.EncodedBits)},
		{"huffman_max_code_length_bits", "Length of the longest code.", float64(s.MaxCodeLength)},
		{"huffman_entropy_bits", "Shannon entropy of the message in bits per symbol.", s.Entropy},
		{"huffman_average_code_length_bits", "Expected code length in bits per symbol.", s.AverageCodeLength},
		{"huffman_compression_ratio", "Symbols per encoded bit.", s.CompressionRatio},
	} {
		gauge := prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        g.name,
			Help:        g.help,
			ConstLabels: labels,
		})
		gauge.Set(g.value)
		if err := reg.Register(gauge); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// WriteTextfile writes s to path in the Prometheus text format.
// The file is replaced atomically.
func WriteTextfile(path string, s Sample, split string) error {
	reg, err := NewRegistry(s, split)
	if err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, reg)
}
