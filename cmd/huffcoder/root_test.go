// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and stdin, returning stdout
// and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--color", "never", "--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunArgs(t *testing.T) {
	out, _, err := execute(t, "", "abracadabra")
	require.NoError(t, err)
	assert.Contains(t, out, "Message: abracadabra\n")
	assert.Contains(t, out, `Codebook: {"r": 000, "c": 0010, "d": 0011, "b": 01, "a": 1}`)
	assert.Contains(t, out, "Encoded message: 10100010010100111010001\n")
	assert.Contains(t, out, "Compression ratio: 0.478\n")
}

func TestRunStdin(t *testing.T) {
	out, _, err := execute(t, "aaaa\n", "--decoded")
	require.NoError(t, err)
	assert.Contains(t, out, "Message: aaaa\n")
	assert.Contains(t, out, "Entropy: 0\n")
	assert.Contains(t, out, "Encoded message: 0000\n")
	assert.Contains(t, out, "Decoded message: aaaa\n")
}

func TestRunDefaultMessage(t *testing.T) {
	out, stderr, err := execute(t, "\n", "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Message: hot-diggity-dog\n")
	assert.Contains(t, out, "Entropy: 2.923\n")
	assert.Contains(t, out, "Average info: 2.933\n")
	assert.Contains(t, stderr, "using default")
}

func TestRunWords(t *testing.T) {
	out, _, err := execute(t, "", "--split", "words", "--packed", "the", "cat", "the", "hat")
	require.NoError(t, err)
	assert.Contains(t, out, "Message: the cat the hat\n")
	assert.Contains(t, out, "Packed: ")
}

func TestRunMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huffman.prom")
	_, _, err := execute(t, "", "--metrics-file", path, "hot-diggity-dog")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `huffman_encoded_bits{split="runes"} 44`)
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huffcoder.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_message: mississippi\nprecision: 1\n"), 0o644))
	// --config is given twice; the last one wins.
	out, _, err := execute(t, "", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Message: mississippi\n")
	assert.Contains(t, out, "Entropy: 1.8\n")
}

func TestRunErrors(t *testing.T) {
	_, _, err := execute(t, "", "--split", "lines", "abc")
	require.ErrorContains(t, err, "invalid split")

	_, _, err = execute(t, "   \n", "--split", "words")
	require.ErrorContains(t, err, "no symbols")
}

func TestVersion(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "huffcoder version dev\n", out.String())
}
