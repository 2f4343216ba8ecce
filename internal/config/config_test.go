// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "huffcoder.yaml", `
default_message: mississippi
split: words
precision: 4
log_level: debug
metrics_file: /tmp/huff.prom
show_decoded: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mississippi", cfg.DefaultMessage)
	assert.Equal(t, "words", cfg.Split)
	assert.Equal(t, 4, cfg.Precision)
	assert.Equal(t, 5, cfg.FreqPrecision, "unset keys keep their defaults")
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "/tmp/huff.prom", cfg.MetricsFile)
	assert.True(t, cfg.ShowDecoded)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "huffcoder.json", `{"split": "bytes", "color": "never"}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bytes", cfg.Split)
	assert.Equal(t, "never", cfg.Color)

	split, err := cfg.SplitFunc()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, split([]byte("ab")))
}

func TestLoadInvalid(t *testing.T) {
	for _, test := range []struct {
		name, content string
	}{
		{"syntax", "split: [runes"},
		{"split", "split: lines"},
		{"color", "color: sometimes"},
		{"level", "log_level: loud"},
		{"precision", "precision: -1"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "huffcoder.yaml", test.content))
			require.Error(t, err)
		})
	}
}
