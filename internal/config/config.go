// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Package config loads huffcoder's settings from a YAML or JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	huffman "github.com/jba/huffcoder"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file read when none is named.
const DefaultFile = "huffcoder.yaml"

// Config holds the CLI settings.
type Config struct {
	// DefaultMessage is coded when the user enters an empty message.
	DefaultMessage string `yaml:"default_message" json:"default_message"`
	// Split is how input is divided into symbols: runes, bytes or words.
	Split string `yaml:"split" json:"split"`
	// Precision is the number of decimal places for metrics.
	Precision int `yaml:"precision" json:"precision"`
	// FreqPrecision is the number of decimal places for probabilities.
	FreqPrecision int `yaml:"freq_precision" json:"freq_precision"`
	// Color is auto, always or never.
	Color       string `yaml:"color" json:"color"`
	LogLevel    string `yaml:"log_level" json:"log_level"`
	MetricsFile string `yaml:"metrics_file" json:"metrics_file"`
	ShowDecoded bool   `yaml:"show_decoded" json:"show_decoded"`
	ShowPacked  bool   `yaml:"show_packed" json:"show_packed"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		DefaultMessage: "hot-diggity-dog",
		Split:          "runes",
		Precision:      3,
		FreqPrecision:  5,
		Color:          "auto",
		LogLevel:       "warn",
	}
}

// Load reads the file at path over the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := c.SplitFunc(); err != nil {
		return err
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q: want auto, always or never", c.Color)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Precision < 0 || c.FreqPrecision < 0 {
		return fmt.Errorf("precision must not be negative")
	}
	return nil
}

// SplitFunc returns the function that divides input into symbols.
func (c Config) SplitFunc() (huffman.SplitFunc[string], error) {
	switch c.Split {
	case "runes", "":
		return huffman.SplitRunes, nil
	case "bytes":
		return huffman.SplitBytes, nil
	case "words":
		return huffman.SplitWords, nil
	}
	return nil, fmt.Errorf("invalid split %q: want runes, bytes or words", c.Split)
}

// Level parses LogLevel. An empty level is warn.
func (c Config) Level() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
