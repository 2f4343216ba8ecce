// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	huffman "github.com/jba/huffcoder"
	"github.com/jba/huffcoder/internal/config"
	"github.com/jba/huffcoder/internal/logging"
	"github.com/jba/huffcoder/internal/report"
	"github.com/jba/huffcoder/internal/telemetry"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const prompt = "Enter a message to be encoded: "

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "huffcoder [message]",
		Short: "Huffman-code a message and report its entropy",
		Long: `huffcoder counts the symbols of a message, builds a Huffman code for them,
encodes and decodes the message, and prints the code along with the
entropy, average code length and compression ratio.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCode,
	}

	f := cmd.Flags()
	f.String("config", config.DefaultFile, "Path to a YAML or JSON config file")
	f.String("split", "", "How to divide input into symbols: runes, bytes or words")
	f.String("color", "", "Color output: auto, always or never")
	f.Int("precision", 0, "Decimal places for metrics")
	f.String("log-level", "", "Log level: debug, info, warn or error")
	f.String("metrics-file", "", "Write metrics to this file in Prometheus text format")
	f.Bool("decoded", false, "Also print the decoded message")
	f.Bool("packed", false, "Also print the encoded message packed into bytes")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// loadConfig reads the config file and applies flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()
	path, _ := f.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if f.Changed("split") {
		cfg.Split, _ = f.GetString("split")
	}
	if f.Changed("color") {
		cfg.Color, _ = f.GetString("color")
	}
	if f.Changed("precision") {
		cfg.Precision, _ = f.GetInt("precision")
	}
	if f.Changed("log-level") {
		cfg.LogLevel, _ = f.GetString("log-level")
	}
	if f.Changed("metrics-file") {
		cfg.MetricsFile, _ = f.GetString("metrics-file")
	}
	if f.Changed("decoded") {
		cfg.ShowDecoded, _ = f.GetBool("decoded")
	}
	if f.Changed("packed") {
		cfg.ShowPacked, _ = f.GetBool("packed")
	}
	return cfg, cfg.Validate()
}

func runCode(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	logger := logging.New(cmd.ErrOrStderr(), level)
	split, _ := cfg.SplitFunc()

	message, err := readMessage(cmd, args)
	if err != nil {
		return fmt.Errorf("failed to read message: %w", err)
	}
	if message == "" {
		logger.Info("empty message, using default", "message", cfg.DefaultMessage)
		message = cfg.DefaultMessage
	}

	syms := split([]byte(message))
	r, err := huffman.Analyze(syms)
	if err != nil {
		if errors.Is(err, huffman.ErrEmptyInput) {
			return fmt.Errorf("message has no symbols when split by %s", cfg.Split)
		}
		return fmt.Errorf("failed to code message: %w", err)
	}
	logger.Debug("coded message",
		"symbols", len(r.Message),
		"alphabet", len(r.Codebook),
		"bits", len(r.Encoded))
	if !r.RoundTrips() {
		return errors.New("decoded message differs from the original")
	}

	sep := ""
	if cfg.Split == "words" {
		sep = " "
	}
	out := report.NewOutput(cmd.OutOrStdout(), cfg.Color)
	err = report.Write(out, r, report.Options{
		Precision:     cfg.Precision,
		FreqPrecision: cfg.FreqPrecision,
		Separator:     sep,
		ShowDecoded:   cfg.ShowDecoded,
		ShowPacked:    cfg.ShowPacked,
	})
	if err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := writeMetrics(cfg, r); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		logger.Info("wrote metrics", "path", cfg.MetricsFile)
	}
	return nil
}

func writeMetrics(cfg config.Config, r *huffman.Report[string]) error {
	return telemetry.WriteTextfile(cfg.MetricsFile, telemetry.Sample{
		Symbols:           len(r.Message),
		Alphabet:          len(r.Codebook),
		EncodedBits:       len(r.Encoded),
		MaxCodeLength:     r.Codebook.MaxLen(),
		Entropy:           r.Entropy,
		AverageCodeLength: r.AverageCodeLength,
		CompressionRatio:  r.CompressionRatio,
	}, cfg.Split)
}

// readMessage returns the message from args, from a prompt when stdin is a
// terminal, or else from all of stdin.
func readMessage(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.OutOrStdout(), prompt)
		line, err := bufio.NewReader(f).ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		return trimNewline(line), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return trimNewline(string(data)), nil
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
