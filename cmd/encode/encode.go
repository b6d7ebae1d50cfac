// Copyright 2014 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package encode implements the "ltfountain encode" subcommand: cutting a
// file into fixed-size source symbols and emitting an encoded packet
// stream, the file- and base64-framing surface that the core fountain
// package treats as an external collaborator's problem.
package encode

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	fountain "github.com/google/ltfountain"
	"github.com/google/ltfountain/cmd/streamformat"
)

var (
	inputPath  string
	outputPath string
	symbolSize int
	count      int
	seed       int64
	delta      float64
	c          float64
)

// NewEncodeCommand creates and returns the encode command.
func NewEncodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Split a file into source symbols and emit an encoded packet stream",
		Long: `Reads the file named by --input, partitions it into source symbols of
--symbol-size bytes each (the last one zero-padded), and writes --count
encoded packets to --output as a line-oriented, base64-framed stream that
"ltfountain decode" can reconstruct the file from.`,
		RunE: runEncode,
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "file to encode (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "-", "packet stream destination (\"-\" for stdout)")
	cmd.Flags().IntVarP(&symbolSize, "symbol-size", "l", 256, "source symbol size in bytes")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of packets to emit (default: source count plus half of it, plus one)")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 1, "starting PRNG seed")
	cmd.Flags().Float64Var(&delta, "delta", fountain.DefaultDelta, "Robust Soliton Distribution failure bound")
	cmd.Flags().Float64Var(&c, "c", fountain.DefaultC, "Robust Soliton Distribution shape constant")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runEncode(cmd *cobra.Command, args []string) error {
	if symbolSize <= 0 {
		return fmt.Errorf("--symbol-size must be positive")
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}
	sources := partitionIntoSymbols(data, symbolSize)

	n := count
	if n <= 0 {
		n = len(sources) + len(sources)/2 + 1
	}

	enc, err := fountain.NewEncoder(sources, delta, c, nil)
	if err != nil {
		return fmt.Errorf("initializing encoder: %w", err)
	}

	out, closeOut, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	w := bufio.NewWriter(out)
	header := streamformat.Header{
		SourceCount:  len(sources),
		SymbolSize:   symbolSize,
		OriginalSize: len(data),
		Delta:        delta,
		C:            c,
	}
	if err := streamformat.WriteHeader(w, header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	s := seed
	for i := 0; i < n; i++ {
		var p *int64
		if i == 0 {
			p = &s
		}
		pkt, err := enc.Generate(p)
		if err != nil {
			return fmt.Errorf("generating packet %d: %w", i, err)
		}
		if err := streamformat.WritePacket(w, pkt.Seed, pkt.Degree, pkt.Payload); err != nil {
			return fmt.Errorf("writing packet %d: %w", i, err)
		}
	}

	return w.Flush()
}

// partitionIntoSymbols splits data into fixed-size chunks of symbolSize
// bytes, zero-padding the final chunk so every source symbol is exactly
// symbolSize bytes -- the core package requires a uniform L (spec.md 3).
func partitionIntoSymbols(data []byte, symbolSize int) [][]byte {
	if len(data) == 0 {
		return [][]byte{make([]byte, symbolSize)}
	}
	k := (len(data) + symbolSize - 1) / symbolSize
	sources := make([][]byte, k)
	for i := 0; i < k; i++ {
		sym := make([]byte, symbolSize)
		copy(sym, data[i*symbolSize:min(len(data), (i+1)*symbolSize)])
		sources[i] = sym
	}
	return sources
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" || path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
