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

// Package decode implements the "ltfountain decode" subcommand: feeding an
// encoded packet stream into a Decoder until it completes, then writing the
// reconstructed file back out.
package decode

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
	verbose    bool
)

// NewDecodeCommand creates and returns the decode command.
func NewDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Reconstruct a file from an encoded packet stream",
		Long: `Reads the packet stream named by --input (as produced by "ltfountain
encode") and feeds it to a decoder one packet at a time, stopping as soon
as every source symbol has been recovered, then writes the reassembled
file to --output.`,
		RunE: runDecode,
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "packet stream source (\"-\" for stdin)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "reconstructed file destination (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report progress after every packet")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	in, closeIn, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer closeIn()

	r := bufio.NewReader(in)
	header, err := streamformat.ReadHeader(r)
	if err != nil {
		return fmt.Errorf("reading stream header: %w", err)
	}

	dec, err := fountain.NewDecoder(header.SourceCount, header.SymbolSize, header.Delta, header.C)
	if err != nil {
		return fmt.Errorf("initializing decoder: %w", err)
	}

	packets := 0
	for !dec.IsComplete() {
		seed, degree, payload, err := streamformat.ReadPacket(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading packet %d: %w", packets, err)
		}
		packets++
		if _, err := dec.AddPacket(seed, degree, payload); err != nil {
			return fmt.Errorf("packet %d (seed %d, degree %d): %w", packets, seed, degree, err)
		}
		if verbose {
			fmt.Fprintf(cmd.OutOrStderr(), "packet %d: %d/%d symbols recovered\n", packets, dec.SolvedCount(), dec.SourceCount())
		}
	}

	if !dec.IsComplete() {
		return fmt.Errorf("stream exhausted after %d packets with only %d/%d symbols recovered", packets, dec.SolvedCount(), dec.SourceCount())
	}

	solved, _ := dec.AllSolved()
	out := make([]byte, 0, header.OriginalSize)
	for _, sym := range solved {
		out = append(out, sym...)
	}
	if len(out) > header.OriginalSize {
		out = out[:header.OriginalSize]
	}

	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	if verbose {
		fmt.Fprintf(cmd.OutOrStderr(), "reconstructed %d bytes from %d packets\n", len(out), packets)
	}
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" || path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
