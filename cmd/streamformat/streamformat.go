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

// Package streamformat defines the line-oriented, base64-framed packet
// stream shared by the encode and decode subcommands -- the file- and
// transport-facing surface the core fountain package deliberately leaves
// to its caller.
package streamformat

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Header is the first line of a packet stream: enough of the original
// encoder's configuration for a decoder to reconstruct the same Robust
// Soliton Distribution and recognize when the source file is fully
// recovered.
type Header struct {
	SourceCount  int // K
	SymbolSize   int // L, in bytes
	OriginalSize int // length of the file before padding to a multiple of L
	Delta        float64
	C            float64
}

const magic = "ltfountain-v1"

// WriteHeader writes the stream header line.
func WriteHeader(w *bufio.Writer, h Header) error {
	_, err := fmt.Fprintf(w, "%s k=%d l=%d n=%d delta=%g c=%g\n",
		magic, h.SourceCount, h.SymbolSize, h.OriginalSize, h.Delta, h.C)
	return err
}

// ReadHeader parses the stream header line.
func ReadHeader(r *bufio.Reader) (Header, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return Header{}, err
	}
	fields := strings.Fields(line)
	if len(fields) != 6 || fields[0] != magic {
		return Header{}, fmt.Errorf("streamformat: malformed header line %q", strings.TrimSpace(line))
	}

	var h Header
	for _, f := range fields[1:] {
		key, val, ok := strings.Cut(f, "=")
		if !ok {
			return Header{}, fmt.Errorf("streamformat: malformed header field %q", f)
		}
		switch key {
		case "k":
			h.SourceCount, err = strconv.Atoi(val)
		case "l":
			h.SymbolSize, err = strconv.Atoi(val)
		case "n":
			h.OriginalSize, err = strconv.Atoi(val)
		case "delta":
			h.Delta, err = strconv.ParseFloat(val, 64)
		case "c":
			h.C, err = strconv.ParseFloat(val, 64)
		default:
			return Header{}, fmt.Errorf("streamformat: unknown header field %q", key)
		}
		if err != nil {
			return Header{}, fmt.Errorf("streamformat: header field %q: %w", f, err)
		}
	}
	return h, nil
}

// WritePacket writes one encoded packet line: "<seed> <degree> <base64>".
func WritePacket(w *bufio.Writer, seed int64, degree int, payload []byte) error {
	_, err := fmt.Fprintf(w, "%d %d %s\n", seed, degree, base64.StdEncoding.EncodeToString(payload))
	return err
}

// ReadPacket reads one encoded packet line. It returns io.EOF once the
// stream is exhausted.
func ReadPacket(r *bufio.Reader) (seed int64, degree int, payload []byte, err error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return 0, 0, nil, err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, 0, nil, io.EOF
	}

	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, nil, fmt.Errorf("streamformat: malformed packet line %q", line)
	}
	seed, perr := strconv.ParseInt(fields[0], 10, 64)
	if perr != nil {
		return 0, 0, nil, fmt.Errorf("streamformat: packet seed: %w", perr)
	}
	degree, perr = strconv.Atoi(fields[1])
	if perr != nil {
		return 0, 0, nil, fmt.Errorf("streamformat: packet degree: %w", perr)
	}
	payload, perr = base64.StdEncoding.DecodeString(fields[2])
	if perr != nil {
		return 0, 0, nil, fmt.Errorf("streamformat: packet payload: %w", perr)
	}
	return seed, degree, payload, nil
}
