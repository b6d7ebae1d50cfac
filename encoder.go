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

package fountain

// Encoder holds the K source symbols and, on demand, emits encoded
// symbols formed by XORing together a seed-selected subset of them. All
// source symbols must share one length L; this is checked on Generate,
// for the symbols each draw selects, not at construction.
type Encoder struct {
	sources [][]byte
	prng    *PRNG
}

// NewEncoder builds an Encoder over sources using the Robust Soliton
// Distribution parameterized by delta and c. If seed is non-nil, the
// internal PRNG is pre-seeded so the first Generate call need not supply
// one. NewEncoder fails with *EmptySourceError if sources is empty.
func NewEncoder(sources [][]byte, delta, c float64, seed *int64) (*Encoder, error) {
	if len(sources) == 0 {
		return nil, &EmptySourceError{}
	}
	prng, err := NewPRNG(len(sources), delta, c)
	if err != nil {
		return nil, err
	}
	if seed != nil {
		prng.SetSeed(*seed)
	}
	return &Encoder{sources: sources, prng: prng}, nil
}

// SourceCount returns K, the number of source symbols this encoder was
// built over.
func (e *Encoder) SourceCount() int {
	return len(e.sources)
}

// Generate draws a (seed, degree, index set) triple from the encoder's
// PRNG -- installing seed first if it is non-nil, otherwise continuing the
// PRNG's running sequence -- and returns the resulting packet: the XOR of
// the selected source symbols.
//
// Generate advances the PRNG's state as an observable side effect. It
// fails with *LengthMismatchError if the source symbols selected by this
// draw do not all share one length (symbols the draw does not select are
// not checked), and propagates *UninitializedPRNGError from the PRNG if
// neither seed nor a prior call ever installed one.
func (e *Encoder) Generate(seed *int64) (Packet, error) {
	echo, d, indices, err := e.prng.Draw(seed)
	if err != nil {
		return Packet{}, err
	}

	l := len(e.sources[indices[0]])
	payload := make([]byte, l)
	copy(payload, e.sources[indices[0]])

	for _, idx := range indices[1:] {
		src := e.sources[idx]
		if len(src) != l {
			return Packet{}, &LengthMismatchError{Want: l, Got: len(src)}
		}
		xorInto(payload, src)
	}

	return Packet{Seed: echo, Degree: d, Payload: payload}, nil
}
