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

/*
Package fountain implements a Luby Transform rateless erasure code.

A source message is split into K fixed-length source symbols. An Encoder
draws an unbounded sequence of encoded packets, each carrying the PRNG
seed that produced it, the degree it was sampled at, and the XOR of that
many source symbols chosen by a Robust Soliton Distribution. A Decoder
fed enough packets recovers every source symbol by belief-propagation
peeling: resolve any pending packet that depends on exactly one
unsolved symbol, XOR the newly solved symbol out of every packet still
waiting on it, and repeat until nothing more can be resolved.

Unlike the Gaussian-elimination decoders common to other fountain-code
families, peeling never needs to invert a matrix; it runs in time
proportional to the number of edges between packets and source symbols,
at the cost of needing a modest overhead of extra packets beyond K to
decode with high probability.
*/
package fountain
