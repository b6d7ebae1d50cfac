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

// Packet is what flows from an Encoder to a Decoder: the seed that
// deterministically reproduces the index set, the degree that set was
// sampled at (carried for cheap sanity checks but advisory -- the PRNG's
// own sampled degree is authoritative, see spec.md 9), and the XOR payload
// itself.
type Packet struct {
	Seed    int64
	Degree  int
	Payload []byte
}
