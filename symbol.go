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

// xorInto XORs src into dst byte-wise. Both must have the same length;
// callers are responsible for the length check (the codec never receives
// a symbol shorter or longer than L without failing first).
func xorInto(dst, src []byte) {
	for i := range src {
		dst[i] ^= src[i]
	}
}

// xorCopy returns a new slice holding a ^ b, byte-wise. a and b must have
// equal length.
func xorCopy(a, b []byte) []byte {
	out := make([]byte, len(a))
	copy(out, a)
	xorInto(out, b)
	return out
}
