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

import "fmt"

// ConfigurationError reports a codec built with parameters that cannot
// produce a usable degree distribution: K == 0, L == 0, or a delta/c pair
// that drives the RSD construction to a non-finite value.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("fountain: configuration error: %s", e.Reason)
}

// UninitializedPRNGError is returned by PRNG.Draw when no seed has ever
// been installed, either through SetSeed (which NewEncoder's seed argument
// calls) or a seed passed to a prior Draw call.
type UninitializedPRNGError struct{}

func (e *UninitializedPRNGError) Error() string {
	return "fountain: PRNG state not initialized; call SetSeed or supply a seed to Draw"
}

// LengthMismatchError is returned when a source symbol or an incoming
// packet payload does not have the codec's fixed symbol length L.
type LengthMismatchError struct {
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("fountain: length mismatch: want %d bytes, got %d", e.Want, e.Got)
}

// EmptySourceError is returned by NewEncoder when given zero source
// symbols; there is nothing to encode.
type EmptySourceError struct{}

func (e *EmptySourceError) Error() string {
	return "fountain: encoder requires at least one source symbol"
}

// InternalInvariantError indicates the codec reached a state that should
// be unreachable given correctly configured parameters -- for example, the
// PRNG yielding an index outside [0, K). It signals an implementation bug
// rather than a caller error or a transient decode shortfall.
type InternalInvariantError struct {
	Reason string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("fountain: internal invariant violated: %s", e.Reason)
}
