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

import "math"

// DefaultDelta and DefaultC are the Robust Soliton Distribution parameters
// used when a caller does not supply its own. They are module-level
// constants, not runtime-mutable configuration.
const (
	DefaultDelta = 0.5
	DefaultC     = 0.1
)

// robustSolitonCDF builds the cumulative distribution function of the
// Robust Soliton Distribution over degrees 1..K, per the construction in
// spec.md 4.1:
//
//	s = c * sqrt(K) * ln(K/delta)
//	pivot = clamp(floor(K/s), 2, K-1)
//	tau[d] = s/(K*d)                 for d = 1 .. pivot-1
//	tau[pivot] = (s/K) * ln(s/delta)
//	tau[d] = 0                       for d > pivot
//	rho[1] = 1/K
//	rho[d] = 1/(d*(d-1))             for d = 2 .. K
//	Z = sum(rho) + sum(tau)
//	mu = (rho + tau) / Z
//
// The returned slice is 0-indexed and has length K: cdf[i] is the
// cumulative probability of degree i+1. K == 1 is a degenerate input to
// the general formula (the pivot clamp has no valid range when K-1 == 0),
// so it is special-cased: a single source symbol always yields degree 1.
func robustSolitonCDF(k int, delta, c float64) ([]float64, error) {
	if k <= 0 {
		return nil, &ConfigurationError{Reason: "K must be positive"}
	}
	if delta <= 0 || delta >= 1 {
		return nil, &ConfigurationError{Reason: "delta must be in (0, 1)"}
	}
	if c <= 0 {
		return nil, &ConfigurationError{Reason: "c must be positive"}
	}

	if k == 1 {
		return []float64{1.0}, nil
	}

	s := c * math.Sqrt(float64(k)) * math.Log(float64(k)/delta)
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		return nil, &ConfigurationError{Reason: "RSD construction produced a non-finite spike parameter"}
	}

	// Clamp upper bound before lower: pivot = max(2, min(floor(K/s), K-1)).
	// For small K (e.g. K=2) the two bounds invert (K-1 < 2); the lower
	// bound of 2 must win in that case, not whichever clamp ran last.
	pivot := int(math.Floor(float64(k) / s))
	if pivot > k-1 {
		pivot = k - 1
	}
	if pivot < 2 {
		pivot = 2
	}

	// tau and rho are 1-based conceptually (degree d lives at index d-1).
	tau := make([]float64, k)
	for d := 1; d < pivot; d++ {
		tau[d-1] = s / (float64(k) * float64(d))
	}
	if pivot >= 1 && pivot <= k {
		tau[pivot-1] = (s / float64(k)) * math.Log(s/delta)
	}
	// tau[d] for d > pivot stays zero, its zero value.

	rho := make([]float64, k)
	rho[0] = 1.0 / float64(k)
	for d := 2; d <= k; d++ {
		rho[d-1] = 1.0 / (float64(d) * float64(d-1))
	}

	var z float64
	for i := 0; i < k; i++ {
		z += rho[i] + tau[i]
	}
	if math.IsNaN(z) || math.IsInf(z, 0) || z <= 0 {
		return nil, &ConfigurationError{Reason: "RSD construction produced a non-finite normalizer"}
	}

	cdf := make([]float64, k)
	var cum float64
	for i := 0; i < k; i++ {
		cum += (rho[i] + tau[i]) / z
		cdf[i] = cum
	}
	return cdf, nil
}
