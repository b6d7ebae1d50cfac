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

import "sort"

// Park-Miller minimal-standard LCG constants. These are part of the
// wire-level contract between an encoder and a decoder: both sides must
// use exactly these values, or the same seed will no longer produce the
// same (degree, index set) pair.
const (
	lcgA = 16807
	lcgM = (1 << 31) - 1 // 2^31 - 1, a Mersenne prime
)

// lcgNext advances the Park-Miller generator by one step. The multiply and
// modulus are both done in int64 so the arithmetic cannot overflow the
// 31-bit domain the constants were chosen for.
func lcgNext(x int64) int64 {
	return (lcgA * x) % lcgM
}

// PRNG is the deterministic generator that binds a seed to a degree and a
// set of source indices. Given the same (K, delta, c) and the same seed,
// two independently constructed PRNGs always produce the same (degree,
// index set) pair -- this is the central cross-component contract the
// encoder and decoder rely on (spec.md 3, invariant (d)).
//
// A PRNG is cheap to construct and holds no resources beyond its CDF
// table; it is not safe for concurrent use from multiple goroutines.
type PRNG struct {
	k     int
	cdf   []float64
	state int64
	valid bool
}

// NewPRNG builds a PRNG for K source indices using the Robust Soliton
// Distribution parameterized by delta and c. It returns a
// *ConfigurationError if the parameters cannot produce a usable
// distribution.
func NewPRNG(k int, delta, c float64) (*PRNG, error) {
	cdf, err := robustSolitonCDF(k, delta, c)
	if err != nil {
		return nil, err
	}
	return &PRNG{k: k, cdf: cdf}, nil
}

// SetSeed installs state without consuming a PRNG step.
func (p *PRNG) SetSeed(seed int64) {
	p.state = seed
	p.valid = true
}

// pickDegree scans the CDF left-to-right and returns the 1-based index of
// the first entry strictly greater than r. If floating-point drift leaves
// the CDF short of 1 and r lands past the last entry, it falls through to
// the maximum degree K.
func pickDegree(cdf []float64, r float64) int {
	for i, v := range cdf {
		if v > r {
			return i + 1
		}
	}
	return len(cdf)
}

// Draw samples a (seed, degree, index set) triple. If seed is non-nil, it
// is installed first (without consuming a step); the returned seed echo is
// always the state as it stood before any step this call takes. The first
// step produces the degree; each subsequent step draws one more distinct
// index until the degree's worth of indices have been collected.
//
// Draw fails with *UninitializedPRNGError if no seed is supplied and none
// has ever been installed.
func (p *PRNG) Draw(seed *int64) (int64, int, []int, error) {
	if seed != nil {
		p.SetSeed(*seed)
	}
	if !p.valid {
		return 0, 0, nil, &UninitializedPRNGError{}
	}

	echo := p.state

	p.state = lcgNext(p.state)
	r := float64(p.state) / float64(lcgM-1)
	d := pickDegree(p.cdf, r)

	indices := make(map[int]struct{}, d)
	for len(indices) < d {
		p.state = lcgNext(p.state)
		idx := p.state % int64(p.k)
		if idx < 0 {
			idx = -idx
		}
		indices[int(idx)] = struct{}{}
	}

	out := make([]int, 0, d)
	for idx := range indices {
		out = append(out, idx)
	}
	sort.Ints(out)

	return echo, d, out, nil
}
