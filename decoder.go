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

// pendingEntry is one encoded symbol the decoder has not yet been able to
// discard: its reduced payload (already XORed against every dependency
// that was solved at the time it was last touched) and the set of source
// indices it still depends on.
type pendingEntry struct {
	seed    int64
	degree  int
	payload []byte
	deps    map[int]struct{}
}

// Decoder runs the belief-propagation peeling algorithm over a stream of
// packets produced by an Encoder configured with the same (K, delta, c).
// A Decoder is owned exclusively by one goroutine; the core performs no
// internal locking (spec.md 5).
type Decoder struct {
	k int
	l int

	prng *PRNG

	pending map[uint64]*pendingEntry
	nextID  uint64

	// solvedWaiters is the reverse index from a source index to the
	// receipt ids of pending entries that still depend on it. It turns
	// eager reduction from an O(pending) scan into an O(edges) one,
	// per spec.md 9's note that this pays off once K grows past a few
	// hundred.
	solvedWaiters map[int]map[uint64]struct{}

	solved map[int][]byte

	round int
}

// NewDecoder builds a Decoder expecting K source symbols of L bytes each,
// reconstructed from packets using the Robust Soliton Distribution
// parameterized by delta and c.
func NewDecoder(k, l int, delta, c float64) (*Decoder, error) {
	if l <= 0 {
		return nil, &ConfigurationError{Reason: "L must be positive"}
	}
	prng, err := NewPRNG(k, delta, c)
	if err != nil {
		return nil, err
	}

	d := &Decoder{
		k:             k,
		l:             l,
		prng:          prng,
		pending:       make(map[uint64]*pendingEntry),
		solvedWaiters: make(map[int]map[uint64]struct{}, k),
		solved:        make(map[int][]byte, k),
	}
	for i := 0; i < k; i++ {
		d.solvedWaiters[i] = make(map[uint64]struct{})
	}
	return d, nil
}

// SourceCount returns K, the number of source symbols this decoder
// expects to recover.
func (d *Decoder) SourceCount() int {
	return d.k
}

// SolvedCount returns the number of source indices recovered so far.
func (d *Decoder) SolvedCount() int {
	return len(d.solved)
}

// IsComplete reports whether every source index has been recovered.
func (d *Decoder) IsComplete() bool {
	return len(d.solved) == d.k
}

// CurrentRound returns the number of peeling passes run so far, for
// diagnostics.
func (d *Decoder) CurrentRound() int {
	return d.round
}

// GetSolved returns the recovered symbol at source index i, if any.
func (d *Decoder) GetSolved(i int) ([]byte, bool) {
	s, ok := d.solved[i]
	return s, ok
}

// AllSolved returns the K recovered symbols in source-index order, or
// false if decoding is not yet complete.
func (d *Decoder) AllSolved() ([][]byte, bool) {
	if !d.IsComplete() {
		return nil, false
	}
	out := make([][]byte, d.k)
	for i := 0; i < d.k; i++ {
		out[i] = d.solved[i]
	}
	return out, true
}

// AddPacket feeds one encoded symbol into the decoder and runs the
// peeling loop until it stalls. It returns a monotonically increasing
// receipt id callers may use to refer back to the entry, or an error if
// the payload's length does not match L.
//
// The packet's carried degree is advisory only; AddPacket reconstructs
// the index set (and the authoritative degree) from the seed using the
// decoder's own PRNG, per spec.md 9's resolved open question.
func (d *Decoder) AddPacket(seed int64, degree int, payload []byte) (uint64, error) {
	if len(payload) != d.l {
		return 0, &LengthMismatchError{Want: d.l, Got: len(payload)}
	}

	_, actualDegree, indices, err := d.prng.Draw(&seed)
	if err != nil {
		return 0, err
	}
	for _, idx := range indices {
		if idx < 0 || idx >= d.k {
			return 0, &InternalInvariantError{Reason: "PRNG yielded an index outside [0, K)"}
		}
	}

	id := d.nextID
	d.nextID++

	allSolved := true
	for _, idx := range indices {
		if _, ok := d.solved[idx]; !ok {
			allSolved = false
			break
		}
	}
	if allSolved {
		// Redundant packet: every dependency is already solved. Nothing
		// to store, but a peel pass costs little and picks up any
		// ordering effect (spec.md 4.3 step 2).
		d.peel()
		return id, nil
	}

	reduced := make([]byte, d.l)
	copy(reduced, payload)
	deps := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		if s, ok := d.solved[idx]; ok {
			xorInto(reduced, s)
		} else {
			deps[idx] = struct{}{}
		}
	}

	entry := &pendingEntry{seed: seed, degree: actualDegree, payload: reduced, deps: deps}
	d.pending[id] = entry
	for idx := range deps {
		d.solvedWaiters[idx][id] = struct{}{}
	}

	d.peel()
	return id, nil
}

// peel runs the belief-propagation loop to a fixed point: repeatedly
// solve every pending entry whose dependency set has shrunk to exactly
// one source index, until a full pass makes no further progress.
//
// Newly solved symbols are reduced eagerly into every entry that still
// lists them as a dependency (via solvedWaiters), so no pass has to
// refresh dependency sets. Each pass solves only the entries that had a
// single dependency when the pass began; an entry that shrinks to a
// single dependency through this pass's own eager reductions is picked
// up by the next pass, so a cascade of peels takes one pass per layer.
func (d *Decoder) peel() {
	progress := true
	for progress {
		progress = false
		d.round++

		var ready []uint64
		for id, e := range d.pending {
			if len(e.deps) == 0 {
				delete(d.pending, id)
				continue
			}
			if len(e.deps) == 1 {
				ready = append(ready, id)
			}
		}

		for _, id := range ready {
			entry, ok := d.pending[id]
			if !ok || len(entry.deps) != 1 {
				// Already resolved or covered by an earlier solve in
				// this same pass; the tie-break rule in spec.md 4.3
				// lets the first winner stand.
				continue
			}
			var target int
			for t := range entry.deps {
				target = t
			}
			_, already := d.solved[target]
			// The producing entry must leave pending (and its waiter
			// registration on target) before solve runs: solve eagerly
			// XORs the solved payload into every entry still waiting on
			// target, and target's own payload is that solved payload --
			// left registered, the entry would XOR itself into itself
			// and zero out the symbol it just solved.
			d.discard(id, entry)
			if !already {
				d.solve(target, entry.payload)
				progress = true
			}
		}
	}
}

// solve records a newly recovered source symbol and eagerly XORs it out
// of every pending entry that still depends on it, shrinking their
// dependency sets in place.
func (d *Decoder) solve(target int, payload []byte) {
	d.solved[target] = payload

	waiters := d.solvedWaiters[target]
	for id := range waiters {
		entry, ok := d.pending[id]
		if !ok {
			continue
		}
		if _, still := entry.deps[target]; !still {
			continue
		}
		xorInto(entry.payload, payload)
		delete(entry.deps, target)
	}
	delete(d.solvedWaiters, target)
}

// discard removes a pending entry (it either solved a target or was
// found fully covered) and cleans up its remaining waiter registrations.
func (d *Decoder) discard(id uint64, entry *pendingEntry) {
	delete(d.pending, id)
	for idx := range entry.deps {
		delete(d.solvedWaiters[idx], id)
	}
}
