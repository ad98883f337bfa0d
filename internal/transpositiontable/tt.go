/*
 * Corvid - UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2026 Corvid contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package transpositiontable implements the three caches the search and
// evaluator consult: the main search TT (bounded entries with
// depth-preferred replacement), and two unconditional-replace caches for
// pawn structure and full static evaluation.
package transpositiontable

import (
	"math/bits"

	. "github.com/corvidchess/corvid/internal/types"
)

// Bound reports whether a stored search value is exact or a bound proved
// by a cutoff.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundAlpha // upper bound - value was <= alpha when stored
	BoundBeta  // lower bound - value was >= beta when stored
)

// Entry is one slot of the main search TT.
type Entry struct {
	Key   Key
	Move  Move
	Value Value
	Eval  Value
	Depth int8
	Bound Bound
}

// largestPowerOfTwoLE returns the largest power of two <= n (n >= 1),
// the number of *entries* a table should hold so that key&mask indexes
// it correctly - as opposed to rounding the byte size to a power of two
// and using that directly as the entry mask.
func largestPowerOfTwoLE(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	return uint64(1) << (63 - bits.LeadingZeros64(n))
}

// TT is the main search transposition table.
type TT struct {
	entries []Entry
	mask    uint64
}

// NewTT allocates a main TT sized to approximately sizeMB megabytes.
func NewTT(sizeMB int) *TT {
	const entrySize = 24 // approx bytes per Entry, rounded up
	n := largestPowerOfTwoLE(uint64(sizeMB) * 1024 * 1024 / entrySize)
	return &TT{entries: make([]Entry, n), mask: n - 1}
}

func (t *TT) index(key Key) uint64 {
	return uint64(key) & t.mask
}

// Probe returns the stored entry and true iff the key matches and the
// stored depth is at least requestedDepth.
func (t *TT) Probe(key Key, requestedDepth int8) (Entry, bool) {
	e := t.entries[t.index(key)]
	if e.Key == key && e.Depth >= requestedDepth {
		return e, true
	}
	return Entry{}, false
}

// Store saves e, keeping the existing entry on a key collision if it was
// searched deeper than the new one.
func (t *TT) Store(e Entry) {
	i := t.index(e.Key)
	existing := t.entries[i]
	if existing.Key == e.Key && existing.Depth > e.Depth {
		return
	}
	t.entries[i] = e
}

// Clear empties the table.
func (t *TT) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// ScoreToTT converts a value computed ply plies from the root into a
// ply-independent score before storage, so a mate found deep in the tree
// doesn't get confused for one found near the root when the entry is
// later probed at a different ply.
func ScoreToTT(v Value, ply int) Value {
	if v >= ValueMateThreshold {
		return v + Value(ply)
	}
	if v <= -ValueMateThreshold {
		return v - Value(ply)
	}
	return v
}

// ScoreFromTT reverses ScoreToTT for a value probed at ply plies from the
// root.
func ScoreFromTT(v Value, ply int) Value {
	if v >= ValueMateThreshold {
		return v - Value(ply)
	}
	if v <= -ValueMateThreshold {
		return v + Value(ply)
	}
	return v
}

// Prefetch is a no-op hint point matching the source's prefetch() call at
// node entry; Go gives no portable non-temporal-load intrinsic, so this
// only documents where a real prefetch would go.
func (t *TT) Prefetch(key Key) {
	_ = t.index(key)
}

// PawnEntry caches the pawn-structure component of the evaluation.
type PawnEntry struct {
	Key   Key
	Score Value
}

// PawnTable is a simple always-replace cache keyed by pawnKey.
type PawnTable struct {
	entries []PawnEntry
	mask    uint64
}

func NewPawnTable(sizeMB int) *PawnTable {
	const entrySize = 16
	n := largestPowerOfTwoLE(uint64(sizeMB) * 1024 * 1024 / entrySize)
	return &PawnTable{entries: make([]PawnEntry, n), mask: n - 1}
}

func (p *PawnTable) Probe(key Key) (Value, bool) {
	e := p.entries[uint64(key)&p.mask]
	if e.Key == key {
		return e.Score, true
	}
	return 0, false
}

func (p *PawnTable) Store(key Key, score Value) {
	p.entries[uint64(key)&p.mask] = PawnEntry{Key: key, Score: score}
}

func (p *PawnTable) Clear() {
	for i := range p.entries {
		p.entries[i] = PawnEntry{}
	}
}

// EvalEntry caches a full static evaluation result.
type EvalEntry struct {
	Key   Key
	Score Value
}

// EvalTable is a simple always-replace cache keyed by board key.
type EvalTable struct {
	entries []EvalEntry
	mask    uint64
}

func NewEvalTable(sizeMB int) *EvalTable {
	const entrySize = 16
	n := largestPowerOfTwoLE(uint64(sizeMB) * 1024 * 1024 / entrySize)
	return &EvalTable{entries: make([]EvalEntry, n), mask: n - 1}
}

func (e *EvalTable) Probe(key Key) (Value, bool) {
	entry := e.entries[uint64(key)&e.mask]
	if entry.Key == key {
		return entry.Score, true
	}
	return 0, false
}

func (e *EvalTable) Store(key Key, score Value) {
	e.entries[uint64(key)&e.mask] = EvalEntry{Key: key, Score: score}
}

func (e *EvalTable) Clear() {
	for i := range e.entries {
		e.entries[i] = EvalEntry{}
	}
}
