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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/corvid/internal/types"
)

func TestScoreToFromTTRoundTripsPlainScores(t *testing.T) {
	assert.Equal(t, Value(123), ScoreToTT(123, 7))
	assert.Equal(t, Value(123), ScoreFromTT(123, 7))
}

func TestScoreToFromTTRoundTripsMateScores(t *testing.T) {
	v := MateIn(3)
	stored := ScoreToTT(v, 5)
	assert.NotEqual(t, v, stored)
	assert.Equal(t, v, ScoreFromTT(stored, 5))

	v = MatedIn(4)
	stored = ScoreToTT(v, 2)
	assert.NotEqual(t, v, stored)
	assert.Equal(t, v, ScoreFromTT(stored, 2))
}

func TestStoreAndProbeAdjustMateScoreAcrossDifferentPlies(t *testing.T) {
	tt := NewTT(1)
	key := Key(42)

	// A mate 3 ply below a node at ply 5 scores MateIn(8) from the root.
	// Stored ply-independent, the same position probed at ply 7 must read
	// back as MateIn(10): still 3 ply below the node, now 10 from the root.
	foundAtPly := 5
	mateScore := MateIn(foundAtPly + 3)
	tt.Store(Entry{Key: key, Value: ScoreToTT(mateScore, foundAtPly), Depth: 10, Bound: BoundExact})

	e, ok := tt.Probe(key, 1)
	assert.True(t, ok)
	probedAtPly := 7
	assert.Equal(t, MateIn(probedAtPly+3), ScoreFromTT(e.Value, probedAtPly))
}
