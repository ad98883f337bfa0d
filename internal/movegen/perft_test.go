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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
)

// Perft results from https://www.chessprogramming.org/Perft_Results.

func TestPerftStartPosDepth1To4(t *testing.T) {
	expected := []uint64{20, 400, 8902, 197281}
	for depth, want := range expected {
		b := position.NewBoard()
		got, _ := Perft(b, depth+1)
		assert.Equal(t, want, got, "depth %d", depth+1)
	}
}

func TestPerftStartPosDepth5Slow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping slow perft in short mode")
	}
	b := position.NewBoard()
	got, _ := Perft(b, 5)
	assert.Equal(t, uint64(4865609), got)
}

func TestPerftStartPosDepth6Slow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping slow perft in short mode")
	}
	b := position.NewBoard()
	got, _ := Perft(b, 6)
	assert.Equal(t, uint64(119060324), got)
}

func TestPerftKiwipeteDepth4(t *testing.T) {
	b, err := position.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	got, _ := Perft(b, 4)
	assert.Equal(t, uint64(4085603), got)
}
