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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestSearchFindsMateInOne(t *testing.T) {
	s := NewSearch()
	b, err := position.ParseFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	assert.NoError(t, err)
	move := s.Search(b, Limits{Depth: 2})
	assert.Equal(t, "a1a8", move.String())
}

func TestSearchReturnsOnlyLegalMoveWhenForced(t *testing.T) {
	s := NewSearch()
	b, err := position.ParseFEN("4k3/4q3/8/8/8/8/4K3/8 w - - 0 1")
	assert.NoError(t, err)
	move := s.Search(b, Limits{Depth: 1})
	assert.NotEqual(t, MoveNone, move)
	assert.Equal(t, SqE2, move.Origin)
}

func TestSearchRespectsTimeBudget(t *testing.T) {
	s := NewSearch()
	b := position.NewBoard()
	start := time.Now()
	move := s.Search(b, Limits{WTime: 1000, BTime: 1000})
	assert.NotEqual(t, MoveNone, move)
	assert.Less(t, int64(time.Since(start)/time.Millisecond), int64(1500))
}

func TestStopMakesTimeUpTrueImmediately(t *testing.T) {
	s := NewSearch()
	s.deadline = time.Now().Add(time.Hour)
	assert.False(t, s.timeUp())
	s.Stop()
	assert.True(t, s.timeUp())
}

func TestSearchDoesNotPlayIllegalEnPassantUnderPin(t *testing.T) {
	s := NewSearch()
	b, err := position.ParseFEN("8/8/8/K2pP2r/8/8/8/7k w - d6 0 1")
	assert.NoError(t, err)
	move := s.Search(b, Limits{Depth: 1})
	assert.NotEqual(t, "e5d6", move.String())
}
