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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
)

func TestEvaluateStartPosIsRoughlySymmetric(t *testing.T) {
	e := NewEvaluator()
	b := position.NewBoard()
	score := e.Evaluate(b)
	assert.InDelta(t, 0, int(score), 50, "start position should be close to balanced")
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	e := NewEvaluator()
	b, err := position.ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	score := e.Evaluate(b)
	assert.Greater(t, int(score), 400, "a rook up should score clearly positive")
}

func TestEvaluateIsSideRelative(t *testing.T) {
	e := NewEvaluator()
	white, err := position.ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	black, err := position.ParseFEN("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	assert.NoError(t, err)
	assert.Greater(t, int(e.Evaluate(white)), 0)
	assert.Less(t, int(e.Evaluate(black)), 0)
}
