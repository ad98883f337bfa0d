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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceRoundTrip(t *testing.T) {
	for _, c := range []Side{White, Black} {
		for pt := King; pt < PtLength; pt++ {
			p := MakePiece(c, pt)
			assert.Equal(t, c, p.ColorOf())
			assert.Equal(t, pt, p.TypeOf())
		}
	}
}

func TestPieceEmpty(t *testing.T) {
	assert.True(t, PieceEmpty.IsEmpty())
	assert.False(t, MakePiece(White, Pawn).IsEmpty())
}

func TestPieceTypeValues(t *testing.T) {
	assert.EqualValues(t, 0, PtNone.ValueOf())
	assert.EqualValues(t, 0, King.ValueOf())
	assert.EqualValues(t, 1000, Queen.ValueOf())
	assert.EqualValues(t, 350, Bishop.ValueOf())
	assert.EqualValues(t, 350, Knight.ValueOf())
	assert.EqualValues(t, 525, Rook.ValueOf())
	assert.EqualValues(t, 100, Pawn.ValueOf())
}
