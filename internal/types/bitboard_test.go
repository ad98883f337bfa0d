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

func TestBitBoardPushPop(t *testing.T) {
	var b BitBoard
	b = b.Push(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.Equal(t, 1, b.PopCount())
	b = b.Pop(SqE4)
	assert.False(t, b.Has(SqE4))
	assert.EqualValues(t, 0, b)
}

func TestBitBoardLsbPopLsb(t *testing.T) {
	b := SquareBb(SqC3) | SquareBb(SqF6)
	sq, rest := b.PopLsb()
	assert.Equal(t, SqC3, sq)
	assert.Equal(t, SqF6, rest.Lsb())
}

func TestPawnAttacksNoWrap(t *testing.T) {
	pawns := SquareBb(SqA2) | SquareBb(SqH2)
	attacks := PawnAttacks(pawns, White)
	assert.True(t, attacks.Has(SqB3))
	assert.True(t, attacks.Has(SqG3))
	assert.False(t, attacks.Has(SqA1))
}
