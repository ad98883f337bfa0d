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

func TestSquareToWrap(t *testing.T) {
	assert.Equal(t, SqNone, SqA4.To(West))
	assert.Equal(t, SqNone, SqH4.To(East))
	assert.Equal(t, SqNone, SqA8.To(North))
	assert.Equal(t, SqNone, SqH1.To(South))
	assert.Equal(t, SqB5, SqA4.To(Northeast))
}

func TestMakeSquareRoundTrip(t *testing.T) {
	for _, name := range squareNames {
		sq := MakeSquare(name)
		assert.True(t, sq.IsValid())
		assert.Equal(t, name, sq.String())
	}
}

func TestSquareOfFileRank(t *testing.T) {
	sq := SquareOf(4, 3)
	assert.Equal(t, 4, sq.FileOf())
	assert.Equal(t, 3, sq.RankOf())
	assert.Equal(t, SqE4, sq)
}
