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

	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// TestEnPassantRejectedUnderDiscoveredCheck covers spec §4.3 rule 4: an
// en-passant capture that neither captures the checker nor blocks the
// check ray must not be generated, even though it clears the normal
// horizontal-pin exposure check. Black's d7-d5 opens the e8-a4 diagonal
// onto White's king; White's only reply is to move the king or block
// the diagonal, never the unrelated c5xd6 en-passant capture.
func TestEnPassantRejectedUnderDiscoveredCheck(t *testing.T) {
	b, err := position.ParseFEN("4b2k/3p4/8/2P5/K7/8/8/8 b - - 0 1")
	assert.NoError(t, err)

	b.PlayMove(Move{Origin: SqD7, Target: SqD5, Flags: DoublePush})
	assert.Equal(t, SqD6, b.EpTarget())

	info := b.GetPosInfo()
	assert.True(t, info.Check)

	var ml moveslice.MoveSlice
	GetAllMoves(b, info, &ml)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		assert.False(t, m.Origin == SqC5 && m.Target == SqD6 && m.Flags.Has(EnPassant),
			"illegal en-passant capture c5d6 generated while in discovered check")
	}
}

func TestGetMovesReturnsOnlyRequestedPieceMoves(t *testing.T) {
	b := position.NewBoard()
	info := b.GetPosInfo()

	var ml moveslice.MoveSlice
	GetMoves(b, info, SqE2, &ml)

	assert.Equal(t, 2, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		assert.Equal(t, SqE2, ml.At(i).Origin)
	}
}

func TestGetMovesEmptySquareReturnsNothing(t *testing.T) {
	b := position.NewBoard()
	info := b.GetPosInfo()

	var ml moveslice.MoveSlice
	GetMoves(b, info, SqE4, &ml)

	assert.Equal(t, 0, ml.Len())
}

func TestIsSquareAttackedStartPosition(t *testing.T) {
	b := position.NewBoard()

	assert.True(t, IsSquareAttacked(b, SqE3, White))
	assert.False(t, IsSquareAttacked(b, SqE5, White))
	assert.True(t, IsSquareAttacked(b, SqE6, Black))
}

func TestIsSquareAttackedBySlidingPiece(t *testing.T) {
	b, err := position.ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)

	assert.True(t, IsSquareAttacked(b, SqD1, White))
	assert.True(t, IsSquareAttacked(b, SqA8, White))
	assert.False(t, IsSquareAttacked(b, SqA8, Black))
}
