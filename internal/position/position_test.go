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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/corvid/internal/types"
)

func TestNewBoardStartPos(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, SqE1, b.KingSquare(White))
	assert.Equal(t, SqE8, b.KingSquare(Black))
	assert.Equal(t, CastleAll, b.CastlingRights())
	assert.Equal(t, SqNone, b.EpTarget())
	assert.Equal(t, b.RecomputeKey(), b.Key())
	assert.Equal(t, b.RecomputePawnKey(), b.PawnKey())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/8/8/4K2k w - - 0 1",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, b.FEN())
		assert.Equal(t, b.RecomputeKey(), b.Key())
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	_, err := ParseFEN("not a fen")
	assert.Error(t, err)

	_, err = ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	assert.Error(t, err)

	_, err = ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1")
	assert.Error(t, err)
}

func TestPlayUnplaySimpleMoveRoundTrip(t *testing.T) {
	b := NewBoard()
	before := b.FEN()
	beforeKey := b.Key()

	m := Move{Origin: SqE2, Target: SqE4, Captured: PieceEmpty, Flags: DoublePush}
	b.PlayMove(m)
	assert.NotEqual(t, before, b.FEN())
	assert.Equal(t, b.RecomputeKey(), b.Key())
	assert.Equal(t, b.RecomputePawnKey(), b.PawnKey())

	b.UnplayMove()
	assert.Equal(t, before, b.FEN())
	assert.Equal(t, beforeKey, b.Key())
}

func TestPlayUnplayCaptureRoundTrip(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/4r3/8/4R3/4K3 w - - 0 1")
	assert.NoError(t, err)
	before := b.FEN()
	beforeKey := b.Key()

	m := Move{Origin: SqE2, Target: SqE4, Captured: MakePiece(Black, Rook), Flags: Basic}
	b.PlayMove(m)
	p := b.PieceAt(SqE4)
	assert.Equal(t, Rook, p.TypeOf())
	assert.Equal(t, White, p.ColorOf())
	assert.Equal(t, b.RecomputeKey(), b.Key())

	b.UnplayMove()
	assert.Equal(t, before, b.FEN())
	assert.Equal(t, beforeKey, b.Key())
}

func TestPlayUnplayEnPassantRoundTrip(t *testing.T) {
	b, err := ParseFEN("7k/8/8/3pP3/8/8/8/7K w - d6 0 1")
	assert.NoError(t, err)
	before := b.FEN()
	beforeKey := b.Key()

	m := Move{Origin: SqE5, Target: SqD6, Captured: PieceEmpty, Flags: EnPassant}
	b.PlayMove(m)
	assert.True(t, b.PieceAt(SqD5).IsEmpty(), "captured pawn should be removed")
	assert.Equal(t, b.RecomputeKey(), b.Key())
	assert.Equal(t, b.RecomputePawnKey(), b.PawnKey())

	b.UnplayMove()
	assert.Equal(t, before, b.FEN())
	assert.Equal(t, beforeKey, b.Key())
	assert.Equal(t, MakePiece(Black, Pawn), b.PieceAt(SqD5))
}

func TestPlayUnplayCastleRoundTrip(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	before := b.FEN()
	beforeKey := b.Key()

	m := Move{Origin: SqE1, Target: SqG1, Captured: PieceEmpty, Flags: Castle}
	b.PlayMove(m)
	assert.Equal(t, MakePiece(White, Rook), b.PieceAt(SqF1))
	assert.Equal(t, SqG1, b.KingSquare(White))
	assert.False(t, b.CastlingRights().Has(WhiteKingside))
	assert.Equal(t, b.RecomputeKey(), b.Key())

	b.UnplayMove()
	assert.Equal(t, before, b.FEN())
	assert.Equal(t, beforeKey, b.Key())
	assert.Equal(t, SqE1, b.KingSquare(White))
}

func TestPlayUnplayPromotionRoundTrip(t *testing.T) {
	b, err := ParseFEN("7k/4P3/8/8/8/8/8/7K w - - 0 1")
	assert.NoError(t, err)
	before := b.FEN()
	beforeKey := b.Key()

	m := Move{Origin: SqE7, Target: SqE8, Captured: PieceEmpty, Flags: PromoteQueen}
	b.PlayMove(m)
	assert.Equal(t, MakePiece(White, Queen), b.PieceAt(SqE8))
	assert.Equal(t, b.RecomputeKey(), b.Key())
	assert.Equal(t, b.RecomputePawnKey(), b.PawnKey())

	b.UnplayMove()
	assert.Equal(t, before, b.FEN())
	assert.Equal(t, beforeKey, b.Key())
	assert.Equal(t, MakePiece(White, Pawn), b.PieceAt(SqE7))
}

func TestPlayUnplayPromotionCaptureRoundTrip(t *testing.T) {
	b, err := ParseFEN("3n3k/4P3/8/8/8/8/8/7K w - - 0 1")
	assert.NoError(t, err)
	before := b.FEN()
	beforeKey := b.Key()

	m := Move{Origin: SqE7, Target: SqD8, Captured: MakePiece(Black, Knight), Flags: PromoteKnight}
	b.PlayMove(m)
	assert.Equal(t, MakePiece(White, Knight), b.PieceAt(SqD8))
	assert.Equal(t, b.RecomputeKey(), b.Key())

	b.UnplayMove()
	assert.Equal(t, before, b.FEN())
	assert.Equal(t, beforeKey, b.Key())
	assert.Equal(t, MakePiece(Black, Knight), b.PieceAt(SqD8))
}

func TestSetThisAsStartClearsRecords(t *testing.T) {
	b := NewBoard()
	b.PlayMove(Move{Origin: SqE2, Target: SqE4, Captured: PieceEmpty, Flags: DoublePush})
	b.SetThisAsStart()
	assert.Equal(t, 0, b.Ply())
	assert.Equal(t, SqE3, b.EpTarget())
}

func TestGetPosInfoNoCheck(t *testing.T) {
	b, err := ParseFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	assert.NoError(t, err)
	info := b.GetPosInfo()
	assert.False(t, info.Check)
	assert.False(t, info.DoubleCheck)
}

func TestGetPosInfoRookCheck(t *testing.T) {
	b, err := ParseFEN("4r2k/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	info := b.GetPosInfo()
	assert.True(t, info.Check)
	assert.False(t, info.DoubleCheck)
	assert.True(t, info.CheckBoard.Has(SqE8))
}

func TestGetPosInfoPinDetection(t *testing.T) {
	// White king e1, white bishop e2 pinned by black rook e8 along the e-file.
	b, err := ParseFEN("4r3/8/8/8/8/8/4B3/4K3 w - - 0 1")
	assert.NoError(t, err)
	info := b.GetPosInfo()
	assert.False(t, info.Check)
	assert.True(t, info.UnifiedPinBoard.Has(SqE2))
}

func TestGetPosInfoKnightCheck(t *testing.T) {
	b, err := ParseFEN("7k/8/8/8/8/3n4/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	info := b.GetPosInfo()
	assert.True(t, info.Check)
	assert.True(t, info.CheckBoard.Has(SqD3))
}

func TestGetPosInfoAttackBoardIncludesKingSquareContinuation(t *testing.T) {
	// Black rook on e8 attacks through the white king on e2 down to e1.
	b, err := ParseFEN("4r2k/8/8/8/8/8/4K3/8 w - - 0 1")
	assert.NoError(t, err)
	info := b.GetPosInfo()
	assert.True(t, info.AttackBoard.Has(SqE2))
	assert.True(t, info.AttackBoard.Has(SqE1), "ray continues past the king so it cannot step back along it")
}
