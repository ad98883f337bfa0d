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

// Package position implements the Board: piece placement, make/unmake,
// castling/en-passant state, the incrementally maintained Zobrist keys,
// and the PosInfo (check/pin/attack) derivation the move generator and
// evaluator both consult.
package position

import (
	"fmt"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/assert"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	. "github.com/corvidchess/corvid/internal/types"
)

var log *logging.Logger = myLogging.GetLog("position")

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxRecordDepth is the initial capacity of the move-record stack, which
// grows by append beyond it.
const maxRecordDepth = MaxDepth

// MoveRecord is the information needed to exactly undo one PlayMove: the
// move itself (with Captured filled in with whatever piece actually left
// the board, including an en-passant victim), the castling rights before
// the move, and the en-passant target square before the move.
type MoveRecord struct {
	Move           Move
	CastlingBefore CastleFlag
	EpTargetBefore Square
}

// Board is the mutable chess position shared by the move generator,
// evaluator and search.
type Board struct {
	pieces     [SquareLength]Piece
	side       Side
	kingSquare [SideLength]Square

	castling CastleFlag
	epTarget Square
	epStart  Square

	records []MoveRecord

	key     Key
	pawnKey Key

	// keyHistory is every key the board has passed through since
	// SetThisAsStart, one entry per PlayMove - the repetition-detection
	// hook the search does not yet consult (see DESIGN.md).
	keyHistory []Key

	ply int
}

// NewBoard returns a Board in the standard starting position.
func NewBoard() *Board {
	b, err := ParseFEN(StartFen)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in start FEN: %v", err))
	}
	return b
}

// newEmptyBoard allocates a Board with every square empty, used only by
// the FEN loader which has privileged direct placement access.
func newEmptyBoard() *Board {
	b := &Board{
		epTarget:   SqNone,
		epStart:    SqNone,
		records:    make([]MoveRecord, 0, maxRecordDepth),
		keyHistory: make([]Key, 0, maxRecordDepth),
	}
	for sq := Square(0); sq < SquareLength; sq++ {
		b.pieces[sq] = PieceEmpty
	}
	b.kingSquare[White] = SqNone
	b.kingSquare[Black] = SqNone
	return b
}

// PlacePiece puts p on sq and updates incremental state. Used only by the
// FEN loader (privileged access) while constructing a fresh Board - never
// called mid-search.
func (b *Board) placePiece(sq Square, p Piece) {
	if assert.DEBUG {
		assert.Assert(b.pieces[sq].IsEmpty(), "placePiece onto occupied square %s", sq)
	}
	b.pieces[sq] = p
	b.key ^= PieceKey(p, sq)
	if p.TypeOf() == Pawn {
		b.pawnKey ^= PieceKey(p, sq)
	}
	if p.TypeOf() == King {
		b.kingSquare[p.ColorOf()] = sq
	}
}

// PieceAt returns the piece on sq (PieceEmpty if none).
func (b *Board) PieceAt(sq Square) Piece {
	return b.pieces[sq]
}

// SideToMove returns the side to move.
func (b *Board) SideToMove() Side {
	return b.side
}

// KingSquare returns the square of side's king.
func (b *Board) KingSquare(side Side) Square {
	return b.kingSquare[side]
}

// CastlingRights returns the current castling rights.
func (b *Board) CastlingRights() CastleFlag {
	return b.castling
}

// EpTarget returns the current en-passant target square (SqNone if none).
func (b *Board) EpTarget() Square {
	return b.epTarget
}

// Ply returns the number of half-moves played since the board was reset.
func (b *Board) Ply() int {
	return b.ply
}

// Key returns the incrementally maintained Zobrist key.
func (b *Board) Key() Key {
	return b.key
}

// PawnKey returns the incrementally maintained pawn-only Zobrist key.
func (b *Board) PawnKey() Key {
	return b.pawnKey
}

// RecomputeKey recomputes the Zobrist key from scratch, for invariant
// checking in tests.
func (b *Board) RecomputeKey() Key {
	var k Key
	for sq := Square(0); sq < SquareLength; sq++ {
		if p := b.pieces[sq]; !p.IsEmpty() {
			k ^= PieceKey(p, sq)
		}
	}
	k ^= CastlingKey(b.castling)
	k ^= EpKey(b.epTarget)
	if b.side == Black {
		k ^= ZobristTurn
	}
	return k
}

// RecomputePawnKey recomputes the pawn-only Zobrist key from scratch.
func (b *Board) RecomputePawnKey() Key {
	var k Key
	for sq := Square(0); sq < SquareLength; sq++ {
		if p := b.pieces[sq]; !p.IsEmpty() && p.TypeOf() == Pawn {
			k ^= PieceKey(p, sq)
		}
	}
	return k
}

// SetThisAsStart snapshots the current en-passant target as the
// "starting" one and empties the move-record stack. Used after a UCI
// "position ... moves ..." sequence has been replayed, so the search's
// record stack begins empty at the position actually to be searched.
func (b *Board) SetThisAsStart() {
	b.epStart = b.epTarget
	b.records = b.records[:0]
	b.keyHistory = b.keyHistory[:0]
	b.ply = 0
}

// backRankOf returns the back rank (0-based) for side.
func backRankOf(side Side) int {
	if side == White {
		return 0
	}
	return 7
}

func castleRightsOf(side Side) (kingside, queenside CastleFlag) {
	return ForSide(side)
}

// castlingSquareFlag returns the single castling-right flag affected when
// a rook moves to or from sq, or CastleNone if sq is not a corner.
func castlingSquareFlag(sq Square) CastleFlag {
	switch sq {
	case SqA1:
		return WhiteQueenside
	case SqH1:
		return WhiteKingside
	case SqA8:
		return BlackQueenside
	case SqH8:
		return BlackKingside
	}
	return CastleNone
}

// PlayMove applies m to the board and pushes a MoveRecord so it can later
// be undone by UnplayMove. The protocol below is order-sensitive: each
// step is mirrored exactly, in reverse, by UnplayMove.
func (b *Board) PlayMove(m Move) {
	mover := b.side
	origin, target := m.Origin, m.Target

	movingPiece := b.pieces[origin]
	if assert.DEBUG {
		assert.Assert(!movingPiece.IsEmpty(), "PlayMove from empty square %s", origin)
		assert.Assert(movingPiece.ColorOf() == mover, "PlayMove moves opponent's piece")
	}

	castlingBefore := b.castling
	epBefore := b.epTarget

	// 1. remove current castling rights from the key - they may change below.
	b.key ^= CastlingKey(b.castling)

	// 2. move the piece, capturing whatever (if anything) stood on target.
	var actualCaptured Piece = PieceEmpty
	if !m.Flags.Has(EnPassant) {
		actualCaptured = b.pieces[target]
		if !actualCaptured.IsEmpty() {
			b.key ^= PieceKey(actualCaptured, target)
			if actualCaptured.TypeOf() == Pawn {
				b.pawnKey ^= PieceKey(actualCaptured, target)
			}
		}
	}
	b.key ^= PieceKey(movingPiece, origin)
	if movingPiece.TypeOf() == Pawn {
		b.pawnKey ^= PieceKey(movingPiece, origin)
	}
	b.pieces[origin] = PieceEmpty
	b.pieces[target] = movingPiece
	b.key ^= PieceKey(movingPiece, target)
	if movingPiece.TypeOf() == Pawn {
		b.pawnKey ^= PieceKey(movingPiece, target)
	}
	if movingPiece.TypeOf() == King {
		b.kingSquare[mover] = target
	}

	// 3. en passant: remove the pawn standing one rank behind ep_target.
	if m.Flags.Has(EnPassant) {
		capturedSq := target.To(mover.Flip().PawnDirection())
		capturedPawn := b.pieces[capturedSq]
		actualCaptured = capturedPawn
		b.key ^= PieceKey(capturedPawn, capturedSq)
		b.pawnKey ^= PieceKey(capturedPawn, capturedSq)
		b.pieces[capturedSq] = PieceEmpty
	}

	// 4. promotion: replace the piece now on target.
	if m.Flags.IsPromotion() {
		b.key ^= PieceKey(movingPiece, target)
		b.pawnKey ^= PieceKey(movingPiece, target)
		promoted := MakePiece(mover, m.Flags.PromotedType())
		b.pieces[target] = promoted
		b.key ^= PieceKey(promoted, target)
	}

	// 5. castle: move the rook, clear both rights for the moving side.
	if m.Flags.Has(Castle) {
		rank := backRankOf(mover)
		kingside := target > origin
		var rookOrigin, rookTarget Square
		if kingside {
			rookOrigin = SquareOf(7, rank)
			rookTarget = SquareOf(5, rank)
		} else {
			rookOrigin = SquareOf(0, rank)
			rookTarget = SquareOf(3, rank)
		}
		rook := b.pieces[rookOrigin]
		b.key ^= PieceKey(rook, rookOrigin)
		b.pieces[rookOrigin] = PieceEmpty
		b.pieces[rookTarget] = rook
		b.key ^= PieceKey(rook, rookTarget)
		ks, qs := castleRightsOf(mover)
		b.castling = b.castling.Remove(ks | qs)
	}

	// 6. en-passant target square.
	b.key ^= EpKey(b.epTarget)
	if m.Flags.Has(DoublePush) {
		b.epTarget = origin.To(mover.PawnDirection())
	} else {
		b.epTarget = SqNone
	}
	b.key ^= EpKey(b.epTarget)

	// 7. castling-rights updates from rook/king moves and rook captures.
	if movingPiece.TypeOf() == King {
		ks, qs := castleRightsOf(mover)
		b.castling = b.castling.Remove(ks | qs)
	}
	if f := castlingSquareFlag(origin); f != CastleNone {
		b.castling = b.castling.Remove(f)
	}
	if f := castlingSquareFlag(target); f != CastleNone {
		b.castling = b.castling.Remove(f)
	}

	// 8. XOR the new castling rights back in.
	b.key ^= CastlingKey(b.castling)

	// 9. flip side to move.
	b.side = b.side.Flip()
	b.key ^= ZobristTurn

	// 10. push the record.
	recorded := m
	recorded.Captured = actualCaptured
	b.records = append(b.records, MoveRecord{Move: recorded, CastlingBefore: castlingBefore, EpTargetBefore: epBefore})
	b.keyHistory = append(b.keyHistory, b.key)
	b.ply++
}

// UnplayMove undoes the most recent PlayMove.
func (b *Board) UnplayMove() {
	if assert.DEBUG {
		assert.Assert(len(b.records) > 0, "UnplayMove with empty record stack")
	}
	rec := b.records[len(b.records)-1]
	b.records = b.records[:len(b.records)-1]
	b.keyHistory = b.keyHistory[:len(b.keyHistory)-1]
	m := rec.Move

	// 9 (reverse): flip side back.
	b.key ^= ZobristTurn
	b.side = b.side.Flip()
	mover := b.side

	// 8/7 (reverse): restore castling rights.
	b.key ^= CastlingKey(b.castling)
	b.castling = rec.CastlingBefore
	b.key ^= CastlingKey(b.castling)

	// 6 (reverse): restore en-passant target.
	b.key ^= EpKey(b.epTarget)
	b.epTarget = rec.EpTargetBefore
	b.key ^= EpKey(b.epTarget)

	origin, target := m.Origin, m.Target

	// 5 (reverse): move the castled rook back.
	if m.Flags.Has(Castle) {
		rank := backRankOf(mover)
		kingside := target > origin
		var rookOrigin, rookTarget Square
		if kingside {
			rookOrigin = SquareOf(7, rank)
			rookTarget = SquareOf(5, rank)
		} else {
			rookOrigin = SquareOf(0, rank)
			rookTarget = SquareOf(3, rank)
		}
		rook := b.pieces[rookTarget]
		b.key ^= PieceKey(rook, rookTarget)
		b.pieces[rookTarget] = PieceEmpty
		b.pieces[rookOrigin] = rook
		b.key ^= PieceKey(rook, rookOrigin)
	}

	// 4 (reverse): undo promotion - the piece on target becomes a pawn again.
	pieceOnTarget := b.pieces[target]
	if m.Flags.IsPromotion() {
		b.key ^= PieceKey(pieceOnTarget, target)
		pieceOnTarget = MakePiece(mover, Pawn)
		b.pawnKey ^= PieceKey(pieceOnTarget, target)
		b.key ^= PieceKey(pieceOnTarget, target)
	}

	// 2 (reverse): move the piece back to origin.
	b.key ^= PieceKey(pieceOnTarget, target)
	if pieceOnTarget.TypeOf() == Pawn {
		b.pawnKey ^= PieceKey(pieceOnTarget, target)
	}
	b.pieces[target] = PieceEmpty
	b.pieces[origin] = pieceOnTarget
	b.key ^= PieceKey(pieceOnTarget, origin)
	if pieceOnTarget.TypeOf() == Pawn {
		b.pawnKey ^= PieceKey(pieceOnTarget, origin)
	}
	if pieceOnTarget.TypeOf() == King {
		b.kingSquare[mover] = origin
	}

	// 3 (reverse): restore the en-passant victim.
	if m.Flags.Has(EnPassant) {
		capturedSq := target.To(mover.Flip().PawnDirection())
		b.pieces[capturedSq] = m.Captured
		b.key ^= PieceKey(m.Captured, capturedSq)
		b.pawnKey ^= PieceKey(m.Captured, capturedSq)
	} else if !m.Captured.IsEmpty() {
		b.pieces[target] = m.Captured
		b.key ^= PieceKey(m.Captured, target)
		if m.Captured.TypeOf() == Pawn {
			b.pawnKey ^= PieceKey(m.Captured, target)
		}
	}

	b.ply--
}

func (b *Board) String() string {
	var s string
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			s += b.pieces[SquareOf(file, rank)].String()
		}
		s += "\n"
	}
	return s
}
