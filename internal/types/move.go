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

// MoveFlag marks the special properties of a Move. Promotion flags are
// mutually exclusive and only ever set together with the piece they
// represent.
type MoveFlag uint8

const (
	Basic        MoveFlag = 0
	EnPassant    MoveFlag = 1
	Castle       MoveFlag = 2
	DoublePush   MoveFlag = 4
	PromoteQueen MoveFlag = 8
	PromoteRook  MoveFlag = 16
	PromoteKnight MoveFlag = 32
	PromoteBishop MoveFlag = 64

	PromotionMask MoveFlag = PromoteQueen | PromoteRook | PromoteKnight | PromoteBishop
)

// Has reports whether all bits of f are set.
func (mf MoveFlag) Has(f MoveFlag) bool {
	return mf&f == f
}

// IsPromotion reports whether mf carries any promotion flag.
func (mf MoveFlag) IsPromotion() bool {
	return mf&PromotionMask != 0
}

// PromotedType returns the piece type a promotion flag represents, or
// PtNone if mf carries no promotion.
func (mf MoveFlag) PromotedType() PieceType {
	switch {
	case mf.Has(PromoteQueen):
		return Queen
	case mf.Has(PromoteRook):
		return Rook
	case mf.Has(PromoteKnight):
		return Knight
	case mf.Has(PromoteBishop):
		return Bishop
	}
	return PtNone
}

// Move is a single chess move: where a piece came from, where it goes,
// what (if anything) it captured, and any special flags.
type Move struct {
	Origin   Square
	Target   Square
	Captured Piece
	Flags    MoveFlag
}

// MoveNone is the sentinel "no move": both squares are SqNone, so it is
// not the zero value of Move.
var MoveNone = Move{Origin: SqNone, Target: SqNone, Captured: PieceEmpty, Flags: Basic}

// IsValid reports whether m has real origin/target squares.
func (m Move) IsValid() bool {
	return m.Origin.IsValid() && m.Target.IsValid()
}

// String renders m in UCI long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.Origin.String() + m.Target.String()
	switch m.Flags.PromotedType() {
	case Queen:
		s += "q"
	case Rook:
		s += "r"
	case Knight:
		s += "n"
	case Bishop:
		s += "b"
	}
	return s
}
