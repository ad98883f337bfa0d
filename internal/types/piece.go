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

// Piece packs a PieceType and a Side. PieceEmpty is the distinguished
// "no piece" value; a square is empty iff the piece stored there has
// PieceType None.
type Piece int8

// MakePiece packs a side and piece type into a Piece.
func MakePiece(c Side, pt PieceType) Piece {
	return Piece(int8(c)*int8(PtLength) + int8(pt))
}

// PieceEmpty is the value stored on an empty square.
var PieceEmpty = MakePiece(White, PtNone)

// ColorOf returns the side owning p. Undefined for PieceEmpty.
func (p Piece) ColorOf() Side {
	return Side(int8(p) / int8(PtLength))
}

// TypeOf returns the piece type of p.
func (p Piece) TypeOf() PieceType {
	return PieceType(int8(p) % int8(PtLength))
}

// ValueOf returns the material value of p.
func (p Piece) ValueOf() int16 {
	return p.TypeOf().ValueOf()
}

// IsEmpty reports whether p is the empty-square marker.
func (p Piece) IsEmpty() bool {
	return p.TypeOf() == PtNone
}

// Char returns the FEN letter for p: upper case for White, lower for Black.
func (p Piece) Char() byte {
	c := p.TypeOf().Char()
	if p.ColorOf() == Black {
		return c + ('a' - 'A')
	}
	return c
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "-"
	}
	return string(p.Char())
}
