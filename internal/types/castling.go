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

// CastleFlag is a 4-bit set of remaining castling rights.
type CastleFlag uint8

const (
	WhiteKingside  CastleFlag = 1
	WhiteQueenside CastleFlag = 2
	BlackKingside  CastleFlag = 4
	BlackQueenside CastleFlag = 8

	CastleNone CastleFlag = 0
	CastleAll  CastleFlag = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether all bits of f are set in c.
func (c CastleFlag) Has(f CastleFlag) bool {
	return c&f == f
}

// Remove clears the bits of f from c.
func (c CastleFlag) Remove(f CastleFlag) CastleFlag {
	return c &^ f
}

// Add sets the bits of f in c.
func (c CastleFlag) Add(f CastleFlag) CastleFlag {
	return c | f
}

// ForSide returns the kingside|queenside flags belonging to side.
func ForSide(side Side) (kingside, queenside CastleFlag) {
	if side == White {
		return WhiteKingside, WhiteQueenside
	}
	return BlackKingside, BlackQueenside
}

func (c CastleFlag) String() string {
	if c == CastleNone {
		return "-"
	}
	s := ""
	if c.Has(WhiteKingside) {
		s += "K"
	}
	if c.Has(WhiteQueenside) {
		s += "Q"
	}
	if c.Has(BlackKingside) {
		s += "k"
	}
	if c.Has(BlackQueenside) {
		s += "q"
	}
	return s
}
