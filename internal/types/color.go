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

// Side is the color to move, White or Black.
type Side uint8

const (
	White Side = iota
	Black
	SideLength
)

// Flip returns the other side.
func (c Side) Flip() Side {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Side) IsValid() bool {
	return c == White || c == Black
}

func (c Side) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// pawnDirection is the rank direction a side's pawns move in.
var pawnDirection = [2]Direction{North, South}

// PawnDirection returns the direction this side's pawns advance.
func (c Side) PawnDirection() Direction {
	return pawnDirection[c]
}

// pawnRank is the starting rank (0-based) of this side's pawns.
var pawnRank = [2]int{1, 6}

// PawnStartRank returns the 0-based rank this side's pawns start on.
func (c Side) PawnStartRank() int {
	return pawnRank[c]
}

// promotionRank is the 0-based rank a pawn of this side promotes on.
var promotionRank = [2]int{7, 0}

// PromotionRank returns the 0-based rank this side's pawns promote on.
func (c Side) PromotionRank() int {
	return promotionRank[c]
}
