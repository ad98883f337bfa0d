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
	"math/bits"
	"strings"
)

// BitBoard is a 64-bit set of squares, bit i corresponding to Square(i).
type BitBoard uint64

const (
	FileA BitBoard = 0x0101010101010101
	FileH BitBoard = FileA << 7
	Rank1 BitBoard = 0xFF
	Rank8 BitBoard = Rank1 << 56
)

var sqBb [SquareLength]BitBoard

func init() {
	for s := Square(0); s < SquareLength; s++ {
		sqBb[s] = BitBoard(1) << uint(s)
	}
}

// SquareBb returns the single-bit bitboard for sq.
func SquareBb(sq Square) BitBoard {
	return sqBb[sq]
}

// Has reports whether sq is set in b.
func (b BitBoard) Has(sq Square) bool {
	return b&sqBb[sq] != 0
}

// Push sets sq in b.
func (b BitBoard) Push(sq Square) BitBoard {
	return b | sqBb[sq]
}

// Pop clears sq in b.
func (b BitBoard) Pop(sq Square) BitBoard {
	return b &^ sqBb[sq]
}

// PopCount returns the number of set bits.
func (b BitBoard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least-significant set square, or SqNone if b is empty.
func (b BitBoard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least-significant set square and b with that bit cleared.
func (b BitBoard) PopLsb() (Square, BitBoard) {
	sq := b.Lsb()
	if sq == SqNone {
		return SqNone, b
	}
	return sq, b.Pop(sq)
}

// PawnAttacksLeft shifts a bitboard of side's pawns one step diagonally
// toward file a (from White's perspective; toward file h for Black),
// masking off the wrap-around file so edge pawns don't attack around the
// board.
func PawnAttacksLeft(pawns BitBoard, side Side) BitBoard {
	if side == White {
		return (pawns &^ FileA) << 7
	}
	return (pawns &^ FileH) >> 7
}

// PawnAttacksRight shifts a bitboard of side's pawns one step diagonally
// toward file h (from White's perspective; toward file a for Black).
func PawnAttacksRight(pawns BitBoard, side Side) BitBoard {
	if side == White {
		return (pawns &^ FileH) << 9
	}
	return (pawns &^ FileA) >> 9
}

// PawnAttacks returns every square attacked by the given bitboard of
// pawns belonging to side.
func PawnAttacks(pawns BitBoard, side Side) BitBoard {
	return PawnAttacksLeft(pawns, side) | PawnAttacksRight(pawns, side)
}

func (b BitBoard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Has(SquareOf(file, rank)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
