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

import "fmt"

// Square identifies one of the 64 board squares, a1=0 .. h8=63, rank-major
// (square = rank*8 + file).
type Square int8

const (
	SqA1, SqB1, SqC1, SqD1, SqE1, SqF1, SqG1, SqH1 Square = iota, iota + 1, iota + 2, iota + 3, iota + 4, iota + 5, iota + 6, iota + 7
)

const (
	SqA2 Square = 8 + iota
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
)

const (
	SqA3 Square = 16 + iota
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
)

const (
	SqA4 Square = 24 + iota
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
)

const (
	SqA5 Square = 32 + iota
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
)

const (
	SqA6 Square = 40 + iota
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
)

const (
	SqA7 Square = 48 + iota
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
)

const (
	SqA8 Square = 56 + iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
)

// SqNone is the invalid/empty square sentinel (used for en-passant target
// and captured-square markers).
const SqNone Square = 64

// IsValid reports whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq <= SqH8
}

// FileOf returns the file (0=a .. 7=h) of sq.
func (sq Square) FileOf() int {
	return int(sq) & 7
}

// RankOf returns the rank (0=rank1 .. 7=rank8) of sq.
func (sq Square) RankOf() int {
	return int(sq) >> 3
}

// SquareOf builds a Square from a zero-based file and rank.
func SquareOf(file, rank int) Square {
	return Square(rank*8 + file)
}

// To steps sq one square in direction d, returning SqNone if that would
// wrap around a board edge. Callers that need to walk a ray must check
// for SqNone after every step.
func (sq Square) To(d Direction) Square {
	if !sq.IsValid() {
		return SqNone
	}
	file := sq.FileOf()
	rank := sq.RankOf()
	switch d {
	case North:
		if rank == 7 {
			return SqNone
		}
		rank++
	case South:
		if rank == 0 {
			return SqNone
		}
		rank--
	case East:
		if file == 7 {
			return SqNone
		}
		file++
	case West:
		if file == 0 {
			return SqNone
		}
		file--
	case Northeast:
		if rank == 7 || file == 7 {
			return SqNone
		}
		rank++
		file++
	case Northwest:
		if rank == 7 || file == 0 {
			return SqNone
		}
		rank++
		file--
	case Southeast:
		if rank == 0 || file == 7 {
			return SqNone
		}
		rank--
		file++
	case Southwest:
		if rank == 0 || file == 0 {
			return SqNone
		}
		rank--
		file--
	default:
		return SqNone
	}
	return SquareOf(file, rank)
}

var squareNames = [...]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// String renders sq in algebraic notation ("e4"), or "-" for SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return squareNames[sq]
}

// MakeSquare parses algebraic notation ("e4") into a Square. Returns
// SqNone for malformed input.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SqNone
	}
	return SquareOf(file, rank)
}

func (sq Square) GoString() string {
	return fmt.Sprintf("Square(%d=%s)", int(sq), sq.String())
}
