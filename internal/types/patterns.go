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

// This file holds the three pure-geometric move-pattern helpers shared by
// PosInfo derivation (package position) and move generation (package
// movegen). Keeping them here, rather than in either caller, is what
// guarantees both consult the exact same geometry.

// knightDeltas are the 8 (file,rank) offsets of a knight jump.
var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// KnightPattern calls fn for each of the (up to 8) valid knight
// destinations from sq.
func KnightPattern(sq Square, fn func(target Square)) {
	file := sq.FileOf()
	rank := sq.RankOf()
	for _, d := range knightDeltas {
		f := file + d[0]
		r := rank + d[1]
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		fn(SquareOf(f, r))
	}
}

// rayDirs indexes the 8 sliding rays in the canonical order N, NE, E, SE,
// S, SW, W, NW. rayIdx below always refers to an index into this array.
var rayDirs = Directions

// diagonalRays and orthogonalRays are the ray indices a Bishop/Rook walks.
var diagonalRays = [4]int{1, 3, 5, 7}
var orthogonalRays = [4]int{0, 2, 4, 6}

// SlidingPiecePattern calls fn(target, rayIdx) for every square along
// every ray that pt (Bishop, Rook or Queen) slides on from sq, stopping a
// given ray as soon as fn returns false for it (e.g. because the square
// was occupied).
func SlidingPiecePattern(sq Square, pt PieceType, fn func(target Square, rayIdx int) bool) {
	var rays []int
	switch pt {
	case Bishop:
		rays = diagonalRays[:]
	case Rook:
		rays = orthogonalRays[:]
	default:
		rays = []int{0, 1, 2, 3, 4, 5, 6, 7}
	}
	for _, rayIdx := range rays {
		cur := sq
		for {
			cur = cur.To(rayDirs[rayIdx])
			if cur == SqNone {
				break
			}
			if !fn(cur, rayIdx) {
				break
			}
		}
	}
}

// PawnMoveKind distinguishes the three kinds of candidate squares
// PawnPattern produces.
type PawnMoveKind int

const (
	PawnPush PawnMoveKind = iota
	PawnDoublePush
	PawnCapture
)

var pawnAttackDirs = [2][2]Direction{
	{Northeast, Northwest},
	{Southeast, Southwest},
}

// PawnPattern calls fn for the forward push, the double push (when sq is
// on side's starting rank), and the two diagonal captures, purely by
// geometry - it does not consult board occupancy. The caller is
// responsible for checking that push squares are empty and capture
// squares hold an enemy piece (or the en-passant target).
func PawnPattern(sq Square, side Side, fn func(target Square, kind PawnMoveKind), attackOnly bool) {
	if !attackOnly {
		push := sq.To(side.PawnDirection())
		if push != SqNone {
			fn(push, PawnPush)
			if sq.RankOf() == side.PawnStartRank() {
				if double := push.To(side.PawnDirection()); double != SqNone {
					fn(double, PawnDoublePush)
				}
			}
		}
	}
	for _, d := range pawnAttackDirs[side] {
		if t := sq.To(d); t != SqNone {
			fn(t, PawnCapture)
		}
	}
}
