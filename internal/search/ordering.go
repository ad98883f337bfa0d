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

package search

import (
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// moveScore implements spec §4.5's static move ordering: MVV-LVA for
// captures, a bonus of the promoted piece's value for promotions,
// everything else unordered (0).
func moveScore(b *position.Board, m Move) int {
	score := 0
	if !m.Captured.IsEmpty() {
		mover := b.PieceAt(m.Origin)
		score = 10*int(m.Captured.ValueOf()) - int(mover.ValueOf())
	}
	if m.Flags.IsPromotion() {
		score += int(m.Flags.PromotedType().ValueOf())
	}
	return score
}

func orderMoves(b *position.Board, moves []Move) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = moveScore(b, m)
	}
	for i := 1; i < len(moves); i++ {
		mv, sc := moves[i], scores[i]
		j := i
		for j > 0 && scores[j-1] < sc {
			moves[j] = moves[j-1]
			scores[j] = scores[j-1]
			j--
		}
		moves[j] = mv
		scores[j] = sc
	}
}

// badCapture implements spec §4.5's BadCapture test used to prune
// quiescence captures that are unlikely to gain material.
func badCapture(b *position.Board, m Move) bool {
	mover := b.PieceAt(m.Origin)
	moverValue := int(mover.ValueOf())
	capturedValue := int(m.Captured.ValueOf())

	if moverValue >= capturedValue+50 && squareDefendedByPawn(b, m.Target, mover.ColorOf().Flip()) {
		return true
	}
	if capturedValue+500 < moverValue && squareAttackedByMinor(b, m.Target, mover.ColorOf().Flip()) {
		return true
	}
	return false
}

func squareDefendedByPawn(b *position.Board, sq Square, side Side) bool {
	for _, d := range pawnAttackDirsFor(side) {
		if t := sq.To(d); t != SqNone {
			p := b.PieceAt(t)
			if !p.IsEmpty() && p.ColorOf() == side && p.TypeOf() == Pawn {
				return true
			}
		}
	}
	return false
}

func squareAttackedByMinor(b *position.Board, sq Square, side Side) bool {
	found := false
	KnightPattern(sq, func(t Square) {
		p := b.PieceAt(t)
		if !p.IsEmpty() && p.ColorOf() == side && p.TypeOf() == Knight {
			found = true
		}
	})
	if found {
		return true
	}
	SlidingPiecePattern(sq, Bishop, func(t Square, _ int) bool {
		p := b.PieceAt(t)
		if p.IsEmpty() {
			return true
		}
		if p.ColorOf() == side && p.TypeOf() == Bishop {
			found = true
		}
		return false
	})
	return found
}

func pawnAttackDirsFor(side Side) [2]Direction {
	if side == White {
		return [2]Direction{Northeast, Northwest}
	}
	return [2]Direction{Southeast, Southwest}
}
