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
	. "github.com/corvidchess/corvid/internal/types"
)

// PosInfo is derived from a Board, fresh per search node: which squares
// give check, which rays pin a friendly piece to its king, and which
// squares the side not to move attacks (needed for king-move and
// castling legality).
type PosInfo struct {
	Check       bool
	DoubleCheck bool

	CheckBoard  BitBoard
	AttackBoard BitBoard

	PinBoards       [8]BitBoard
	UnifiedPinBoard BitBoard
}

// slidesOnRay reports whether a piece of type pt, belonging to the
// attacker, slides along ray rayIdx at all (Queen: every ray; Bishop: odd
// "diagonal" indices; Rook: even "orthogonal" indices).
func slidesOnRay(pt PieceType, rayIdx int) bool {
	switch pt {
	case Queen:
		return true
	case Bishop:
		return rayIdx%2 == 1
	case Rook:
		return rayIdx%2 == 0
	}
	return false
}

// GetPosInfo computes PosInfo for the side currently to move: checks and
// pins are relative to that side's king, attackBoard is every square
// attacked by the opposing side.
func (b *Board) GetPosInfo() *PosInfo {
	info := &PosInfo{}
	turn := b.side
	attacker := turn.Flip()
	ksq := b.kingSquare[turn]

	checkCount := 0

	// knight checks
	KnightPattern(ksq, func(target Square) {
		p := b.pieces[target]
		if !p.IsEmpty() && p.ColorOf() == attacker && p.TypeOf() == Knight {
			info.CheckBoard = info.CheckBoard.Push(target)
			checkCount++
		}
	})

	// pawn checks: squares a defending pawn of `turn` would capture from
	// ksq are exactly the squares an attacking pawn standing there would
	// threaten ksq from.
	for _, d := range pawnAttackDirsFor(turn) {
		if t := ksq.To(d); t != SqNone {
			p := b.pieces[t]
			if !p.IsEmpty() && p.ColorOf() == attacker && p.TypeOf() == Pawn {
				info.CheckBoard = info.CheckBoard.Push(t)
				checkCount++
			}
		}
	}

	// sliding rays: checks and pins.
	for rayIdx, dir := range rayDirections() {
		var currentRay BitBoard
		friendlyCount := 0
		cur := ksq
		for {
			cur = cur.To(dir)
			if cur == SqNone {
				break
			}
			p := b.pieces[cur]
			if p.IsEmpty() {
				currentRay = currentRay.Push(cur)
				continue
			}
			if p.ColorOf() == turn {
				friendlyCount++
				currentRay = currentRay.Push(cur)
				if friendlyCount > 1 {
					break
				}
				continue
			}
			// enemy piece
			if slidesOnRay(p.TypeOf(), rayIdx) {
				ray := currentRay.Push(cur)
				if friendlyCount == 0 {
					info.CheckBoard |= ray
					checkCount++
				} else if friendlyCount == 1 {
					info.PinBoards[rayIdx] |= ray
				}
			}
			break
		}
	}

	info.Check = checkCount > 0
	info.DoubleCheck = checkCount > 1
	for _, pb := range info.PinBoards {
		info.UnifiedPinBoard |= pb
	}

	// attack board: every square attacked by the side not to move. Rays
	// are blocked by any piece except the defending king itself, so the
	// king cannot step backward along its own check ray.
	var pawns BitBoard
	for sq := Square(0); sq < SquareLength; sq++ {
		p := b.pieces[sq]
		if p.IsEmpty() || p.ColorOf() != attacker {
			continue
		}
		switch p.TypeOf() {
		case Pawn:
			pawns = pawns.Push(sq)
		case Knight:
			KnightPattern(sq, func(t Square) {
				info.AttackBoard = info.AttackBoard.Push(t)
			})
		case King:
			kingNeighbors(sq, func(t Square) {
				info.AttackBoard = info.AttackBoard.Push(t)
			})
		case Bishop, Rook, Queen:
			SlidingPiecePattern(sq, p.TypeOf(), func(t Square, _ int) bool {
				info.AttackBoard = info.AttackBoard.Push(t)
				if t == ksq {
					return true // the king does not block its own attacker's ray
				}
				return b.pieces[t].IsEmpty()
			})
		}
	}
	info.AttackBoard |= PawnAttacks(pawns, attacker)

	return info
}

func rayDirections() [8]Direction {
	return Directions
}

func pawnAttackDirsFor(side Side) [2]Direction {
	if side == White {
		return [2]Direction{Northeast, Northwest}
	}
	return [2]Direction{Southeast, Southwest}
}

func kingNeighbors(sq Square, fn func(Square)) {
	for _, d := range Directions {
		if t := sq.To(d); t != SqNone {
			fn(t)
		}
	}
}
