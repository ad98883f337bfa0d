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

// Package evaluator computes a static centipawn score for a Board from
// the perspective of the side to move: material, piece-square tables
// blended by game phase, mobility/king-proximity, pawn structure, and a
// handful of structural bonuses (bishop pair, king shield).
package evaluator

import (
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/transpositiontable"
	. "github.com/corvidchess/corvid/internal/types"
)

const maxPhase = 24

var passedPawnBonus = [8]int16{0, 5, 10, 20, 35, 60, 100, 0}
var weakPawnPenalty = [8]int16{-8, -10, -12, -14, -14, -12, -10, -8}

// Evaluator holds the pawn and eval caches consulted during static
// evaluation; a search owns one instance for its lifetime.
type Evaluator struct {
	pawnTT *transpositiontable.PawnTable
	evalTT *transpositiontable.EvalTable
}

func NewEvaluator() *Evaluator {
	return &Evaluator{
		pawnTT: transpositiontable.NewPawnTable(config.Settings.Search.PawnTTSizeMB),
		evalTT: transpositiontable.NewEvalTable(config.Settings.Search.EvalTTSizeMB),
	}
}

// Board is the minimal surface the evaluator needs from a position.
type Board interface {
	PieceAt(sq Square) Piece
	SideToMove() Side
	Key() Key
	PawnKey() Key
}

// Evaluate returns a centipawn score from the perspective of the side to
// move: positive is good for the mover.
func (e *Evaluator) Evaluate(b Board) Value {
	if config.Settings.Eval.UseEvalCache {
		if v, ok := e.evalTT.Probe(b.Key()); ok {
			return v
		}
	}

	side := b.SideToMove()
	var material [2]int
	phase := 0
	var mg, eg [2]int

	for sq := Square(0); sq < SquareLength; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() {
			continue
		}
		c := p.ColorOf()
		pt := p.TypeOf()

		if config.Settings.Eval.UseMaterial {
			material[c] += int(pt.ValueOf())
		}
		phase += pt.PhaseValue()

		if config.Settings.Eval.UsePST {
			idx := pstIndex(sq, c)
			mg[c] += int(pstMg[pt][idx])
			eg[c] += int(pstEg[pt][idx])
		}
	}
	if phase > maxPhase {
		phase = maxPhase
	}

	own, opp := side, side.Flip()
	score := material[own] - material[opp]
	blended := (mg[own]-mg[opp])*phase + (eg[own]-eg[opp])*(maxPhase-phase)
	score += blended / maxPhase

	if config.Settings.Eval.UseMobility {
		score += mobilityAndKingProximity(b, own) - mobilityAndKingProximity(b, opp)
	}

	if config.Settings.Eval.UsePawnStructure {
		var pawnScore int // white-minus-black
		if config.Settings.Eval.UsePawnCache {
			if cached, ok := e.pawnTT.Probe(b.PawnKey()); ok {
				pawnScore = int(cached)
			} else {
				pawnScore = pawnStructureScore(b)
				e.pawnTT.Store(b.PawnKey(), Value(pawnScore))
			}
		} else {
			pawnScore = pawnStructureScore(b)
		}
		if own == Black {
			pawnScore = -pawnScore
		}
		score += pawnScore
	}

	score += pairBonuses(b, own) - pairBonuses(b, opp)
	if config.Settings.Eval.UseKingSafety {
		score += kingShield(b, own) - kingShield(b, opp)
	}

	result := Value(score)
	if config.Settings.Eval.UseEvalCache {
		e.evalTT.Store(b.Key(), result)
	}
	return result
}

func pairBonuses(b Board, side Side) int {
	bonus := 0
	bishops, knights, rooks := 0, 0, 0
	for sq := Square(0); sq < SquareLength; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() || p.ColorOf() != side {
			continue
		}
		switch p.TypeOf() {
		case Bishop:
			bishops++
		case Knight:
			knights++
		case Rook:
			rooks++
		}
	}
	if bishops >= 2 {
		bonus += int(config.Settings.Eval.BishopPairBonus)
	}
	if knights >= 2 {
		bonus -= int(config.Settings.Eval.KnightPairMalus)
	}
	if rooks >= 2 {
		bonus -= int(config.Settings.Eval.RookPairMalus)
	}
	return bonus
}

func kingShield(b Board, side Side) int {
	var ksq Square
	found := false
	for sq := Square(0); sq < SquareLength; sq++ {
		p := b.PieceAt(sq)
		if !p.IsEmpty() && p.ColorOf() == side && p.TypeOf() == King {
			ksq = sq
			found = true
			break
		}
	}
	if !found {
		return 0
	}
	file := int(ksq.FileOf())
	bonus := 0
	rank2, rank3 := 1, 2
	if side == Black {
		rank2, rank3 = 6, 5
	}
	for _, f := range [3]int{file - 1, file, file + 1} {
		if f < 0 || f > 7 {
			continue
		}
		if p := b.PieceAt(SquareOf(f, rank2)); !p.IsEmpty() && p.ColorOf() == side && p.TypeOf() == Pawn {
			bonus += int(config.Settings.Eval.KingShieldRank2Bonus)
		}
		if p := b.PieceAt(SquareOf(f, rank3)); !p.IsEmpty() && p.ColorOf() == side && p.TypeOf() == Pawn {
			bonus += int(config.Settings.Eval.KingShieldRank3Bonus)
		}
	}
	return bonus
}

func mobilityAndKingProximity(b Board, side Side) int {
	enemy := side.Flip()
	var enemyKing Square
	for sq := Square(0); sq < SquareLength; sq++ {
		p := b.PieceAt(sq)
		if !p.IsEmpty() && p.ColorOf() == enemy && p.TypeOf() == King {
			enemyKing = sq
			break
		}
	}
	score := 0
	var enemyPawnAttacks BitBoard
	for sq := Square(0); sq < SquareLength; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() || p.ColorOf() != enemy || p.TypeOf() != Pawn {
			continue
		}
		enemyPawnAttacks = enemyPawnAttacks.Push(sq)
	}
	enemyPawnAttacks = PawnAttacks(enemyPawnAttacks, enemy)

	for sq := Square(0); sq < SquareLength; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() || p.ColorOf() != side {
			continue
		}
		switch p.TypeOf() {
		case Knight:
			KnightPattern(sq, func(t Square) {
				score += mobilityPoint(b, t, enemyPawnAttacks, enemyKing)
			})
		case Bishop, Rook, Queen:
			SlidingPiecePattern(sq, p.TypeOf(), func(t Square, _ int) bool {
				score += mobilityPoint(b, t, enemyPawnAttacks, enemyKing)
				return b.PieceAt(t).IsEmpty()
			})
		}
	}
	return score
}

func mobilityPoint(b Board, t Square, enemyPawnAttacks BitBoard, enemyKing Square) int {
	pts := 0
	if !enemyPawnAttacks.Has(t) {
		pts++
	}
	if kingAdjacent(t, enemyKing) {
		pts++
	}
	return pts
}

func kingAdjacent(sq, ksq Square) bool {
	for _, d := range Directions {
		if ksq.To(d) == sq {
			return true
		}
	}
	return false
}

func pawnStructureScore(b Board) int {
	score := 0
	for sq := Square(0); sq < SquareLength; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() || p.TypeOf() != Pawn {
			continue
		}
		side := p.ColorOf()
		file := int(sq.FileOf())
		rank := int(sq.RankOf())

		passed := true
		doubled := false
		for s2 := Square(0); s2 < SquareLength; s2++ {
			p2 := b.PieceAt(s2)
			if p2.IsEmpty() || p2.TypeOf() != Pawn {
				continue
			}
			f2, r2 := int(s2.FileOf()), int(s2.RankOf())
			if p2.ColorOf() != side {
				if (f2 == file || f2 == file-1 || f2 == file+1) && aheadOf(side, rank, r2) {
					passed = false
				}
			} else if s2 != sq && f2 == file && aheadOf(side, rank, r2) {
				doubled = true
			}
		}

		weak := true
		for s2 := Square(0); s2 < SquareLength; s2++ {
			p2 := b.PieceAt(s2)
			if p2.IsEmpty() || p2.TypeOf() != Pawn || p2.ColorOf() != side || s2 == sq {
				continue
			}
			f2, r2 := int(s2.FileOf()), int(s2.RankOf())
			if (f2 == file-1 || f2 == file+1) && !aheadOf(side, rank, r2) {
				weak = false
			}
		}

		pawnScore := 0
		if passed {
			effRank := rank
			if side == Black {
				effRank = 7 - rank
			}
			pawnScore += int(passedPawnBonus[effRank])
		}
		if doubled {
			pawnScore -= 20
		}
		if weak {
			pawnScore += int(weakPawnPenalty[file])
		}
		if side == Black {
			score -= pawnScore
		} else {
			score += pawnScore
		}
	}
	return score
}

func aheadOf(side Side, rank, otherRank int) bool {
	if side == White {
		return otherRank > rank
	}
	return otherRank < rank
}
