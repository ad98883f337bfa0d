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

// Package movegen generates legal chess moves from a Board and its
// PosInfo: full legal move lists for search, capture-only lists for
// quiescence, moves of a single piece, and square-attacked queries.
package movegen

import (
	"github.com/op/go-logging"

	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

var log *logging.Logger = myLogging.GetLog("movegen")

// GetAllMoves appends every legal move for the side to move to out.
func GetAllMoves(b *position.Board, info *position.PosInfo, out *moveslice.MoveSlice) {
	generate(b, info, out, true, true)
}

// GetAllCaptures appends every legal capture and promotion for the side
// to move to out - the set quiescence search explores.
func GetAllCaptures(b *position.Board, info *position.PosInfo, out *moveslice.MoveSlice) {
	generate(b, info, out, true, false)
}

// GetMoves appends the legal moves of the piece standing on sq to out.
func GetMoves(b *position.Board, info *position.PosInfo, sq Square, out *moveslice.MoveSlice) {
	p := b.PieceAt(sq)
	if p.IsEmpty() || p.ColorOf() != b.SideToMove() {
		return
	}
	var tmp moveslice.MoveSlice
	generate(b, info, &tmp, true, true)
	for _, m := range tmp {
		if m.Origin == sq {
			out.PushBack(m)
		}
	}
}

// IsSquareAttacked reports whether sq is attacked by attacker on b. It
// walks the board directly rather than consulting a PosInfo, so attacker
// need not be the side not to move. Castling legality and PosInfo's attack
// board do not call it; they use PosInfo.AttackBoard.
func IsSquareAttacked(b *position.Board, sq Square, attacker Side) bool {
	if knightHit := knightAttacks(b, sq, attacker); knightHit {
		return true
	}
	for _, d := range pawnAttackDirsFor(attacker.Flip()) {
		if t := sq.To(d); t != SqNone {
			p := b.PieceAt(t)
			if !p.IsEmpty() && p.ColorOf() == attacker && p.TypeOf() == Pawn {
				return true
			}
		}
	}
	var attacked bool
	kingNeighbors(sq, func(t Square) {
		p := b.PieceAt(t)
		if !p.IsEmpty() && p.ColorOf() == attacker && p.TypeOf() == King {
			attacked = true
		}
	})
	if attacked {
		return true
	}
	for _, pt := range [3]PieceType{Bishop, Rook, Queen} {
		SlidingPiecePattern(sq, pt, func(t Square, rayIdx int) bool {
			p := b.PieceAt(t)
			if p.IsEmpty() {
				return true
			}
			if p.ColorOf() == attacker && (p.TypeOf() == pt || p.TypeOf() == Queen && pt != Queen) {
				attacked = true
			}
			return false
		})
		if attacked {
			return true
		}
	}
	return false
}

func knightAttacks(b *position.Board, sq Square, attacker Side) bool {
	found := false
	KnightPattern(sq, func(t Square) {
		p := b.PieceAt(t)
		if !p.IsEmpty() && p.ColorOf() == attacker && p.TypeOf() == Knight {
			found = true
		}
	})
	return found
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

// addIfLegal implements the spec's legality filter.
func addIfLegal(b *position.Board, info *position.PosInfo, m Move, out *moveslice.MoveSlice) {
	mover := b.PieceAt(m.Origin)

	if info.DoubleCheck && mover.TypeOf() != King {
		return
	}

	if mover.TypeOf() == King {
		if info.AttackBoard.Has(m.Target) {
			return
		}
		out.PushBack(m)
		return
	}

	if m.Flags.Has(EnPassant) {
		if enPassantExposesKing(b, m) {
			return
		}
		if info.Check {
			capturedSq := m.Target.To(b.SideToMove().Flip().PawnDirection())
			if !info.CheckBoard.Has(m.Target) && !info.CheckBoard.Has(capturedSq) {
				return
			}
		}
		if info.UnifiedPinBoard.Has(m.Origin) && !pinRayContains(info, m.Origin, m.Target) {
			return
		}
		out.PushBack(m)
		return
	}

	if info.Check {
		if !info.CheckBoard.Has(m.Target) {
			return
		}
	}

	if info.UnifiedPinBoard.Has(m.Origin) {
		if !pinRayContains(info, m.Origin, m.Target) {
			return
		}
	}

	out.PushBack(m)
}

func pinRayContains(info *position.PosInfo, origin, target Square) bool {
	for _, ray := range info.PinBoards {
		if ray.Has(origin) {
			return ray.Has(target)
		}
	}
	return false
}

// enPassantExposesKing handles the one case a normal pin check misses:
// both the capturing pawn and its victim leave the same rank at once.
func enPassantExposesKing(b *position.Board, m Move) bool {
	mover := b.SideToMove()
	ksq := b.KingSquare(mover)
	capturedSq := m.Target.To(mover.Flip().PawnDirection())

	if ksq.RankOf() != m.Origin.RankOf() {
		return false
	}

	dir := East
	if m.Origin < ksq {
		dir = West
	}
	cur := ksq
	sawGap := false
	for {
		cur = cur.To(dir)
		if cur == SqNone {
			break
		}
		if cur == m.Origin || cur == capturedSq {
			sawGap = true
			continue
		}
		p := b.PieceAt(cur)
		if p.IsEmpty() {
			continue
		}
		if p.ColorOf() != mover && (p.TypeOf() == Rook || p.TypeOf() == Queen) {
			return sawGap
		}
		return false
	}
	return false
}

func generate(b *position.Board, info *position.PosInfo, out *moveslice.MoveSlice, caps, quiet bool) {
	side := b.SideToMove()
	generatePawnMoves(b, info, side, out, caps, quiet)
	generateKnightMoves(b, info, side, out, caps, quiet)
	generateSlidingMoves(b, info, side, Bishop, out, caps, quiet)
	generateSlidingMoves(b, info, side, Rook, out, caps, quiet)
	generateSlidingMoves(b, info, side, Queen, out, caps, quiet)
	generateKingMoves(b, info, side, out, caps, quiet)
	if quiet {
		generateCastling(b, info, side, out)
	}
}

func generatePawnMoves(b *position.Board, info *position.PosInfo, side Side, out *moveslice.MoveSlice, caps, quiet bool) {
	for sq := Square(0); sq < SquareLength; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() || p.ColorOf() != side || p.TypeOf() != Pawn {
			continue
		}
		promRank := side.PromotionRank()
		PawnPattern(sq, side, func(target Square, kind PawnMoveKind) {
			switch kind {
			case PawnPush:
				if !quiet || !b.PieceAt(target).IsEmpty() {
					return
				}
				emitPawnMove(b, info, sq, target, PieceEmpty, promRank, out)
			case PawnDoublePush:
				if !quiet {
					return
				}
				between := sq.To(side.PawnDirection())
				if !b.PieceAt(between).IsEmpty() || !b.PieceAt(target).IsEmpty() {
					return
				}
				addIfLegal(b, info, Move{Origin: sq, Target: target, Flags: DoublePush}, out)
			case PawnCapture:
				if target == b.EpTarget() {
					if caps {
						addIfLegal(b, info, Move{Origin: sq, Target: target, Flags: EnPassant}, out)
					}
					return
				}
				victim := b.PieceAt(target)
				if victim.IsEmpty() || victim.ColorOf() == side {
					return
				}
				if !caps {
					return
				}
				emitPawnMove(b, info, sq, target, victim, promRank, out)
			}
		}, false)
	}
}

func emitPawnMove(b *position.Board, info *position.PosInfo, origin, target Square, captured Piece, promRank int, out *moveslice.MoveSlice) {
	if int(target.RankOf()) == promRank {
		queenMove := Move{Origin: origin, Target: target, Captured: captured, Flags: PromoteQueen}
		before := out.Len()
		addIfLegal(b, info, queenMove, out)
		if out.Len() == before {
			return // queen promotion illegal, so are the others
		}
		out.PushBack(Move{Origin: origin, Target: target, Captured: captured, Flags: PromoteRook})
		out.PushBack(Move{Origin: origin, Target: target, Captured: captured, Flags: PromoteKnight})
		out.PushBack(Move{Origin: origin, Target: target, Captured: captured, Flags: PromoteBishop})
		return
	}
	addIfLegal(b, info, Move{Origin: origin, Target: target, Captured: captured, Flags: Basic}, out)
}

func generateKnightMoves(b *position.Board, info *position.PosInfo, side Side, out *moveslice.MoveSlice, caps, quiet bool) {
	for sq := Square(0); sq < SquareLength; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() || p.ColorOf() != side || p.TypeOf() != Knight {
			continue
		}
		KnightPattern(sq, func(target Square) {
			victim := b.PieceAt(target)
			if victim.IsEmpty() {
				if quiet {
					addIfLegal(b, info, Move{Origin: sq, Target: target, Flags: Basic}, out)
				}
			} else if victim.ColorOf() != side && caps {
				addIfLegal(b, info, Move{Origin: sq, Target: target, Captured: victim, Flags: Basic}, out)
			}
		})
	}
}

func generateSlidingMoves(b *position.Board, info *position.PosInfo, side Side, pt PieceType, out *moveslice.MoveSlice, caps, quiet bool) {
	for sq := Square(0); sq < SquareLength; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() || p.ColorOf() != side || p.TypeOf() != pt {
			continue
		}
		SlidingPiecePattern(sq, pt, func(target Square, _ int) bool {
			victim := b.PieceAt(target)
			if victim.IsEmpty() {
				if quiet {
					addIfLegal(b, info, Move{Origin: sq, Target: target, Flags: Basic}, out)
				}
				return true
			}
			if victim.ColorOf() != side && caps {
				addIfLegal(b, info, Move{Origin: sq, Target: target, Captured: victim, Flags: Basic}, out)
			}
			return false
		})
	}
}

func generateKingMoves(b *position.Board, info *position.PosInfo, side Side, out *moveslice.MoveSlice, caps, quiet bool) {
	sq := b.KingSquare(side)
	kingNeighbors(sq, func(target Square) {
		victim := b.PieceAt(target)
		if victim.IsEmpty() {
			if quiet {
				addIfLegal(b, info, Move{Origin: sq, Target: target, Flags: Basic}, out)
			}
		} else if victim.ColorOf() != side && caps {
			addIfLegal(b, info, Move{Origin: sq, Target: target, Captured: victim, Flags: Basic}, out)
		}
	})
}

func generateCastling(b *position.Board, info *position.PosInfo, side Side, out *moveslice.MoveSlice) {
	if info.Check {
		return
	}
	rights := b.CastlingRights()
	ksq := b.KingSquare(side)
	kingside, queenside := ForSide(side)
	rank := 0
	if side == Black {
		rank = 7
	}

	if rights.Has(kingside) {
		f, g, h := SquareOf(5, rank), SquareOf(6, rank), SquareOf(7, rank)
		if b.PieceAt(f).IsEmpty() && b.PieceAt(g).IsEmpty() &&
			!info.AttackBoard.Has(f) && !info.AttackBoard.Has(g) &&
			b.PieceAt(h).TypeOf() == Rook {
			out.PushBack(Move{Origin: ksq, Target: g, Flags: Castle})
		}
	}
	if rights.Has(queenside) {
		b1, c1, d1, a1 := SquareOf(1, rank), SquareOf(2, rank), SquareOf(3, rank), SquareOf(0, rank)
		if b.PieceAt(b1).IsEmpty() && b.PieceAt(c1).IsEmpty() && b.PieceAt(d1).IsEmpty() &&
			!info.AttackBoard.Has(c1) && !info.AttackBoard.Has(d1) &&
			b.PieceAt(a1).TypeOf() == Rook {
			out.PushBack(Move{Origin: ksq, Target: c1, Flags: Castle})
		}
	}
}
