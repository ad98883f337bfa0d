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

package movegen

import (
	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// PerftMove is one root move's perft contribution, used by the UCI
// "perft" divide output.
type PerftMove struct {
	Move  Move
	Nodes uint64
}

// Perft counts the leaf nodes reachable from b at the given depth,
// split out per root move (a "divide"), per spec §8's perft table.
func Perft(b *position.Board, depth int) (uint64, []PerftMove) {
	if depth <= 0 {
		return 1, nil
	}

	info := b.GetPosInfo()
	var ml moveslice.MoveSlice
	GetAllMoves(b, info, &ml)

	perMove := make([]PerftMove, 0, ml.Len())
	var total uint64
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		b.PlayMove(m)
		nodes := perft(b, depth-1)
		b.UnplayMove()
		total += nodes
		perMove = append(perMove, PerftMove{Move: m, Nodes: nodes})
	}
	return total, perMove
}

func perft(b *position.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	info := b.GetPosInfo()
	var ml moveslice.MoveSlice
	GetAllMoves(b, info, &ml)

	if depth == 1 {
		return uint64(ml.Len())
	}

	var nodes uint64
	for i := 0; i < ml.Len(); i++ {
		b.PlayMove(ml.At(i))
		nodes += perft(b, depth-1)
		b.UnplayMove()
	}
	return nodes
}
