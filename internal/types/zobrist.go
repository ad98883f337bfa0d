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

// Key is a 64-bit Zobrist position hash.
type Key uint64

// zobristSeed reproduces the original engine's fixed PRNG seed so that
// runs (and ported test fixtures) are reproducible.
const zobristSeed uint64 = 1070372

// xorshift64 is a minimal, fast, reproducible PRNG. Not cryptographic;
// only used to fill the Zobrist tables once at process start.
type xorshift64 struct {
	state uint64
}

func newXorshift64(seed uint64) *xorshift64 {
	if seed == 0 {
		seed = 1
	}
	return &xorshift64{state: seed}
}

func (x *xorshift64) next() uint64 {
	s := x.state
	s ^= s >> 12
	s ^= s << 25
	s ^= s >> 27
	x.state = s
	return s * 2685821657736338717
}

var (
	ZobristPieces   [SideLength][PtLength][SquareLength]Key
	ZobristCastling [16]Key
	ZobristEp       [8]Key
	ZobristTurn     Key

	zobristInitialized bool
)

func init() {
	initZobrist()
}

// initZobrist fills the process-wide Zobrist tables exactly once.
func initZobrist() {
	if zobristInitialized {
		return
	}
	rng := newXorshift64(zobristSeed)
	for side := Side(0); side < SideLength; side++ {
		for pt := PieceType(0); pt < PtLength; pt++ {
			for sq := Square(0); sq < SquareLength; sq++ {
				ZobristPieces[side][pt][sq] = Key(rng.next())
			}
		}
	}
	for i := range ZobristCastling {
		ZobristCastling[i] = Key(rng.next())
	}
	for i := range ZobristEp {
		ZobristEp[i] = Key(rng.next())
	}
	ZobristTurn = Key(rng.next())
	zobristInitialized = true
}

// PieceKey returns the Zobrist key contribution of piece p standing on sq.
func PieceKey(p Piece, sq Square) Key {
	return ZobristPieces[p.ColorOf()][p.TypeOf()][sq]
}

// CastlingKey returns the Zobrist key contribution of a set of castling rights.
func CastlingKey(c CastleFlag) Key {
	return ZobristCastling[c]
}

// EpKey returns the Zobrist key contribution of an en-passant target square
// (keyed by file; SqNone contributes zero).
func EpKey(sq Square) Key {
	if sq == SqNone {
		return 0
	}
	return ZobristEp[sq.FileOf()]
}
