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

// PieceType is the kind of piece, independent of color.
type PieceType int8

const (
	PtNone PieceType = iota
	King
	Queen
	Bishop
	Knight
	Rook
	Pawn
	PtLength
)

// pieceTypeValue holds centipawn material values indexed by PieceType.
var pieceTypeValue = [PtLength]int16{0, 0, 1000, 350, 350, 525, 100}

// ValueOf returns the material value of this piece type in centipawns.
func (pt PieceType) ValueOf() int16 {
	return pieceTypeValue[pt]
}

// phaseInc is the game-phase weight contributed by one piece of this type,
// used to blend middlegame/endgame evaluation.
var phaseInc = [PtLength]int{0, 0, 4, 1, 1, 2, 0}

// PhaseValue returns this piece type's contribution to the game-phase counter.
func (pt PieceType) PhaseValue() int {
	return phaseInc[pt]
}

var pieceTypeChar = "-KQBNRP"

// Char returns the upper-case FEN letter for this piece type ('-' for none).
func (pt PieceType) Char() byte {
	return pieceTypeChar[pt]
}

var pieceTypeName = [PtLength]string{"none", "king", "queen", "bishop", "knight", "rook", "pawn"}

func (pt PieceType) String() string {
	return pieceTypeName[pt]
}

// IsValid reports whether pt is one of the six real piece types.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}
