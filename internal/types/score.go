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

// Value is a centipawn evaluation, or a mate-distance score near the
// bounds of the range.
type Value int32

const (
	ValueZero  Value = 0
	ValueDraw  Value = 0
	ValueInf   Value = 32000
	ValueMate  Value = 31000
	ValueMax   Value = ValueInf
	ValueMin   Value = -ValueInf

	// ValueMateThreshold is the smallest magnitude considered a mate score.
	ValueMateThreshold = ValueMate - Value(MaxDepth)
)

// MateIn returns the score for delivering mate in the given number of ply
// from the current node (shorter mates score higher).
func MateIn(ply int) Value {
	return ValueMate - Value(ply)
}

// MatedIn returns the score for being mated in the given number of ply.
func MatedIn(ply int) Value {
	return -ValueMate + Value(ply)
}

// IsMateScore reports whether v represents a forced mate.
func (v Value) IsMateScore() bool {
	if v < 0 {
		v = -v
	}
	return v >= ValueMateThreshold
}

// String renders v the way UCI "info score" expects: "cp N" or "mate N".
func (v Value) String() string {
	if v.IsMateScore() {
		var ply Value
		if v > 0 {
			ply = ValueMate - v
			return fmt.Sprintf("mate %d", (ply+1)/2)
		}
		ply = ValueMate + v
		return fmt.Sprintf("mate -%d", (ply+1)/2)
	}
	return fmt.Sprintf("cp %d", v)
}

// Score carries the separate middlegame and endgame contributions of an
// evaluation term, blended later by game phase.
type Score struct {
	MidGameValue int16
	EndGameValue int16
}

// Add accumulates other into s.
func (s *Score) Add(other Score) {
	s.MidGameValue += other.MidGameValue
	s.EndGameValue += other.EndGameValue
}
