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

// Limits carries the UCI "go" parameters relevant to time control and
// depth. A zero value means "not given".
type Limits struct {
	WTime, BTime int // milliseconds remaining for each side
	WInc, BInc   int // increment per move in milliseconds
	MoveTime     int // fixed time for this move, overrides the clock formula
	Depth        int // fixed depth, 0 means use the time budget instead
}

// movetimeFor derives the time budget for one search, per spec §4.5: a
// divisor shrinking with ply squeezes more time from a large remaining
// clock early and conserves it as the clock (and the move counter
// approximation) runs down.
func movetimeFor(clockMs, incMs, ply, divisorBase, divisorMin, defaultMs int) int {
	if clockMs <= 0 {
		return defaultMs
	}
	divisor := divisorBase - ply/2
	if divisor < divisorMin {
		divisor = divisorMin
	}
	budget := clockMs/divisor + incMs/2
	if budget <= 0 {
		budget = defaultMs
	}
	return budget
}
