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

package config

// searchConfiguration holds the tunable parameters of the search: table
// sizes, which optional techniques are enabled, and the time-control
// divisor used to derive a per-move time budget from the clock.
type searchConfiguration struct {
	TTSizeMB     int
	PawnTTSizeMB int
	EvalTTSizeMB int

	UseQuiescence bool
	UseAspiration bool

	MaxDepth int

	// MovetimeDivisorBase/Min implement
	// movetime = clock / max(base - ply/2, min) + inc/2.
	MovetimeDivisorBase int
	MovetimeDivisorMin  int
	DefaultMovetimeMs   int64
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.TTSizeMB = 64
	Settings.Search.PawnTTSizeMB = 16
	Settings.Search.EvalTTSizeMB = 32

	Settings.Search.UseQuiescence = true
	Settings.Search.UseAspiration = true

	Settings.Search.MaxDepth = 64

	Settings.Search.MovetimeDivisorBase = 40
	Settings.Search.MovetimeDivisorMin = 5
	Settings.Search.DefaultMovetimeMs = 16000
}

func setupSearch() {}
