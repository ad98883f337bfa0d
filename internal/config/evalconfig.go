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

// evalConfiguration toggles the components of the static evaluation
// (§4.4): each can be disabled independently, mainly for testing one
// term in isolation.
type evalConfiguration struct {
	UseMaterial   bool
	UsePST        bool
	UseMobility   bool
	UseKingSafety bool
	UsePawnStructure bool

	UsePawnCache bool
	UseEvalCache bool

	BishopPairBonus  int16
	KnightPairMalus  int16
	RookPairMalus    int16

	KingShieldRank2Bonus int16
	KingShieldRank3Bonus int16
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.UseMaterial = true
	Settings.Eval.UsePST = true
	Settings.Eval.UseMobility = true
	Settings.Eval.UseKingSafety = true
	Settings.Eval.UsePawnStructure = true

	Settings.Eval.UsePawnCache = true
	Settings.Eval.UseEvalCache = true

	Settings.Eval.BishopPairBonus = 30
	Settings.Eval.KnightPairMalus = 8
	Settings.Eval.RookPairMalus = 16

	Settings.Eval.KingShieldRank2Bonus = 10
	Settings.Eval.KingShieldRank3Bonus = 5
}

func setupEval() {}
