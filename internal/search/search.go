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

// Package search implements iterative-deepening alpha-beta negamax with
// aspiration windows, quiescence search and a transposition table, per
// the single-threaded, cooperatively time-checked model described for
// this engine.
package search

import (
	"fmt"
	"sort"
	"time"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/evaluator"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/transpositiontable"
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/util"
)

var log *logging.Logger = myLogging.GetLog("search")

// Search owns the transposition table and evaluator caches for the
// lifetime of an engine session and runs one search at a time.
type Search struct {
	tt    *transpositiontable.TT
	eval  *evaluator.Evaluator
	stats Stats

	deadline time.Time
	timedOut bool

	// stopRequested lets a future UCI "stop" command interrupt a search
	// from another goroutine; the current single-threaded "go" command
	// never sets it, but Search already polls it alongside the deadline
	// so wiring "stop" in later needs no change here.
	stopRequested *util.Bool

	infoFunc func(string)
}

// NewSearch allocates the transposition table and evaluator caches sized
// per the search configuration.
func NewSearch() *Search {
	return &Search{
		tt:            transpositiontable.NewTT(config.Settings.Search.TTSizeMB),
		eval:          evaluator.NewEvaluator(),
		stopRequested: util.NewBool(false),
	}
}

// Stop requests that the in-progress (or next) search return as soon as
// it next polls for a time/stop check.
func (s *Search) Stop() {
	s.stopRequested.Store(true)
}

// SetInfoFunc installs the callback used to emit UCI "info" lines, one
// per completed iterative-deepening depth.
func (s *Search) SetInfoFunc(f func(string)) {
	s.infoFunc = f
}

// ClearTables empties the transposition table, for "ucinewgame".
func (s *Search) ClearTables() {
	s.tt.Clear()
}

type rootMove struct {
	move  Move
	score Value
}

// Search runs iterative deepening until the time budget (or, if set, a
// fixed depth) is exhausted and returns the best move found by the last
// fully completed depth.
func (s *Search) Search(b *position.Board, limits Limits) Move {
	s.stats.reset()
	s.timedOut = false
	s.stopRequested.Store(false)
	start := time.Now()

	clock, inc := limits.WTime, limits.WInc
	if b.SideToMove() == Black {
		clock, inc = limits.BTime, limits.BInc
	}
	movetimeMs := limits.MoveTime
	if movetimeMs <= 0 {
		movetimeMs = movetimeFor(clock, inc, b.Ply(),
			config.Settings.Search.MovetimeDivisorBase,
			config.Settings.Search.MovetimeDivisorMin,
			int(config.Settings.Search.DefaultMovetimeMs))
	}
	s.deadline = start.Add(time.Duration(movetimeMs) * time.Millisecond)

	info := b.GetPosInfo()
	var ml moveslice.MoveSlice
	movegen.GetAllMoves(b, info, &ml)
	if ml.Len() == 0 {
		return MoveNone
	}

	roots := make([]rootMove, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		roots[i] = rootMove{move: ml.At(i), score: ValueMin}
	}

	best := roots[0].move
	maxDepth := config.Settings.Search.MaxDepth
	if limits.Depth > 0 && limits.Depth < maxDepth {
		maxDepth = limits.Depth
	}

	for depth := 1; depth <= maxDepth; depth++ {
		if depth > 1 && s.timeUp() {
			break
		}

		var score Value
		if depth == 1 || !config.Settings.Search.UseAspiration {
			score = s.searchRoot(b, roots, depth, ValueMin, ValueMax)
		} else {
			score = s.aspirationSearch(b, roots, depth, roots[0].score)
		}

		if s.timedOut {
			break
		}

		sort.SliceStable(roots, func(i, j int) bool { return roots[i].score > roots[j].score })
		best = roots[0].move

		if s.infoFunc != nil {
			s.infoFunc(fmt.Sprintf("info depth %d score cp %d nodes %d qnodes %d time %d asp_fail %d pv %s",
				depth, score, s.stats.Nodes, s.stats.QNodes,
				time.Since(start).Milliseconds(), s.stats.AspFails, best.String()))
		}
	}

	return best
}

// aspirationSearch tries progressively wider windows centered on the
// previous iteration's score, breaking as soon as one returns a value
// strictly inside its bounds (the source engine runs all windows
// unconditionally; breaking early avoids the wasted nodes).
func (s *Search) aspirationSearch(b *position.Board, roots []rootMove, depth int, prevScore Value) Value {
	windows := [3][2]Value{{-10, 10}, {-25, 25}, {-50, 50}}
	for _, w := range windows {
		alpha, beta := prevScore+w[0], prevScore+w[1]
		score := s.searchRoot(b, roots, depth, alpha, beta)
		if s.timedOut {
			return score
		}
		if score > alpha && score < beta {
			return score
		}
		s.stats.AspFails++
	}
	return s.searchRoot(b, roots, depth, ValueMin, ValueMax)
}

func (s *Search) searchRoot(b *position.Board, roots []rootMove, depth int, alpha, beta Value) Value {
	best := ValueMin
	for i := range roots {
		m := roots[i].move
		b.PlayMove(m)
		score := -s.negamax(b, depth-1, 1, -beta, -alpha)
		b.UnplayMove()
		if s.timedOut {
			return 0
		}
		roots[i].score = score
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
	}
	return best
}

func (s *Search) timeUp() bool {
	return s.stopRequested.Load() || time.Now().After(s.deadline)
}

func (s *Search) negamax(b *position.Board, depth, ply int, alpha, beta Value) Value {
	if s.timeUp() {
		s.timedOut = true
		return 0
	}
	s.stats.Nodes++

	key := b.Key()
	s.tt.Prefetch(key)

	info := b.GetPosInfo()
	if info.Check && depth <= 0 {
		depth++
	}
	if depth <= 0 {
		if !config.Settings.Search.UseQuiescence {
			return s.eval.Evaluate(b)
		}
		return s.quiesce(b, ply, alpha, beta)
	}

	if e, ok := s.tt.Probe(key, int8(depth)); ok {
		value := transpositiontable.ScoreFromTT(e.Value, ply)
		switch e.Bound {
		case transpositiontable.BoundExact:
			return value
		case transpositiontable.BoundAlpha:
			if value <= alpha {
				return alpha
			}
		case transpositiontable.BoundBeta:
			if value >= beta {
				return beta
			}
		}
	}

	var ml moveslice.MoveSlice
	movegen.GetAllMoves(b, info, &ml)
	if ml.Len() == 0 {
		if info.Check {
			return MatedIn(ply)
		}
		return ValueDraw
	}

	moves := []Move(ml)
	orderMoves(b, moves)

	originalAlpha := alpha
	best := ValueMin
	var bestMove Move
	for _, m := range moves {
		b.PlayMove(m)
		score := -s.negamax(b, depth-1, ply+1, -beta, -alpha)
		b.UnplayMove()
		if s.timedOut {
			return 0
		}
		if score > best {
			best = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	bound := transpositiontable.BoundAlpha
	if best >= beta {
		bound = transpositiontable.BoundBeta
	} else if best > originalAlpha {
		bound = transpositiontable.BoundExact
	}
	s.tt.Store(transpositiontable.Entry{Key: key, Move: bestMove, Value: transpositiontable.ScoreToTT(best, ply), Depth: int8(depth), Bound: bound})

	return best
}

func (s *Search) quiesce(b *position.Board, ply int, alpha, beta Value) Value {
	if s.timeUp() {
		s.timedOut = true
		return 0
	}
	s.stats.QNodes++

	standPat := s.eval.Evaluate(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	info := b.GetPosInfo()
	var ml moveslice.MoveSlice
	movegen.GetAllCaptures(b, info, &ml)
	moves := []Move(ml)
	orderMoves(b, moves)

	for _, m := range moves {
		if !m.Flags.IsPromotion() {
			if int(standPat)+int(m.Captured.ValueOf())+200 < int(alpha) {
				continue
			}
			if badCapture(b, m) && b.PieceAt(m.Origin).TypeOf() != Pawn {
				continue
			}
		}
		b.PlayMove(m)
		score := -s.quiesce(b, ply+1, -beta, -alpha)
		b.UnplayMove()
		if s.timedOut {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
