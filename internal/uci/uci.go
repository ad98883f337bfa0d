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

// Package uci implements the line-oriented UCI command loop: parsing
// "position"/"go" and friends, driving a search.Search, and writing
// "info"/"bestmove" back to the GUI.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/evaluator"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/moveslice"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
	. "github.com/corvidchess/corvid/internal/types"
)

var log *logging.Logger = myLogging.GetLog("uci")

const (
	engineName   = "Corvid"
	engineAuthor = "Corvid contributors"
)

// Handler runs the UCI command loop over an input/output stream pair.
type Handler struct {
	in     *bufio.Scanner
	out    io.Writer
	board  *position.Board
	search *search.Search
}

// NewHandler wires a Handler over the given streams with a fresh board
// in the starting position.
func NewHandler(in io.Reader, out io.Writer) *Handler {
	h := &Handler{
		in:     bufio.NewScanner(in),
		out:    out,
		board:  position.NewBoard(),
		search: search.NewSearch(),
	}
	h.search.SetInfoFunc(h.printInfo)
	return h
}

// Run reads commands until "quit" or EOF.
func (h *Handler) Run() {
	for h.in.Scan() {
		line := strings.TrimSpace(h.in.Text())
		if line == "" {
			continue
		}
		if !h.handle(line) {
			return
		}
	}
}

func (h *Handler) printf(format string, a ...interface{}) {
	fmt.Fprintf(h.out, format+"\n", a...)
}

func (h *Handler) printInfo(line string) {
	h.printf("%s", line)
}

func (h *Handler) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	switch fields[0] {
	case "uci":
		h.printf("id name %s", engineName)
		h.printf("id author %s", engineAuthor)
		h.printf("uciok")
	case "isready":
		h.printf("readyok")
	case "ucinewgame":
		h.board = position.NewBoard()
		h.search.ClearTables()
	case "position":
		h.handlePosition(fields[1:])
	case "go":
		h.handleGo(fields[1:])
	case "d":
		h.printf("%s", h.board.String())
	case "eval":
		h.handleEval()
	case "perft":
		h.handlePerft(fields[1:])
	case "quit":
		return false
	default:
		log.Infof("unknown command: %s", line)
	}
	return true
}

func (h *Handler) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}
	idx := 0
	var b *position.Board
	switch args[0] {
	case "startpos":
		b = position.NewBoard()
		idx = 1
	case "fen":
		// FEN fields run until "moves" or end of input.
		end := 1
		for end < len(args) && args[end] != "moves" {
			end++
		}
		parsed, err := position.ParseFEN(strings.Join(args[1:end], " "))
		if err != nil {
			log.Warningf("malformed FEN in position command: %v", err)
			return
		}
		b = parsed
		idx = end
	default:
		return
	}

	if idx < len(args) && args[idx] == "moves" {
		for _, uciMove := range args[idx+1:] {
			m, ok := findLegalMove(b, uciMove)
			if !ok {
				// an illegal move in the list is skipped, not an error - §7.
				continue
			}
			b.PlayMove(m)
		}
	}
	b.SetThisAsStart()
	h.board = b
}

func findLegalMove(b *position.Board, uciMove string) (Move, bool) {
	info := b.GetPosInfo()
	var ml moveslice.MoveSlice
	movegen.GetAllMoves(b, info, &ml)
	for i := 0; i < ml.Len(); i++ {
		if ml.At(i).String() == uciMove {
			return ml.At(i), true
		}
	}
	return MoveNone, false
}

func (h *Handler) handleGo(args []string) {
	var limits search.Limits
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "wtime":
			i++
			limits.WTime = atoiSafe(args, i)
		case "btime":
			i++
			limits.BTime = atoiSafe(args, i)
		case "winc":
			i++
			limits.WInc = atoiSafe(args, i)
		case "binc":
			i++
			limits.BInc = atoiSafe(args, i)
		case "movetime":
			i++
			limits.MoveTime = atoiSafe(args, i)
		case "depth":
			i++
			limits.Depth = atoiSafe(args, i)
		}
	}
	best := h.search.Search(h.board, limits)
	h.printf("bestmove %s", best.String())
}

func atoiSafe(args []string, i int) int {
	if i < 0 || i >= len(args) {
		return 0
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0
	}
	return n
}

func (h *Handler) handleEval() {
	// a throwaway evaluator, since the search's owns caches keyed for
	// the positions it has actually searched.
	e := evaluator.NewEvaluator()
	h.printf("score cp %d", e.Evaluate(h.board))
}

func (h *Handler) handlePerft(args []string) {
	if len(args) == 0 {
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		return
	}
	total, perMove := movegen.Perft(h.board, depth)
	for _, pm := range perMove {
		h.printf("%s: %d", pm.Move.String(), pm.Nodes)
	}
	h.printf("total %d", total)
}
