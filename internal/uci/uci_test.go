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

package uci

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, commands ...string) []string {
	t.Helper()
	in := strings.NewReader(strings.Join(commands, "\n") + "\n")
	var out bytes.Buffer
	h := NewHandler(in, &out)
	h.Run()

	var lines []string
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}

func TestUciHandshake(t *testing.T) {
	lines := run(t, "uci", "quit")
	assert.Contains(t, lines, "id name Corvid")
	assert.Contains(t, lines, "uciok")
}

func TestIsReady(t *testing.T) {
	lines := run(t, "isready", "quit")
	assert.Contains(t, lines, "readyok")
}

func TestPositionStartposMovesThenGoReturnsBestmove(t *testing.T) {
	lines := run(t, "position startpos moves e2e4 e7e5", "go depth 2", "quit")
	found := false
	for _, l := range lines {
		if strings.HasPrefix(l, "bestmove ") {
			found = true
		}
	}
	assert.True(t, found, "expected a bestmove line, got %v", lines)
}

func TestPositionIgnoresIllegalMoveInList(t *testing.T) {
	// e7e5 is illegal before e2e4 is played - §7 says skip it, not error.
	// The following e2e4 is still applied, so rank 4 shows the white pawn.
	lines := run(t, "position startpos moves e7e5 e2e4", "d", "quit")
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "----P---")
}

func TestPerftStartposDepth2ReportsCorrectTotal(t *testing.T) {
	lines := run(t, "position startpos", "perft 2", "quit")
	found := false
	for _, l := range lines {
		if l == "total 400" {
			found = true
		}
	}
	assert.True(t, found, "expected total 400, got %v", lines)
}
