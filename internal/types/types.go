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

// Package types holds the primitive value types shared by the board,
// move generator, evaluator and search: squares, sides, pieces,
// directions, bitboards, castling rights, moves and the Zobrist hasher.
//
// Many of these would be perfect enum candidates but Go has no enums -
// we use small integer types with named constants instead, the way the
// rest of this codebase does.
package types

// MaxDepth is the initial capacity of a Board's move-record and key
// history, and sets the mate-score threshold (ValueMate - MaxDepth).
const MaxDepth = 128

// MaxMoves is a generous upper bound on the number of pseudo-legal moves
// in any legal chess position.
const MaxMoves = 256

// SquareLength is the number of squares on the board.
const SquareLength = 64
