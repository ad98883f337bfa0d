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

package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/corvidchess/corvid/internal/types"
)

var fenPieceChar = map[byte]Piece{
	'K': MakePiece(White, King), 'Q': MakePiece(White, Queen), 'B': MakePiece(White, Bishop),
	'N': MakePiece(White, Knight), 'R': MakePiece(White, Rook), 'P': MakePiece(White, Pawn),
	'k': MakePiece(Black, King), 'q': MakePiece(Black, Queen), 'b': MakePiece(Black, Bishop),
	'n': MakePiece(Black, Knight), 'r': MakePiece(Black, Rook), 'p': MakePiece(Black, Pawn),
}

// ParseFEN builds a Board from a FEN string. It consumes piece placement,
// side to move, castling rights and the en-passant target; any fields
// after the en-passant target (halfmove clock, fullmove number) are
// accepted but not read, and the core does not track them.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("malformed FEN, expected at least 4 fields: %q", fen)
	}

	b := newEmptyBoard()

	rank, file := 7, 0
	for _, c := range fields[0] {
		switch {
		case c == '/':
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			p, ok := fenPieceChar[byte(c)]
			if !ok {
				return nil, fmt.Errorf("malformed FEN piece placement %q", fields[0])
			}
			if rank < 0 || rank > 7 || file < 0 || file > 7 {
				return nil, fmt.Errorf("malformed FEN piece placement overruns board: %q", fields[0])
			}
			b.placePiece(SquareOf(file, rank), p)
			file++
		}
	}

	switch fields[1] {
	case "w":
		b.side = White
	case "b":
		b.side = Black
		b.key ^= ZobristTurn
	default:
		return nil, fmt.Errorf("malformed FEN side to move %q", fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				b.castling = b.castling.Add(WhiteKingside)
			case 'Q':
				b.castling = b.castling.Add(WhiteQueenside)
			case 'k':
				b.castling = b.castling.Add(BlackKingside)
			case 'q':
				b.castling = b.castling.Add(BlackQueenside)
			}
		}
	}
	b.key ^= CastlingKey(b.castling)

	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return nil, fmt.Errorf("malformed FEN en-passant square %q", fields[3])
		}
		b.epTarget = sq
		b.key ^= EpKey(sq)
	}

	b.epStart = b.epTarget
	b.pawnKey = b.RecomputePawnKey()

	return b, nil
}

// FEN renders the board back to FEN. Halfmove clock and fullmove number
// are not tracked internally, so those two fields are always emitted as
// "0 1"; a loaded position round trips exactly only when its input FEN
// carried "0 1" there.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.pieces[SquareOf(file, rank)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.side.String())
	sb.WriteByte(' ')
	sb.WriteString(b.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(b.epTarget.String())
	sb.WriteString(" 0 1")
	return sb.String()
}
