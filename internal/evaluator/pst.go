/*
 * kaiengine - search engine for a 9x9 hybrid Shogi/Chess game
 *
 * MIT License
 *
 * Copyright (c) 2026 kaiengine contributors
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

package evaluator

import (
	"github.com/kaishogi/kaiengine/internal/board"
	. "github.com/kaishogi/kaiengine/internal/types"
)

// Piece-square tables, 81 entries each, indexed row*9+col from Player1's
// perspective (row 0 = top, row 8 = Player1's home rank). Values in
// centipawns. Carried over verbatim from the reference implementation's
// tables, not re-derived: these are tuned data, not prose.

var pstShogiPawn = [81]Value{
	200, 200, 200, 200, 200, 200, 200, 200, 200,
	150, 150, 150, 150, 150, 150, 150, 150, 150,
	100, 100, 100, 100, 100, 100, 100, 100, 100,
	60, 60, 60, 80, 80, 80, 60, 60, 60,
	30, 30, 50, 100, 100, 50, 30, 30, 30,
	10, 10, 20, 80, 80, 20, 10, 10, 10,
	0, 0, 0, 30, 30, 0, 0, 0, 0,
	-10, -10, -10, -20, -20, -10, -10, -10, -10,
	-20, -20, -20, -30, -30, -20, -20, -20, -20,
}

var pstChessPawn = [81]Value{
	500, 500, 500, 500, 500, 500, 500, 500, 500,
	300, 300, 300, 300, 300, 300, 300, 300, 300,
	150, 150, 150, 150, 150, 150, 150, 150, 150,
	80, 80, 100, 120, 120, 100, 80, 80, 80,
	40, 40, 60, 100, 100, 60, 40, 40, 40,
	20, 20, 30, 50, 50, 30, 20, 20, 20,
	0, 0, 0, 20, 20, 0, 0, 0, 0,
	-10, -10, -10, 0, 0, -10, -10, -10, -10,
	-20, -20, -20, -10, -10, -20, -20, -20, -20,
}

var pstKnight = [81]Value{
	100, 100, 100, 100, 100, 100, 100, 100, 100,
	150, 150, 150, 150, 150, 150, 150, 150, 150,
	180, 180, 180, 180, 180, 180, 180, 180, 180,
	100, 100, 150, 150, 150, 150, 150, 100, 100,
	50, 50, 80, 100, 100, 80, 50, 50, 50,
	20, 20, 40, 60, 60, 40, 20, 20, 20,
	0, 0, 20, 30, 30, 20, 0, 0, 0,
	-20, 0, -10, 0, 0, -10, 0, -20, -20,
	-50, -100, -30, -20, -20, -30, -100, -50, -50,
}

var pstKing = [81]Value{
	-300, -400, -400, -400, -400, -400, -400, -400, -300,
	-300, -400, -400, -400, -400, -400, -400, -400, -300,
	-300, -400, -400, -400, -400, -400, -400, -400, -300,
	-200, -300, -300, -300, -300, -300, -300, -300, -200,
	-100, -150, -150, -150, -150, -150, -150, -150, -100,
	-50, -80, -80, -80, -80, -80, -80, -80, -50,
	50, 20, 20, 20, 20, 20, 20, 20, 50,
	150, 100, 50, 30, 30, 50, 100, 150, 150,
	200, 300, 200, 100, 50, 100, 200, 300, 200,
}

var pstGeneric = [81]Value{
	120, 120, 120, 120, 120, 120, 120, 120, 120,
	80, 80, 80, 100, 120, 100, 80, 80, 80,
	50, 60, 70, 80, 100, 80, 70, 60, 50,
	30, 40, 60, 100, 120, 100, 60, 40, 30,
	20, 30, 50, 100, 120, 100, 50, 30, 20,
	10, 20, 30, 60, 80, 60, 30, 20, 10,
	-10, 0, 10, 30, 40, 30, 10, 0, -10,
	-30, -20, -10, 0, 10, 0, -10, -20, -30,
	-80, -60, -40, -30, -20, -30, -40, -60, -80,
}

// pstValue looks up the PST bonus for kind at sq, mirroring the index
// for Player2 since every table is authored from Player1's perspective.
func pstValue(kind PieceKind, sq Square, owner Player) Value {
	table := tableFor(kind)
	idx := sq
	if owner == Player2 {
		idx = sq.Mirror(board.Size)
	}
	return table[idx.Index(board.Size)]
}

func tableFor(kind PieceKind) *[81]Value {
	switch kind {
	case Pawn:
		return &pstShogiPawn
	case ChessPawn:
		return &pstChessPawn
	case Knight, ChessKnight:
		return &pstKnight
	case King, ChessKing:
		return &pstKing
	default:
		return &pstGeneric
	}
}
