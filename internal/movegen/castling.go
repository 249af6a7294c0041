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

package movegen

import (
	"github.com/kaishogi/kaiengine/internal/board"
	. "github.com/kaishogi/kaiengine/internal/types"
)

// appendCastlingMoves emits a single castling move per flank when all of
// spec.md §4.2's preconditions hold: the rights flag is set, the mover's
// chess rook stands on that flank's rook square, the intermediate squares
// are empty, and none of the king's start/transit/destination squares are
// attacked.
func appendCastlingMoves(b *board.Board, from Square, p Piece, moves *[]Move) {
	opponent := p.Owner.Opponent()
	row := from.Row

	if b.CastlingRights.KingSide(p.Owner) && kingSidePathClear(b, row, from.Col) &&
		hasCastlingRook(b, Square{Row: row, Col: board.Size - 2}, p.Owner) {
		dest := Square{Row: row, Col: from.Col + 2}
		if castlingPathSafe(b, from, from.Col+1, from.Col+2, opponent) {
			appendCastling(moves, from, dest, p)
		}
	}
	if b.CastlingRights.QueenSide(p.Owner) && queenSidePathClear(b, row, from.Col) &&
		hasCastlingRook(b, Square{Row: row, Col: 0}, p.Owner) {
		dest := Square{Row: row, Col: from.Col - 2}
		if castlingPathSafe(b, from, from.Col-1, from.Col-2, opponent) {
			appendCastling(moves, from, dest, p)
		}
	}
}

// hasCastlingRook reports whether sq holds owner's chess rook, the piece
// Board.MakeMove relocates for a castling move on that flank.
func hasCastlingRook(b *board.Board, sq Square, owner Player) bool {
	rook := b.At(sq)
	return rook.Kind == ChessRook && rook.Owner == owner
}

// kingSidePathClear reports whether the two squares between the king and
// the king-side rook (column board.Size-2) are empty.
func kingSidePathClear(b *board.Board, row, kingCol int) bool {
	for col := kingCol + 1; col < board.Size-2; col++ {
		if !b.At(Square{Row: row, Col: col}).IsEmpty() {
			return false
		}
	}
	return true
}

// queenSidePathClear reports whether the squares between the king and
// the queen-side rook (column 0) are empty.
func queenSidePathClear(b *board.Board, row, kingCol int) bool {
	for col := 1; col < kingCol; col++ {
		if !b.At(Square{Row: row, Col: col}).IsEmpty() {
			return false
		}
	}
	return true
}

// castlingPathSafe checks that the king's current square, the square it
// crosses, and its destination square are all unattacked by opponent.
// It always uses the non-recursive IsAttacked routine so castling
// generation never re-enters itself (see DESIGN.md on the source's
// recursion bug).
func castlingPathSafe(b *board.Board, from Square, transitCol, destCol int, opponent Player) bool {
	row := from.Row
	if IsAttacked(b, from, opponent) {
		return false
	}
	if IsAttacked(b, Square{Row: row, Col: transitCol}, opponent) {
		return false
	}
	if IsAttacked(b, Square{Row: row, Col: destCol}, opponent) {
		return false
	}
	return true
}

func appendCastling(moves *[]Move, from, to Square, p Piece) {
	*moves = append(*moves, Move{From: from, To: to, Kind: p.Kind, WasPromoted: p.Promoted, IsCastling: true})
}
