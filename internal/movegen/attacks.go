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

// IsAttacked reports whether target is attacked by byPlayer's pieces,
// evaluating only base piece movement. It deliberately never calls
// appendCastlingMoves, so it cannot recurse into castling legality
// checking the way the source this spec was distilled from did (see
// DESIGN.md open question on that bug).
func IsAttacked(b *board.Board, target Square, byPlayer Player) bool {
	if !target.InBounds(board.Size) {
		return false
	}
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			from := Square{Row: row, Col: col}
			p := b.At(from)
			if p.IsEmpty() || p.Owner != byPlayer {
				continue
			}
			if attacksSquare(b, from, p, target) {
				return true
			}
		}
	}
	return false
}

// attacksSquare reports whether the piece p at from reaches target via
// its base movement table, ignoring castling and ignoring whether
// target actually holds a capturable piece (an attack test is about
// reachability, not about whether landing there is itself a legal
// move-ending square).
func attacksSquare(b *board.Board, from Square, p Piece, target Square) bool {
	var moves []Move
	switch p.Kind {
	case King, ChessKing:
		appendStepMoves(b, from, p, allEight[:], &moves)
	case Rook:
		appendSlidingMoves(b, from, p, orthogonal[:], &moves)
		if p.Promoted {
			appendStepMoves(b, from, p, diagonal[:], &moves)
		}
	case Bishop:
		appendSlidingMoves(b, from, p, diagonal[:], &moves)
		if p.Promoted {
			appendStepMoves(b, from, p, orthogonal[:], &moves)
		}
	case ChessQueen:
		appendSlidingMoves(b, from, p, allEight[:], &moves)
	case ChessRook:
		appendSlidingMoves(b, from, p, orthogonal[:], &moves)
	case ChessBishop:
		appendSlidingMoves(b, from, p, diagonal[:], &moves)
	case Knight:
		appendShogiKnightMoves(b, from, p, &moves)
	case ChessKnight:
		appendStepMoves(b, from, p, knightJump[:], &moves)
	case Lance:
		f := p.Owner.Forward()
		appendSlidingMoves(b, from, p, []direction{{f, 0}}, &moves)
	case Pawn:
		appendShogiPawnMoves(b, from, p, &moves)
	case ChessPawn:
		// Reuses the move generator, so a chess pawn is only reported as
		// attacking target when the square ahead or diagonal is currently
		// occupied the way move generation requires (straight push needs
		// target empty, diagonal needs an enemy piece there). An empty
		// diagonal square is therefore not "attacked" by this check. This
		// matches the pseudo-movement definition of attacked-ness used
		// throughout this file and never affects king-in-check detection,
		// since a king occupies its square.
		appendChessPawnMoves(b, from, p, &moves)
	case Gold:
		appendStepMoves(b, from, p, goldDirections(p.Owner), &moves)
	case Silver:
		if p.Promoted {
			appendStepMoves(b, from, p, goldDirections(p.Owner), &moves)
		} else {
			appendStepMoves(b, from, p, silverDirections(p.Owner), &moves)
		}
	}
	for _, m := range moves {
		if m.To == target {
			return true
		}
	}
	return false
}
