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

// Package evaluator scores a board from the side-to-move's perspective:
// material, an optional piece-square table bonus, and hand value. It
// plays the role of the teacher's internal/evaluator package, reduced to
// the spec's material+PST+hand formula (no mobility, king safety, or
// pawn-structure terms — those are Non-goals the distillation dropped
// and this expansion does not restore, since spec.md §4.3 fully
// specifies the aggregation and nothing in original_source goes further).
package evaluator

import (
	"github.com/kaishogi/kaiengine/internal/board"
	"github.com/kaishogi/kaiengine/internal/config"
	. "github.com/kaishogi/kaiengine/internal/types"
)

// pieceValue returns the base or promoted material value of kind in
// centipawns, per the table in spec.md §4.3.
func pieceValue(kind PieceKind, promoted bool) Value {
	switch kind {
	case King, ChessKing:
		return 100_000
	case Rook:
		if promoted {
			return 1000
		}
		return 900
	case Bishop:
		if promoted {
			return 850
		}
		return 750
	case Gold:
		return 600
	case Silver:
		if promoted {
			return 600
		}
		return 500
	case Knight:
		if promoted {
			return 600
		}
		return 350
	case Lance:
		if promoted {
			return 600
		}
		return 300
	case Pawn:
		if promoted {
			return 600
		}
		return 100
	case ChessQueen:
		return 950
	case ChessRook:
		return 500
	case ChessBishop:
		return 330
	case ChessKnight:
		return 320
	case ChessPawn:
		return 100
	default:
		return 0
	}
}

// PieceValue exposes the material table to callers outside this
// package, such as the search's MVV-LVA move ordering.
func PieceValue(kind PieceKind, promoted bool) Value {
	return pieceValue(kind, promoted)
}

// Evaluate returns the position's score from b.CurrentPlayer's
// perspective: material and PST for every piece on the board (added for
// the side to move, subtracted for the opponent), plus half the base
// material value of each piece in hand (own hands add, opponent hands
// subtract).
func Evaluate(b *board.Board, cfg config.SearchConfig) Value {
	var score Value
	mover := b.CurrentPlayer

	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			sq := Square{Row: row, Col: col}
			p := b.At(sq)
			if p.IsEmpty() {
				continue
			}
			value := pieceValue(p.Kind, p.Promoted)
			if cfg.UsePST {
				value += pstValue(p.Kind, sq, p.Owner)
			}
			if p.Owner == mover {
				score += value
			} else {
				score -= value
			}
		}
	}

	for _, kind := range b.Hands[mover-1] {
		score += pieceValue(kind, false) / 2
	}
	for _, kind := range b.Hands[mover.Opponent()-1] {
		score -= pieceValue(kind, false) / 2
	}

	return score
}
