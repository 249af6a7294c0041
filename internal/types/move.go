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

package types

import "fmt"

// Move represents a single on-board move. SavedRights is populated by
// Board.MakeMove so that Board.UnmakeMove can restore castling rights
// without consulting search-stack state.
type Move struct {
	From, To    Square
	Kind        PieceKind
	WasPromoted bool
	PromotesNow bool
	Captured    *PieceKind
	IsCastling  bool
	SavedRights CastlingRights
}

// NoMove is the zero-value sentinel for "no move recommended yet".
var NoMove = Move{}

// IsZero reports whether m is the zero-value NoMove sentinel.
func (m Move) IsZero() bool {
	return m == NoMove
}

// IsCapture reports whether this move captures a piece.
func (m Move) IsCapture() bool {
	return m.Captured != nil
}

// Equal compares two moves structurally on the fields that identify a
// move irrespective of search bookkeeping: from, to, piece kind, and
// promotion. This is the equality TT best-move comparisons use.
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Kind == other.Kind &&
		m.WasPromoted == other.WasPromoted && m.PromotesNow == other.PromotesNow
}

// String renders a move for logs, e.g. "pawn (6,4)->(5,4)".
func (m Move) String() string {
	suffix := ""
	if m.PromotesNow {
		suffix = "+"
	}
	if m.IsCastling {
		return fmt.Sprintf("O-O %s->%s", m.From, m.To)
	}
	return fmt.Sprintf("%s %s->%s%s", m.Kind, m.From, m.To, suffix)
}
