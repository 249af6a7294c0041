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

// Package board implements the mutable game position: the piece grid,
// hands, castling rights, and the make/unmake discipline search relies
// on. It plays the role of the teacher's internal/position package,
// generalized from an 8x8 bitboard chess position to a 9x9 plain-grid
// hybrid Shogi/Chess position.
package board

import (
	"github.com/op/go-logging"

	"github.com/kaishogi/kaiengine/internal/kaierr"
	myLogging "github.com/kaishogi/kaiengine/internal/logging"
	. "github.com/kaishogi/kaiengine/internal/types"
)

var log *logging.Logger

func getLog() *logging.Logger {
	if log == nil {
		log = myLogging.GetLog("board")
	}
	return log
}

// Size is the reference board side length.
const Size = 9

// Board is the mutable game position: a grid of pieces, the side to
// move, each player's hand, and castling rights. Create with New or
// NewFromCells. Mutate only via MakeMove/UnmakeMove.
type Board struct {
	cells          [Size][Size]Piece
	CurrentPlayer  Player
	Hands          [2][]PieceKind
	CastlingRights CastlingRights
}

// New returns an empty board with Player1 to move and full castling
// rights, matching the teacher's zero-value-then-setup construction
// style.
func New() *Board {
	return &Board{
		CurrentPlayer:  Player1,
		CastlingRights: AllRights(),
	}
}

// At returns the piece on sq, or the zero Piece if empty. Out-of-range
// squares also return the zero Piece; callers that need bounds checking
// use InBounds explicitly.
func (b *Board) At(sq Square) Piece {
	if !sq.InBounds(Size) {
		return EmptyPiece
	}
	return b.cells[sq.Row][sq.Col]
}

// Set places p on sq, or clears the square if p is the zero Piece.
func (b *Board) Set(sq Square, p Piece) {
	b.cells[sq.Row][sq.Col] = p
}

// Clone returns a deep copy of b. Search clones the board once per
// recursion frame rather than sharing a single board across branches, an
// intentionally simple and race-free discipline (see DESIGN.md).
func (b *Board) Clone() *Board {
	clone := *b
	for i := range b.Hands {
		if len(b.Hands[i]) > 0 {
			clone.Hands[i] = make([]PieceKind, len(b.Hands[i]))
			copy(clone.Hands[i], b.Hands[i])
		} else {
			clone.Hands[i] = nil
		}
	}
	return &clone
}

// hand returns a pointer to the given player's hand slice field, so
// callers can append/shrink it in place.
func (b *Board) hand(p Player) *[]PieceKind {
	return &b.Hands[p-1]
}

// AddToHand appends kind to p's hand (a capture, always demoted to base
// kind since Piece.Promoted is tracked separately from Kind).
func (b *Board) AddToHand(p Player, kind PieceKind) {
	h := b.hand(p)
	*h = append(*h, kind)
}

// RemoveFromHand removes one matching entry of kind from p's hand. It
// removes the last matching entry, which is always correct for
// undoing the most recent capture during unmake.
func (b *Board) RemoveFromHand(p Player, kind PieceKind) {
	h := b.hand(p)
	for i := len(*h) - 1; i >= 0; i-- {
		if (*h)[i] == kind {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return
		}
	}
}

// MakeMove applies m to the board, flipping CurrentPlayer and updating
// hands, promotion, castling rook movement, and castling rights exactly
// per the make-move algorithm (see DESIGN.md for step-by-step
// grounding). It returns an error of kind InvalidBoardAccess if from is
// empty or either square is out of range, and IllegalCastlingState if a
// castling move finds no piece on the rook's source square; the castling
// path and rights are not re-checked here.
func (b *Board) MakeMove(m *Move) error {
	if !m.From.InBounds(Size) || !m.To.InBounds(Size) {
		getLog().Errorf("move %s out of bounds", m)
		return kaierr.New(kaierr.InvalidBoardAccess, "move %s out of bounds", m)
	}
	fromPiece := b.At(m.From)
	if fromPiece.IsEmpty() {
		getLog().Errorf("no piece at source for move %s", m)
		return kaierr.New(kaierr.InvalidBoardAccess, "no piece at source for move %s", m)
	}

	m.SavedRights = b.CastlingRights

	if target := b.At(m.To); !target.IsEmpty() {
		captured := target.Kind
		m.Captured = &captured
		b.AddToHand(b.CurrentPlayer, captured)
	}

	b.Set(m.From, EmptyPiece)
	if m.PromotesNow {
		fromPiece.Promoted = true
	}
	b.Set(m.To, fromPiece)

	if m.IsCastling {
		if err := b.moveCastlingRook(m); err != nil {
			return err
		}
	}

	if m.Kind == King || m.Kind == ChessKing {
		b.CastlingRights.ClearBoth(b.CurrentPlayer)
	}

	b.CurrentPlayer = b.CurrentPlayer.Opponent()
	return nil
}

// moveCastlingRook relocates the rook side-effect of a castling move.
// King side moves the rook from column Size-2 (7 on a 9-wide board) to
// the square the king skipped; queen side from column 0. These columns
// are fixed per spec.md §9's open question rather than parameterized by
// king file.
func (b *Board) moveCastlingRook(m *Move) error {
	row := m.From.Row
	var rookFrom, rookTo Square
	if m.To.Col > m.From.Col {
		rookFrom = Square{Row: row, Col: Size - 2}
		rookTo = Square{Row: row, Col: m.From.Col + 1}
	} else {
		rookFrom = Square{Row: row, Col: 0}
		rookTo = Square{Row: row, Col: m.From.Col - 1}
	}
	rook := b.At(rookFrom)
	if rook.IsEmpty() {
		getLog().Errorf("no rook at %s for castling move %s", rookFrom, m)
		return kaierr.New(kaierr.IllegalCastlingState, "no rook at %s for castling move %s", rookFrom, m)
	}
	b.Set(rookFrom, EmptyPiece)
	b.Set(rookTo, rook)
	return nil
}

// UnmakeMove reverses m, restoring the pre-move board, hands, castling
// rights, and side to move. A captured piece is put back with
// Promoted=false, so its promoted state before capture is not restored.
// It mirrors MakeMove's steps in reverse order.
func (b *Board) UnmakeMove(m *Move) error {
	b.CurrentPlayer = b.CurrentPlayer.Opponent()
	b.CastlingRights = m.SavedRights

	if m.IsCastling {
		b.unmoveCastlingRook(m)
	}

	moved := b.At(m.To)
	if moved.IsEmpty() {
		return kaierr.New(kaierr.InvalidBoardAccess, "no piece at destination to unmake move %s", m)
	}
	b.Set(m.To, EmptyPiece)
	moved.Promoted = m.WasPromoted
	b.Set(m.From, moved)

	if m.Captured != nil {
		captured := Piece{Kind: *m.Captured, Owner: b.CurrentPlayer.Opponent(), Promoted: false}
		b.Set(m.To, captured)
		b.RemoveFromHand(b.CurrentPlayer, *m.Captured)
	}
	return nil
}

func (b *Board) unmoveCastlingRook(m *Move) {
	row := m.From.Row
	var rookFrom, rookTo Square
	if m.To.Col > m.From.Col {
		rookTo = Square{Row: row, Col: Size - 2}
		rookFrom = Square{Row: row, Col: m.From.Col + 1}
	} else {
		rookTo = Square{Row: row, Col: 0}
		rookFrom = Square{Row: row, Col: m.From.Col - 1}
	}
	rook := b.At(rookFrom)
	b.Set(rookFrom, EmptyPiece)
	b.Set(rookTo, rook)
}
