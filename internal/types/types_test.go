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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceKindRoundTrip(t *testing.T) {
	for k := King; k < pieceKindLength; k++ {
		got, ok := PieceKindFromString(k.String())
		assert.True(t, ok, "kind %d should round-trip", k)
		assert.Equal(t, k, got)
	}
}

func TestPieceKindFromStringUnknown(t *testing.T) {
	_, ok := PieceKindFromString("not_a_piece")
	assert.False(t, ok)
}

func TestIsShogiIsChessDisjoint(t *testing.T) {
	for k := King; k < pieceKindLength; k++ {
		assert.NotEqual(t, k.IsShogi(), k.IsChess(), "kind %s should be exactly one family", k)
	}
}

func TestCanPromote(t *testing.T) {
	promotable := map[PieceKind]bool{
		Rook: true, Bishop: true, Silver: true, Knight: true, Lance: true, Pawn: true,
		King: false, Gold: false,
		ChessKing: false, ChessQueen: false, ChessRook: false, ChessBishop: false, ChessKnight: false, ChessPawn: false,
	}
	for k, want := range promotable {
		assert.Equal(t, want, k.CanPromote(), "kind %s", k)
	}
}

func TestPlayerOpponent(t *testing.T) {
	assert.Equal(t, Player2, Player1.Opponent())
	assert.Equal(t, Player1, Player2.Opponent())
	assert.Equal(t, NoPlayer, NoPlayer.Opponent())
}

func TestPlayerForward(t *testing.T) {
	assert.Equal(t, -1, Player1.Forward())
	assert.Equal(t, 1, Player2.Forward())
}

func TestSquareInBoundsAndMirror(t *testing.T) {
	sq := Square{Row: 1, Col: 2}
	assert.True(t, sq.InBounds(9))
	assert.False(t, Square{Row: -1, Col: 0}.InBounds(9))
	assert.False(t, Square{Row: 0, Col: 9}.InBounds(9))

	mirrored := sq.Mirror(9)
	assert.Equal(t, Square{Row: 7, Col: 6}, mirrored)
	assert.Equal(t, sq, mirrored.Mirror(9))
}

func TestSquareIndex(t *testing.T) {
	assert.Equal(t, 0, Square{Row: 0, Col: 0}.Index(9))
	assert.Equal(t, 13, Square{Row: 1, Col: 4}.Index(9))
	assert.Equal(t, 80, Square{Row: 8, Col: 8}.Index(9))
}

func TestMoveIsZero(t *testing.T) {
	assert.True(t, NoMove.IsZero())
	m := Move{From: Square{Row: 1, Col: 1}, To: Square{Row: 2, Col: 1}, Kind: Pawn}
	assert.False(t, m.IsZero())
}

func TestMoveIsCapture(t *testing.T) {
	m := Move{From: Square{Row: 1, Col: 1}, To: Square{Row: 2, Col: 1}, Kind: Pawn}
	assert.False(t, m.IsCapture())
	captured := Rook
	m.Captured = &captured
	assert.True(t, m.IsCapture())
}

func TestMoveEqual(t *testing.T) {
	a := Move{From: Square{Row: 1, Col: 1}, To: Square{Row: 2, Col: 1}, Kind: Pawn}
	b := Move{From: Square{Row: 1, Col: 1}, To: Square{Row: 2, Col: 1}, Kind: Pawn}
	assert.True(t, a.Equal(b))
	b.PromotesNow = true
	assert.False(t, a.Equal(b))
}

func TestCastlingRightsHelpers(t *testing.T) {
	rights := AllRights()
	assert.True(t, rights.KingSide(Player1))
	assert.True(t, rights.QueenSide(Player2))

	rights.ClearBoth(Player1)
	assert.False(t, rights.KingSide(Player1))
	assert.False(t, rights.QueenSide(Player1))
	assert.True(t, rights.KingSide(Player2))
}

func TestBoundString(t *testing.T) {
	assert.NotEmpty(t, BoundExact.String())
	assert.NotEmpty(t, BoundLower.String())
	assert.NotEmpty(t, BoundUpper.String())
}
