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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaishogi/kaiengine/internal/board"
	. "github.com/kaishogi/kaiengine/internal/types"
)

func emptyBoard(toMove Player) *board.Board {
	b := board.New()
	b.CastlingRights = CastlingRights{}
	b.CurrentPlayer = toMove
	return b
}

func TestShogiPawnMovesForwardOnly(t *testing.T) {
	b := emptyBoard(Player1)
	b.Set(Square{Row: 4, Col: 4}, Piece{Kind: Pawn, Owner: Player1})

	moves := GeneratePseudoLegal(b)
	require.Len(t, moves, 1)
	assert.Equal(t, Square{Row: 3, Col: 4}, moves[0].To)
}

func TestShogiPawnCapturesStraightAhead(t *testing.T) {
	b := emptyBoard(Player1)
	b.Set(Square{Row: 4, Col: 4}, Piece{Kind: Pawn, Owner: Player1})
	b.Set(Square{Row: 3, Col: 4}, Piece{Kind: Pawn, Owner: Player2})

	moves := GeneratePseudoLegal(b)
	require.Len(t, moves, 1)
	assert.True(t, moves[0].IsCapture())
}

func TestShogiPawnCannotCaptureOwnPiece(t *testing.T) {
	b := emptyBoard(Player1)
	b.Set(Square{Row: 4, Col: 4}, Piece{Kind: Pawn, Owner: Player1})
	b.Set(Square{Row: 3, Col: 4}, Piece{Kind: Pawn, Owner: Player1})

	moves := GeneratePseudoLegal(b)
	assert.Len(t, moves, 0)
}

func TestChessPawnDoubleStepFromHomeRank(t *testing.T) {
	b := emptyBoard(Player1)
	b.Set(Square{Row: 6, Col: 3}, Piece{Kind: ChessPawn, Owner: Player1})

	moves := GeneratePseudoLegal(b)
	dests := map[Square]bool{}
	for _, m := range moves {
		dests[m.To] = true
	}
	assert.True(t, dests[Square{Row: 5, Col: 3}])
	assert.True(t, dests[Square{Row: 4, Col: 3}])
}

func TestChessPawnDoubleStepFromHomeRankPlayer2(t *testing.T) {
	b := emptyBoard(Player2)
	b.Set(Square{Row: 1, Col: 3}, Piece{Kind: ChessPawn, Owner: Player2})

	moves := GeneratePseudoLegal(b)
	dests := map[Square]bool{}
	for _, m := range moves {
		dests[m.To] = true
	}
	assert.True(t, dests[Square{Row: 2, Col: 3}])
	assert.True(t, dests[Square{Row: 3, Col: 3}])
}

func TestChessPawnNoDoubleStepAfterMoving(t *testing.T) {
	b := emptyBoard(Player1)
	b.Set(Square{Row: 5, Col: 3}, Piece{Kind: ChessPawn, Owner: Player1})

	moves := GeneratePseudoLegal(b)
	for _, m := range moves {
		assert.NotEqual(t, Square{Row: 3, Col: 3}, m.To)
	}
}

func TestChessPawnCapturesDiagonallyOnly(t *testing.T) {
	b := emptyBoard(Player1)
	b.Set(Square{Row: 4, Col: 4}, Piece{Kind: ChessPawn, Owner: Player1})
	b.Set(Square{Row: 3, Col: 4}, Piece{Kind: ChessPawn, Owner: Player2})
	b.Set(Square{Row: 3, Col: 3}, Piece{Kind: ChessPawn, Owner: Player2})

	moves := GeneratePseudoLegal(b)
	for _, m := range moves {
		if m.To == (Square{Row: 3, Col: 4}) {
			t.Fatalf("chess pawn should not capture straight ahead")
		}
	}
	found := false
	for _, m := range moves {
		if m.To == (Square{Row: 3, Col: 3}) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGoldMovesSixDirections(t *testing.T) {
	b := emptyBoard(Player1)
	b.Set(Square{Row: 4, Col: 4}, Piece{Kind: Gold, Owner: Player1})

	moves := GeneratePseudoLegal(b)
	assert.Len(t, moves, 6)
}

func TestPromotedKnightMovesAsGold(t *testing.T) {
	b := emptyBoard(Player1)
	b.Set(Square{Row: 4, Col: 4}, Piece{Kind: Knight, Owner: Player1, Promoted: true})

	moves := GeneratePseudoLegal(b)
	assert.Len(t, moves, 6)
}

func TestRookSlidesAndStopsAtCapture(t *testing.T) {
	b := emptyBoard(Player1)
	b.Set(Square{Row: 4, Col: 4}, Piece{Kind: Rook, Owner: Player1})
	b.Set(Square{Row: 4, Col: 7}, Piece{Kind: Pawn, Owner: Player2})

	moves := GeneratePseudoLegal(b)
	maxCol := -1
	for _, m := range moves {
		if m.From == (Square{Row: 4, Col: 4}) && m.To.Row == 4 && m.To.Col > maxCol {
			maxCol = m.To.Col
		}
	}
	assert.Equal(t, 7, maxCol)
}

func TestGenerateLegalExcludesSelfCheck(t *testing.T) {
	b := emptyBoard(Player1)
	b.Set(Square{Row: 8, Col: 4}, Piece{Kind: King, Owner: Player1})
	b.Set(Square{Row: 0, Col: 4}, Piece{Kind: ChessRook, Owner: Player2})
	b.Set(Square{Row: 4, Col: 4}, Piece{Kind: Gold, Owner: Player1})

	legal := GenerateLegal(b)
	for _, m := range legal {
		if m.From == (Square{Row: 4, Col: 4}) {
			assert.Equal(t, 4, m.To.Col, "a pinned piece may only move within the pinning file")
		}
	}
}

func TestIsAttackedDetectsSlidingAttack(t *testing.T) {
	b := emptyBoard(Player1)
	b.Set(Square{Row: 0, Col: 4}, Piece{Kind: ChessRook, Owner: Player2})

	assert.True(t, IsAttacked(b, Square{Row: 4, Col: 4}, Player2))
	assert.False(t, IsAttacked(b, Square{Row: 4, Col: 5}, Player2))
}

func TestIsAttackedOutOfBoundsIsFalse(t *testing.T) {
	b := emptyBoard(Player1)
	assert.False(t, IsAttacked(b, Square{Row: -1, Col: 0}, Player2))
}

func TestCastlingAvailableWhenPathClearAndSafe(t *testing.T) {
	b := emptyBoard(Player1)
	b.Set(Square{Row: 8, Col: 4}, Piece{Kind: ChessKing, Owner: Player1})
	b.Set(Square{Row: 8, Col: board.Size - 2}, Piece{Kind: ChessRook, Owner: Player1})
	b.CastlingRights = AllRights()

	found := false
	for _, m := range GeneratePseudoLegal(b) {
		if m.IsCastling && m.To == (Square{Row: 8, Col: 6}) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCastlingBlockedWhenTransitSquareAttacked(t *testing.T) {
	b := emptyBoard(Player1)
	b.Set(Square{Row: 8, Col: 4}, Piece{Kind: ChessKing, Owner: Player1})
	b.Set(Square{Row: 8, Col: board.Size - 2}, Piece{Kind: ChessRook, Owner: Player1})
	b.Set(Square{Row: 0, Col: 5}, Piece{Kind: ChessRook, Owner: Player2})
	b.CastlingRights = AllRights()

	for _, m := range GeneratePseudoLegal(b) {
		if m.IsCastling {
			t.Fatalf("castling should be blocked by an attacked transit square, got %s", m)
		}
	}
}

func TestCastlingRequiresRight(t *testing.T) {
	b := emptyBoard(Player1)
	b.Set(Square{Row: 8, Col: 4}, Piece{Kind: ChessKing, Owner: Player1})
	b.Set(Square{Row: 8, Col: board.Size - 2}, Piece{Kind: ChessRook, Owner: Player1})
	b.CastlingRights = CastlingRights{}

	for _, m := range GeneratePseudoLegal(b) {
		assert.False(t, m.IsCastling)
	}
}
