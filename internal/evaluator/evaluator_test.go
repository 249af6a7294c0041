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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaishogi/kaiengine/internal/board"
	"github.com/kaishogi/kaiengine/internal/config"
	. "github.com/kaishogi/kaiengine/internal/types"
)

func TestEvaluateEmptyBoardIsZero(t *testing.T) {
	b := board.New()
	b.CurrentPlayer = Player1
	cfg := config.SearchConfig{}
	assert.Equal(t, Value(0), Evaluate(b, cfg))
}

func TestEvaluateMaterialAdvantageFavorsMover(t *testing.T) {
	b := board.New()
	b.Set(Square{Row: 4, Col: 4}, Piece{Kind: ChessQueen, Owner: Player1})
	b.CurrentPlayer = Player1
	cfg := config.SearchConfig{}
	assert.Greater(t, Evaluate(b, cfg), Value(0))
}

func TestEvaluateSignFlipsWithMover(t *testing.T) {
	b := board.New()
	b.Set(Square{Row: 4, Col: 4}, Piece{Kind: ChessQueen, Owner: Player1})

	b.CurrentPlayer = Player1
	asPlayer1 := Evaluate(b, config.SearchConfig{})
	b.CurrentPlayer = Player2
	asPlayer2 := Evaluate(b, config.SearchConfig{})

	assert.Equal(t, asPlayer1, -asPlayer2)
}

func TestPromotedValueExceedsBase(t *testing.T) {
	assert.Greater(t, pieceValue(Rook, true), pieceValue(Rook, false))
	assert.Greater(t, pieceValue(Pawn, true), pieceValue(Pawn, false))
}

func TestKingValueDominates(t *testing.T) {
	assert.Greater(t, pieceValue(King, false), pieceValue(ChessQueen, false))
}

func TestHandValueIsHalfMaterial(t *testing.T) {
	b := board.New()
	b.CurrentPlayer = Player1
	b.AddToHand(Player1, Pawn)
	cfg := config.SearchConfig{}
	assert.Equal(t, pieceValue(Pawn, false)/2, Evaluate(b, cfg))
}

func TestPSTAddsWhenEnabled(t *testing.T) {
	b := board.New()
	b.Set(Square{Row: 4, Col: 4}, Piece{Kind: Pawn, Owner: Player1})
	b.CurrentPlayer = Player1

	withoutPST := Evaluate(b, config.SearchConfig{UsePST: false})
	withPST := Evaluate(b, config.SearchConfig{UsePST: true})

	assert.NotEqual(t, withoutPST, withPST)
}

func TestPSTMirrorsForPlayer2(t *testing.T) {
	b1 := board.New()
	b1.Set(Square{Row: 2, Col: 4}, Piece{Kind: Pawn, Owner: Player1})
	v1 := pstValue(Pawn, Square{Row: 2, Col: 4}, Player1)

	v2 := pstValue(Pawn, Square{Row: board.Size - 1 - 2, Col: board.Size - 1 - 4}, Player2)

	assert.Equal(t, v1, v2)
}
