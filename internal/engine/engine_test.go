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

package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaishogi/kaiengine/internal/kaierr"
)

func emptyRow(n int) []*pieceRecord {
	return make([]*pieceRecord, n)
}

func minimalBoard() [][]*pieceRecord {
	rows := make([][]*pieceRecord, 9)
	for i := range rows {
		rows[i] = emptyRow(9)
	}
	rows[8][4] = &pieceRecord{Type: "chess_king", Player: 1}
	rows[0][4] = &pieceRecord{Type: "chess_king", Player: 2}
	rows[8][0] = &pieceRecord{Type: "chess_rook", Player: 1}
	return rows
}

func TestGetBestMoveHappyPath(t *testing.T) {
	gs := gameState{Board: minimalBoard(), CurrentPlayer: 1}
	payload, err := json.Marshal(gs)
	require.NoError(t, err)

	e := New(4)
	out, err := e.GetBestMove(payload)
	require.NoError(t, err)

	var result moveOutput
	require.NoError(t, json.Unmarshal(out, &result))
	assert.NotEqual(t, result.From, result.To)
}

func TestGetBestMoveMalformedJSON(t *testing.T) {
	e := New(3)
	_, err := e.GetBestMove([]byte("{not json"))
	require.Error(t, err)
	assert.True(t, kaierr.Is(err, kaierr.InvalidInput))
}

func TestGetBestMoveZeroSizedBoard(t *testing.T) {
	gs := gameState{Board: [][]*pieceRecord{}, CurrentPlayer: 1}
	payload, _ := json.Marshal(gs)

	e := New(3)
	_, err := e.GetBestMove(payload)
	require.Error(t, err)
	assert.True(t, kaierr.Is(err, kaierr.InvalidInput))
}

func TestGetBestMoveNonSquareBoard(t *testing.T) {
	rows := [][]*pieceRecord{emptyRow(9), emptyRow(8)}
	gs := gameState{Board: rows, CurrentPlayer: 1}
	payload, _ := json.Marshal(gs)

	e := New(3)
	_, err := e.GetBestMove(payload)
	require.Error(t, err)
	assert.True(t, kaierr.Is(err, kaierr.InvalidInput))
}

func TestGetBestMoveUnknownPieceKind(t *testing.T) {
	rows := minimalBoard()
	rows[4][4] = &pieceRecord{Type: "dragon", Player: 1}
	gs := gameState{Board: rows, CurrentPlayer: 1}
	payload, _ := json.Marshal(gs)

	e := New(3)
	_, err := e.GetBestMove(payload)
	require.Error(t, err)
	assert.True(t, kaierr.Is(err, kaierr.InvalidInput))
}

func TestGetBestMoveInvalidPlayer(t *testing.T) {
	gs := gameState{Board: minimalBoard(), CurrentPlayer: 3}
	payload, _ := json.Marshal(gs)

	e := New(3)
	_, err := e.GetBestMove(payload)
	require.Error(t, err)
	assert.True(t, kaierr.Is(err, kaierr.InvalidInput))
}

func TestSetDepthClampsAndGetDepthReflectsIt(t *testing.T) {
	e := New(3)
	e.SetDepth(100)
	assert.Equal(t, 8, e.GetDepth())

	e.SetDepth(0)
	assert.Equal(t, 1, e.GetDepth())
}

func TestGetLevelSetLevel(t *testing.T) {
	e := New(2)
	assert.Equal(t, 2, e.GetLevel())
	e.SetLevel(5)
	assert.Equal(t, 5, e.GetLevel())
}

func TestGetBestMoveRejectsReentrantCall(t *testing.T) {
	gs := gameState{Board: minimalBoard(), CurrentPlayer: 1}
	payload, err := json.Marshal(gs)
	require.NoError(t, err)

	e := New(3)
	require.True(t, e.isRunning.TryAcquire(1))
	defer e.isRunning.Release(1)

	_, err = e.GetBestMove(payload)
	require.Error(t, err)
	assert.True(t, kaierr.Is(err, kaierr.InvalidInput))
}

func TestHandsAreOptional(t *testing.T) {
	gs := gameState{Board: minimalBoard(), CurrentPlayer: 1, Hands: nil}
	payload, err := json.Marshal(gs)
	require.NoError(t, err)

	e := New(1)
	_, err = e.GetBestMove(payload)
	require.NoError(t, err)
}
