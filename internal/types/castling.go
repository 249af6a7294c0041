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

// CastlingRights tracks, per player and flank, whether a king-plus-rook
// swap is still legal. Rights are monotonically non-increasing during a
// game except when a Move's unmake restores a prior snapshot.
type CastlingRights struct {
	Player1KingSide  bool
	Player1QueenSide bool
	Player2KingSide  bool
	Player2QueenSide bool
}

// AllRights returns the initial state: every flag set.
func AllRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// KingSide reports the king-side flag for the given player.
func (c CastlingRights) KingSide(p Player) bool {
	if p == Player1 {
		return c.Player1KingSide
	}
	return c.Player2KingSide
}

// QueenSide reports the queen-side flag for the given player.
func (c CastlingRights) QueenSide(p Player) bool {
	if p == Player1 {
		return c.Player1QueenSide
	}
	return c.Player2QueenSide
}

// ClearBoth clears both flank flags for the given player, as happens once
// and for all the first time that player's king moves.
func (c *CastlingRights) ClearBoth(p Player) {
	if p == Player1 {
		c.Player1KingSide = false
		c.Player1QueenSide = false
	} else {
		c.Player2KingSide = false
		c.Player2QueenSide = false
	}
}
