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

// Square is a zero-based board coordinate. Row 0 is the "top" (Player2's
// home rank); row N-1 is Player1's home rank.
type Square struct {
	Row, Col int
}

// InBounds reports whether the square lies within a board of side n.
func (s Square) InBounds(n int) bool {
	return s.Row >= 0 && s.Row < n && s.Col >= 0 && s.Col < n
}

// Add returns the square obtained by stepping (dr, dc) from s.
func (s Square) Add(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String renders the square as "(row,col)" for logs and error messages.
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// Index returns the row-major index of the square on a board of side n,
// used to key PST and Zobrist tables.
func (s Square) Index(n int) int {
	return s.Row*n + s.Col
}

// Mirror returns the square reflected through the center of a board of
// side n, used to read a Player1-perspective PST table from Player2's
// point of view.
func (s Square) Mirror(n int) Square {
	return Square{Row: n - 1 - s.Row, Col: n - 1 - s.Col}
}
