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

// Value is a centipawn score, always reported from the side-to-move's
// perspective unless documented otherwise.
type Value int32

const (
	// MateScore is the magnitude assigned to a checkmate-style terminal
	// node, reduced by ply so that shorter mates sort as more extreme.
	MateScore Value = 100_000

	// Infinity bounds the initial alpha-beta window.
	Infinity Value = 1_000_000

	// ValueDraw is the score of a drawn position.
	ValueDraw Value = 0

	// ValueNone marks the absence of a stored value, e.g. an empty TT slot.
	ValueNone Value = Infinity + 1
)

// Bound records what a stored search value means relative to the window
// it was computed in.
type Bound int8

const (
	// BoundNone marks an empty or unused TT slot.
	BoundNone Bound = iota
	// BoundExact is a fully resolved score.
	BoundExact
	// BoundLower is a fail-high: the true score is at least this value.
	BoundLower
	// BoundUpper is a fail-low: the true score is at most this value.
	BoundUpper
)

func (b Bound) String() string {
	switch b {
	case BoundExact:
		return "exact"
	case BoundLower:
		return "lower"
	case BoundUpper:
		return "upper"
	default:
		return "none"
	}
}
