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

// Package kaierr defines the error taxonomy shared across the engine: a
// small closed set of kinds the façade and search layer branch on, rather
// than sentinel errors scattered through each package.
package kaierr

import "fmt"

// Kind is a closed enumeration of the error categories the engine reports.
type Kind int

const (
	// InvalidInput marks a malformed request at the engine boundary:
	// zero-sized or non-square board, unknown piece kind, bad player.
	InvalidInput Kind = iota
	// NoLegalMoves marks a position with no legal move for the side to move.
	NoLegalMoves
	// InvalidBoardAccess marks an attempt to make/unmake with an
	// out-of-range or empty source square. Should never arise from a
	// generated move; surfaced as an internal assertion failure.
	InvalidBoardAccess
	// IllegalCastlingState marks a castling move whose path or rights no
	// longer hold at make time, even though the generator enforced them
	// when the move was produced.
	IllegalCastlingState
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case NoLegalMoves:
		return "no_legal_moves"
	case InvalidBoardAccess:
		return "invalid_board_access"
	case IllegalCastlingState:
		return "illegal_castling_state"
	default:
		return "unknown"
	}
}

// Error is a Kind-tagged error with a human-readable message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// New creates a Kind-tagged error.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a *Error of the given kind, for use with
// errors.Is-style call sites.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
