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

// Package movegen generates pseudo-legal moves for the hybrid piece set
// and filters them to legal moves that do not leave the mover's king in
// check. It plays the role of the teacher's internal/movegen package,
// generalized from bitboard sliding attacks to plain per-direction
// stepping over the 9x9 grid (see DESIGN.md for why bitboards were not
// carried over: the piece set and board size here do not fit the
// teacher's 64-square magic-bitboard machinery).
package movegen

import (
	"github.com/op/go-logging"

	"github.com/kaishogi/kaiengine/internal/board"
	myLogging "github.com/kaishogi/kaiengine/internal/logging"
	. "github.com/kaishogi/kaiengine/internal/types"
)

var log *logging.Logger

func getLog() *logging.Logger {
	if log == nil {
		log = myLogging.GetLog("movegen")
	}
	return log
}

type direction struct{ dr, dc int }

var (
	orthogonal = [4]direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonal   = [4]direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	allEight   = [8]direction{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	knightJump = [8]direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// GeneratePseudoLegal returns every pseudo-legal move for b.CurrentPlayer:
// legal piece movement per the table in spec.md §4.2, plus a castling
// move when its preconditions hold. It does not filter for leaving the
// mover's own king in check; use GenerateLegal for that.
func GeneratePseudoLegal(b *board.Board) []Move {
	moves := make([]Move, 0, 48)
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			from := Square{Row: row, Col: col}
			p := b.At(from)
			if p.IsEmpty() || p.Owner != b.CurrentPlayer {
				continue
			}
			appendPieceMoves(b, from, p, &moves)
		}
	}
	return moves
}

// GenerateLegal returns the subset of GeneratePseudoLegal's moves that do
// not leave the mover's own king attacked after being made, per the
// legality filter in spec.md §4.2.
func GenerateLegal(b *board.Board) []Move {
	mover := b.CurrentPlayer
	pseudo := GeneratePseudoLegal(b)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		clone := b.Clone()
		mv := m
		if err := clone.MakeMove(&mv); err != nil {
			getLog().Debugf("skipping move that failed to apply during legality filter: %v", err)
			continue
		}
		if !IsAttacked(clone, findKing(clone, mover), mover.Opponent()) {
			legal = append(legal, m)
		}
	}
	return legal
}

// findKing locates p's king square (ChessKing or King). Returns
// Square{-1, -1} if no king is on the board, which IsAttacked treats as
// never attacked (an out-of-range query).
func findKing(b *board.Board, p Player) Square {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			sq := Square{Row: row, Col: col}
			piece := b.At(sq)
			if piece.Owner == p && (piece.Kind == King || piece.Kind == ChessKing) {
				return sq
			}
		}
	}
	return Square{Row: -1, Col: -1}
}

func appendPieceMoves(b *board.Board, from Square, p Piece, moves *[]Move) {
	switch p.Kind {
	case King:
		appendStepMoves(b, from, p, allEight[:], moves)
	case ChessKing:
		appendStepMoves(b, from, p, allEight[:], moves)
		appendCastlingMoves(b, from, p, moves)
	case Rook:
		appendSlidingMoves(b, from, p, orthogonal[:], moves)
		if p.Promoted {
			appendStepMoves(b, from, p, diagonal[:], moves)
		}
	case Bishop:
		appendSlidingMoves(b, from, p, diagonal[:], moves)
		if p.Promoted {
			appendStepMoves(b, from, p, orthogonal[:], moves)
		}
	case ChessQueen:
		appendSlidingMoves(b, from, p, allEight[:], moves)
	case ChessRook:
		appendSlidingMoves(b, from, p, orthogonal[:], moves)
	case ChessBishop:
		appendSlidingMoves(b, from, p, diagonal[:], moves)
	case Knight:
		appendShogiKnightMoves(b, from, p, moves)
	case ChessKnight:
		appendStepMoves(b, from, p, knightJump[:], moves)
	case Lance:
		forward := p.Owner.Forward()
		appendSlidingMoves(b, from, p, []direction{{forward, 0}}, moves)
	case Pawn:
		appendShogiPawnMoves(b, from, p, moves)
	case ChessPawn:
		appendChessPawnMoves(b, from, p, moves)
	case Gold:
		appendStepMoves(b, from, p, goldDirections(p.Owner), moves)
	case Silver:
		if p.Promoted {
			appendStepMoves(b, from, p, goldDirections(p.Owner), moves)
		} else {
			appendStepMoves(b, from, p, silverDirections(p.Owner), moves)
		}
	}
}

// goldDirections returns the six Gold step directions: three forward,
// two lateral, one straight back.
func goldDirections(owner Player) []direction {
	f := owner.Forward()
	return []direction{{f, -1}, {f, 0}, {f, 1}, {0, -1}, {0, 1}, {-f, 0}}
}

// silverDirections returns the five unpromoted Silver step directions:
// three forward, two rear diagonals.
func silverDirections(owner Player) []direction {
	f := owner.Forward()
	return []direction{{f, -1}, {f, 0}, {f, 1}, {-f, -1}, {-f, 1}}
}

func appendShogiKnightMoves(b *board.Board, from Square, p Piece, moves *[]Move) {
	if p.Promoted {
		appendStepMoves(b, from, p, goldDirections(p.Owner), moves)
		return
	}
	f := p.Owner.Forward()
	dirs := []direction{{2 * f, -1}, {2 * f, 1}}
	appendStepMoves(b, from, p, dirs, moves)
}

func appendShogiPawnMoves(b *board.Board, from Square, p Piece, moves *[]Move) {
	if p.Promoted {
		appendStepMoves(b, from, p, goldDirections(p.Owner), moves)
		return
	}
	f := p.Owner.Forward()
	to := from.Add(f, 0)
	if !to.InBounds(board.Size) {
		return
	}
	target := b.At(to)
	if target.IsEmpty() || target.Owner != p.Owner {
		appendMove(moves, from, to, p, target)
	}
}

func appendChessPawnMoves(b *board.Board, from Square, p Piece, moves *[]Move) {
	f := p.Owner.Forward()

	// single step forward, only onto an empty square
	one := from.Add(f, 0)
	oneClear := one.InBounds(board.Size) && b.At(one).IsEmpty()
	if oneClear {
		appendMove(moves, from, one, p, EmptyPiece)

		// initial double step from the home rank if both squares ahead are empty
		if isChessPawnHomeRank(p.Owner, from.Row) {
			two := from.Add(2*f, 0)
			if two.InBounds(board.Size) && b.At(two).IsEmpty() {
				appendMove(moves, from, two, p, EmptyPiece)
			}
		}
	}

	// diagonal captures only
	for _, dc := range []int{-1, 1} {
		to := from.Add(f, dc)
		if !to.InBounds(board.Size) {
			continue
		}
		target := b.At(to)
		if !target.IsEmpty() && target.Owner != p.Owner {
			appendMove(moves, from, to, p, target)
		}
	}
}

// isChessPawnHomeRank reports whether row is the given player's chess
// pawn starting rank on a board of Size 9: row 6 for Player1, row 1 for
// Player2, mirroring the reference 8x8 chess ranks 2/7 scaled onto the
// 9-wide board with one extra buffer rank.
func isChessPawnHomeRank(owner Player, row int) bool {
	if owner == Player1 {
		return row == board.Size-3
	}
	return row == 1
}

func appendStepMoves(b *board.Board, from Square, p Piece, dirs []direction, moves *[]Move) {
	for _, d := range dirs {
		to := from.Add(d.dr, d.dc)
		if !to.InBounds(board.Size) {
			continue
		}
		target := b.At(to)
		if target.IsEmpty() || target.Owner != p.Owner {
			appendMove(moves, from, to, p, target)
		}
	}
}

func appendSlidingMoves(b *board.Board, from Square, p Piece, dirs []direction, moves *[]Move) {
	for _, d := range dirs {
		current := from
		for {
			next := current.Add(d.dr, d.dc)
			if !next.InBounds(board.Size) {
				break
			}
			target := b.At(next)
			if target.IsEmpty() {
				appendMove(moves, from, next, p, EmptyPiece)
				current = next
				continue
			}
			if target.Owner != p.Owner {
				appendMove(moves, from, next, p, target)
			}
			break
		}
	}
}

func appendMove(moves *[]Move, from, to Square, p Piece, target Piece) {
	m := Move{From: from, To: to, Kind: p.Kind, WasPromoted: p.Promoted}
	if !target.IsEmpty() {
		k := target.Kind
		m.Captured = &k
	}
	*moves = append(*moves, m)
}
