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

// Package zobrist computes deterministic 64-bit position keys for the
// transposition table, following internal/position's zobrist.go in the
// teacher but reduced to two key tables, piece/square and player (no castling-right
// or en-passant mixing, since the spec explicitly excludes hand state
// and accepts the resulting collision risk).
package zobrist

import (
	"sync"

	"github.com/kaishogi/kaiengine/internal/board"
	. "github.com/kaishogi/kaiengine/internal/types"
)

// kindIndexCount is the number of distinct Zobrist piece-kind slots.
// Chess pieces alias onto the Shogi indices they share movement/identity
// with for hashing purposes: ChessKing->King(0), ChessKnight->Knight(5),
// ChessPawn->Pawn(7); ChessQueen, ChessRook, ChessBishop get 8, 9, 10.
const kindIndexCount = 11

const (
	lcgMultiplier uint64 = 6364136223846793005
	lcgIncrement  uint64 = 1442695040888963407
	lcgSeed       uint64 = 0x123456789abcdef0
)

// Hasher holds the per-piece/per-square and per-player key tables.
type Hasher struct {
	pieceKeys  [2][kindIndexCount][board.Size * board.Size]uint64
	playerKeys [2]uint64
}

var (
	instance *Hasher
	once     sync.Once
)

// Get returns the process-wide Hasher, initializing it on first use. Per
// spec.md §5, this lazy path is not itself thread-safe in principle, but
// sync.Once is exactly the standard-library primitive built to make a
// lazy singleton initialization race-free (see DESIGN.md); callers that
// want to avoid any doubt can call Get eagerly at process start, before
// spawning concurrent engines.
func Get() *Hasher {
	once.Do(func() {
		instance = newHasher()
	})
	return instance
}

func newHasher() *Hasher {
	h := &Hasher{}
	rng := lcgSeed
	next := func() uint64 {
		rng = rng*lcgMultiplier + lcgIncrement
		return rng
	}
	for player := 0; player < 2; player++ {
		for kind := 0; kind < kindIndexCount; kind++ {
			for sq := 0; sq < board.Size*board.Size; sq++ {
				h.pieceKeys[player][kind][sq] = next()
			}
		}
	}
	for player := 0; player < 2; player++ {
		h.playerKeys[player] = next()
	}
	return h
}

// kindIndex maps a PieceKind to its Zobrist table slot, aliasing Chess
// pieces onto the Shogi index they share.
func kindIndex(k PieceKind) int {
	switch k {
	case King, ChessKing:
		return 0
	case Rook:
		return 1
	case Bishop:
		return 2
	case Gold:
		return 3
	case Silver:
		return 4
	case Knight, ChessKnight:
		return 5
	case Lance:
		return 6
	case Pawn, ChessPawn:
		return 7
	case ChessQueen:
		return 8
	case ChessRook:
		return 9
	case ChessBishop:
		return 10
	default:
		return 0
	}
}

// Hash computes the Zobrist key for b: XOR of pieceKeys over every
// occupied square, XOR'd with the key for the side to move. Hand state
// is never mixed in.
func (h *Hasher) Hash(b *board.Board) Key {
	var key uint64
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			sq := Square{Row: row, Col: col}
			p := b.At(sq)
			if p.IsEmpty() {
				continue
			}
			playerIdx := int(p.Owner) - 1
			key ^= h.pieceKeys[playerIdx][kindIndex(p.Kind)][sq.Index(board.Size)]
		}
	}
	key ^= h.playerKeys[int(b.CurrentPlayer)-1]
	return Key(key)
}
