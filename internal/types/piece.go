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

// Package types holds the primitive value types shared across the engine:
// piece kinds, players, squares, moves, castling rights, and the numeric
// types used for search scores and Zobrist keys. Dispatch on a PieceKind
// is always by switch, never by subtype, keeping the move generator's
// inner loop allocation-free.
package types

// PieceKind is a closed enumeration of the 14 piece variants that can
// occupy a square: eight Shogi pieces and six Chess pieces.
type PieceKind int8

const (
	// PieceNone marks an empty square.
	PieceNone PieceKind = iota

	// Shogi family.
	King
	Rook
	Bishop
	Gold
	Silver
	Knight
	Lance
	Pawn

	// Chess family.
	ChessKing
	ChessQueen
	ChessRook
	ChessBishop
	ChessKnight
	ChessPawn

	pieceKindLength
)

// pieceKindNames mirrors the JSON wire vocabulary of the GameState contract.
var pieceKindNames = [pieceKindLength]string{
	PieceNone:   "",
	King:        "king",
	Rook:        "rook",
	Bishop:      "bishop",
	Gold:        "gold",
	Silver:      "silver",
	Knight:      "knight",
	Lance:       "lance",
	Pawn:        "pawn",
	ChessKing:   "chess_king",
	ChessQueen:  "chess_queen",
	ChessRook:   "chess_rook",
	ChessBishop: "chess_bishop",
	ChessKnight: "chess_knight",
	ChessPawn:   "chess_pawn",
}

// String returns the JSON wire name of the piece kind, or "" for PieceNone.
func (k PieceKind) String() string {
	if k < 0 || k >= pieceKindLength {
		return ""
	}
	return pieceKindNames[k]
}

// PieceKindFromString resolves a JSON wire name to a PieceKind. ok is false
// for any string that is not one of the fourteen known kinds.
func PieceKindFromString(s string) (kind PieceKind, ok bool) {
	for k := King; k < pieceKindLength; k++ {
		if pieceKindNames[k] == s {
			return k, true
		}
	}
	return PieceNone, false
}

// IsShogi reports whether the kind belongs to the Shogi family.
func (k PieceKind) IsShogi() bool {
	return k >= King && k <= Pawn
}

// IsChess reports whether the kind belongs to the Chess family.
func (k PieceKind) IsChess() bool {
	return k >= ChessKing && k <= ChessPawn
}

// CanPromote reports whether the kind has a promoted form: every Shogi
// piece except King and Gold. Chess pieces never carry a promoted flag.
func (k PieceKind) CanPromote() bool {
	switch k {
	case Rook, Bishop, Silver, Knight, Lance, Pawn:
		return true
	default:
		return false
	}
}

// Player identifies a side: 1 or 2. There is no zero value in play; a
// Player of 0 means "no player" where that distinction is needed.
type Player int8

const (
	// NoPlayer represents the absence of an owner, used for PieceNone.
	NoPlayer Player = 0
	// Player1 moves up the board (toward row 0) and starts on the bottom.
	Player1 Player = 1
	// Player2 moves down the board (toward row N-1) and starts on the top.
	Player2 Player = 2
)

// Opponent returns the other player. Calling it on NoPlayer is a
// programmer error and returns NoPlayer.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

// Forward returns the row delta of one step "forward" for this player:
// -1 for Player1 (moving toward row 0), +1 for Player2.
func (p Player) Forward() int {
	if p == Player1 {
		return -1
	}
	return 1
}

// Piece is an on-board or in-hand piece: its kind, owner, and whether it
// is currently promoted. Promoted is only ever true for a Shogi-family
// piece that CanPromote.
type Piece struct {
	Kind     PieceKind
	Owner    Player
	Promoted bool
}

// IsEmpty reports whether this represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == PieceNone
}

// EmptyPiece is the zero-value Piece, representing an empty square.
var EmptyPiece = Piece{}
