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

// Package engine is the external façade: it owns a strength level and
// search depth, decodes a GameState JSON payload into a board.Board, and
// returns the chosen move as JSON. It plays the role of the teacher's
// cmd/FrankyGo + internal/uci combination, collapsed into a single
// synchronous call per spec.md §6 (no UCI protocol, no persistent
// session state beyond level/depth).
package engine

import (
	"encoding/json"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/kaishogi/kaiengine/internal/board"
	"github.com/kaishogi/kaiengine/internal/config"
	"github.com/kaishogi/kaiengine/internal/kaierr"
	myLogging "github.com/kaishogi/kaiengine/internal/logging"
	"github.com/kaishogi/kaiengine/internal/search"
	. "github.com/kaishogi/kaiengine/internal/types"
)

var log *logging.Logger

func getLog() *logging.Logger {
	if log == nil {
		log = myLogging.GetLog("engine")
	}
	return log
}

// Engine holds the current strength level and an optional depth override
// applied on top of the level's preset. isRunning guards against a second
// GetBestMove call reentering while one search is already in flight,
// since a single Engine is not meant to drive concurrent searches.
type Engine struct {
	level         int
	depthOverride int
	isRunning     *semaphore.Weighted
}

// New constructs an Engine at the given strength level (1..6, any other
// value aliases to config.DefaultLevel).
func New(level int) *Engine {
	return &Engine{level: level, isRunning: semaphore.NewWeighted(1)}
}

// SetLevel changes the strength level; a subsequent GetBestMove call
// resolves config from the new level's preset unless a depth override
// is also set.
func (e *Engine) SetLevel(level int) {
	e.level = level
}

// GetLevel returns the current strength level.
func (e *Engine) GetLevel() int {
	return e.level
}

// SetDepth overrides the level preset's max search depth, clamped to
// [config.MinDepth, config.MaxDepth].
func (e *Engine) SetDepth(depth int) {
	e.depthOverride = config.ClampDepth(depth)
}

// GetDepth returns the depth that a search would currently use: the
// override if one is set, otherwise the level preset's MaxDepth.
func (e *Engine) GetDepth() int {
	if e.depthOverride > 0 {
		return e.depthOverride
	}
	return config.PresetForLevel(e.level).MaxDepth
}

func (e *Engine) resolveConfig() config.SearchConfig {
	cfg := config.PresetForLevel(e.level)
	if e.depthOverride > 0 {
		cfg.MaxDepth = e.depthOverride
	}
	return cfg
}

// pieceRecord is the wire shape of a single board cell: null for empty,
// otherwise {type, player, promoted}.
type pieceRecord struct {
	Type     string `json:"type"`
	Player   int    `json:"player"`
	Promoted bool   `json:"promoted"`
}

// gameState is the wire shape of GetBestMove's input, per spec.md §6.
type gameState struct {
	Board         [][]*pieceRecord `json:"board"`
	CurrentPlayer int              `json:"currentPlayer"`
	Hands         *struct {
		Player1 []string `json:"player1"`
		Player2 []string `json:"player2"`
	} `json:"hands"`
}

type squareJSON struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// moveOutput is the wire shape of GetBestMove's successful result.
type moveOutput struct {
	From      squareJSON `json:"from"`
	To        squareJSON `json:"to"`
	PieceType string     `json:"pieceType"`
	Promoted  bool       `json:"promoted"`
	Promotion bool       `json:"promotion"`
}

// GetBestMove decodes gameStateJSON, validates it at the boundary,
// searches for the best move at the engine's current level/depth, and
// encodes the result. All decode and validation failures return
// kaierr.InvalidInput; a position with no legal move returns
// kaierr.NoLegalMoves.
func (e *Engine) GetBestMove(gameStateJSON []byte) ([]byte, error) {
	if !e.isRunning.TryAcquire(1) {
		return nil, kaierr.New(kaierr.InvalidInput, "a search is already in progress on this engine")
	}
	defer e.isRunning.Release(1)

	var gs gameState
	if err := json.Unmarshal(gameStateJSON, &gs); err != nil {
		getLog().Errorf("malformed game state JSON: %v", err)
		return nil, kaierr.New(kaierr.InvalidInput, "malformed game state JSON: %v", err)
	}

	b, player, err := decodeBoard(gs)
	if err != nil {
		return nil, err
	}

	cfg := e.resolveConfig()
	move, stats, err := search.FindBestMove(b, player, cfg)
	if err != nil {
		return nil, err
	}
	getLog().Infof("level %d depth %d: chose %s after %d nodes", e.level, cfg.MaxDepth, move, stats.Nodes)

	out := moveOutput{
		From:      squareJSON{Row: move.From.Row, Col: move.From.Col},
		To:        squareJSON{Row: move.To.Row, Col: move.To.Col},
		PieceType: move.Kind.String(),
		Promoted:  move.WasPromoted,
		Promotion: move.PromotesNow,
	}
	return json.Marshal(out)
}

// decodeBoard validates and converts a gameState into a board.Board and
// the player to move, per the boundary validation rules in spec.md §6.
func decodeBoard(gs gameState) (*board.Board, Player, error) {
	n := len(gs.Board)
	if n == 0 {
		return nil, NoPlayer, kaierr.New(kaierr.InvalidInput, "board is zero-sized")
	}
	for _, row := range gs.Board {
		if len(row) != n {
			return nil, NoPlayer, kaierr.New(kaierr.InvalidInput, "board is not square")
		}
	}
	if n != board.Size {
		return nil, NoPlayer, kaierr.New(kaierr.InvalidInput, "board side %d does not match the engine's fixed %d", n, board.Size)
	}

	var player Player
	switch gs.CurrentPlayer {
	case 1:
		player = Player1
	case 2:
		player = Player2
	default:
		return nil, NoPlayer, kaierr.New(kaierr.InvalidInput, "currentPlayer must be 1 or 2, got %d", gs.CurrentPlayer)
	}

	b := board.New()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			rec := gs.Board[row][col]
			if rec == nil {
				continue
			}
			kind, ok := PieceKindFromString(rec.Type)
			if !ok {
				return nil, NoPlayer, kaierr.New(kaierr.InvalidInput, "unknown piece kind %q", rec.Type)
			}
			var owner Player
			switch rec.Player {
			case 1:
				owner = Player1
			case 2:
				owner = Player2
			default:
				return nil, NoPlayer, kaierr.New(kaierr.InvalidInput, "piece at (%d,%d) has invalid player %d", row, col, rec.Player)
			}
			b.Set(Square{Row: row, Col: col}, Piece{Kind: kind, Owner: owner, Promoted: rec.Promoted})
		}
	}
	b.CurrentPlayer = player

	if gs.Hands != nil {
		if err := addHand(b, Player1, gs.Hands.Player1); err != nil {
			return nil, NoPlayer, err
		}
		if err := addHand(b, Player2, gs.Hands.Player2); err != nil {
			return nil, NoPlayer, err
		}
	}

	return b, player, nil
}

func addHand(b *board.Board, owner Player, kinds []string) error {
	for _, s := range kinds {
		kind, ok := PieceKindFromString(s)
		if !ok {
			return kaierr.New(kaierr.InvalidInput, "unknown hand piece kind %q", s)
		}
		b.AddToHand(owner, kind)
	}
	return nil
}
