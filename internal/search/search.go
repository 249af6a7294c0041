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

// Package search implements iterative-deepening negamax with alpha-beta
// pruning, a quiescence extension, transposition-table cutoffs, and
// killer-move/MVV-LVA ordering. It plays the role of the teacher's
// internal/search package, reduced to a single synchronous call with no
// PVS, no null-move pruning, and no time management (see spec.md §5:
// single-threaded, no suspension points, no timeouts at the algorithmic
// level).
package search

import (
	"sort"

	"github.com/op/go-logging"

	"github.com/kaishogi/kaiengine/internal/board"
	"github.com/kaishogi/kaiengine/internal/config"
	"github.com/kaishogi/kaiengine/internal/evaluator"
	"github.com/kaishogi/kaiengine/internal/kaierr"
	myLogging "github.com/kaishogi/kaiengine/internal/logging"
	"github.com/kaishogi/kaiengine/internal/movegen"
	"github.com/kaishogi/kaiengine/internal/tt"
	. "github.com/kaishogi/kaiengine/internal/types"
	"github.com/kaishogi/kaiengine/internal/zobrist"
)

var log *logging.Logger

func getLog() *logging.Logger {
	if log == nil {
		log = myLogging.GetLog("search")
	}
	return log
}

// MaxPly bounds the killer-move table; quiescence recursion is also
// expected to stay well inside it for any sane qsearchDepth.
const MaxPly = 64

// Stats collects node counts for the lifetime of a single FindBestMove
// call, mirroring the teacher's per-search Statistics struct at a much
// smaller scale.
type Stats struct {
	Nodes      uint64
	QNodes     uint64
	TTHits     uint64
	KillerHits uint64
}

// state carries everything one FindBestMove call threads through its
// recursive calls: the transposition table, killer slots, config and a
// running node count. It is not reused across calls.
type state struct {
	cfg     config.SearchConfig
	table   *tt.Table
	killers [MaxPly][2]Move
	stats   Stats
}

// FindBestMove runs iterative deepening from 1..cfg.MaxDepth and returns
// the best move found for player on b, per spec.md §4.6. It fails with
// kaierr.NoLegalMoves if player has no legal move in the root position.
func FindBestMove(b *board.Board, player Player, cfg config.SearchConfig) (Move, Stats, error) {
	rootMoves := movegen.GenerateLegal(b)
	if len(rootMoves) == 0 {
		return NoMove, Stats{}, kaierr.New(kaierr.NoLegalMoves, "no legal move for player %d", player)
	}

	s := &state{cfg: cfg}
	if cfg.UseTT {
		s.table = tt.New(cfg.TTSizeMB)
	}

	var best Move
	var bestScore Value
	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		score, move := s.searchRoot(b, rootMoves, depth, player)
		if move.IsZero() {
			break
		}
		best, bestScore = move, score
		rootMoves = reorderByLastBest(rootMoves, best)
		if bestScore > MateScore-100 || bestScore < -(MateScore-100) {
			getLog().Debugf("stopping iterative deepening early at depth %d, mate score %d", depth, bestScore)
			break
		}
	}
	getLog().Debugf("search finished: %d nodes, %d qnodes, best=%s score=%d", s.stats.Nodes, s.stats.QNodes, best, bestScore)
	return best, s.stats, nil
}

// searchRoot evaluates every root move at depth and returns the score
// and move of the best one, storing the root TT entry as Exact.
func (s *state) searchRoot(b *board.Board, rootMoves []Move, depth int, player Player) (Value, Move) {
	alpha, beta := -Infinity, Infinity
	var bestMove Move
	bestScore := -Infinity

	ordered := s.orderMoves(b, rootMoves, 0, NoMove)
	for _, m := range ordered {
		clone := b.Clone()
		mv := m
		if err := clone.MakeMove(&mv); err != nil {
			getLog().Debugf("root move failed to apply, skipping: %v", err)
			continue
		}
		s.stats.Nodes++
		score := -s.alphaBeta(clone, depth-1, -beta, -alpha, player.Opponent(), 1)
		if score > bestScore {
			bestScore = score
			bestMove = mv
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			break
		}
	}

	if s.table != nil && !bestMove.IsZero() {
		s.table.Put(zobrist.Get().Hash(b), int8(depth), bestScore, BoundExact, bestMove)
	}
	return bestScore, bestMove
}

// alphaBeta is the recursive negamax search below the root, per the
// exact TT-cutoff and bound-storage rules in spec.md §4.6.
func (s *state) alphaBeta(b *board.Board, depth int, alpha, beta Value, player Player, ply int) Value {
	alphaOrig := alpha
	hash := zobrist.Get().Hash(b)

	var ttMove Move
	if s.table != nil {
		if entry, ok := s.table.Probe(hash); ok && int(entry.Depth) >= depth {
			s.stats.TTHits++
			switch entry.Bound {
			case BoundExact:
				return entry.Score
			case BoundLower:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case BoundUpper:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				return entry.Score
			}
			ttMove = entry.BestMove
		}
	}

	if depth == 0 {
		return s.quiescence(b, alpha, beta, player, 0)
	}

	moves := movegen.GenerateLegal(b)
	if len(moves) == 0 {
		return -MateScore + Value(ply)
	}

	ordered := s.orderMoves(b, moves, ply, ttMove)
	bestScore := -Infinity
	var bestMove Move

	for _, m := range ordered {
		clone := b.Clone()
		mv := m
		if err := clone.MakeMove(&mv); err != nil {
			getLog().Debugf("move failed to apply during search, skipping: %v", err)
			continue
		}
		s.stats.Nodes++
		score := -s.alphaBeta(clone, depth-1, -beta, -alpha, player.Opponent(), ply+1)

		if score > bestScore {
			bestScore = score
			bestMove = mv
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			if s.cfg.UseKillers && !mv.IsCapture() && ply < MaxPly {
				s.recordKiller(ply, mv)
			}
			break
		}
	}

	if s.table != nil {
		var bound Bound
		switch {
		case bestScore <= alphaOrig:
			bound = BoundUpper
		case bestScore >= beta:
			bound = BoundLower
		default:
			bound = BoundExact
		}
		s.table.Put(hash, int8(depth), bestScore, bound, bestMove)
	}

	return bestScore
}

// quiescence extends search through capture sequences to avoid
// evaluating positions where material is mid-exchange, per spec.md §4.6.
func (s *state) quiescence(b *board.Board, alpha, beta Value, player Player, qdepth int) Value {
	standPat := evaluator.Evaluate(b, s.cfg)
	if player != b.CurrentPlayer {
		standPat = -standPat
	}

	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if qdepth >= s.cfg.QSearchDepth {
		return alpha
	}

	moves := movegen.GenerateLegal(b)
	captures := filterCaptures(moves)
	ordered := s.orderMoves(b, captures, -1, NoMove)

	for _, m := range ordered {
		clone := b.Clone()
		mv := m
		if err := clone.MakeMove(&mv); err != nil {
			getLog().Debugf("capture failed to apply during quiescence, skipping: %v", err)
			continue
		}
		s.stats.QNodes++
		score := -s.quiescence(clone, -beta, -alpha, player.Opponent(), qdepth+1)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func filterCaptures(moves []Move) []Move {
	captures := make([]Move, 0, len(moves))
	for _, m := range moves {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	return captures
}

// recordKiller shifts the existing killer at slot 0 of ply down to slot
// 1 and installs m in slot 0, deduping against the current slot 0 entry.
func (s *state) recordKiller(ply int, m Move) {
	if s.killers[ply][0].Equal(m) {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
}

// reorderByLastBest moves best to the front of moves, preserving the
// relative order of the rest, so the next iterative-deepening pass
// searches last iteration's best move first.
func reorderByLastBest(moves []Move, best Move) []Move {
	reordered := make([]Move, 0, len(moves))
	reordered = append(reordered, best)
	for _, m := range moves {
		if !m.Equal(best) {
			reordered = append(reordered, m)
		}
	}
	return reordered
}

// orderMoves sorts a stable copy of moves by a composite key: TT move
// first, then MVV-LVA for captures, then killers at this ply, then
// promotions, then generation order — per spec.md §4.6's ordering rule.
// ply < 0 means "no killer slots apply" (used from quiescence).
func (s *state) orderMoves(b *board.Board, moves []Move, ply int, ttMove Move) []Move {
	ordered := make([]Move, len(moves))
	copy(ordered, moves)

	sort.SliceStable(ordered, func(i, j int) bool {
		return s.orderKey(b, ordered[i], ply, ttMove) < s.orderKey(b, ordered[j], ply, ttMove)
	})
	return ordered
}

const (
	ttBonus        int64 = -1_000_000_000
	captureBonus   int64 = -500_000_000
	killerBonus    int64 = -100_000_000
	promotionBonus int64 = -10_000_000
)

func (s *state) orderKey(b *board.Board, m Move, ply int, ttMove Move) int64 {
	if !ttMove.IsZero() && m.Equal(ttMove) {
		return ttBonus
	}
	if m.IsCapture() {
		victim := evaluator.PieceValue(*m.Captured, false)
		return captureBonus - int64(victim)
	}
	if ply >= 0 && ply < MaxPly {
		if s.killers[ply][0].Equal(m) {
			return killerBonus
		}
		if s.killers[ply][1].Equal(m) {
			return killerBonus + 1
		}
	}
	if m.PromotesNow {
		return promotionBonus
	}
	return 0
}
