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

// Package tt implements the search's transposition table: a fixed-
// capacity, direct-mapped cache keyed by Zobrist hash. It plays the role
// of the teacher's internal/transpositiontable package, trimmed to the
// spec's simpler replacement policy (no aging, no second probe — see
// DESIGN.md).
package tt

import (
	"math"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kaishogi/kaiengine/internal/config"
	myLogging "github.com/kaishogi/kaiengine/internal/logging"
	. "github.com/kaishogi/kaiengine/internal/types"
)

var out = message.NewPrinter(language.English)

// entrySize is the approximate in-memory size of one Entry in bytes,
// used only to translate a megabyte budget into a slot count.
const entrySize = 32

// Entry is a single transposition table slot.
type Entry struct {
	Hash     Key
	Depth    int8
	Score    Value
	Bound    Bound
	BestMove Move
	occupied bool
}

// Table is a fixed-capacity, direct-mapped transposition table. Not
// safe for concurrent use; callers serialize access the way the
// teacher's TtTable expects external synchronization.
type Table struct {
	log     *logging.Logger
	data    []Entry
	mask    uint64
	entries uint64

	probes, hits, misses, puts, overwrites uint64
}

// New creates a Table sized to fit within sizeMB megabytes.
func New(sizeMB int) *Table {
	t := &Table{log: myLogging.GetLog("tt")}
	t.Resize(sizeMB)
	return t
}

// Resize rebuilds the table for a new byte budget, discarding all
// entries. Capacity is rounded down to the nearest power of two so
// indexing can use a bitmask instead of a modulo.
func (t *Table) Resize(sizeMB int) {
	if sizeMB > config.MaxTTSizeInMB {
		sizeMB = config.MaxTTSizeInMB
	}
	sizeInBytes := uint64(sizeMB) * 1024 * 1024
	capacity := uint64(0)
	if sizeInBytes >= entrySize {
		capacity = uint64(1) << uint64(math.Floor(math.Log2(float64(sizeInBytes/entrySize))))
	}
	t.data = make([]Entry, capacity)
	if capacity == 0 {
		t.mask = 0
	} else {
		t.mask = capacity - 1
	}
	t.entries = 0
	t.log.Debug(out.Sprintf("transposition table resized to %d MB, %d entries", sizeMB, capacity))
}

// Clear empties the table without changing its capacity.
func (t *Table) Clear() {
	t.data = make([]Entry, len(t.data))
	t.entries = 0
	t.probes, t.hits, t.misses, t.puts, t.overwrites = 0, 0, 0, 0, 0
}

func (t *Table) index(hash Key) uint64 {
	return uint64(hash) & t.mask
}

// Probe returns the entry at hash's slot and true if the slot's stored
// hash matches. A mismatched or empty slot is a miss.
func (t *Table) Probe(hash Key) (Entry, bool) {
	t.probes++
	if len(t.data) == 0 {
		t.misses++
		return Entry{}, false
	}
	e := t.data[t.index(hash)]
	if !e.occupied || e.Hash != hash {
		t.misses++
		return Entry{}, false
	}
	t.hits++
	return e, true
}

// Put stores an entry, replacing the slot's contents unconditionally if
// it is empty, if the stored hash differs, or if depth is at least the
// stored depth. Otherwise the existing entry is kept.
func (t *Table) Put(hash Key, depth int8, score Value, bound Bound, bestMove Move) {
	if len(t.data) == 0 {
		return
	}
	idx := t.index(hash)
	slot := &t.data[idx]
	t.puts++

	if !slot.occupied {
		t.entries++
	} else if slot.Hash != hash || depth >= slot.Depth {
		t.overwrites++
	} else {
		return
	}

	slot.Hash = hash
	slot.Depth = depth
	slot.Score = score
	slot.Bound = bound
	slot.BestMove = bestMove
	slot.occupied = true
}

// Hashfull returns table occupancy in permill, matching the UCI
// convention the teacher reports Hashfull in.
func (t *Table) Hashfull() int {
	if len(t.data) == 0 {
		return 0
	}
	return int((1000 * t.entries) / uint64(len(t.data)))
}

// Len returns the number of occupied slots.
func (t *Table) Len() uint64 {
	return t.entries
}

// String reports usage statistics in the teacher's dense single-line style.
func (t *Table) String() string {
	return out.Sprintf("TT: capacity %d entries %d (%d permill) puts %d overwrites %d probes %d hits %d misses %d",
		len(t.data), t.entries, t.Hashfull(), t.puts, t.overwrites, t.probes, t.hits, t.misses)
}
