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

package config

// MaxTTSizeInMB is the ceiling tt.Table.Resize clamps to, overridable via the
// TOML overlay's [TT] MaxSizeInMB. Mirrors
// transpositiontable.MaxSizeInMB in the teacher, scaled down since this
// engine's TT entries are far smaller in scope.
var MaxTTSizeInMB = 64

// MinDepth and MaxDepth bound SetDepth's clamp range, per the external
// interface contract (depth clamped to [1, 8]).
const (
	MinDepth = 1
	MaxDepth = 8
)

// DefaultLevel is the strength level aliased to when an unknown level is
// requested.
const DefaultLevel = 3

// SearchConfig is the full set of parameters a strength level or an
// explicit depth override resolves to.
type SearchConfig struct {
	Level         int
	MaxDepth      int
	UseTT         bool
	TTSizeMB      int
	UsePST        bool
	UseKillers    bool
	QSearchDepth  int
}

// presets is the fixed level -> config table from the external interface
// contract. Index 0 is unused; levels run 1..6.
var presets = [7]SearchConfig{
	1: {Level: 1, MaxDepth: 3, UseTT: false, TTSizeMB: 0, UsePST: false, UseKillers: false, QSearchDepth: 2},
	2: {Level: 2, MaxDepth: 3, UseTT: false, TTSizeMB: 0, UsePST: true, UseKillers: false, QSearchDepth: 3},
	3: {Level: 3, MaxDepth: 4, UseTT: true, TTSizeMB: 1, UsePST: true, UseKillers: false, QSearchDepth: 4},
	4: {Level: 4, MaxDepth: 4, UseTT: true, TTSizeMB: 2, UsePST: true, UseKillers: true, QSearchDepth: 4},
	5: {Level: 5, MaxDepth: 5, UseTT: true, TTSizeMB: 4, UsePST: true, UseKillers: true, QSearchDepth: 5},
	6: {Level: 6, MaxDepth: 6, UseTT: true, TTSizeMB: 8, UsePST: true, UseKillers: true, QSearchDepth: 6},
}

// PresetForLevel returns the SearchConfig for the given level. Any level
// outside 1..6 aliases to DefaultLevel.
func PresetForLevel(level int) SearchConfig {
	if level < 1 || level > 6 {
		level = DefaultLevel
	}
	return presets[level]
}

// ClampDepth clamps a requested depth to [MinDepth, MaxDepth].
func ClampDepth(depth int) int {
	if depth < MinDepth {
		return MinDepth
	}
	if depth > MaxDepth {
		return MaxDepth
	}
	return depth
}
