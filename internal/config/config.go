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

// Package config holds the engine's level presets and the globally
// available configuration values that can be overridden by an optional
// TOML file, following the teacher's internal/config package.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile holds the path to an optional TOML overlay file. Setting
	// this before calling Setup changes where overrides are read from.
	ConfFile = "./kaiengine.toml"

	// LogLevel is the go-logging level (0=CRITICAL .. 5=DEBUG) used by
	// internal/logging. Overridable by the TOML file.
	LogLevel = 4

	// Overlay holds values read from the TOML file, applied on top of
	// the hard-coded Preset table in levels.go.
	Overlay overlay

	initialized = false
)

type overlay struct {
	Log struct {
		Level int
	}
	TT struct {
		MaxSizeInMB int
	}
}

// Setup reads the TOML overlay file, if present, applying any overrides
// to LogLevel and MaxTTSizeInMB. Safe to call multiple times; only the
// first call has effect.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Overlay); err != nil {
		log.Println("kaiengine: config file not found, using defaults (", err, ")")
	}
	if Overlay.Log.Level != 0 {
		LogLevel = Overlay.Log.Level
	}
	if Overlay.TT.MaxSizeInMB != 0 {
		MaxTTSizeInMB = Overlay.TT.MaxSizeInMB
	}
	initialized = true
}
