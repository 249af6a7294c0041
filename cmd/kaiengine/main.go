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

// Command kaiengine is a thin CLI wrapper around the engine façade: it
// reads a GameState JSON document (from -state or stdin), runs a search
// at the requested strength, and prints the resulting move as JSON.
// Mirrors the shape of the teacher's cmd/FrankyGo entrypoint, trimmed to
// this engine's single request/response call instead of a UCI loop.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/profile"

	"github.com/kaishogi/kaiengine/internal/config"
	"github.com/kaishogi/kaiengine/internal/engine"
)

func main() {
	level := flag.Int("level", config.DefaultLevel, "strength level 1..6 (other values alias to 3)")
	depth := flag.Int("depth", 0, "override the level preset's search depth (0 = use preset)")
	configFile := flag.String("config", "./kaiengine.toml", "path to configuration settings file")
	logLvl := flag.Int("loglvl", config.LogLevel, "log level 0 (critical) .. 5 (debug)")
	statePath := flag.String("state", "", "path to a GameState JSON file (reads stdin if empty)")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the search to ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.LogLevel = *logLvl
	config.Setup()

	var input []byte
	var err error
	if *statePath != "" {
		input, err = os.ReadFile(*statePath)
	} else {
		input, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("reading game state: %v", err))
		os.Exit(1)
	}

	e := engine.New(*level)
	if *depth > 0 {
		e.SetDepth(*depth)
	}

	out, err := e.GetBestMove(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("search failed: %v", err))
		os.Exit(1)
	}

	fmt.Println(string(out))
}
