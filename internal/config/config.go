//
// chesscore - chess engine core in GO
//
// MIT License
//
// Copyright (c) 2020-2026 Kyle Rupp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration variables which are
// either set by defaults or read from a TOML config file.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/kylejrp/chesscore/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to working directory).
	ConfFile = "./config.toml"

	// LogLevel defines the general log level - can be overwritten by the config file.
	LogLevel = 5

	// TestLogLevel defines the test log level.
	TestLogLevel = 5

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Log  logConfiguration
	Core coreConfiguration
}

type logConfiguration struct {
	Level     int
	TestLevel int
}

// coreConfiguration holds the board-level toggles the core exposes (spec §6
// "Configuration: a single boolean keep_repetitions").
type coreConfiguration struct {
	// KeepRepetitions gates Position.CheckRepetitions: when false it always
	// reports no repetition. It is a single global setting, not a per-board
	// one, and it does not change what DoMove records in a Position's
	// history. Perft statistics runs set it to false for their duration.
	KeepRepetitions bool
}

// Setup reads the configuration file and sets settings from it, falling back
// to defaults when the file cannot be found or decoded.
func Setup() {
	if initialized {
		return
	}
	Settings.Core.KeepRepetitions = true

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	setupLogLvl()
	initialized = true
}

func setupLogLvl() {
	if Settings.Log.Level != 0 {
		LogLevel = Settings.Log.Level
	}
	if Settings.Log.TestLevel != 0 {
		TestLogLevel = Settings.Log.TestLevel
	}
}
