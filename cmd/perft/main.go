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

// Command perft drives the core's count/divide/statistics perft harness
// from the command line, against a FEN (or the standard starting position)
// and a fixed depth.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kylejrp/chesscore/internal/config"
	"github.com/kylejrp/chesscore/internal/logging"
	"github.com/kylejrp/chesscore/internal/movegen"
	"github.com/kylejrp/chesscore/internal/position"
	"github.com/kylejrp/chesscore/internal/util"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fenFlag := flag.String("fen", position.StartFen, "FEN to run perft against (\"startpos\" also accepted)")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "print a per-root-move node count breakdown instead of a single total")
	statistics := flag.Bool("statistics", false, "print the classified leaf statistics (captures, checks, mates, ...) instead of a plain count")
	workers := flag.Int("workers", 0, "worker count for -parallel (0 = GOMAXPROCS)")
	parallel := flag.Bool("parallel", false, "run the plain count across goroutines bounded by a weighted semaphore")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile for this run to ./cpu.pprof")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	logging.GetLog()

	fen := *fenFlag
	if fen == "startpos" {
		fen = position.StartFen
	}
	p, err := position.NewPositionFen(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid FEN:", err)
		os.Exit(1)
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	out.Printf("Perft depth %d\n", *depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	switch {
	case *divide:
		entries := movegen.Divide(p, *depth)
		var total uint64
		for _, e := range entries {
			out.Printf("%-6s %d\n", e.Move.StringUci(), e.Nodes)
			total += e.Nodes
		}
		out.Printf("-----------------------------------------\n")
		out.Printf("Total: %d\n", total)
	case *statistics:
		s := movegen.Statistics(p, *depth)
		elapsed := time.Since(start)
		out.Printf("Nodes           : %d\n", s.Nodes)
		out.Printf("Captures        : %d\n", s.Captures)
		out.Printf("En Passant      : %d\n", s.EnPassant)
		out.Printf("Castles         : %d\n", s.Castles)
		out.Printf("Promotions      : %d\n", s.Promotions)
		out.Printf("Checks          : %d\n", s.Checks)
		out.Printf("Discovery Checks: %d\n", s.DiscoveryChecks)
		out.Printf("Double Checks   : %d\n", s.DoubleChecks)
		out.Printf("Checkmates      : %d\n", s.Checkmates)
		out.Printf("Time            : %s\n", elapsed)
	case *parallel:
		nodes := movegen.StartPerftParallel(p, *depth, *workers)
		elapsed := time.Since(start)
		printNodesAndNps(nodes, elapsed)
	default:
		nodes := movegen.Count(p, *depth)
		elapsed := time.Since(start)
		printNodesAndNps(nodes, elapsed)
	}
	out.Printf("-----------------------------------------\n")
}

func printNodesAndNps(nodes uint64, elapsed time.Duration) {
	out.Printf("Nodes: %d\n", nodes)
	out.Printf("Time : %s\n", elapsed)
	out.Printf("NPS  : %d\n", util.Nps(nodes, elapsed))
}
