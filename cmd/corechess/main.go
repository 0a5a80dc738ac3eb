// corechess - a Go chess engine core (move generation, search, evaluation)
//
// MIT License
//
// Copyright (c) 2024 corechess contributors
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

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/mikalsen/corechess/internal/config"
	"github.com/mikalsen/corechess/internal/logging"
	"github.com/mikalsen/corechess/internal/movegen"
	"github.com/mikalsen/corechess/internal/position"
	"github.com/mikalsen/corechess/internal/search"
	"github.com/mikalsen/corechess/internal/testsuite"
	"github.com/mikalsen/corechess/internal/uci"
)

var log = logging.MustGetLogger("main")

func main() {
	configFile := flag.String("config", "./config.toml", "path to TOML configuration file")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of this run to ./cpu.pprof")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on -fen and exit")
	fen := flag.String("fen", "", "FEN to use for -perft or -go (defaults to the initial position)")
	goDepth := flag.Int("go", 0, "search -fen to the given depth and print the best move, then exit")
	testSuite := flag.String("testsuite", "", "path to an EPD file to run as a feature test suite")
	testMoveTime := flag.Duration("testtime", 2*time.Second, "search time per test suite position")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Infof("config file %q not used: %v (falling back to defaults)", *configFile, err)
		cfg = config.Default()
	}

	switch {
	case *perftDepth > 0:
		runPerft(*fen, *perftDepth)
	case *goDepth > 0:
		runGo(*fen, *goDepth, cfg)
	case *testSuite != "":
		runTestSuite(*testSuite, *testMoveTime)
	default:
		runUCI(cfg)
	}
}

func runUCI(cfg *config.Config) {
	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 1024*1024), 1024*1024)
	out := bufio.NewWriter(os.Stdout)
	uci.NewHandler(in, out, cfg).Loop()
}

func runPerft(fen string, depth int) {
	p := positionFromFENOrInitial(fen)
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := movegen.Perft(p, d)
		elapsed := time.Since(start)
		fmt.Printf("depth %d: %d nodes in %s\n", d, nodes, elapsed)
	}
}

func runGo(fen string, depth int, cfg *config.Config) {
	p := positionFromFENOrInitial(fen)
	searcher := search.NewSearcher(cfg.TT.SizeMiB)

	limits := search.NewLimits()
	limits.Depth = depth
	result := searcher.Search(context.Background(), p, limits)
	fmt.Printf("bestmove %s score %d depth %d nodes %d\n",
		result.BestMove.UCI(), result.ScoreCp, result.DepthReached, result.Nodes)
}

func runTestSuite(path string, moveTime time.Duration) {
	f, err := os.Open(path)
	if err != nil {
		log.Errorf("cannot open test suite %q: %v", path, err)
		os.Exit(1)
	}
	defer f.Close()

	summary, err := testsuite.Run(f, moveTime, 0)
	if err != nil {
		log.Errorf("test suite run failed: %v", err)
		os.Exit(1)
	}
	testsuite.Report(os.Stdout, summary)
}

func positionFromFENOrInitial(fen string) *position.Position {
	if fen == "" {
		return position.NewInitial()
	}
	p, err := position.FromFEN(fen)
	if err != nil {
		log.Errorf("invalid fen %q: %v", fen, err)
		os.Exit(1)
	}
	return p
}
