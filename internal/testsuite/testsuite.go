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

// Package testsuite runs an engine search against a file of EPD
// records and reports how many positions it solved, mirroring a
// feature-test harness: each record's "bm"/"am" opcode is checked
// against the move the searcher actually picks.
package testsuite

import (
	"context"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mikalsen/corechess/internal/epd"
	"github.com/mikalsen/corechess/internal/logging"
	"github.com/mikalsen/corechess/internal/movegen"
	"github.com/mikalsen/corechess/internal/position"
	"github.com/mikalsen/corechess/internal/search"
)

var log = logging.MustGetLogger("testsuite")

// Result is the outcome of running one EPD record.
type Result struct {
	Record  *epd.Record
	Passed  bool
	Actual  string
	Nodes   uint64
	NPS     uint64
	Elapsed time.Duration
}

// Summary aggregates a full suite run.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Results []Result
}

// Run reads EPD records from r and searches each resulting position
// for up to moveTime (or depth plies, whichever limit is reached
// first), reporting pass/fail against the record's bm/am opcode.
func Run(r io.Reader, moveTime time.Duration, depth int) (*Summary, error) {
	records, parseErrs := epd.ReadAll(r)
	for _, e := range parseErrs {
		log.Warningf("skipping malformed epd line: %v", e)
	}

	summary := &Summary{Total: len(records)}
	searcher := search.NewSearcher(64)

	for _, rec := range records {
		res := runOne(searcher, rec, moveTime, depth)
		summary.Results = append(summary.Results, res)
		if res.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}
	return summary, nil
}

func runOne(searcher *search.Searcher, rec *epd.Record, moveTime time.Duration, depth int) Result {
	p, err := position.FromFEN(rec.FEN)
	if err != nil {
		log.Warningf("epd record %q: invalid fen: %v", rec.ID, err)
		return Result{Record: rec, Passed: false}
	}

	limits := search.NewLimits()
	limits.Depth = depth
	limits.MoveTime = moveTime

	start := time.Now()
	out := searcher.Search(context.Background(), p, limits)
	elapsed := time.Since(start)

	actual := out.BestMove.UCI()
	matched := false
	for _, san := range rec.Args {
		if movegen.MoveFromSAN(p, san) == out.BestMove {
			matched = true
			break
		}
	}

	passed := matched
	if rec.Op == epd.OpAvoidMove {
		passed = !matched
	}

	nps := uint64(0)
	if elapsed > 0 {
		nps = uint64(float64(out.Nodes) / elapsed.Seconds())
	}

	return Result{
		Record:  rec,
		Passed:  passed,
		Actual:  actual,
		Nodes:   out.Nodes,
		NPS:     nps,
		Elapsed: elapsed,
	}
}

// Report renders a summary the way a CLI run prints it, formatting node
// and NPS counts with thousands separators.
func Report(w io.Writer, s *Summary) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Results: %d/%d passed\n", s.Passed, s.Total)
	for _, r := range s.Results {
		status := "FAIL"
		if r.Passed {
			status = "PASS"
		}
		p.Fprintf(w, "%-4s %-8s id=%-20s actual=%-8s nodes=%d nps=%d\n",
			status, opName(r.Record.Op), r.Record.ID, r.Actual, r.Nodes, r.NPS)
	}
}

func opName(op epd.Opcode) string {
	switch op {
	case epd.OpBestMove:
		return "bm"
	case epd.OpAvoidMove:
		return "am"
	default:
		return "?"
	}
}
