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

// Package epd parses Extended Position Description records: a FEN
// board plus opcodes describing the expected result of a test. Only
// the "bm" (best move), "am" (avoid move) and "id" opcodes are
// recognized; anything else in the operations field is ignored.
package epd

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Opcode names an EPD test type this package understands.
type Opcode int

const (
	OpNone Opcode = iota
	OpBestMove
	OpAvoidMove
)

// Record is one parsed EPD line.
type Record struct {
	FEN  string
	Op   Opcode
	Args []string // SAN move strings for bm/am
	ID   string
	Line string
}

var epdPattern = regexp.MustCompile(`^(.*?)\s+(bm|am)\s+(.*?);(?:.*\bid\s+"([^"]*)")?`)

// Parse parses a single EPD line. An empty or comment-only line returns
// a nil Record and a nil error.
func Parse(line string) (*Record, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}
	if idx := strings.Index(trimmed, " #"); idx >= 0 {
		trimmed = strings.TrimSpace(trimmed[:idx])
	}

	m := epdPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return nil, fmt.Errorf("epd: no bm/am opcode found in %q", line)
	}

	rec := &Record{
		FEN:  strings.TrimSpace(m[1]),
		ID:   m[4],
		Line: line,
	}
	switch m[2] {
	case "bm":
		rec.Op = OpBestMove
	case "am":
		rec.Op = OpAvoidMove
	}
	for _, tok := range strings.Fields(m[3]) {
		rec.Args = append(rec.Args, strings.Trim(tok, "!?"))
	}
	if len(rec.Args) == 0 {
		return nil, fmt.Errorf("epd: opcode %s has no move operands in %q", m[2], line)
	}
	return rec, nil
}

// ReadAll parses every EPD line from r, skipping blank lines, comments
// and lines that fail to parse (logged by the caller, not here).
func ReadAll(r io.Reader) ([]*Record, []error) {
	var records []*Record
	var errs []error

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rec, err := Parse(sc.Text())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if rec != nil {
			records = append(records, rec)
		}
	}
	return records, errs
}
