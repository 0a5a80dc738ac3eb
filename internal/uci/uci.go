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

// Package uci implements the subset of the Universal Chess Interface
// protocol this engine needs: uci, isready, ucinewgame, position, go,
// stop and quit. It is a thin line-oriented adapter over
// internal/search, internal/position and internal/movegen.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mikalsen/corechess/internal/config"
	"github.com/mikalsen/corechess/internal/logging"
	"github.com/mikalsen/corechess/internal/movegen"
	"github.com/mikalsen/corechess/internal/position"
	"github.com/mikalsen/corechess/internal/search"
	"github.com/mikalsen/corechess/internal/types"
)

var log = logging.MustGetLogger("uci")

const engineName = "corechess"

// Handler owns the current position and searcher and drives the
// request/response protocol over the given reader/writer.
type Handler struct {
	in  *bufio.Scanner
	out *bufio.Writer

	cfg      *config.Config
	pos      *position.Position
	searcher *search.Searcher

	cancel context.CancelFunc
}

// NewHandler builds a Handler reading UCI commands from in and writing
// responses to out, using cfg for search defaults.
func NewHandler(in *bufio.Scanner, out *bufio.Writer, cfg *config.Config) *Handler {
	return &Handler{
		in:       in,
		out:      out,
		cfg:      cfg,
		pos:      position.NewInitial(),
		searcher: search.NewSearcher(cfg.TT.SizeMiB),
	}
}

// Loop reads commands until "quit" or the input stream ends.
func (h *Handler) Loop() {
	for h.in.Scan() {
		if h.dispatch(strings.TrimSpace(h.in.Text())) {
			return
		}
	}
}

func (h *Handler) dispatch(line string) (quit bool) {
	if line == "" {
		return false
	}
	log.Debugf("<< %s", line)
	fields := strings.Fields(line)
	switch fields[0] {
	case "quit":
		return true
	case "uci":
		h.handleUCI()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.pos = position.NewInitial()
		h.searcher = search.NewSearcher(h.cfg.TT.SizeMiB)
	case "position":
		h.handlePosition(fields)
	case "go":
		h.handleGo(fields)
	case "stop":
		if h.cancel != nil {
			h.cancel()
		}
		h.searcher.Stop()
	default:
		log.Warningf("unknown command: %s", line)
	}
	return false
}

func (h *Handler) handleUCI() {
	h.send(fmt.Sprintf("id name %s", engineName))
	h.send("id author corechess contributors")
	h.send(fmt.Sprintf("option name Hash type spin default %d min 1 max 4096", h.cfg.TT.SizeMiB))
	h.send("uciok")
}

func (h *Handler) handlePosition(fields []string) {
	if len(fields) < 2 {
		return
	}
	i := 1
	var fen string
	switch fields[i] {
	case "startpos":
		i++
		fen = ""
	case "fen":
		i++
		start := i
		for i < len(fields) && fields[i] != "moves" {
			i++
		}
		fen = strings.Join(fields[start:i], " ")
	default:
		log.Warningf("position command malformed: %v", fields)
		return
	}

	if fen == "" {
		h.pos = position.NewInitial()
	} else {
		p, err := position.FromFEN(fen)
		if err != nil {
			log.Warningf("invalid fen %q: %v", fen, err)
			return
		}
		h.pos = p
	}

	if i < len(fields) && fields[i] == "moves" {
		i++
		for ; i < len(fields); i++ {
			m := moveFromUCI(h.pos, fields[i])
			if m == types.MoveNone {
				log.Warningf("invalid move in position command: %s", fields[i])
				return
			}
			h.pos.MakeMove(m)
		}
	}
}

func (h *Handler) handleGo(fields []string) {
	limits := search.NewLimits()
	limits.Depth = h.cfg.Search.MaxDepth
	limits.MoveTime = h.cfg.Search.DefaultMoveTime

	for i := 1; i < len(fields); i++ {
		switch fields[i] {
		case "depth":
			i++
			if d, err := strconv.Atoi(fields[i]); err == nil {
				limits.Depth = d
			}
		case "movetime":
			i++
			if ms, err := strconv.ParseInt(fields[i], 10, 64); err == nil {
				limits.MoveTime = time.Duration(ms) * time.Millisecond
			}
		case "nodes":
			i++
			if n, err := strconv.ParseUint(fields[i], 10, 64); err == nil {
				limits.Nodes = n
			}
		case "infinite":
			limits.Infinite = true
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel

	h.searcher.OnInfo(func(depth, scoreCp int, nodes uint64, elapsed time.Duration, pv []types.Move) {
		h.send(formatInfo(depth, scoreCp, nodes, elapsed, pv))
	})

	result := h.searcher.Search(ctx, h.pos, limits)
	cancel()
	h.cancel = nil

	if result.BestMove == types.MoveNone {
		h.send("bestmove 0000")
		return
	}
	h.send("bestmove " + result.BestMove.UCI())
}

func formatInfo(depth, scoreCp int, nodes uint64, elapsed time.Duration, pv []types.Move) string {
	var pvStr strings.Builder
	for i, m := range pv {
		if i > 0 {
			pvStr.WriteByte(' ')
		}
		pvStr.WriteString(m.UCI())
	}
	nps := uint64(0)
	if elapsed > 0 {
		nps = uint64(float64(nodes) / elapsed.Seconds())
	}
	return fmt.Sprintf("info depth %d score %s nodes %d nps %d time %d pv %s",
		depth, formatScore(scoreCp), nodes, nps, elapsed.Milliseconds(), pvStr.String())
}

// formatScore renders a centipawn score as UCI wants it: "cp <n>" normally,
// or "mate <n>" (in full moves, signed) once the score is within sight of
// a forced mate.
func formatScore(scoreCp int) string {
	v := types.Value(scoreCp)
	if !v.IsMateScore() {
		return fmt.Sprintf("cp %d", scoreCp)
	}
	var pliesToMate int
	if v > 0 {
		pliesToMate = int(types.ValueMate - v)
	} else {
		pliesToMate = int(types.ValueMate + v)
	}
	movesToMate := (pliesToMate + 1) / 2
	if v < 0 {
		movesToMate = -movesToMate
	}
	return fmt.Sprintf("mate %d", movesToMate)
}

func (h *Handler) send(s string) {
	log.Debugf(">> %s", s)
	_, _ = h.out.WriteString(s + "\n")
	_ = h.out.Flush()
}

// moveFromUCI resolves a long-algebraic move string against the legal
// moves of p, returning MoveNone if it names no legal move.
func moveFromUCI(p *position.Position, s string) types.Move {
	for _, m := range movegen.GenerateLegal(p) {
		if m.UCI() == s {
			return m
		}
	}
	return types.MoveNone
}
