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

// Package search implements iterative-deepening negamax over the move
// generator and evaluator, backed by a transposition table and
// killer/history move ordering. The search is single-threaded and
// cooperative: cancellation is a polled flag, never a goroutine interrupt.
package search

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/mikalsen/corechess/internal/history"
	"github.com/mikalsen/corechess/internal/logging"
	"github.com/mikalsen/corechess/internal/movegen"
	"github.com/mikalsen/corechess/internal/position"
	"github.com/mikalsen/corechess/internal/tt"
	"github.com/mikalsen/corechess/internal/types"
	"github.com/mikalsen/corechess/internal/zobrist"
)

var log = logging.MustGetLogger("search")

// SearchResult is the outcome of one Search call.
type SearchResult struct {
	BestMove     types.Move
	ScoreCp      int
	DepthReached int
	Nodes        uint64
	TimeMs       int64
	PV           []types.Move
	// Aborted is true when cancellation fired before any iteration
	// completed; BestMove is then the zero move and the caller has no
	// usable result.
	Aborted bool
}

// InfoFunc receives one progress record per completed iterative-deepening
// iteration, mirroring a UCI "info" line.
type InfoFunc func(depth int, scoreCp int, nodes uint64, elapsed time.Duration, pv []types.Move)

// Searcher owns the transposition table and move-ordering state shared
// across a sequence of searches against (generally) one board. It allows
// only one Search in flight at a time.
type Searcher struct {
	tt      *tt.Table
	history *history.Table
	sem     *semaphore.Weighted
	stop    atomic.Bool

	nodes   uint64
	deadline time.Time
	hasDeadline bool
	onInfo  InfoFunc
}

// NewSearcher allocates a Searcher with a transposition table sized to
// ttSizeMiB mebibytes.
func NewSearcher(ttSizeMiB int) *Searcher {
	return &Searcher{
		tt:      tt.New(ttSizeMiB),
		history: history.New(),
		sem:     semaphore.NewWeighted(1),
	}
}

// OnInfo registers a callback invoked once per completed iteration.
func (s *Searcher) OnInfo(f InfoFunc) {
	s.onInfo = f
}

// Stop requests cancellation of whatever search is currently in flight.
// The next node-count poll observes it and the search unwinds, returning
// the best move found by the last completed iteration.
func (s *Searcher) Stop() {
	s.stop.Store(true)
}

// Search runs iterative deepening from root until Limits or ctx stops it.
// Only one Search may run at a time per Searcher; a concurrent call blocks
// until the first completes.
func (s *Searcher) Search(ctx context.Context, root *position.Position, limits Limits) SearchResult {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return SearchResult{Aborted: true}
	}
	defer s.sem.Release(1)

	s.stop.Store(false)
	s.nodes = 0
	s.history.Clear()
	s.tt.NewGeneration()

	s.hasDeadline = limits.MoveTime > 0 && !limits.Infinite
	if s.hasDeadline {
		s.deadline = time.Now().Add(limits.MoveTime)
	}

	done := make(chan struct{})
	defer close(done)
	go s.watchContext(ctx, done)

	start := time.Now()
	result := SearchResult{Aborted: true}
	maxDepth := limits.effectiveMaxDepth()

	prevScore := 0
	for depth := 1; depth <= maxDepth; depth++ {
		alpha, beta := -int(types.ValueInfinite), int(types.ValueInfinite)
		if depth >= aspirationMinDepth {
			alpha = prevScore - aspirationHalfWidth
			beta = prevScore + aspirationHalfWidth
		}

		score, aborted := s.searchRoot(root, depth, alpha, beta)
		for !aborted && (score <= alpha || score >= beta) {
			if score <= alpha {
				alpha = -int(types.ValueInfinite)
			}
			if score >= beta {
				beta = int(types.ValueInfinite)
			}
			score, aborted = s.searchRoot(root, depth, alpha, beta)
		}

		if aborted {
			break
		}

		prevScore = score
		pv := s.extractPV(root, depth)
		best := types.MoveNone
		if len(pv) > 0 {
			best = pv[0]
		}
		result = SearchResult{
			BestMove:     best,
			ScoreCp:      score,
			DepthReached: depth,
			Nodes:        s.nodes,
			TimeMs:       time.Since(start).Milliseconds(),
			PV:           pv,
			Aborted:      false,
		}
		if s.onInfo != nil {
			s.onInfo(depth, score, s.nodes, time.Since(start), pv)
		}
		log.Debugf("depth %d score %d nodes %d", depth, score, s.nodes)

		if limits.Nodes > 0 && s.nodes >= limits.Nodes {
			break
		}
		if s.timeExceeded() {
			break
		}
	}

	return result
}

// watchContext stops the search if ctx is cancelled before the search
// finishes on its own (done is closed by the caller in either case).
func (s *Searcher) watchContext(ctx context.Context, done <-chan struct{}) {
	select {
	case <-ctx.Done():
		s.Stop()
	case <-done:
	}
}

// searchRoot runs one negamax pass at the root, returning the best score
// found and whether the search was aborted before completing.
func (s *Searcher) searchRoot(root *position.Position, depth, alpha, beta int) (int, bool) {
	moves := movegen.GenerateLegal(root)
	if len(moves) == 0 {
		if root.InCheck(root.SideToMove()) {
			return -int(types.MateIn(0)), false
		}
		return 0, false
	}

	orderMoves(root, moves, s.history, types.MoveNone, 0)

	bestScore := -int(types.ValueInfinite)
	bestMove := moves[0]
	for i, m := range moves {
		root.MakeMove(m)
		var score int
		var aborted bool
		if i == 0 {
			score, aborted = s.negamax(root, depth-1, -beta, -alpha, 1)
		} else {
			score, aborted = s.negamax(root, depth-1, -alpha-1, -alpha, 1)
			if !aborted && -score > alpha && -score < beta {
				score, aborted = s.negamax(root, depth-1, -beta, -alpha, 1)
			}
		}
		score = -score
		root.UnmakeMove()

		if aborted {
			return 0, true
		}
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	s.tt.Store(root.Zobrist(), bestMove, depth, bestScore, boundFor(bestScore, alpha, beta), 0)
	return bestScore, false
}

func boundFor(score, alphaIn, beta int) tt.Bound {
	if score >= beta {
		return tt.BoundLower
	}
	return tt.BoundExact
}

// timeExceeded reports whether the soft move-time budget has passed.
func (s *Searcher) timeExceeded() bool {
	return s.hasDeadline && time.Now().After(s.deadline)
}

// pollNode increments the node counter and, every nodeCheckInterval nodes,
// checks the stop flag and time budget. This is the search's single
// cooperative suspension point.
func (s *Searcher) pollNode() bool {
	s.nodes++
	if s.nodes%nodeCheckInterval != 0 {
		return false
	}
	if s.stop.Load() {
		return true
	}
	return s.timeExceeded()
}

// extractPV walks the transposition table's best-move links from root,
// stopping at a missing entry, an illegal move, or a repeated position.
func (s *Searcher) extractPV(root *position.Position, maxLen int) []types.Move {
	pv := make([]types.Move, 0, maxLen)
	seen := map[zobrist.Key]bool{}
	made := 0
	defer func() {
		for ; made > 0; made-- {
			root.UnmakeMove()
		}
	}()

	for len(pv) < maxLen {
		key := root.Zobrist()
		if seen[key] {
			break
		}
		_, move, _, _, ok := s.tt.Probe(key, 0, -int(types.ValueInfinite), int(types.ValueInfinite), 0)
		if !ok || move == types.MoveNone {
			break
		}
		if !isLegal(root, move) {
			break
		}
		seen[key] = true
		pv = append(pv, move)
		root.MakeMove(move)
		made++
	}
	return pv
}

func isLegal(p *position.Position, m types.Move) bool {
	for _, legal := range movegen.GenerateLegal(p) {
		if legal == m {
			return true
		}
	}
	return false
}
