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

package search

import (
	"github.com/mikalsen/corechess/internal/eval"
	"github.com/mikalsen/corechess/internal/movegen"
	"github.com/mikalsen/corechess/internal/position"
	"github.com/mikalsen/corechess/internal/tt"
	"github.com/mikalsen/corechess/internal/types"
)

// negamax searches the subtree rooted at p to depth plies within the
// window (alpha, beta), returning the score from the side-to-move's
// perspective and whether the search was aborted by cancellation.
func (s *Searcher) negamax(p *position.Position, depth, alpha, beta, ply int) (int, bool) {
	if s.pollNode() {
		return 0, true
	}

	if depth <= 0 {
		return s.quiescence(p, alpha, beta, ply)
	}

	if ply > 0 && (p.IsRepetition() || p.IsFiftyMoveDraw() || p.HasInsufficientMaterial()) {
		return 0, false
	}

	pvNode := beta-alpha > 1
	us := p.SideToMove()
	inCheck := p.InCheck(us)

	key := p.Zobrist()
	ttScore, hashMove, _, usable, hit := s.tt.Probe(key, depth, alpha, beta, ply)
	if hit && usable && ply > 0 {
		return ttScore, false
	}

	staticEval := 0
	if !inCheck {
		staticEval = eval.Evaluate(p)
	}

	if !inCheck && !pvNode && depth <= 3 && staticEval-reverseFutilityMargin[depth] >= beta {
		return staticEval, false
	}

	if !inCheck && !pvNode && depth >= 3 && hasNonPawnMaterial(p, us) && staticEval >= beta {
		p.MakeNullMove()
		score, aborted := s.negamax(p, depth-1-nullMoveReduction, -beta, -beta+1, ply+1)
		score = -score
		p.UnmakeNullMove()
		if aborted {
			return 0, true
		}
		if score >= beta {
			return beta, false
		}
	}

	moves := movegen.GenerateLegal(p)
	if len(moves) == 0 {
		if inCheck {
			return int(types.MatedIn(ply)), false
		}
		return 0, false
	}

	orderMoves(p, moves, s.history, hashMove, ply)

	bestScore := -int(types.ValueInfinite)
	bestMove := types.MoveNone
	bound := tt.BoundUpper

	for i, m := range moves {
		isQuiet := !m.IsCapture() && !m.IsPromotion()

		if isQuiet && !inCheck && i > 0 && depth >= 1 && depth <= 2 &&
			staticEval+futilityMargin[depth] <= alpha {
			continue
		}

		p.MakeMove(m)
		givesCheck := p.InCheck(p.SideToMove())
		extension := 0
		if givesCheck {
			extension = 1
		}
		newDepth := depth - 1 + extension

		var score int
		var aborted bool

		switch {
		case i >= lmrMinMoveIndex && depth >= lmrMinDepth && isQuiet && !inCheck && !givesCheck:
			reduced := newDepth - lmrReduction
			if reduced < 0 {
				reduced = 0
			}
			score, aborted = s.negamax(p, reduced, -alpha-1, -alpha, ply+1)
			score = -score
			if !aborted && score > alpha {
				score, aborted = s.negamax(p, newDepth, -beta, -alpha, ply+1)
				score = -score
			}
		case i == 0:
			score, aborted = s.negamax(p, newDepth, -beta, -alpha, ply+1)
			score = -score
		default:
			score, aborted = s.negamax(p, newDepth, -alpha-1, -alpha, ply+1)
			score = -score
			if !aborted && score > alpha && score < beta {
				score, aborted = s.negamax(p, newDepth, -beta, -alpha, ply+1)
				score = -score
			}
		}
		p.UnmakeMove()

		if aborted {
			return 0, true
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			bound = tt.BoundExact
		}
		if alpha >= beta {
			if isQuiet {
				s.history.RecordKiller(ply, m)
				s.history.RecordCutoff(us, m, depth)
			}
			s.tt.Store(key, m, depth, beta, tt.BoundLower, ply)
			return beta, false
		}
	}

	s.tt.Store(key, bestMove, depth, bestScore, bound, ply)
	return bestScore, false
}

// quiescence extends the search along captures only, damping the horizon
// effect at the leaves of the main search.
func (s *Searcher) quiescence(p *position.Position, alpha, beta, ply int) (int, bool) {
	if s.pollNode() {
		return 0, true
	}

	standPat := eval.Evaluate(p)
	if standPat >= beta {
		return beta, false
	}
	if alpha < standPat {
		alpha = standPat
	}

	captures := movegen.GenerateCaptures(p)
	orderMoves(p, captures, s.history, types.MoveNone, ply)

	for _, m := range captures {
		victimValue := capturedValue(p, m)
		if standPat+victimValue+deltaPruningMargin < alpha {
			continue
		}

		p.MakeMove(m)
		score, aborted := s.quiescence(p, -beta, -alpha, ply+1)
		score = -score
		p.UnmakeMove()

		if aborted {
			return 0, true
		}
		if score >= beta {
			return beta, false
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha, false
}

func capturedValue(p *position.Position, m types.Move) int {
	if m.IsEnPassant() {
		return types.Pawn.Value()
	}
	victim := p.PieceOn(m.To())
	if victim == types.PieceNone {
		return 0
	}
	return victim.TypeOf().Value()
}

func hasNonPawnMaterial(p *position.Position, c types.Color) bool {
	for pt := types.Knight; pt <= types.Queen; pt++ {
		if p.Pieces(c, pt) != 0 {
			return true
		}
	}
	return false
}
