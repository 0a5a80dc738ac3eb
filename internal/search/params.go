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

// This file holds the static pruning/reduction parameters used by the
// negamax core: margins and thresholds too fiddly to want as named
// constants scattered through alphabeta.go.

// reverseFutilityMargin[d] is the margin subtracted from static_eval before
// comparing against beta for reverse futility pruning at depth d (1..3).
var reverseFutilityMargin = [4]int{0, 200, 300, 500}

// futilityMargin[d] is the margin added to static_eval before comparing
// against alpha for futility pruning at depth d (1..2).
var futilityMargin = [3]int{0, 200, 400}

// nullMoveReduction is the fixed depth reduction R applied to the reduced
// search after a null move.
const nullMoveReduction = 2

// lmrMinMoveIndex and lmrMinDepth gate late move reductions: a move is
// reduced only once at least this many moves have already been searched at
// this ply, and only at depth >= lmrMinDepth.
const (
	lmrMinMoveIndex = 4
	lmrMinDepth     = 3
	lmrReduction    = 1
)

// aspirationHalfWidth is the half-width of the aspiration window centered
// on the previous iteration's score, once iterative deepening reaches
// aspirationMinDepth.
const (
	aspirationHalfWidth  = 50
	aspirationMinDepth   = 4
)

// deltaPruningMargin is added on top of the captured piece's value in
// quiescence delta pruning.
const deltaPruningMargin = 200

// nodeCheckInterval is how often (in visited nodes) the search polls the
// stop flag and the time budget.
const nodeCheckInterval = 2048

// mvvLvaScore scores a capture by (victim value * 16 - attacker value), the
// standard Most-Valuable-Victim/Least-Valuable-Attacker ordering used
// ahead of quiet moves.
func mvvLvaScore(victimValue, attackerValue int) int {
	return victimValue*16 - attackerValue
}
