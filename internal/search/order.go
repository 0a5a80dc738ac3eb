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
	"sort"

	"github.com/mikalsen/corechess/internal/history"
	"github.com/mikalsen/corechess/internal/position"
	"github.com/mikalsen/corechess/internal/types"
)

// orderMoves sorts moves in place: the hash move first, then captures by
// MVV-LVA, then the two killer moves for this ply, then quiet moves by
// history score.
func orderMoves(p *position.Position, moves []types.Move, h *history.Table, hashMove types.Move, ply int) {
	k0, k1 := h.Killers(ply)
	us := p.SideToMove()

	type scoredMove struct {
		move  types.Move
		score int
	}
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: moveOrderScore(p, m, h, hashMove, k0, k1, us)}
	}
	sort.Slice(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	for i, sm := range scored {
		moves[i] = sm.move
	}
}

const (
	hashMoveScore    = 1_000_000
	killer0Score     = 90_000
	killer1Score     = 89_000
	captureBaseScore = 100_000
)

func moveOrderScore(p *position.Position, m types.Move, h *history.Table, hashMove, k0, k1 types.Move, us types.Color) int {
	if m == hashMove {
		return hashMoveScore
	}
	if m.IsCapture() {
		victim := p.PieceOn(m.To())
		victimValue := 0
		if m.IsEnPassant() {
			victimValue = types.Pawn.Value()
		} else if victim != types.PieceNone {
			victimValue = victim.TypeOf().Value()
		}
		attacker := p.PieceOn(m.From()).TypeOf().Value()
		return captureBaseScore + mvvLvaScore(victimValue, attacker)
	}
	if m == k0 {
		return killer0Score
	}
	if m == k1 {
		return killer1Score
	}
	return h.Bonus(us, m)
}
