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

// Package eval implements the static position evaluator: tapered
// material + piece-square-table scoring with a lazy endgame short-circuit.
package eval

import (
	"github.com/mikalsen/corechess/internal/position"
	"github.com/mikalsen/corechess/internal/types"
)

// lazyMaterialThreshold is the absolute material imbalance (centipawns)
// past which positional refinement is dwarfed and skipped entirely.
const lazyMaterialThreshold = 1500

// maxPhase is the fully-middlegame phase value, the sum of every piece's
// PhaseValue() on a full board (see types.PieceType.PhaseValue).
const maxPhase = 24

// Evaluate returns a centipawn score of p from the side-to-move's
// perspective: positive favors the side to move.
func Evaluate(p *position.Position) int {
	material := p.MaterialBalance()
	if abs(material) > lazyMaterialThreshold {
		return fromSideToMove(p, material)
	}

	phase := p.Phase()
	if phase > maxPhase {
		phase = maxPhase
	}
	mg := material + p.PstMg()
	eg := material + p.PstEg()
	tapered := (mg*phase + eg*(maxPhase-phase)) / maxPhase

	return fromSideToMove(p, tapered)
}

// fromSideToMove negates a White-relative score when Black is to move, per
// the negamax sign convention.
func fromSideToMove(p *position.Position, whiteRelative int) int {
	if p.SideToMove() == types.Black {
		return -whiteRelative
	}
	return whiteRelative
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
