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

// Package history holds the move-ordering signals derived from prior
// beta cutoffs: two killer moves per ply, and a [color][from][to] history
// table scored by depth^2. Shared across the iterations of one search;
// the searcher clears it at the start of every search, so nothing carries
// over between searches or between positions of an EPD suite run.
package history

import "github.com/mikalsen/corechess/internal/types"

// MaxPly bounds the killer table; no realistic search, even with check
// extensions, approaches it.
const MaxPly = 128

// Table holds killer and history move-ordering state for one search.
type Table struct {
	killers [MaxPly][2]types.Move
	scores  [types.ColorLength][types.SqLength][types.SqLength]int
}

// New returns an empty move-ordering table.
func New() *Table {
	return &Table{}
}

// Clear resets all killer and history state, called at the start of a
// fresh root search so stale signals from an unrelated position don't
// bias ordering.
func (t *Table) Clear() {
	*t = Table{}
}

// Killers returns the two killer moves recorded for ply.
func (t *Table) Killers(ply int) (types.Move, types.Move) {
	if ply < 0 || ply >= MaxPly {
		return types.MoveNone, types.MoveNone
	}
	return t.killers[ply][0], t.killers[ply][1]
}

// RecordKiller registers m as a killer at ply after a beta cutoff by a
// quiet move, shifting the previous first killer into the second slot.
// A move already in slot 0 is not re-inserted.
func (t *Table) RecordKiller(ply int, m types.Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if t.killers[ply][0] == m {
		return
	}
	t.killers[ply][1] = t.killers[ply][0]
	t.killers[ply][0] = m
}

// IsKiller reports whether m is one of ply's recorded killers.
func (t *Table) IsKiller(ply int, m types.Move) bool {
	k0, k1 := t.Killers(ply)
	return m == k0 || m == k1
}

// Bonus returns the accumulated history score for a quiet move by color c.
func (t *Table) Bonus(c types.Color, m types.Move) int {
	return t.scores[c][m.From()][m.To()]
}

// RecordCutoff bumps the history score of a quiet move that caused a beta
// cutoff at the given depth, by depth^2 as specified.
func (t *Table) RecordCutoff(c types.Color, m types.Move, depth int) {
	t.scores[c][m.From()][m.To()] += depth * depth
}
