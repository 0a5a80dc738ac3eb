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

package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikalsen/corechess/internal/types"
	"github.com/mikalsen/corechess/internal/zobrist"
)

func zobristKey(n uint64) zobrist.Key { return zobrist.Key(n) }

func TestProbeMissesOnEmptyTable(t *testing.T) {
	table := New(1)
	_, _, _, _, ok := table.Probe(zobristKey(1), 4, -1000, 1000, 0)
	assert.False(t, ok)
}

func TestStoreThenProbeExactHit(t *testing.T) {
	table := New(1)
	key := zobristKey(42)
	move := types.NewMove(types.SqE2, types.SqE4, types.FlagDoublePush, types.PtNone)

	table.Store(key, move, 6, 120, BoundExact, 0)

	score, gotMove, bound, usable, ok := table.Probe(key, 6, -1000, 1000, 0)
	assert.True(t, ok)
	assert.True(t, usable)
	assert.Equal(t, 120, score)
	assert.Equal(t, move, gotMove)
	assert.Equal(t, BoundExact, bound)
}

func TestProbeUnusableWhenStoredDepthTooShallow(t *testing.T) {
	table := New(1)
	key := zobristKey(7)
	move := types.NewMove(types.SqD2, types.SqD4, types.FlagDoublePush, types.PtNone)
	table.Store(key, move, 2, 50, BoundExact, 0)

	_, gotMove, _, usable, ok := table.Probe(key, 8, -1000, 1000, 0)
	assert.True(t, ok)
	assert.False(t, usable)
	assert.Equal(t, move, gotMove, "move should still be returned for ordering even when depth is insufficient")
}

func TestStoreDoesNotDowngradeDeeperEntryInSameGeneration(t *testing.T) {
	table := New(1)
	key := zobristKey(9)
	deepMove := types.NewMove(types.SqG1, types.SqF3, types.FlagQuiet, types.PtNone)
	shallowMove := types.NewMove(types.SqB1, types.SqC3, types.FlagQuiet, types.PtNone)

	table.Store(key, deepMove, 10, 30, BoundExact, 0)
	table.Store(key, shallowMove, 3, 99, BoundExact, 0)

	_, gotMove, _, _, ok := table.Probe(key, 10, -1000, 1000, 0)
	assert.True(t, ok)
	assert.Equal(t, deepMove, gotMove)
}

func TestStoreReplacesAfterNewGeneration(t *testing.T) {
	table := New(1)
	key := zobristKey(11)
	oldMove := types.NewMove(types.SqG1, types.SqF3, types.FlagQuiet, types.PtNone)
	newMove := types.NewMove(types.SqB1, types.SqC3, types.FlagQuiet, types.PtNone)

	table.Store(key, oldMove, 10, 30, BoundExact, 0)
	table.NewGeneration()
	table.Store(key, newMove, 1, 10, BoundExact, 0)

	_, gotMove, _, _, ok := table.Probe(key, 1, -1000, 1000, 0)
	assert.True(t, ok)
	assert.Equal(t, newMove, gotMove)
}

func TestMateScoreAdjustedByPlyAcrossStoreAndProbe(t *testing.T) {
	table := New(1)
	key := zobristKey(13)
	move := types.NewMove(types.SqH5, types.SqF7, types.FlagCapture, types.PtNone)

	mateScore := int(types.MateIn(3))
	table.Store(key, move, 5, mateScore, BoundExact, 7)

	score, _, _, _, ok := table.Probe(key, 5, -100000, 100000, 7)
	assert.True(t, ok)
	assert.Equal(t, mateScore, score)

	// Probed from a shallower ply (closer to root), the mate reads as nearer
	// the root by the ply difference: a score five points higher.
	score2, _, _, _, ok2 := table.Probe(key, 5, -100000, 100000, 2)
	assert.True(t, ok2)
	assert.Equal(t, mateScore+5, score2)
}
