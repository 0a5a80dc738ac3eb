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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikalsen/corechess/internal/history"
	"github.com/mikalsen/corechess/internal/movegen"
	"github.com/mikalsen/corechess/internal/position"
	"github.com/mikalsen/corechess/internal/types"
)

func TestOrderMovesPutsHashMoveFirst(t *testing.T) {
	p := position.NewInitial()
	moves := movegen.GenerateLegal(p)
	h := history.New()

	hashMove := types.NewMove(types.SqG1, types.SqF3, types.FlagQuiet, types.PtNone)
	orderMoves(p, moves, h, hashMove, 0)

	assert.Equal(t, hashMove, moves[0])
}

func TestOrderMovesRanksCapturesByMVVLVA(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/2q1p3/3P4/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	moves := movegen.GenerateCaptures(p)
	h := history.New()

	orderMoves(p, moves, h, types.MoveNone, 0)

	require.NotEmpty(t, moves)
	for _, m := range moves {
		assert.True(t, m.IsCapture())
	}
	assert.Equal(t, types.SqC5, moves[0].To())
}

func TestOrderMovesPutsKillersAbovePlainQuietMoves(t *testing.T) {
	p := position.NewInitial()
	moves := movegen.GenerateLegal(p)
	h := history.New()

	killer := types.NewMove(types.SqB1, types.SqC3, types.FlagQuiet, types.PtNone)
	other := types.NewMove(types.SqG1, types.SqF3, types.FlagQuiet, types.PtNone)
	h.RecordKiller(0, killer)

	orderMoves(p, moves, h, types.MoveNone, 0)

	killerIdx, otherIdx := -1, -1
	for i, m := range moves {
		if m == killer {
			killerIdx = i
		}
		if m == other {
			otherIdx = i
		}
	}
	require.NotEqual(t, -1, killerIdx)
	require.NotEqual(t, -1, otherIdx)
	assert.Less(t, killerIdx, otherIdx)
}

func TestOrderMovesRanksHistoryAboveUnscoredQuietMoves(t *testing.T) {
	p := position.NewInitial()
	moves := movegen.GenerateLegal(p)
	h := history.New()

	scored := types.NewMove(types.SqB1, types.SqC3, types.FlagQuiet, types.PtNone)
	unscored := types.NewMove(types.SqG1, types.SqF3, types.FlagQuiet, types.PtNone)
	h.RecordCutoff(types.White, scored, 6)

	orderMoves(p, moves, h, types.MoveNone, 0)

	scoredIdx, unscoredIdx := -1, -1
	for i, m := range moves {
		if m == scored {
			scoredIdx = i
		}
		if m == unscored {
			unscoredIdx = i
		}
	}
	require.NotEqual(t, -1, scoredIdx)
	require.NotEqual(t, -1, unscoredIdx)
	assert.Less(t, scoredIdx, unscoredIdx)
}

func TestMvvLvaScorePrefersHigherValueVictim(t *testing.T) {
	queenVictim := mvvLvaScore(types.Queen.Value(), types.Pawn.Value())
	pawnVictim := mvvLvaScore(types.Pawn.Value(), types.Pawn.Value())
	assert.Greater(t, queenVictim, pawnVictim)
}
