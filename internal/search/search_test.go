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
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikalsen/corechess/internal/position"
	"github.com/mikalsen/corechess/internal/types"
)

func TestSearchFindsMateInOne(t *testing.T) {
	p, err := position.FromFEN("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	require.NoError(t, err)

	s := NewSearcher(1)
	limits := Limits{Depth: 4}
	result := s.Search(context.Background(), p, limits)

	require.False(t, result.Aborted)
	assert.Equal(t, "a1a8", result.BestMove.UCI())
	assert.True(t, types.Value(result.ScoreCp).IsMateScore())
	assert.Greater(t, result.ScoreCp, 0)
}

func TestSearchDetectsStalemateAsDraw(t *testing.T) {
	p, err := position.FromFEN("7k/8/6Q1/8/8/8/8/6K1 b - - 0 1")
	require.NoError(t, err)

	s := NewSearcher(1)
	result := s.Search(context.Background(), p, Limits{Depth: 1})

	require.False(t, result.Aborted)
	assert.Equal(t, 0, result.ScoreCp)
	assert.Equal(t, types.MoveNone, result.BestMove)
}

func TestSearchRespectsDepthLimit(t *testing.T) {
	p := position.NewInitial()
	s := NewSearcher(1)
	result := s.Search(context.Background(), p, Limits{Depth: 2})

	require.False(t, result.Aborted)
	assert.Equal(t, 2, result.DepthReached)
}

func TestSearchRespectsNodeLimit(t *testing.T) {
	p := position.NewInitial()
	s := NewSearcher(1)
	result := s.Search(context.Background(), p, Limits{Depth: MaxDepth, Nodes: 500})

	assert.LessOrEqual(t, result.DepthReached, MaxDepth)
	assert.GreaterOrEqual(t, s.nodes, uint64(500))
}

func TestSearchStopsOnContextCancellation(t *testing.T) {
	p := position.NewInitial()
	s := NewSearcher(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := s.Search(ctx, p, Limits{Depth: MaxDepth})
	assert.Less(t, result.DepthReached, MaxDepth, "cancellation should cut iterative deepening short of the depth cap")
}

func TestSearchReportsInfoPerIteration(t *testing.T) {
	p := position.NewInitial()
	s := NewSearcher(1)

	var depths []int
	s.OnInfo(func(depth, scoreCp int, nodes uint64, elapsed time.Duration, pv []types.Move) {
		depths = append(depths, depth)
	})

	result := s.Search(context.Background(), p, Limits{Depth: 3})
	require.False(t, result.Aborted)
	assert.Equal(t, []int{1, 2, 3}, depths)
}

func TestNewLimitsIsEmpty(t *testing.T) {
	l := NewLimits()
	assert.Equal(t, Limits{}, l)
	assert.Equal(t, MaxDepth, l.effectiveMaxDepth())
}

func TestLimitsEffectiveMaxDepthCapsAtMaxDepth(t *testing.T) {
	l := Limits{Depth: MaxDepth + 50}
	assert.Equal(t, MaxDepth, l.effectiveMaxDepth())

	l2 := Limits{Depth: 5}
	assert.Equal(t, 5, l2.effectiveMaxDepth())
}
