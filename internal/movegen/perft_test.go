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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikalsen/corechess/internal/position"
)

// https://www.chessprogramming.org/Perft_Results

func TestPerftInitialPositionSmoke(t *testing.T) {
	p := position.NewInitial()
	assert.Equal(t, uint64(20), Perft(p, 1))
	assert.Equal(t, uint64(400), Perft(p, 2))
	assert.Equal(t, uint64(8_902), Perft(p, 3))
	assert.Equal(t, uint64(197_281), Perft(p, 4))
}

func TestPerftInitialPositionDepth5(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive perft in short mode")
	}
	p := position.NewInitial()
	assert.Equal(t, uint64(4_865_609), Perft(p, 5))
}

func TestPerftKiwipete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive perft in short mode")
	}
	p, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, uint64(48), Perft(p, 1))
	assert.Equal(t, uint64(2_039), Perft(p, 2))
	assert.Equal(t, uint64(97_862), Perft(p, 3))
	assert.Equal(t, uint64(4_085_603), Perft(p, 4))
}

func TestPerftKiwipeteDepth5(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive perft in short mode")
	}
	p, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, uint64(193_690_690), Perft(p, 5))
}

func TestPerftPositionSix(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive perft in short mode")
	}
	p, err := position.FromFEN("r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10")
	require.NoError(t, err)
	assert.Equal(t, uint64(164_075_551), Perft(p, 5))
}

func TestPerftEnPassantPosition(t *testing.T) {
	p, err := position.FromFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, uint64(14), Perft(p, 1))
	assert.Equal(t, uint64(191), Perft(p, 2))
	assert.Equal(t, uint64(2_812), Perft(p, 3))
}

func TestPerftDivideSumsToTotal(t *testing.T) {
	p := position.NewInitial()
	divide := PerftDivide(p, 3)
	var sum uint64
	for _, n := range divide {
		sum += n
	}
	assert.Equal(t, Perft(p, 3), sum)
	assert.Len(t, divide, 20)
}
