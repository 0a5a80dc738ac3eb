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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikalsen/corechess/internal/types"
)

const initialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestFromFENRoundTrip(t *testing.T) {
	cases := []string{
		initialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range cases {
		p, err := FromFEN(fen)
		require.NoError(t, err, "fen: %s", fen)
		assert.Equal(t, fen, p.ToFEN())
	}
}

func TestNewInitialMatchesStandardFEN(t *testing.T) {
	p := NewInitial()
	assert.Equal(t, initialFEN, p.ToFEN())
	assert.Equal(t, types.White, p.SideToMove())
}

func TestFromFENRejectsMissingKing(t *testing.T) {
	_, err := FromFEN("rnbqbnr1/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.Error(t, err)
	var invalid *InvalidFENError
	assert.ErrorAs(t, err, &invalid)
}

func TestFromFENRejectsPawnOnBackRank(t *testing.T) {
	_, err := FromFEN("rnbqkbnP/ppppppp1/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.Error(t, err)
}

func TestFromFENRejectsSideNotToMoveInCheck(t *testing.T) {
	// Black king on e8 sits in check from the white rook on e1 with an
	// open file between them, yet it is white to move: illegal, since
	// black cannot have left its own king in check after its last move.
	_, err := FromFEN("r3k2r/8/8/8/8/8/8/4R2K w kq - 0 1")
	require.Error(t, err)
}

func TestFromFENRejectsMalformedField(t *testing.T) {
	_, err := FromFEN("not a fen at all")
	require.Error(t, err)
}
