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

func sq(s string) types.Square { return types.MakeSquare(s) }

func TestMakeUnmakeQuietMoveRestoresState(t *testing.T) {
	p := NewInitial()
	before := snapshot(p)

	m := types.NewMove(sq("g1"), sq("f3"), types.FlagQuiet, types.PtNone)
	p.MakeMove(m)
	assert.NotEqual(t, before.fen, p.ToFEN())

	p.UnmakeMove()
	assertSameState(t, before, p)
}

func TestMakeUnmakeCaptureRestoresState(t *testing.T) {
	p, err := FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	before := snapshot(p)

	m := types.NewMove(sq("e5"), sq("d7"), types.FlagCapture, types.PtNone)
	p.MakeMove(m)
	p.UnmakeMove()
	assertSameState(t, before, p)
}

func TestMakeUnmakeCastleRestoresState(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	before := snapshot(p)

	m := types.NewMove(sq("e1"), sq("g1"), types.FlagKingCastle, types.PtNone)
	p.MakeMove(m)
	assert.Equal(t, types.WhiteRook, p.PieceOn(sq("f1")))
	assert.Equal(t, types.WhiteKing, p.PieceOn(sq("g1")))

	p.UnmakeMove()
	assertSameState(t, before, p)
}

func TestMakeUnmakePromotionRestoresState(t *testing.T) {
	p, err := FromFEN("8/4P3/8/8/8/8/8/4K2k w - - 0 1")
	require.NoError(t, err)
	before := snapshot(p)

	m := types.NewMove(sq("e7"), sq("e8"), types.PromoFlag(types.Queen), types.Queen)
	p.MakeMove(m)
	assert.Equal(t, types.WhiteQueen, p.PieceOn(sq("e8")))

	p.UnmakeMove()
	assertSameState(t, before, p)
}

// Regression: unmaking an en-passant capture must restore the captured
// pawn to its own square, not merely move the capturing pawn back.
func TestMakeUnmakeEnPassantRestoresState(t *testing.T) {
	p, err := FromFEN("8/8/8/KPp4r/1R3p1k/8/4P1P1/8 w - c6 0 2")
	require.NoError(t, err)
	before := snapshot(p)

	m := types.NewMove(sq("b5"), sq("c6"), types.FlagEpCapture, types.PtNone)
	p.MakeMove(m)
	assert.Equal(t, types.PieceNone, p.PieceOn(sq("c5")))
	assert.Equal(t, types.WhitePawn, p.PieceOn(sq("c6")))

	p.UnmakeMove()
	assertSameState(t, before, p)
	assert.Equal(t, types.BlackPawn, p.PieceOn(sq("c5")))
}

func TestMakeUnmakeNullMoveRestoresState(t *testing.T) {
	p := NewInitial()
	before := snapshot(p)

	p.MakeNullMove()
	assert.Equal(t, types.Black, p.SideToMove())

	p.UnmakeNullMove()
	assertSameState(t, before, p)
}

type stateSnapshot struct {
	fen    string
	key    uint64
	pstMg  int
	pstEg  int
	phase  int
}

func snapshot(p *Position) stateSnapshot {
	return stateSnapshot{
		fen:   p.ToFEN(),
		key:   uint64(p.Zobrist()),
		pstMg: p.PstMg(),
		pstEg: p.PstEg(),
		phase: p.Phase(),
	}
}

func assertSameState(t *testing.T, want stateSnapshot, p *Position) {
	t.Helper()
	got := snapshot(p)
	assert.Equal(t, want.fen, got.fen)
	assert.Equal(t, want.key, got.key)
	assert.Equal(t, want.pstMg, got.pstMg)
	assert.Equal(t, want.pstEg, got.pstEg)
	assert.Equal(t, want.phase, got.phase)
}
