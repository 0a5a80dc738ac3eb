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
	"github.com/mikalsen/corechess/internal/types"
)

func TestIsCheckmateFoolsMate(t *testing.T) {
	p, err := position.FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	assert.True(t, p.InCheck(types.White))
	assert.True(t, IsCheckmate(p))
	assert.Empty(t, GenerateLegal(p))
}

func TestIsStalemate(t *testing.T) {
	p, err := position.FromFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.InCheck(types.Black))
	assert.True(t, IsStalemate(p))
	assert.Empty(t, GenerateLegal(p))
}

// Regression: unmaking an en-passant capture must restore both the
// capturing pawn and the captured pawn on its original square, not just
// the capturing pawn's origin square.
func TestUnmakeEnPassantRestoresCapturedPawn(t *testing.T) {
	p, err := position.FromFEN("8/8/8/1Pp4r/KR3p1k/8/4P1P1/8 w - c6 0 2")
	require.NoError(t, err)

	before := p.ToFEN()

	var epMove types.Move
	for _, m := range GenerateLegal(p) {
		if m.IsEnPassant() {
			epMove = m
			break
		}
	}
	require.NotEqual(t, types.MoveNone, epMove)

	p.MakeMove(epMove)
	assert.Equal(t, types.PieceNone, p.PieceOn(types.MakeSquare("c5")))
	p.UnmakeMove()

	assert.Equal(t, before, p.ToFEN())
	assert.Equal(t, types.BlackPawn, p.PieceOn(types.MakeSquare("c5")))
}

// Castling through an attacked square must never be generated, even when
// the king's start and destination squares are both safe.
func TestCastlingThroughCheckForbidden(t *testing.T) {
	// White rook on d2 attacks d8, the queen-side pass-through square,
	// while leaving the king's start (e8) and destination (c8) safe.
	p, err := position.FromFEN("r3k2r/8/8/8/8/8/3R4/4K3 b kq - 0 1")
	require.NoError(t, err)
	assert.False(t, p.InCheck(types.Black))

	for _, m := range GenerateLegal(p) {
		if m.Flag() == types.FlagQueenCastle {
			t.Fatalf("queen-side castle %s generated despite rook attacking the d8 pass-through square", m.UCI())
		}
	}
}

func TestPromotionGeneratesAllFourPieceTypes(t *testing.T) {
	p, err := position.FromFEN("8/4P3/8/8/8/8/8/4K2k w - - 0 1")
	require.NoError(t, err)

	promos := map[types.PieceType]bool{}
	for _, m := range GenerateLegal(p) {
		if m.IsPromotion() && m.From() == types.MakeSquare("e7") {
			promos[m.PromotionType()] = true
		}
	}
	assert.Len(t, promos, 4)
	assert.True(t, promos[types.Queen])
	assert.True(t, promos[types.Rook])
	assert.True(t, promos[types.Bishop])
	assert.True(t, promos[types.Knight])
}

func TestGenerateCapturesOnlyReturnsCaptures(t *testing.T) {
	p, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	for _, m := range GenerateCaptures(p) {
		assert.True(t, m.IsCapture(), "move %s returned by GenerateCaptures is not a capture", m.UCI())
	}
	assert.NotEmpty(t, GenerateCaptures(p))
}

func TestMoveFromSANResolvesDisambiguationAndCastling(t *testing.T) {
	p := position.NewInitial()
	m := MoveFromSAN(p, "Nf3")
	require.NotEqual(t, types.MoveNone, m)
	assert.Equal(t, types.MakeSquare("f3"), m.To())
	assert.Equal(t, types.Knight, p.PieceOn(m.From()).TypeOf())

	p2, err := position.FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	castle := MoveFromSAN(p2, "O-O")
	require.NotEqual(t, types.MoveNone, castle)
	assert.Equal(t, types.FlagKingCastle, castle.Flag())
}
