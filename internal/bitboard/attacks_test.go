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

package bitboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikalsen/corechess/internal/types"
)

func TestRookAttacksOnEmptyBoardReachesEdges(t *testing.T) {
	a := RookAttacks(types.SqD4, Zero)
	assert.True(t, a.Has(types.SqD1))
	assert.True(t, a.Has(types.SqD8))
	assert.True(t, a.Has(types.SqA4))
	assert.True(t, a.Has(types.SqH4))
	assert.False(t, a.Has(types.SqD4))
}

func TestRookAttacksStopsAtAndIncludesBlocker(t *testing.T) {
	occ := FromSquare(types.SqD6).Set(types.SqD2)
	a := RookAttacks(types.SqD4, occ)

	assert.True(t, a.Has(types.SqD5))
	assert.True(t, a.Has(types.SqD6), "blocker square itself is part of the attack set")
	assert.False(t, a.Has(types.SqD7), "squares beyond the blocker are excluded")

	assert.True(t, a.Has(types.SqD3))
	assert.True(t, a.Has(types.SqD2))
	assert.False(t, a.Has(types.SqD1))
}

func TestBishopAttacksStopsAtAndIncludesBlocker(t *testing.T) {
	occ := FromSquare(types.SqF6)
	a := BishopAttacks(types.SqD4, occ)

	assert.True(t, a.Has(types.SqE5))
	assert.True(t, a.Has(types.SqF6))
	assert.False(t, a.Has(types.SqG7))
}

func TestQueenAttacksUnionsRookAndBishop(t *testing.T) {
	occ := Zero
	q := QueenAttacks(types.SqD4, occ)
	r := RookAttacks(types.SqD4, occ)
	b := BishopAttacks(types.SqD4, occ)
	assert.Equal(t, r|b, q)
}

func TestMsbReturnsHighestSetSquare(t *testing.T) {
	bb := FromSquare(types.SqA1).Set(types.SqD4).Set(types.SqH8)
	assert.Equal(t, types.SqH8, bb.Msb())
}

func TestMsbOfEmptyIsSqNone(t *testing.T) {
	assert.Equal(t, types.SqNone, Zero.Msb())
}
