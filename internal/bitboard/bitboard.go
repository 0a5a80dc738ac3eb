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

// Package bitboard holds the fixed-size 64-bit bitboard primitives and the
// precomputed attack tables every other layer of the engine builds on: one
// bit per square, LSB = a1, MSB = h8.
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/mikalsen/corechess/internal/types"
)

// Bitboard is an unsigned 64-bit integer; bit k set means square k (as
// defined by types.Square) is a member of the represented set.
type Bitboard uint64

// Zero and All are the empty and fully-occupied bitboards.
const (
	Zero Bitboard = 0
	All  Bitboard = ^Bitboard(0)
)

// FromSquare returns the singleton bitboard for sq.
func FromSquare(sq types.Square) Bitboard {
	return Bitboard(1) << uint(sq)
}

// Set returns b with sq's bit set.
func (b Bitboard) Set(sq types.Square) Bitboard {
	return b | FromSquare(sq)
}

// Clear returns b with sq's bit cleared.
func (b Bitboard) Clear(sq types.Square) Bitboard {
	return b &^ FromSquare(sq)
}

// Has reports whether sq's bit is set in b.
func (b Bitboard) Has(sq types.Square) bool {
	return b&FromSquare(sq) != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the least significant set bit, or
// types.SqNone if b is empty.
func (b Bitboard) Lsb() types.Square {
	if b == Zero {
		return types.SqNone
	}
	return types.Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least significant set square and clears it from *b.
// The standard "extract lsb, clear it, repeat" bitboard iteration pattern,
// encapsulated so callers consume a bitboard by value without repeating the
// bit trick at every call site.
func (b *Bitboard) PopLsb() types.Square {
	sq := b.Lsb()
	if sq == types.SqNone {
		return sq
	}
	*b &= *b - 1
	return sq
}

// Msb returns the square of the most significant set bit, or
// types.SqNone if b is empty.
func (b Bitboard) Msb() types.Square {
	if b == Zero {
		return types.SqNone
	}
	return types.Square(63 - bits.LeadingZeros64(uint64(b)))
}

// Empty reports whether the bitboard has no set bits.
func (b Bitboard) Empty() bool {
	return b == Zero
}

// String renders the bitboard as an 8x8 ascii board, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := types.Rank8; r >= types.Rank1; r-- {
		for f := types.FileA; f <= types.FileH; f++ {
			if b.Has(types.SquareOf(f, r)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Rank and file mask bitboards, indexed by types.Rank / types.File.
var (
	FileMask [types.FileLength]Bitboard
	RankMask [types.RankLength]Bitboard
)

func init() {
	for sq := types.SqA1; sq < types.SqNone; sq++ {
		FileMask[sq.FileOf()] |= FromSquare(sq)
		RankMask[sq.RankOf()] |= FromSquare(sq)
	}
}
