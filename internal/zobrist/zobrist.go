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

// Package zobrist holds the process-wide table of random 64-bit keys used
// to compute a position's incremental Zobrist hash: 12*64 piece-square keys,
// 4 castling-right keys, 8 en-passant-file keys and 1 side-to-move key (781
// keys total). Keys are generated from a fixed seed so hashes are
// deterministic and reproducible across runs, which is essential for
// debugging the incremental-update logic in the position package.
package zobrist

import "github.com/mikalsen/corechess/internal/types"

// Key is a 64-bit Zobrist fingerprint of a position.
type Key uint64

// fixedSeed pins the keys to a reproducible sequence. Changing it changes
// every hash the engine has ever produced, so it must never be touched
// casually.
const fixedSeed uint64 = 0x9E3779B97F4A7C15

// PieceSquare[piece][square] keys. Piece is indexed 0..15 per
// types.Piece's packed (color, type) layout; every slot gets a key, but
// only the 12 real piece slots are ever read.
var PieceSquare [types.PieceLength][types.SqLength]Key

// Castling[right-bit-index] keys for the 4 individual castling rights.
var Castling [4]Key

// EpFile[file] keys, one per en-passant target file.
var EpFile [types.FileLength]Key

// SideToMove is XORed in whenever it is Black to move.
var SideToMove Key

func init() {
	rng := newSplitMix64(fixedSeed)
	for p := types.Piece(0); p < types.PieceLength; p++ {
		for sq := types.SqA1; sq < types.SqNone; sq++ {
			PieceSquare[p][sq] = Key(rng.next())
		}
	}
	for i := range Castling {
		Castling[i] = Key(rng.next())
	}
	for i := range EpFile {
		EpFile[i] = Key(rng.next())
	}
	SideToMove = Key(rng.next())
}

// splitMix64 is a small, fast, fixed-seed PRNG used only to stamp out the
// Zobrist key tables at process start; it is never used for anything
// security- or gameplay-sensitive.
type splitMix64 struct {
	state uint64
}

func newSplitMix64(seed uint64) *splitMix64 {
	return &splitMix64{state: seed}
}

func (r *splitMix64) next() uint64 {
	r.state += 0x9E3779B97F4A7C15
	z := r.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return z
}

// CastlingKeyIndex maps a single castling right bit (as defined in
// types.CastlingRights) to its slot in Castling.
func CastlingKeyIndex(right types.CastlingRights) int {
	switch right {
	case types.CastleWhiteOO:
		return 0
	case types.CastleWhiteOOO:
		return 1
	case types.CastleBlackOO:
		return 2
	case types.CastleBlackOOO:
		return 3
	default:
		panic("zobrist: not a single castling right")
	}
}
