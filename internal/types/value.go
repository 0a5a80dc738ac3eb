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

package types

// Value is a centipawn score. All search and eval arithmetic is integer;
// floating point is never used (see design note on "infinite" scores).
type Value int32

// Score bounds. Infinite is kept comfortably above Mate so that
// mate-distance scores never collide with the open alpha-beta window.
const (
	ValueZero     Value = 0
	ValueInfinite Value = 32000
	ValueMate     Value = 30000
	// ValueMateThreshold: any |score| above this is "within sight of mate"
	// and is subject to ply-based mate-distance adjustment in the TT.
	ValueMateThreshold Value = ValueMate - 1000
	ValueNA            Value = -ValueInfinite - 1
)

// MateIn returns the score for delivering mate in ply plies from the
// current node (i.e. the mating side to move).
func MateIn(ply int) Value {
	return ValueMate - Value(ply)
}

// MatedIn returns the score for being mated in ply plies.
func MatedIn(ply int) Value {
	return -ValueMate + Value(ply)
}

// IsMateScore reports whether v represents a forced mate.
func (v Value) IsMateScore() bool {
	return v > ValueMateThreshold || v < -ValueMateThreshold
}
