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

import "time"

// MaxDepth bounds the iterative-deepening loop and every per-ply stack
// buffer (killers, PV table); no realistic search, even extended by check
// extensions, reaches it.
const MaxDepth = 64

// Limits controls how long a single Search call is allowed to run. Depth
// and MoveTime/Infinite can be combined; whichever fires first stops
// further deepening.
type Limits struct {
	// Depth, if > 0, caps the number of iterative-deepening plies.
	Depth int
	// MoveTime, if > 0, is a soft wall-clock budget for the whole search.
	MoveTime time.Duration
	// Infinite disables both Depth and MoveTime; the search then stops only
	// via an external Stop() call, the Nodes cap, or on reaching MaxDepth.
	Infinite bool
	// Nodes, if > 0, caps the total node count across the whole search.
	Nodes uint64
}

// NewLimits returns an empty Limits; callers set the fields that apply.
func NewLimits() Limits {
	return Limits{}
}

// effectiveMaxDepth returns the ply cap this search should deepen to.
func (l Limits) effectiveMaxDepth() int {
	if !l.Infinite && l.Depth > 0 && l.Depth < MaxDepth {
		return l.Depth
	}
	return MaxDepth
}
