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

// Direction is a step on the board expressed as the delta added to a
// Square index (valid only after an edge-of-board check).
type Direction int8

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = North + East
	Northwest Direction = North + West
	Southeast Direction = South + East
	Southwest Direction = South + West
)

// fileDelta and rankDelta give the (df, dr) step of each direction, used to
// detect wrap-around at the board edge before applying the step.
var fileDelta = map[Direction]int{
	North: 0, South: 0, East: 1, West: -1,
	Northeast: 1, Southeast: 1, Northwest: -1, Southwest: -1,
}
var rankDelta = map[Direction]int{
	North: 1, South: -1, East: 0, West: 0,
	Northeast: 1, Southeast: -1, Northwest: 1, Southwest: -1,
}

// To steps sq one square in direction d, returning SqNone if that would
// wrap around a board edge.
func (sq Square) To(d Direction) Square {
	f := int(sq.FileOf()) + fileDelta[d]
	r := int(sq.RankOf()) + rankDelta[d]
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SqNone
	}
	return SquareOf(File(f), Rank(r))
}
