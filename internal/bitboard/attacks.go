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

import "github.com/mikalsen/corechess/internal/types"

// KnightAttacks, KingAttacks and PawnAttacks are precomputed once at process
// start (see init below) and never change afterwards: the classic
// non-sliding attack tables.
var (
	KnightAttacks [types.SqLength]Bitboard
	KingAttacks   [types.SqLength]Bitboard
	PawnAttacks   [types.ColorLength][types.SqLength]Bitboard
)

// Rays holds, per origin square and direction, the full ray to the edge of
// the board on an empty board. rayAttack intersects the ray with occupied to
// find the nearest blocker and trims the ray there; a magic-bitboard table is
// a valid drop-in replacement for Attacks, whose correctness is validated
// independently by perft.
var Rays [8][types.SqLength]Bitboard

var knightSteps = []types.Direction{
	types.North + types.North + types.East,
	types.North + types.North + types.West,
	types.South + types.South + types.East,
	types.South + types.South + types.West,
	types.East + types.East + types.North,
	types.East + types.East + types.South,
	types.West + types.West + types.North,
	types.West + types.West + types.South,
}

var kingSteps = []types.Direction{
	types.North, types.South, types.East, types.West,
	types.Northeast, types.Northwest, types.Southeast, types.Southwest,
}

var rookDirs = []types.Direction{types.North, types.East, types.South, types.West}
var bishopDirs = []types.Direction{types.Northeast, types.Northwest, types.Southeast, types.Southwest}

// dirIndex maps a direction to its slot in Rays.
var dirIndex = map[types.Direction]int{
	types.North: 0, types.East: 1, types.South: 2, types.West: 3,
	types.Northeast: 4, types.Northwest: 5, types.Southeast: 6, types.Southwest: 7,
}

// risingRay reports whether d's ray runs toward increasing square indices
// (North, East, Northeast and Northwest), meaning the nearest
// blocker along the ray is its least significant set bit rather than its
// most significant one.
var risingRay = map[types.Direction]bool{
	types.North: true, types.East: true, types.Northeast: true, types.Northwest: true,
	types.South: false, types.West: false, types.Southeast: false, types.Southwest: false,
}

var allSlidingDirs = append(append([]types.Direction{}, rookDirs...), bishopDirs...)

func init() {
	for sq := types.SqA1; sq < types.SqNone; sq++ {
		for _, d := range knightSteps {
			// reject wrap-around the same way types.Square.To does, but
			// knight steps compose two single-square hops so we verify
			// both legs stay on the board.
			if to := knightTo(sq, d); to.IsValid() {
				KnightAttacks[sq] |= FromSquare(to)
			}
		}
		for _, d := range kingSteps {
			if to := sq.To(d); to.IsValid() {
				KingAttacks[sq] |= FromSquare(to)
			}
		}
		if to := sq.To(types.Northeast); to.IsValid() {
			PawnAttacks[types.White][sq] |= FromSquare(to)
		}
		if to := sq.To(types.Northwest); to.IsValid() {
			PawnAttacks[types.White][sq] |= FromSquare(to)
		}
		if to := sq.To(types.Southeast); to.IsValid() {
			PawnAttacks[types.Black][sq] |= FromSquare(to)
		}
		if to := sq.To(types.Southwest); to.IsValid() {
			PawnAttacks[types.Black][sq] |= FromSquare(to)
		}
		for _, d := range allSlidingDirs {
			cur := sq
			var ray Bitboard
			for {
				next := cur.To(d)
				if !next.IsValid() {
					break
				}
				ray |= FromSquare(next)
				cur = next
			}
			Rays[dirIndex[d]][sq] = ray
		}
	}
}

// knightTo resolves a two-step knight direction without wrapping, by
// decomposing it into its two orthogonal single-square legs.
func knightTo(sq types.Square, d types.Direction) types.Square {
	switch d {
	case types.North + types.North + types.East:
		return step(sq, types.North, types.North, types.East)
	case types.North + types.North + types.West:
		return step(sq, types.North, types.North, types.West)
	case types.South + types.South + types.East:
		return step(sq, types.South, types.South, types.East)
	case types.South + types.South + types.West:
		return step(sq, types.South, types.South, types.West)
	case types.East + types.East + types.North:
		return step(sq, types.East, types.East, types.North)
	case types.East + types.East + types.South:
		return step(sq, types.East, types.East, types.South)
	case types.West + types.West + types.North:
		return step(sq, types.West, types.West, types.North)
	case types.West + types.West + types.South:
		return step(sq, types.West, types.West, types.South)
	default:
		return types.SqNone
	}
}

func step(sq types.Square, steps ...types.Direction) types.Square {
	cur := sq
	for _, d := range steps {
		cur = cur.To(d)
		if !cur.IsValid() {
			return types.SqNone
		}
	}
	return cur
}

// rayAttack looks up the precomputed empty-board ray from sq in direction d
// and trims it at the first blocker in occupied, the classical
// ray-plus-blocker sliding-attack technique.
func rayAttack(sq types.Square, d types.Direction, occupied Bitboard) Bitboard {
	idx := dirIndex[d]
	ray := Rays[idx][sq]
	blockers := ray & occupied
	if blockers == Zero {
		return ray
	}
	var blocker types.Square
	if risingRay[d] {
		blocker = blockers.Lsb()
	} else {
		blocker = blockers.Msb()
	}
	return ray &^ Rays[idx][blocker]
}

// RookAttacks returns the squares a rook on sq attacks given occupied.
func RookAttacks(sq types.Square, occupied Bitboard) Bitboard {
	var a Bitboard
	for _, d := range rookDirs {
		a |= rayAttack(sq, d, occupied)
	}
	return a
}

// BishopAttacks returns the squares a bishop on sq attacks given occupied.
func BishopAttacks(sq types.Square, occupied Bitboard) Bitboard {
	var a Bitboard
	for _, d := range bishopDirs {
		a |= rayAttack(sq, d, occupied)
	}
	return a
}

// QueenAttacks returns the squares a queen on sq attacks given occupied.
func QueenAttacks(sq types.Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// Attacks returns the attack bitboard of a piece of type pt standing on sq,
// given the board's occupied squares. Not valid for Pawn (use PawnAttacks).
func Attacks(pt types.PieceType, sq types.Square, occupied Bitboard) Bitboard {
	switch pt {
	case types.Knight:
		return KnightAttacks[sq]
	case types.King:
		return KingAttacks[sq]
	case types.Bishop:
		return BishopAttacks(sq, occupied)
	case types.Rook:
		return RookAttacks(sq, occupied)
	case types.Queen:
		return QueenAttacks(sq, occupied)
	default:
		panic("bitboard: Attacks called with unsupported piece type")
	}
}
