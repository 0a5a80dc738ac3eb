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

// Package tt implements the transposition table: a fixed-size, single-slot,
// depth-preferred cache keyed by Zobrist hash, shared by the search across
// an iterative-deepening pass and (optionally) across root searches.
package tt

import (
	"github.com/mikalsen/corechess/internal/types"
	"github.com/mikalsen/corechess/internal/zobrist"
)

// Bound is the kind of score stored: an exact value, or a fail-high/low
// bound from alpha-beta pruning.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// entrySize is the size in bytes of one entry: 8 (key) + 2 (move)
// + 2 (score) + 1 (depth) + 1 (bound) + 1 (age) = 15, rounded to 16 by
// struct alignment.
const entrySize = 16

// entry is the table slot. Depth, bound and the age counter are each kept
// in their own byte-sized field.
type entry struct {
	key   zobrist.Key
	move  types.Move
	score int16
	depth int8
	bound Bound
	age   uint8
}

func (e *entry) used() bool { return e.bound != BoundNone }

// Table is a fixed-size transposition table. It is not safe for concurrent
// use; each search owns its own Table instance.
type Table struct {
	entries []entry
	mask    uint64
	age     uint8
}

// New allocates a table sized to hold roughly sizeMiB mebibytes of entries,
// rounded down to a power of two slot count as required by the low-bits
// index scheme.
func New(sizeMiB int) *Table {
	if sizeMiB <= 0 {
		sizeMiB = 64
	}
	wanted := uint64(sizeMiB) * 1024 * 1024 / entrySize
	slots := uint64(1)
	for slots*2 <= wanted {
		slots *= 2
	}
	if slots == 0 {
		slots = 1
	}
	return &Table{
		entries: make([]entry, slots),
		mask:    slots - 1,
	}
}

func (t *Table) index(key zobrist.Key) uint64 {
	return uint64(key) & t.mask
}

// NewGeneration increments the table's age counter, called once per new
// root search so the replacement policy can prefer fresher entries across
// searches sharing one table.
func (t *Table) NewGeneration() {
	t.age++
}

// Probe looks up key. ok is false on a miss or a detected hash collision
// (full-key mismatch); move is always returned on a key match, even when
// the stored bound doesn't permit an immediate cutoff, so the caller can
// use it for move ordering.
func (t *Table) Probe(key zobrist.Key, depth int, alpha, beta int, ply int) (score int, move types.Move, bound Bound, usable bool, ok bool) {
	e := &t.entries[t.index(key)]
	if !e.used() || e.key != key {
		return 0, types.MoveNone, BoundNone, false, false
	}

	move = e.move
	ok = true
	adjusted := fromTTScore(int(e.score), ply)

	if int(e.depth) < depth {
		return adjusted, move, e.bound, false, ok
	}

	switch e.bound {
	case BoundExact:
		usable = true
	case BoundLower:
		usable = adjusted >= beta
	case BoundUpper:
		usable = adjusted <= alpha
	}
	return adjusted, move, e.bound, usable, ok
}

// Store inserts or replaces the entry for key, applying the depth-preferred
// replacement policy with age as the tiebreak: replace when the new entry
// is at least as deep as the stored one, or the stored one is from an
// older search generation.
func (t *Table) Store(key zobrist.Key, move types.Move, depth int, score int, bound Bound, ply int) {
	e := &t.entries[t.index(key)]
	if e.used() && e.age == t.age && int(e.depth) > depth {
		return
	}
	if move == types.MoveNone && e.used() && e.key == key {
		move = e.move
	}

	e.key = key
	e.move = move
	e.score = int16(toTTScore(score, ply))
	e.depth = int8(depth)
	e.bound = bound
	e.age = t.age
}

// mateThreshold mirrors types.ValueMateThreshold as a plain int so TT score
// adjustment can stay in ordinary int arithmetic.
const mateThreshold = int(types.ValueMateThreshold)

// toTTScore converts a search score, whose mate distance counts from the
// root, into one whose mate distance counts from the current node, so that mate
// distances found deep in one search remain meaningful when reused from a
// different ply in a later probe.
func toTTScore(score, ply int) int {
	if score >= mateThreshold {
		return score + ply
	}
	if score <= -mateThreshold {
		return score - ply
	}
	return score
}

// fromTTScore reverses toTTScore when reading a stored score back out at
// the current ply.
func fromTTScore(score, ply int) int {
	if score >= mateThreshold {
		return score - ply
	}
	if score <= -mateThreshold {
		return score + ply
	}
	return score
}
