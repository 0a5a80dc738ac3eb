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
	"github.com/mikalsen/corechess/internal/bitboard"
	"github.com/mikalsen/corechess/internal/types"
)

// isSquareAttacked reports whether sq is attacked by any piece of color by.
// Used both for check detection and for the castling-through-check rule.
func (p *Position) isSquareAttacked(sq types.Square, by types.Color) bool {
	if bitboard.PawnAttacks[by.Flip()][sq]&p.pieces[by][types.Pawn] != 0 {
		return true
	}
	if bitboard.KnightAttacks[sq]&p.pieces[by][types.Knight] != 0 {
		return true
	}
	if bitboard.KingAttacks[sq]&p.pieces[by][types.King] != 0 {
		return true
	}
	bishopsQueens := p.pieces[by][types.Bishop] | p.pieces[by][types.Queen]
	if bitboard.BishopAttacks(sq, p.all)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.pieces[by][types.Rook] | p.pieces[by][types.Queen]
	if bitboard.RookAttacks(sq, p.all)&rooksQueens != 0 {
		return true
	}
	return false
}

// InCheck reports whether c's king currently sits on an attacked square.
func (p *Position) InCheck(c types.Color) bool {
	return p.isSquareAttacked(p.KingSquare(c), c.Flip())
}

// IsRepetition reports whether the current position's Zobrist key has
// occurred at least twice before in the recorded game/search line (i.e.
// this occurrence would be the third), the standard threefold-repetition
// trigger. The halfmove clock bounds how far back a repeat can possibly
// be, since any capture or pawn move resets it.
func (p *Position) IsRepetition() bool {
	if len(p.keyHistory) < 5 {
		return false
	}
	count := 0
	limit := p.halfmoveClock
	n := len(p.keyHistory)
	for i := n - 1 - 2; i >= 0 && i >= n-1-limit; i -= 2 {
		if p.keyHistory[i] == p.zobristKey {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

// IsFiftyMoveDraw reports whether the 50-move rule currently permits a
// draw claim (100 halfmoves without a capture or pawn move).
func (p *Position) IsFiftyMoveDraw() bool {
	return p.halfmoveClock >= 100
}

// HasInsufficientMaterial reports whether neither side has enough material
// remaining to deliver checkmate by any sequence of legal moves (lone
// kings, king+minor vs king, or king+minor vs king+minor).
func (p *Position) HasInsufficientMaterial() bool {
	if p.pieces[types.White][types.Pawn] != 0 || p.pieces[types.Black][types.Pawn] != 0 {
		return false
	}
	if p.pieces[types.White][types.Rook] != 0 || p.pieces[types.Black][types.Rook] != 0 {
		return false
	}
	if p.pieces[types.White][types.Queen] != 0 || p.pieces[types.Black][types.Queen] != 0 {
		return false
	}
	whiteMinors := p.pieces[types.White][types.Knight].PopCount() + p.pieces[types.White][types.Bishop].PopCount()
	blackMinors := p.pieces[types.Black][types.Knight].PopCount() + p.pieces[types.Black][types.Bishop].PopCount()
	if whiteMinors <= 1 && blackMinors <= 1 {
		return true
	}
	return false
}

// AttacksTo returns the set of squares from which by attacks sq; exported
// for move generators and evaluators that need finer-grained attacker
// detail than the boolean isSquareAttacked.
func (p *Position) AttacksTo(sq types.Square, by types.Color) bitboard.Bitboard {
	var attackers bitboard.Bitboard
	attackers |= bitboard.PawnAttacks[by.Flip()][sq] & p.pieces[by][types.Pawn]
	attackers |= bitboard.KnightAttacks[sq] & p.pieces[by][types.Knight]
	attackers |= bitboard.KingAttacks[sq] & p.pieces[by][types.King]
	bishopsQueens := p.pieces[by][types.Bishop] | p.pieces[by][types.Queen]
	attackers |= bitboard.BishopAttacks(sq, p.all) & bishopsQueens
	rooksQueens := p.pieces[by][types.Rook] | p.pieces[by][types.Queen]
	attackers |= bitboard.RookAttacks(sq, p.all) & rooksQueens
	return attackers
}
