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

import "strings"

// Move packs a chess move into a 16-bit word:
//   bits 0..5   from square
//   bits 6..11  to square
//   bits 12..15 flags (MoveFlag)
//
//	 1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//	 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//	-------------------------------
//	 f f f f t t t t t t o o o o o o
//	 (flags in bits 12-15, to in bits 6-11, from in bits 0-5)
type Move uint16

// MoveFlag is the 4-bit tag in the high nibble of a Move describing what
// kind of move it is.
type MoveFlag uint8

const (
	FlagQuiet MoveFlag = iota
	FlagDoublePush
	FlagKingCastle
	FlagQueenCastle
	FlagCapture
	FlagEpCapture
	FlagPromoN
	FlagPromoB
	FlagPromoR
	FlagPromoQ
	FlagPromoNCapture
	FlagPromoBCapture
	FlagPromoRCapture
	FlagPromoQCapture
	flagNullMove
)

const (
	toShift   = 6
	flagShift = 12

	squareMask Move = 0x3F
	flagMask   Move = 0xF
)

// MoveNone is the zero Move, never produced by the generator.
const MoveNone Move = 0

// NullMove is the distinguished encoding reserved for null-move pruning:
// from == to == 0 with the dedicated null flag, so it can never collide
// with a real generated move.
var NullMove = NewMove(SqA1, SqA1, flagNullMove, PtNone)

// NewMove encodes a move from its squares and flag. promo is only
// meaningful for promotion flags and is otherwise ignored.
func NewMove(from, to Square, flag MoveFlag, _ PieceType) Move {
	return Move(from)&squareMask |
		(Move(to)&squareMask)<<toShift |
		Move(flag)<<flagShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & squareMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> toShift) & squareMask)
}

// Flag returns the move's flag nibble.
func (m Move) Flag() MoveFlag {
	return MoveFlag((m >> flagShift) & flagMask)
}

// IsCapture reports whether the move removes an enemy piece from the board,
// including en-passant and promotion-captures.
func (m Move) IsCapture() bool {
	switch m.Flag() {
	case FlagCapture, FlagEpCapture, FlagPromoNCapture, FlagPromoBCapture, FlagPromoRCapture, FlagPromoQCapture:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag() >= FlagPromoN && m.Flag() <= FlagPromoQCapture
}

// IsCastle reports whether the move is a king- or queen-side castle.
func (m Move) IsCastle() bool {
	return m.Flag() == FlagKingCastle || m.Flag() == FlagQueenCastle
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEpCapture
}

// IsDoublePush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePush() bool {
	return m.Flag() == FlagDoublePush
}

// IsNull reports whether m is the reserved null move.
func (m Move) IsNull() bool {
	return m.Flag() == flagNullMove
}

// PromotionType returns the piece type a promotion move becomes. Must only
// be called when IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	switch m.Flag() {
	case FlagPromoN, FlagPromoNCapture:
		return Knight
	case FlagPromoB, FlagPromoBCapture:
		return Bishop
	case FlagPromoR, FlagPromoRCapture:
		return Rook
	case FlagPromoQ, FlagPromoQCapture:
		return Queen
	default:
		return PtNone
	}
}

// PromoCaptureFlag maps a bare promotion flag to its capturing counterpart.
func PromoCaptureFlag(pt PieceType) MoveFlag {
	switch pt {
	case Knight:
		return FlagPromoNCapture
	case Bishop:
		return FlagPromoBCapture
	case Rook:
		return FlagPromoRCapture
	default:
		return FlagPromoQCapture
	}
}

// PromoFlag maps a promotion piece type to its non-capturing flag.
func PromoFlag(pt PieceType) MoveFlag {
	switch pt {
	case Knight:
		return FlagPromoN
	case Bishop:
		return FlagPromoB
	case Rook:
		return FlagPromoR
	default:
		return FlagPromoQ
	}
}

var promoChar = map[PieceType]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}

// UCI renders the move in long-algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.IsPromotion() {
		b.WriteByte(promoChar[m.PromotionType()])
	}
	return b.String()
}

// String is an alias for UCI, used in logging and error messages.
func (m Move) String() string {
	return m.UCI()
}
