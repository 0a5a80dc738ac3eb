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

// CastlingRights is a 4-bit set of {WK, WQ, BK, BQ} availability flags.
type CastlingRights uint8

const (
	CastleNone     CastlingRights = 0
	CastleWhiteOO  CastlingRights = 1 << 0
	CastleWhiteOOO CastlingRights = 1 << 1
	CastleBlackOO  CastlingRights = 1 << 2
	CastleBlackOOO CastlingRights = 1 << 3

	CastleWhite CastlingRights = CastleWhiteOO | CastleWhiteOOO
	CastleBlack CastlingRights = CastleBlackOO | CastleBlackOOO
	CastleAll   CastlingRights = CastleWhite | CastleBlack
)

// Has reports whether all bits of rhs are present.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs == rhs
}

// Remove clears the given rights and returns the new value.
func (cr CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	return cr &^ rhs
}

// String renders the rights in FEN order, e.g. "KQkq", or "-" if none.
func (cr CastlingRights) String() string {
	if cr == CastleNone {
		return "-"
	}
	var b strings.Builder
	if cr.Has(CastleWhiteOO) {
		b.WriteByte('K')
	}
	if cr.Has(CastleWhiteOOO) {
		b.WriteByte('Q')
	}
	if cr.Has(CastleBlackOO) {
		b.WriteByte('k')
	}
	if cr.Has(CastleBlackOOO) {
		b.WriteByte('q')
	}
	return b.String()
}

// CastlingRightsFromChar parses one FEN castling letter into its right.
// Returns CastleNone for "-" or an unrecognized letter.
func CastlingRightsFromChar(c byte) CastlingRights {
	switch c {
	case 'K':
		return CastleWhiteOO
	case 'Q':
		return CastleWhiteOOO
	case 'k':
		return CastleBlackOO
	case 'q':
		return CastleBlackOOO
	default:
		return CastleNone
	}
}

// rightsLostBySquare maps a square that, when vacated by a move's from- or
// to-square, revokes a castling right (a king or rook having moved away or
// been captured there).
var rightsLostBySquare = [SqLength]CastlingRights{}

func init() {
	rightsLostBySquare[SqE1] = CastleWhite
	rightsLostBySquare[SqA1] = CastleWhiteOOO
	rightsLostBySquare[SqH1] = CastleWhiteOO
	rightsLostBySquare[SqE8] = CastleBlack
	rightsLostBySquare[SqA8] = CastleBlackOOO
	rightsLostBySquare[SqH8] = CastleBlackOO
}

// RightsLostBySquare returns the castling rights revoked when a king or
// rook leaves (or is captured on) the given square.
func RightsLostBySquare(sq Square) CastlingRights {
	return rightsLostBySquare[sq]
}
