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

// PieceType is a piece kind independent of color, as laid out in the
// data model: Pawn=0, Knight=1, Bishop=2, Rook=3, Queen=4, King=5.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PtNone
	PtLength = 6
)

// IsValid reports whether pt is one of the six piece types.
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt < PtLength
}

var pieceTypeValue = [PtLength]int{100, 320, 330, 500, 900, 0}

// Value returns the static material value of the piece type in centipawns.
func (pt PieceType) Value() int {
	return pieceTypeValue[pt]
}

// phaseValue is the contribution of one piece of this type to the game
// phase counter: min(24, N+B + 2*R + 4*Q).
var phaseValue = [PtLength]int{0, 1, 1, 2, 4, 0}

// PhaseValue returns the phase weight of one piece of this type.
func (pt PieceType) PhaseValue() int {
	return phaseValue[pt]
}

var pieceTypeChar = "PNBRQK"

// Char returns the single upper-case FEN letter for the piece type.
func (pt PieceType) Char() string {
	if pt == PtNone {
		return "-"
	}
	return string(pieceTypeChar[pt])
}

var pieceTypeName = [PtLength]string{"pawn", "knight", "bishop", "rook", "queen", "king"}

// String returns the lower-case English name of the piece type.
func (pt PieceType) String() string {
	if pt < 0 || pt >= PtLength {
		return "none"
	}
	return pieceTypeName[pt]
}

// Piece is a (Color, PieceType) pair packed into one byte: the low 3 bits
// hold the PieceType, bit 3 holds the color. PieceNone is the zero value
// reserved for "no piece"; the real piece types start at 1.
type Piece int8

const (
	PieceNone    Piece = 0
	WhitePawn    Piece = Piece(Pawn) + 1
	WhiteKnight  Piece = Piece(Knight) + 1
	WhiteBishop  Piece = Piece(Bishop) + 1
	WhiteRook    Piece = Piece(Rook) + 1
	WhiteQueen   Piece = Piece(Queen) + 1
	WhiteKing    Piece = Piece(King) + 1
	BlackPawn    Piece = WhitePawn + 8
	BlackKnight  Piece = WhiteKnight + 8
	BlackBishop  Piece = WhiteBishop + 8
	BlackRook    Piece = WhiteRook + 8
	BlackQueen   Piece = WhiteQueen + 8
	BlackKing    Piece = WhiteKing + 8
	PieceLength  Piece = 16
)

// MakePiece combines a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(pt) + 1 + Piece(c)*8
}

// IsValid reports whether p is a real occupied-square piece.
func (p Piece) IsValid() bool {
	return p != PieceNone && (p&7) <= Piece(King)+1
}

// ColorOf returns the color of the piece. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	if p >= BlackPawn {
		return Black
	}
	return White
}

// TypeOf returns the piece type of the piece. Undefined for PieceNone.
func (p Piece) TypeOf() PieceType {
	v := p
	if v >= BlackPawn {
		v -= 8
	}
	return PieceType(v - 1)
}

var pieceCharByColor = [ColorLength]string{"PNBRQK", "pnbrqk"}

// Char returns the FEN character for the piece (upper-case for White,
// lower-case for Black), or "." for PieceNone.
func (p Piece) Char() string {
	if p == PieceNone {
		return "."
	}
	return string(pieceCharByColor[p.ColorOf()][p.TypeOf()])
}

// PieceFromChar parses a single FEN piece letter. Returns PieceNone if s is
// not exactly one recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	if idx := strings.IndexByte(pieceCharByColor[White], s[0]); idx != -1 {
		return MakePiece(White, PieceType(idx))
	}
	if idx := strings.IndexByte(pieceCharByColor[Black], s[0]); idx != -1 {
		return MakePiece(Black, PieceType(idx))
	}
	return PieceNone
}
