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

package movegen

import (
	"strings"

	"github.com/mikalsen/corechess/internal/position"
	"github.com/mikalsen/corechess/internal/types"
)

// MoveFromSAN resolves a short algebraic move string (as used in EPD
// bm/am opcodes, e.g. "Nf3", "exd5", "O-O", "e8=Q") against the legal
// moves of p. Returns MoveNone if s names no legal move.
func MoveFromSAN(p *position.Position, s string) types.Move {
	s = strings.TrimRight(s, "+#!?")
	legal := GenerateLegal(p)

	if s == "O-O" || s == "0-0" {
		return findCastle(legal, types.FlagKingCastle)
	}
	if s == "O-O-O" || s == "0-0-0" {
		return findCastle(legal, types.FlagQueenCastle)
	}

	for _, m := range legal {
		if sanMatches(p, m, s) {
			return m
		}
	}
	return types.MoveNone
}

func findCastle(legal []types.Move, flag types.MoveFlag) types.Move {
	for _, m := range legal {
		if m.Flag() == flag {
			return m
		}
	}
	return types.MoveNone
}

// sanMatches reports whether m renders as s under SAN once optional
// disambiguation/capture notation is stripped: piece letter, from-file,
// from-rank, "x", destination square, "=promo" are all optional/implied
// by context, so this matches loosely on destination and piece identity
// rather than reproducing a full SAN writer.
func sanMatches(p *position.Position, m types.Move, s string) bool {
	moving := p.PieceOn(m.From()).TypeOf()

	body := s
	var promo types.PieceType = types.PtNone
	if idx := strings.IndexByte(body, '='); idx >= 0 {
		promo = charToPieceType(body[idx+1])
		body = body[:idx]
	}
	body = strings.ReplaceAll(body, "x", "")

	if len(body) < 2 {
		return false
	}
	dest := body[len(body)-2:]
	if dest != m.To().String() {
		return false
	}
	if m.IsPromotion() && promo != types.PtNone && m.PromotionType() != promo {
		return false
	}

	pieceLetter := body[:len(body)-2]
	wantType := types.Pawn
	disambig := pieceLetter
	if len(pieceLetter) > 0 && isPieceLetter(pieceLetter[0]) {
		wantType = charToPieceType(pieceLetter[0])
		disambig = pieceLetter[1:]
	}
	if moving != wantType {
		return false
	}

	for _, c := range disambig {
		switch {
		case c >= 'a' && c <= 'h':
			if m.From().FileOf() != types.File(c-'a') {
				return false
			}
		case c >= '1' && c <= '8':
			if m.From().RankOf() != types.Rank(c-'1') {
				return false
			}
		}
	}
	return true
}

func isPieceLetter(c byte) bool {
	switch c {
	case 'N', 'B', 'R', 'Q', 'K':
		return true
	default:
		return false
	}
}

func charToPieceType(c byte) types.PieceType {
	switch c {
	case 'N':
		return types.Knight
	case 'B':
		return types.Bishop
	case 'R':
		return types.Rook
	case 'Q':
		return types.Queen
	case 'K':
		return types.King
	default:
		return types.PtNone
	}
}
