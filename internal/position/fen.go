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
	"fmt"
	"strconv"
	"strings"

	"github.com/mikalsen/corechess/internal/bitboard"
	"github.com/mikalsen/corechess/internal/types"
	"github.com/mikalsen/corechess/internal/zobrist"
)

// InvalidFENError reports why a FEN string was rejected. Input-validation
// errors are always returned to the caller, never swallowed or "fixed up".
type InvalidFENError struct {
	FEN    string
	Reason string
}

func (e *InvalidFENError) Error() string {
	return fmt.Sprintf("invalid FEN %q: %s", e.FEN, e.Reason)
}

func invalidFEN(fen, reason string, args ...interface{}) error {
	return &InvalidFENError{FEN: fen, Reason: fmt.Sprintf(reason, args...)}
}

// FromFEN parses a Forsyth-Edwards Notation string into a Position.
// Parsing is strict: exactly 6 whitespace-separated fields, piece-placement
// ranks '/'-separated each summing to 8 files, and the board's structural
// invariants (piece counts, king placement, side-not-to-move not in check)
// are all validated before the Position is returned.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, invalidFEN(fen, "expected 6 fields, got %d", len(fields))
	}

	p := &Position{epSquare: types.SqNone}

	if err := p.parsePlacement(fen, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.sideToMove = types.White
	case "b":
		p.sideToMove = types.Black
	default:
		return nil, invalidFEN(fen, "side to move must be 'w' or 'b', got %q", fields[1])
	}

	if err := p.parseCastling(fen, fields[2]); err != nil {
		return nil, err
	}

	if err := p.parseEpSquare(fen, fields[3]); err != nil {
		return nil, err
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, invalidFEN(fen, "invalid halfmove clock %q", fields[4])
	}
	p.halfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, invalidFEN(fen, "invalid fullmove number %q", fields[5])
	}
	p.fullmoveNumber = fullmove

	if err := p.validatePostParse(fen); err != nil {
		return nil, err
	}

	p.zobristKey = p.recomputeZobrist()
	p.recomputeEval()
	p.history = make([]undo, 0, 64)
	p.keyHistory = make([]zobrist.Key, 0, 256)
	p.keyHistory = append(p.keyHistory, p.zobristKey)

	return p, nil
}

func (p *Position) parsePlacement(fen, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return invalidFEN(fen, "piece placement must have 8 ranks, got %d", len(ranks))
	}
	// FEN lists rank 8 down to rank 1.
	for i, rankStr := range ranks {
		rank := types.Rank(7 - i)
		file := types.FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += types.File(ch - '0')
				continue
			}
			piece := types.PieceFromChar(string(ch))
			if piece == types.PieceNone {
				return invalidFEN(fen, "invalid piece placement character %q", ch)
			}
			if !file.IsValid() {
				return invalidFEN(fen, "rank %d overflows 8 files", rank+1)
			}
			sq := types.SquareOf(file, rank)
			p.addPiece(sq, piece)
			file++
		}
		if int(file) != 8 {
			return invalidFEN(fen, "rank %d does not sum to 8 files", rank+1)
		}
	}
	return nil
}

func (p *Position) parseCastling(fen, field string) error {
	if field == "-" {
		p.castling = types.CastleNone
		return nil
	}
	var rights types.CastlingRights
	for i := 0; i < len(field); i++ {
		right := types.CastlingRightsFromChar(field[i])
		if right == types.CastleNone {
			return invalidFEN(fen, "invalid castling rights character %q", field[i])
		}
		rights |= right
	}
	p.castling = rights
	return nil
}

func (p *Position) parseEpSquare(fen, field string) error {
	if field == "-" {
		p.epSquare = types.SqNone
		return nil
	}
	sq := types.MakeSquare(field)
	if sq == types.SqNone {
		return invalidFEN(fen, "invalid en-passant square %q", field)
	}
	p.epSquare = sq
	return nil
}

// validatePostParse checks the invariants a FEN's content can violate that
// can only be verified once the whole board is known: exactly one king per
// side, no pawns on the back ranks, and the side not to move must not be
// in check.
func (p *Position) validatePostParse(fen string) error {
	if p.pieces[types.White][types.King].PopCount() != 1 {
		return invalidFEN(fen, "white must have exactly one king")
	}
	if p.pieces[types.Black][types.King].PopCount() != 1 {
		return invalidFEN(fen, "black must have exactly one king")
	}
	backRanks := bitboard.RankMask[types.Rank1] | bitboard.RankMask[types.Rank8]
	if p.pieces[types.White][types.Pawn]&backRanks != 0 || p.pieces[types.Black][types.Pawn]&backRanks != 0 {
		return invalidFEN(fen, "pawns cannot stand on rank 1 or rank 8")
	}
	notToMove := p.sideToMove.Flip()
	if p.isSquareAttacked(p.KingSquare(notToMove), p.sideToMove) {
		return invalidFEN(fen, "side not to move is in check")
	}
	if p.epSquare != types.SqNone {
		expectedRank := p.sideToMove.Flip().EpRank()
		if p.epSquare.RankOf() != expectedRank {
			return invalidFEN(fen, "en-passant square %s inconsistent with side to move", p.epSquare)
		}
	}
	return nil
}

// ToFEN renders the position back to Forsyth-Edwards Notation. FromFEN and
// ToFEN round-trip exactly for any position reachable by legal play.
func (p *Position) ToFEN() string {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		rank := types.Rank(7 - i)
		empty := 0
		for file := types.FileA; file <= types.FileH; file++ {
			piece := p.board[types.SquareOf(file, rank)]
			if piece == types.PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(piece.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank != types.Rank1 {
			b.WriteByte('/')
		}
	}
	b.WriteByte(' ')
	b.WriteString(p.sideToMove.String())
	b.WriteByte(' ')
	b.WriteString(p.castling.String())
	b.WriteByte(' ')
	b.WriteString(p.epSquare.String())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.halfmoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.fullmoveNumber))
	return b.String()
}
