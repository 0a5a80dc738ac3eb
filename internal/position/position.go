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

// Package position holds the Board/Position state: piece bitboards, packed
// metadata, incremental Zobrist hash and incremental tapered-eval
// accumulators, plus make/unmake and FEN I/O. A Position is mutated only
// through MakeMove/UnmakeMove/MakeNullMove/UnmakeNullMove and is owned
// exclusively by the search that drives it - no other component may mutate
// it concurrently.
package position

import (
	"github.com/mikalsen/corechess/internal/assert"
	"github.com/mikalsen/corechess/internal/bitboard"
	"github.com/mikalsen/corechess/internal/pst"
	"github.com/mikalsen/corechess/internal/types"
	"github.com/mikalsen/corechess/internal/zobrist"
)

// MaxGameLength is a nominal upper bound on game length; a real game (or a
// search line extended by check extensions) never approaches it. The undo
// and repetition-history stacks are not capped by it and grow as needed.
const MaxGameLength = 1024

// undo is pushed by MakeMove/MakeNullMove and popped by the matching
// Unmake*, restoring exactly the state that changed.
type undo struct {
	move          types.Move
	captured      types.PieceType
	captureSquare types.Square
	castling      types.CastlingRights
	epSquare      types.Square
	halfmoveClock int
	zobristKey    zobrist.Key
	pstMg, pstEg  int
	phase         int
}

// Position is the full mutable state of a chess game in progress.
type Position struct {
	pieces   [types.ColorLength][types.PtLength]bitboard.Bitboard
	occupied [types.ColorLength]bitboard.Bitboard
	all      bitboard.Bitboard
	board    [types.SqLength]types.Piece

	sideToMove     types.Color
	castling       types.CastlingRights
	epSquare       types.Square
	halfmoveClock  int
	fullmoveNumber int

	zobristKey zobrist.Key

	// incremental tapered-eval accumulators, always from White's
	// perspective; the evaluator negates for Black to move and applies
	// the phase-weighted taper.
	pstMg, pstEg int
	phase        int

	history []undo
	// keyHistory records the Zobrist key of every position reached so
	// far in this game/search line, used by IsRepetition.
	keyHistory []zobrist.Key
}

// NewInitial returns a Position set to the standard chess starting array.
func NewInitial() *Position {
	p, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic("position: starting FEN must always parse: " + err.Error())
	}
	return p
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() types.Color { return p.sideToMove }

// Castling returns the current castling rights.
func (p *Position) Castling() types.CastlingRights { return p.castling }

// EpSquare returns the current en-passant target square, or types.SqNone.
func (p *Position) EpSquare() types.Square { return p.epSquare }

// HalfmoveClock returns the 50-move-rule ply counter.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the number of completed full moves.
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// Zobrist returns the incrementally-maintained Zobrist hash.
func (p *Position) Zobrist() zobrist.Key { return p.zobristKey }

// PieceOn returns the piece occupying sq, or types.PieceNone.
func (p *Position) PieceOn(sq types.Square) types.Piece { return p.board[sq] }

// Occupied returns the union of all pieces of the given color.
func (p *Position) Occupied(c types.Color) bitboard.Bitboard { return p.occupied[c] }

// AllOccupied returns the union of every piece on the board.
func (p *Position) AllOccupied() bitboard.Bitboard { return p.all }

// Pieces returns the bitboard of piece type pt belonging to color c.
func (p *Position) Pieces(c types.Color, pt types.PieceType) bitboard.Bitboard {
	return p.pieces[c][pt]
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c types.Color) types.Square {
	return p.pieces[c][types.King].Lsb()
}

// PstMg, PstEg and Phase expose the incremental tapered-eval accumulators
// (White-relative) to the evaluator without it having to recompute them.
func (p *Position) PstMg() int { return p.pstMg }
func (p *Position) PstEg() int { return p.pstEg }
func (p *Position) Phase() int { return p.phase }

// MaterialBalance returns the White-minus-Black material balance in
// centipawns, derived on demand from the piece bitboards.
func (p *Position) MaterialBalance() int {
	balance := 0
	for pt := types.Pawn; pt < types.PtNone; pt++ {
		balance += p.pieces[types.White][pt].PopCount() * pt.Value()
		balance -= p.pieces[types.Black][pt].PopCount() * pt.Value()
	}
	return balance
}

// addPiece places piece p on sq, maintaining bitboards, the mailbox board,
// the Zobrist hash and the tapered-eval accumulators in lockstep.
func (p *Position) addPiece(sq types.Square, piece types.Piece) {
	c := piece.ColorOf()
	pt := piece.TypeOf()
	bb := bitboard.FromSquare(sq)
	p.pieces[c][pt] |= bb
	p.occupied[c] |= bb
	p.all |= bb
	p.board[sq] = piece
	p.zobristKey ^= zobrist.PieceSquare[piece][sq]
	p.applyPst(c, pt, sq, 1)
}

// removePiece removes whatever piece sits on sq (must be non-empty) and
// undoes its contribution to every incremental accumulator.
func (p *Position) removePiece(sq types.Square) types.Piece {
	piece := p.board[sq]
	assert.Assert(piece != types.PieceNone, "removePiece: square %s is empty", sq)
	c := piece.ColorOf()
	pt := piece.TypeOf()
	bb := bitboard.FromSquare(sq)
	p.pieces[c][pt] &^= bb
	p.occupied[c] &^= bb
	p.all &^= bb
	p.board[sq] = types.PieceNone
	p.zobristKey ^= zobrist.PieceSquare[piece][sq]
	p.applyPst(c, pt, sq, -1)
	return piece
}

// applyPst adds (sign=+1) or removes (sign=-1) one piece's contribution to
// the White-relative pstMg/pstEg/phase accumulators.
func (p *Position) applyPst(c types.Color, pt types.PieceType, sq types.Square, sign int) {
	sqIdx := sq
	if c == types.Black {
		sqIdx = sq.Flipped()
	}
	mg, eg := pst.MG[pt][sqIdx], pst.EG[pt][sqIdx]
	if c == types.Black {
		mg, eg = -mg, -eg
	}
	p.pstMg += sign * mg
	p.pstEg += sign * eg
	if sign > 0 {
		p.phase += pt.PhaseValue()
	} else {
		p.phase -= pt.PhaseValue()
	}
}

// setCastling updates castling rights, XOR-ing the Zobrist key for exactly
// the bits that change.
func (p *Position) setCastling(rights types.CastlingRights) {
	changed := p.castling ^ rights
	for _, right := range []types.CastlingRights{types.CastleWhiteOO, types.CastleWhiteOOO, types.CastleBlackOO, types.CastleBlackOOO} {
		if changed&right != 0 {
			p.zobristKey ^= zobrist.Castling[zobrist.CastlingKeyIndex(right)]
		}
	}
	p.castling = rights
}

// setEpSquare updates the en-passant target, XOR-ing the file key in and
// out as needed.
func (p *Position) setEpSquare(sq types.Square) {
	if p.epSquare != types.SqNone {
		p.zobristKey ^= zobrist.EpFile[p.epSquare.FileOf()]
	}
	p.epSquare = sq
	if p.epSquare != types.SqNone {
		p.zobristKey ^= zobrist.EpFile[p.epSquare.FileOf()]
	}
}

// recomputeZobrist recalculates the Zobrist hash from scratch. Used only
// after FEN parsing and by CheckInvariants; the hot path always updates
// incrementally.
func (p *Position) recomputeZobrist() zobrist.Key {
	var key zobrist.Key
	for sq := types.SqA1; sq < types.SqNone; sq++ {
		if piece := p.board[sq]; piece != types.PieceNone {
			key ^= zobrist.PieceSquare[piece][sq]
		}
	}
	for _, right := range []types.CastlingRights{types.CastleWhiteOO, types.CastleWhiteOOO, types.CastleBlackOO, types.CastleBlackOOO} {
		if p.castling.Has(right) {
			key ^= zobrist.Castling[zobrist.CastlingKeyIndex(right)]
		}
	}
	if p.epSquare != types.SqNone {
		key ^= zobrist.EpFile[p.epSquare.FileOf()]
	}
	if p.sideToMove == types.Black {
		key ^= zobrist.SideToMove
	}
	return key
}

// recomputeEval rebuilds the incremental PST (mg/eg) and phase accumulators
// from scratch from the piece bitboards. Used only after FEN parsing.
func (p *Position) recomputeEval() {
	p.pstMg, p.pstEg, p.phase = 0, 0, 0
	for sq := types.SqA1; sq < types.SqNone; sq++ {
		if piece := p.board[sq]; piece != types.PieceNone {
			p.applyPst(piece.ColorOf(), piece.TypeOf(), sq, 1)
		}
	}
	if p.phase > 24 {
		p.phase = 24
	}
}

// CheckInvariants re-derives the per-color occupancy and Zobrist hash from
// the piece bitboards and panics with diagnostic context if either is out
// of sync. Internal assertion failures are fatal bugs; the engine never
// tries to "fix" a corrupt position.
func (p *Position) CheckInvariants() {
	var union bitboard.Bitboard
	for c := types.White; c <= types.Black; c++ {
		var colorUnion bitboard.Bitboard
		for pt := types.Pawn; pt < types.PtNone; pt++ {
			colorUnion |= p.pieces[c][pt]
		}
		assert.Assert(colorUnion == p.occupied[c], "occupied[%s] out of sync with piece bitboards", c)
		assert.Assert(p.pieces[c][types.King].PopCount() == 1, "color %s does not have exactly one king", c)
		union |= colorUnion
	}
	assert.Assert(union == p.all, "allOccupied out of sync with per-color occupied")
	assert.Assert(p.zobristKey == p.recomputeZobrist(), "zobrist hash out of sync with position state")
}
