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
	"github.com/mikalsen/corechess/internal/assert"
	"github.com/mikalsen/corechess/internal/bitboard"
	"github.com/mikalsen/corechess/internal/types"
	"github.com/mikalsen/corechess/internal/zobrist"
)

// castleRookFrom and castleRookTo give the rook's own from/to squares for one side of
// castling, indexed by [color][kingside?0:queenside1].
var castleRookFrom = [types.ColorLength][2]types.Square{
	{types.SqH1, types.SqA1},
	{types.SqH8, types.SqA8},
}
var castleRookTo = [types.ColorLength][2]types.Square{
	{types.SqF1, types.SqD1},
	{types.SqF8, types.SqD8},
}

// MakeMove applies move to the position, pushing enough state onto the
// internal undo stack for a matching UnmakeMove to restore it exactly. The
// caller is responsible for only ever making moves produced by the legal
// move generator; MakeMove does not itself re-validate legality.
func (p *Position) MakeMove(move types.Move) {
	u := undo{
		move:          move,
		captured:      types.PtNone,
		captureSquare: types.SqNone,
		castling:      p.castling,
		epSquare:      p.epSquare,
		halfmoveClock: p.halfmoveClock,
		zobristKey:    p.zobristKey,
		pstMg:         p.pstMg,
		pstEg:         p.pstEg,
		phase:         p.phase,
	}

	from, to, flag := move.From(), move.To(), move.Flag()
	moving := p.board[from]
	movingType := moving.TypeOf()
	us, them := p.sideToMove, p.sideToMove.Flip()

	if movingType == types.Pawn || move.IsCapture() {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	if move.IsEnPassant() {
		capSq := types.SquareOf(to.FileOf(), from.RankOf())
		u.captured = p.removePiece(capSq).TypeOf()
		u.captureSquare = capSq
	} else if move.IsCapture() {
		u.captured = p.board[to].TypeOf()
		u.captureSquare = to
		p.removePiece(to)
	}

	p.removePiece(from)
	if move.IsPromotion() {
		p.addPiece(to, types.MakePiece(us, move.PromotionType()))
	} else {
		p.addPiece(to, moving)
	}

	if move.IsCastle() {
		side := 0
		if flag == types.FlagQueenCastle {
			side = 1
		}
		rookFrom := castleRookFrom[us][side]
		rookTo := castleRookTo[us][side]
		rook := p.removePiece(rookFrom)
		p.addPiece(rookTo, rook)
	}

	newRights := p.castling.Remove(types.RightsLostBySquare(from)).Remove(types.RightsLostBySquare(to))
	p.setCastling(newRights)

	if move.IsDoublePush() {
		p.setEpSquare(types.SquareOf(from.FileOf(), us.EpRank()))
	} else {
		p.setEpSquare(types.SqNone)
	}

	p.zobristKey ^= zobrist.SideToMove
	p.sideToMove = them
	if us == types.Black {
		p.fullmoveNumber++
	}

	p.history = append(p.history, u)
	p.keyHistory = append(p.keyHistory, p.zobristKey)
}

// UnmakeMove reverses the most recent MakeMove. It is an error to call it
// without a matching prior MakeMove; debug builds assert this.
func (p *Position) UnmakeMove() {
	assert.Assert(len(p.history) > 0, "UnmakeMove: no move to undo")
	n := len(p.history)
	u := p.history[n-1]
	p.history = p.history[:n-1]
	p.keyHistory = p.keyHistory[:len(p.keyHistory)-1]

	them := p.sideToMove
	us := them.Flip()
	if us == types.Black {
		p.fullmoveNumber--
	}
	p.sideToMove = us

	move := u.move
	from, to, flag := move.From(), move.To(), move.Flag()

	moved := p.takePieceRaw(to)
	if move.IsPromotion() {
		p.placePieceRaw(from, types.MakePiece(us, types.Pawn))
	} else {
		p.placePieceRaw(from, moved)
	}

	if move.IsCastle() {
		side := 0
		if flag == types.FlagQueenCastle {
			side = 1
		}
		rookFrom := castleRookFrom[us][side]
		rookTo := castleRookTo[us][side]
		rook := p.takePieceRaw(rookTo)
		p.placePieceRaw(rookFrom, rook)
	}

	if move.IsEnPassant() {
		capSq := types.SquareOf(to.FileOf(), from.RankOf())
		p.placePieceRaw(capSq, types.MakePiece(them, u.captured))
	} else if move.IsCapture() {
		p.placePieceRaw(u.captureSquare, types.MakePiece(them, u.captured))
	}

	p.castling = u.castling
	p.epSquare = u.epSquare
	p.halfmoveClock = u.halfmoveClock
	p.zobristKey = u.zobristKey
	p.pstMg = u.pstMg
	p.pstEg = u.pstEg
	p.phase = u.phase
}

// MakeNullMove passes the turn without moving a piece, used by null-move
// pruning. The en-passant square (if any) is cleared, matching the rule
// that a null move forfeits any pending en-passant capture.
func (p *Position) MakeNullMove() {
	u := undo{
		move:          types.NullMove,
		captured:      types.PtNone,
		captureSquare: types.SqNone,
		castling:      p.castling,
		epSquare:      p.epSquare,
		halfmoveClock: p.halfmoveClock,
		zobristKey:    p.zobristKey,
		pstMg:         p.pstMg,
		pstEg:         p.pstEg,
		phase:         p.phase,
	}
	p.setEpSquare(types.SqNone)
	p.zobristKey ^= zobrist.SideToMove
	p.sideToMove = p.sideToMove.Flip()
	p.history = append(p.history, u)
	p.keyHistory = append(p.keyHistory, p.zobristKey)
}

// UnmakeNullMove reverses the most recent MakeNullMove.
func (p *Position) UnmakeNullMove() {
	assert.Assert(len(p.history) > 0, "UnmakeNullMove: no move to undo")
	n := len(p.history)
	u := p.history[n-1]
	assert.Assert(u.move.IsNull(), "UnmakeNullMove: last move was not a null move")
	p.history = p.history[:n-1]
	p.keyHistory = p.keyHistory[:len(p.keyHistory)-1]

	p.sideToMove = p.sideToMove.Flip()
	p.castling = u.castling
	p.epSquare = u.epSquare
	p.halfmoveClock = u.halfmoveClock
	p.zobristKey = u.zobristKey
	p.pstMg = u.pstMg
	p.pstEg = u.pstEg
	p.phase = u.phase
}

// placePieceRaw and takePieceRaw update only the bitboards and mailbox,
// skipping the Zobrist/PST incremental maintenance that addPiece/removePiece
// perform: UnmakeMove restores those accumulators wholesale from the saved
// undo record instead of replaying them move by move.
func (p *Position) placePieceRaw(sq types.Square, piece types.Piece) {
	c := piece.ColorOf()
	pt := piece.TypeOf()
	bb := bitboard.FromSquare(sq)
	p.pieces[c][pt] |= bb
	p.occupied[c] |= bb
	p.all |= bb
	p.board[sq] = piece
}

func (p *Position) takePieceRaw(sq types.Square) types.Piece {
	piece := p.board[sq]
	assert.Assert(piece != types.PieceNone, "takePieceRaw: square %s is empty", sq)
	c := piece.ColorOf()
	pt := piece.TypeOf()
	bb := bitboard.FromSquare(sq)
	p.pieces[c][pt] &^= bb
	p.occupied[c] &^= bb
	p.all &^= bb
	p.board[sq] = types.PieceNone
	return piece
}
