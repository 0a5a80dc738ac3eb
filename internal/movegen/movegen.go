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

// Package movegen enumerates legal chess moves from a position: pseudo-legal
// generation per piece type followed by a make/unmake legality filter, plus
// the checkmate/stalemate predicates built on top of it.
package movegen

import (
	"github.com/mikalsen/corechess/internal/bitboard"
	"github.com/mikalsen/corechess/internal/position"
	"github.com/mikalsen/corechess/internal/types"
)

// maxMoves bounds a single position's move list; no chess position comes
// remotely close, but callers that want a fixed stack buffer can rely on it.
const maxMoves = 256

var promoTypes = [4]types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight}

// GenerateLegal returns every legal move available to the side to move.
func GenerateLegal(p *position.Position) []types.Move {
	pseudo := make([]types.Move, 0, maxMoves)
	pseudo = generatePseudoLegal(p, &pseudo, false)
	return filterLegal(p, pseudo)
}

// GenerateCaptures returns only legal captures and queen/under promotions,
// used by quiescence search.
func GenerateCaptures(p *position.Position) []types.Move {
	pseudo := make([]types.Move, 0, maxMoves)
	pseudo = generatePseudoLegal(p, &pseudo, true)
	return filterLegal(p, pseudo)
}

// filterLegal applies make/unmake and discards moves that leave the mover's
// own king in check.
func filterLegal(p *position.Position, pseudo []types.Move) []types.Move {
	us := p.SideToMove()
	legal := make([]types.Move, 0, len(pseudo))
	for _, m := range pseudo {
		p.MakeMove(m)
		if !p.InCheck(us) {
			legal = append(legal, m)
		}
		p.UnmakeMove()
	}
	return legal
}

// generatePseudoLegal appends every pseudo-legal move (captures only if
// capturesOnly) to dst and returns it.
func generatePseudoLegal(p *position.Position, dst *[]types.Move, capturesOnly bool) []types.Move {
	us := p.SideToMove()
	them := us.Flip()
	own := p.Occupied(us)
	enemy := p.Occupied(them)
	occ := p.AllOccupied()

	generatePawnMoves(p, us, them, occ, enemy, dst, capturesOnly)

	for pt := types.Knight; pt <= types.King; pt++ {
		pieces := p.Pieces(us, pt)
		for pieces != 0 {
			from := pieces.PopLsb()
			targets := bitboard.Attacks(pt, from, occ) &^ own
			if capturesOnly {
				targets &= enemy
			}
			for targets != 0 {
				to := targets.PopLsb()
				flag := types.FlagQuiet
				if enemy.Has(to) {
					flag = types.FlagCapture
				}
				*dst = append(*dst, types.NewMove(from, to, flag, types.PtNone))
			}
		}
	}

	if !capturesOnly {
		generateCastles(p, us, occ, dst)
	}

	return *dst
}

func generatePawnMoves(p *position.Position, us, them types.Color, occ, enemy bitboard.Bitboard, dst *[]types.Move, capturesOnly bool) {
	pawns := p.Pieces(us, types.Pawn)
	pushDir := us.PawnPushDirection()
	promoRank := us.PromotionRank()
	startRank := us.StartRank()

	for bb := pawns; bb != 0; {
		from := bb.PopLsb()

		oneStep := from.To(pushDir)
		if oneStep.IsValid() && !occ.Has(oneStep) {
			if !capturesOnly {
				emitPawnMoves(dst, from, oneStep, promoRank, types.FlagQuiet)
				if from.RankOf() == startRank {
					twoStep := oneStep.To(pushDir)
					if twoStep.IsValid() && !occ.Has(twoStep) {
						*dst = append(*dst, types.NewMove(from, twoStep, types.FlagDoublePush, types.PtNone))
					}
				}
			} else if oneStep.RankOf() == promoRank {
				// A quiet promotion still has tactical weight (it creates a
				// queen), so quiescence must see it even in captures-only mode.
				emitPawnMoves(dst, from, oneStep, promoRank, types.FlagQuiet)
			}
		}

		for _, to := range []types.Square{from.To(pushDir + types.East), from.To(pushDir + types.West)} {
			if !to.IsValid() {
				continue
			}
			if to == p.EpSquare() {
				*dst = append(*dst, types.NewMove(from, to, types.FlagEpCapture, types.PtNone))
				continue
			}
			if enemy.Has(to) {
				emitPawnMoves(dst, from, to, promoRank, types.FlagCapture)
			}
		}
	}
}

// emitPawnMoves appends one pawn move to dst, expanding it into the four
// promotion variants (queen, rook, bishop, knight) when to sits on the
// promotion rank.
func emitPawnMoves(dst *[]types.Move, from, to types.Square, promoRank types.Rank, captureFlag types.MoveFlag) {
	if to.RankOf() != promoRank {
		*dst = append(*dst, types.NewMove(from, to, captureFlag, types.PtNone))
		return
	}
	isCapture := captureFlag == types.FlagCapture
	for _, pt := range promoTypes {
		flag := types.PromoFlag(pt)
		if isCapture {
			flag = types.PromoCaptureFlag(pt)
		}
		*dst = append(*dst, types.NewMove(from, to, flag, pt))
	}
}

func generateCastles(p *position.Position, us types.Color, occ bitboard.Bitboard, dst *[]types.Move) {
	rights := p.Castling()
	them := us.Flip()

	if us == types.White {
		if rights.Has(types.CastleWhiteOO) &&
			!occ.Has(types.SqF1) && !occ.Has(types.SqG1) &&
			notAttacked(p, them, types.SqE1, types.SqF1, types.SqG1) {
			*dst = append(*dst, types.NewMove(types.SqE1, types.SqG1, types.FlagKingCastle, types.PtNone))
		}
		if rights.Has(types.CastleWhiteOOO) &&
			!occ.Has(types.SqD1) && !occ.Has(types.SqC1) && !occ.Has(types.SqB1) &&
			notAttacked(p, them, types.SqE1, types.SqD1, types.SqC1) {
			*dst = append(*dst, types.NewMove(types.SqE1, types.SqC1, types.FlagQueenCastle, types.PtNone))
		}
	} else {
		if rights.Has(types.CastleBlackOO) &&
			!occ.Has(types.SqF8) && !occ.Has(types.SqG8) &&
			notAttacked(p, them, types.SqE8, types.SqF8, types.SqG8) {
			*dst = append(*dst, types.NewMove(types.SqE8, types.SqG8, types.FlagKingCastle, types.PtNone))
		}
		if rights.Has(types.CastleBlackOOO) &&
			!occ.Has(types.SqD8) && !occ.Has(types.SqC8) && !occ.Has(types.SqB8) &&
			notAttacked(p, them, types.SqE8, types.SqD8, types.SqC8) {
			*dst = append(*dst, types.NewMove(types.SqE8, types.SqC8, types.FlagQueenCastle, types.PtNone))
		}
	}
}

func notAttacked(p *position.Position, by types.Color, squares ...types.Square) bool {
	for _, sq := range squares {
		if p.AttacksTo(sq, by) != 0 {
			return false
		}
	}
	return true
}

// IsCheckmate reports whether the side to move has no legal moves and is
// currently in check.
func IsCheckmate(p *position.Position) bool {
	return p.InCheck(p.SideToMove()) && len(GenerateLegal(p)) == 0
}

// IsStalemate reports whether the side to move has no legal moves and is
// not in check.
func IsStalemate(p *position.Position) bool {
	return !p.InCheck(p.SideToMove()) && len(GenerateLegal(p)) == 0
}
