// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package classical

import (
	"github.com/kestrelchess/kestrel/internal/util"
	"github.com/kestrelchess/kestrel/pkg/bitboard"
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// passedMask[c][s] is the set of squares on s's file and the two
// adjacent files, strictly ahead of s from c's perspective. A pawn of
// color c on s is passed if no enemy pawn occupies passedMask[c][s].
var passedMask [piece.ColorN][square.N]bitboard.Board

// aheadMask[c][r] is every rank strictly ahead of r from c's
// perspective, used to build passedMask and the "rook behind" check.
var aheadMask [piece.ColorN][square.RankN]bitboard.Board

func init() {
	for r := square.Rank1; r <= square.Rank8; r++ {
		for a := r + 1; a <= square.Rank8; a++ {
			aheadMask[piece.White][r] |= bitboard.Ranks[a]
		}
		for a := r - 1; a >= square.Rank1; a-- {
			aheadMask[piece.Black][r] |= bitboard.Ranks[a]
		}
	}

	for s := square.A1; s < square.N; s++ {
		f := s.File()
		files := bitboard.Files[f]
		if f > square.FileA {
			files |= bitboard.Files[f-1]
		}
		if f < square.FileH {
			files |= bitboard.Files[f+1]
		}

		passedMask[piece.White][s] = files & aheadMask[piece.White][s.Rank()]
		passedMask[piece.Black][s] = files & aheadMask[piece.Black][s.Rank()]
	}
}

// relativeRank returns r as seen from c's side, so rank 0 is always a
// color's own back rank.
func relativeRank(c piece.Color, r square.Rank) square.Rank {
	if c == piece.White {
		return r
	}
	return 7 - r
}

// Evaluate scores b from the perspective of the side to move using
// the classical term-based model: material, a centrality proxy for
// piece placement, and pawn/rook structure terms. It has the same
// signature as eval.PeSTO and can be swapped in for it wherever an
// eval.Func is expected.
func Evaluate(b *board.Board) eval.Eval {
	score := evaluateSide(b, piece.White) - evaluateSide(b, piece.Black)

	phase := util.Min(gamePhase(b), MaxPhase)
	tapered := (score.MG()*eval.Eval(phase) + score.EG()*eval.Eval(MaxPhase-phase)) / MaxPhase

	if b.SideToMove == piece.Black {
		return -tapered
	}
	return tapered
}

func gamePhase(b *board.Board) int {
	phase := 0
	for t := piece.Knight; t <= piece.Queen; t++ {
		n := (b.PieceBBs[t]).Count()
		phase += n * phaseInc[t]
	}
	return phase
}

func evaluateSide(b *board.Board, us piece.Color) Score {
	var score Score

	score += evaluateMaterialAndPlacement(b, us)
	score += evaluatePawns(b, us)
	score += evaluateRooks(b, us)

	return score
}

func evaluateMaterialAndPlacement(b *board.Board, us piece.Color) Score {
	var score Score

	for t := piece.Pawn; t <= piece.Queen; t++ {
		bb := b.PieceBBs[t] & b.ColorBBs[us]
		n := bb.Count()
		score += Score(n) * Terms.Material[t]

		for bb != bitboard.Empty {
			s := bb.Pop()
			score += centrality(s) * Terms.CentralityWeight[t]
		}
	}

	score += centrality(b.Kings[us]) * Terms.CentralityWeight[piece.King]

	return score
}

// centrality is 0 on the board's edge and grows towards the middle,
// used as a cheap stand-in for a full piece-square table.
func centrality(s square.Square) Score {
	f, r := int(s.File()), int(s.Rank())

	fileDist := util.Min(f, 7-f)
	rankDist := util.Min(r, 7-r)

	return Score(fileDist + rankDist)
}

func evaluatePawns(b *board.Board, us piece.Color) Score {
	them := us.Other()

	ourPawns := b.Pawns(us)
	enemyPawns := b.Pawns(them)
	rooksAndQueens := b.Rooks(us) | b.Queens(us)

	var score Score

	for f := square.FileA; f <= square.FileH; f++ {
		n := (ourPawns & bitboard.Files[f]).Count()
		for i := 1; i < n; i++ {
			score += Terms.DoubledPawn
		}
	}

	for pawns := ourPawns; pawns != bitboard.Empty; {
		s := pawns.Pop()
		f := s.File()

		adjacent := bitboard.Empty
		if f > square.FileA {
			adjacent |= bitboard.Files[f-1]
		}
		if f < square.FileH {
			adjacent |= bitboard.Files[f+1]
		}

		if ourPawns&adjacent == bitboard.Empty {
			score += Terms.IsolatedPawn
		}

		if enemyPawns&passedMask[us][s] != bitboard.Empty {
			continue
		}

		rr := relativeRank(us, s.Rank())
		bonus := Terms.PassedPawn[rr]

		behind := bitboard.Files[f] & aheadMask[them][s.Rank()]
		if rooksAndQueens&behind == bitboard.Empty {
			bonus = bonus.Scale(Terms.PassedPawnNoRookBehindPct)
		}

		score += bonus
	}

	return score
}

func evaluateRooks(b *board.Board, us piece.Color) Score {
	var score Score

	pawns := b.PieceBBs[piece.Pawn]
	ourPawns := b.Pawns(us)

	for rooks := b.Rooks(us); rooks != bitboard.Empty; {
		s := rooks.Pop()
		file := bitboard.Files[s.File()]

		switch {
		case pawns&file == bitboard.Empty:
			score += Terms.RookFullOpenFile
		case ourPawns&file == bitboard.Empty:
			score += Terms.RookSemiOpenFile
		}
	}

	return score
}
