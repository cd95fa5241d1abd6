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

package board

import (
	"github.com/kestrelchess/kestrel/pkg/attacks"
	"github.com/kestrelchess/kestrel/pkg/bitboard"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// state holds the utility bitboards used during move generation. It is
// kept separate from Board since this data isn't part of a position's
// persistent representation, just scratch space recomputed once per
// GenerateMoves call.
type state struct {
	*Board

	MoveList []move.Move

	Us, Them piece.Color

	// Down, added to a square, gives the square "below" it from Us's
	// perspective, i.e. towards Us's own back rank.
	Down square.Square

	PromotionRankBB  bitboard.Board
	EnPassantRankBB  bitboard.Board
	DoublePushRankBB bitboard.Board

	TacticalOnly bool

	Friends  bitboard.Board
	Enemies  bitboard.Board
	Occupied bitboard.Board

	Target     bitboard.Board
	KingTarget bitboard.Board

	PinnedD  bitboard.Board
	PinnedHV bitboard.Board

	SeenByEnemy bitboard.Board

	Pawn, Knight, Bishop, Rook, Queen, King piece.Piece
}

// init sets up every utility bitboard needed to generate moves, either
// every legal move (capturesOnly false) or only captures/promotions
// (capturesOnly true, used by quiescence search).
func (s *state) init(capturesOnly bool) {
	s.TacticalOnly = capturesOnly

	s.Friends = s.ColorBBs[s.SideToMove]
	s.Enemies = s.ColorBBs[s.SideToMove.Other()]
	s.Occupied = s.Friends | s.Enemies

	s.Us = s.SideToMove
	s.Them = s.Us.Other()

	if s.Us == piece.White {
		s.PromotionRankBB = bitboard.Rank8
		s.EnPassantRankBB = bitboard.Rank5
		s.DoublePushRankBB = bitboard.Rank3

		s.Down = -8

		s.Pawn = piece.WhitePawn
		s.Knight = piece.WhiteKnight
		s.Bishop = piece.WhiteBishop
		s.Rook = piece.WhiteRook
		s.Queen = piece.WhiteQueen
		s.King = piece.WhiteKing
	} else {
		s.PromotionRankBB = bitboard.Rank1
		s.EnPassantRankBB = bitboard.Rank4
		s.DoublePushRankBB = bitboard.Rank6

		s.Down = 8

		s.Pawn = piece.BlackPawn
		s.Knight = piece.BlackKnight
		s.Bishop = piece.BlackBishop
		s.Rook = piece.BlackRook
		s.Queen = piece.BlackQueen
		s.King = piece.BlackKing
	}

	s.Board.CalculateCheckmask()

	s.calculatePinmask()
	s.SeenByEnemy = s.seenSquares(s.Them)

	if capturesOnly {
		s.Target = s.Enemies & s.CheckMask
		s.KingTarget = s.Enemies &^ s.SeenByEnemy
	} else {
		s.Target = ^s.Friends & s.CheckMask
		s.KingTarget = ^s.Friends &^ s.SeenByEnemy
	}

	// 31 is the average number of legal moves in a chess position.
	// https://chess.stackexchange.com/a/24325/33336
	s.MoveList = make([]move.Move, 0, 31)
}

// calculatePinmask computes the diagonal (PinnedD) and orthogonal
// (PinnedHV) pin-masks: the ray from the king through a pinned piece to
// the pinning slider, for every piece pinned against the king.
func (s *state) calculatePinmask() {
	kingSq := s.Kings[s.Us]

	friends := s.ColorBBs[s.Us]
	enemies := s.ColorBBs[s.Them]

	s.PinnedD = bitboard.Empty
	s.PinnedHV = bitboard.Empty

	for rooks := (s.Rooks(s.Them) | s.Queens(s.Them)) & attacks.Rook(kingSq, enemies); rooks != bitboard.Empty; {
		rook := rooks.Pop()
		ray := bitboard.Between[kingSq][rook] | bitboard.Squares[rook]

		if (ray & friends).Count() == 1 {
			s.PinnedHV |= ray
		}
	}

	for bishops := (s.Bishops(s.Them) | s.Queens(s.Them)) & attacks.Bishop(kingSq, enemies); bishops != bitboard.Empty; {
		bishop := bishops.Pop()
		ray := bitboard.Between[kingSq][bishop] | bitboard.Squares[bishop]

		if (ray & friends).Count() == 1 {
			s.PinnedD |= ray
		}
	}
}

// seenSquares returns every square attacked by a piece of color by,
// including the squares adjacent to by's own king. The enemy king is removed from
// the blocker set so a slider's attack set isn't cut short by the very
// king it is threatening to check, which matters for computing where
// that king may legally step.
func (s *state) seenSquares(by piece.Color) bitboard.Board {
	pawns := s.Pawns(by)
	knights := s.Knights(by)
	bishops := s.Bishops(by)
	rooks := s.Rooks(by)
	queens := s.Queens(by)
	kingSq := s.Kings[by]

	blockers := s.Occupied &^ s.Board.King(by.Other())

	seen := attacks.PawnsLeft(pawns, by) | attacks.PawnsRight(pawns, by)

	for knights != bitboard.Empty {
		seen |= attacks.Knight[knights.Pop()]
	}
	for bishops != bitboard.Empty {
		seen |= attacks.Bishop(bishops.Pop(), blockers)
	}
	for rooks != bitboard.Empty {
		seen |= attacks.Rook(rooks.Pop(), blockers)
	}
	for queens != bitboard.Empty {
		seen |= attacks.Queen(queens.Pop(), blockers)
	}

	seen |= attacks.King[kingSq]

	return seen
}
