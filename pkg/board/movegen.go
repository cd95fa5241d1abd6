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
	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// GenerateMoves returns every legal move in the current position.
func (b *Board) GenerateMoves() []move.Move {
	return b.generate(false)
}

// GenerateCaptures returns every legal capturing or promoting move in
// the current position, used by quiescence search.
func (b *Board) GenerateCaptures() []move.Move {
	return b.generate(true)
}

func (b *Board) generate(capturesOnly bool) []move.Move {
	s := state{Board: b}
	s.init(capturesOnly)

	s.appendKingMoves()

	if s.CheckN >= 2 {
		// in double check only the king can move
		return s.MoveList
	}

	s.appendKnightMoves()
	s.appendBishopTypeMoves(s.Bishop, s.Bishops(s.Us))
	s.appendRookTypeMoves(s.Rook, s.Rooks(s.Us))
	s.appendBishopTypeMoves(s.Queen, s.Queens(s.Us))
	s.appendRookTypeMoves(s.Queen, s.Queens(s.Us))
	s.appendPawnMoves()

	return s.MoveList
}

func (s *state) appendKingMoves() {
	kingSq := s.Kings[s.Us]

	targets := attacks.King[kingSq] & s.KingTarget
	s.serializeMoves(s.King, kingSq, targets)

	if s.CheckN == 0 && !s.TacticalOnly {
		s.appendCastlingMoves()
	}
}

func (s *state) appendKnightMoves() {
	for knights := s.Knights(s.Us) &^ (s.PinnedD | s.PinnedHV); knights != bitboard.Empty; {
		from := knights.Pop()
		s.serializeMoves(s.Knight, from, attacks.Knight[from]&s.Target)
	}
}

// appendBishopTypeMoves generates moves for any piece that slides like
// a bishop (bishops and queens).
func (s *state) appendBishopTypeMoves(p piece.Piece, pieces bitboard.Board) {
	pieces &^= s.PinnedHV

	pinned := pieces & s.PinnedD
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		s.serializeMoves(p, from, attacks.Bishop(from, s.Occupied)&s.Target&s.PinnedD)
	}

	unpinned := pieces &^ s.PinnedD
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		s.serializeMoves(p, from, attacks.Bishop(from, s.Occupied)&s.Target)
	}
}

// appendRookTypeMoves generates moves for any piece that slides like a
// rook (rooks and queens).
func (s *state) appendRookTypeMoves(p piece.Piece, pieces bitboard.Board) {
	pieces &^= s.PinnedD

	pinned := pieces & s.PinnedHV
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		s.serializeMoves(p, from, attacks.Rook(from, s.Occupied)&s.Target&s.PinnedHV)
	}

	unpinned := pieces &^ s.PinnedHV
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		s.serializeMoves(p, from, attacks.Rook(from, s.Occupied)&s.Target)
	}
}

func (s *state) appendPawnMoves() {
	left, right := square.Square(-1), square.Square(1)

	pushTarget := s.CheckMask &^ s.Occupied
	captureTarget := s.Enemies & s.CheckMask

	pawns := s.Pawns(s.Us)

	attackers := pawns &^ s.PinnedHV
	unpinnedAttackers := attackers &^ s.PinnedD
	pinnedAttackers := attackers & s.PinnedD

	attacksL := attacks.PawnsLeft(unpinnedAttackers, s.Us) & captureTarget
	attacksL |= attacks.PawnsLeft(pinnedAttackers, s.Us) & captureTarget & s.PinnedD

	attacksR := attacks.PawnsRight(unpinnedAttackers, s.Us) & captureTarget
	attacksR |= attacks.PawnsRight(pinnedAttackers, s.Us) & captureTarget & s.PinnedD

	for bb := attacksL &^ s.PromotionRankBB; bb != bitboard.Empty; {
		to := bb.Pop()
		s.MoveList = append(s.MoveList, move.New(to+s.Down+right, to, s.Pawn, true, move.Quiet))
	}
	for bb := attacksR &^ s.PromotionRankBB; bb != bitboard.Empty; {
		to := bb.Pop()
		s.MoveList = append(s.MoveList, move.New(to+s.Down+left, to, s.Pawn, true, move.Quiet))
	}

	for bb := attacksL & s.PromotionRankBB; bb != bitboard.Empty; {
		to := bb.Pop()
		s.appendPromotions(to+s.Down+right, to, true)
	}
	for bb := attacksR & s.PromotionRankBB; bb != bitboard.Empty; {
		to := bb.Pop()
		s.appendPromotions(to+s.Down+left, to, true)
	}

	pushers := pawns &^ s.PinnedD
	unpinnedPushers := pushers &^ s.PinnedHV
	pinnedPushers := pushers & s.PinnedHV

	singlePush := attacks.PawnPush(unpinnedPushers, s.Us)
	singlePush |= attacks.PawnPush(pinnedPushers, s.Us) & s.PinnedHV
	singlePush &^= s.Occupied

	doublePush := attacks.PawnPush(singlePush&s.DoublePushRankBB, s.Us) & pushTarget
	singlePush &= pushTarget

	if !s.TacticalOnly {
		for bb := singlePush &^ s.PromotionRankBB; bb != bitboard.Empty; {
			to := bb.Pop()
			s.MoveList = append(s.MoveList, move.New(to+s.Down, to, s.Pawn, false, move.Quiet))
		}
		for bb := doublePush; bb != bitboard.Empty; {
			to := bb.Pop()
			s.MoveList = append(s.MoveList, move.New(to+2*s.Down, to, s.Pawn, false, move.DoublePawnPush))
		}
	}
	for bb := singlePush & s.PromotionRankBB; bb != bitboard.Empty; {
		to := bb.Pop()
		s.appendPromotions(to+s.Down, to, false)
	}

	s.appendEnPassant(attackers)
}

func (s *state) appendEnPassant(attackers bitboard.Board) {
	if s.EnPassantTarget == square.None {
		return
	}

	epPawn := s.EnPassantTarget + s.Down

	epMask := bitboard.Squares[s.EnPassantTarget] | bitboard.Squares[epPawn]
	if s.CheckMask&epMask == bitboard.Empty {
		// capturing en passant neither blocks nor captures the checker
		return
	}

	kingSq := s.Kings[s.Us]
	kingOnEpRank := bitboard.Squares[kingSq] & s.EnPassantRankBB
	enemyRooksQueens := (s.Rooks(s.Them) | s.Queens(s.Them)) & s.EnPassantRankBB

	possibleRookPin := kingOnEpRank != bitboard.Empty && enemyRooksQueens != bitboard.Empty

	for from := attacks.Pawn[s.Them][s.EnPassantTarget] & attackers; from != bitboard.Empty; {
		sq := from.Pop()

		if s.PinnedD.IsSet(sq) && !s.PinnedD.IsSet(s.EnPassantTarget) {
			continue
		}

		if possibleRookPin {
			// removing both pawns may expose the king to a rook/queen
			// along the en passant rank: the classic "double pin".
			without := bitboard.Squares[sq] | bitboard.Squares[epPawn]
			if attacks.Rook(kingSq, s.Occupied&^without)&enemyRooksQueens != bitboard.Empty {
				continue
			}
		}

		s.MoveList = append(s.MoveList, move.New(sq, s.EnPassantTarget, s.Pawn, true, move.EnPassant))
	}
}

func (s *state) appendCastlingMoves() {
	switch s.Us {
	case piece.White:
		if s.CastlingRights&castling.WhiteKingside != 0 &&
			(s.Occupied|s.SeenByEnemy)&bitboard.F1G1 == bitboard.Empty {
			s.MoveList = append(s.MoveList, move.New(square.E1, square.G1, piece.WhiteKing, false, move.Castle))
		}

		if s.CastlingRights&castling.WhiteQueenside != 0 &&
			s.Occupied&bitboard.B1C1D1 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C1D1 == bitboard.Empty {
			s.MoveList = append(s.MoveList, move.New(square.E1, square.C1, piece.WhiteKing, false, move.Castle))
		}

	case piece.Black:
		if s.CastlingRights&castling.BlackKingside != 0 &&
			(s.Occupied|s.SeenByEnemy)&bitboard.F8G8 == bitboard.Empty {
			s.MoveList = append(s.MoveList, move.New(square.E8, square.G8, piece.BlackKing, false, move.Castle))
		}

		if s.CastlingRights&castling.BlackQueenside != 0 &&
			s.Occupied&bitboard.B8C8D8 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C8D8 == bitboard.Empty {
			s.MoveList = append(s.MoveList, move.New(square.E8, square.C8, piece.BlackKing, false, move.Castle))
		}
	}
}

func (s *state) serializeMoves(p piece.Piece, from square.Square, targets bitboard.Board) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		s.MoveList = append(s.MoveList, move.New(from, to, p, s.Enemies.IsSet(to), move.Quiet))
	}
}

func (s *state) appendPromotions(from, to square.Square, capture bool) {
	s.MoveList = append(s.MoveList,
		move.New(from, to, s.Pawn, capture, move.PromotionQueen),
		move.New(from, to, s.Pawn, capture, move.PromotionRook),
		move.New(from, to, s.Pawn, capture, move.PromotionBishop),
		move.New(from, to, s.Pawn, capture, move.PromotionKnight),
	)
}
