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
	"strings"

	"github.com/kestrelchess/kestrel/pkg/attacks"
	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
	"github.com/kestrelchess/kestrel/pkg/zobrist"
)

// MakeMove plays the given legal move on the board.
func (b *Board) MakeMove(m move.Move) {
	b.History[b.Plys] = Undo{
		Move:            m,
		CastlingRights:  b.CastlingRights,
		CapturedPiece:   piece.NoPiece,
		EnPassantTarget: b.EnPassantTarget,
		DrawClock:       b.DrawClock,
		Hash:            b.Hash,
	}

	b.DrawClock++

	if m == move.Null {
		b.makeNullMove()
		return
	}

	sourceSq := m.Source()
	targetSq := m.Target()
	captureSq := targetSq
	p := m.Piece()
	kind := m.Kind()

	if p.Type() == piece.Pawn {
		b.DrawClock = 0
	}

	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}
	b.EnPassantTarget = square.None

	switch kind {
	case move.DoublePawnPush:
		target := sourceSq
		if b.SideToMove == piece.White {
			target += 8
		} else {
			target -= 8
		}

		if b.Pawns(b.SideToMove.Other())&attacks.Pawn[b.SideToMove][target] != 0 {
			b.EnPassantTarget = target
			b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
		}

	case move.Castle:
		rookMove := castling.Rooks[targetSq]
		b.ClearSquare(rookMove.From)
		b.FillSquare(rookMove.To, rookMove.Rook)

	case move.EnPassant:
		if b.SideToMove == piece.White {
			captureSq -= 8
		} else {
			captureSq += 8
		}
		b.History[b.Plys].CapturedPiece = b.Position[captureSq]
		b.DrawClock = 0
		b.ClearSquare(captureSq)

	default:
		if m.IsCapture() {
			b.History[b.Plys].CapturedPiece = b.Position[captureSq]
			b.DrawClock = 0
			b.ClearSquare(captureSq)
		}
	}

	b.ClearSquare(sourceSq)

	if kind.IsPromotion() {
		b.FillSquare(targetSq, piece.New(kind.PromotionType(), b.SideToMove))
	} else {
		b.FillSquare(targetSq, p)
	}

	b.Hash ^= zobrist.Castling[b.CastlingRights]
	b.CastlingRights &^= castling.RightUpdates[sourceSq]
	b.CastlingRights &^= castling.RightUpdates[targetSq]
	b.Hash ^= zobrist.Castling[b.CastlingRights]

	b.Plys++

	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.White {
		b.FullMoves++
	}
	b.Hash ^= zobrist.SideToMove
}

func (b *Board) makeNullMove() {
	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}
	b.EnPassantTarget = square.None

	b.Plys++

	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.White {
		b.FullMoves++
	}
	b.Hash ^= zobrist.SideToMove
}

// UnmakeMove reverts the last move played on the board.
func (b *Board) UnmakeMove() {
	if b.SideToMove = b.SideToMove.Other(); b.SideToMove == piece.Black {
		b.FullMoves--
	}

	b.Plys--

	undo := b.History[b.Plys]
	b.EnPassantTarget = undo.EnPassantTarget
	b.DrawClock = undo.DrawClock
	b.CastlingRights = undo.CastlingRights

	m := undo.Move

	if m == move.Null {
		b.Hash = undo.Hash
		return
	}

	sourceSq := m.Source()
	targetSq := m.Target()
	captureSq := targetSq
	p := m.Piece()
	kind := m.Kind()

	b.ClearSquare(targetSq)
	b.FillSquare(sourceSq, p)

	switch kind {
	case move.Castle:
		rookMove := castling.Rooks[targetSq]
		b.ClearSquare(rookMove.To)
		b.FillSquare(rookMove.From, rookMove.Rook)

	case move.EnPassant:
		if b.SideToMove == piece.White {
			captureSq -= 8
		} else {
			captureSq += 8
		}
		b.FillSquare(captureSq, undo.CapturedPiece)

	default:
		if m.IsCapture() {
			b.FillSquare(captureSq, undo.CapturedPiece)
		}
	}

	b.Hash = undo.Hash
}

// NewMove builds the move.Move that moves the piece on from to to,
// inferring the move's Kind from the current position. If the move is
// a promotion, use NewPromotion instead to specify the promoted piece.
func (b *Board) NewMove(from, to square.Square) move.Move {
	p := b.Position[from]
	capture := b.Position[to] != piece.NoPiece

	kind := move.Quiet
	switch {
	case p.Type() == piece.Pawn && to == b.EnPassantTarget && !capture:
		kind = move.EnPassant
	case p.Type() == piece.Pawn && absSquare(to, from) == 16:
		kind = move.DoublePawnPush
	case p.Type() == piece.King && absSquare(to, from) == 2:
		kind = move.Castle
	}

	return move.New(from, to, p, capture, kind)
}

// NewPromotion builds the promotion move.Move moving the piece on from
// to to, promoting to the given piece type.
func (b *Board) NewPromotion(from, to square.Square, promote piece.Type) move.Move {
	p := b.Position[from]
	capture := b.Position[to] != piece.NoPiece

	var kind move.Kind
	switch promote {
	case piece.Queen:
		kind = move.PromotionQueen
	case piece.Rook:
		kind = move.PromotionRook
	case piece.Bishop:
		kind = move.PromotionBishop
	case piece.Knight:
		kind = move.PromotionKnight
	default:
		panic("board.NewPromotion: invalid promotion piece type")
	}

	return move.New(from, to, p, capture, kind)
}

// NewMoveFromString parses a UCI long algebraic move, e.g. "e2e4" or
// "d7d8q", in the context of the current position.
func (b *Board) NewMoveFromString(s string) move.Move {
	from := square.NewFromString(s[:2])
	to := square.NewFromString(s[2:4])

	if len(s) == 5 {
		return b.NewPromotion(from, to, piece.NewTypeFromString(strings.ToLower(s[4:])))
	}

	return b.NewMove(from, to)
}

func absSquare(a, b square.Square) square.Square {
	if a < b {
		return b - a
	}
	return a - b
}
