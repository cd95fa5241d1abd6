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

// Package move declares types and constants pertaining to chess moves.
package move

import (
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// Move represents a chess move: its source and target squares, the
// piece making the move, whether it's a capture, and its Kind, which
// disambiguates the special move forms (castling, en passant, double
// pawn pushes, and each promotion piece) from a plain quiet move.
//
// Format: MSB -> LSB
// [20 kind Kind 17][16 isCapture bool 16] \
// [15 piece piece.Piece 12][11 target square.Square 6][5 source square.Square 0]
type Move uint32

// Null is the "do nothing" move, used as a sentinel in the transposition
// table and for null-move pruning.
const Null Move = 0

const (
	sourceWidth = 6
	targetWidth = 6
	pieceWidth  = 4
	captWidth   = 1
	kindWidth   = 4

	sourceOffset = 0
	targetOffset = sourceOffset + sourceWidth
	pieceOffset  = targetOffset + targetWidth
	captOffset   = pieceOffset + pieceWidth
	kindOffset   = captOffset + captWidth

	sourceMask = 1<<sourceWidth - 1
	targetMask = 1<<targetWidth - 1
	pieceMask  = 1<<pieceWidth - 1
	captMask   = 1<<captWidth - 1
	kindMask   = 1<<kindWidth - 1
)

// Kind disambiguates the special move forms from an ordinary quiet or
// capturing move.
type Kind uint8

// constants representing the kind of a move.
const (
	Quiet Kind = iota
	DoublePawnPush
	Castle
	EnPassant
	PromotionKnight
	PromotionBishop
	PromotionRook
	PromotionQueen
)

// PromotionType returns the piece type a promotion move promotes to. It
// panics if the move isn't a promotion.
func (k Kind) PromotionType() piece.Type {
	switch k {
	case PromotionKnight:
		return piece.Knight
	case PromotionBishop:
		return piece.Bishop
	case PromotionRook:
		return piece.Rook
	case PromotionQueen:
		return piece.Queen
	default:
		panic("move.Kind.PromotionType: not a promotion kind")
	}
}

// IsPromotion reports whether k is one of the four promotion kinds.
func (k Kind) IsPromotion() bool {
	return k >= PromotionKnight && k <= PromotionQueen
}

// New creates a new Move.
func New(source, target square.Square, p piece.Piece, capture bool, kind Kind) Move {
	m := Move(source) << sourceOffset
	m |= Move(target) << targetOffset
	m |= Move(p) << pieceOffset
	if capture {
		m |= captMask << captOffset
	}
	m |= Move(kind) << kindOffset
	return m
}

// String converts a move to its long algebraic notation, e.g. "e2e4",
// "e1g1" (castling), "d7d8q" (promotion), "0000" (null).
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	s := m.Source().String() + m.Target().String()
	if m.Kind().IsPromotion() {
		s += m.Kind().PromotionType().String()
	}

	return s
}

// Source returns the move's source square.
func (m Move) Source() square.Square {
	return square.Square((m >> sourceOffset) & sourceMask)
}

// Target returns the move's target square.
func (m Move) Target() square.Square {
	return square.Square((m >> targetOffset) & targetMask)
}

// Piece returns the piece being moved.
func (m Move) Piece() piece.Piece {
	return piece.Piece((m >> pieceOffset) & pieceMask)
}

// Kind returns the move's Kind.
func (m Move) Kind() Kind {
	return Kind((m >> kindOffset) & kindMask)
}

// IsCapture reports whether the move captures a piece. It is also true
// for en passant, which is flagged explicitly since there is no piece
// on the target square to capture.
func (m Move) IsCapture() bool {
	return (m>>captOffset)&captMask != 0 || m.Kind() == EnPassant
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Kind().IsPromotion()
}

// IsQuiet reports whether the move is neither a capture nor a
// promotion, i.e. doesn't materially change the position's tactics.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// IsTactical is the negation of IsQuiet, used to filter the move list
// during quiescence search.
func (m Move) IsTactical() bool {
	return !m.IsQuiet()
}

// IsReversible reports whether the move is reversible for the purpose
// of the fifty-move/draw clock: captures and pawn moves reset it and
// are not reversible.
func (m Move) IsReversible() bool {
	return !m.IsCapture() && m.Piece().Type() != piece.Pawn
}
