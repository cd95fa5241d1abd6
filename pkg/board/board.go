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

// Package board implements a complete chess position: bitboard and
// mailbox representations, FEN parsing/serialization, legal move
// generation, and move application/undo.
package board

import (
	"fmt"

	"github.com/kestrelchess/kestrel/pkg/attacks"
	"github.com/kestrelchess/kestrel/pkg/bitboard"
	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/mailbox"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
	"github.com/kestrelchess/kestrel/pkg/zobrist"
)

// MaxPlys bounds the length of the move-history stack. A game longer
// than this many plys is not a realistic input.
const MaxPlys = 1024

// Board represents the state of a chess position.
type Board struct {
	Hash     zobrist.Key
	Position mailbox.Board
	PieceBBs [piece.TypeN]bitboard.Board
	ColorBBs [piece.ColorN]bitboard.Board

	Kings [piece.ColorN]square.Square

	SideToMove      piece.Color
	EnPassantTarget square.Square
	CastlingRights  castling.Rights

	CheckN    int
	CheckMask bitboard.Board

	Plys      int
	FullMoves int
	DrawClock int

	History [MaxPlys]Undo
}

// Undo holds the information needed to unmake a move that isn't
// recoverable from the move itself: the position's previous castling
// rights, en passant target, draw clock, hash, and the captured piece
// (type and color) reconstructed on undo rather than kept in a
// piece-list, per the bitboard+mailbox design.
type Undo struct {
	Move            move.Move
	CastlingRights  castling.Rights
	CapturedPiece   piece.Piece
	EnPassantTarget square.Square
	DrawClock       int
	Hash            zobrist.Key
}

// String converts a Board into a human readable string.
func (b *Board) String() string {
	return fmt.Sprintf("%s\nFen: %s\nKey: %X\n", b.Position, b.FEN(), b.Hash)
}

// Occupied returns the set of all occupied squares.
func (b *Board) Occupied() bitboard.Board {
	return b.ColorBBs[piece.White] | b.ColorBBs[piece.Black]
}

// ClearSquare removes the piece on s from every board representation.
func (b *Board) ClearSquare(s square.Square) {
	p := b.Position[s]

	b.ColorBBs[p.Color()].Unset(s)
	b.PieceBBs[p.Type()].Unset(s)
	b.Position[s] = piece.NoPiece
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// FillSquare places p on s in every board representation.
func (b *Board) FillSquare(s square.Square, p piece.Piece) {
	c := p.Color()
	t := p.Type()

	b.ColorBBs[c].Set(s)
	if t == piece.King {
		b.Kings[c] = s
	}

	b.PieceBBs[t].Set(s)
	b.Position[s] = p
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// IsInCheck reports whether c's king is currently attacked.
func (b *Board) IsInCheck(c piece.Color) bool {
	return b.IsAttacked(b.Kings[c], c.Other())
}

// IsAttacked reports whether s is attacked by any of them's pieces.
func (b *Board) IsAttacked(s square.Square, them piece.Color) bool {
	occ := b.Occupied()

	if attacks.Pawn[them.Other()][s]&b.Pawns(them) != bitboard.Empty {
		return true
	}
	if attacks.Knight[s]&b.Knights(them) != bitboard.Empty {
		return true
	}
	if attacks.King[s]&b.King(them) != bitboard.Empty {
		return true
	}

	queens := b.Queens(them)
	if attacks.Bishop(s, occ)&(b.Bishops(them)|queens) != bitboard.Empty {
		return true
	}

	return attacks.Rook(s, occ)&(b.Rooks(them)|queens) != bitboard.Empty
}

func (b *Board) Pawns(c piece.Color) bitboard.Board   { return b.PieceBBs[piece.Pawn] & b.ColorBBs[c] }
func (b *Board) Knights(c piece.Color) bitboard.Board { return b.PieceBBs[piece.Knight] & b.ColorBBs[c] }
func (b *Board) Bishops(c piece.Color) bitboard.Board { return b.PieceBBs[piece.Bishop] & b.ColorBBs[c] }
func (b *Board) Rooks(c piece.Color) bitboard.Board   { return b.PieceBBs[piece.Rook] & b.ColorBBs[c] }
func (b *Board) Queens(c piece.Color) bitboard.Board  { return b.PieceBBs[piece.Queen] & b.ColorBBs[c] }
func (b *Board) King(c piece.Color) bitboard.Board     { return b.PieceBBs[piece.King] & b.ColorBBs[c] }

// CalculateCheckmask populates CheckN (the number of pieces giving
// check to the side to move) and CheckMask (the set of squares a piece
// can move to that blocks or captures a single checker; Universe if not
// in check, Empty and unused if in double check).
func (b *Board) CalculateCheckmask() {
	occ := b.Occupied()

	us := b.SideToMove
	them := us.Other()

	b.CheckN = 0
	b.CheckMask = bitboard.Empty

	kingSq := b.Kings[us]

	pawns := b.Pawns(them) & attacks.Pawn[us][kingSq]
	knights := b.Knights(them) & attacks.Knight[kingSq]
	bishops := (b.Bishops(them) | b.Queens(them)) & attacks.Bishop(kingSq, occ)
	rooks := (b.Rooks(them) | b.Queens(them)) & attacks.Rook(kingSq, occ)

	switch {
	case pawns != bitboard.Empty:
		b.CheckMask |= pawns
		b.CheckN++
	case knights != bitboard.Empty:
		b.CheckMask |= knights
		b.CheckN++
	}

	if bishops != bitboard.Empty {
		bishopSq := bishops.FirstOne()
		b.CheckMask |= bitboard.Between[kingSq][bishopSq] | bitboard.Squares[bishopSq]
		b.CheckN++
	}

	if b.CheckN < 2 && rooks != bitboard.Empty {
		if b.CheckN == 0 && rooks.Count() > 1 {
			b.CheckN++
		} else {
			rookSq := rooks.FirstOne()
			b.CheckMask |= bitboard.Between[kingSq][rookSq] | bitboard.Squares[rookSq]
			b.CheckN++
		}
	}

	if b.CheckN == 0 {
		b.CheckMask = bitboard.Universe
	}
}

// IsRepetition reports whether the current position has occurred at
// least once before since the last irreversible move (pawn move,
// capture, or castling-rights change), which is the condition for a
// threefold-repetition claim's first repeat to matter to search.
func (b *Board) IsRepetition() bool {
	n := b.Plys
	end := n - b.DrawClock
	if end < 0 {
		end = 0
	}

	// step back two plys at a time: repetitions share the side to move.
	for i := n - 4; i >= end; i -= 2 {
		if b.History[i].Hash == b.Hash {
			return true
		}
	}

	return false
}

// IsDraw reports whether the position is a draw by the fifty-move rule
// or repetition. Checkmate/stalemate are detected by the search from an
// empty legal move list and aren't covered here.
func (b *Board) IsDraw() bool {
	return b.DrawClock >= 100 || b.IsRepetition()
}
